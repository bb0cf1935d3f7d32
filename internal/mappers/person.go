// Package mappers populates entity attribute sets from bibliographic
// fields or authority records, one fixed field-to-attribute table per
// entity kind. Every mapping step is total: a missing source field skips
// its attribute, it never fails the mapping.
package mappers

import (
	"github.com/lehigh-university-libraries/frbrize/internal/frbr"
	"github.com/lehigh-university-libraries/frbrize/internal/marc"
	"github.com/lehigh-university-libraries/frbrize/internal/norm"
)

// Subfield sets for personal name headings.
const (
	personIdentSubfields = "aqbcd"
	personNameSubfields  = "aq"
)

// PersonAuthIdent derives the primary match key from a personal heading.
func PersonAuthIdent(f marc.DataField) string {
	return norm.AuthIdent(f.ConcatSubfields(personIdentSubfields))
}

// PersonNormalName derives the fallback name+date key.
func PersonNormalName(f marc.DataField) string {
	date := norm.PersonDate(f.Value("d"))
	return norm.NormalName(f.ConcatSubfields(personNameSubfields) + "_" + date.Text)
}

// PersonFromField maps a person from a bibliographic heading (100, 600,
// or 700).
func PersonFromField(f marc.DataField) *frbr.Person {
	p := &frbr.Person{
		AuthIdent:  PersonAuthIdent(f),
		NormalName: PersonNormalName(f),
	}
	if name := f.ConcatSubfields(personNameSubfields); name != "" {
		p.Names = append(p.Names, frbr.Name{
			Text:       name,
			Type:       "authorized",
			Vocabulary: "naf",
			Normal:     norm.NormalName(name),
		})
	}
	if d := f.Value("d"); d != "" {
		p.Dates = append(p.Dates, personDate(d))
	}
	for _, title := range f.ValueList("c") {
		p.Titles = append(p.Titles, frbr.Title{Text: title})
	}
	if b := f.Value("b"); b != "" {
		p.Designations = append(p.Designations, b)
	}
	return p
}

// PersonFromAuthority maps a person from an authority record: the 100
// heading plus 400 variants, 678 biographies, and 670 source notes.
func PersonFromAuthority(rec marc.Record) *frbr.Person {
	h, ok := rec.First("100")
	if !ok {
		return nil
	}
	p := PersonFromField(h)
	for _, v := range rec.DataFields("400") {
		name := v.ConcatSubfields(personNameSubfields)
		if name == "" {
			continue
		}
		p.Names = append(p.Names, frbr.Name{
			Text:       name,
			Type:       "variant",
			Vocabulary: "naf",
			Normal:     norm.NormalName(name),
		})
		p.VariantKeys = append(p.VariantKeys, PersonNormalName(v))
	}
	for _, f := range rec.DataFields("678") {
		p.Biographies = append(p.Biographies, frbr.Note{
			Text:         f.ConcatAllExcept("68"),
			Type:         "biographicalhistorical",
			Availability: "public",
		})
	}
	for _, f := range rec.DataFields("670") {
		p.Notes = append(p.Notes, frbr.Note{
			Text:         f.ConcatAllExcept("68"),
			Type:         "sourcedatafound",
			Availability: "public",
		})
	}
	return p
}

func personDate(text string) frbr.Date {
	d := norm.PersonDate(text)
	return frbr.Date{Text: d.Text, Normal: d.Normal, Type: d.Type, Function: d.Function}
}
