package mappers

import (
	"github.com/lehigh-university-libraries/frbrize/internal/frbr"
	"github.com/lehigh-university-libraries/frbrize/internal/marc"
	"github.com/lehigh-university-libraries/frbrize/internal/norm"
)

// Subfield sets for corporate and meeting name headings.
const (
	corporateIdentSubfields = "abcde"
	corporateNameSubfields  = "abe"
)

// CorporateAuthIdent derives the primary match key from a corporate
// heading.
func CorporateAuthIdent(f marc.DataField) string {
	return norm.AuthIdent(f.ConcatSubfields(corporateIdentSubfields))
}

// CorporateNormalName derives the fallback name+date key.
func CorporateNormalName(f marc.DataField) string {
	return norm.NormalName(f.ConcatSubfields(corporateNameSubfields) + "_" + f.Value("d"))
}

// CorporateFromField maps a corporate body from a bibliographic heading
// (110, 111, 610, 611, 710, or 711). Meeting numbers are suppressed when
// the field describes a subordinated unit or carries a work title.
func CorporateFromField(f marc.DataField) *frbr.CorporateBody {
	c := &frbr.CorporateBody{
		AuthIdent:  CorporateAuthIdent(f),
		NormalName: CorporateNormalName(f),
	}
	addCorporateName(c, f, "authorized")
	harvestCorporateAttributes(c, f)
	return c
}

// CorporateFromAuthority maps a corporate body from an authority record:
// the 110/111 heading plus 410/411 see-from variants, 678 histories, and
// 670/667 notes. When the headings carry no numbers, places, or dates,
// the see-from fields are harvested instead.
func CorporateFromAuthority(rec marc.Record) *frbr.CorporateBody {
	headings := rec.DataFields("110", "111")
	if len(headings) == 0 {
		return nil
	}
	c := &frbr.CorporateBody{
		AuthIdent:  CorporateAuthIdent(headings[0]),
		NormalName: CorporateNormalName(headings[0]),
	}
	for _, h := range headings {
		addCorporateName(c, h, "authorized")
	}
	seeFrom := rec.DataFields("410", "411")
	for _, v := range seeFrom {
		addCorporateName(c, v, "variant")
		c.VariantKeys = append(c.VariantKeys, CorporateNormalName(v))
	}

	for _, h := range headings {
		harvestCorporateAttributes(c, h)
	}
	if len(c.Numbers) == 0 && len(c.Places) == 0 && len(c.Dates) == 0 {
		for _, v := range seeFrom {
			harvestCorporateAttributes(c, v)
		}
	}

	for _, f := range rec.DataFields("678") {
		c.Histories = append(c.Histories, frbr.Note{
			Text:         f.ConcatAllExcept("68"),
			Type:         "biographicalhistorical",
			Availability: "public",
		})
	}
	for _, f := range rec.DataFields("670") {
		c.Notes = append(c.Notes, frbr.Note{
			Text:         f.ConcatAllExcept("68"),
			Type:         "sourcedatafound",
			Availability: "public",
		})
	}
	for _, f := range rec.DataFields("667") {
		c.Notes = append(c.Notes, frbr.Note{
			Text:         f.ConcatAllExcept(""),
			Type:         "nonpublicgeneral",
			Availability: "private",
		})
	}
	return c
}

func addCorporateName(c *frbr.CorporateBody, f marc.DataField, nameType string) {
	name := f.ConcatSubfields(corporateNameSubfields)
	if name == "" {
		return
	}
	c.Names = append(c.Names, frbr.Name{
		Text:       name,
		Type:       nameType,
		Vocabulary: "naf",
		Normal:     norm.NormalName(name),
	})
}

func harvestCorporateAttributes(c *frbr.CorporateBody, f marc.DataField) {
	if !f.HasSubfield("k") && !f.HasSubfield("t") {
		c.Numbers = append(c.Numbers, f.ValueList("n")...)
	}
	c.Places = append(c.Places, f.ValueList("c")...)
	for _, d := range f.ValueList("d") {
		nd := norm.CorporateDate(d)
		c.Dates = append(c.Dates, frbr.Date{Text: nd.Text, Normal: nd.Normal, Type: nd.Type})
	}
}
