package mappers

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/lehigh-university-libraries/frbrize/internal/authority"
	"github.com/lehigh-university-libraries/frbrize/internal/frbr"
	"github.com/lehigh-university-libraries/frbrize/internal/marc"
	"github.com/lehigh-university-libraries/frbrize/internal/norm"
	"github.com/lehigh-university-libraries/frbrize/internal/vocab"
	"github.com/lehigh-university-libraries/frbrize/internal/workid"
)

// WorkMapper maps a work field into a Work entity, consulting the
// authority service for the established form of the uniform title when a
// client is configured.
type WorkMapper struct {
	Authority *authority.Client
}

// UniformTitle concatenates the uniform title subfields of a work field.
// Title fields addressed by their own tag (240/130/730) use a..r; added
// entries carry the title in t..r.
func UniformTitle(f marc.DataField) string {
	switch f.Tag {
	case "240", "130", "730":
		return f.ConcatSubfields("amnr")
	case "700", "710", "711":
		return f.ConcatSubfields("tmnr")
	}
	return ""
}

// ComposerField locates the heading whose identity qualifies a work
// field: an analytic 700 carries its own, every other field falls back
// to the record's main entry. Title-only fields (130/730) have none.
func ComposerField(rec marc.Record, f marc.DataField) (marc.DataField, frbr.PartyKind, bool) {
	switch f.Tag {
	case "700":
		return f, frbr.KindPerson, true
	case "130", "730":
		return marc.DataField{}, "", false
	}
	if h, ok := rec.First("100"); ok {
		return h, frbr.KindPerson, true
	}
	if h, ok := rec.First("110", "111"); ok {
		return h, frbr.KindCorporate, true
	}
	return marc.DataField{}, "", false
}

func composerIdent(rec marc.Record, f marc.DataField) string {
	h, kind, ok := ComposerField(rec, f)
	if !ok {
		return ""
	}
	if kind == frbr.KindPerson {
		return PersonAuthIdent(h)
	}
	return CorporateAuthIdent(h)
}

// Map builds the Work entity for one identified work field. The returned
// authority record, when non-nil, established the uniform title and is
// reused by callers for reporting.
func (m *WorkMapper) Map(ctx context.Context, rec marc.Record, cand workid.Candidate, group marc.Group) (*frbr.Work, *marc.Record) {
	f := cand.Field
	ut := UniformTitle(f)

	var authRec *marc.Record
	if m.Authority != nil && ut != "" {
		var err error
		authRec, err = m.Authority.FindWork(ctx, ut)
		if err != nil {
			slog.Debug("Authority work lookup failed", "title", ut, "err", err)
			authRec = nil
		}
	}

	w := &frbr.Work{Group: group.String()}
	mapWorkTitles(w, f, ut, authRec)
	mapWorkAuthIdent(w, rec, f, ut)
	mapWorkForms(w, rec, f)
	mapWorkDates(w, rec, f)
	mapWorkAudiences(w, rec)
	mapWorkPerformanceMediums(w, f)
	mapWorkDesignations(w, f)
	mapWorkKeys(w, f)
	mapWorkSubjectHeadings(w, rec)
	mapWorkLanguages(w, rec)
	mapWorkNotes(w, rec, authRec)
	return w, authRec
}

func mapWorkTitles(w *frbr.Work, f marc.DataField, uniformTitle string, authRec *marc.Record) {
	if authRec != nil {
		for _, h := range authRec.DataFields("100", "110", "111") {
			if title := h.ConcatSubfields("tmnr"); title != "" {
				w.Titles = append(w.Titles, frbr.Title{Text: title, Type: "uniform", Vocabulary: "naf"})
			}
		}
		for _, h := range authRec.DataFields("130") {
			if title := h.ConcatSubfields("amnr"); title != "" {
				w.Titles = append(w.Titles, frbr.Title{Text: title, Type: "uniform", Vocabulary: "naf"})
			}
		}
		for _, v := range authRec.DataFields("400", "410", "411") {
			if title := v.ConcatSubfields("tmnr"); title != "" {
				w.Titles = append(w.Titles, frbr.Title{Text: title, Type: "variant", Vocabulary: "naf"})
			}
		}
		for _, v := range authRec.DataFields("430") {
			if title := v.ConcatSubfields("amnr"); title != "" {
				w.Titles = append(w.Titles, frbr.Title{Text: title, Type: "variant", Vocabulary: "naf"})
			}
		}
		if len(w.Titles) > 0 {
			return
		}
	}

	switch f.Tag {
	case "240", "130", "730", "700", "710", "711":
		if uniformTitle != "" {
			w.Titles = append(w.Titles, frbr.Title{Text: uniformTitle, Type: "uniform", Vocabulary: "aacr2"})
		}
	case "245":
		if title := f.Value("a"); title != "" {
			w.Titles = append(w.Titles, frbr.Title{
				Text:       title,
				Type:       "titleproper",
				Vocabulary: "aacr2",
				Offset:     nonfilingOffset(f.Ind2),
			})
		}
	case "740":
		if title := f.ConcatSubfields("an"); title != "" {
			w.Titles = append(w.Titles, frbr.Title{Text: title, Type: "titleproper", Vocabulary: "aacr2"})
		}
	}
}

// mapWorkAuthIdent builds the composite key: normalized title, then the
// composer's identity, joined by "::". Both halves may be empty; callers
// treat a bare "::" as no usable identity.
func mapWorkAuthIdent(w *frbr.Work, rec marc.Record, f marc.DataField, uniformTitle string) {
	title := uniformTitle
	if title == "" && len(w.Titles) > 0 {
		title = w.Titles[0].Text
	}
	w.AuthIdent = norm.AuthIdent(title) + "::" + composerIdent(rec, f)
}

func mapWorkForms(w *frbr.Work, rec marc.Record, f marc.DataField) {
	if f.HasSubfield("o") {
		if !f.HasSubfield("m") && !f.HasSubfield("n") && !f.HasSubfield("r") {
			return
		}
		text := f.Value("a")
		if f.Tag == "700" || f.Tag == "710" || f.Tag == "711" {
			text = f.Value("t")
		}
		if text != "" {
			w.Forms = append(w.Forms, frbr.Term{Text: text, Vocabulary: "aacr2"})
		}
		return
	}
	w.Forms = append(w.Forms, compositionForms(rec)...)
}

// compositionForms decodes 008/18-19, falling back to the 047 list when
// the fixed field says multiple forms.
func compositionForms(rec marc.Record) []frbr.Term {
	var out []frbr.Term
	for _, cf := range rec.ControlFields("008") {
		if !cf.HasRange(18, 19) {
			continue
		}
		code := cf.Range(18, 19)
		if code != "mu" {
			if label := vocab.CompositionForm(code); label != "" {
				out = append(out, frbr.Term{Text: label, Vocabulary: "marcformofcomposition"})
			}
			continue
		}
		for _, f047 := range rec.DataFields("047") {
			for _, code := range f047.ValueList("a") {
				label := vocab.CompositionForm(code)
				if label == "" {
					label = code
				}
				out = append(out, frbr.Term{Text: label, Vocabulary: "marcformofcomposition"})
			}
		}
	}
	return out
}

var (
	singleYear    = regexp.MustCompile(`^\d{4}$`)
	shortRange    = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	fullRange     = regexp.MustCompile(`^(\d{4})-(\d{4})$`)
	quantityParen = regexp.MustCompile(`\((\d+)\)`)
	yearLike      = regexp.MustCompile(`\d{4}`)
)

func mapWorkDates(w *frbr.Work, rec marc.Record, f marc.DataField) {
	mapped := false
	for _, v := range f.ValueList("f") {
		switch {
		case singleYear.MatchString(v):
			w.Dates = append(w.Dates, frbr.Date{Text: v, Normal: v, Type: norm.DateSingle})
			mapped = true
		case fullRange.MatchString(v):
			m := fullRange.FindStringSubmatch(v)
			w.Dates = append(w.Dates, frbr.Date{Text: v, Normal: m[1] + "/" + m[2], Type: norm.DateRange})
			mapped = true
		case shortRange.MatchString(v):
			m := shortRange.FindStringSubmatch(v)
			w.Dates = append(w.Dates, frbr.Date{Text: v, Normal: m[1] + "/" + m[1][:2] + m[2], Type: norm.DateRange})
			mapped = true
		}
	}
	if mapped {
		return
	}

	// 045 date-time codes: |b values prefixed with the era character d
	// carry a four-digit year.
	fields := rec.DataFields("045")
	if len(fields) == 0 {
		return
	}
	var years []string
	for _, f045 := range fields {
		for _, v := range f045.ValueList("b") {
			if strings.HasPrefix(v, "d") && len(v) >= 5 {
				years = append(years, v[1:5])
			}
		}
	}
	if len(years) == 0 {
		return
	}
	switch fields[0].Ind1 {
	case "1":
		for _, y := range years {
			w.Dates = append(w.Dates, frbr.Date{Text: y, Normal: y, Type: norm.DateSingle})
		}
	case "2":
		if len(years) >= 2 {
			w.Dates = append(w.Dates, frbr.Date{
				Text:   years[0] + "-" + years[1],
				Normal: years[0] + "/" + years[1],
				Type:   norm.DateRange,
			})
		}
	default:
		w.Dates = append(w.Dates, frbr.Date{Text: years[0], Normal: years[0], Type: norm.DateSingle})
	}
}

func mapWorkAudiences(w *frbr.Work, rec marc.Record) {
	for _, cf := range rec.ControlFields("008") {
		if !cf.HasRange(22, 22) {
			continue
		}
		if label := vocab.Audience(cf.Value[22]); label != "" {
			w.Audiences = append(w.Audiences, frbr.Term{Text: label, Vocabulary: "marctargetaudience"})
		}
	}
}

func mapWorkPerformanceMediums(w *frbr.Work, f marc.DataField) {
	w.PerformanceMediums = append(w.PerformanceMediums, performanceMediums(f)...)
}

// performanceMediums splits a medium-of-performance subfield on commas
// and pulls "(n)" player counts out as quantities.
func performanceMediums(f marc.DataField) []frbr.Medium {
	var out []frbr.Medium
	for _, v := range f.ValueList("m") {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			quantity := ""
			if m := quantityParen.FindStringSubmatch(part); m != nil {
				quantity = m[1]
				part = strings.TrimSpace(quantityParen.ReplaceAllString(part, ""))
			}
			out = append(out, frbr.Medium{Text: part, Quantity: quantity, Vocabulary: "aacr2"})
		}
	}
	return out
}

func mapWorkDesignations(w *frbr.Work, f marc.DataField) {
	for _, v := range f.ValueList("n") {
		if yearLike.MatchString(v) {
			continue
		}
		w.Designations = append(w.Designations, v)
	}
}

func mapWorkKeys(w *frbr.Work, f marc.DataField) {
	for _, v := range f.ValueList("r") {
		w.Keys = append(w.Keys, frbr.Term{Text: v, Vocabulary: "aacr2"})
	}
}

var subjectHeadingTypes = map[string]string{
	"600": "person",
	"610": "corporation",
	"611": "meeting",
	"630": "title",
	"648": "chronology",
	"650": "topic",
	"651": "place",
	"653": "uncontrolled",
	"654": "faceted topic",
	"655": "genre",
	"656": "occupation",
	"657": "function",
	"658": "curriculum objective",
	"662": "hierarchical place",
}

func mapWorkSubjectHeadings(w *frbr.Work, rec marc.Record) {
	for tag, headingType := range subjectHeadingTypes {
		for _, f := range rec.DataFields(tag) {
			if text := f.ConcatAllExcept(""); text != "" {
				w.SubjectHeadings = append(w.SubjectHeadings, frbr.Heading{
					Text:       text,
					Type:       headingType,
					Vocabulary: "lcsh",
				})
			}
		}
	}
}

func mapWorkLanguages(w *frbr.Work, rec marc.Record) {
	for _, cf := range rec.ControlFields("008") {
		if !cf.HasRange(35, 37) {
			continue
		}
		if label := vocab.Language(cf.Range(35, 37)); label != "" {
			w.Languages = append(w.Languages, frbr.Term{Text: label, Vocabulary: "iso639-2b"})
		}
	}
}

func mapWorkNotes(w *frbr.Work, rec marc.Record, authRec *marc.Record) {
	if authRec != nil {
		for _, f := range authRec.DataFields("670") {
			w.Notes = append(w.Notes, frbr.Note{
				Text:         f.ConcatAllExcept("68"),
				Type:         "sourcedatafound",
				Availability: "public",
			})
		}
		for _, f := range authRec.DataFields("678") {
			w.Notes = append(w.Notes, frbr.Note{
				Text:         f.ConcatAllExcept("68"),
				Type:         "biographicalhistorical",
				Availability: "public",
			})
		}
	}
	for _, f := range rec.DataFields("856") {
		for _, u := range f.ValueList("u") {
			w.Notes = append(w.Notes, frbr.Note{
				Text:         u,
				Type:         "electronicresource",
				Availability: "public",
			})
		}
	}
}

func nonfilingOffset(ind string) int {
	if len(ind) == 1 && ind[0] >= '0' && ind[0] <= '9' {
		return int(ind[0] - '0')
	}
	return 0
}
