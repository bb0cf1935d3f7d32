package mappers

import (
	"github.com/lehigh-university-libraries/frbrize/internal/frbr"
	"github.com/lehigh-university-libraries/frbrize/internal/marc"
	"github.com/lehigh-university-libraries/frbrize/internal/norm"
	"github.com/lehigh-university-libraries/frbrize/internal/vocab"
)

// ExpressionFromWork maps the expression embodied by a record: titles,
// languages, mediums, and keys come from the Work; form, dates, extents,
// and performance details come from the record itself.
func ExpressionFromWork(rec marc.Record, w *frbr.Work) *frbr.Expression {
	e := &frbr.Expression{
		Titles:             append([]frbr.Title(nil), w.Titles...),
		Languages:          append([]frbr.Term(nil), w.Languages...),
		PerformanceMediums: append([]frbr.Medium(nil), w.PerformanceMediums...),
		Keys:               append([]frbr.Term(nil), w.Keys...),
	}

	if form := vocab.FormOfExpression(rec.LeaderType); form != "" {
		e.Forms = append(e.Forms, frbr.Term{Text: form, Vocabulary: "formofexpression"})
	}

	mapExpressionDates(e, rec)

	for _, f := range rec.DataFields("306") {
		for _, v := range f.ValueList("a") {
			if len(v) == 6 {
				e.Extents = append(e.Extents, v[0:2]+":"+v[2:4]+":"+v[4:6])
			}
		}
	}

	if f, ok := rec.First("254"); ok {
		e.ScoreType = f.Value("a")
	}

	for _, f := range rec.DataFields("500") {
		if text := f.ConcatAllExcept(""); text != "" {
			e.Notes = append(e.Notes, frbr.Note{Text: text, Availability: "public"})
		}
	}
	for _, f := range rec.DataFields("511") {
		if text := f.ConcatAllExcept(""); text != "" {
			e.Notes = append(e.Notes, frbr.Note{Text: text, Type: "participantperformer", Availability: "public"})
		}
	}

	for _, f := range rec.DataFields("518") {
		if text := f.ConcatAllExcept(""); text != "" {
			e.PerformancePlaces = append(e.PerformancePlaces, text)
		}
	}

	e.Genres = append(e.Genres, compositionForms(rec)...)
	return e
}

// mapExpressionDates harvests capture dates. The first 033's first
// indicator says whether the field holds a single date (0), multiple
// dates (1), or a range (2); without any 033 the free-text 518 serves as
// the date.
func mapExpressionDates(e *frbr.Expression, rec marc.Record) {
	fields := rec.DataFields("033")
	if len(fields) == 0 {
		for _, f := range rec.DataFields("518") {
			if text := f.ConcatAllExcept(""); text != "" {
				e.Dates = append(e.Dates, frbr.Date{Text: text})
			}
		}
		return
	}

	var values []string
	for _, f := range fields {
		values = append(values, f.ValueList("a")...)
	}
	if len(values) == 0 {
		return
	}

	single := func(v string) frbr.Date {
		return frbr.Date{Text: v, Normal: norm.Capture033Date(v), Type: norm.DateSingle}
	}
	switch fields[0].Ind1 {
	case "1":
		for _, v := range values {
			e.Dates = append(e.Dates, single(v))
		}
	case "2":
		if len(values) >= 2 {
			e.Dates = append(e.Dates, frbr.Date{
				Text:   values[0] + "-" + values[1],
				Normal: norm.Capture033Date(values[0]) + "/" + norm.Capture033Date(values[1]),
				Type:   norm.DateRange,
			})
		}
	default:
		e.Dates = append(e.Dates, single(values[0]))
	}
}

// RealizerRef identifies a realizer already linked to an expression, by
// party variant and identity key.
type RealizerRef struct {
	Kind      frbr.PartyKind
	AuthIdent string
}

// ExpressionMatches applies the expression-matching heuristic: the record
// describes an already-known expression when a capture date matches and
// at least one realizer overlaps, or when at least two realizers overlap
// independently. The thresholds encode cataloging policy and are kept
// as given.
func ExpressionMatches(rec marc.Record, e *frbr.Expression, realizers []RealizerRef) bool {
	dates := make(map[string]bool, len(e.Dates))
	for _, d := range e.Dates {
		if d.Normal != "" {
			dates[d.Normal] = true
		} else if d.Text != "" {
			dates[d.Text] = true
		}
	}
	dateMatch := false
	for _, f := range rec.DataFields("033") {
		for _, v := range f.ValueList("a") {
			if dates[norm.Capture033Date(v)] {
				dateMatch = true
			}
		}
	}

	known := make(map[RealizerRef]bool, len(realizers))
	for _, r := range realizers {
		known[r] = true
	}
	// Every relator subfield counts separately, so one heading carrying
	// both prf and cnd can satisfy the two-code threshold on its own.
	matches := 0
	for _, f := range rec.DataFields("700") {
		ref := RealizerRef{Kind: frbr.KindPerson, AuthIdent: PersonAuthIdent(f)}
		for _, code := range f.ValueList("4") {
			if code != "prf" && code != "cnd" {
				continue
			}
			if known[ref] {
				matches++
			}
		}
	}
	for _, f := range rec.DataFields("710") {
		ref := RealizerRef{Kind: frbr.KindCorporate, AuthIdent: CorporateAuthIdent(f)}
		for _, code := range f.ValueList("4") {
			if code != "prf" {
				continue
			}
			if known[ref] {
				matches++
			}
		}
	}

	return (dateMatch && matches > 0) || matches >= 2
}
