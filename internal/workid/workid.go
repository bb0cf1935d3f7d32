// Package workid implements the per-group decision tables that decide
// which fields of a bibliographic record denote distinct works. Each
// selected field carries the identifier of the rule that selected it;
// these rule numbers come from the governing cataloging documentation and
// are reported verbatim.
package workid

import (
	"github.com/lehigh-university-libraries/frbrize/internal/marc"
	"github.com/lehigh-university-libraries/frbrize/internal/vocab"
)

// Candidate is one field selected as denoting a work, tagged with the
// rule that selected it.
type Candidate struct {
	Field marc.DataField
	Rule  string
}

// Identify scans the record's candidate fields for the given group and
// returns the work fields in field order. GROUP1C and malformed records
// yield none.
func Identify(rec marc.Record, group marc.Group) []Candidate {
	switch group {
	case marc.Group1A:
		return identify1A(rec)
	case marc.Group1B:
		return identify1B(rec)
	case marc.Group2, marc.Group3, marc.Group4:
		return identifyAddedEntryGroups(rec, group)
	default:
		return nil
	}
}

// identify1A evaluates the single 240 uniform title of a record that has
// a heading, a 240, and a 245.
func identify1A(rec marc.Record) []Candidate {
	f, ok := rec.First("240")
	if !ok {
		return nil
	}
	title := f.Value("a")
	if vocab.IsCollectiveTitle(title) {
		return nil
	}
	if vocab.IsForm(title) {
		hasM := f.HasSubfield("m")
		hasNPR := f.HasSubfield("n") || f.HasSubfield("p") || f.HasSubfield("r")
		switch {
		case !hasM && !hasNPR:
			return nil
		case hasM && !hasNPR:
			return []Candidate{{Field: f, Rule: "1.1.2.2"}}
		default:
			return []Candidate{{Field: f, Rule: "1.1.2.3"}}
		}
	}
	return []Candidate{{Field: f, Rule: "1.1.3"}}
}

// identify1B handles records with a heading and a 245 but no 240. The
// heading kind decides which sub-table applies; a bare 130 is itself the
// work.
func identify1B(rec marc.Record) []Candidate {
	var out []Candidate
	switch {
	case rec.HasField("100"):
		out = append(out, identify1B245(rec)...)
		out = append(out, identify1B740(rec, "2.1.3.1")...)
	case rec.HasField("110"):
		out = append(out, identify1B740(rec, "2.2.2.1")...)
	case rec.HasField("111"):
		out = append(out, identify1B740(rec, "2.3.2.1")...)
	case rec.HasField("130"):
		if f, ok := rec.First("130"); ok {
			out = append(out, Candidate{Field: f, Rule: "2.4.1"})
		}
	}
	return out
}

// identify1B245 qualifies the 245 as a work title when the 100 carries no
// relator code or is the composer. With analytic 740s present the 245
// titles a containing work; without them, only a record lacking a
// contents note qualifies.
func identify1B245(rec marc.Record) []Candidate {
	h, _ := rec.First("100")
	if code := h.Value("4"); code != "" && code != "cmp" {
		return nil
	}
	f, ok := rec.First("245")
	if !ok {
		return nil
	}
	if rec.HasField("740") {
		return []Candidate{{Field: f, Rule: "2.1.2.1.1"}}
	}
	if !rec.HasField("505") {
		return []Candidate{{Field: f, Rule: "2.1.2.2.2"}}
	}
	return nil
}

// identify1B740 selects analytic 740s (second indicator 2) as works.
func identify1B740(rec marc.Record, rule string) []Candidate {
	var out []Candidate
	for _, f := range rec.DataFields("740") {
		if f.Ind2 == "2" {
			out = append(out, Candidate{Field: f, Rule: rule})
		}
	}
	return out
}

// groupPrefix is the leading rule number for GROUP2/3/4 tables.
func groupPrefix(group marc.Group) string {
	switch group {
	case marc.Group2:
		return "4"
	case marc.Group3:
		return "5"
	default:
		return "6"
	}
}

func identifyAddedEntryGroups(rec marc.Record, group marc.Group) []Candidate {
	g := groupPrefix(group)
	var out []Candidate

	if f, ok := rec.First("240"); ok {
		out = append(out, identify240AddedEntry(f, g)...)
	} else if group == marc.Group2 {
		out = append(out, identifyGroup2Title(rec)...)
	}

	for _, f := range rec.DataFields("700") {
		out = append(out, identify700(f, g)...)
	}
	return out
}

// identify240AddedEntry applies the stricter 240 table of the added-entry
// groups: a form heading is a work only when qualified by number, part,
// or key subfields.
func identify240AddedEntry(f marc.DataField, g string) []Candidate {
	title := f.Value("a")
	if vocab.IsCollectiveTitle(title) {
		return nil
	}
	if vocab.IsForm(title) {
		hasNPR := f.HasSubfield("n") || f.HasSubfield("p") || f.HasSubfield("r")
		if !hasNPR {
			return nil
		}
		return []Candidate{{Field: f, Rule: g + ".1.2.3"}}
	}
	return []Candidate{{Field: f, Rule: g + ".1.3"}}
}

// identifyGroup2Title qualifies the 245 (or a 130) of a GROUP2 record
// without a 240. The 100 must carry no relator code or a creator code.
func identifyGroup2Title(rec marc.Record) []Candidate {
	if !rec.HasField("245") || !rec.HasField("100") {
		return nil
	}
	h, _ := rec.First("100")
	code := h.Value("4")
	if code == "" || vocab.IsCreator(code) {
		f, _ := rec.First("245")
		return []Candidate{{Field: f, Rule: "4.2.1.1.1"}}
	}
	if rec.HasField("110") || rec.HasField("111") {
		return nil
	}
	if f, ok := rec.First("130"); ok {
		return []Candidate{{Field: f, Rule: "4.2.1.3"}}
	}
	return nil
}

// identify700 evaluates one analytic added entry. Only fields with a
// nonempty title subfield and second indicator 2 are candidates.
func identify700(f marc.DataField, g string) []Candidate {
	title := f.Value("t")
	if title == "" || f.Ind2 != "2" {
		return nil
	}
	if vocab.IsCollectiveTitle(title) {
		return nil
	}
	if vocab.IsForm(title) {
		hasM := f.HasSubfield("m")
		hasNPR := f.HasSubfield("n") || f.HasSubfield("p") || f.HasSubfield("r")
		if (!hasM && !hasNPR) || (hasM && !hasNPR) {
			return nil
		}
		return []Candidate{{Field: f, Rule: g + ".3.3.2.3"}}
	}
	return []Candidate{{Field: f, Rule: g + ".3.3.4"}}
}
