// Package marc wraps decoded MARC records with the field-access helpers
// the FRBRization rules need: cleaned subfield values, concatenation over
// subfield subsets, fixed-position control field ranges, and the record
// type and group classifications.
package marc

import "strings"

// Record is a decoded bibliographic or authority record. LeaderType is
// byte 06 of the leader. Fields within a tag keep record order.
type Record struct {
	LeaderType byte
	Control    []ControlField
	Fields     []DataField
}

// ControlField is a 00X field holding a single value.
type ControlField struct {
	Tag   string
	Value string
}

// DataField is a variable field with indicators and subfields.
type DataField struct {
	Tag       string
	Ind1      string
	Ind2      string
	Subfields []Subfield
}

// Subfield is a single code/value pair.
type Subfield struct {
	Code  string
	Value string
}

// HasField reports whether at least one data field with the tag exists.
func (r Record) HasField(tag string) bool {
	for _, f := range r.Fields {
		if f.Tag == tag {
			return true
		}
	}
	return false
}

// DataFields returns all data fields matching any of the given tags, in
// record order per tag.
func (r Record) DataFields(tags ...string) []DataField {
	var out []DataField
	for _, tag := range tags {
		for _, f := range r.Fields {
			if f.Tag == tag {
				out = append(out, f)
			}
		}
	}
	return out
}

// First returns the first data field matching any of the given tags.
func (r Record) First(tags ...string) (DataField, bool) {
	fields := r.DataFields(tags...)
	if len(fields) == 0 {
		return DataField{}, false
	}
	return fields[0], true
}

// ControlFields returns all control fields with the tag.
func (r Record) ControlFields(tag string) []ControlField {
	var out []ControlField
	for _, f := range r.Control {
		if f.Tag == tag {
			out = append(out, f)
		}
	}
	return out
}

// ControlValue returns the first control field value for the tag.
func (r Record) ControlValue(tag string) string {
	for _, f := range r.Control {
		if f.Tag == tag {
			return f.Value
		}
	}
	return ""
}

// ControlNumber returns the record's 001 value.
func (r Record) ControlNumber() string {
	return strings.TrimSpace(r.ControlValue("001"))
}

// HasRange reports whether the control field is long enough to hold the
// inclusive byte range [start, end].
func (f ControlField) HasRange(start, end int) bool {
	return len(f.Value) >= end+1
}

// Range returns the inclusive byte range [start, end] of the value.
func (f ControlField) Range(start, end int) string {
	return f.Value[start : end+1]
}

// HasSubfield reports whether a subfield with the code exists.
func (f DataField) HasSubfield(code string) bool {
	for _, sf := range f.Subfields {
		if sf.Code == code {
			return true
		}
	}
	return false
}

// Value returns the first subfield value for the code, cleaned.
func (f DataField) Value(code string) string {
	for _, sf := range f.Subfields {
		if sf.Code == code {
			return Clean(sf.Value)
		}
	}
	return ""
}

// ValueList returns all subfield values for the code, cleaned.
func (f DataField) ValueList(code string) []string {
	var out []string
	for _, sf := range f.Subfields {
		if sf.Code == code {
			out = append(out, Clean(sf.Value))
		}
	}
	return out
}

// ConcatSubfields joins the values of the subfields whose codes appear in
// codes, in record order, separated by single spaces, then cleans the
// result.
func (f DataField) ConcatSubfields(codes string) string {
	var parts []string
	for _, sf := range f.Subfields {
		if strings.Contains(codes, sf.Code) {
			parts = append(parts, sf.Value)
		}
	}
	return Clean(strings.Join(parts, " "))
}

// ConcatAllExcept joins the values of every subfield whose code does not
// appear in codes. Numeric control subfields are the usual exclusions.
func (f DataField) ConcatAllExcept(codes string) string {
	var parts []string
	for _, sf := range f.Subfields {
		if !strings.Contains(codes, sf.Code) {
			parts = append(parts, sf.Value)
		}
	}
	return Clean(strings.Join(parts, " "))
}

// Clean trims surrounding whitespace and drops a single trailing ISBD
// punctuation mark.
func Clean(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 0 {
		switch s[len(s)-1] {
		case '.', ',', ';':
			s = strings.TrimSpace(s[:len(s)-1])
		}
	}
	return s
}
