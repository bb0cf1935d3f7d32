package marc

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sonatas, ", "Sonatas"},
		{"Bach, Johann Sebastian,", "Bach, Johann Sebastian"},
		{"Symphony no. 5.", "Symphony no. 5"},
		{"piano ;", "piano"},
		{"  plain  ", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Expected Clean(%q) = %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestConcatSubfields(t *testing.T) {
	f := DataField{Tag: "100", Subfields: []Subfield{
		{Code: "a", Value: "Bach, Johann Sebastian,"},
		{Code: "d", Value: "1685-1750."},
		{Code: "4", Value: "cmp"},
	}}

	if got := f.ConcatSubfields("ad"); got != "Bach, Johann Sebastian, 1685-1750" {
		t.Errorf("Expected concatenated name and date, got %q", got)
	}
	if got := f.ConcatSubfields("a"); got != "Bach, Johann Sebastian" {
		t.Errorf("Expected cleaned single subfield, got %q", got)
	}
}

func TestConcatAllExcept(t *testing.T) {
	f := DataField{Tag: "505", Subfields: []Subfield{
		{Code: "a", Value: "Prelude"},
		{Code: "6", Value: "880-01"},
		{Code: "a", Value: "Fugue."},
	}}

	if got := f.ConcatAllExcept("6"); got != "Prelude Fugue" {
		t.Errorf("Expected linkage subfield excluded, got %q", got)
	}
}

func TestControlFieldRange(t *testing.T) {
	f := ControlField{Tag: "008", Value: "820404s1982    nyuzz"}

	if !f.HasRange(18, 19) {
		t.Error("Expected range 18-19 present")
	}
	if got := f.Range(18, 19); got != "zz" {
		t.Errorf("Expected zz, got %q", got)
	}
	short := ControlField{Tag: "007", Value: "sd"}
	if short.HasRange(3, 3) {
		t.Error("Expected range 3 absent on short field")
	}
}

func TestValueList(t *testing.T) {
	f := DataField{Tag: "047", Subfields: []Subfield{
		{Code: "a", Value: "sn"},
		{Code: "a", Value: "su"},
	}}

	got := f.ValueList("a")
	if len(got) != 2 || got[0] != "sn" || got[1] != "su" {
		t.Errorf("Expected [sn su], got %v", got)
	}
}
