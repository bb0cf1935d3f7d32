package marc

import (
	"io"

	"github.com/mitlibraries/fml"
)

// Tags probed when converting an fml record. The fml codec exposes fields
// by tag query only, so conversion enumerates the tags the rules and
// mappers consult.
var (
	controlTags = []string{"001", "003", "005", "007", "008"}

	dataTags = []string{
		"024", "028", "033", "035", "041", "045", "047",
		"100", "110", "111", "130",
		"240", "245", "246", "250", "254", "260",
		"300", "306",
		"400", "410", "411", "440", "490",
		"500", "505", "511", "518",
		"600", "610", "611", "630", "648", "650", "651", "653",
		"654", "655", "656", "657", "658", "662", "667", "670", "678",
		"700", "710", "711", "730", "740",
		"800", "810", "811", "830", "856",
	}
)

// FromFML converts an fml record into the decorated form used by the
// rule engine.
func FromFML(src fml.Record) Record {
	rec := Record{LeaderType: src.Leader.Type}
	for _, tag := range controlTags {
		for _, f := range src.ControlField(tag) {
			rec.Control = append(rec.Control, ControlField{Tag: f.Tag, Value: f.Value})
		}
	}
	for _, tag := range dataTags {
		for _, f := range src.DataField(tag) {
			df := DataField{Tag: f.Tag, Ind1: f.Indicator1, Ind2: f.Indicator2}
			for _, sf := range f.SubFields {
				df.Subfields = append(df.Subfields, Subfield{Code: sf.Code, Value: sf.Value})
			}
			rec.Fields = append(rec.Fields, df)
		}
	}
	return rec
}

// ReadAll decodes every record in a MARC transmission stream. An empty
// stream yields an empty slice.
func ReadAll(r io.Reader) ([]Record, error) {
	var out []Record
	it := fml.NewMarcIterator(r)
	for it.Next() {
		src, err := it.Value()
		if err != nil {
			return out, err
		}
		out = append(out, FromFML(src))
	}
	return out, it.Err()
}
