package marc

import (
	"fmt"
	"strings"
)

const (
	fieldTerminator    = 0x1e
	recordTerminator   = 0x1d
	subfieldDelimiter  = 0x1f
	leaderLength       = 24
	directoryEntrySize = 12
)

// Encode serializes a record to MARC transmission format, the same
// format the decoder reads and the authority cache stores.
func Encode(rec Record) []byte {
	var dir strings.Builder
	var data strings.Builder

	writeField := func(tag, content string) {
		start := data.Len()
		data.WriteString(content)
		data.WriteByte(fieldTerminator)
		dir.WriteString(fmt.Sprintf("%s%04d%05d", tag, len(content)+1, start))
	}

	for _, cf := range rec.Control {
		writeField(cf.Tag, cf.Value)
	}
	for _, f := range rec.Fields {
		var content strings.Builder
		content.WriteString(indicator(f.Ind1))
		content.WriteString(indicator(f.Ind2))
		for _, sf := range f.Subfields {
			content.WriteByte(subfieldDelimiter)
			content.WriteString(sf.Code)
			content.WriteString(sf.Value)
		}
		writeField(f.Tag, content.String())
	}

	base := leaderLength + dir.Len() + 1
	total := base + data.Len() + 1

	leaderType := rec.LeaderType
	if leaderType == 0 {
		leaderType = 'a'
	}
	leader := fmt.Sprintf("%05dn%cm a22%05d a 4500", total, leaderType, base)

	var out []byte
	out = append(out, leader...)
	out = append(out, dir.String()...)
	out = append(out, fieldTerminator)
	out = append(out, data.String()...)
	out = append(out, recordTerminator)
	return out
}

func indicator(ind string) string {
	if ind == "" {
		return " "
	}
	return ind[:1]
}
