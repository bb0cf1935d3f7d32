package norm

import "strings"

// Date types and functions used across entity attributes.
const (
	DateSingle = "single"
	DateRange  = "range"

	DateBirth = "birth"
	DateDeath = "death"
)

// Date is the structured form of a loosely formatted date subfield.
type Date struct {
	Text     string
	Normal   string
	Type     string
	Function string
}

// PersonDate parses a personal-name date subfield. A hyphen means a
// life-span range ("1920-1925" -> "1920/1925"). Single dates may carry
// "d." or "b." markers, prefixed or trailing, which are stripped for the
// normalized form; "d." anywhere marks a death date, everything else is a
// birth date. Legacy catalog data writes trailing markers with a space
// ("1920 d"), so the trailing form drops two characters.
func PersonDate(text string) Date {
	t := strings.TrimSpace(text)
	d := Date{Text: t}
	if strings.Contains(t, "-") {
		d.Type = DateRange
		d.Normal = strings.Replace(t, "-", "/", 1)
		return d
	}
	d.Type = DateSingle
	normal := t
	switch {
	case strings.HasPrefix(t, "d."):
		normal = t[2:]
	case strings.HasSuffix(t, "d") && len(t) >= 2:
		normal = t[:len(t)-2]
	case strings.HasPrefix(t, "b."):
		normal = t[2:]
	case strings.HasSuffix(t, "b") && len(t) >= 2:
		normal = t[:len(t)-2]
	}
	d.Normal = strings.TrimSpace(normal)
	if strings.Contains(t, "d.") {
		d.Function = DateDeath
	} else {
		d.Function = DateBirth
	}
	return d
}

// CorporateDate parses a corporate-name date subfield. Only the
// range/single split applies; corporate bodies have no birth or death.
func CorporateDate(text string) Date {
	t := strings.TrimSpace(text)
	d := Date{Text: t}
	if strings.Contains(t, "-") {
		d.Type = DateRange
		d.Normal = strings.Replace(t, "-", "/", 1)
		return d
	}
	d.Type = DateSingle
	d.Normal = t
	return d
}

// Capture033Date normalizes a fixed-width yyyymmdd capture date from an
// 033 field into yyyy[-mm[-dd]], truncated at whatever length is present.
// A "-" placeholder for an unknown digit becomes "?". Malformed input
// yields a best-effort partial string, never an error.
func Capture033Date(text string) string {
	s := strings.ReplaceAll(strings.TrimSpace(text), "-", "?")
	if len(s) > 8 {
		s = s[:8]
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i == 4 || i == 6 {
			b.WriteByte('-')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
