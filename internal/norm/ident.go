// Package norm produces the identity strings used to deduplicate
// persons, corporate bodies, and works across catalog records.
package norm

import (
	"regexp"
	"strings"

	textnorm "golang.org/x/text/unicode/norm"
)

var spaceRuns = regexp.MustCompile(` +`)

// AuthIdent folds raw heading text into the primary match key: whitespace
// runs collapse to one space, diacritics are decomposed and dropped, case
// is preserved. Empty or missing input yields the empty string, which
// callers must treat as "no usable identity".
func AuthIdent(raw string) string {
	s := strings.TrimSpace(raw)
	s = spaceRuns.ReplaceAllString(s, " ")
	return asciiFold(s)
}

// NormalName is the coarser fallback key: AuthIdent plus case folding.
func NormalName(raw string) string {
	return strings.ToLower(AuthIdent(raw))
}

// asciiFold decomposes to NFD and drops everything outside ASCII, so
// "Dvořák" and "Dvorak" produce the same key.
func asciiFold(s string) string {
	decomposed := textnorm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
