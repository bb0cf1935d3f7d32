package vocab

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed countries.yaml
var countriesYAML []byte

//go:embed languages.yaml
var languagesYAML []byte

var (
	loadTables sync.Once
	countries  map[string]string
	languages  map[string]string
)

func load() {
	loadTables.Do(func() {
		if err := yaml.Unmarshal(countriesYAML, &countries); err != nil {
			panic(fmt.Sprintf("failed to parse country table: %v", err))
		}
		if err := yaml.Unmarshal(languagesYAML, &languages); err != nil {
			panic(fmt.Sprintf("failed to parse language table: %v", err))
		}
	})
}

// Country returns the place name for a MARC country code (008/15-17).
// Codes are padded with trailing spaces in fixed fields; these are
// trimmed before lookup.
func Country(code string) string {
	load()
	return countries[strings.TrimSpace(code)]
}

// Language returns the language name for an ISO 639-2 bibliographic code.
func Language(code string) string {
	load()
	return languages[strings.TrimSpace(code)]
}
