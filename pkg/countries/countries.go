// Package countries provides a bidirectional lookup between ISO 3166-1
// alpha-2 codes and English country names, backed by the CLDR region data
// shipped with golang.org/x/text.
package countries

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Codes seen in upstream playlist data that are not ISO 3166-1 alpha-2.
var aliases = map[string]string{
	"UK": "GB",
	"EL": "GR",
}

var (
	once       sync.Once
	nameByCode map[string]string
	codeByName map[string]string
)

func buildTables() {
	nameByCode = make(map[string]string, 256)
	codeByName = make(map[string]string, 256)
	namer := display.English.Regions()
	for a := byte('A'); a <= 'Z'; a++ {
		for b := byte('A'); b <= 'Z'; b++ {
			code := string([]byte{a, b})
			region, err := language.ParseRegion(code)
			if err != nil || region.String() != code {
				// Unassigned, or an alias that canonicalizes elsewhere.
				continue
			}
			if canonical := region.Canonicalize(); canonical != region {
				// Deprecated code superseded by another (DD for DE, BU for
				// MM). These share a display name with their replacement and
				// would poison the reverse map.
				continue
			}
			name := namer.Name(region)
			if name == "" || name == code {
				continue
			}
			nameByCode[code] = name
			if _, ok := codeByName[name]; !ok {
				codeByName[name] = code
			}
		}
	}
}

// Name resolves a two-letter country code (case-insensitive) to its English
// short name. Returns false when the code is not recognized.
func Name(code string) (string, bool) {
	once.Do(buildTables)
	code = strings.ToUpper(code)
	if canonical, ok := aliases[code]; ok {
		code = canonical
	}
	name, ok := nameByCode[code]
	return name, ok
}

// Code is the reverse lookup, resolving an English country name to its
// alpha-2 code. Used for flag icon URLs.
func Code(name string) (string, bool) {
	once.Do(buildTables)
	code, ok := codeByName[name]
	return code, ok
}
