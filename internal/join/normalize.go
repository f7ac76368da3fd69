// Package join matches governorate boundaries to indicator rows and
// classifies poverty rates into choropleth bins.
package join

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// aliases maps normalized boundary-file spellings to the normalized
// indicator-table spelling where normalization alone cannot reconcile them.
// The NAME_1 values in the GADM-derived boundary file differ from the INS
// table for these governorates.
var aliases = map[string]string{
	"benaroustunissud": "benarous",
	"manubah":          "manouba",
}

// stripMarks decomposes to NFD, removes combining marks, and recomposes,
// so "Kassérine" and "Kasserine" normalize identically.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeKey reduces a governorate name to its canonical join key:
// whitespace trimmed, diacritics stripped, lowercased, and every
// non-alphanumeric rune dropped, with known aliases folded afterwards.
// "Sidi Bouzid", "SidiBouZid", and "sidi-bouzid" all normalize to
// "sidibouzid".
func NormalizeKey(name string) string {
	s := strings.TrimSpace(name)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	key := b.String()
	if canonical, ok := aliases[key]; ok {
		return canonical
	}
	return key
}
