// Package matching pairs ocean and air shipment records and scores how likely
// they belong to the same multi-modal shipper.
package matching

import (
	"strings"
	"unicode"
)

// legalSuffixes are dropped as whole words when building comparison keys.
var legalSuffixes = map[string]struct{}{
	"LLC":         {},
	"INC":         {},
	"CORP":        {},
	"LTD":         {},
	"CO":          {},
	"COMPANY":     {},
	"CORPORATION": {},
	"LIMITED":     {},
}

// NormalizeCompanyName returns the canonical comparison key for a raw company
// name. Punctuation becomes whitespace before suffixes are stripped, so
// "Acme, Inc." and "ACME INC" produce the same key. The result may be empty.
func NormalizeCompanyName(raw string) string {
	upper := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return unicode.ToUpper(r)
		}
		return ' '
	}, raw)

	words := strings.Fields(upper)
	kept := words[:0]
	for _, w := range words {
		if _, ok := legalSuffixes[w]; ok {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// Matchable reports whether a normalized key can take part in name matching.
// Empty keys never match each other.
func Matchable(key string) bool { return key != "" }

// SameCompany compares two raw names by their normalized keys.
func SameCompany(a, b string) bool {
	na, nb := NormalizeCompanyName(a), NormalizeCompanyName(b)
	return Matchable(na) && na == nb
}

// CompanyKey identifies a company profile. It is the normalized name, or the
// upper-cased raw name prefixed with "~" when normalization leaves nothing,
// so suffix-only names get their own profile without ever name-matching.
// Leading "~" in raw is ignored, which makes CompanyKey idempotent.
func CompanyKey(raw string) string {
	raw = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(raw), "~"))
	if n := NormalizeCompanyName(raw); Matchable(n) {
		return n
	}
	return "~" + strings.ToUpper(raw)
}
