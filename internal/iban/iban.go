// Package iban normalizes and shape-checks Swiss IBANs.
package iban

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	swissShapeRegex = regexp.MustCompile(`^CH\d{19}$`)
)

// testBankCode is the clearing number used for synthesized sandbox IBANs.
const testBankCode = "00851"

// Normalize strips all whitespace and upper-cases the input. It is total:
// malformed input normalizes to a malformed string, validity is IsValidSwiss's
// concern.
func Normalize(raw string) string {
	return strings.ToUpper(whitespaceRegex.ReplaceAllString(raw, ""))
}

// IsValidSwiss reports whether the input has the shape of a Swiss IBAN:
// "CH" followed by exactly 19 digits. This is a shape check only, the
// ISO 7064 MOD-97 checksum is not verified.
func IsValidSwiss(raw string) bool {
	if raw == "" {
		return false
	}
	return swissShapeRegex.MatchString(Normalize(raw))
}

// Synthesize produces a plausible-looking sandbox IBAN. It must never back a
// real charge; callers gate it behind the allow-synthetic-iban setting.
func Synthesize() string {
	return fmt.Sprintf("CH%d%s%09d", 10+rand.IntN(90), testBankCode, rand.IntN(1_000_000_000))
}
