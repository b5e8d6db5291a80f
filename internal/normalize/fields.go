package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	digitRun    = regexp.MustCompile(`\d+`)
	nonCharges  = regexp.MustCompile(`[^\d.]`)
	multiSpace  = regexp.MustCompile(`\s+`)
	punctuation = regexp.MustCompile(`[?]`)
)

// DigitRun extracts the first contiguous run of digits anywhere in the text
// and parses it as an integer. Returns nil when no digit run exists. This is
// the tolerant parse used for customer_id, tiers, and state_id, where values
// arrive with free-text noise like "CUST-2323" or "tier-2".
func DigitRun(s string) *int64 {
	m := digitRun.FindString(s)
	if m == "" {
		return nil
	}
	v, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// Int parses an integer tolerant of surrounding whitespace and symbols.
// Behaves like DigitRun; kept as its own name because year/day values are
// nominally numeric rather than embedded in free text.
func Int(s string) *int64 {
	return DigitRun(strings.TrimSpace(s))
}

// Children extracts the first digit run, defaulting to 0 when none exists.
// The extract commonly omits this field and its absence is non-critical, so
// it is the only field with a default-on-failure policy.
func Children(s string) int64 {
	if v := DigitRun(s); v != nil {
		return *v
	}
	return 0
}

// monthNums maps the lowercase three-letter month prefix to its number.
var monthNums = map[string]int64{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// Month resolves a month name or abbreviation to its number by matching the
// first three characters case-insensitively ("January", "jan", "SEP").
// Returns nil if the prefix is not a month.
func Month(s string) *int64 {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return nil
	}
	v, ok := monthNums[strings.ToLower(s[:3])]
	if !ok {
		return nil
	}
	return &v
}

// Charges strips every character that is not a digit or decimal point, then
// parses the remainder as a float. Absorbs currency symbols, thousands
// separators, and unit suffixes ("Rs. 1,234.56" -> 1234.56). Leading dots left
// behind by currency abbreviations are discarded. Returns nil when the
// stripped string is empty or not a valid number, including values too large
// for a float64.
func Charges(s string) *float64 {
	stripped := nonCharges.ReplaceAllString(s, "")
	stripped = strings.TrimLeft(stripped, ".")
	if stripped == "" {
		return nil
	}
	v, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return nil
	}
	return &v
}

// CanonicalHeader canonicalizes a raw extract column name: trim, lowercase,
// drop question marks, spaces to underscores. "Hospital tier?" -> "hospital_tier".
func CanonicalHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = punctuation.ReplaceAllString(s, "")
	s = multiSpace.ReplaceAllString(s, "_")
	return s
}
