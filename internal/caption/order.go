package caption

import (
	"fmt"
	"strconv"
	"strings"
)

// Comparison selects how identifiers are ordered when checking numbering.
type Comparison string

const (
	// ComparisonLexicographic compares identifiers as plain strings. This is
	// the default. It mis-handles multi-digit
	// segments ("10" sorts before "2"), which is a known quirk callers may
	// rely on for compatibility.
	ComparisonLexicographic Comparison = "lexicographic"
	// ComparisonNumeric compares identifiers segment by segment as numbers,
	// so "2" < "10" and "1.9" < "1.10".
	ComparisonNumeric Comparison = "numeric"
)

// ParseComparison validates a comparison name from config or flags.
func ParseComparison(s string) (Comparison, error) {
	switch Comparison(s) {
	case ComparisonLexicographic, ComparisonNumeric:
		return Comparison(s), nil
	case "":
		return ComparisonLexicographic, nil
	}
	return "", fmt.Errorf("unknown comparison %q (want %q or %q)", s, ComparisonLexicographic, ComparisonNumeric)
}

// Misordered reports identifiers that do not exceed their predecessor, using
// the default lexicographic comparison.
func Misordered(records []Record) []string {
	return MisorderedBy(records, ComparisonLexicographic)
}

// MisorderedBy walks records in document order, comparing each identifier to
// the previous one. The cursor starts at "0", so the first record is checked
// like any other. Each violation appends two entries: the offending identifier
// followed by the identifier it failed to exceed. The cursor advances on every
// record, violation or not.
func MisorderedBy(records []Record, cmp Comparison) []string {
	var flagged []string
	prev := "0"
	for _, r := range records {
		if compare(r.Identifier, prev, cmp) <= 0 {
			flagged = append(flagged, r.Identifier, prev)
		}
		prev = r.Identifier
	}
	return flagged
}

func compare(a, b string, cmp Comparison) int {
	if cmp == ComparisonNumeric {
		return compareNumeric(a, b)
	}
	return strings.Compare(a, b)
}

// compareNumeric orders dotted identifiers segment by segment. Segments that
// fail to parse (empty, from OCR garbage like "3..1") fall back to string
// comparison for that segment. A shorter identifier that is a prefix of a
// longer one sorts first ("1.2" < "1.2.1").
func compareNumeric(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aerr := strconv.Atoi(as[i])
		bn, berr := strconv.Atoi(bs[i])
		if aerr != nil || berr != nil {
			if c := strings.Compare(as[i], bs[i]); c != 0 {
				return c
			}
			continue
		}
		if an != bn {
			if an < bn {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	}
	return 0
}
