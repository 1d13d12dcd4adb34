// Package caption extracts table captions from OCR-recognized text and
// checks their numbering for ordering anomalies.
package caption

import (
	"regexp"
	"strings"
)

// MarkerWord is the keyword that introduces a table caption line.
const MarkerWord = "Таблица"

// Record is a single extracted table caption.
type Record struct {
	// Identifier is the dotted numeric token (e.g. "3", "3.1", "12.4.2"),
	// captured verbatim from the text.
	Identifier string `json:"identifier" yaml:"identifier"`
	// Title is the free text following the identifier on the caption line.
	// May be empty.
	Title string `json:"title" yaml:"title"`
}

// captionPattern matches the marker word, whitespace, a digit/period token,
// and an optional trailing title on the same line.
var captionPattern = regexp.MustCompile(MarkerWord + `\s+([0-9.]+)[ \t]*(.*)$`)

// Extract scans recognized text for caption lines and returns one Record per
// match, in document order.
//
// Before matching, every pipe character is replaced with the digit 1 across
// the whole input. Tesseract frequently misreads "1" as "|" in table numbers
// ("3|1" for "311"), and the substitution is applied up front so identifiers
// are repaired before any line is inspected.
//
// Captions split across two lines by an OCR line break are not stitched back
// together; the fragment without the marker word is skipped like any other
// non-matching line. Duplicate identifiers each produce their own Record.
func Extract(text string) []Record {
	text = strings.ReplaceAll(text, "|", "1")

	var records []Record
	for _, line := range strings.Split(text, "\n") {
		m := captionPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		records = append(records, Record{
			Identifier: m[1],
			Title:      strings.TrimSpace(m[2]),
		})
	}
	return records
}
