package caption

import (
	"reflect"
	"testing"
)

func recordsFor(ids ...string) []Record {
	records := make([]Record, 0, len(ids))
	for _, id := range ids {
		records = append(records, Record{Identifier: id})
	}
	return records
}

func TestMisordered(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		expected []string
	}{
		{
			name:     "strictly increasing",
			ids:      []string{"1", "2", "3"},
			expected: nil,
		},
		{
			name:     "repeated identifier flags current and previous",
			ids:      []string{"1", "1", "2"},
			expected: []string{"1", "1"},
		},
		{
			name:     "lexicographic quirk flags 10 after 2",
			ids:      []string{"2", "10"},
			expected: []string{"10", "2"},
		},
		{
			name:     "decreasing sequence flags every step",
			ids:      []string{"3", "2", "1"},
			expected: []string{"2", "3", "1", "2"},
		},
		{
			name:     "dotted identifiers increasing",
			ids:      []string{"1", "1.1", "1.2", "2"},
			expected: nil,
		},
		{
			name:     "first record compared against zero cursor",
			ids:      []string{"0"},
			expected: []string{"0", "0"},
		},
		{
			name:     "empty sequence",
			ids:      nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Misordered(recordsFor(tt.ids...))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Misordered(%v) = %v, want %v", tt.ids, got, tt.expected)
			}
		})
	}
}

func TestMisorderedByNumeric(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		expected []string
	}{
		{
			name:     "multi-digit segment is not flagged",
			ids:      []string{"2", "10"},
			expected: nil,
		},
		{
			name:     "dotted multi-digit segment is not flagged",
			ids:      []string{"1.9", "1.10"},
			expected: nil,
		},
		{
			name:     "prefix sorts before its extension",
			ids:      []string{"1.2", "1.2.1"},
			expected: nil,
		},
		{
			name:     "true regression still flagged",
			ids:      []string{"5", "3"},
			expected: []string{"3", "5"},
		},
		{
			name:     "repeat still flagged",
			ids:      []string{"4", "4"},
			expected: []string{"4", "4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MisorderedBy(recordsFor(tt.ids...), ComparisonNumeric)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("MisorderedBy(%v) = %v, want %v", tt.ids, got, tt.expected)
			}
		})
	}
}

func TestParseComparison(t *testing.T) {
	if _, err := ParseComparison("alphabetical"); err == nil {
		t.Error("expected error for unknown comparison")
	}
	got, err := ParseComparison("")
	if err != nil {
		t.Fatalf("ParseComparison(\"\") error = %v", err)
	}
	if got != ComparisonLexicographic {
		t.Errorf("empty comparison = %q, want %q", got, ComparisonLexicographic)
	}
	if c, err := ParseComparison("numeric"); err != nil || c != ComparisonNumeric {
		t.Errorf("ParseComparison(numeric) = %q, %v", c, err)
	}
}
