package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSortPathsByNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "already sorted",
			input:    []string{"scan-1.png", "scan-2.png", "scan-3.png"},
			expected: []string{"scan-1.png", "scan-2.png", "scan-3.png"},
		},
		{
			name:     "reverse order",
			input:    []string{"scan-3.png", "scan-2.png", "scan-1.png"},
			expected: []string{"scan-1.png", "scan-2.png", "scan-3.png"},
		},
		{
			name:     "mixed with double digits",
			input:    []string{"report-10.pdf", "report-2.pdf", "report-1.pdf"},
			expected: []string{"report-1.pdf", "report-2.pdf", "report-10.pdf"},
		},
		{
			name:     "single file without number",
			input:    []string{"report.pdf"},
			expected: []string{"report.pdf"},
		},
		{
			name:     "numbered and unnumbered",
			input:    []string{"report-2.pdf", "report.pdf", "report-1.pdf"},
			expected: []string{"report.pdf", "report-1.pdf", "report-2.pdf"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sortPathsByNumber(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("length mismatch: got %d, want %d", len(result), len(tt.expected))
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("index %d: got %q, want %q", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestCollectImageFiles(t *testing.T) {
	dir := t.TempDir()
	contents := map[string]string{
		"scan-2.png": "second page",
		"scan-1.png": "first page",
	}
	var paths []string
	for name, body := range contents {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		paths = append(paths, p)
	}

	pages, err := Collect(context.Background(), Request{Paths: paths, DPI: 300})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if pages[0].Name != "scan-1.png" || pages[1].Name != "scan-2.png" {
		t.Errorf("page order = %q, %q; want scan-1.png, scan-2.png", pages[0].Name, pages[1].Name)
	}
	if string(pages[0].Data) != "first page" {
		t.Errorf("page 0 data = %q, want %q", pages[0].Data, "first page")
	}
	for i, p := range pages {
		if p.Index != i {
			t.Errorf("page %d has Index %d", i, p.Index)
		}
	}
}

func TestCollectMissingInput(t *testing.T) {
	_, err := Collect(context.Background(), Request{
		Paths: []string{filepath.Join(t.TempDir(), "nope.png")},
	})
	if !errors.Is(err, ErrInputUnavailable) {
		t.Errorf("error = %v, want ErrInputUnavailable", err)
	}
}

func TestCollectNoInputs(t *testing.T) {
	_, err := Collect(context.Background(), Request{})
	if !errors.Is(err, ErrInputUnavailable) {
		t.Errorf("error = %v, want ErrInputUnavailable", err)
	}
}
