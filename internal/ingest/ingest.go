// Package ingest collects page images for a scan run from image files and
// PDFs of scanned pages.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ErrInputUnavailable is returned when a scan input is missing or unreadable.
var ErrInputUnavailable = errors.New("input unavailable")

// Page is a single page image ready for recognition.
type Page struct {
	Index int    // zero-based position in the overall scan
	Name  string // source label, e.g. "report-2.pdf#3" or "scan-004.png"
	Data  []byte // encoded image bytes
}

// Request contains the parameters for collecting scan pages.
type Request struct {
	Paths  []string     // image or PDF paths (sorted by numeric suffix)
	DPI    int          // render resolution for PDF pages
	Logger *slog.Logger // optional logger for progress updates
}

// Collect validates the inputs and returns page images in document order.
// Image files contribute one page each; PDFs are rendered page by page.
func Collect(ctx context.Context, req Request) ([]Page, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	if len(req.Paths) == 0 {
		return nil, fmt.Errorf("%w: no input paths provided", ErrInputUnavailable)
	}
	for _, p := range req.Paths {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInputUnavailable, p)
		}
	}

	sortedPaths := sortPathsByNumber(req.Paths)
	log.Debug("collecting pages", "inputs", len(sortedPaths))

	var pages []Page
	for _, p := range sortedPaths {
		if strings.EqualFold(filepath.Ext(p), ".pdf") {
			rendered, err := renderPDF(ctx, p, req.DPI, len(pages))
			if err != nil {
				return nil, err
			}
			pages = append(pages, rendered...)
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInputUnavailable, p)
		}
		pages = append(pages, Page{Index: len(pages), Name: filepath.Base(p), Data: data})
	}

	log.Debug("pages collected", "count", len(pages))
	return pages, nil
}

// renderPDF renders every page of a PDF to PNG bytes. Pages are rendered
// concurrently but returned in page order.
func renderPDF(ctx context.Context, pdfPath string, dpi, indexOffset int) ([]Page, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputUnavailable, pdfPath)
	}
	pageCount, err := api.PageCount(f, nil)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to get page count of %s: %w", pdfPath, err)
	}

	maxWorkers := runtime.NumCPU()

	type result struct {
		pageNum int
		data    []byte
		err     error
	}

	results := make(chan result, pageCount)
	sem := make(chan struct{}, maxWorkers)

	for page := 1; page <= pageCount; page++ {
		sem <- struct{}{} // acquire
		go func(pageInPDF int) {
			defer func() { <-sem }() // release

			data, err := renderPage(ctx, pdfPath, pageInPDF, dpi)
			results <- result{pageNum: pageInPDF, data: data, err: err}
		}(page)
	}

	rendered := make([]Page, pageCount)
	for i := 0; i < pageCount; i++ {
		r := <-results
		if r.err != nil {
			return nil, fmt.Errorf("failed to render page %d of %s: %w", r.pageNum, pdfPath, r.err)
		}
		rendered[r.pageNum-1] = Page{
			Index: indexOffset + r.pageNum - 1,
			Name:  fmt.Sprintf("%s#%d", filepath.Base(pdfPath), r.pageNum),
			Data:  r.data,
		}
	}
	return rendered, nil
}

// renderPage renders a single PDF page using pdftoppm (poppler-utils).
func renderPage(ctx context.Context, pdfPath string, pageInPDF, dpi int) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "tablescan-page-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	outputPrefix := filepath.Join(tmpDir, "page")
	pageStr := strconv.Itoa(pageInPDF)

	// -singlefile drops the page number suffix from the output name
	cmd := exec.CommandContext(ctx, "pdftoppm",
		"-png",
		"-f", pageStr,
		"-l", pageStr,
		"-r", strconv.Itoa(dpi),
		"-singlefile",
		pdfPath,
		outputPrefix,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w (output: %s)", err, string(output))
	}

	data, err := os.ReadFile(outputPrefix + ".png")
	if err != nil {
		return nil, fmt.Errorf("pdftoppm did not create expected output: %w", err)
	}
	return data, nil
}

// numberSuffixPattern extracts a trailing number from a filename stem,
// e.g. "report-2" or "scan_10".
var numberSuffixPattern = regexp.MustCompile(`(\d+)$`)

// sortPathsByNumber orders paths by the numeric suffix of their filename so
// multi-part inputs like report-1.pdf, report-2.pdf, report-10.pdf come back
// in scan order. Paths without a suffix sort first, by name.
func sortPathsByNumber(paths []string) []string {
	sorted := make([]string, len(paths))
	copy(sorted, paths)

	numberOf := func(p string) (int, bool) {
		stem := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		m := numberSuffixPattern.FindStringSubmatch(stem)
		if m == nil {
			return 0, false
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return n, true
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		ni, iok := numberOf(sorted[i])
		nj, jok := numberOf(sorted[j])
		switch {
		case iok && jok:
			return ni < nj
		case iok != jok:
			return !iok // unnumbered first
		default:
			return sorted[i] < sorted[j]
		}
	})
	return sorted
}
