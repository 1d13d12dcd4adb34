// Package scan runs the full pipeline: collect page images, recognize them,
// extract table captions, and check caption numbering.
package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"

	"github.com/jackzampolin/tablescan/internal/caption"
	"github.com/jackzampolin/tablescan/internal/config"
	"github.com/jackzampolin/tablescan/internal/ingest"
	"github.com/jackzampolin/tablescan/internal/ocr"
	"github.com/jackzampolin/tablescan/internal/report"
)

// ErrRecognitionFailed is returned when the OCR engine fails on a page after
// all retry attempts.
var ErrRecognitionFailed = errors.New("recognition engine failure")

// Request contains the parameters for a scan run.
type Request struct {
	Paths  []string     // image or PDF paths
	Logger *slog.Logger // optional logger for progress updates
}

// Run executes the pipeline for one document. Page texts are joined into a
// single blob before caption extraction, so captions are matched against the
// document as a whole, in page order.
func Run(ctx context.Context, engine ocr.Engine, cfg *config.Config, req Request) (*report.Report, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	cmp, err := caption.ParseComparison(cfg.Order.Comparison)
	if err != nil {
		return nil, err
	}

	scanID := uuid.New().String()
	log.Info("starting scan", "scan_id", scanID, "inputs", len(req.Paths), "engine", engine.Name())

	pages, err := ingest.Collect(ctx, ingest.Request{
		Paths:  req.Paths,
		DPI:    cfg.OCR.DPI,
		Logger: log,
	})
	if err != nil {
		return nil, err
	}

	texts, err := recognizePages(ctx, engine, cfg, pages, log)
	if err != nil {
		return nil, err
	}

	text := strings.Join(texts, "\n")
	tables := caption.Extract(text)
	misordered := caption.MisorderedBy(tables, cmp)

	log.Info("scan complete", "scan_id", scanID, "pages", len(pages), "tables", len(tables), "misordered", len(misordered)/2)

	return &report.Report{
		ScanID:     scanID,
		Pages:      len(pages),
		Comparison: string(cmp),
		Tables:     tables,
		Misordered: misordered,
	}, nil
}

// recognizePages runs OCR over all pages with bounded concurrency. Results
// come back in page order regardless of completion order.
func recognizePages(ctx context.Context, engine ocr.Engine, cfg *config.Config, pages []ingest.Page, log *slog.Logger) ([]string, error) {
	maxWorkers := cfg.Scan.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	type result struct {
		index int
		text  string
		err   error
	}

	results := make(chan result, len(pages))
	sem := make(chan struct{}, maxWorkers)

	for _, page := range pages {
		sem <- struct{}{} // acquire
		go func(p ingest.Page) {
			defer func() { <-sem }() // release

			text, err := recognizePage(ctx, engine, cfg, p)
			results <- result{index: p.Index, text: text, err: err}
		}(page)
	}

	texts := make([]string, len(pages))
	var firstErr error
	for range pages {
		r := <-results
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		texts[r.index] = r.text
	}
	if firstErr != nil {
		return nil, firstErr
	}

	log.Debug("recognition complete", "pages", len(pages))
	return texts, nil
}

// recognizePage runs OCR on one page, retrying transient engine failures.
func recognizePage(ctx context.Context, engine ocr.Engine, cfg *config.Config, page ingest.Page) (string, error) {
	attempts := cfg.OCR.RetryAttempts
	if attempts == 0 {
		attempts = 1
	}

	in := ocr.Input{
		ID:        page.Name,
		Image:     page.Data,
		Languages: cfg.OCR.Languages,
		DPI:       cfg.OCR.DPI,
		Variables: cfg.OCR.Variables,
	}

	var res ocr.Result
	err := retry.Do(
		func() error {
			var err error
			res, err = engine.Recognize(ctx, in)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return "", fmt.Errorf("%w: page %s: %v", ErrRecognitionFailed, page.Name, err)
	}
	return res.PlainText, nil
}
