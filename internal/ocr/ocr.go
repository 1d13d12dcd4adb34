// Package ocr abstracts the text-recognition engine behind a small interface
// so the scan pipeline can be driven by Tesseract in production and by fakes
// in tests.
package ocr

import "context"

// Input is a single page image submitted for recognition.
type Input struct {
	// ID is a caller-provided identifier echoed back in the Result.
	ID string
	// Image is the encoded image payload (PNG, JPEG, or TIFF).
	Image []byte
	// Languages lists tesseract language codes (e.g. "eng", "rus").
	Languages []string
	// DPI is the effective dots-per-inch for the image; zero means unknown.
	DPI int
	// Variables passes engine-specific knobs (e.g. tessedit_pageseg_mode)
	// without hard-coding them into the API surface.
	Variables map[string]string
}

// Result is the recognized text for a single input.
type Result struct {
	// InputID mirrors the Input.ID that produced this result.
	InputID string
	// PlainText is the linearized text extracted from the image.
	PlainText string
}

// Engine is the recognition contract: one image in, one result out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (Result, error)
}
