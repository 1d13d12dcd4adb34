// Package report defines the scan result document and its CLI output
// formatting.
package report

import (
	"github.com/jackzampolin/tablescan/internal/caption"
)

// Report is the result of one scan run.
type Report struct {
	// ScanID uniquely identifies the run.
	ScanID string `json:"scan_id" yaml:"scan_id"`
	// Pages is the number of page images recognized.
	Pages int `json:"pages" yaml:"pages"`
	// Comparison records which ordering strategy produced Misordered.
	Comparison string `json:"comparison" yaml:"comparison"`
	// Tables lists extracted captions in document order.
	Tables []caption.Record `json:"tables" yaml:"tables"`
	// Misordered lists flagged identifiers, two entries per violation: the
	// offending identifier followed by the one it failed to exceed.
	Misordered []string `json:"misordered" yaml:"misordered"`
}
