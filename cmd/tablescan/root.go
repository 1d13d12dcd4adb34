package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/tablescan/internal/report"
	"github.com/jackzampolin/tablescan/version"
)

var (
	cfgFile      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "tablescan",
	Short: "Extract table captions from scanned documents and check their numbering",
	Long: `Tablescan runs Tesseract OCR over scanned document pages, extracts
"Таблица N — Title" captions from the recognized text, and reports tables
whose numbering is out of sequence.

The pipeline includes:
  - Page collection from image files and PDFs of scans
  - Tesseract recognition with OCR artifact repair (| read as 1)
  - Caption extraction in document order
  - Numbering validation (lexicographic or numeric comparison)`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.tablescan/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		report.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
