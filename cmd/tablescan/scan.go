package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/tablescan/internal/caption"
	"github.com/jackzampolin/tablescan/internal/config"
	"github.com/jackzampolin/tablescan/internal/ocr"
	"github.com/jackzampolin/tablescan/internal/report"
	"github.com/jackzampolin/tablescan/internal/scan"
)

var (
	scanLanguages  []string
	scanDPI        int
	scanComparison string
	scanTessdata   string
	scanVerbose    bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <image-or-pdf> [more...]",
	Short: "OCR scanned pages and report table numbering anomalies",
	Long: `Scan runs Tesseract over the given page images or PDFs, extracts table
captions from the recognized text, and reports captions whose numbering does
not increase.

Multi-part inputs are ordered by numeric filename suffix (report-1.pdf,
report-2.pdf, ...). PDFs are rendered with pdftoppm at the configured DPI.

Examples:
  tablescan scan 4.png                          # Single scanned page
  tablescan scan report-*.pdf                   # Multi-part scan, page order kept
  tablescan scan --comparison numeric 4.png     # Numeric numbering check
  tablescan scan --langs eng --langs deu a.png  # Override OCR languages`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		level := slog.LevelInfo
		if scanVerbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()

		// Flags override config
		if cmd.Flags().Changed("langs") {
			cfg.OCR.Languages = scanLanguages
		}
		if cmd.Flags().Changed("dpi") {
			cfg.OCR.DPI = scanDPI
		}
		if cmd.Flags().Changed("comparison") {
			cfg.Order.Comparison = scanComparison
		}
		if cmd.Flags().Changed("tessdata") {
			cfg.OCR.TessdataPrefix = scanTessdata
		}

		// Tesseract reads its trained data location from the environment.
		if cfg.OCR.TessdataPrefix != "" {
			if err := os.Setenv("TESSDATA_PREFIX", cfg.OCR.TessdataPrefix); err != nil {
				return err
			}
		}

		rep, err := scan.Run(ctx, ocr.NewTesseract(), cfg, scan.Request{
			Paths:  args,
			Logger: logger,
		})
		if err != nil {
			return err
		}

		return report.Output(rep)
	},
}

func init() {
	scanCmd.Flags().StringArrayVar(&scanLanguages, "langs", nil, "tesseract languages (default from config: eng, rus)")
	scanCmd.Flags().IntVar(&scanDPI, "dpi", 0, "render/recognition DPI (default from config: 300)")
	scanCmd.Flags().StringVar(&scanComparison, "comparison", string(caption.ComparisonLexicographic),
		"numbering comparison: lexicographic or numeric")
	scanCmd.Flags().StringVar(&scanTessdata, "tessdata", "", "TESSDATA_PREFIX override for tesseract trained data")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(scanCmd)
}
