package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/tablescan/internal/caption"
	"github.com/jackzampolin/tablescan/internal/report"
)

var captionsComparison string

var captionsCmd = &cobra.Command{
	Use:   "captions [textfile]",
	Short: "Extract table captions from already-recognized text",
	Long: `Captions skips OCR and runs caption extraction and numbering validation
directly on recognized text, read from a file or stdin. Useful for inspecting
saved OCR output or for debugging the extraction itself.

Examples:
  tablescan captions recognized.txt
  tesseract 4.png - -l eng+rus | tablescan captions`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
		}

		cmp, err := caption.ParseComparison(captionsComparison)
		if err != nil {
			return err
		}

		tables := caption.Extract(string(data))
		return report.Output(report.Report{
			Comparison: string(cmp),
			Tables:     tables,
			Misordered: caption.MisorderedBy(tables, cmp),
		})
	},
}

func init() {
	captionsCmd.Flags().StringVar(&captionsComparison, "comparison", string(caption.ComparisonLexicographic),
		"numbering comparison: lexicographic or numeric")

	rootCmd.AddCommand(captionsCmd)
}
