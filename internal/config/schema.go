package config

import "github.com/jackzampolin/tablescan/internal/caption"

// Config holds tablescan configuration.
// Loaded from ./config.yaml or ~/.tablescan/config.yaml.
type Config struct {
	OCR   OCRCfg   `mapstructure:"ocr" yaml:"ocr"`
	Order OrderCfg `mapstructure:"order" yaml:"order"`
	Scan  ScanCfg  `mapstructure:"scan" yaml:"scan"`
}

// OCRCfg configures the Tesseract engine.
type OCRCfg struct {
	Languages      []string          `mapstructure:"languages" yaml:"languages"`             // tesseract language codes
	DPI            int               `mapstructure:"dpi" yaml:"dpi"`                         // render/recognition resolution
	TessdataPrefix string            `mapstructure:"tessdata_prefix" yaml:"tessdata_prefix"` // TESSDATA_PREFIX override, empty = system default
	RetryAttempts  uint              `mapstructure:"retry_attempts" yaml:"retry_attempts"`   // recognition attempts per page
	Variables      map[string]string `mapstructure:"variables" yaml:"variables"`             // extra tesseract variables, e.g. tessedit_pageseg_mode
}

// OrderCfg configures numbering validation.
type OrderCfg struct {
	// Comparison is "lexicographic" (reference behavior) or "numeric".
	Comparison string `mapstructure:"comparison" yaml:"comparison"`
}

// ScanCfg configures pipeline execution.
type ScanCfg struct {
	MaxWorkers int `mapstructure:"max_workers" yaml:"max_workers"` // max concurrent page recognitions
}

// DefaultConfig returns configuration with sensible defaults. The language
// pair matches the documents this tool targets: Russian technical reports
// with occasional Latin text.
func DefaultConfig() *Config {
	return &Config{
		OCR: OCRCfg{
			Languages:     []string{"eng", "rus"},
			DPI:           300,
			RetryAttempts: 3,
		},
		Order: OrderCfg{
			Comparison: string(caption.ComparisonLexicographic),
		},
		Scan: ScanCfg{
			MaxWorkers: 4,
		},
	}
}

// Validate checks cross-field constraints that viper cannot express.
func (c *Config) Validate() error {
	if _, err := caption.ParseComparison(c.Order.Comparison); err != nil {
		return err
	}
	return nil
}
