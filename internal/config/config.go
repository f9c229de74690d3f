// Package config loads the command line configuration from flags and
// PDFSTRUCT_ environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tsawler/pdfstruct/export"
	"github.com/tsawler/pdfstruct/internal/logging"
	"github.com/tsawler/pdfstruct/ocr"
	"github.com/tsawler/pdfstruct/tables"
)

const (
	// EnvPrefix prefixes the environment variables, e.g. PDFSTRUCT_WORKERS
	EnvPrefix = "PDFSTRUCT"

	// Default values
	DefaultLogLevel = logging.LevelInfo
	DefaultWorkers  = 1
)

// ErrHelp is returned when usage was requested
var ErrHelp = pflag.ErrHelp

// Config holds the configuration of one command line run
type Config struct {
	// Input
	Input      string
	PagesStart int
	PagesEnd   int // -1 for the last page

	// Pipeline
	Tables      bool
	Detector    string
	Headings    bool
	OCR         ocr.Mode
	OCRLanguage string
	LineSpacing float64
	Workers     int

	// Output
	Format   export.TableFormat
	ByPage   bool
	Output   string // empty for stdout
	LogLevel string
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		PagesStart:  0,
		PagesEnd:    -1,
		Tables:      true,
		Detector:    tables.DefaultDetector,
		Headings:    true,
		OCR:         ocr.Never,
		OCRLanguage: ocr.DefaultLanguage,
		Workers:     DefaultWorkers,
		Format:      export.FormatMarkdown,
		LogLevel:    DefaultLogLevel,
	}
}

// Load parses args, the command line without the program name, on top of
// the environment and returns the resulting configuration. The first
// positional argument is the input file.
func Load(args []string, stderr io.Writer) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()
	fs := pflag.NewFlagSet("pdfstruct", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	setupEnvironment(v, cfg)
	defineFlags(fs, cfg)
	setupUsage(fs, stderr)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	if err := populate(v, cfg); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setupEnvironment configures viper with environment variables and defaults
func setupEnvironment(v *viper.Viper, cfg *Config) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("pages-start", cfg.PagesStart)
	v.SetDefault("pages-end", cfg.PagesEnd)
	v.SetDefault("tables", cfg.Tables)
	v.SetDefault("detector", cfg.Detector)
	v.SetDefault("headings", cfg.Headings)
	v.SetDefault("ocr", cfg.OCR.String())
	v.SetDefault("ocr-lang", cfg.OCRLanguage)
	v.SetDefault("line-spacing", cfg.LineSpacing)
	v.SetDefault("workers", cfg.Workers)
	v.SetDefault("format", cfg.Format.String())
	v.SetDefault("by-page", cfg.ByPage)
	v.SetDefault("output", cfg.Output)
	v.SetDefault("loglevel", cfg.LogLevel)
}

// defineFlags sets up all command line flags
func defineFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.Int("pages-start", cfg.PagesStart, "First page to parse, 0-based")
	fs.Int("pages-end", cfg.PagesEnd, "Page after the last one to parse, -1 for all")
	fs.Bool("tables", cfg.Tables, "Detect tables from ruling lines")
	fs.String("detector", cfg.Detector, "Table detector: "+strings.Join(tables.ListDetectors(), ", "))
	fs.Bool("headings", cfg.Headings, "Infer section headings")
	fs.String("ocr", cfg.OCR.String(), "OCR mode: never, auto or always")
	fs.String("ocr-lang", cfg.OCRLanguage, "Tesseract languages, '+' separated")
	fs.Float64("line-spacing", cfg.LineSpacing, "Body line spacing in points, 0 to infer")
	fs.Int("workers", cfg.Workers, "Pages whose tables are detected concurrently")
	fs.String("format", cfg.Format.String(), "Table format: markdown, jsonl or csv")
	fs.Bool("by-page", cfg.ByPage, "Write one JSON line per rendered page element")
	fs.StringP("output", "o", cfg.Output, "Output file, stdout when empty")
	fs.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
}

// setupUsage configures the custom usage message
func setupUsage(fs *pflag.FlagSet, w io.Writer) {
	fs.Usage = func() {
		fmt.Fprintf(w, "Usage: pdfstruct [options] file.pdf\n")
		fmt.Fprintf(w, "\nReconstructs the structure of a PDF and writes it as Markdown\n\n")
		fmt.Fprintf(w, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(w, "\nEnvironment Variables:\n")
		fmt.Fprintf(w, "  Every option can be set as %s_<NAME>, e.g. %s_WORKERS=4\n", EnvPrefix, EnvPrefix)
	}
}

// populate fills the config struct with values from viper
func populate(v *viper.Viper, cfg *Config) error {
	cfg.PagesStart = v.GetInt("pages-start")
	cfg.PagesEnd = v.GetInt("pages-end")
	cfg.Tables = v.GetBool("tables")
	cfg.Detector = v.GetString("detector")
	cfg.Headings = v.GetBool("headings")
	cfg.OCRLanguage = v.GetString("ocr-lang")
	cfg.LineSpacing = v.GetFloat64("line-spacing")
	cfg.Workers = v.GetInt("workers")
	cfg.ByPage = v.GetBool("by-page")
	cfg.Output = v.GetString("output")
	cfg.LogLevel = v.GetString("loglevel")

	mode, err := ocr.ParseMode(v.GetString("ocr"))
	if err != nil {
		return err
	}
	cfg.OCR = mode

	format, err := export.ParseTableFormat(v.GetString("format"))
	if err != nil {
		return err
	}
	cfg.Format = format
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.New("no input file")
	}
	if c.PagesStart < 0 {
		return errors.New("pages-start must not be negative")
	}
	if c.PagesEnd >= 0 && c.PagesEnd <= c.PagesStart {
		return errors.New("pages-end must be greater than pages-start")
	}
	if c.LineSpacing < 0 {
		return errors.New("line-spacing must not be negative")
	}
	if _, err := tables.GetDetector(c.Detector); err != nil {
		return err
	}
	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Input: %s, Pages: [%d, %d), Tables: %v, Headings: %v, OCR: %s, Workers: %d, Format: %s}",
		c.Input, c.PagesStart, c.PagesEnd, c.Tables, c.Headings, c.OCR, c.Workers, c.Format)
}
