// Command pdfstruct reconstructs the structure of a PDF and writes it as
// Markdown, or as JSON lines with --by-page.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/tsawler/pdfstruct"
	"github.com/tsawler/pdfstruct/internal/config"
	"github.com/tsawler/pdfstruct/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command line invocation and returns the exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)
	if errors.Is(err, config.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "pdfstruct: %v\n", err)
		return 2
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "pdfstruct: %v\n", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()
	logger.Debug("configuration", zap.Stringer("config", cfg))

	res, err := parser(cfg, logger).Parse(ctx)
	if err != nil {
		logger.Error("parse failed", zap.String("input", cfg.Input), zap.Error(err))
		return 1
	}
	for _, w := range res.Warnings {
		logger.Warn(w.String(), zap.String("input", cfg.Input))
	}

	if err := write(cfg, res, stdout); err != nil {
		logger.Error("write failed", zap.String("output", cfg.Output), zap.Error(err))
		return 1
	}
	return 0
}

// parser applies the configuration to a Parser
func parser(cfg *config.Config, logger *zap.Logger) *pdfstruct.Parser {
	return pdfstruct.Open(cfg.Input).
		PageRange(cfg.PagesStart, cfg.PagesEnd).
		Tables(cfg.Tables).
		TableDetector(cfg.Detector).
		Headings(cfg.Headings).
		OCR(cfg.OCR).
		OCRLanguage(cfg.OCRLanguage).
		LineSpacing(cfg.LineSpacing).
		Workers(cfg.Workers).
		TableFormat(cfg.Format).
		Logger(logger)
}

// write renders the result to the configured output
func write(cfg *config.Config, res *pdfstruct.Result, stdout io.Writer) (err error) {
	w := stdout
	if cfg.Output != "" {
		f, ferr := os.Create(cfg.Output)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	if cfg.ByPage {
		return res.WriteLines(w)
	}
	_, err = io.WriteString(w, res.Markdown()+"\n")
	return err
}
