package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/pdfstruct/export"
	"github.com/tsawler/pdfstruct/ocr"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load([]string{"doc.pdf"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "doc.pdf", cfg.Input)
	assert.Equal(t, 0, cfg.PagesStart)
	assert.Equal(t, -1, cfg.PagesEnd)
	assert.True(t, cfg.Tables)
	assert.Equal(t, "lines", cfg.Detector)
	assert.True(t, cfg.Headings)
	assert.Equal(t, ocr.Never, cfg.OCR)
	assert.Equal(t, ocr.DefaultLanguage, cfg.OCRLanguage)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, export.FormatMarkdown, cfg.Format)
	assert.False(t, cfg.ByPage)
	assert.Empty(t, cfg.Output)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadFlags(t *testing.T) {
	args := []string{
		"--pages-start=2", "--pages-end=5",
		"--tables=false", "--headings=false",
		"--ocr=auto", "--ocr-lang=eng",
		"--line-spacing=1.5", "--workers=4",
		"--format=jsonl", "--by-page",
		"-o", "out.md", "--loglevel=debug",
		"report.pdf",
	}
	cfg, err := Load(args, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "report.pdf", cfg.Input)
	assert.Equal(t, 2, cfg.PagesStart)
	assert.Equal(t, 5, cfg.PagesEnd)
	assert.False(t, cfg.Tables)
	assert.False(t, cfg.Headings)
	assert.Equal(t, ocr.Auto, cfg.OCR)
	assert.Equal(t, "eng", cfg.OCRLanguage)
	assert.Equal(t, 1.5, cfg.LineSpacing)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, export.FormatJSONLines, cfg.Format)
	assert.True(t, cfg.ByPage)
	assert.Equal(t, "out.md", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PDFSTRUCT_WORKERS", "3")
	t.Setenv("PDFSTRUCT_FORMAT", "csv")
	t.Setenv("PDFSTRUCT_OCR_LANG", "deu")

	cfg, err := Load([]string{"doc.pdf"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, export.FormatCSV, cfg.Format)
	assert.Equal(t, "deu", cfg.OCRLanguage)

	// flags win over the environment
	cfg, err = Load([]string{"--workers=6", "doc.pdf"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Workers)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no input", nil},
		{"bad ocr mode", []string{"--ocr=sometimes", "doc.pdf"}},
		{"bad format", []string{"--format=xml", "doc.pdf"}},
		{"empty range", []string{"--pages-start=3", "--pages-end=3", "doc.pdf"}},
		{"negative start", []string{"--pages-start=-1", "doc.pdf"}},
		{"unknown detector", []string{"--detector=stream", "doc.pdf"}},
		{"no workers", []string{"--workers=0", "doc.pdf"}},
		{"bad log level", []string{"--loglevel=loud", "doc.pdf"}},
		{"unknown flag", []string{"--colour", "doc.pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, &bytes.Buffer{})
			assert.Error(t, err)
		})
	}
}

func TestLoadHelp(t *testing.T) {
	var stderr bytes.Buffer
	_, err := Load([]string{"--help"}, &stderr)
	assert.True(t, errors.Is(err, ErrHelp))
	assert.Contains(t, stderr.String(), "Usage: pdfstruct")
	assert.Contains(t, stderr.String(), "--workers")
}
