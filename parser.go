package pdfstruct

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/tsawler/pdfstruct/export"
	"github.com/tsawler/pdfstruct/heading"
	"github.com/tsawler/pdfstruct/layout"
	"github.com/tsawler/pdfstruct/links"
	"github.com/tsawler/pdfstruct/model"
	"github.com/tsawler/pdfstruct/ocr"
	"github.com/tsawler/pdfstruct/pdfsource"
	"github.com/tsawler/pdfstruct/tables"
)

// Parser provides a fluent interface for reconstructing documents.
// Each configuration method returns a new Parser instance, making it
// safe for concurrent use and allowing method chaining.
type Parser struct {
	// Source
	filename string
	source   pdfsource.Source

	// Configuration
	options ParseOptions
}

// clone creates a shallow copy of the Parser with a copy of options.
func (p *Parser) clone() *Parser {
	return &Parser{
		filename: p.filename,
		source:   p.source,
		options:  p.options.clone(),
	}
}

// openSource returns the source to read and whether Parse owns it.
func (p *Parser) openSource() (pdfsource.Source, bool, error) {
	if p.source != nil {
		return p.source, false, nil
	}
	if p.filename == "" {
		return nil, false, fmt.Errorf("no filename specified")
	}
	src, err := pdfsource.Open(p.filename)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open PDF: %w", err)
	}
	return src, true, nil
}

// ============================================================================
// Configuration Methods
// ============================================================================

// PageRange restricts the parse to pages [start, end), 0-based. An end
// beyond the page count is clamped. Parse fails with ErrPageRange when
// start >= end after clamping.
//
// Example:
//
//	res, err := pdfstruct.Open("doc.pdf").PageRange(2, 5).Parse(ctx)
func (p *Parser) PageRange(start, end int) *Parser {
	newP := p.clone()
	newP.options.start = start
	newP.options.end = end
	return newP
}

// Tables enables or disables table detection. Enabled by default.
func (p *Parser) Tables(enabled bool) *Parser {
	newP := p.clone()
	newP.options.tables = enabled
	return newP
}

// TableDetector selects a detector registered with tables.RegisterDetector.
// Parse fails when no detector has that name.
// Default: tables.DefaultDetector
func (p *Parser) TableDetector(name string) *Parser {
	newP := p.clone()
	newP.options.detector = name
	return newP
}

// Headings enables or disables heading inference. When disabled, blocks
// carry no section titles and only the main title is computed.
// Enabled by default.
func (p *Parser) Headings(enabled bool) *Parser {
	newP := p.clone()
	newP.options.headings = enabled
	return newP
}

// OCR sets when scanned pages are recognized. Recognition needs a build
// with the "ocr" tag; without it pages are left as extracted and a
// warning is reported.
//
// Example:
//
//	res, err := pdfstruct.Open("scan.pdf").OCR(ocr.Auto).Parse(ctx)
func (p *Parser) OCR(mode ocr.Mode) *Parser {
	newP := p.clone()
	newP.options.ocrMode = mode
	return newP
}

// OCRLanguage sets the Tesseract languages, "+" separated.
// Default: ocr.DefaultLanguage
func (p *Parser) OCRLanguage(lang string) *Parser {
	newP := p.clone()
	newP.options.ocrLanguage = lang
	return newP
}

// LineSpacing fixes the body line spacing used to split blocks. Zero
// infers it from the document.
func (p *Parser) LineSpacing(spacing float64) *Parser {
	newP := p.clone()
	newP.options.lineSpacing = spacing
	return newP
}

// Workers sets how many pages have their tables detected concurrently.
// Values below 1 mean sequential detection.
func (p *Parser) Workers(n int) *Parser {
	newP := p.clone()
	newP.options.workers = n
	return newP
}

// TableFormat selects how tables are rendered by the Result exporters.
func (p *Parser) TableFormat(format export.TableFormat) *Parser {
	newP := p.clone()
	newP.options.tableFormat = format
	return newP
}

// Logger sets the logger for pipeline decisions, logged at debug level.
// A nil logger disables logging.
func (p *Parser) Logger(logger *zap.Logger) *Parser {
	newP := p.clone()
	if logger == nil {
		logger = zap.NewNop()
	}
	newP.options.logger = logger
	return newP
}

// Metrics registers parse counters on reg. Parsers sharing a registerer
// share the counters.
func (p *Parser) Metrics(reg prometheus.Registerer) *Parser {
	newP := p.clone()
	newP.options.registerer = reg
	return newP
}

// ============================================================================
// Terminal Operations
// ============================================================================

// run carries the state of one parse.
type run struct {
	opts     ParseOptions
	log      *zap.Logger
	metrics  *metrics
	warnings []Warning
}

func (r *run) warn(page int, msg string, err error) {
	r.warnings = append(r.warnings, Warning{Page: page, Message: msg, Err: err})
	r.log.Debug(msg, zap.Int("page", page), zap.Error(err))
}

// Parse runs the reconstruction pipeline and returns its result. The
// context is checked between pages.
//
// Example:
//
//	res, err := pdfstruct.Open("document.pdf").Parse(ctx)
//	if errors.Is(err, pdfstruct.ErrNoText) {
//	    res, err = pdfstruct.Open("document.pdf").OCR(ocr.Always).Parse(ctx)
//	}
func (p *Parser) Parse(ctx context.Context) (*Result, error) {
	src, owned, err := p.openSource()
	if err != nil {
		return nil, err
	}
	if owned {
		defer src.Close()
	}

	m, err := newMetrics(p.options.registerer)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	r := &run{opts: p.options, log: p.options.logger, metrics: m}

	pageCount := src.PageCount()
	if pageCount == 0 {
		return nil, ErrNoPages
	}
	start, end, err := r.opts.pageRange(pageCount)
	if err != nil {
		return nil, err
	}

	contents, err := r.extract(ctx, src, start, end)
	if err != nil {
		return nil, err
	}
	doc := model.NewDocument(pageCount, contents)

	analyzer := layout.NewAnalyzerWithConfig(r.analyzerConfig())
	if n := analyzer.DetectHeaderFooter(doc); n > 0 {
		r.log.Debug("header/footer spans", zap.Int("count", n))
	}
	if bound := links.Bind(doc); bound < len(doc.Links) {
		r.log.Debug("unbound links", zap.Int("count", len(doc.Links)-bound))
	}

	if !hasText(doc) {
		return nil, ErrNoText
	}

	if r.opts.tables {
		candidates, err := r.detectTables(ctx, doc)
		if err != nil {
			return nil, err
		}
		doc.Tables = tables.NewBinder().Bind(doc, candidates)
		r.metrics.table("kept", len(doc.Tables))
		r.metrics.table("rejected", len(candidates)-len(doc.Tables))
		r.log.Debug("tables",
			zap.Int("candidates", len(candidates)),
			zap.Int("kept", len(doc.Tables)))
	}

	analysis := analyzer.Analyze(doc)
	r.log.Debug("layout",
		zap.Int("lines", len(analysis.Lines)),
		zap.Int("blocks", len(analysis.Blocks)),
		zap.Float64("spacing", analysis.Spacing))

	res := &Result{
		Doc:      doc,
		exporter: export.NewExporterWithConfig(export.Config{TableFormat: r.opts.tableFormat}),
	}

	engine := heading.NewEngine()
	if r.opts.headings {
		outline, err := src.Outline()
		if err != nil {
			r.warn(-1, "outline unreadable", err)
		}
		inferred := engine.Infer(doc, outline)
		for _, a := range inferred.Attempts {
			r.log.Debug("heading tier",
				zap.Stringer("source", a.Source),
				zap.Int("entries", a.Entries),
				zap.Int("found", a.Found),
				zap.Bool("accepted", a.Accepted))
		}
		r.metrics.tier(inferred.Source.String())
		res.Toc = inferred.Titles
		res.TocSource = inferred.Source
		res.MainTitle = inferred.MainTitle
		res.Attempts = inferred.Attempts
	} else {
		res.MainTitle = engine.MainTitle(doc)
	}

	res.Warnings = r.warnings
	return res, nil
}

// analyzerConfig applies the parse options to the layout defaults.
func (r *run) analyzerConfig() layout.AnalyzerConfig {
	config := layout.DefaultAnalyzerConfig()
	config.Block.LineSpacing = r.opts.lineSpacing
	return config
}

// extract reads the pages of [start, end), recognizing scanned pages when
// OCR is enabled. Unreadable pages are skipped with a warning.
func (r *run) extract(ctx context.Context, src pdfsource.Source, start, end int) ([]model.PageContent, error) {
	recognizer := r.recognizer()
	if recognizer != nil {
		defer recognizer.Close()
	}

	contents := make([]model.PageContent, 0, end-start)
	for i := start; i < end; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, err := src.Page(i)
		if err != nil {
			r.warn(i, "page unreadable", err)
			continue
		}
		if recognizer != nil {
			r.recognize(src, recognizer, &content)
		}
		r.metrics.page()
		contents = append(contents, content)
	}
	return contents, nil
}

// recognizer returns an OCR client when OCR is requested and available.
func (r *run) recognizer() *ocr.Client {
	if r.opts.ocrMode == ocr.Never {
		return nil
	}
	client, err := ocr.New()
	if err != nil {
		r.warn(-1, "OCR unavailable", err)
		return nil
	}
	if err := client.SetLanguage(r.opts.ocrLanguage); err != nil {
		r.warn(-1, "OCR language rejected", err)
		client.Close()
		return nil
	}
	if err := client.SetPageSegMode(ocr.PSM_AUTO); err != nil {
		r.warn(-1, "OCR segmentation mode rejected", err)
		client.Close()
		return nil
	}
	return client
}

// recognize replaces the spans of content by the text recognized in its
// images when the OCR mode calls for it.
func (r *run) recognize(src pdfsource.Source, client *ocr.Client, content *model.PageContent) {
	images, err := src.PageImages(content.Number)
	if err != nil {
		r.warn(content.Number, "page images unreadable", err)
		return
	}
	if !r.opts.ocrMode.ShouldRecognize(content.HasText(), len(images) > 0) {
		return
	}

	var spans []model.Span
	for _, img := range images {
		found, err := client.RecognizeSpans(img, content.Rect)
		if err != nil {
			r.warn(content.Number, "OCR failed", err)
			continue
		}
		spans = append(spans, found...)
	}
	r.log.Debug("OCR page", zap.Int("page", content.Number), zap.Int("spans", len(spans)))
	if len(spans) > 0 {
		content.Spans = spans
	}
}

// tableJob is the argument of one page of table detection.
type tableJob struct {
	page    model.PageInfo
	results []model.Table
	wg      *sync.WaitGroup
}

// detectTables finds table candidates on every page, with up to
// opts.workers pages at a time. Candidates are returned in page order.
func (r *run) detectTables(ctx context.Context, doc *model.Document) ([]model.Table, error) {
	detector, err := tables.GetDetector(r.opts.detector)
	if err != nil {
		return nil, err
	}
	jobs := make([]*tableJob, len(doc.Pages))
	for i, page := range doc.Pages {
		jobs[i] = &tableJob{page: page}
	}

	detect := func(job *tableJob) {
		job.results = detector.Detect(job.page.Number, job.page.Drawings)
	}

	if r.opts.workers <= 1 || len(jobs) < 2 {
		for _, job := range jobs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			detect(job)
		}
		return mergeJobs(jobs), nil
	}

	pool, err := ants.NewPoolWithFunc(r.opts.workers, func(arg any) {
		job := arg.(*tableJob)
		defer job.wg.Done()
		detect(job)
	})
	if err != nil {
		return nil, fmt.Errorf("create table detection pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		job.wg = &wg
		wg.Add(1)
		if err := pool.Invoke(job); err != nil {
			wg.Done()
			detect(job)
		}
	}
	wg.Wait()
	return mergeJobs(jobs), nil
}

func mergeJobs(jobs []*tableJob) []model.Table {
	var out []model.Table
	for _, job := range jobs {
		out = append(out, job.results...)
	}
	return out
}

// hasText reports whether any span outside page furniture carries text.
func hasText(doc *model.Document) bool {
	for _, s := range doc.Spans {
		if !s.IsEmpty() && !doc.Classes.Of(s.ID).HeaderFooter {
			return true
		}
	}
	return false
}
