package cv2pdf

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/alnah/go-cv2pdf/internal/fileutil"
	"github.com/alnah/go-cv2pdf/internal/pdfcheck"
)

// Output file extensions appended to the output base name.
const (
	extHTML = ".html"
	extPDF  = ".pdf"
)

// ExporterConfig configures an Exporter.
type ExporterConfig struct {
	Page     *PageSettings    // nil = defaults
	Footer   *Footer          // nil = no footer
	HTMLOnly bool             // write the HTML file only
	Logger   *slog.Logger     // nil = silent
	Now      func() time.Time // nil = time.Now
}

// Exporter writes the rendered HTML next to the PDF printed from it.
type Exporter struct {
	renderer PDFRenderer
	cfg      ExporterConfig
	logger   *slog.Logger
	now      func() time.Time
}

// NewExporter creates an Exporter printing through renderer.
// renderer may be nil in HTML-only mode.
func NewExporter(renderer PDFRenderer, cfg ExporterConfig) *Exporter {
	logger := cfg.Logger
	if logger == nil {
		logger = discardLogger()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Exporter{renderer: renderer, cfg: cfg, logger: logger, now: now}
}

// Export writes <base>.html, prints it, and writes <base>.pdf.
// A trailing .html or .pdf on base is ignored. The parent directory of base
// is created when missing. The HTML file is kept when printing fails.
func (e *Exporter) Export(ctx context.Context, htmlContent, base string) (*ExportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base = fileutil.TrimExt(base, extHTML, extPDF)
	if base == "" {
		return nil, fmt.Errorf("%w: empty output name", ErrWrite)
	}

	if err := fileutil.EnsureParentDir(base); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	res := &ExportResult{HTMLPath: base + extHTML}
	if err := fileutil.WriteFile(res.HTMLPath, []byte(htmlContent)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	e.logger.Debug("HTML written", slog.String("path", res.HTMLPath), slog.Int("bytes", len(htmlContent)))

	if e.cfg.HTMLOnly {
		return res, nil
	}

	if e.renderer == nil {
		return nil, fmt.Errorf("%w: no renderer configured", ErrRendererUnavailable)
	}

	footer, err := e.cfg.Footer.resolved(e.now())
	if err != nil {
		return nil, err
	}

	absHTML, err := filepath.Abs(res.HTMLPath)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving %s: %v", ErrWrite, res.HTMLPath, err)
	}

	pdf, err := e.renderer.RenderFromFile(ctx, absHTML, &PDFOptions{Page: e.cfg.Page, Footer: footer})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("%w: renderer returned no data", ErrPDFGeneration)
	}

	pdfPath := base + extPDF
	if err := fileutil.WriteFile(pdfPath, pdf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	res.PDFPath = pdfPath
	res.PDFSize = len(pdf)

	if pages, err := pdfcheck.PageCount(pdf); err != nil {
		e.logger.Warn("could not read PDF page count", slog.Any("error", err))
	} else {
		res.Pages = pages
		e.logger.Debug("PDF written", slog.String("path", pdfPath), slog.Int("pages", pages))
	}

	return res, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
