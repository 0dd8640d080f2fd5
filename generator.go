package cv2pdf

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/alnah/go-cv2pdf/internal/assets"
	"github.com/alnah/go-cv2pdf/internal/cv"
	"github.com/alnah/go-cv2pdf/internal/fileutil"
	"github.com/alnah/go-cv2pdf/internal/render"
)

// defaultIconsDirs are searched, relative to the working directory, after the
// configured icons directory. Directories that do not exist are skipped.
var defaultIconsDirs = []string{
	filepath.Join("static", "icons"),
	filepath.Join("templates", "static", "icons"),
}

// iconsDirs returns the icon directories in lookup order.
func iconsDirs(configured string) []string {
	var dirs []string
	if configured != "" {
		dirs = append(dirs, configured)
	}
	for _, dir := range defaultIconsDirs {
		if dir == filepath.Clean(configured) || !fileutil.DirExists(dir) {
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

// stage is a step of the generation pipeline.
type stage int

const (
	stageIdle stage = iota
	stageLoaded
	stageRendered
	stageExported
	stageDone
)

func (s stage) String() string {
	switch s {
	case stageIdle:
		return "idle"
	case stageLoaded:
		return "loaded"
	case stageRendered:
		return "rendered"
	case stageExported:
		return "exported"
	case stageDone:
		return "done"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Generator turns a CV data file into HTML and PDF documents.
// Create with NewGenerator, call Generate, and Close when done.
// A Generator is not safe for concurrent use.
type Generator struct {
	cfg      generatorConfig
	logger   *slog.Logger
	pdf      PDFRenderer
	renderer *render.Renderer
	exporter *Exporter
}

// NewGenerator validates options and prepares the pipeline.
// The headless browser is only started by the first Generate call.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg: generatorConfig{now: time.Now},
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.logger == nil {
		g.logger = discardLogger()
	}
	if g.cfg.now == nil {
		g.cfg.now = time.Now
	}
	if g.cfg.page == nil {
		g.cfg.page = DefaultPageSettings()
	}

	if err := g.cfg.page.Validate(); err != nil {
		return nil, err
	}
	if err := g.cfg.footer.Validate(); err != nil {
		return nil, err
	}
	if err := g.cfg.browser.Validate(); err != nil {
		return nil, err
	}

	icons := iconsDirs(g.cfg.iconsDir)
	loader, err := assets.NewResolver(g.cfg.assetPath, icons...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	g.logger.Debug("assets resolved",
		slog.Bool("custom", loader.HasCustomLoader()),
		slog.Any("iconsDirs", icons))

	g.renderer, err = render.New(loader, render.Options{
		ExtraCSS: buildPageCSS(g.cfg.page, g.cfg.footer),
		Logger:   g.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing renderer: %w", err)
	}

	if g.pdf == nil && !g.cfg.htmlOnly {
		g.pdf = newRodRenderer(g.cfg.browser, g.logger)
	}

	g.exporter = NewExporter(g.pdf, ExporterConfig{
		Page:     g.cfg.page,
		Footer:   g.cfg.footer,
		HTMLOnly: g.cfg.htmlOnly,
		Logger:   g.logger,
		Now:      g.cfg.now,
	})

	return g, nil
}

// Generate loads inputPath, renders it, and writes outputBase.html and
// outputBase.pdf. It stops at the first failing stage; a failed PDF leaves
// the HTML file in place. Recovers from internal panics.
func (g *Generator) Generate(ctx context.Context, inputPath, outputBase string) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	current := stageIdle
	advance := func(next stage) {
		g.logger.Debug("stage", slog.String("from", current.String()), slog.String("to", next.String()))
		current = next
	}

	g.logger.Info("Loading CV data", slog.String("input", inputPath))
	rec, err := cv.Load(inputPath)
	if err != nil {
		return nil, err
	}
	advance(stageLoaded)

	g.logger.Info("Generating HTML")
	htmlContent, err := g.Render(ctx, rec)
	if err != nil {
		return nil, err
	}
	advance(stageRendered)

	if !g.cfg.htmlOnly {
		g.logger.Info("Converting to PDF")
	}
	exported, err := g.exporter.Export(ctx, htmlContent, outputBase)
	if err != nil {
		return nil, err
	}
	advance(stageExported)

	attrs := []any{slog.String("html", exported.HTMLPath)}
	if exported.PDFPath != "" {
		attrs = append(attrs, slog.String("pdf", exported.PDFPath), slog.Int("pages", exported.Pages))
	}
	g.logger.Info("CV generation completed", attrs...)
	advance(stageDone)

	return &Result{ExportResult: *exported, Record: rec}, nil
}

// Render produces the self-contained HTML document for rec.
func (g *Generator) Render(ctx context.Context, rec *Record) (string, error) {
	htmlContent, err := g.renderer.Render(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("rendering HTML: %w", err)
	}
	return htmlContent, nil
}

// Close releases the headless browser, if one was started.
func (g *Generator) Close() error {
	if g.pdf != nil {
		return g.pdf.Close()
	}
	return nil
}
