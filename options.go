package cv2pdf

import (
	"log/slog"
	"time"
)

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds options collected before NewGenerator builds the stages.
type generatorConfig struct {
	assetPath string
	iconsDir  string
	page      *PageSettings
	footer    *Footer
	browser   BrowserConfig
	htmlOnly  bool
	now       func() time.Time
}

// WithAssetPath reads templates, styles and icons from dir, falling back to
// the embedded assets for anything missing.
func WithAssetPath(dir string) Option {
	return func(g *Generator) {
		g.cfg.assetPath = dir
	}
}

// WithIconsDir reads contact icons (<name>.svg) from dir before any other source.
// static/icons and templates/static/icons in the working directory are
// searched next when they exist.
func WithIconsDir(dir string) Option {
	return func(g *Generator) {
		g.cfg.iconsDir = dir
	}
}

// WithPage sets paper size and margins. Nil keeps the defaults (A4).
func WithPage(p *PageSettings) Option {
	return func(g *Generator) {
		g.cfg.page = p
	}
}

// WithFooter prints a footer on every page. Nil disables it.
func WithFooter(f *Footer) Option {
	return func(g *Generator) {
		g.cfg.footer = f
	}
}

// WithBrowser configures how the headless browser is found.
func WithBrowser(cfg BrowserConfig) Option {
	return func(g *Generator) {
		g.cfg.browser = cfg
	}
}

// WithRenderer replaces the headless-browser renderer, typically in tests.
func WithRenderer(r PDFRenderer) Option {
	return func(g *Generator) {
		g.pdf = r
	}
}

// WithLogger sets the logger for progress and warnings.
// Without it the generator is silent.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// WithHTMLOnly skips PDF generation; no browser is started.
func WithHTMLOnly(htmlOnly bool) Option {
	return func(g *Generator) {
		g.cfg.htmlOnly = htmlOnly
	}
}

// WithClock sets the time source used for "auto" footer dates.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.cfg.now = now
	}
}
