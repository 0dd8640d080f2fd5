package cv2pdf

import (
	"context"
	"fmt"
	"html"
	"io"
	"log/slog"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-cv2pdf/internal/fileutil"
	"github.com/alnah/go-cv2pdf/internal/process"
)

// PDFRenderer loads an HTML file and prints it to PDF.
// The production implementation drives headless Chrome; tests inject stubs.
type PDFRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *PDFOptions) ([]byte, error)
	Close() error
}

// Compile-time interface check.
var _ PDFRenderer = (*rodRenderer)(nil)

// PDFOptions holds print settings for one render.
type PDFOptions struct {
	Page   *PageSettings // nil = defaults
	Footer *Footer       // nil = no footer; Date already resolved
}

// rodRenderer implements PDFRenderer using go-rod.
// The browser is started on first use and reused until Close.
type rodRenderer struct {
	cfg      BrowserConfig
	logger   *slog.Logger
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// newRodRenderer creates a rodRenderer. No browser is started yet.
// A nil logger discards output.
func newRodRenderer(cfg BrowserConfig, logger *slog.Logger) *rodRenderer {
	if logger == nil {
		logger = discardLogger()
	}
	return &rodRenderer{cfg: cfg, logger: logger}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser(ctx context.Context) error {
	if r.browser != nil {
		return nil
	}

	bin, err := resolveBrowserBin(ctx, r.cfg, r.logger)
	if err != nil {
		return err
	}

	// The launcher context kills the browser when ctx is cancelled (SIGINT/SIGTERM).
	l := launcher.New().Context(ctx).Bin(bin).Headless(true)
	if r.cfg.NoSandbox {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		l.Kill()
		l.Cleanup()
		return fmt.Errorf("%w: launching %s: %v", ErrRendererUnavailable, bin, err)
	}
	r.launcher = l

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		r.shutdown()
		return fmt.Errorf("%w: connecting to browser: %v", ErrRendererUnavailable, err)
	}
	r.browser = browser
	r.logger.Debug("browser started", slog.String("bin", bin), slog.Int("pid", l.PID()))
	return nil
}

// Close releases browser resources: the connection, the process tree, and
// the temporary user-data directory.
func (r *rodRenderer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.shutdown()
	return err
}

// shutdown kills the browser process tree and removes its profile directory.
func (r *rodRenderer) shutdown() {
	if r.launcher == nil {
		return
	}
	process.KillTree(r.launcher.PID())
	r.launcher.Kill()
	r.launcher.Cleanup()
	r.launcher = nil
}

// RenderFromFile opens a local HTML file in headless Chrome and prints it to PDF.
// A single attempt is made; the caller decides whether to retry.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *PDFOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(ctx); err != nil {
		return nil, err
	}

	target, err := fileutil.FileURL(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	page, err := r.browser.Context(ctx).Page(proto.TargetCreateTarget{URL: target})
	if err != nil {
		return nil, fmt.Errorf("%w: creating page: %v", ErrPageLoad, err)
	}
	defer func() { _ = page.Close() }()

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := (proto.EmulationSetEmulatedMedia{Media: "print"}).Call(page); err != nil {
		return nil, fmt.Errorf("%w: emulating print media: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(buildPDFOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return data, nil
}

// buildPDFOptions constructs proto.PagePrintToPDF from page and footer settings.
func buildPDFOptions(opts *PDFOptions) *proto.PagePrintToPDF {
	page := DefaultPageSettings()
	var footer *Footer
	if opts != nil {
		if opts.Page != nil {
			page = opts.Page
		}
		footer = opts.Footer
	}

	w, h := page.dimensions()
	top, right, bottom, left := pageMargins(page, footer)

	pdfOpts := &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(w),
		PaperHeight:     floatPtr(h),
		MarginTop:       floatPtr(top),
		MarginRight:     floatPtr(right),
		MarginBottom:    floatPtr(bottom),
		MarginLeft:      floatPtr(left),
		PrintBackground: true,
	}

	if footer != nil {
		pdfOpts.DisplayHeaderFooter = true
		pdfOpts.HeaderTemplate = "<span></span>" // empty header
		pdfOpts.FooterTemplate = buildFooterTemplate(footer, left)
	}

	return pdfOpts
}

// buildFooterTemplate generates the HTML for Chrome's native footer.
// pageNumber and totalPages are filled in by Chrome via CSS classes.
func buildFooterTemplate(f *Footer, sidePadding float64) string {
	if f == nil {
		return "<span></span>"
	}

	var parts []string
	if f.ShowPageNumber {
		parts = append(parts, `<span class="pageNumber"></span>/<span class="totalPages"></span>`)
	}
	if f.Date != "" {
		parts = append(parts, html.EscapeString(f.Date))
	}
	if f.Text != "" {
		parts = append(parts, html.EscapeString(f.Text))
	}
	if len(parts) == 0 {
		return "<span></span>"
	}

	textAlign := "right"
	switch strings.ToLower(f.Position) {
	case "left":
		textAlign = "left"
	case "center":
		textAlign = "center"
	}

	return fmt.Sprintf(`<div style="font-size: 9px; font-family: %s; color: #888; width: 100%%; text-align: %s; padding: 0 %.2fin;">%s</div>`,
		defaultFontFamily, textAlign, sidePadding, strings.Join(parts, " - "))
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
