// Package cv2pdf generates a CV as a self-contained HTML page and a PDF.
//
// # Quick Start
//
// Create a generator, run it on a data file, and close it when done:
//
//	gen, err := cv2pdf.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gen.Close()
//
//	res, err := gen.Generate(ctx, "cv.json", "output/cv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.HTMLPath, res.PDFPath)
//
// # Pipeline
//
// Generation runs three stages in order and stops at the first failure:
//
//  1. Load: the JSON (or YAML) data file is parsed into a Record.
//  2. Render: the record is merged into the built-in HTML template, with
//     stylesheet and contact icons inlined so the page has no external
//     references. Summary, description and achievement fields accept Markdown.
//  3. Export: <base>.html is written, printed to PDF by headless Chrome
//     (go-rod), and <base>.pdf is written next to it.
//
// A missing contact icon is not an error: it is logged and left out.
//
// # Configuration
//
//	gen, err := cv2pdf.NewGenerator(
//	    cv2pdf.WithPage(&cv2pdf.PageSettings{Size: "letter", Margin: 0.6}),
//	    cv2pdf.WithFooter(&cv2pdf.Footer{ShowPageNumber: true, Date: "auto"}),
//	    cv2pdf.WithIconsDir("static/icons"),
//	    cv2pdf.WithBrowser(cv2pdf.BrowserConfig{NoSandbox: true}),
//	    cv2pdf.WithLogger(slog.Default()),
//	)
//
// # Browser
//
// The browser binary is taken from BrowserConfig.Bin, then from a Chrome or
// Chromium installation on the system. Set BrowserConfig.DownloadHost or
// Revision to let rod download a Chromium build instead. Without any of
// these, Generate fails with ErrRendererUnavailable.
//
// # Testing
//
// WithRenderer replaces the browser with any PDFRenderer, so the full
// pipeline can run without Chrome.
//
// # Errors
//
// Errors wrap the sentinels in errors.go and can be matched with errors.Is:
//
//	if errors.Is(err, cv2pdf.ErrNotFound) { ... }
package cv2pdf
