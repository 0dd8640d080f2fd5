package cv2pdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-cv2pdf/internal/cv"
	"github.com/alnah/go-cv2pdf/internal/dateutil"
)

// CV data types. See the cv package for field documentation.
type (
	Record     = cv.Record
	Contact    = cv.Contact
	SkillGroup = cv.SkillGroup
	Education  = cv.Education
	Language   = cv.Language
	Experience = cv.Experience
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// paperSizes holds page dimensions in inches (width, height).
var paperSizes = map[string][2]float64{
	PageSizeA4:     {8.27, 11.69},
	PageSizeLetter: {8.5, 11},
	PageSizeLegal:  {8.5, 14},
}

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size   string  // "a4", "letter", "legal"
	Margin float64 // inches, applied to all sides
}

// DefaultPageSettings returns A4 with default margins.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:   PageSizeA4,
		Margin: DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}
	if _, ok := paperSizes[strings.ToLower(p.Size)]; !ok {
		return fmt.Errorf("%w: %q (must be a4, letter, or legal)", ErrInvalidPageSize, p.Size)
	}
	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}
	return nil
}

// dimensions returns the paper width and height in inches.
// Unknown sizes fall back to A4; Validate rejects them earlier.
func (p *PageSettings) dimensions() (width, height float64) {
	size, ok := paperSizes[strings.ToLower(p.Size)]
	if !ok {
		size = paperSizes[PageSizeA4]
	}
	return size[0], size[1]
}

// Footer configures the footer printed by the browser on every page.
type Footer struct {
	Position       string // "left", "center", "right" (default: "right")
	ShowPageNumber bool
	Date           string // literal text, "auto" or "auto:FORMAT"
	Text           string
}

// Validate checks that footer settings are valid.
// Returns nil if f is nil (nil means no footer).
func (f *Footer) Validate() error {
	if f == nil {
		return nil
	}
	switch strings.ToLower(f.Position) {
	case "", "left", "center", "right":
	default:
		return fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidFooterPosition, f.Position)
	}
	if _, err := dateutil.Resolve(f.Date, time.Time{}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFooterDate, err)
	}
	return nil
}

// resolved returns a copy with the date expanded against now.
func (f *Footer) resolved(now time.Time) (*Footer, error) {
	if f == nil {
		return nil, nil
	}
	date, err := dateutil.Resolve(f.Date, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFooterDate, err)
	}
	out := *f
	out.Date = date
	return &out, nil
}

// BrowserConfig selects the headless browser used to print PDFs.
//
// The binary is resolved in order: Bin, a Chrome or Chromium found on the
// system, then a managed download when DownloadHost or Revision is set.
type BrowserConfig struct {
	Bin          string // explicit browser binary
	NoSandbox    bool   // required in most containers and CI runners
	DownloadHost string // "google", "npm", "playwright" or a URL template with %d
	Revision     int    // Chromium revision for managed downloads (0 = rod default)
}

// Validate checks the download settings.
func (b BrowserConfig) Validate() error {
	if _, err := downloadHost(b.DownloadHost); err != nil {
		return err
	}
	if b.Revision < 0 {
		return fmt.Errorf("%w: negative revision %d", ErrInvalidDownloadHost, b.Revision)
	}
	return nil
}

// ExportResult describes the files written by an export.
type ExportResult struct {
	HTMLPath string
	PDFPath  string // empty in HTML-only mode
	PDFSize  int
	Pages    int // 0 when unknown or HTML-only
}

// Result is the outcome of a full generation.
type Result struct {
	ExportResult
	Record *Record
}
