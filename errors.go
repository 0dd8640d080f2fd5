package cv2pdf

import (
	"errors"

	"github.com/alnah/go-cv2pdf/internal/assets"
	"github.com/alnah/go-cv2pdf/internal/cv"
	"github.com/alnah/go-cv2pdf/internal/render"
)

// Sentinel errors for library operations.
var (
	// Data loading errors.
	ErrNotFound = cv.ErrNotFound
	ErrParse    = cv.ErrParse

	// Rendering errors. ErrIconNotFound is recovered inside the renderer
	// (the icon is omitted) and only surfaces in logs.
	ErrIconNotFound   = assets.ErrIconNotFound
	ErrTemplateRender = render.ErrTemplateRender

	// Export errors.
	ErrRendererUnavailable = errors.New("PDF renderer unavailable")
	ErrWrite               = errors.New("failed to write output")
	ErrPageLoad            = errors.New("failed to load page")
	ErrPDFGeneration       = errors.New("PDF generation failed")

	// Page settings validation errors.
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidMargin   = errors.New("invalid margin")

	// Footer validation errors.
	ErrInvalidFooterPosition = errors.New("invalid footer position")
	ErrInvalidFooterDate     = errors.New("invalid footer date")

	// Configuration errors.
	ErrInvalidAssetPath    = errors.New("invalid asset path")
	ErrInvalidDownloadHost = errors.New("invalid browser download host")
)
