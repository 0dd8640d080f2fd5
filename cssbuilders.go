package cv2pdf

import (
	"fmt"
)

// defaultFontFamily is the font stack for the browser-printed footer.
const defaultFontFamily = "sans-serif"

// marginBottomWithFooter reserves room for the footer line, in inches.
const marginBottomWithFooter = 0.75

// pageMargins returns top, right, bottom, left margins in inches.
func pageMargins(p *PageSettings, footer *Footer) (top, right, bottom, left float64) {
	m := p.Margin
	bottom = m
	if footer != nil && bottom < marginBottomWithFooter {
		bottom = marginBottomWithFooter
	}
	return m, m, bottom, m
}

// buildPageCSS generates the @page rule matching the print settings so the
// HTML output paginates the same way when printed from a regular browser.
// Appended after the template stylesheet, it overrides its @page rule.
func buildPageCSS(p *PageSettings, footer *Footer) string {
	if p == nil {
		p = DefaultPageSettings()
	}
	w, h := p.dimensions()
	top, right, bottom, left := pageMargins(p, footer)
	return fmt.Sprintf(`
/* Page settings */
@page {
  size: %.2fin %.2fin;
  margin: %.2fin %.2fin %.2fin %.2fin;
}
`, w, h, top, right, bottom, left)
}
