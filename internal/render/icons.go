package render

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/alnah/go-cv2pdf/internal/assets"
	"github.com/alnah/go-cv2pdf/internal/cv"
)

// allowedSchemes are the link schemes rendered as clickable hrefs.
var allowedSchemes = []string{"http:", "https:", "mailto:", "tel:"}

// contact builds the view for one contact, inlining its icon.
func (r *Renderer) contact(c cv.Contact) contactView {
	view := contactView{Text: c.Text}

	if c.Icon != "" {
		icon, err := r.inlineIcon(c.Icon)
		if err != nil {
			r.logger.Warn("icon omitted", slog.String("icon", c.Icon), slog.Any("error", err))
		} else {
			view.Icon = icon
			r.logger.Debug("embedded SVG icon", slog.String("icon", c.Icon))
		}
	}

	if c.Link != "" {
		if link, ok := safeLink(c.Link); ok {
			view.Link = link
		} else {
			r.logger.Warn("link dropped: unsupported scheme", slog.String("link", c.Link))
		}
	}

	// A contact with only a link still shows something readable
	if view.Text == "" && view.Link != "" {
		view.Text = c.Link
	}

	return view
}

// inlineIcon returns the SVG markup for an icon reference.
// Errors wrap assets.ErrIconNotFound so callers can treat every icon
// failure the same way.
func (r *Renderer) inlineIcon(ref string) (template.HTML, error) {
	if assets.IsInlineSVG(ref) {
		return template.HTML(strings.TrimSpace(ref)), nil // #nosec G203 -- author-supplied SVG
	}

	name, err := assets.IconName(ref)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", assets.ErrIconNotFound, ref, err)
	}

	svg, err := r.assets.LoadIcon(name)
	if err != nil {
		if errors.Is(err, assets.ErrIconNotFound) {
			return "", err
		}
		return "", fmt.Errorf("%w: %q: %v", assets.ErrIconNotFound, ref, err)
	}
	return template.HTML(svg), nil // #nosec G203 -- SVG from the icons directory
}

// headerIcon loads the CV header icon. Missing is fine.
func (r *Renderer) headerIcon() template.HTML {
	svg, err := r.assets.LoadIcon(assets.HeaderIconName)
	if err != nil {
		r.logger.Debug("header icon not available", slog.Any("error", err))
		return ""
	}
	return template.HTML(svg) // #nosec G203 -- SVG from the icons directory
}

// safeLink marks links with a known scheme (or no scheme) as trusted URLs.
func safeLink(link string) (template.URL, bool) {
	link = strings.TrimSpace(link)
	lower := strings.ToLower(link)

	colon := strings.Index(lower, ":")
	slash := strings.IndexAny(lower, "/?#")
	hasScheme := colon > 0 && (slash == -1 || colon < slash)
	if !hasScheme {
		return template.URL(link), true // #nosec G203 -- relative link
	}

	for _, scheme := range allowedSchemes {
		if strings.HasPrefix(lower, scheme) {
			return template.URL(link), true // #nosec G203 -- scheme allowlisted
		}
	}
	return "", false
}
