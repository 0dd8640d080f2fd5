// Package render merges a CV record into the HTML template.
//
// The output is a single self-contained HTML document: the stylesheet is
// inlined in a <style> block and every contact icon is inlined as SVG
// markup, so the page loads without any external asset.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"strings"

	"github.com/alnah/go-cv2pdf/internal/assets"
	"github.com/alnah/go-cv2pdf/internal/cv"
)

// ErrTemplateRender indicates the template could not be parsed or executed.
var ErrTemplateRender = errors.New("CV template rendering failed")

// Options configures a Renderer.
type Options struct {
	// ExtraCSS is appended after the template stylesheet (page rules).
	ExtraCSS string
	// Logger receives icon warnings; nil discards them.
	Logger *slog.Logger
}

// Renderer renders CV records with a fixed template.
type Renderer struct {
	tmpl   *template.Template
	css    string
	assets assets.Loader
	md     *markdown
	logger *slog.Logger
}

// New loads the "cv" template and style from loader and parses the template.
func New(loader assets.Loader, opts Options) (*Renderer, error) {
	if loader == nil {
		return nil, fmt.Errorf("%w: nil asset loader", ErrTemplateRender)
	}

	content, err := loader.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}

	tmpl, err := template.New(assets.DefaultTemplateName).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing template: %v", ErrTemplateRender, err)
	}

	css, err := loader.LoadStyle(assets.DefaultStyleName)
	if err != nil {
		return nil, fmt.Errorf("loading style: %w", err)
	}
	if opts.ExtraCSS != "" {
		css += "\n" + opts.ExtraCSS
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Renderer{
		tmpl:   tmpl,
		css:    css,
		assets: loader,
		md:     newMarkdown(),
		logger: logger,
	}, nil
}

// Render produces the HTML document for rec. A nil record renders an empty CV.
// Icon failures are logged and the icon is omitted; they never fail the render.
func (r *Renderer) Render(ctx context.Context, rec *cv.Record) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if rec == nil {
		rec = &cv.Record{}
	}

	data, err := r.buildPage(rec)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

// buildPage converts the record into the template view model.
func (r *Renderer) buildPage(rec *cv.Record) (*page, error) {
	p := &page{
		CSS:        template.CSS(sanitizeCSS(r.css)), // #nosec G203 -- trusted asset
		Name:       rec.Name,
		Position:   rec.Position,
		HeaderIcon: r.headerIcon(),
		Skills:     rec.Skills,
		Languages:  rec.Languages,
	}

	var err error
	if p.Summary, err = r.md.Block(rec.Summary); err != nil {
		return nil, markdownErr("summary", err)
	}

	for _, c := range rec.Contacts {
		p.Contacts = append(p.Contacts, r.contact(c))
	}

	for i, e := range rec.EducationCertificates {
		desc, err := r.md.Inline(e.Description)
		if err != nil {
			return nil, markdownErr(fmt.Sprintf("education_certificates[%d].description", i), err)
		}
		p.Education = append(p.Education, educationView{Name: e.Name, Date: e.Date, Description: desc})
	}

	for i, e := range rec.Experience {
		view := experienceView{
			Company:  e.Company,
			Project:  e.Project,
			Date:     e.Date,
			Position: e.Position,
			Stack:    e.Stack,
		}
		if view.Description, err = r.md.Block(e.Description); err != nil {
			return nil, markdownErr(fmt.Sprintf("experience[%d].description", i), err)
		}
		for j, a := range e.Achievements {
			html, err := r.md.Inline(a)
			if err != nil {
				return nil, markdownErr(fmt.Sprintf("experience[%d].achievements[%d]", i, j), err)
			}
			view.Achievements = append(view.Achievements, html)
		}
		p.Experience = append(p.Experience, view)
	}

	return p, nil
}

func markdownErr(field string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrTemplateRender, field, err)
}

// sanitizeCSS escapes sequences that could close the <style> block early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
