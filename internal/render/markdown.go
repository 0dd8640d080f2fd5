package render

import (
	"bytes"
	"html/template"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// highlightStyle is the chroma style for fenced code in descriptions.
const highlightStyle = "github"

// markdown renders the free-text CV fields.
// Raw HTML in the source is printed as text, so "List<String>" stays visible.
// Autolinking stays off so a URL written in text appears only once in the output.
type markdown struct {
	md goldmark.Markdown
}

func newMarkdown() *markdown {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Table,
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles keep the HTML self-contained
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			renderer.WithNodeRenderers(util.Prioritized(literalHTMLRenderer{}, 100)),
		),
	)
	return &markdown{md: md}
}

// Block renders text as block-level HTML (paragraphs, lists, code).
func (m *markdown) Block(text string) (template.HTML, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	// #nosec G203 -- goldmark output without unsafe HTML
	return template.HTML(strings.TrimSpace(buf.String())), nil
}

// Inline renders text and unwraps it when the result is a single paragraph,
// so short fields such as achievements do not nest <p> inside <li>.
func (m *markdown) Inline(text string) (template.HTML, error) {
	out, err := m.Block(text)
	if err != nil || out == "" {
		return out, err
	}
	s := string(out)
	if strings.HasPrefix(s, "<p>") && strings.HasSuffix(s, "</p>") && strings.Count(s, "<p>") == 1 {
		s = s[len("<p>") : len(s)-len("</p>")]
	}
	// #nosec G203 -- derived from goldmark output above
	return template.HTML(s), nil
}

// literalHTMLRenderer renders raw HTML nodes as escaped text.
// It takes precedence over the default HTML renderer (priority 1000).
type literalHTMLRenderer struct{}

func (literalHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindRawHTML, renderRawHTML)
	reg.Register(ast.KindHTMLBlock, renderHTMLBlock)
}

func renderRawHTML(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkSkipChildren, nil
	}
	segs := node.(*ast.RawHTML).Segments
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		_, _ = w.Write(util.EscapeHTML(seg.Value(source)))
	}
	return ast.WalkSkipChildren, nil
}

func renderHTMLBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.HTMLBlock)

	var text []byte
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		text = append(text, seg.Value(source)...)
	}
	if n.HasClosure() {
		text = append(text, n.ClosureLine.Value(source)...)
	}

	_, _ = w.WriteString("<p>")
	_, _ = w.Write(util.EscapeHTML(bytes.TrimSpace(text)))
	_, _ = w.WriteString("</p>\n")
	return ast.WalkContinue, nil
}
