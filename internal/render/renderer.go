package render

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	"go.uber.org/zap"

	"github.com/alnah/go-respec/internal/annotation"
)

const (
	// rendererPriority wins over goldmark's html renderer (1000) and the
	// annotation package's silent renderer.
	rendererPriority = 100

	// transformerPriority runs after the footnote extension (999), which
	// appends the footnote list to the document.
	transformerPriority = 1000
)

type renderExtension struct {
	state *State
}

// Extension returns a goldmark extender bound to s.
func (s *State) Extension() goldmark.Extender {
	return &renderExtension{state: s}
}

func (e *renderExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&footnoteDetacher{state: e.state}, transformerPriority),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&Renderer{Config: html.NewConfig(), state: e.state}, rendererPriority),
	))
}

// Renderer renders documents, headings and placeholders.
type Renderer struct {
	html.Config
	state *State
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *Renderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindDocument, r.renderDocument)
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(annotation.KindPlaceholder, r.renderPlaceholder)
}

func (r *Renderer) renderDocument(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString(r.state.sections.Begin())
	} else {
		_, _ = w.WriteString(r.state.sections.Finish())
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if !entering {
		_, _ = w.WriteString("</h")
		_ = w.WriteByte("0123456"[n.Level])
		_, _ = w.WriteString(">\n")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString(r.state.sections.Open(n.Level, annotation.SectionAttributes(n)))

	if id := stringAttr(n, "id"); id != "" && r.state.InTOC(n.Level, stringAttr(n, "class")) {
		r.state.headings = append(r.state.headings, heading{node: n, level: n.Level, id: id})
	}

	_, _ = w.WriteString("<h")
	_ = w.WriteByte("0123456"[n.Level])
	if n.Attributes() != nil {
		html.RenderAttributes(w, n, html.HeadingAttributeFilter)
	}
	_ = w.WriteByte('>')
	return ast.WalkContinue, nil
}

func (r *Renderer) renderPlaceholder(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	kind := node.(*annotation.Placeholder).Content
	t := r.state.token(kind)
	if t == "" {
		r.state.logger.Warn("ignoring repeated placeholder", zap.Stringer("kind", kind))
		return ast.WalkSkipChildren, nil
	}
	_, _ = w.WriteString(t)
	_ = w.WriteByte('\n')
	return ast.WalkSkipChildren, nil
}

// stringAttr returns a []byte or string attribute as a string.
func stringAttr(n ast.Node, name string) string {
	v, ok := n.AttributeString(name)
	if !ok {
		return ""
	}
	switch v := v.(type) {
	case []byte:
		return string(v)
	case string:
		return v
	}
	return ""
}
