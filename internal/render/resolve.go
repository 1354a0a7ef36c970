package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-respec/internal/annotation"
	"github.com/alnah/go-respec/internal/outline"
)

// Resolve replaces placeholder tokens in body with the deferred content.
//
// r must be the renderer that produced body. Footnotes go where the
// footnote marker was or, without one, are appended once at the end. The
// TOC goes where the TOC marker was and is dropped without one.
func (s *State) Resolve(body []byte, r renderer.Renderer, source []byte) (string, error) {
	footnotes, err := s.renderFootnotes(r, source)
	if err != nil {
		return "", err
	}
	if err := s.resolveRecords(r, source); err != nil {
		return "", err
	}

	out := string(body)
	if t, ok := s.tokens[annotation.PlaceholderFootnotes]; ok {
		out = strings.Replace(out, t+"\n", footnotes, 1)
	} else {
		out += footnotes
	}
	if t, ok := s.tokens[annotation.PlaceholderTOC]; ok {
		toc := outline.RenderTOC(outline.BuildTOC(s.records, s.minLevel, s.maxLevel))
		out = strings.Replace(out, t+"\n", toc, 1)
	}
	return out, nil
}

func (s *State) renderFootnotes(r renderer.Renderer, source []byte) (string, error) {
	if s.footnotes == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, source, s.footnotes); err != nil {
		return "", fmt.Errorf("rendering footnotes: %w", err)
	}
	return buf.String(), nil
}

func (s *State) resolveRecords(r renderer.Renderer, source []byte) error {
	s.records = make([]outline.Record, 0, len(s.headings))
	for _, h := range s.headings {
		title, err := renderTitle(r, source, h.node)
		if err != nil {
			return fmt.Errorf("rendering title of %q: %w", h.id, err)
		}
		s.records = append(s.records, outline.Record{Level: h.level, ID: h.id, Title: title})
	}
	return nil
}

// renderTitle renders the inline content of h without footnote references
// and with links reduced to their text.
func renderTitle(r renderer.Renderer, source []byte, h *ast.Heading) (string, error) {
	var buf bytes.Buffer
	var walk func(parent ast.Node) error
	walk = func(parent ast.Node) error {
		for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
			switch c.Kind() {
			case east.KindFootnoteLink:
				continue
			case ast.KindAutoLink:
				buf.Write(util.EscapeHTML(c.(*ast.AutoLink).Label(source)))
				continue
			case ast.KindLink:
				if err := walk(c); err != nil {
					return err
				}
				continue
			}
			if err := r.Render(&buf, source, c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(h); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
