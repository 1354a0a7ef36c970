package render

import (
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// footnoteDetacher moves the footnote list out of the document into the state.
type footnoteDetacher struct {
	state *State
}

func (t *footnoteDetacher) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	for c := doc.LastChild(); c != nil; c = c.PreviousSibling() {
		if c.Kind() == east.KindFootnoteList {
			doc.RemoveChild(doc, c)
			t.state.footnotes = c
			return
		}
	}
}
