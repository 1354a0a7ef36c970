// Package ids generates kramdown-style heading anchors for goldmark.
package ids

import (
	"strconv"
	"unicode"

	"github.com/gosimple/slug"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
)

// fallback is used when a heading has no usable characters.
const fallback = "section"

// Generator implements parser.IDs. One Generator serves one document.
type Generator struct {
	seen map[string]bool
}

var _ parser.IDs = (*Generator)(nil)

// New returns an empty Generator.
func New() *Generator {
	return &Generator{seen: make(map[string]bool)}
}

// Generate returns a unique id for a heading whose text is value.
// Leading characters up to the first letter are dropped and the rest is
// slugified. Repeats get "-1", "-2", ... appended.
func (g *Generator) Generate(value []byte, kind ast.NodeKind) []byte {
	base := Slug(string(value))
	if !g.seen[base] {
		g.seen[base] = true
		return []byte(base)
	}
	for i := 1; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if !g.seen[candidate] {
			g.seen[candidate] = true
			return []byte(candidate)
		}
	}
}

// Put reserves an id set explicitly in the document.
func (g *Generator) Put(value []byte) {
	g.seen[string(value)] = true
}

// Slug returns the base anchor for text, without deduplication.
func Slug(text string) string {
	start := len(text)
	for i, r := range text {
		if unicode.IsLetter(r) {
			start = i
			break
		}
	}
	s := slug.Make(text[start:])
	if s == "" {
		return fallback
	}
	return s
}
