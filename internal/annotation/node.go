package annotation

import (
	"strconv"

	"github.com/yuin/goldmark/ast"
)

// Tag records which bag an annotation was attached to.
type Tag int

const (
	// TagNone marks a directive that found no valid target.
	TagNone Tag = iota
	// TagSection marks an attachment to a heading's section attributes.
	TagSection
	// TagAttributes marks an attachment to a block's own attributes.
	TagAttributes
)

func (t Tag) String() string {
	switch t {
	case TagSection:
		return "section"
	case TagAttributes:
		return "attributes"
	default:
		return "none"
	}
}

// KindEndOfBlock is the node kind of EndOfBlock.
var KindEndOfBlock = ast.NewNodeKind("RespecEndOfBlock")

// EndOfBlock is the zero-width sentinel left in place of a consumed directive.
// It renders nothing and is never an attachment target.
type EndOfBlock struct {
	ast.BaseBlock
	Tag     Tag
	Payload string

	line   int
	column int
}

// NewEndOfBlock creates a sentinel for a directive with the given raw payload.
func NewEndOfBlock(payload string) *EndOfBlock {
	return &EndOfBlock{Payload: payload}
}

// Kind implements ast.Node.Kind.
func (n *EndOfBlock) Kind() ast.NodeKind {
	return KindEndOfBlock
}

// Dump implements ast.Node.Dump.
func (n *EndOfBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Tag":     n.Tag.String(),
		"Payload": n.Payload,
		"Line":    strconv.Itoa(n.line),
	}, nil)
}

// PlaceholderKind selects the deferred content a Placeholder stands for.
type PlaceholderKind int

const (
	// PlaceholderTOC marks where the table of contents goes.
	PlaceholderTOC PlaceholderKind = iota + 1
	// PlaceholderFootnotes marks where the footnote list goes.
	PlaceholderFootnotes
)

func (k PlaceholderKind) String() string {
	switch k {
	case PlaceholderTOC:
		return "toc"
	case PlaceholderFootnotes:
		return "footnotes"
	default:
		return "unknown"
	}
}

// KindPlaceholder is the node kind of Placeholder.
var KindPlaceholder = ast.NewNodeKind("RespecPlaceholder")

// Placeholder is a block created by a {:toc} or {:footnotes} line.
type Placeholder struct {
	ast.BaseBlock
	Content PlaceholderKind

	afterBlank bool
}

// NewPlaceholder creates a Placeholder of the given kind.
func NewPlaceholder(kind PlaceholderKind) *Placeholder {
	return &Placeholder{Content: kind}
}

// Kind implements ast.Node.Kind.
func (n *Placeholder) Kind() ast.NodeKind {
	return KindPlaceholder
}

// Dump implements ast.Node.Dump.
func (n *Placeholder) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Content": n.Content.String(),
	}, nil)
}
