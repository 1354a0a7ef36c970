package annotation

import (
	"bytes"
	"regexp"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var (
	// directivePattern matches "{:&" + payload up to the first "}".
	// Anything after the closing brace on the same line is consumed.
	directivePattern = regexp.MustCompile(`^\{:&([^}]*)\}`)

	// placeholderPattern matches a line holding only "{:toc}" or "{:footnotes}".
	placeholderPattern = regexp.MustCompile(`^\{:(toc|footnotes)\}[ \t]*\r?\n?$`)
)

type annotationParser struct{}

// NewAnnotationParser returns a block parser for "{:& payload }" lines.
// The payload is attached when the sentinel closes, so the preceding block
// is already complete, including paragraph transformations such as tables.
func NewAnnotationParser() parser.BlockParser {
	return &annotationParser{}
}

func (p *annotationParser) Trigger() []byte {
	return []byte{'{'}
}

func (p *annotationParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || pos >= len(line) {
		return nil, parser.NoChildren
	}
	m := directivePattern.FindSubmatch(line[pos:])
	if m == nil {
		return nil, parser.NoChildren
	}
	node := NewEndOfBlock(string(m[1]))
	node.line, node.column = position(reader.Source(), segment.Start+pos)
	reader.AdvanceToEOL()
	return node, parser.NoChildren
}

func (p *annotationParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	return parser.Close
}

func (p *annotationParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {
	eob := node.(*EndOfBlock)
	target, reason := attachmentTarget(eob, reader.Source())
	if target == nil {
		addError(pc, &MalformedError{
			Line:    eob.line,
			Column:  eob.column,
			Payload: eob.Payload,
			Reason:  reason,
		})
		return
	}
	eob.Tag = Attach(target, eob.Payload)
}

func (p *annotationParser) CanInterruptParagraph() bool {
	return true
}

func (p *annotationParser) CanAcceptIndentedLine() bool {
	return false
}

// attachmentTarget returns the block a directive applies to: its previous
// sibling in the same container. A nil target comes with the reason.
func attachmentTarget(eob *EndOfBlock, source []byte) (ast.Node, string) {
	prev := eob.PreviousSibling()
	switch {
	case prev == nil:
		return nil, "no preceding block"
	case prev.Kind() == KindEndOfBlock:
		return nil, "preceding block is another annotation"
	case prev.Kind() == KindPlaceholder:
		return nil, "preceding block is a placeholder"
	case prev.Kind() == east.KindFootnoteList, prev.Kind() == east.KindFootnote:
		// Footnote definitions are gathered into one list rendered elsewhere.
		return nil, "preceding block is a footnote definition"
	case eob.line > 1 && blankLineBefore(source, eob.line):
		return nil, "separated from the preceding block by a blank line"
	}
	return prev, ""
}

type placeholderParser struct{}

// NewPlaceholderParser returns a block parser for "{:toc}" and "{:footnotes}" lines.
// A list directly above the marker is the conventional dummy list
// ("* TOC") and is dropped from the tree.
func NewPlaceholderParser() parser.BlockParser {
	return &placeholderParser{}
}

func (p *placeholderParser) Trigger() []byte {
	return []byte{'{'}
}

func (p *placeholderParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || pos >= len(line) {
		return nil, parser.NoChildren
	}
	m := placeholderPattern.FindSubmatch(line[pos:])
	if m == nil {
		return nil, parser.NoChildren
	}
	kind := PlaceholderTOC
	if string(m[1]) == "footnotes" {
		kind = PlaceholderFootnotes
	}
	node := NewPlaceholder(kind)
	lineNo, _ := position(reader.Source(), segment.Start+pos)
	node.afterBlank = lineNo == 1 || blankLineBefore(reader.Source(), lineNo)
	reader.AdvanceToEOL()
	return node, parser.NoChildren
}

func (p *placeholderParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	return parser.Close
}

func (p *placeholderParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {
	if node.(*Placeholder).afterBlank {
		return
	}
	if prev := node.PreviousSibling(); prev != nil && prev.Kind() == ast.KindList {
		prev.Parent().RemoveChild(prev.Parent(), prev)
	}
}

func (p *placeholderParser) CanInterruptParagraph() bool {
	return true
}

func (p *placeholderParser) CanAcceptIndentedLine() bool {
	return false
}

// position converts a byte offset into a 1-based line and column.
func position(source []byte, offset int) (line, column int) {
	if offset > len(source) {
		offset = len(source)
	}
	head := source[:offset]
	line = bytes.Count(head, []byte{'\n'}) + 1
	column = offset - (bytes.LastIndexByte(head, '\n') + 1) + 1
	return line, column
}

// blankLineBefore reports whether the source line above line (1-based) is blank.
// Blockquote markers count as blank so nested containers behave the same.
func blankLineBefore(source []byte, line int) bool {
	if line <= 1 {
		return false
	}
	lines := bytes.SplitN(source, []byte{'\n'}, line)
	if len(lines) < line {
		return false
	}
	prev := bytes.Trim(lines[line-2], " \t\r>")
	return len(prev) == 0
}
