// Package annotation implements the "{:& payload }" directive for goldmark.
//
// A directive line attaches its payload to the block right above it in the
// same container. Headings receive it on the section they open (see
// SectionAttributes); every other block receives it as an HTML attribute.
// A payload equal to one of Keywords becomes the class attribute, anything
// else becomes data-tests.
//
// The package also recognizes "{:toc}" and "{:footnotes}" marker lines and
// turns them into Placeholder nodes for the renderer to resolve.
package annotation

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Parser priorities. Both run before goldmark's default block parsers.
const (
	annotationParserPriority  = 90
	placeholderParserPriority = 91
	defaultRendererPriority   = 500
)

type annotationExtension struct{}

// Extension registers the directive and placeholder parsers together with
// renderers that output nothing for the nodes they create.
var Extension goldmark.Extender = &annotationExtension{}

func (e *annotationExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithBlockParsers(
		util.Prioritized(NewAnnotationParser(), annotationParserPriority),
		util.Prioritized(NewPlaceholderParser(), placeholderParserPriority),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&silentRenderer{}, defaultRendererPriority),
	))
}

// silentRenderer renders sentinels and unresolved placeholders as nothing.
type silentRenderer struct{}

func (r *silentRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindEndOfBlock, renderNothing)
	reg.Register(KindPlaceholder, renderNothing)
}

func renderNothing(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	return ast.WalkSkipChildren, nil
}
