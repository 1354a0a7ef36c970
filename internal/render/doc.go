// Package render produces the sectioned HTML body of a respec document.
//
// A State belongs to exactly one conversion. Its Extension hooks into
// goldmark at three points:
//
//   - the document renderer opens and closes the outermost section;
//   - the heading renderer emits section markup, the heading element and a
//     TOC record for every eligible heading;
//   - the placeholder renderer emits an opaque token for "{:toc}" and
//     "{:footnotes}" markers.
//
// An AST transformer detaches the footnote list before rendering so the
// footnotes can be placed afterwards. Once the body is rendered, Resolve
// swaps the tokens for the TOC and footnote markup.
package render
