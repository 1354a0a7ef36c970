// Package pipeline implements the Markdown-to-HTML stages of a conversion.
//
// Stages, in order:
//   - front matter extraction (title, respecConfig, TOC levels)
//   - Markdown preprocessing (line endings, ==highlight== syntax)
//   - goldmark conversion with the annotation and section extensions,
//     producing a resolved body fragment
//   - CSS injection and relative path rewriting on the final document
//
// Each ToHTML call builds its own goldmark engine and render state, so one
// GoldmarkConverter can serve concurrent conversions.
//
// Hosting the body in a page template and printing to PDF are handled by
// internal/assets and the root respec package.
package pipeline
