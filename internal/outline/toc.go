package outline

import (
	"html"
	"strings"
)

// Record is one heading collected while rendering, in document order.
type Record struct {
	Level int    // 1-6
	ID    string // anchor id, never empty
	Title string // rendered inline HTML
}

// Node is a TOC entry with its nested entries.
type Node struct {
	Level    int
	ID       string
	Title    string
	Children []*Node
}

// BuildTOC nests records into a forest.
//
// Records outside [minLevel, maxLevel] are skipped. A record becomes a child
// of the most recent kept record with a strictly smaller level, otherwise a
// root. Skipped levels produce no intermediate nodes.
func BuildTOC(records []Record, minLevel, maxLevel int) []*Node {
	var roots []*Node
	var stack []*Node // path from a root to the last kept node

	for _, r := range records {
		if r.Level < minLevel || r.Level > maxLevel {
			continue
		}
		n := &Node{Level: r.Level, ID: r.ID, Title: r.Title}

		for len(stack) > 0 && stack[len(stack)-1].Level >= r.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, n)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, n)
		}
		stack = append(stack, n)
	}
	return roots
}

// RenderTOC renders forest as a kramdown-style nested list.
// Titles are written as-is; ids are escaped. An empty forest renders as "".
func RenderTOC(forest []*Node) string {
	if len(forest) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<ul id="markdown-toc">` + "\n")
	writeItems(&b, forest)
	b.WriteString("</ul>\n")
	return b.String()
}

func writeItems(b *strings.Builder, nodes []*Node) {
	for _, n := range nodes {
		id := html.EscapeString(n.ID)
		b.WriteString(`<li><a href="#`)
		b.WriteString(id)
		b.WriteString(`" id="markdown-toc-`)
		b.WriteString(id)
		b.WriteString(`">`)
		b.WriteString(n.Title)
		b.WriteString("</a>")
		if len(n.Children) > 0 {
			b.WriteString("\n<ul>\n")
			writeItems(b, n.Children)
			b.WriteString("</ul>\n")
		}
		b.WriteString("</li>\n")
	}
}
