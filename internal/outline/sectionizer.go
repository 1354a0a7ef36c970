// Package outline turns a sequence of heading levels into nested sections
// and a table of contents.
//
// Both halves work on levels only. The caller decides which headings exist
// and what their ids and titles are.
package outline

import (
	"strings"

	"github.com/alnah/go-respec/internal/attrs"
)

const (
	sectionOpen  = "<section>\n"
	sectionClose = "</section>\n\n"
)

// Sectionizer emits section markup around headings.
//
// Every heading opens one section. A heading closes each open section whose
// level is greater than or equal to its own before opening its own, so a
// jump from h2 to h4 nests once and the return to h2 closes both.
// The zero value is ready to use; a Sectionizer is not safe for concurrent use.
type Sectionizer struct {
	levels []int // open heading sections, outermost first
}

// Begin returns the opener of the section wrapping the whole body.
func (s *Sectionizer) Begin() string {
	return sectionOpen
}

// Open returns the markup to write before a heading of the given level.
// Attributes in bag are rendered on the new section.
func (s *Sectionizer) Open(level int, bag *attrs.Bag) string {
	var b strings.Builder
	for len(s.levels) > 0 && s.levels[len(s.levels)-1] >= level {
		s.levels = s.levels[:len(s.levels)-1]
		b.WriteString(sectionClose)
	}
	s.levels = append(s.levels, level)

	if bag.Len() == 0 {
		b.WriteString(sectionOpen)
		return b.String()
	}
	b.WriteString("<section")
	b.WriteString(bag.HTML())
	b.WriteString(">\n")
	return b.String()
}

// Finish closes every open heading section and then the body wrapper.
func (s *Sectionizer) Finish() string {
	n := len(s.levels) + 1
	s.levels = s.levels[:0]
	return strings.Repeat(sectionClose, n)
}

// Depth returns the level of the innermost open heading section, or 0.
func (s *Sectionizer) Depth() int {
	if len(s.levels) == 0 {
		return 0
	}
	return s.levels[len(s.levels)-1]
}
