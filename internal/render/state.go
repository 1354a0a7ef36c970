package render

import (
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark/ast"
	"go.uber.org/zap"

	"github.com/alnah/go-respec/internal/annotation"
	"github.com/alnah/go-respec/internal/outline"
)

// Default TOC levels.
const (
	DefaultTOCMinLevel = 1
	DefaultTOCMaxLevel = 6
)

// Token delimiters. Both are private-use code points that never occur in
// rendered Markdown output.
const (
	tokenStart = "\uE002"
	tokenEnd   = "\uE003"
)

// noTOCClass excludes a heading from the TOC when present in its class list.
const noTOCClass = "no_toc"

// heading is a TOC candidate seen during rendering.
type heading struct {
	node  *ast.Heading
	level int
	id    string
}

// State is the per-conversion render state. It is not safe for concurrent use.
type State struct {
	sections  outline.Sectionizer
	headings  []heading
	records   []outline.Record
	footnotes ast.Node
	tokens    map[annotation.PlaceholderKind]string

	minLevel int
	maxLevel int
	logger   *zap.Logger
}

// Option configures a State.
type Option func(*State)

// WithTOCLevels restricts the TOC to headings in [minLevel, maxLevel].
func WithTOCLevels(minLevel, maxLevel int) Option {
	return func(s *State) {
		s.minLevel = minLevel
		s.maxLevel = maxLevel
	}
}

// WithLogger sets the logger used to report ignored markers.
func WithLogger(l *zap.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewState returns a fresh State.
func NewState(opts ...Option) *State {
	s := &State{
		tokens:   make(map[annotation.PlaceholderKind]string),
		minLevel: DefaultTOCMinLevel,
		maxLevel: DefaultTOCMaxLevel,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InTOC reports whether a heading belongs in the TOC.
func (s *State) InTOC(level int, class string) bool {
	if level < s.minLevel || level > s.maxLevel {
		return false
	}
	for _, c := range strings.Fields(class) {
		if c == noTOCClass {
			return false
		}
	}
	return true
}

// Records returns the TOC records resolved by Resolve, in document order.
func (s *State) Records() []outline.Record {
	return s.records
}

// token returns the token for the first marker of kind, or "" when the kind
// already has one.
func (s *State) token(kind annotation.PlaceholderKind) string {
	if _, dup := s.tokens[kind]; dup {
		return ""
	}
	t := tokenStart + kind.String() + ":" + uuid.NewString() + tokenEnd
	s.tokens[kind] = t
	return t
}
