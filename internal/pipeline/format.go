package pipeline

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ErrUnknownFormat indicates an input format with no registered handler.
var ErrUnknownFormat = errors.New("unknown input format")

// DefaultFormat is used when no format is requested.
const DefaultFormat = "kramdown"

// Format describes a Markdown dialect and the goldmark extensions that parse it.
type Format struct {
	Name        string
	Description string
	extensions  func() []goldmark.Extender
}

// Extensions returns fresh extension instances for one engine.
func (f Format) Extensions() []goldmark.Extender {
	if f.extensions == nil {
		return nil
	}
	return f.extensions()
}

var formats = map[string]Format{
	"kramdown": {
		Name:        "kramdown",
		Description: "kramdown-flavored Markdown (tables, footnotes, definition lists, smart quotes)",
		extensions: func() []goldmark.Extender {
			return []goldmark.Extender{
				extension.GFM,
				extension.Footnote,
				extension.DefinitionList,
				extension.Typographer,
			}
		},
	},
	"gfm": {
		Name:        "gfm",
		Description: "GitHub Flavored Markdown with footnotes",
		extensions: func() []goldmark.Extender {
			return []goldmark.Extender{extension.GFM, extension.Footnote}
		},
	},
	"commonmark": {
		Name:        "commonmark",
		Description: "plain CommonMark",
	},
}

// LookupFormat returns the format registered under name, case-insensitively.
// An empty name selects DefaultFormat.
func LookupFormat(name string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultFormat
	}
	f, ok := formats[key]
	if !ok {
		return Format{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownFormat, name, strings.Join(FormatNames(), ", "))
	}
	return f, nil
}

// FormatNames lists the registered format names in sorted order.
func FormatNames() []string {
	names := make([]string, 0, len(formats))
	for n := range formats {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
