package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-respec/internal/yamlutil"
)

// ErrFrontMatter indicates a front matter block that could not be decoded.
var ErrFrontMatter = errors.New("invalid front matter")

// FrontMatter holds the document settings read from a leading YAML block.
type FrontMatter struct {
	Title        string         `yaml:"title"`
	RespecConfig map[string]any `yaml:"respecConfig"`
	TOC          *TOCLevels     `yaml:"toc"`
}

// RespecConfigJSON returns RespecConfig as JSON, or "" when unset.
func (fm FrontMatter) RespecConfigJSON() (string, error) {
	if len(fm.RespecConfig) == 0 {
		return "", nil
	}
	b, err := json.Marshal(fm.RespecConfig)
	if err != nil {
		return "", fmt.Errorf("%w: respecConfig: %v", ErrFrontMatter, err)
	}
	return string(b), nil
}

var yamlFormat = frontmatter.NewFormat("---", "---", yamlutil.UnmarshalLenient)

// SplitFrontMatter decodes a leading "---" YAML block from content.
//
// The returned body has the block replaced by as many empty lines, so line
// numbers in the body still match the original file. Content without front
// matter is returned unchanged.
func SplitFrontMatter(content string) (FrontMatter, string, error) {
	var fm FrontMatter
	rest, err := frontmatter.Parse(strings.NewReader(content), &fm, yamlFormat)
	if err != nil {
		return FrontMatter{}, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	if len(rest) == len(content) {
		return fm, content, nil
	}
	head := content[:len(content)-len(rest)]
	lines := strings.Count(head, "\n")
	return fm, strings.Repeat("\n", lines) + string(rest), nil
}
