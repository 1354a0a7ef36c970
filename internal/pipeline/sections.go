package pipeline

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrUnbalancedSections indicates section tags that do not pair up.
var ErrUnbalancedSections = errors.New("unbalanced section tags")

// CheckSections reports whether every <section> in content is closed and no
// </section> appears without an opener.
func CheckSections(content string) error {
	z := html.NewTokenizer(strings.NewReader(content))
	depth := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return err
			}
			if depth != 0 {
				return fmt.Errorf("%w: %d left open", ErrUnbalancedSections, depth)
			}
			return nil
		case html.StartTagToken:
			if isSection(z) {
				depth++
			}
		case html.EndTagToken:
			if isSection(z) {
				depth--
				if depth < 0 {
					return fmt.Errorf("%w: close without open", ErrUnbalancedSections)
				}
			}
		}
	}
}

func isSection(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	return atom.Lookup(name) == atom.Section
}
