package annotation

import "strings"

// Attribute names written by an annotation.
const (
	ClassAttr = "class"
	TestsAttr = "data-tests"
)

// Keywords is the closed set of annotation keywords.
// Any other payload is a test-identifier list.
var Keywords = []string{
	"untestable",
	"informative",
	"note",
	"no-test-needed",
	"needs-test",
}

// IsKeyword reports whether s is one of Keywords (exact, case-sensitive).
func IsKeyword(s string) bool {
	for _, k := range Keywords {
		if s == k {
			return true
		}
	}
	return false
}

// Classify trims the payload and returns the attribute it sets.
// A keyword sets class; anything else sets data-tests to the trimmed payload.
func Classify(payload string) (name, value string) {
	value = strings.TrimSpace(payload)
	if IsKeyword(value) {
		return ClassAttr, value
	}
	return TestsAttr, value
}
