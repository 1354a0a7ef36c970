package annotation

import (
	"github.com/yuin/goldmark/ast"

	"github.com/alnah/go-respec/internal/attrs"
)

// sectionAttrName is the heading attribute holding the section bag.
// It is outside every goldmark attribute filter and has no data- prefix,
// so the heading element itself never renders it.
var sectionAttrName = []byte("respec:section")

// Attach applies payload to target and returns the resulting tag.
// Headings receive it on their section attributes, other blocks on their own attributes.
func Attach(target ast.Node, payload string) Tag {
	name, value := Classify(payload)
	if h, ok := target.(*ast.Heading); ok {
		SetSectionAttribute(h, name, value)
		return TagSection
	}
	target.SetAttributeString(name, []byte(value))
	return TagAttributes
}

// SectionAttributes returns the bag rendered on the section h opens, or nil.
func SectionAttributes(h *ast.Heading) *attrs.Bag {
	v, ok := h.Attribute(sectionAttrName)
	if !ok {
		return nil
	}
	b, _ := v.(*attrs.Bag)
	return b
}

// SetSectionAttribute sets one entry of the section bag of h.
func SetSectionAttribute(h *ast.Heading, name, value string) {
	b := SectionAttributes(h)
	if b == nil {
		b = attrs.New()
		h.SetAttribute(sectionAttrName, b)
	}
	b.Set(name, value)
}
