// Package attrs provides an ordered attribute bag rendered as HTML attributes.
package attrs

import (
	"html"
	"strings"
)

// Attr is a single name/value pair.
type Attr struct {
	Name  string
	Value string
}

// Bag holds attributes in insertion order.
// Setting an existing name overwrites its value in place.
// The zero value is ready to use. Read methods accept a nil *Bag.
type Bag struct {
	items []Attr
}

// New creates an empty Bag.
func New() *Bag {
	return &Bag{}
}

// Set stores value under name, keeping the original position when name exists.
func (b *Bag) Set(name, value string) {
	for i := range b.items {
		if b.items[i].Name == name {
			b.items[i].Value = value
			return
		}
	}
	b.items = append(b.items, Attr{Name: name, Value: value})
}

// Get returns the value stored under name.
func (b *Bag) Get(name string) (string, bool) {
	if b == nil {
		return "", false
	}
	for _, a := range b.items {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Len returns the number of attributes.
func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// Pairs returns a copy of the attributes in insertion order.
func (b *Bag) Pairs() []Attr {
	if b == nil {
		return nil
	}
	out := make([]Attr, len(b.items))
	copy(out, b.items)
	return out
}

// HTML renders the bag as ` name="value"` pairs with escaped values.
// Returns "" for an empty bag.
func (b *Bag) HTML() string {
	if b.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	for _, a := range b.items {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(a.Value))
		sb.WriteByte('"')
	}
	return sb.String()
}
