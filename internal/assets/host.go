package assets

import (
	"bytes"
	"fmt"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
)

// HostData holds the values a host template can use.
type HostData struct {
	Title        string
	Lang         string
	Body         string // resolved HTML body, inserted as is
	RespecConfig string // JSON object, empty when the document has none
}

// RenderHost executes the host template tmpl with data.
// The template has access to the slim-sprig functions.
func RenderHost(tmpl string, data HostData) (string, error) {
	t, err := template.New("host").Funcs(sprig.FuncMap()).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}
