// Package renderer formats the m4 reports as markdown, for the terminal and
// the dashboard.
package renderer

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var converter = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts a markdown document into an HTML fragment.
func HTML(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := converter.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
