// Package render turns stored markdown fields into displayable HTML.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Markdown renders markdown to HTML. Raw HTML embedded in the source is
// dropped, so rendered content is safe to inject into pages.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown creates a renderer with GitHub-flavoured extensions enabled.
func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render converts src to HTML. Empty input renders to an empty string.
func (m *Markdown) Render(src string) (string, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
