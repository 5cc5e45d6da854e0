// Package markup converts markdown-flavored free text into sanitized HTML
// fragments for document headers, footers and notes sections.
package markup

import (
	"bytes"
	stdhtml "html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer is a stateless markdown-to-HTML service. It is constructed
// explicitly and passed into the pipeline — no package-level parser state.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer builds the renderer with table support and hard line breaks.
// Output is sanitized with the bluemonday UGC policy because this content
// is often free-text user input.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table, extension.Strikethrough),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts markdown to a sanitized HTML fragment. Malformed markdown
// never fails: unrecognized syntax passes through as literal text, and a
// conversion error degrades to the escaped input. Empty input renders to an
// empty string, not an error.
func (r *Renderer) Render(markdown string) (string, error) {
	if markdown == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "<p>" + stdhtml.EscapeString(markdown) + "</p>\n", nil
	}
	return string(r.policy.SanitizeBytes(buf.Bytes())), nil
}
