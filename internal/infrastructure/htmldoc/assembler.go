// Package htmldoc serializes a document template into one complete,
// self-contained HTML page for the PDF layout engine.
package htmldoc

import (
	"fmt"
	"html"
	"strings"

	"github.com/wattwerk/wattwerk-api/internal/domain"
	"github.com/wattwerk/wattwerk-api/internal/domain/document"
)

// MarkupRenderer renders markdown-flavored text into an HTML fragment.
// Implemented by the markup package; injected so the assembler carries no
// ambient parser state.
type MarkupRenderer interface {
	Render(markdown string) (string, error)
}

// Assembler builds the HTML page for a template.
type Assembler struct {
	markup MarkupRenderer
}

// NewAssembler wires the markup renderer.
func NewAssembler(markup MarkupRenderer) *Assembler {
	return &Assembler{markup: markup}
}

// BuildHTML renders the template's sections in ascending position order
// into one self-contained page. The same immutable template always yields
// byte-identical output.
func (a *Assembler) BuildHTML(tpl *document.Template) (string, error) {
	if err := tpl.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"de\">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(tpl.Meta.Title))
	if tpl.Meta.Author != "" {
		fmt.Fprintf(&b, "<meta name=\"author\" content=\"%s\">\n", html.EscapeString(tpl.Meta.Author))
	}
	if tpl.Meta.Company != "" {
		fmt.Fprintf(&b, "<meta name=\"company\" content=\"%s\">\n", html.EscapeString(tpl.Meta.Company))
	}
	b.WriteString("<style>")
	b.WriteString(documentCSS)
	b.WriteString("</style>\n</head>\n<body>\n")

	for _, section := range tpl.OrderedSections() {
		if err := a.writeSection(&b, section); err != nil {
			return "", err
		}
	}

	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

// writeSection dispatches on the payload type. The switch is exhaustive
// over the closed content union; Validate has already rejected tag/payload
// mismatches, but the default branch keeps the failure loud if a new
// content type is added without a renderer.
func (a *Assembler) writeSection(b *strings.Builder, s document.Section) error {
	switch content := s.Content.(type) {
	case document.TextContent:
		return a.writeText(b, s.Kind, content)
	case document.TableContent:
		a.writeTable(b, content)
		return nil
	case document.ImageContent:
		a.writeImage(b, content)
		return nil
	default:
		return fmt.Errorf("%w: no renderer for %T at position %d",
			domain.ErrTypeMismatch, s.Content, s.Position)
	}
}

func (a *Assembler) writeText(b *strings.Builder, kind document.SectionKind, c document.TextContent) error {
	fragment, err := a.markup.Render(c.Markdown)
	if err != nil {
		return fmt.Errorf("render markup section: %w", err)
	}
	switch kind {
	case document.KindHeader:
		b.WriteString("<header class=\"doc-header\">\n")
		b.WriteString(fragment)
		b.WriteString("</header>\n")
	case document.KindFooter:
		b.WriteString("<footer class=\"doc-footer\">\n")
		b.WriteString(fragment)
		b.WriteString("</footer>\n")
	default:
		b.WriteString("<section class=\"doc-markdown\">\n")
		b.WriteString(fragment)
		b.WriteString("</section>\n")
	}
	return nil
}

// writeTable emits the header row from the declared headers and iterates
// that same header list as column keys for every body row. Column alignment
// is driven by the header list, never by row content order: a missing cell
// renders as an empty td instead of shifting its neighbors.
func (a *Assembler) writeTable(b *strings.Builder, c document.TableContent) {
	b.WriteString("<table class=\"doc-table\">\n<thead>\n<tr>")
	for _, h := range c.Headers {
		fmt.Fprintf(b, "<th>%s</th>", html.EscapeString(h))
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")
	for _, row := range c.Rows {
		b.WriteString("<tr>")
		for _, h := range c.Headers {
			fmt.Fprintf(b, "<td>%s</td>", html.EscapeString(row[h]))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")
}

func (a *Assembler) writeImage(b *strings.Builder, c document.ImageContent) {
	b.WriteString("<figure class=\"doc-image\"><img src=\"")
	b.WriteString(html.EscapeString(c.URL))
	b.WriteString("\"")
	if c.Alt != "" {
		fmt.Fprintf(b, " alt=\"%s\"", html.EscapeString(c.Alt))
	}
	if c.Width > 0 {
		fmt.Fprintf(b, " width=\"%d\"", c.Width)
	}
	if c.Height > 0 {
		fmt.Fprintf(b, " height=\"%d\"", c.Height)
	}
	b.WriteString("></figure>\n")
}
