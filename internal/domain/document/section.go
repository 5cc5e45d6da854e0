// Package document defines the generic document representation rendered by
// the HTML assembler: an ordered list of typed sections plus metadata.
// A template is built once per render request and never mutated afterwards,
// so rendering is a pure function of it.
package document

import (
	"fmt"

	"github.com/wattwerk/wattwerk-api/internal/domain"
)

// SectionKind tags the content of a section.
type SectionKind string

const (
	KindHeader   SectionKind = "header"
	KindFooter   SectionKind = "footer"
	KindMarkdown SectionKind = "markdown"
	KindTable    SectionKind = "table"
	KindImage    SectionKind = "image"
)

// Content is the closed payload union for sections. Exactly one concrete
// type matches each kind; the assembler switches exhaustively over it, so
// adding a kind is a compile-time-checked change everywhere it is consumed.
type Content interface {
	sectionContent()
}

// TextContent is the payload for header, footer and markdown sections.
// The text is markdown-flavored and rendered by the markup renderer.
type TextContent struct {
	Markdown string
}

// TableContent is the payload for table sections. Rows are keyed by header
// name; a row missing a header key renders as an empty cell, never shifted.
type TableContent struct {
	Headers []string
	Rows    []map[string]string
}

// ImageContent is the payload for image sections. Width/Height of zero mean
// "not specified" and are omitted from the rendered attribute list.
type ImageContent struct {
	URL    string
	Alt    string
	Width  int
	Height int
}

func (TextContent) sectionContent()  {}
func (TableContent) sectionContent() {}
func (ImageContent) sectionContent() {}

// Section is one positioned content block. Position defines render order;
// equal positions keep their insertion order (stable tie-break).
type Section struct {
	Position int
	Kind     SectionKind
	Content  Content
}

// Validate checks that the payload's runtime shape matches the declared
// kind. A table section holding markdown content is a programming error
// and must fail fast instead of silently rendering empty.
func (s Section) Validate() error {
	switch s.Kind {
	case KindHeader, KindFooter, KindMarkdown:
		if _, ok := s.Content.(TextContent); !ok {
			return fmt.Errorf("%w: section at position %d declares %s but holds %T",
				domain.ErrTypeMismatch, s.Position, s.Kind, s.Content)
		}
	case KindTable:
		if _, ok := s.Content.(TableContent); !ok {
			return fmt.Errorf("%w: section at position %d declares %s but holds %T",
				domain.ErrTypeMismatch, s.Position, s.Kind, s.Content)
		}
	case KindImage:
		if _, ok := s.Content.(ImageContent); !ok {
			return fmt.Errorf("%w: section at position %d declares %s but holds %T",
				domain.ErrTypeMismatch, s.Position, s.Kind, s.Content)
		}
	default:
		return fmt.Errorf("%w: unknown section kind %q at position %d",
			domain.ErrTypeMismatch, s.Kind, s.Position)
	}
	return nil
}

// NewTableContent builds a table payload from ordered cell rows. Every row
// must supply a value (possibly empty) for every declared header; a column
// count mismatch is a contract violation.
func NewTableContent(headers []string, cellRows [][]string) (TableContent, error) {
	rows := make([]map[string]string, 0, len(cellRows))
	for i, cells := range cellRows {
		if len(cells) != len(headers) {
			return TableContent{}, fmt.Errorf("%w: table row %d has %d cells for %d headers",
				domain.ErrValidation, i, len(cells), len(headers))
		}
		row := make(map[string]string, len(headers))
		for j, h := range headers {
			row[h] = cells[j]
		}
		rows = append(rows, row)
	}
	return TableContent{Headers: headers, Rows: rows}, nil
}
