package htmldoc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wattwerk/wattwerk-api/internal/domain"
	"github.com/wattwerk/wattwerk-api/internal/domain/document"
	"github.com/wattwerk/wattwerk-api/internal/infrastructure/htmldoc"
	"github.com/wattwerk/wattwerk-api/internal/infrastructure/markup"
)

func newAssembler() *htmldoc.Assembler {
	return htmldoc.NewAssembler(markup.NewRenderer())
}

func TestBuildHTML_CompletePage(t *testing.T) {
	tpl := &document.Template{
		Type: document.TypeInvoice,
		Meta: document.Meta{Title: "Rechnung RE-2026-1", Author: "Wattwerk AG", Company: "Wattwerk AG"},
		Sections: []document.Section{
			{Position: 0, Kind: document.KindHeader, Content: document.TextContent{Markdown: "**Wattwerk AG**"}},
			{Position: 1, Kind: document.KindMarkdown, Content: document.TextContent{Markdown: "Sehr geehrte Damen und Herren"}},
		},
	}

	html, err := newAssembler().BuildHTML(tpl)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>Rechnung RE-2026-1</title>")
	assert.Contains(t, html, `<header class="doc-header">`)
	assert.Contains(t, html, "<strong>Wattwerk AG</strong>")
	assert.True(t, strings.HasSuffix(html, "</html>\n"))
}

func TestBuildHTML_RendersInPositionOrder(t *testing.T) {
	// sections supplied in reverse order must come out ascending
	tpl := &document.Template{
		Sections: []document.Section{
			{Position: 2, Kind: document.KindMarkdown, Content: document.TextContent{Markdown: "LAST"}},
			{Position: 0, Kind: document.KindMarkdown, Content: document.TextContent{Markdown: "FIRST"}},
			{Position: 1, Kind: document.KindMarkdown, Content: document.TextContent{Markdown: "MIDDLE"}},
		},
	}

	html, err := newAssembler().BuildHTML(tpl)
	require.NoError(t, err)
	first := strings.Index(html, "FIRST")
	middle := strings.Index(html, "MIDDLE")
	last := strings.Index(html, "LAST")
	require.True(t, first >= 0 && middle >= 0 && last >= 0)
	assert.Less(t, first, middle)
	assert.Less(t, middle, last)
}

func TestBuildHTML_TableColumnsFollowHeaders(t *testing.T) {
	// a row missing a header key renders an empty cell, never shifted
	tpl := &document.Template{
		Sections: []document.Section{
			{Position: 0, Kind: document.KindTable, Content: document.TableContent{
				Headers: []string{"A", "B"},
				Rows: []map[string]string{
					{"A": "a1"}, // no "B"
					{"B": "b2", "A": "a2"},
				},
			}},
		},
	}

	html, err := newAssembler().BuildHTML(tpl)
	require.NoError(t, err)
	assert.Contains(t, html, "<th>A</th><th>B</th>")
	assert.Contains(t, html, "<tr><td>a1</td><td></td></tr>")
	assert.Contains(t, html, "<tr><td>a2</td><td>b2</td></tr>")
}

func TestBuildHTML_EscapesTableCells(t *testing.T) {
	tpl := &document.Template{
		Sections: []document.Section{
			{Position: 0, Kind: document.KindTable, Content: document.TableContent{
				Headers: []string{"Text"},
				Rows:    []map[string]string{{"Text": "<b>bold</b>"}},
			}},
		},
	}

	html, err := newAssembler().BuildHTML(tpl)
	require.NoError(t, err)
	assert.Contains(t, html, "&lt;b&gt;bold&lt;/b&gt;")
	assert.NotContains(t, html, "<td><b>")
}

func TestBuildHTML_ImageAttributes(t *testing.T) {
	tpl := &document.Template{
		Sections: []document.Section{
			{Position: 0, Kind: document.KindImage, Content: document.ImageContent{
				URL: "/uploads/logo.png", Alt: "Logo", Width: 180,
			}},
		},
	}

	html, err := newAssembler().BuildHTML(tpl)
	require.NoError(t, err)
	assert.Contains(t, html, `src="/uploads/logo.png"`)
	assert.Contains(t, html, `alt="Logo"`)
	assert.Contains(t, html, `width="180"`)
	// zero height is omitted entirely
	assert.NotContains(t, html, "height=")
}

func TestBuildHTML_OneTableElementPerTableSection(t *testing.T) {
	tpl := &document.Template{
		Sections: []document.Section{
			{Position: 0, Kind: document.KindTable, Content: document.TableContent{
				Headers: []string{"Beschreibung", "Menge", "Ansatz", "Betrag"},
				Rows:    []map[string]string{{"Beschreibung": "Montage", "Menge": "3", "Ansatz": "100.00", "Betrag": "300.00"}},
			}},
			{Position: 1, Kind: document.KindMarkdown, Content: document.TextContent{Markdown: "Zahlbar innert 30 Tagen"}},
		},
	}

	html, err := newAssembler().BuildHTML(tpl)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(html, "<table"))
	table := strings.Index(html, "<table")
	text := strings.Index(html, "Zahlbar innert 30 Tagen")
	require.True(t, table >= 0 && text >= 0)
	assert.Less(t, table, text)
}

func TestBuildHTML_TypeMismatchFails(t *testing.T) {
	tpl := &document.Template{
		Sections: []document.Section{
			{Position: 0, Kind: document.KindTable, Content: document.TextContent{Markdown: "oops"}},
		},
	}

	_, err := newAssembler().BuildHTML(tpl)
	assert.ErrorIs(t, err, domain.ErrTypeMismatch)
}

func TestBuildHTML_Deterministic(t *testing.T) {
	tpl := &document.Template{
		Meta: document.Meta{Title: "Doc"},
		Sections: []document.Section{
			{Position: 1, Kind: document.KindMarkdown, Content: document.TextContent{Markdown: "body *text*"}},
			{Position: 0, Kind: document.KindTable, Content: document.TableContent{
				Headers: []string{"X", "Y"},
				Rows:    []map[string]string{{"X": "1", "Y": "2"}},
			}},
		},
	}

	a := newAssembler()
	first, err := a.BuildHTML(tpl)
	require.NoError(t, err)
	second, err := a.BuildHTML(tpl)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same template must yield byte-identical output")
}
