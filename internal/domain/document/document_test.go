package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wattwerk/wattwerk-api/internal/domain"
	"github.com/wattwerk/wattwerk-api/internal/domain/document"
)

func TestOrderedSections_SortsByPosition(t *testing.T) {
	tpl := &document.Template{
		Sections: []document.Section{
			{Position: 3, Kind: document.KindMarkdown, Content: document.TextContent{Markdown: "third"}},
			{Position: 1, Kind: document.KindMarkdown, Content: document.TextContent{Markdown: "first"}},
			{Position: 2, Kind: document.KindMarkdown, Content: document.TextContent{Markdown: "second"}},
		},
	}

	ordered := tpl.OrderedSections()
	require.Len(t, ordered, 3)
	assert.Equal(t, 1, ordered[0].Position)
	assert.Equal(t, 2, ordered[1].Position)
	assert.Equal(t, 3, ordered[2].Position)
	// the template itself is untouched
	assert.Equal(t, 3, tpl.Sections[0].Position)
}

func TestOrderedSections_StableOnEqualPositions(t *testing.T) {
	tpl := &document.Template{
		Sections: []document.Section{
			{Position: 1, Kind: document.KindMarkdown, Content: document.TextContent{Markdown: "a"}},
			{Position: 1, Kind: document.KindMarkdown, Content: document.TextContent{Markdown: "b"}},
		},
	}

	ordered := tpl.OrderedSections()
	assert.Equal(t, "a", ordered[0].Content.(document.TextContent).Markdown)
	assert.Equal(t, "b", ordered[1].Content.(document.TextContent).Markdown)
}

func TestBuilder_AssignsSequentialPositions(t *testing.T) {
	var b document.Builder
	b.Append(document.KindHeader, document.TextContent{Markdown: "head"})
	b.Append(document.KindMarkdown, document.TextContent{Markdown: "body"})
	b.Append(document.KindFooter, document.TextContent{Markdown: "foot"})

	sections := b.Sections()
	require.Len(t, sections, 3)
	for i, s := range sections {
		assert.Equal(t, i, s.Position)
	}
}

func TestSectionValidate_KindPayloadMismatch(t *testing.T) {
	s := document.Section{
		Position: 2,
		Kind:     document.KindTable,
		Content:  document.TextContent{Markdown: "not a table"},
	}
	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "position 2")
}

func TestSectionValidate_UnknownKind(t *testing.T) {
	s := document.Section{Kind: "banner", Content: document.TextContent{}}
	assert.ErrorIs(t, s.Validate(), domain.ErrTypeMismatch)
}

func TestSectionValidate_OK(t *testing.T) {
	table, err := document.NewTableContent([]string{"A"}, [][]string{{"1"}})
	require.NoError(t, err)

	for _, s := range []document.Section{
		{Kind: document.KindHeader, Content: document.TextContent{}},
		{Kind: document.KindFooter, Content: document.TextContent{}},
		{Kind: document.KindMarkdown, Content: document.TextContent{}},
		{Kind: document.KindTable, Content: table},
		{Kind: document.KindImage, Content: document.ImageContent{URL: "/uploads/x.png"}},
	} {
		assert.NoError(t, s.Validate(), "kind %s", s.Kind)
	}
}

func TestNewTableContent_ColumnCountMismatch(t *testing.T) {
	_, err := document.NewTableContent([]string{"A", "B"}, [][]string{{"only one"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewTableContent_MapsCellsToHeaders(t *testing.T) {
	table, err := document.NewTableContent([]string{"A", "B"}, [][]string{{"1", "2"}})
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "1", table.Rows[0]["A"])
	assert.Equal(t, "2", table.Rows[0]["B"])
}

func TestTemplateValidate_ReportsFirstBadSection(t *testing.T) {
	tpl := &document.Template{
		Sections: []document.Section{
			{Position: 0, Kind: document.KindMarkdown, Content: document.TextContent{}},
			{Position: 1, Kind: document.KindImage, Content: document.TextContent{}},
		},
	}
	assert.ErrorIs(t, tpl.Validate(), domain.ErrTypeMismatch)
}
