package markup_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wattwerk/wattwerk-api/internal/infrastructure/markup"
)

func TestRender_EmptyInput(t *testing.T) {
	r := markup.NewRenderer()
	out, err := r.Render("")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRender_BasicMarkdown(t *testing.T) {
	r := markup.NewRenderer()
	out, err := r.Render("**Zahlbar** innert *30 Tagen*")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>Zahlbar</strong>")
	assert.Contains(t, out, "<em>30 Tagen</em>")
}

func TestRender_Heading(t *testing.T) {
	r := markup.NewRenderer()
	out, err := r.Render("## Zahlungsbedingungen")
	require.NoError(t, err)
	assert.Contains(t, out, "Zahlungsbedingungen")
	assert.Contains(t, out, "<h2")
}

func TestRender_PipeTable(t *testing.T) {
	r := markup.NewRenderer()
	md := strings.Join([]string{
		"| Pos | Text |",
		"| --- | --- |",
		"| 1 | Steckdose |",
	}, "\n")
	out, err := r.Render(md)
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>Steckdose</td>")
}

func TestRender_MalformedMarkupPassesThroughAsText(t *testing.T) {
	r := markup.NewRenderer()
	// unbalanced emphasis is not an error, it renders literally
	out, err := r.Render("**unclosed bold")
	require.NoError(t, err)
	assert.Contains(t, out, "unclosed bold")
}

func TestRender_SanitizesScripts(t *testing.T) {
	r := markup.NewRenderer()
	out, err := r.Render("hello <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "hello")
}

func TestRender_Deterministic(t *testing.T) {
	r := markup.NewRenderer()
	first, err := r.Render("a *b* c")
	require.NoError(t, err)
	second, err := r.Render("a *b* c")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
