// Package pdf holds the PDF backends: the wkhtmltopdf layout engine for the
// HTML document pipeline and a maroto composer for control reports.
package pdf

import (
	"context"
	"fmt"
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/wattwerk/wattwerk-api/internal/domain"
	"github.com/wattwerk/wattwerk-api/pkg/config"
)

// Relative asset prefixes that may appear in generated HTML. Both are
// rewritten against the base URI before the engine runs.
var assetPrefixes = []string{"/uploads/", "/api/upload/files/"}

// WkhtmltopdfRenderer converts a complete HTML page into PDF bytes through
// the wkhtmltopdf layout engine.
type WkhtmltopdfRenderer struct {
	marginMM uint
}

// NewWkhtmltopdfRenderer configures the engine binary path once.
func NewWkhtmltopdfRenderer(cfg config.PDFConfig) *WkhtmltopdfRenderer {
	if cfg.WkhtmltopdfPath != "" {
		wkhtmltopdf.SetPath(cfg.WkhtmltopdfPath)
	}
	margin := uint(15)
	if cfg.MarginMM > 0 {
		margin = uint(cfg.MarginMM)
	}
	return &WkhtmltopdfRenderer{marginMM: margin}
}

// Render lays out and paginates the HTML. baseURI (when non-empty) resolves
// relative asset references like /uploads/logo.png; when empty, every asset
// reference in the HTML must already be absolute. On failure the engine's
// message is wrapped in domain.ErrRender and no bytes are returned — the
// caller never sees a partial PDF.
func (r *WkhtmltopdfRenderer) Render(ctx context.Context, html string, baseURI string) ([]byte, error) {
	gen, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("%w: layout engine unavailable: %v", domain.ErrRender, err)
	}
	gen.PageSize.Set(wkhtmltopdf.PageSizeA4)
	gen.MarginTop.Set(r.marginMM)
	gen.MarginBottom.Set(r.marginMM)
	gen.MarginLeft.Set(r.marginMM)
	gen.MarginRight.Set(r.marginMM)

	if baseURI != "" {
		html = resolveAssetURLs(html, baseURI)
	}

	page := wkhtmltopdf.NewPageReader(strings.NewReader(html))
	page.EnableLocalFileAccess.Set(true)
	gen.AddPage(page)

	if err := gen.CreateContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: convert html: %v", domain.ErrRender, err)
	}
	out := gen.Bytes()
	if len(out) < 4 || string(out[:4]) != "%PDF" {
		return nil, fmt.Errorf("%w: engine produced invalid output", domain.ErrRender)
	}
	return out, nil
}

// resolveAssetURLs rewrites known relative upload references against the
// base URI so the engine can fetch them (file:// root in the default
// deployment, object-storage URL in the alternate one).
func resolveAssetURLs(html, baseURI string) string {
	base := strings.TrimRight(baseURI, "/")
	for _, prefix := range assetPrefixes {
		html = strings.ReplaceAll(html, `src="`+prefix, `src="`+base+"/")
	}
	return html
}
