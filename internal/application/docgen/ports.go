// Package docgen assembles domain records into document templates and turns
// them into PDFs: entity -> template -> HTML -> PDF bytes.
package docgen

import (
	"context"

	"github.com/wattwerk/wattwerk-api/internal/domain/document"
)

// HTMLAssembler serializes a template into one self-contained HTML page.
type HTMLAssembler interface {
	BuildHTML(tpl *document.Template) (string, error)
}

// PDFRenderer lays out and paginates an HTML page. baseURI resolves relative
// asset references; an empty baseURI requires absolute asset URLs.
type PDFRenderer interface {
	Render(ctx context.Context, html string, baseURI string) ([]byte, error)
}
