package bs3

import (
	"context"
	"fmt"

	"github.com/goliatone/go-bs3/pkg/page"
)

// Document aliases page.Document so simple callers only import the root
// package.
type Document = page.Document

// Block aliases page.Block.
type Block = page.Block

// RenderOptions carries the request URL and host used by pagination and
// navigation widgets.
type RenderOptions = page.RenderOptions

// NewPageRenderer returns a page renderer wired to the embedded layouts.
// Options are applied after the template engine, so WithTemplateRenderer
// replaces it.
func NewPageRenderer(options ...page.Option) (*page.Renderer, error) {
	engine, err := NewTemplateEngine()
	if err != nil {
		return nil, fmt.Errorf("bs3: template engine: %w", err)
	}
	opts := append([]page.Option{page.WithTemplateRenderer(engine)}, options...)
	return page.NewRenderer(opts...), nil
}

// RenderPage renders doc with the default registry and embedded layouts.
// It is the simplest entry point for callers that just want HTML output.
func RenderPage(ctx context.Context, doc Document, opts RenderOptions, options ...page.Option) ([]byte, error) {
	renderer, err := NewPageRenderer(options...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, doc, opts)
}

// RenderFile loads a JSON or YAML page document and renders it.
func RenderFile(ctx context.Context, path string, opts RenderOptions, options ...page.Option) ([]byte, error) {
	doc, err := page.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return RenderPage(ctx, doc, opts, options...)
}
