package bs3

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-bs3/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// Layout names shipped with the module.
const (
	// LayoutPage is a full HTML5 document loading Bootstrap from the CDN.
	LayoutPage = "page"
	// LayoutBare emits the assets and body without a document shell, for
	// embedding into an existing page.
	LayoutBare = "bare"
)

// EmbeddedTemplates exposes the built-in layout templates so callers can
// reuse or extend them without copying files.
func EmbeddedTemplates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// NewTemplateEngine builds a pongo2 engine that resolves the built-in
// layouts. Options are applied after the embedded templates, so WithBaseDir
// can add directories whose templates shadow the built-in ones.
func NewTemplateEngine(options ...gotemplate.Option) (*gotemplate.Engine, error) {
	opts := append([]gotemplate.Option{gotemplate.WithFS(EmbeddedTemplates())}, options...)
	return gotemplate.New(opts...)
}
