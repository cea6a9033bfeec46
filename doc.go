// Package bs3 renders Bootstrap 3 markup.
//
// The widget functions live in pkg/widgets and build on the attribute and
// element helpers in pkg/markup. This package ties the higher layers
// together: page documents (pkg/page) rendered through the pongo2 engine
// (pkg/render/template/gotemplate) with the layouts embedded under
// templates/.
//
//	doc, _ := page.LoadFile("home.yaml")
//	html, err := bs3.RenderPage(ctx, doc, bs3.RenderOptions{RequestURL: r.URL})
package bs3
