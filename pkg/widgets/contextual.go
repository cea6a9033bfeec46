package widgets

import (
	"strings"

	"github.com/goliatone/go-bs3/pkg/markup"
)

// AlertOptions configures Alert. Style defaults to info.
type AlertOptions struct {
	Content     string
	Title       string
	Style       string
	Dismissible bool
	Attrs       markup.Attributes
}

func Alert(opts AlertOptions) string {
	content := opts.Content
	if opts.Title != "" {
		content = "<h4>" + opts.Title + "</h4>" + content
	}
	if opts.Dismissible {
		content = IconClose(markup.Attributes{"data-dismiss": "alert"}) + " " + content
	}
	style := opts.Style
	if style == "" {
		style = ContextInfo
	}
	class := "alert alert-" + style
	if opts.Dismissible {
		class += " alert-dismissible"
	}
	return markup.Tag("div", content, markup.WithClass(class, opts.Attrs))
}

func AlertInfo(opts AlertOptions) string    { return alertWith(ContextInfo, opts) }
func AlertSuccess(opts AlertOptions) string { return alertWith(ContextSuccess, opts) }
func AlertWarning(opts AlertOptions) string { return alertWith(ContextWarning, opts) }
func AlertDanger(opts AlertOptions) string  { return alertWith(ContextDanger, opts) }

func alertWith(style string, opts AlertOptions) string {
	opts.Style = style
	return Alert(opts)
}

// PanelOptions configures Panel. Heading and Footer are wrapped in
// panel-heading and panel-footer when non-empty; Context defaults to default.
type PanelOptions struct {
	Content string
	Heading string
	Footer  string
	Context string
	Attrs   markup.Attributes
}

func Panel(opts PanelOptions) string {
	heading := ""
	if opts.Heading != "" {
		heading = `<div class="panel-heading">` + opts.Heading + `</div>`
	}
	footer := ""
	if opts.Footer != "" {
		footer = `<div class="panel-footer">` + opts.Footer + `</div>`
	}
	context := opts.Context
	if context == "" {
		context = ContextDefault
	}
	return markup.Tag("div", heading+opts.Content+footer, markup.WithClass("panel panel-"+context, opts.Attrs))
}

func PanelBody(content string, attrs markup.Attributes) string {
	return markup.Tag("div", content, markup.WithClass("panel-body", attrs))
}

func PanelTitle(content string, attrs markup.Attributes) string {
	return markup.Tag("h3", content, markup.WithClass("panel-title", attrs))
}

// Well renders a well; size is lg or sm.
func Well(content, size string, attrs markup.Attributes) string {
	class := "well"
	if size != "" {
		class += " well-" + size
	}
	return markup.Tag("div", content, markup.WithClass(class, attrs))
}

func Jumbotron(contents []string, attrs markup.Attributes) string {
	return markup.Tag("div", strings.Join(contents, ""), markup.WithClass("jumbotron", attrs))
}

func Badge(content string, attrs markup.Attributes) string {
	return markup.Tag("span", content, markup.WithClass("badge", attrs))
}

// ContextLabel renders Bootstrap's inline span.label with a label-{context}
// class. Not to be confused with the form Label widget.
func ContextLabel(content, context string, attrs markup.Attributes) string {
	if context == "" {
		context = ContextDefault
	}
	return markup.Tag("span", content, markup.WithClass("label label-"+context, attrs))
}

const (
	defaultIcon       = "plus"
	defaultIconPrefix = "glyphicon glyphicon-"
)

// Icon renders an <i> icon. The prefix defaults to the glyphicon set; pass
// e.g. "fa fa-" for Font Awesome.
func Icon(name, prefix string, attrs markup.Attributes) string {
	if name == "" {
		name = defaultIcon
	}
	if prefix == "" {
		prefix = defaultIconPrefix
	}
	return markup.Tag("i", "", markup.WithClass(prefix+name, attrs))
}

// IconClose renders the × close button used by alerts and modals.
func IconClose(attrs markup.Attributes) string {
	out := markup.WithClass("close", attrs)
	if !out.Has("type") {
		out["type"] = "button"
	}
	return markup.Tag("button", "<span>&times;</span>", out)
}
