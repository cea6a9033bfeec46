package widgets

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-bs3/pkg/markup"
)

// ModalOptions configures Modal. The header (with its close button) is only
// rendered when Title is set and the footer only when Footer is set.
type ModalOptions struct {
	ID     string
	Body   string
	Title  string
	Footer string
	// Size is lg or sm.
	Size  string
	Attrs markup.Attributes
}

func Modal(opts ModalOptions) string {
	dialogClass := "modal-dialog"
	if opts.Size != "" {
		dialogClass += " modal-" + opts.Size
	}

	var content strings.Builder
	content.WriteString(`<div class="` + dialogClass + `" role="document">`)
	content.WriteString(`<div class="modal-content">`)
	if opts.Title != "" {
		content.WriteString(`<div class="modal-header">`)
		content.WriteString(`<button type="button" class="close" data-dismiss="modal" aria-label="Close"><span aria-hidden="true">&times;</span></button>`)
		content.WriteString(`<h4 class="modal-title">` + opts.Title + `</h4>`)
		content.WriteString(`</div>`)
	}
	content.WriteString(`<div class="modal-body">` + opts.Body + `</div>`)
	if opts.Footer != "" {
		content.WriteString(`<div class="modal-footer">` + opts.Footer + `</div>`)
	}
	content.WriteString(`</div></div>`)

	out := markup.WithClass("modal fade", opts.Attrs)
	out["id"] = opts.ID
	out["tabindex"] = "-1"
	out["role"] = "dialog"
	return markup.Tag("div", content.String(), out)
}

// AccordionItem is one collapsible panel of an Accordion.
type AccordionItem struct {
	Title string
	Body  string
}

// Accordion renders a panel-group whose panels collapse into each other. The
// first panel starts expanded.
func Accordion(id string, items []AccordionItem, attrs markup.Attributes) string {
	var content strings.Builder
	for idx, item := range items {
		n := strconv.Itoa(idx + 1)
		target := "collapse-" + n + "-" + id

		toggle := markup.Attributes{
			"data-toggle": "collapse",
			"data-parent": "#" + id,
		}
		collapseClass := "panel-collapse collapse"
		if idx == 0 {
			collapseClass += " in"
		} else {
			toggle["class"] = "collapsed"
		}

		body := markup.Tag("div", item.Body, markup.Attributes{
			"id":    target,
			"class": collapseClass,
		})
		heading := `<h4 class="panel-title">` + Link(item.Title, "#"+target, false, toggle) + `</h4>`
		content.WriteString(Panel(PanelOptions{Content: body, Heading: heading}))
	}

	out := markup.WithClass("panel-group", attrs)
	out["id"] = id
	return markup.Tag("div", content.String(), out)
}

// Caption is the optional overlay text of a carousel slide.
type Caption struct {
	Title string
	Text  string
}

// CarouselOptions configures Carousel. Captions are matched to Images by
// index and may be shorter than Images.
type CarouselOptions struct {
	ID       string
	Images   []string
	Captions []Caption
	Attrs    markup.Attributes
}

func Carousel(opts CarouselOptions) string {
	var content strings.Builder

	content.WriteString(`<ol class="carousel-indicators">`)
	for idx := range opts.Images {
		content.WriteString(`<li data-target="#` + opts.ID + `" data-slide-to="` + strconv.Itoa(idx) + `"`)
		if idx == 0 {
			content.WriteString(` class="active"`)
		}
		content.WriteString(`></li>`)
	}
	content.WriteString(`</ol>`)

	content.WriteString(`<div class="carousel-inner">`)
	for idx, src := range opts.Images {
		if idx == 0 {
			content.WriteString(`<div class="item active">`)
		} else {
			content.WriteString(`<div class="item">`)
		}
		content.WriteString(`<img src="` + src + `">`)
		if idx < len(opts.Captions) {
			caption := opts.Captions[idx]
			if caption.Title != "" || caption.Text != "" {
				content.WriteString(`<div class="carousel-caption">`)
				if caption.Title != "" {
					content.WriteString(`<h3>` + caption.Title + `</h3>`)
				}
				if caption.Text != "" {
					content.WriteString(`<p>` + caption.Text + `</p>`)
				}
				content.WriteString(`</div>`)
			}
		}
		content.WriteString(`</div>`)
	}
	content.WriteString(`</div>`)

	content.WriteString(Link(`<span class="icon-prev"></span>`, "#"+opts.ID, false, markup.Attributes{
		"class":      "left carousel-control",
		"data-slide": "prev",
	}))
	content.WriteString(Link(`<span class="icon-next"></span>`, "#"+opts.ID, false, markup.Attributes{
		"class":      "right carousel-control",
		"data-slide": "next",
	}))

	out := markup.WithClass("carousel slide", opts.Attrs)
	out["id"] = opts.ID
	out["data-ride"] = "carousel"
	return markup.Tag("div", content.String(), out)
}

// MediaOptions configures Media. Alignment is left (default) or right; Link
// defaults to "#".
type MediaOptions struct {
	Image     string
	Link      string
	Heading   string
	Content   string
	Alignment string
	Attrs     markup.Attributes
}

func Media(opts MediaOptions) string {
	alignment := opts.Alignment
	if alignment == "" {
		alignment = "left"
	}
	link := opts.Link
	if link == "" {
		link = "#"
	}

	object := `<div class="media-` + alignment + `">` +
		`<a href="` + link + `"><img class="media-object" src="` + opts.Image + `" alt="` + opts.Heading + `"></a></div>`
	body := `<div class="media-body"><h4 class="media-heading">` + opts.Heading + `</h4>` + opts.Content + `</div>`

	content := body
	switch alignment {
	case "left":
		content = object + body
	case "right":
		content = body + object
	}
	return markup.Tag("div", content, markup.WithClass("media", opts.Attrs))
}

// Progress wraps pre-rendered progress bars.
func Progress(bars []string, attrs markup.Attributes) string {
	return markup.Tag("div", strings.Join(bars, ""), markup.WithClass("progress", attrs))
}

// ProgressBarOptions configures ProgressBar. Value is a percentage. Class
// tokens become progress-bar-{token} except "active", which is kept as is
// (use "striped" together with "active" for the animated bar).
type ProgressBarOptions struct {
	Value   int
	Label   string
	Classes []string
	Attrs   markup.Attributes
}

func ProgressBar(opts ProgressBarOptions) string {
	class := "progress-bar"
	for _, token := range opts.Classes {
		token = strings.TrimSpace(token)
		switch token {
		case "":
			continue
		case "active":
			class += " active"
		default:
			class += " progress-bar-" + token
		}
	}

	value := strconv.Itoa(opts.Value)
	out := markup.WithClass(class, opts.Attrs)
	out["role"] = "progressbar"
	out["aria-valuenow"] = value
	out["aria-valuemin"] = "0"
	out["aria-valuemax"] = "100"
	out["style"] = "min-width: 2em; width: " + value + "%;"
	return markup.Tag("div", opts.Label, out)
}

func ProgressBarSuccess(opts ProgressBarOptions) string { return progressBarWith(ContextSuccess, opts) }
func ProgressBarInfo(opts ProgressBarOptions) string    { return progressBarWith(ContextInfo, opts) }
func ProgressBarWarning(opts ProgressBarOptions) string { return progressBarWith(ContextWarning, opts) }
func ProgressBarDanger(opts ProgressBarOptions) string  { return progressBarWith(ContextDanger, opts) }

func progressBarWith(context string, opts ProgressBarOptions) string {
	opts.Classes = withToken(opts.Classes, context)
	return ProgressBar(opts)
}

// Cell is one table cell with optional attributes (colspan, class, ...).
type Cell struct {
	Content string
	Attrs   markup.Attributes
}

// Cells turns plain strings into cells without attributes.
func Cells(texts ...string) []Cell {
	out := make([]Cell, 0, len(texts))
	for _, text := range texts {
		out = append(out, Cell{Content: text})
	}
	return out
}

// TableOptions configures Table. Class tokens become table-{token} (striped,
// bordered, hover, condensed); the "responsive" token wraps the table in
// div.table-responsive instead.
type TableOptions struct {
	Head    []Cell
	Body    [][]Cell
	Foot    []Cell
	Classes []string
	Attrs   markup.Attributes
}

func Table(opts TableOptions) string {
	var content strings.Builder

	if len(opts.Head) > 0 {
		content.WriteString("<thead><tr>")
		for _, cell := range opts.Head {
			content.WriteString(markup.Tag("th", cell.Content, cell.Attrs))
		}
		content.WriteString("</tr></thead>")
	}

	if len(opts.Body) > 0 {
		content.WriteString("<tbody>")
		for _, row := range opts.Body {
			var cells strings.Builder
			for _, cell := range row {
				cells.WriteString(markup.Tag("td", cell.Content, cell.Attrs))
			}
			content.WriteString(markup.Tag("tr", cells.String(), nil))
		}
		content.WriteString("</tbody>")
	}

	if len(opts.Foot) > 0 {
		content.WriteString("<tfoot><tr>")
		for _, cell := range opts.Foot {
			content.WriteString(markup.Tag("td", cell.Content, cell.Attrs))
		}
		content.WriteString("</tr></tfoot>")
	}

	class := "table"
	responsive := false
	for _, token := range opts.Classes {
		token = strings.TrimSpace(token)
		switch token {
		case "":
			continue
		case "responsive":
			responsive = true
		default:
			class += " table-" + token
		}
	}

	table := markup.Tag("table", content.String(), markup.WithClass(class, opts.Attrs))
	if responsive {
		return `<div class="table-responsive">` + table + `</div>`
	}
	return table
}
