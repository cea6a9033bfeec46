package template

import (
	"sort"

	"github.com/goliatone/go-bs3/pkg/markup"
	"github.com/goliatone/go-bs3/pkg/widgets"
)

// WidgetFunc is a catalog widget callable from templates. Engines must mark
// the returned markup as safe so it is not escaped a second time.
type WidgetFunc func(args ...any) string

// WidgetFuncs returns the template globals exposing the widget catalog. The
// argument order of each global is documented next to its entry.
func WidgetFuncs() map[string]WidgetFunc {
	return map[string]WidgetFunc{
		// el(tag, content, attrs, close=true)
		"el": func(a ...any) string {
			args := Args(a)
			closeTag := len(args) < 4 || args.Bool(3)
			return markup.El(args.String(0), args.String(1), args.Attrs(2), closeTag)
		},
		// link(content, href, target_blank, attrs)
		"link": func(a ...any) string {
			args := Args(a)
			return widgets.Link(args.String(0), args.String(1), args.Bool(2), args.Attrs(3))
		},
		// btn(content, "primary lg", attrs)
		"btn": func(a ...any) string {
			args := Args(a)
			return widgets.Button(args.String(0), args.Tokens(1), args.Attrs(2))
		},
		// btn_submit(content, classes, attrs)
		"btn_submit": func(a ...any) string {
			args := Args(a)
			return widgets.ButtonSubmit(args.String(0), args.Tokens(1), args.Attrs(2))
		},
		// btn_modal(content, target_id, classes, attrs)
		"btn_modal": func(a ...any) string {
			args := Args(a)
			return widgets.ButtonModal(args.String(0), args.String(1), args.Tokens(2), args.Attrs(3))
		},
		// alert(content, style, title, dismissible, attrs)
		"alert": func(a ...any) string {
			args := Args(a)
			return widgets.Alert(widgets.AlertOptions{
				Content:     args.String(0),
				Style:       args.String(1),
				Title:       args.String(2),
				Dismissible: args.Bool(3),
				Attrs:       args.Attrs(4),
			})
		},
		// panel(content, heading, footer, context, attrs)
		"panel": func(a ...any) string {
			args := Args(a)
			return widgets.Panel(widgets.PanelOptions{
				Content: args.String(0),
				Heading: args.String(1),
				Footer:  args.String(2),
				Context: args.String(3),
				Attrs:   args.Attrs(4),
			})
		},
		// panel_body(content, attrs)
		"panel_body": func(a ...any) string {
			args := Args(a)
			return widgets.PanelBody(args.String(0), args.Attrs(1))
		},
		// label(content, context, attrs)
		"label": func(a ...any) string {
			args := Args(a)
			return widgets.ContextLabel(args.String(0), args.String(1), args.Attrs(2))
		},
		// badge(content, attrs)
		"badge": func(a ...any) string {
			args := Args(a)
			return widgets.Badge(args.String(0), args.Attrs(1))
		},
		// well(content, size, attrs)
		"well": func(a ...any) string {
			args := Args(a)
			return widgets.Well(args.String(0), args.String(1), args.Attrs(2))
		},
		// icon(name, prefix, attrs)
		"icon": func(a ...any) string {
			args := Args(a)
			return widgets.Icon(args.String(0), args.String(1), args.Attrs(2))
		},
		// heading(content, level, create_id, attrs)
		"heading": func(a ...any) string {
			args := Args(a)
			return widgets.Heading(widgets.HeadingOptions{
				Content:  args.String(0),
				Level:    args.Int(1),
				CreateID: args.Bool(2),
				Attrs:    args.Attrs(3),
			})
		},
		// lead(content, attrs)
		"lead": func(a ...any) string {
			args := Args(a)
			return widgets.Lead(args.String(0), args.Attrs(1))
		},
		// code(content, attrs)
		"code": func(a ...any) string {
			args := Args(a)
			return widgets.Code(args.String(0), args.Attrs(1))
		},
		// kbd(keys, attrs)
		"kbd": func(a ...any) string {
			args := Args(a)
			return widgets.Kbd(args.Strings(0), args.Attrs(1))
		},
		// list(items, type, style, attrs)
		"list": func(a ...any) string {
			args := Args(a)
			return widgets.List(widgets.Items(args.Strings(0)...), args.String(1), args.String(2), args.Attrs(3))
		},
		// image(src, alt, classes, attrs)
		"image": func(a ...any) string {
			args := Args(a)
			return widgets.Image(args.String(0), args.String(1), args.Tokens(2), args.Attrs(3))
		},
		// form(action, method, attrs)
		"form": func(a ...any) string {
			args := Args(a)
			return widgets.Form(args.String(0), args.String(1), args.Attrs(2))
		},
		// close_form(before_close)
		"close_form": func(a ...any) string {
			return widgets.CloseForm(Args(a).String(0))
		},
		// input(name, type, value, placeholder, attrs)
		"input": func(a ...any) string {
			args := Args(a)
			return widgets.Input(widgets.InputOptions{
				Name:        args.String(0),
				Type:        args.String(1),
				Value:       args.String(2),
				Placeholder: args.String(3),
				Attrs:       args.Attrs(4),
			})
		},
		// textarea(name, value, rows, attrs)
		"textarea": func(a ...any) string {
			args := Args(a)
			return widgets.Textarea(widgets.TextareaOptions{
				Name:  args.String(0),
				Value: args.String(1),
				Rows:  args.Int(2),
				Attrs: args.Attrs(3),
			})
		},
		// col("md-4 xs-12", "md-2", attrs)
		"col": func(a ...any) string {
			args := Args(a)
			return widgets.Col(args.Tokens(0), args.Tokens(1), args.Attrs(2))
		},
		// col_md(span, offset, attrs)
		"col_md": func(a ...any) string {
			args := Args(a)
			return widgets.ColMD(args.Int(0), args.Int(1), args.Attrs(2))
		},
		"close_col": func(a ...any) string {
			return widgets.CloseCol(Args(a).String(0))
		},
		// container(fluid, attrs)
		"container": func(a ...any) string {
			args := Args(a)
			return widgets.Container(args.Bool(0), args.Attrs(1))
		},
		"close_container": func(a ...any) string {
			return widgets.CloseContainer(Args(a).String(0))
		},
		// progress_bar(value, label, classes, attrs)
		"progress_bar": func(a ...any) string {
			args := Args(a)
			bar := widgets.ProgressBar(widgets.ProgressBarOptions{
				Value:   args.Int(0),
				Label:   args.String(1),
				Classes: args.Tokens(2),
				Attrs:   args.Attrs(3),
			})
			return widgets.Progress([]string{bar}, nil)
		},
		// pagination(request_url, per_page, total_items, attrs)
		"pagination": func(a ...any) string {
			args := Args(a)
			return widgets.Pagination(args.URL(0), args.Int(1), args.Int(2), args.Attrs(3))
		},
		// pager(request_url, per_page, total_items, aligned, attrs)
		"pager": func(a ...any) string {
			args := Args(a)
			return widgets.Pager(args.URL(0), args.Int(1), args.Int(2), args.Bool(3), args.Attrs(4))
		},
	}
}

// WidgetNames lists the template globals in sorted order.
func WidgetNames() []string {
	funcs := WidgetFuncs()
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
