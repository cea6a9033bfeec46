package page

import (
	"errors"

	"github.com/goliatone/go-bs3/pkg/markup"
	"github.com/goliatone/go-bs3/pkg/widgets"
)

// Asset URLs referenced by the default registry and layouts.
const (
	BootstrapCSSURL = "https://maxcdn.bootstrapcdn.com/bootstrap/3.3.7/css/bootstrap.min.css"
	BootstrapJSURL  = "https://maxcdn.bootstrapcdn.com/bootstrap/3.3.7/js/bootstrap.min.js"
	JQueryURL       = "https://code.jquery.com/jquery-1.12.4.min.js"
)

// bootstrapJS is attached to widgets that depend on the Bootstrap plugins.
var bootstrapJS = []string{JQueryURL, BootstrapJSURL}

var defaultRegistry = func() *Registry {
	reg := NewRegistry()
	registerLayoutWidgets(reg)
	registerTextWidgets(reg)
	registerContextualWidgets(reg)
	registerNavigationWidgets(reg)
	registerComponentWidgets(reg)
	registerFormWidgets(reg)
	return reg
}()

// NewDefaultRegistry returns a copy of the registry holding every built-in
// widget. Callers may register overrides on the copy.
func NewDefaultRegistry() *Registry {
	return defaultRegistry.Clone()
}

func attrs(block Block) markup.Attributes {
	return markup.Attributes(block.Attrs).Clone()
}

func registerLayoutWidgets(reg *Registry) {
	reg.MustRegister("container", Descriptor{
		Summary: "div.container wrapping the children (options: fluid)",
		Renderer: func(block Block, data WidgetData) (string, error) {
			body, err := data.Body(block)
			if err != nil {
				return "", err
			}
			return widgets.Container(block.Bool("fluid"), attrs(block)) + widgets.CloseContainer(body), nil
		},
	})
	reg.MustRegister("row", Descriptor{
		Summary: "div.row around the children",
		Renderer: func(block Block, data WidgetData) (string, error) {
			children, err := data.Children(block)
			if err != nil {
				return "", err
			}
			return widgets.Row(children, attrs(block)), nil
		},
	})
	reg.MustRegister("col", Descriptor{
		Summary: "grid column (options: columns, offsets)",
		Renderer: func(block Block, data WidgetData) (string, error) {
			body, err := data.Body(block)
			if err != nil {
				return "", err
			}
			columns := block.Strings("columns")
			if len(columns) == 0 {
				columns = []string{"md-12"}
			}
			return widgets.Col(columns, block.Strings("offsets"), attrs(block)) + widgets.CloseCol(body), nil
		},
	})
	reg.MustRegister("html", Descriptor{
		Summary: "raw element (options: tag); without a tag the content is emitted as is",
		Renderer: func(block Block, data WidgetData) (string, error) {
			body, err := data.Body(block)
			if err != nil {
				return "", err
			}
			tag := block.String("tag", "")
			if tag == "" {
				return body, nil
			}
			return markup.Auto(tag, body, attrs(block)), nil
		},
	})
	reg.MustRegister("template", Descriptor{
		Summary:   "content rendered as an inline template with options as data",
		Evaluates: true,
		Renderer: func(block Block, data WidgetData) (string, error) {
			if data.Template == nil {
				return "", errors.New("no template renderer configured")
			}
			return data.Template.RenderString(block.Content, block.Options)
		},
	})
}

func registerTextWidgets(reg *Registry) {
	reg.MustRegister("heading", Descriptor{
		Summary: "h1-h6 (options: level, page_header, anchor)",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			return widgets.Heading(widgets.HeadingOptions{
				Content:    block.Content,
				Level:      block.Int("level", 1),
				PageHeader: block.Bool("page_header"),
				CreateID:   block.Bool("anchor"),
				Attrs:      attrs(block),
			}), nil
		},
	})
	reg.MustRegister("paragraph", Descriptor{
		Summary: "p (options: lead)",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			if block.Bool("lead") {
				return widgets.Lead(block.Content, attrs(block)), nil
			}
			return widgets.P(block.Content, attrs(block)), nil
		},
	})
	reg.MustRegister("blockquote", Descriptor{
		Summary: "blockquote (options: footer, reverse)",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			return widgets.Blockquote(block.Content, block.String("footer", ""), block.Bool("reverse"), attrs(block)), nil
		},
	})
	reg.MustRegister("code", Descriptor{
		Summary: "escaped inline code, or a pre block (options: block, language, scrollable)",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			if block.Bool("block") {
				return widgets.Pre(block.Content, block.String("language", ""), block.Bool("scrollable"), attrs(block)), nil
			}
			return widgets.Code(block.Content, attrs(block)), nil
		},
	})
	reg.MustRegister("list", Descriptor{
		Summary: "ul/ol of items (options: type, style)",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			return widgets.List(listItems(block.Items), block.String("type", ""), block.String("style", ""), attrs(block)), nil
		},
	})
	reg.MustRegister("description_list", Descriptor{
		Summary: "dl of items {term, details} (options: horizontal)",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			items := block.ItemFields()
			descriptions := make([]widgets.Description, 0, len(items))
			for _, item := range items {
				descriptions = append(descriptions, widgets.Description{
					Term:    item.String("term", item.String("label", "")),
					Details: item.Strings("details"),
				})
			}
			return widgets.DescriptionList(descriptions, block.Bool("horizontal"), attrs(block)), nil
		},
	})
	reg.MustRegister("image", Descriptor{
		Summary: "img (options: src, alt, classes)",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			return widgets.Image(block.String("src", ""), block.String("alt", block.Content), block.Strings("classes"), attrs(block)), nil
		},
	})
	reg.MustRegister("embed", Descriptor{
		Summary: "responsive iframe (options: src, ratio)",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			return widgets.Embed(block.String("src", ""), block.String("ratio", ""), attrs(block)), nil
		},
	})
}

// listItems converts block items into list entries. A nested list of
// strings becomes a nested list.
func listItems(items []any) []widgets.ListItem {
	out := make([]widgets.ListItem, 0, len(items))
	for _, item := range items {
		if nested, ok := item.([]any); ok {
			out = append(out, widgets.ListItem{Items: listItems(nested)})
			continue
		}
		out = append(out, widgets.ListItem{Text: toString(item)})
	}
	return out
}

func registerContextualWidgets(reg *Registry) {
	reg.MustRegister("alert", Descriptor{
		Summary: "alert (options: style, title, dismissible)",
		Scripts: bootstrapJS,
		Renderer: func(block Block, data WidgetData) (string, error) {
			body, err := data.Body(block)
			if err != nil {
				return "", err
			}
			return widgets.Alert(widgets.AlertOptions{
				Content:     body,
				Title:       block.String("title", ""),
				Style:       block.String("style", ""),
				Dismissible: block.Bool("dismissible"),
				Attrs:       attrs(block),
			}), nil
		},
	})
	reg.MustRegister("panel", Descriptor{
		Summary: "panel with a body (options: heading, footer, context)",
		Renderer: func(block Block, data WidgetData) (string, error) {
			body, err := data.Body(block)
			if err != nil {
				return "", err
			}
			heading := block.String("heading", "")
			if heading != "" {
				heading = widgets.PanelTitle(heading, nil)
			}
			return widgets.Panel(widgets.PanelOptions{
				Content: widgets.PanelBody(body, nil),
				Heading: heading,
				Footer:  block.String("footer", ""),
				Context: block.String("context", ""),
				Attrs:   attrs(block),
			}), nil
		},
	})
	reg.MustRegister("well", Descriptor{
		Summary: "well (options: size)",
		Renderer: func(block Block, data WidgetData) (string, error) {
			body, err := data.Body(block)
			if err != nil {
				return "", err
			}
			return widgets.Well(body, block.String("size", ""), attrs(block)), nil
		},
	})
	reg.MustRegister("jumbotron", Descriptor{
		Summary: "jumbotron around the content and children",
		Renderer: func(block Block, data WidgetData) (string, error) {
			children, err := data.Children(block)
			if err != nil {
				return "", err
			}
			contents := append([]string{block.Content}, children...)
			return widgets.Jumbotron(contents, attrs(block)), nil
		},
	})
	reg.MustRegister("badge", Descriptor{
		Summary: "span.badge",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			return widgets.Badge(block.Content, attrs(block)), nil
		},
	})
	reg.MustRegister("label", Descriptor{
		Summary: "span.label (options: context)",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			return widgets.ContextLabel(block.Content, block.String("context", ""), attrs(block)), nil
		},
	})
	reg.MustRegister("icon", Descriptor{
		Summary: "icon (options: name, prefix)",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			return widgets.Icon(block.String("name", block.Content), block.String("prefix", ""), attrs(block)), nil
		},
	})
	reg.MustRegister("progress", Descriptor{
		Summary: "progress bars from items {value, label, classes}",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			items := block.ItemFields()
			bars := make([]string, 0, len(items))
			for _, item := range items {
				bars = append(bars, widgets.ProgressBar(widgets.ProgressBarOptions{
					Value:   fieldInt(item, "value"),
					Label:   item.String("label", ""),
					Classes: item.Strings("classes"),
				}))
			}
			return widgets.Progress(bars, attrs(block)), nil
		},
	})
}

func registerNavigationWidgets(reg *Registry) {
	navRenderer := func(pills bool) WidgetRenderer {
		return func(block Block, data WidgetData) (string, error) {
			items := block.ItemFields()
			nav := make([]widgets.NavItem, 0, len(items))
			for _, item := range items {
				nav = append(nav, widgets.NavItem{
					Content: item.String("label", ""),
					Href:    item.String("href", ""),
					Active:  item.Bool("active"),
				})
			}
			opts := widgets.NavOptions{
				Justified: block.Bool("justified"),
				Stacked:   block.Bool("stacked"),
				Host:      data.Host,
				Attrs:     attrs(block),
			}
			if pills {
				return widgets.NavPills(nav, opts), nil
			}
			return widgets.NavTabs(nav, opts), nil
		}
	}
	reg.MustRegister("nav_tabs", Descriptor{
		Summary:  "tabs from items {label, href, active} (options: justified)",
		Scripts:  bootstrapJS,
		Renderer: navRenderer(false),
	})
	reg.MustRegister("nav_pills", Descriptor{
		Summary:  "pills from items {label, href, active} (options: justified, stacked)",
		Scripts:  bootstrapJS,
		Renderer: navRenderer(true),
	})
	reg.MustRegister("tab_content", Descriptor{
		Summary: "tab panes, one per child (options: ids, active)",
		Renderer: func(block Block, data WidgetData) (string, error) {
			children, err := data.Children(block)
			if err != nil {
				return "", err
			}
			ids := block.Strings("ids")
			active := block.Int("active", 0)
			panes := make([]widgets.TabPane, 0, len(children))
			for idx, child := range children {
				pane := widgets.TabPane{Content: child, Active: idx == active}
				if idx < len(ids) {
					pane.ID = ids[idx]
				}
				panes = append(panes, pane)
			}
			return widgets.NavContent(panes, attrs(block)), nil
		},
	})
	reg.MustRegister("breadcrumbs", Descriptor{
		Summary: "breadcrumb trail from items {label, href}",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			items := block.ItemFields()
			crumbs := make([]widgets.Crumb, 0, len(items))
			for _, item := range items {
				crumbs = append(crumbs, widgets.Crumb{Label: item.String("label", ""), Href: item.String("href", "")})
			}
			return widgets.Breadcrumbs(crumbs, attrs(block)), nil
		},
	})
	reg.MustRegister("dropdown", Descriptor{
		Summary: "dropdown button; items {label, href} use the #, !, > and - markers (options: direction, align)",
		Scripts: bootstrapJS,
		Renderer: func(block Block, _ WidgetData) (string, error) {
			items := block.ItemFields()
			menu := make([]widgets.MenuItem, 0, len(items))
			for _, item := range items {
				menu = append(menu, widgets.MenuItem{Label: item.String("label", ""), Href: item.String("href", "")})
			}
			rendered := widgets.DropdownMenu(menu, block.String("align", ""), nil)
			return widgets.Dropdown(block.Content, rendered, block.String("direction", ""), attrs(block)), nil
		},
	})
	reg.MustRegister("pagination", Descriptor{
		Summary: "numbered pagination for the request URL (options: per_page, total)",
		Renderer: func(block Block, data WidgetData) (string, error) {
			return widgets.Pagination(data.RequestURL, block.Int("per_page", 10), block.Int("total", 0), attrs(block)), nil
		},
	})
	reg.MustRegister("pager", Descriptor{
		Summary: "newer/older pager for the request URL (options: per_page, total, aligned)",
		Renderer: func(block Block, data WidgetData) (string, error) {
			return widgets.Pager(data.RequestURL, block.Int("per_page", 10), block.Int("total", 0), block.Bool("aligned"), attrs(block)), nil
		},
	})
}

func fieldInt(fields Fields, key string) int {
	return Block{Options: fields}.Int(key, 0)
}
