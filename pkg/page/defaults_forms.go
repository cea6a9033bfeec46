package page

import (
	"strings"

	"github.com/goliatone/go-bs3/pkg/markup"
	"github.com/goliatone/go-bs3/pkg/widgets"
)

func registerComponentWidgets(reg *Registry) {
	reg.MustRegister("button", Descriptor{
		Summary: "button, or a link when href is set (options: classes, href)",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			out := attrs(block)
			if href := block.String("href", ""); href != "" {
				out["href"] = href
			}
			return widgets.Button(block.Content, block.Strings("classes"), out), nil
		},
	})
	reg.MustRegister("button_group", Descriptor{
		Summary: "btn-group around the children (options: classes)",
		Renderer: func(block Block, data WidgetData) (string, error) {
			children, err := data.Children(block)
			if err != nil {
				return "", err
			}
			return widgets.ButtonGroup(children, block.Strings("classes"), attrs(block)), nil
		},
	})
	reg.MustRegister("link", Descriptor{
		Summary: "anchor (options: href, target_blank)",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			return widgets.Link(block.Content, block.String("href", ""), block.Bool("target_blank"), attrs(block)), nil
		},
	})
	reg.MustRegister("popover", Descriptor{
		Summary: "popover button (options: title, body, placement, classes)",
		Scripts: bootstrapJS,
		Renderer: func(block Block, _ WidgetData) (string, error) {
			return widgets.Popover(widgets.PopoverOptions{
				Label:     block.Content,
				Title:     block.String("title", ""),
				Content:   block.String("body", ""),
				Placement: block.String("placement", ""),
				Classes:   block.Strings("classes"),
				Attrs:     attrs(block),
			}), nil
		},
	})
	reg.MustRegister("modal", Descriptor{
		Summary: "modal dialog around the content and children (options: id, title, footer, size)",
		Scripts: bootstrapJS,
		Renderer: func(block Block, data WidgetData) (string, error) {
			body, err := data.Body(block)
			if err != nil {
				return "", err
			}
			return widgets.Modal(widgets.ModalOptions{
				ID:     block.String("id", "modal"),
				Body:   body,
				Title:  block.String("title", ""),
				Footer: block.String("footer", ""),
				Size:   block.String("size", ""),
				Attrs:  attrs(block),
			}), nil
		},
	})
	reg.MustRegister("accordion", Descriptor{
		Summary: "collapsible panels from items {title, body} (options: id)",
		Scripts: bootstrapJS,
		Renderer: func(block Block, _ WidgetData) (string, error) {
			items := block.ItemFields()
			panels := make([]widgets.AccordionItem, 0, len(items))
			for _, item := range items {
				panels = append(panels, widgets.AccordionItem{
					Title: item.String("title", item.String("label", "")),
					Body:  item.String("body", ""),
				})
			}
			return widgets.Accordion(block.String("id", "accordion"), panels, attrs(block)), nil
		},
	})
	reg.MustRegister("carousel", Descriptor{
		Summary: "image carousel from items {src, title, text} (options: id)",
		Scripts: bootstrapJS,
		Renderer: func(block Block, _ WidgetData) (string, error) {
			items := block.ItemFields()
			opts := widgets.CarouselOptions{ID: block.String("id", "carousel"), Attrs: attrs(block)}
			for _, item := range items {
				opts.Images = append(opts.Images, item.String("src", item.String("label", "")))
				opts.Captions = append(opts.Captions, widgets.Caption{
					Title: item.String("title", ""),
					Text:  item.String("text", ""),
				})
			}
			return widgets.Carousel(opts), nil
		},
	})
	reg.MustRegister("media", Descriptor{
		Summary: "media object (options: image, link, heading, alignment)",
		Renderer: func(block Block, data WidgetData) (string, error) {
			body, err := data.Body(block)
			if err != nil {
				return "", err
			}
			return widgets.Media(widgets.MediaOptions{
				Image:     block.String("image", ""),
				Link:      block.String("link", ""),
				Heading:   block.String("heading", ""),
				Content:   body,
				Alignment: block.String("alignment", ""),
				Attrs:     attrs(block),
			}), nil
		},
	})
	reg.MustRegister("list_group", Descriptor{
		Summary: "list group from items {label, href, active, style}",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			items := block.ItemFields()
			linked := false
			for _, item := range items {
				if item.String("href", "") != "" {
					linked = true
				}
			}
			entries := make([]string, 0, len(items))
			for _, item := range items {
				opts := widgets.ListGroupItemOptions{
					Content: item.String("label", ""),
					Active:  item.Bool("active"),
					Style:   item.String("style", ""),
				}
				if linked {
					opts.Type = "a"
					opts.Href = item.String("href", "")
				}
				entries = append(entries, widgets.ListGroupItem(opts))
			}
			listType := ""
			if linked {
				listType = "div"
			}
			return widgets.ListGroup(entries, listType, attrs(block)), nil
		},
	})
	reg.MustRegister("table", Descriptor{
		Summary: "table; items are rows (options: head, foot, classes)",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			rows := make([][]widgets.Cell, 0, len(block.Items))
			for _, item := range block.Items {
				row, ok := item.([]any)
				if !ok {
					rows = append(rows, widgets.Cells(toString(item)))
					continue
				}
				cells := make([]string, 0, len(row))
				for _, cell := range row {
					cells = append(cells, toString(cell))
				}
				rows = append(rows, widgets.Cells(cells...))
			}
			return widgets.Table(widgets.TableOptions{
				Head:    widgets.Cells(block.Strings("head")...),
				Body:    rows,
				Foot:    widgets.Cells(block.Strings("foot")...),
				Classes: block.Strings("classes"),
				Attrs:   attrs(block),
			}), nil
		},
	})
}

func registerFormWidgets(reg *Registry) {
	reg.MustRegister("form", Descriptor{
		Summary: "form around the children (options: action, method, layout=inline|horizontal)",
		Renderer: func(block Block, data WidgetData) (string, error) {
			children, err := data.Children(block)
			if err != nil {
				return "", err
			}
			action, method := block.String("action", ""), block.String("method", "")
			var open string
			switch block.String("layout", "") {
			case "inline":
				open = widgets.FormInline(action, method, attrs(block))
			case "horizontal":
				open = widgets.FormHorizontal(action, method, attrs(block))
			default:
				open = widgets.Form(action, method, attrs(block))
			}
			return open + widgets.CloseForm(strings.Join(children, "")), nil
		},
	})
	reg.MustRegister("form_group", Descriptor{
		Summary: "form-group with an optional label (options: label, for, help)",
		Renderer: func(block Block, data WidgetData) (string, error) {
			children, err := data.Children(block)
			if err != nil {
				return "", err
			}
			var items []string
			if label := block.String("label", ""); label != "" {
				items = append(items, widgets.Label(label, block.String("for", ""), nil))
			}
			items = append(items, children...)
			if help := block.String("help", ""); help != "" {
				items = append(items, widgets.HelpBlock(help, nil))
			}
			return widgets.FormGroup(items, attrs(block)), nil
		},
	})
	reg.MustRegister("input", Descriptor{
		Summary: "input (options: name, type, placeholder, size); content is the value",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			kind := block.String("type", "text")
			if kind == "file" {
				return widgets.InputFile(block.String("name", ""), attrs(block)), nil
			}
			return widgets.Input(widgets.InputOptions{
				Name:        block.String("name", ""),
				Value:       block.Content,
				Type:        kind,
				Placeholder: block.String("placeholder", ""),
				Size:        block.String("size", ""),
				Attrs:       attrs(block),
			}), nil
		},
	})
	reg.MustRegister("textarea", Descriptor{
		Summary: "textarea (options: name, placeholder, rows); content is the value",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			return widgets.Textarea(widgets.TextareaOptions{
				Name:        block.String("name", ""),
				Value:       block.Content,
				Placeholder: block.String("placeholder", ""),
				Rows:        block.Int("rows", 0),
				Attrs:       attrs(block),
			}), nil
		},
	})
	reg.MustRegister("select", Descriptor{
		Summary: "select from items {value, label} (options: name, selected, multiple)",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			items := block.ItemFields()
			opts := widgets.SelectOptions{
				Name:     block.String("name", ""),
				Selected: block.Strings("selected"),
				Attrs:    attrs(block),
			}
			for _, item := range items {
				label := item.String("label", "")
				opts.Options = append(opts.Options, widgets.SelectOption{
					Value: item.String("value", label),
					Label: label,
				})
			}
			if block.Bool("multiple") {
				return widgets.SelectMultiple(opts), nil
			}
			return widgets.Select(opts), nil
		},
	})
	choice := func(radio bool) WidgetRenderer {
		return func(block Block, _ WidgetData) (string, error) {
			opts := widgets.ChoiceOptions{
				Name:    block.String("name", ""),
				Value:   block.String("value", ""),
				Label:   block.Content,
				Checked: block.Bool("checked"),
				Inline:  block.Bool("inline"),
				Attrs:   attrs(block),
			}
			if radio {
				return widgets.Radio(opts), nil
			}
			return widgets.Checkbox(opts), nil
		}
	}
	reg.MustRegister("checkbox", Descriptor{
		Summary:  "checkbox (options: name, value, checked, inline); content is the label",
		Renderer: choice(false),
	})
	reg.MustRegister("radio", Descriptor{
		Summary:  "radio (options: name, value, checked, inline); content is the label",
		Renderer: choice(true),
	})
	reg.MustRegister("input_group", Descriptor{
		Summary: "input group: before/after addons around the children (options: before, after, size)",
		Renderer: func(block Block, data WidgetData) (string, error) {
			children, err := data.Children(block)
			if err != nil {
				return "", err
			}
			var items []string
			if before := block.String("before", ""); before != "" {
				items = append(items, widgets.InputGroupAddon(before, nil))
			}
			items = append(items, children...)
			if after := block.String("after", ""); after != "" {
				items = append(items, widgets.InputGroupAddon(after, nil))
			}
			return widgets.InputGroup(items, block.String("size", ""), attrs(block)), nil
		},
	})
	reg.MustRegister("submit", Descriptor{
		Summary: "submit button (options: classes)",
		Renderer: func(block Block, _ WidgetData) (string, error) {
			var classes []string
			if block.Options["classes"] != nil {
				classes = block.Strings("classes")
			}
			return widgets.ButtonSubmit(block.Content, classes, markup.Attributes(block.Attrs)), nil
		},
	})
}
