package widgets

import (
	"strings"

	"github.com/goliatone/go-bs3/pkg/markup"
)

// ListItem is one entry of List. An item with Items renders as a nested list
// of the same type in place of an <li>.
type ListItem struct {
	Text  string
	Items []ListItem
}

// Items turns plain strings into list items.
func Items(texts ...string) []ListItem {
	out := make([]ListItem, 0, len(texts))
	for _, text := range texts {
		out = append(out, ListItem{Text: text})
	}
	return out
}

// List renders a ul or ol (listType defaults to ul). Style adds list-{style},
// e.g. unstyled or inline.
func List(items []ListItem, listType, style string, attrs markup.Attributes) string {
	if listType == "" {
		listType = "ul"
	}
	var content strings.Builder
	for _, item := range items {
		if len(item.Items) > 0 {
			content.WriteString(List(item.Items, listType, "", nil))
			continue
		}
		content.WriteString(markup.Tag("li", item.Text, nil))
	}
	out := attrs
	if style != "" {
		out = markup.WithClass("list-"+style, attrs)
	}
	return markup.Tag(listType, content.String(), out)
}

// Description is one term of a DescriptionList with its details.
type Description struct {
	Term    string
	Details []string
}

func DescriptionList(items []Description, horizontal bool, attrs markup.Attributes) string {
	var content strings.Builder
	for _, item := range items {
		content.WriteString(markup.Tag("dt", item.Term, nil))
		for _, detail := range item.Details {
			content.WriteString(markup.Tag("dd", detail, nil))
		}
	}
	out := attrs
	if horizontal {
		out = markup.WithClass("dl-horizontal", attrs)
	}
	return markup.Tag("dl", content.String(), out)
}

// ListGroup wraps pre-rendered list group items in a ul (or listType).
func ListGroup(items []string, listType string, attrs markup.Attributes) string {
	if listType == "" {
		listType = "ul"
	}
	return markup.Tag(listType, strings.Join(items, ""), markup.WithClass("list-group", attrs))
}

// ListGroupItemOptions configures ListGroupItem.
type ListGroupItemOptions struct {
	Content string
	// Type is the element: li (default), a or button.
	Type   string
	Href   string
	Active bool
	// Style is a contextual suffix: success, info, warning, danger.
	Style string
	Attrs markup.Attributes
}

func ListGroupItem(opts ListGroupItemOptions) string {
	tag := opts.Type
	if tag == "" {
		tag = "li"
	}
	class := "list-group-item"
	if opts.Style != "" {
		class += " list-group-item-" + opts.Style
	}
	if opts.Active {
		class += " active"
	}
	out := markup.WithClass(class, opts.Attrs)
	if tag == "a" {
		href := opts.Href
		if href == "" {
			href = "#"
		}
		out["href"] = href
	}
	return markup.Tag(tag, opts.Content, out)
}
