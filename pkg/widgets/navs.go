package widgets

import (
	"strings"

	"github.com/goliatone/go-bs3/pkg/markup"
)

// NavItem is one link of NavTabs or NavPills. Href defaults to "#".
type NavItem struct {
	Content string
	Href    string
	Active  bool
}

// NavOptions configures NavTabs and NavPills.
type NavOptions struct {
	Justified bool
	// Stacked only applies to pills.
	Stacked bool
	// Host is the current request host. Absolute http(s) links that do not
	// contain it open in a new tab; with an empty Host every absolute link
	// does.
	Host  string
	Attrs markup.Attributes
}

func NavTabs(items []NavItem, opts NavOptions) string {
	class := "nav nav-tabs"
	if opts.Justified {
		class += " nav-justified"
	}
	return markup.Tag("ul", navItems(items, opts.Host), markup.WithClass(class, opts.Attrs))
}

func NavPills(items []NavItem, opts NavOptions) string {
	class := "nav nav-pills"
	if opts.Justified {
		class += " nav-justified"
	}
	if opts.Stacked {
		class += " nav-stacked"
	}
	return markup.Tag("ul", navItems(items, opts.Host), markup.WithClass(class, opts.Attrs))
}

func navItems(items []NavItem, host string) string {
	var builder strings.Builder
	for _, item := range items {
		href := item.Href
		if href == "" {
			href = "#"
		}
		builder.WriteString("<li")
		if item.Active {
			builder.WriteString(` class="active"`)
		}
		builder.WriteString(`><a href="`)
		builder.WriteString(href)
		builder.WriteByte('"')
		if strings.HasPrefix(href, "#") {
			builder.WriteString(` data-toggle="tab"`)
		}
		if IsExternalURL(href, host) {
			builder.WriteString(` target="_blank"`)
		}
		builder.WriteByte('>')
		builder.WriteString(item.Content)
		builder.WriteString("</a></li>")
	}
	return builder.String()
}

// IsExternalURL reports whether href is an absolute http(s) URL that does
// not point at host.
func IsExternalURL(href, host string) bool {
	if !strings.HasPrefix(href, "http") {
		return false
	}
	return host == "" || !strings.Contains(href, host)
}

// TabPane is one pane of NavContent, matched to a tab by ID.
type TabPane struct {
	Content string
	ID      string
	Active  bool
}

func NavContent(panes []TabPane, attrs markup.Attributes) string {
	var builder strings.Builder
	for _, pane := range panes {
		builder.WriteString(`<div class="tab-pane`)
		if pane.Active {
			builder.WriteString(" active")
		}
		builder.WriteByte('"')
		if pane.ID != "" {
			builder.WriteString(` id="`)
			builder.WriteString(pane.ID)
			builder.WriteByte('"')
		}
		builder.WriteByte('>')
		builder.WriteString(pane.Content)
		builder.WriteString("</div>")
	}
	return markup.Tag("div", builder.String(), markup.WithClass("tab-content", attrs))
}

// Crumb is one breadcrumb. The last crumb is rendered as the active page
// without a link.
type Crumb struct {
	Label string
	Href  string
}

func Breadcrumbs(crumbs []Crumb, attrs markup.Attributes) string {
	var builder strings.Builder
	for idx, crumb := range crumbs {
		if idx == len(crumbs)-1 {
			builder.WriteString(`<li class="active">`)
			builder.WriteString(crumb.Label)
			builder.WriteString("</li>")
			break
		}
		builder.WriteString(`<li><a href="`)
		builder.WriteString(crumb.Href)
		builder.WriteString(`">`)
		builder.WriteString(crumb.Label)
		builder.WriteString("</a></li>")
	}
	return markup.Tag("ol", builder.String(), markup.WithClass("breadcrumb", attrs))
}

// MenuItem is one entry of a DropdownMenu. The first character of Label
// selects the entry kind:
//
//	#Title   dropdown header
//	!Label   disabled link
//	>Label   active link
//	-        divider
//
// Anything else is a plain link to Href ("#" when empty).
type MenuItem struct {
	Label string
	Href  string
}

// DropdownMenu renders a ul.dropdown-menu. Align is left or right.
func DropdownMenu(items []MenuItem, align string, attrs markup.Attributes) string {
	class := "dropdown-menu"
	if align != "" {
		class += " dropdown-menu-" + align
	}

	var content strings.Builder
	for _, item := range items {
		href := item.Href
		if href == "" {
			href = "#"
		}

		var (
			inner  string
			liAttr markup.Attributes
		)
		switch {
		case item.Label == "-":
			liAttr = markup.Attributes{"class": "divider", "role": "separator"}
		case strings.HasPrefix(item.Label, "#"):
			liAttr = markup.Attributes{"class": "dropdown-header"}
			inner = strings.TrimSpace(item.Label[1:])
		case strings.HasPrefix(item.Label, "!"):
			liAttr = markup.Attributes{"class": "disabled"}
			inner = markup.Tag("a", strings.TrimSpace(item.Label[1:]), markup.Attributes{"href": "#"})
		case strings.HasPrefix(item.Label, ">"):
			liAttr = markup.Attributes{"class": "active"}
			inner = markup.Tag("a", strings.TrimSpace(item.Label[1:]), markup.Attributes{"href": href})
		default:
			inner = markup.Tag("a", item.Label, markup.Attributes{"href": href})
		}
		content.WriteString(markup.Tag("li", inner, liAttr))
	}
	return markup.Tag("ul", content.String(), markup.WithClass(class, attrs))
}

// Dropdown pairs a toggle button with a pre-rendered DropdownMenu. Direction
// is down (default) or up.
func Dropdown(label, menu, direction string, attrs markup.Attributes) string {
	if direction == "" {
		direction = "down"
	}
	button := markup.Tag("button", label+" "+markup.Tag("span", "", markup.Attributes{"class": "caret"}), markup.Attributes{
		"class":       "btn btn-default dropdown-toggle",
		"type":        "button",
		"data-toggle": "dropdown",
	})
	return markup.Tag("div", button+menu, markup.WithClass("drop"+direction, attrs))
}
