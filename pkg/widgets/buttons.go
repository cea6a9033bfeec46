package widgets

import (
	"strings"

	"github.com/goliatone/go-bs3/pkg/markup"
)

// Button contexts recognised by Button. A button without one of these tokens
// receives btn-default.
const (
	ContextDefault = "default"
	ContextPrimary = "primary"
	ContextSuccess = "success"
	ContextInfo    = "info"
	ContextWarning = "warning"
	ContextDanger  = "danger"
	ContextLink    = "link"
)

const defaultButtonContent = "Submit"

var buttonContexts = map[string]struct{}{
	ContextDefault: {},
	ContextPrimary: {},
	ContextSuccess: {},
	ContextInfo:    {},
	ContextWarning: {},
	ContextDanger:  {},
	ContextLink:    {},
}

// Link renders an anchor. An empty href falls back to "#".
func Link(content, href string, targetBlank bool, attrs markup.Attributes) string {
	out := attrs.Clone()
	if href == "" {
		href = "#"
	}
	out["href"] = href
	if targetBlank {
		out["target"] = "_blank"
	}
	return markup.Tag("a", content, out)
}

// Button renders a <button>, or an <a> when attrs carries an href. Each class
// token becomes a btn-{token} class.
func Button(content string, classes []string, attrs markup.Attributes) string {
	if content == "" {
		content = defaultButtonContent
	}

	class := "btn"
	styled := false
	for _, token := range classes {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		class += " btn-" + token
		if _, ok := buttonContexts[token]; ok {
			styled = true
		}
	}
	if !styled {
		class += " btn-" + ContextDefault
	}

	out := markup.WithClass(class, attrs)
	if out.Has("href") {
		return markup.Tag("a", content, out)
	}
	if !out.Has("type") {
		out["type"] = "button"
	}
	return markup.Tag("button", content, out)
}

// ButtonSubmit renders a submit button; classes default to primary.
func ButtonSubmit(content string, classes []string, attrs markup.Attributes) string {
	if classes == nil {
		classes = []string{ContextPrimary}
	}
	out := attrs.Clone()
	out["type"] = "submit"
	return Button(content, classes, out)
}

func ButtonDefault(content string, classes []string, attrs markup.Attributes) string {
	return Button(content, withToken(classes, ContextDefault), attrs)
}

func ButtonPrimary(content string, classes []string, attrs markup.Attributes) string {
	return Button(content, withToken(classes, ContextPrimary), attrs)
}

func ButtonSuccess(content string, classes []string, attrs markup.Attributes) string {
	return Button(content, withToken(classes, ContextSuccess), attrs)
}

func ButtonInfo(content string, classes []string, attrs markup.Attributes) string {
	return Button(content, withToken(classes, ContextInfo), attrs)
}

func ButtonWarning(content string, classes []string, attrs markup.Attributes) string {
	return Button(content, withToken(classes, ContextWarning), attrs)
}

func ButtonDanger(content string, classes []string, attrs markup.Attributes) string {
	return Button(content, withToken(classes, ContextDanger), attrs)
}

func ButtonLink(content string, classes []string, attrs markup.Attributes) string {
	return Button(content, withToken(classes, ContextLink), attrs)
}

// ButtonModal renders a button that toggles the modal with the given id.
func ButtonModal(content, targetID string, classes []string, attrs markup.Attributes) string {
	out := attrs.Clone()
	out["data-toggle"] = "modal"
	out["data-target"] = "#" + targetID
	return Button(content, classes, out)
}

// ButtonGroup wraps pre-rendered buttons. Size tokens (lg, sm, xs) become
// btn-group-{token}; the "vertical" token replaces the base btn-group class.
func ButtonGroup(buttons []string, classes []string, attrs markup.Attributes) string {
	class := ""
	vertical := false
	for _, token := range classes {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if token == "vertical" {
			vertical = true
		}
		class += " btn-group-" + token
	}
	if !vertical {
		class = "btn-group" + class
	}
	return markup.Tag("div", strings.Join(buttons, ""), markup.WithClass(class, attrs))
}

// ButtonToolbar wraps pre-rendered button groups.
func ButtonToolbar(groups []string, attrs markup.Attributes) string {
	return markup.Tag("div", strings.Join(groups, ""), markup.WithClass("btn-toolbar", attrs))
}

// PopoverOptions configures Popover.
type PopoverOptions struct {
	// Label is the button content.
	Label     string
	Title     string
	Content   string
	Placement string
	Classes   []string
	Attrs     markup.Attributes
}

// Popover renders a focus-triggered popover button. Placement defaults to top.
func Popover(opts PopoverOptions) string {
	out := opts.Attrs.Clone()
	if opts.Title != "" {
		out["title"] = opts.Title
	}
	placement := opts.Placement
	if placement == "" {
		placement = "top"
	}
	out["tabindex"] = "0"
	out["data-toggle"] = "popover"
	out["data-trigger"] = "focus"
	out["data-content"] = opts.Content
	out["data-placement"] = placement
	return Button(opts.Label, opts.Classes, out)
}

func withToken(tokens []string, token string) []string {
	out := make([]string, 0, len(tokens)+1)
	out = append(out, tokens...)
	return append(out, token)
}
