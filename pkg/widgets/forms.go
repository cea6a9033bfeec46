package widgets

import (
	"strings"

	"github.com/goliatone/go-bs3/pkg/markup"
)

const defaultFormMethod = "post"

// Form renders the opening <form> tag only. Method defaults to post; close
// the form with CloseForm.
func Form(action, method string, attrs markup.Attributes) string {
	out := attrs.Clone()
	if action != "" {
		out["action"] = action
	}
	if method == "" {
		method = defaultFormMethod
	}
	out["method"] = method
	return markup.El("form", "", out, false)
}

func FormInline(action, method string, attrs markup.Attributes) string {
	return Form(action, method, markup.WithClass("form-inline", attrs))
}

func FormHorizontal(action, method string, attrs markup.Attributes) string {
	return Form(action, method, markup.WithClass("form-horizontal", attrs))
}

// CloseForm closes a form opened with Form, emitting beforeClose first.
func CloseForm(beforeClose string) string {
	return beforeClose + "\n</form>"
}

func FormGroup(items []string, attrs markup.Attributes) string {
	return markup.Tag("div", strings.Join(items, ""), markup.WithClass("form-group", attrs))
}

// InputGroup wraps inputs and addons. Size is lg or sm.
func InputGroup(items []string, size string, attrs markup.Attributes) string {
	class := "input-group"
	if size != "" {
		class += " input-group-" + size
	}
	return markup.Tag("div", strings.Join(items, ""), markup.WithClass(class, attrs))
}

func InputGroupAddon(content string, attrs markup.Attributes) string {
	return markup.Tag("span", content, markup.WithClass("input-group-addon", attrs))
}

func InputGroupButton(items []string, attrs markup.Attributes) string {
	return markup.Tag("div", strings.Join(items, ""), markup.WithClass("input-group-btn", attrs))
}

// Label renders a control-label, pointing at the control named by forID.
func Label(content, forID string, attrs markup.Attributes) string {
	out := attrs.Clone()
	if forID != "" {
		out["for"] = forID
	}
	out["class"] = markup.MergeClasses("control-label", attrs)
	return markup.Tag("label", content, out)
}

func HelpBlock(content string, attrs markup.Attributes) string {
	return markup.Tag("span", content, markup.WithClass("help-block", attrs))
}
