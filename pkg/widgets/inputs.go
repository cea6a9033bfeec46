package widgets

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-bs3/pkg/markup"
)

// InputOptions configures Input and its typed variants. The id attribute
// defaults to Name unless Attrs sets one.
type InputOptions struct {
	Name        string
	Value       string
	Type        string
	Placeholder string
	// Size is appended as input-{size} (lg, sm).
	Size  string
	Attrs markup.Attributes
}

// Input renders an <input>. Every type except file and hidden carries the
// form-control class.
func Input(opts InputOptions) string {
	out := withNameAndID(opts.Attrs, opts.Name)
	if opts.Value != "" {
		out["value"] = opts.Value
	}
	if opts.Type != "" {
		out["type"] = opts.Type
	}
	if opts.Placeholder != "" {
		out["placeholder"] = opts.Placeholder
	}

	class := ""
	if opts.Type != "file" && opts.Type != "hidden" {
		class = "form-control"
	}
	if opts.Size != "" {
		class += " input-" + opts.Size
	}
	out["class"] = markup.MergeClasses(class, opts.Attrs)
	return markup.Void("input", out)
}

func typedInput(kind string, opts InputOptions) string {
	opts.Type = kind
	return Input(opts)
}

func InputText(opts InputOptions) string          { return typedInput("text", opts) }
func InputPassword(opts InputOptions) string      { return typedInput("password", opts) }
func InputDatetime(opts InputOptions) string      { return typedInput("datetime", opts) }
func InputDatetimeLocal(opts InputOptions) string { return typedInput("datetime-local", opts) }
func InputDate(opts InputOptions) string          { return typedInput("date", opts) }
func InputMonth(opts InputOptions) string         { return typedInput("month", opts) }
func InputTime(opts InputOptions) string          { return typedInput("time", opts) }
func InputWeek(opts InputOptions) string          { return typedInput("week", opts) }
func InputNumber(opts InputOptions) string        { return typedInput("number", opts) }
func InputEmail(opts InputOptions) string         { return typedInput("email", opts) }
func InputHidden(opts InputOptions) string        { return typedInput("hidden", opts) }
func InputURL(opts InputOptions) string           { return typedInput("url", opts) }
func InputSearch(opts InputOptions) string        { return typedInput("search", opts) }
func InputTel(opts InputOptions) string           { return typedInput("tel", opts) }
func InputColor(opts InputOptions) string         { return typedInput("color", opts) }
func InputSubmit(opts InputOptions) string        { return typedInput("submit", opts) }

// InputFile renders a file input. Bootstrap 3 does not style file inputs with
// form-control, so no class is added.
func InputFile(name string, attrs markup.Attributes) string {
	out := withNameAndID(attrs, name)
	out["type"] = "file"
	return markup.Void("input", out)
}

const defaultTextareaRows = 3

// TextareaOptions configures Textarea. Rows defaults to 3; a negative value
// omits the attribute.
type TextareaOptions struct {
	Name        string
	Value       string
	Placeholder string
	Rows        int
	Attrs       markup.Attributes
}

func Textarea(opts TextareaOptions) string {
	out := withNameAndID(opts.Attrs, opts.Name)
	if opts.Placeholder != "" {
		out["placeholder"] = opts.Placeholder
	}
	rows := opts.Rows
	if rows == 0 {
		rows = defaultTextareaRows
	}
	if rows > 0 {
		out["rows"] = strconv.Itoa(rows)
	}
	out["class"] = markup.MergeClasses("form-control", opts.Attrs)
	return markup.Tag("textarea", opts.Value, out)
}

// ChoiceOptions configures Checkbox and Radio. Attrs apply to the wrapper
// (div.checkbox or label.checkbox-inline), not to the input itself.
type ChoiceOptions struct {
	Name    string
	Value   string
	Label   string
	Checked bool
	Inline  bool
	Attrs   markup.Attributes
}

func Checkbox(opts ChoiceOptions) string {
	return choice("checkbox", opts)
}

func Radio(opts ChoiceOptions) string {
	return choice("radio", opts)
}

func choice(kind string, opts ChoiceOptions) string {
	var open, closing string
	if opts.Inline {
		open = markup.OpenTag("label", markup.WithClass(kind+"-inline", opts.Attrs))
		closing = "</label>"
	} else {
		open = markup.OpenTag("div", markup.WithClass(kind, opts.Attrs)) + "<label>"
		closing = "</label></div>"
	}

	input := markup.Attributes{"type": kind}
	if opts.Name != "" {
		input["name"] = opts.Name
	}
	if opts.Value != "" {
		input["value"] = opts.Value
	}
	if opts.Checked {
		input["checked"] = "checked"
	}
	return open + markup.Void("input", input) + " " + opts.Label + closing
}

// SelectOption is one <option> of a Select, rendered in slice order.
type SelectOption struct {
	Value string
	Label string
}

// SelectOptions configures Select.
type SelectOptions struct {
	Name     string
	Options  []SelectOption
	Selected []string
	Attrs    markup.Attributes
}

func Select(opts SelectOptions) string {
	out := withNameAndID(opts.Attrs, opts.Name)
	out["class"] = markup.MergeClasses("form-control", opts.Attrs)

	selected := make(map[string]struct{}, len(opts.Selected))
	for _, value := range opts.Selected {
		selected[value] = struct{}{}
	}

	var content strings.Builder
	for _, option := range opts.Options {
		attrs := markup.Attributes{"value": option.Value}
		if _, ok := selected[option.Value]; ok {
			attrs["selected"] = "selected"
		}
		content.WriteString(markup.Tag("option", option.Label, attrs))
	}
	return markup.Tag("select", content.String(), out)
}

func SelectMultiple(opts SelectOptions) string {
	opts.Attrs = opts.Attrs.Clone()
	opts.Attrs["multiple"] = "multiple"
	return Select(opts)
}

func withNameAndID(attrs markup.Attributes, name string) markup.Attributes {
	out := attrs.Clone()
	if name == "" {
		return out
	}
	out["name"] = name
	if !out.Has("id") {
		out["id"] = name
	}
	return out
}
