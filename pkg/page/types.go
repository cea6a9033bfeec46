package page

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultLang is applied to documents that do not set lang.
const DefaultLang = "en"

// Document is a declarative page: metadata for the layout plus the blocks
// rendered in order inside the page container.
type Document struct {
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Layout      string   `json:"layout,omitempty" yaml:"layout,omitempty"`
	Lang        string   `json:"lang,omitempty" yaml:"lang,omitempty"`
	Fluid       bool     `json:"fluid,omitempty" yaml:"fluid,omitempty"`
	Stylesheets []string `json:"stylesheets,omitempty" yaml:"stylesheets,omitempty"`
	Scripts     []string `json:"scripts,omitempty" yaml:"scripts,omitempty"`
	Blocks      []Block  `json:"blocks" yaml:"blocks" validate:"min=1,dive"`
}

// Block is one widget invocation. Content is the primary text, Options the
// widget specific settings, Items the repeated entries (menu entries, list
// items, table rows) and Children nested blocks rendered as the content of
// container widgets.
type Block struct {
	Widget   string            `json:"widget" yaml:"widget" validate:"required"`
	Content  string            `json:"content,omitempty" yaml:"content,omitempty"`
	Options  map[string]any    `json:"options,omitempty" yaml:"options,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Items    []any             `json:"items,omitempty" yaml:"items,omitempty"`
	Children []Block           `json:"children,omitempty" yaml:"children,omitempty" validate:"dive"`
}

// String returns option key as text, or def when absent.
func (b Block) String(key, def string) string {
	value, ok := b.Options[key]
	if !ok || value == nil {
		return def
	}
	return toString(value)
}

// Int returns option key as an integer. JSON numbers decode as float64 and
// YAML numbers as int; both are accepted, as are numeric strings.
func (b Block) Int(key string, def int) int {
	value, ok := b.Options[key]
	if !ok || value == nil {
		return def
	}
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return def
		}
		return n
	default:
		return def
	}
}

// Bool returns option key as a boolean.
func (b Block) Bool(key string) bool {
	switch v := b.Options[key].(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && parsed
	default:
		return false
	}
}

// Strings returns option key as a list. A single string is split on
// whitespace so class lists can be written inline ("primary lg").
func (b Block) Strings(key string) []string {
	switch v := b.Options[key].(type) {
	case nil:
		return nil
	case string:
		return strings.Fields(v)
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, toString(item))
		}
		return out
	default:
		return []string{toString(v)}
	}
}

// ItemStrings returns every item as text. Map items contribute their
// "label" (or "text") entry.
func (b Block) ItemStrings() []string {
	out := make([]string, 0, len(b.Items))
	for _, item := range b.Items {
		if fields, ok := asMap(item); ok {
			out = append(out, Fields(fields).String("label", Fields(fields).String("text", "")))
			continue
		}
		out = append(out, toString(item))
	}
	return out
}

// ItemFields returns every item as a field map. A plain string item becomes
// {"label": item}.
func (b Block) ItemFields() []Fields {
	out := make([]Fields, 0, len(b.Items))
	for _, item := range b.Items {
		if fields, ok := asMap(item); ok {
			out = append(out, Fields(fields))
			continue
		}
		out = append(out, Fields{"label": toString(item)})
	}
	return out
}

// Fields is one structured item.
type Fields map[string]any

func (f Fields) String(key, def string) string {
	value, ok := f[key]
	if !ok || value == nil {
		return def
	}
	return toString(value)
}

func (f Fields) Bool(key string) bool {
	switch v := f[key].(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && parsed
	default:
		return false
	}
}

// Strings returns key as a list of strings; scalars become one element.
func (f Fields) Strings(key string) []string {
	switch v := f[key].(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, toString(item))
		}
		return out
	case []string:
		return v
	default:
		return []string{toString(v)}
	}
}

func asMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case Fields:
		return v, true
	default:
		return nil, false
	}
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
