package template

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-bs3/pkg/markup"
)

// Args is the positional argument list of a template call. Missing or
// mismatched arguments read as zero values so widgets fall back to their
// defaults instead of failing the template.
type Args []any

func (a Args) at(idx int) any {
	if idx < 0 || idx >= len(a) {
		return nil
	}
	return a[idx]
}

// String returns argument idx as text.
func (a Args) String(idx int) string {
	switch v := a.at(idx).(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Int returns argument idx as an integer; unparsable values read as 0.
func (a Args) Int(idx int) int {
	switch v := a.at(idx).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Bool returns argument idx as a boolean. Strings are parsed with
// strconv.ParseBool and numbers are true when non-zero.
func (a Args) Bool(idx int) bool {
	switch v := a.at(idx).(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && b
	case int:
		return v != 0
	case float64:
		return v != 0
	default:
		return false
	}
}

// Tokens returns argument idx as class tokens. A string is split on
// whitespace; a list yields one token per element.
func (a Args) Tokens(idx int) []string {
	switch v := a.at(idx).(type) {
	case string:
		return strings.Fields(v)
	default:
		return a.Strings(idx)
	}
}

// Strings returns argument idx as a list. A lone string becomes a one
// element list.
func (a Args) Strings(idx int) []string {
	switch v := a.at(idx).(type) {
	case nil:
		return nil
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return []string{fmt.Sprint(v)}
	}
}

// Attrs returns argument idx as an attribute set.
func (a Args) Attrs(idx int) markup.Attributes {
	return AttributesOf(a.at(idx))
}

// URL returns argument idx as a request URL. Unparsable strings read as nil,
// which paginates from page 1 with relative links.
func (a Args) URL(idx int) *url.URL {
	switch v := a.at(idx).(type) {
	case *url.URL:
		return v
	case string:
		u, err := url.Parse(v)
		if err != nil {
			return nil
		}
		return u
	default:
		return nil
	}
}

// AttributesOf converts a template value (map[string]any, map[string]string
// or markup.Attributes) into an attribute set. Anything else yields nil.
func AttributesOf(value any) markup.Attributes {
	switch v := value.(type) {
	case markup.Attributes:
		return v
	case map[string]string:
		return markup.Attributes(v)
	case map[string]any:
		out := make(markup.Attributes, len(v))
		for key, item := range v {
			if item == nil {
				continue
			}
			out[key] = fmt.Sprint(item)
		}
		return out
	default:
		return nil
	}
}
