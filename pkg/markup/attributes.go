package markup

import (
	"sort"
	"strconv"
	"strings"
)

// Attributes maps HTML attribute names to their values. Keys are rendered in
// ascending order. Integer keys are treated as boolean attributes: the value is
// promoted to the attribute name, so {"0": "disabled"} renders as
// disabled="disabled".
type Attributes map[string]string

// Clone returns a shallow copy. A nil receiver yields an empty, non-nil map so
// callers can write to the result directly.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a)+2)
	for key, value := range a {
		out[key] = value
	}
	return out
}

// Has reports whether the attribute is present.
func (a Attributes) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Flag appends a boolean attribute under the next free integer key. A nil
// receiver is replaced by a new map, so always use the returned value.
func (a Attributes) Flag(name string) Attributes {
	if a == nil {
		a = Attributes{}
	}
	idx := 0
	for {
		key := strconv.Itoa(idx)
		if _, taken := a[key]; !taken {
			a[key] = name
			return a
		}
		idx++
	}
}

// String serializes the set as ` key="value"` pairs. Values are written
// verbatim; escaping is the caller's responsibility.
func (a Attributes) String() string {
	if len(a) == 0 {
		return ""
	}

	resolved := make(map[string]string, len(a))
	promoted := make([]string, 0)
	for key, value := range a {
		if isIndexKey(key) {
			promoted = append(promoted, value)
			continue
		}
		resolved[key] = value
	}
	// promoted flags win over a named entry of the same name
	for _, name := range promoted {
		if name == "" {
			continue
		}
		resolved[name] = name
	}

	keys := make([]string, 0, len(resolved))
	for key := range resolved {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for _, key := range keys {
		builder.WriteByte(' ')
		builder.WriteString(key)
		builder.WriteString(`="`)
		builder.WriteString(resolved[key])
		builder.WriteByte('"')
	}
	return builder.String()
}

func isIndexKey(key string) bool {
	if key == "" {
		return false
	}
	_, err := strconv.Atoi(key)
	return err == nil
}
