package markup

import "strings"

// MergeClasses appends the caller supplied class attribute to the widget
// classes. Calling it twice on the same set appends twice; widgets merge once.
func MergeClasses(class string, attrs Attributes) string {
	if custom, ok := attrs["class"]; ok {
		return strings.TrimSpace(class) + " " + custom
	}
	return strings.TrimSpace(class)
}

// WithClass returns a copy of attrs whose class is the merge of class and the
// caller supplied class.
func WithClass(class string, attrs Attributes) Attributes {
	out := attrs.Clone()
	out["class"] = MergeClasses(class, attrs)
	return out
}

// Classes joins the non-empty tokens with single spaces.
func Classes(tokens ...string) string {
	keep := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}

// Prefixed turns each token into prefix+token, skipping empty tokens.
func Prefixed(prefix string, tokens []string) string {
	parts := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		parts = append(parts, prefix+token)
	}
	return strings.Join(parts, " ")
}
