// Package sanitize cleans untrusted content before it is handed to widgets.
// Widgets write content and attribute values verbatim, so anything that did
// not originate from the application should pass through here first.
package sanitize

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-bs3/pkg/markup"
)

var (
	contentPolicyOnce sync.Once
	contentPolicy     *bluemonday.Policy

	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Sanitizer is the default implementation used by page rendering. The zero
// value is ready to use.
type Sanitizer struct{}

// New returns a Sanitizer backed by the shared policies.
func New() *Sanitizer {
	return &Sanitizer{}
}

// HTML keeps user generated markup while stripping scripts, event handlers
// and unsafe URLs. Bootstrap hooks (class, id, role, aria-*, data-*) survive.
func (*Sanitizer) HTML(raw string) string {
	return HTML(raw)
}

// Text strips every tag, leaving escaped text.
func (*Sanitizer) Text(raw string) string {
	return Text(raw)
}

// Attributes escapes attribute values and drops event handlers.
func (*Sanitizer) Attributes(attrs markup.Attributes) markup.Attributes {
	return Attributes(attrs)
}

// URL neutralizes script URLs.
func (*Sanitizer) URL(raw string) string {
	return URL(raw)
}

func HTML(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return contentSanitizer().Sanitize(raw)
}

func Text(raw string) string {
	if raw == "" {
		return ""
	}
	return textSanitizer().Sanitize(raw)
}

var urlAttributes = map[string]struct{}{
	"href":   {},
	"src":    {},
	"action": {},
}

var attributeName = regexp.MustCompile(`^[A-Za-z_:][-A-Za-z0-9_:.]*$`)

// Attributes returns a sanitized copy of attrs. Values are HTML escaped,
// on* handlers and malformed names are removed and javascript: URLs are
// replaced with "#". Integer keys are checked against the name they promote.
func Attributes(attrs markup.Attributes) markup.Attributes {
	if attrs == nil {
		return nil
	}
	out := make(markup.Attributes, len(attrs))
	for key, value := range attrs {
		name := key
		if _, err := strconv.Atoi(key); err == nil {
			name = value
		}
		if !safeName(name) {
			continue
		}
		if _, ok := urlAttributes[strings.ToLower(name)]; ok {
			value = URL(value)
		}
		out[key] = html.EscapeString(value)
	}
	return out
}

// URL returns "#" for javascript: and vbscript: URLs and raw otherwise.
func URL(raw string) string {
	if unsafeURL(raw) {
		return "#"
	}
	return raw
}

func safeName(name string) bool {
	if !attributeName.MatchString(name) {
		return false
	}
	return !strings.HasPrefix(strings.ToLower(name), "on")
}

func unsafeURL(value string) bool {
	cleaned := strings.ToLower(strings.Join(strings.Fields(value), ""))
	return strings.HasPrefix(cleaned, "javascript:") || strings.HasPrefix(cleaned, "vbscript:")
}

func contentSanitizer() *bluemonday.Policy {
	contentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class", "id", "role", "title").Globally()
		policy.AllowAttrs(
			"aria-hidden", "aria-label", "aria-labelledby", "aria-describedby",
			"aria-expanded", "aria-controls", "aria-pressed", "aria-current",
		).Globally()
		policy.AllowDataAttributes()
		contentPolicy = policy
	})
	return contentPolicy
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
