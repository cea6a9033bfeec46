package sanitize

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bs3/pkg/markup"
)

func TestHTMLKeepsBootstrapHooks(t *testing.T) {
	got := HTML(`<script>alert(1)</script><p class="lead" data-x="1" onclick="steal()">Hi</p>`)
	want := `<p class="lead" data-x="1">Hi</p>`
	if got != want {
		t.Fatalf("sanitized html mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestHTMLDropsJavascriptLinks(t *testing.T) {
	got := HTML(`<a href="javascript:alert(1)">x</a>`)
	if strings.Contains(got, "javascript") {
		t.Fatalf("javascript URL survived: %q", got)
	}
}

func TestHTMLEmpty(t *testing.T) {
	if got := HTML("   "); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestTextStripsTags(t *testing.T) {
	if got, want := Text("<b>a & b</b>"), "a &amp; b"; got != want {
		t.Fatalf("text mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestAttributes(t *testing.T) {
	in := markup.Attributes{
		"title":   `say "hi"`,
		"onclick": "steal()",
		"href":    " JavaScript:alert(1)",
		"src":     "/img.png",
	}
	want := markup.Attributes{
		"title": "say &#34;hi&#34;",
		"href":  "#",
		"src":   "/img.png",
	}
	if diff := cmp.Diff(want, Attributes(in)); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
	if in["onclick"] != "steal()" {
		t.Fatalf("input must not be mutated")
	}
	if Attributes(nil) != nil {
		t.Fatalf("nil attributes stay nil")
	}
}

func TestAttributesDropsUnsafeNames(t *testing.T) {
	in := markup.Attributes{
		"class":               "lead",
		"data-a=\"\" onfocus": "steal()",
		"OnMouseOver":         "steal()",
		"0":                   "x onmouseover=alert(1)",
		"1":                   "onload",
		"2":                   "disabled",
		"aria-label":          "Close",
	}
	want := markup.Attributes{
		"class":      "lead",
		"2":          "disabled",
		"aria-label": "Close",
	}
	if diff := cmp.Diff(want, Attributes(in)); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
	if got := Attributes(in).String(); got != ` aria-label="Close" class="lead" disabled="disabled"` {
		t.Fatalf("serialized attributes: %q", got)
	}
}

func TestURL(t *testing.T) {
	cases := map[string]string{
		"javascript:alert(1)":    "#",
		" Java\tScript:alert(1)": "#",
		"vbscript:msgbox":        "#",
		"/posts?page=2":          "/posts?page=2",
		"https://example.com":    "https://example.com",
		"":                       "",
	}
	for in, want := range cases {
		if got := URL(in); got != want {
			t.Fatalf("URL(%q): want %q, got %q", in, want, got)
		}
	}
	if got := New().URL("javascript:x"); got != "#" {
		t.Fatalf("URL via sanitizer, got %q", got)
	}
}

func TestSanitizerDelegates(t *testing.T) {
	s := New()
	if got := s.Text("<i>x</i>"); got != "x" {
		t.Fatalf("text via sanitizer, got %q", got)
	}
	if got := s.HTML("<em>x</em>"); got != "<em>x</em>" {
		t.Fatalf("html via sanitizer, got %q", got)
	}
}
