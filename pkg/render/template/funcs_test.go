package template

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bs3/pkg/markup"
)

func TestArgsConversions(t *testing.T) {
	args := Args{"Save", 3, "true", "primary lg", []any{"a", 1}, map[string]any{"id": "x", "skip": nil}}

	if got := args.String(0); got != "Save" {
		t.Fatalf("string arg\nwant: %q\n got: %q", "Save", got)
	}
	if got := args.Int(1); got != 3 {
		t.Fatalf("int arg: want 3, got %d", got)
	}
	if !args.Bool(2) {
		t.Fatalf("bool arg: want true")
	}
	if diff := cmp.Diff([]string{"primary", "lg"}, args.Tokens(3)); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "1"}, args.Strings(4)); diff != "" {
		t.Fatalf("strings mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(markup.Attributes{"id": "x"}, args.Attrs(5)); diff != "" {
		t.Fatalf("attrs mismatch (-want +got):\n%s", diff)
	}

	if args.String(99) != "" || args.Int(99) != 0 || args.Bool(99) || args.Attrs(99) != nil {
		t.Fatalf("missing arguments must read as zero values")
	}
}

func TestArgsURL(t *testing.T) {
	parsed := &url.URL{Path: "/x"}
	if got := (Args{parsed}).URL(0); got != parsed {
		t.Fatalf("expected the same *url.URL back")
	}
	if got := (Args{"/items?page=2"}).URL(0); got == nil || got.RawQuery != "page=2" {
		t.Fatalf("expected parsed URL, got %#v", got)
	}
	if got := (Args{42}).URL(0); got != nil {
		t.Fatalf("non-URL arguments read as nil, got %#v", got)
	}
}

func TestWidgetFuncsRenderCatalog(t *testing.T) {
	funcs := WidgetFuncs()

	got := funcs["btn"]("Save", "primary")
	want := "<button class=\"btn btn-primary\" type=\"button\">Save</button>\n"
	if got != want {
		t.Fatalf("btn\nwant: %q\n got: %q", want, got)
	}

	if got := funcs["col_md"](4); got != "<div class=\"col-md-4\">\n" {
		t.Fatalf("col_md\nwant: %q\n got: %q", "<div class=\"col-md-4\">\n", got)
	}

	if got := funcs["el"]("br"); got != "<br></br>\n" {
		t.Fatalf("el closes by default, got %q", got)
	}
	if got := funcs["el"]("input", "", map[string]any{"type": "text"}, false); got != "<input type=\"text\">\n" {
		t.Fatalf("el without close, got %q", got)
	}
}

func TestWidgetNamesSorted(t *testing.T) {
	names := WidgetNames()
	if len(names) != len(WidgetFuncs()) {
		t.Fatalf("expected one name per widget func")
	}
	for idx := 1; idx < len(names); idx++ {
		if names[idx-1] > names[idx] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
