package markup

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAttributesStringSortsKeys(t *testing.T) {
	attrs := Attributes{
		"type":       "button",
		"class":      "btn",
		"id":         "save",
		"aria-label": "Save",
	}

	want := ` aria-label="Save" class="btn" id="save" type="button"`
	if got := attrs.String(); got != want {
		t.Fatalf("attribute order mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestAttributesStringPromotesIndexKeys(t *testing.T) {
	attrs := Attributes{"0": "disabled", "name": "email", "1": "required"}

	want := ` disabled="disabled" name="email" required="required"`
	if got := attrs.String(); got != want {
		t.Fatalf("promotion mismatch\nwant: %q\n got: %q", want, got)
	}
	if _, ok := attrs["disabled"]; ok {
		t.Fatalf("String must not mutate the receiver: %#v", attrs)
	}
}

func TestAttributesFlagUsesNextIndex(t *testing.T) {
	attrs := Attributes{"0": "checked"}
	attrs.Flag("disabled").Flag("required")

	want := Attributes{"0": "checked", "1": "disabled", "2": "required"}
	if diff := cmp.Diff(want, attrs); diff != "" {
		t.Fatalf("flag mismatch (-want +got):\n%s", diff)
	}
}

func TestAttributesFlagNilReceiver(t *testing.T) {
	var attrs Attributes
	got := attrs.Flag("disabled")

	if diff := cmp.Diff(Attributes{"0": "disabled"}, got); diff != "" {
		t.Fatalf("flag on nil set mismatch (-want +got):\n%s", diff)
	}
	if want := ` disabled="disabled"`; got.String() != want {
		t.Fatalf("flag on nil set\nwant: %q\n got: %q", want, got.String())
	}
}

func TestAttributesStringEmpty(t *testing.T) {
	var attrs Attributes
	if got := attrs.String(); got != "" {
		t.Fatalf("expected empty string for nil set, got %q", got)
	}
}

func TestAttributesCloneNil(t *testing.T) {
	var attrs Attributes
	clone := attrs.Clone()
	clone["id"] = "x"
	if len(attrs) != 0 {
		t.Fatalf("clone must not alias the original")
	}
}

func TestElVoidAndClosed(t *testing.T) {
	cases := []struct {
		name    string
		tag     string
		content string
		attrs   Attributes
		close   bool
		want    string
	}{
		{name: "void input", tag: "input", attrs: Attributes{"type": "text"}, want: "<input type=\"text\">\n"},
		{name: "closed div", tag: "div", content: "x", attrs: Attributes{}, close: true, want: "<div>x</div>\n"},
		{name: "open only keeps content", tag: "div", content: "body", attrs: Attributes{"class": "row"}, want: "<div class=\"row\">body\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := El(tc.tag, tc.content, tc.attrs, tc.close)
			if got != tc.want {
				t.Fatalf("element mismatch\nwant: %q\n got: %q", tc.want, got)
			}
		})
	}
}

func TestAutoDetectsVoidElements(t *testing.T) {
	if got := Auto("img", "", Attributes{"src": "a.png"}); strings.Contains(got, "</img>") {
		t.Fatalf("img should not be closed: %q", got)
	}
	if got := Auto("span", "x", nil); got != "<span>x</span>\n" {
		t.Fatalf("span should be closed: %q", got)
	}
	if !IsVoid(" BR ") {
		t.Fatalf("expected br to be void")
	}
	if IsVoid("custom-element") {
		t.Fatalf("unknown tags are not void")
	}
}

func TestMergeClasses(t *testing.T) {
	if got := MergeClasses(" btn btn-default ", nil); got != "btn btn-default" {
		t.Fatalf("expected trimmed widget class, got %q", got)
	}
	if got := MergeClasses("btn", Attributes{"class": "pull-right"}); got != "btn pull-right" {
		t.Fatalf("expected caller class last, got %q", got)
	}
	if got := MergeClasses("", Attributes{"class": "x"}); got != " x" {
		t.Fatalf("empty widget class keeps the separator, got %q", got)
	}
}

func TestWithClassDoesNotMutateCaller(t *testing.T) {
	caller := Attributes{"class": "custom"}
	out := WithClass("badge", caller)
	if out["class"] != "badge custom" {
		t.Fatalf("unexpected merged class %q", out["class"])
	}
	if caller["class"] != "custom" {
		t.Fatalf("caller attributes mutated: %#v", caller)
	}
}

func TestPrefixedSkipsBlanks(t *testing.T) {
	got := Prefixed("img-", []string{"rounded", " ", "circle"})
	if got != "img-rounded img-circle" {
		t.Fatalf("unexpected prefixed classes %q", got)
	}
}
