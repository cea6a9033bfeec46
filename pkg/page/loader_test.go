package page

import (
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestLoadFileYAML(t *testing.T) {
	doc, err := LoadFile(filepath.Join("testdata", "home.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if doc.Title != "Home" || doc.Layout != "page" {
		t.Fatalf("unexpected metadata: %+v", doc)
	}
	if doc.Lang != DefaultLang {
		t.Fatalf("lang default\nwant: %q\n got: %q", DefaultLang, doc.Lang)
	}

	want := []string{"heading", "row", "col", "paragraph", "list_group", "modal", "pagination"}
	if diff := cmp.Diff(want, WidgetNames(doc.Blocks)); diff != "" {
		t.Fatalf("widget names mismatch (-want +got):\n%s", diff)
	}

	if got := doc.Blocks[0].Int("level", 0); got != 1 {
		t.Fatalf("yaml int option: want 1, got %d", got)
	}
	if !doc.Blocks[0].Bool("page_header") {
		t.Fatalf("yaml bool option lost")
	}
}

func TestLoadFileJSON(t *testing.T) {
	doc, err := LoadFile(filepath.Join("testdata", "about.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Lang != "pt" || !doc.Fluid {
		t.Fatalf("unexpected metadata: %+v", doc)
	}
	if got := doc.Blocks[0].Int("level", 0); got != 2 {
		t.Fatalf("json number option: want 2, got %d", got)
	}
	if diff := cmp.Diff([]string{"Name", "Age"}, doc.Blocks[1].Strings("head")); diff != "" {
		t.Fatalf("head mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"pages/contact": {Data: []byte(`{"title":"Contact","blocks":[{"widget":"paragraph","content":"Hi"}]}`)},
		"pages/yaml":    {Data: []byte("title: Y\nblocks:\n  - widget: badge\n    content: '3'\n")},
	}

	doc, err := LoadFS(fsys, "pages/contact")
	if err != nil {
		t.Fatalf("load json without extension: %v", err)
	}
	if doc.Title != "Contact" {
		t.Fatalf("title\nwant: %q\n got: %q", "Contact", doc.Title)
	}

	doc, err = LoadFS(fsys, "pages/yaml")
	if err != nil {
		t.Fatalf("load yaml without extension: %v", err)
	}
	if doc.Blocks[0].Content != "3" {
		t.Fatalf("content\nwant: %q\n got: %q", "3", doc.Blocks[0].Content)
	}

	if _, err := LoadFS(fsys, "missing.yaml"); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	if _, err := LoadFS(nil, "x"); err == nil {
		t.Fatalf("expected an error for a nil filesystem")
	}
}

func TestParseValidation(t *testing.T) {
	cases := []struct {
		name      string
		source    string
		body      string
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing title",
			source:    "page.yaml",
			body:      "blocks:\n  - widget: badge\n",
			wantField: "title",
			wantMsg:   "is required",
		},
		{
			name:      "no blocks",
			source:    "page.json",
			body:      `{"title":"x","blocks":[]}`,
			wantField: "blocks",
			wantMsg:   "must contain at least 1 entry",
		},
		{
			name:      "block without widget",
			source:    "page.yaml",
			body:      "title: x\nblocks:\n  - content: hi\n",
			wantField: "blocks[0].widget",
			wantMsg:   "is required",
		},
		{
			name:      "nested block without widget",
			source:    "page.yaml",
			body:      "title: x\nblocks:\n  - widget: row\n    children:\n      - widget: col\n      - content: oops\n",
			wantField: "blocks[0].children[1].widget",
			wantMsg:   "is required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.body), tc.source)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != tc.wantField {
				t.Fatalf("field\nwant: %q\n got: %q", tc.wantField, verr.Field)
			}
			if verr.Message != tc.wantMsg {
				t.Fatalf("message\nwant: %q\n got: %q", tc.wantMsg, verr.Message)
			}
		})
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	if _, err := Parse([]byte("   \n"), "empty.yaml"); err == nil {
		t.Fatalf("expected an error for an empty file")
	}
	if _, err := Parse([]byte("{not json"), "broken.json"); err == nil {
		t.Fatalf("expected a JSON syntax error")
	}
	if _, err := Parse([]byte("title: [unclosed"), "broken.yaml"); err == nil {
		t.Fatalf("expected a YAML syntax error")
	}

	var verr *ValidationError
	if _, err := Parse([]byte("{not json"), "broken.json"); errors.As(err, &verr) {
		t.Fatalf("syntax errors must not be reported as validation errors")
	}
}

func TestBlockOptionAccessors(t *testing.T) {
	block := Block{
		Options: map[string]any{
			"n":       "7",
			"f":       3.0,
			"flag":    "true",
			"classes": "primary lg",
			"list":    []any{"a", 2},
		},
		Items: []any{"plain", map[string]any{"label": "Docs", "href": "/docs", "active": true}},
	}

	if block.Int("n", 0) != 7 || block.Int("f", 0) != 3 || block.Int("missing", 9) != 9 {
		t.Fatalf("int accessor mismatch")
	}
	if !block.Bool("flag") || block.Bool("missing") {
		t.Fatalf("bool accessor mismatch")
	}
	if diff := cmp.Diff([]string{"primary", "lg"}, block.Strings("classes")); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "2"}, block.Strings("list")); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"plain", "Docs"}, block.ItemStrings()); diff != "" {
		t.Fatalf("item strings mismatch (-want +got):\n%s", diff)
	}

	fields := block.ItemFields()
	if fields[0].String("label", "") != "plain" || fields[1].String("href", "") != "/docs" || !fields[1].Bool("active") {
		t.Fatalf("item fields mismatch: %#v", fields)
	}
}
