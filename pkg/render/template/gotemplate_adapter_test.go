package template_test

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-bs3/pkg/render/template/gotemplate"
	"github.com/goliatone/go-bs3/pkg/testsupport"
)

var templatesFS = fstest.MapFS{
	"hello.tpl":      {Data: []byte("Hello {{ name }}!")},
	"use-global.tpl": {Data: []byte("env={{ settings.env }}")},
	"use-filter.tpl": {Data: []byte("{{ name|exclaim }}")},
	"widgets.tpl":    {Data: []byte(`{{ alert("Saved", "success") }}{{ col_md(4) }}{{ close_col("x") }}`)},
}

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	want := "Hello Ada!"
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "env=staging"; result != want {
		t.Fatalf("render template mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("exclaim", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("exclaim", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}

	result, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "ADA!"; result != want {
		t.Fatalf("render template mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_WidgetGlobalsAreNotEscaped(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("widgets", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "<div class=\"alert alert-success\">Saved</div>\n" +
		"<div class=\"col-md-4\">\n" +
		"x\n</div>"
	if result != want {
		t.Fatalf("widget output mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_DataIsStillEscaped(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.Render(`{{ btn(label, "danger") }}|{{ label }}`, map[string]any{"label": "<b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "<button class=\"btn btn-danger\" type=\"button\"><b></button>\n|&lt;b&gt;"
	if result != want {
		t.Fatalf("render string mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_MarkupFilters(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderString(`<div{{ attrs|attrs }}>{{ title|slug }}</div>`, map[string]any{
		"attrs": map[string]any{"id": "main", "class": "lead"},
		"title": "Hello World",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `<div class="lead" id="main">hello-world</div>`; result != want {
		t.Fatalf("filter output mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_WithoutWidgets(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS), gotemplate.WithoutWidgets())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, err := engine.RenderString(`{% if btn %}yes{% else %}no{% endif %}`, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "no" {
		t.Fatalf("expected widget globals to be absent, got %q", result)
	}
}

func TestGoTemplateEngine_WithTemplateFunc(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(templatesFS),
		gotemplate.WithTemplateFunc(map[string]any{
			"greet": func(name string) string { return "hi " + name },
		}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, err := engine.RenderString(`{{ greet("Ada") }}`, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "hi Ada" {
		t.Fatalf("template func mismatch\nwant: %q\n got: %q", "hi Ada", result)
	}
}

func TestGoTemplateEngine_RequiresLoader(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected an error without base dir or fs")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
