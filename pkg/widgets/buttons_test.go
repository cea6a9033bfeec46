package widgets

import (
	"testing"

	"github.com/goliatone/go-bs3/pkg/markup"
)

func TestButton(t *testing.T) {
	cases := []struct {
		name    string
		content string
		classes []string
		attrs   markup.Attributes
		want    string
	}{
		{
			name:    "context token",
			content: "Save",
			classes: []string{"primary"},
			want:    "<button class=\"btn btn-primary\" type=\"button\">Save</button>\n",
		},
		{
			name:    "href renders anchor",
			content: "Go",
			attrs:   markup.Attributes{"href": "/go"},
			want:    "<a class=\"btn btn-default\" href=\"/go\">Go</a>\n",
		},
		{
			name:    "size only falls back to default context",
			content: "Small",
			classes: []string{"sm"},
			want:    "<button class=\"btn btn-sm btn-default\" type=\"button\">Small</button>\n",
		},
		{
			name:  "default content and caller class",
			attrs: markup.Attributes{"class": "pull-right", "type": "reset"},
			want:  "<button class=\"btn btn-default pull-right\" type=\"reset\">Submit</button>\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertHTML(t, tc.want, Button(tc.content, tc.classes, tc.attrs))
		})
	}
}

func TestButtonDoesNotMutateCallerAttributes(t *testing.T) {
	attrs := markup.Attributes{"class": "x"}
	Button("Save", nil, attrs)
	if len(attrs) != 1 || attrs["class"] != "x" {
		t.Fatalf("caller attributes mutated: %#v", attrs)
	}
}

func TestButtonVariants(t *testing.T) {
	assertHTML(t,
		"<button class=\"btn btn-primary\" type=\"submit\">Submit</button>\n",
		ButtonSubmit("", nil, nil),
	)
	assertHTML(t,
		"<button class=\"btn btn-lg btn-danger\" type=\"button\">Delete</button>\n",
		ButtonDanger("Delete", []string{"lg"}, nil),
	)
	assertHTML(t,
		"<button class=\"btn btn-default\" data-target=\"#confirm\" data-toggle=\"modal\" type=\"button\">Open</button>\n",
		ButtonModal("Open", "confirm", nil, nil),
	)
}

func TestButtonGroup(t *testing.T) {
	buttons := []string{"A", "B"}
	assertHTML(t,
		"<div class=\"btn-group btn-group-lg\">AB</div>\n",
		ButtonGroup(buttons, []string{"lg"}, nil),
	)
	assertHTML(t,
		"<div class=\"btn-group-vertical\">AB</div>\n",
		ButtonGroup(buttons, []string{"vertical"}, nil),
	)
	assertHTML(t,
		"<div class=\"btn-toolbar\">G1G2</div>\n",
		ButtonToolbar([]string{"G1", "G2"}, nil),
	)
}

func TestPopover(t *testing.T) {
	got := Popover(PopoverOptions{Label: "Info", Title: "Heads up", Content: "Details"})
	want := "<button class=\"btn btn-default\" data-content=\"Details\" data-placement=\"top\" data-toggle=\"popover\" data-trigger=\"focus\" tabindex=\"0\" title=\"Heads up\" type=\"button\">Info</button>\n"
	assertHTML(t, want, got)
}

func TestLink(t *testing.T) {
	assertHTML(t, "<a href=\"#\">Home</a>\n", Link("Home", "", false, nil))
	assertHTML(t,
		"<a href=\"https://getbootstrap.com\" target=\"_blank\">Docs</a>\n",
		Link("Docs", "https://getbootstrap.com", true, nil),
	)
}

func TestImages(t *testing.T) {
	assertHTML(t, "<img alt=\"A\" class=\"\" src=\"a.png\">\n", Image("a.png", "A", nil, nil))
	assertHTML(t, "<img alt=\"\" class=\"img-circle\" src=\"me.jpg\">\n", ImageCircle("me.jpg", "", nil, nil))
	assertHTML(t,
		"<img alt=\"\" class=\"img-responsive img-thumbnail\" src=\"t.jpg\">\n",
		ImageThumbnail("t.jpg", "", []string{"responsive"}, nil),
	)
	assertHTML(t,
		"<div class=\"embed-responsive embed-responsive-16by9\"><iframe class=\"embed-responsive-item\" src=\"https://v\"></iframe>\n</div>\n",
		Embed("https://v", "", nil),
	)
}
