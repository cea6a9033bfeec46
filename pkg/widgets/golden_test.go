package widgets_test

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-bs3/pkg/testsupport"
	"github.com/goliatone/go-bs3/pkg/widgets"
)

// Run with UPDATE_GOLDENS=1 to rewrite the files under testdata.
func TestWidgetGoldens(t *testing.T) {
	cases := []struct {
		name   string
		golden string
		render func(t *testing.T) string
	}{
		{
			name:   "modal",
			golden: "modal.golden.html",
			render: func(*testing.T) string {
				return widgets.Modal(widgets.ModalOptions{
					ID:     "confirm",
					Title:  "Delete post",
					Body:   "<p>Are you sure?</p>",
					Footer: `<button class="btn btn-danger">Delete</button>`,
					Size:   "sm",
				})
			},
		},
		{
			name:   "carousel",
			golden: "carousel.golden.html",
			render: func(*testing.T) string {
				return widgets.Carousel(widgets.CarouselOptions{
					ID:       "gallery",
					Images:   []string{"/a.jpg", "/b.jpg"},
					Captions: []widgets.Caption{{Title: "First", Text: "Hello"}},
				})
			},
		},
		{
			name:   "pagination keeps other parameters",
			golden: "pagination.golden.html",
			render: func(t *testing.T) string {
				return widgets.Pagination(testsupport.MustURL(t, "/posts?page=3&tag=go"), 10, 95, nil)
			},
		},
		{
			name:   "aligned pager on the last page",
			golden: "pager_last.golden.html",
			render: func(t *testing.T) string {
				return widgets.Pager(testsupport.MustURL(t, "/posts?page=10"), 10, 95, true, nil)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			testsupport.AssertGolden(t, filepath.Join("testdata", tc.golden), tc.render(t))
		})
	}
}
