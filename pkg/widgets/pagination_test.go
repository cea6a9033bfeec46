package widgets

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return u
}

func TestResolvePage(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		perPage int
		total   int
		want    PageState
	}{
		{"no page param", "/items", 10, 25, PageState{Current: 1, Total: 3}},
		{"explicit page", "/items?page=2", 10, 25, PageState{Current: 2, Total: 3}},
		{"invalid page", "/items?page=abc", 10, 25, PageState{Current: 1, Total: 3}},
		{"negative page", "/items?page=-4", 10, 25, PageState{Current: 1, Total: 3}},
		{"exact fit", "/items", 5, 10, PageState{Current: 1, Total: 2}},
		{"zero per page", "/items", 0, 3, PageState{Current: 1, Total: 3}},
		{"no items", "/items", 10, 0, PageState{Current: 1, Total: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolvePage(mustURL(t, tc.raw), tc.perPage, tc.total)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("page state mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPaginationFirstPage(t *testing.T) {
	got := Pagination(mustURL(t, "/items"), 10, 25, nil)
	want := "<nav class=\"text-center\"><ul class=\"pagination\"> " +
		"<li class=\"active\"><a>1</a></li>" +
		"<li><a href=\"/items?page=2\">2</a></li>" +
		"<li><a href=\"/items?page=3\">3</a></li> " +
		"<li><a href=\"/items?page=2\"><span aria-hidden=\"true\">&raquo;</span></a></li>" +
		"<li><a href=\"/items?page=3\">Last</a></li>" +
		"</ul></nav>\n"
	assertHTML(t, want, got)
}

func TestPaginationKeepsOtherParameters(t *testing.T) {
	got := Pagination(mustURL(t, "/items?q=go&page=2"), 10, 25, nil)
	want := "<nav class=\"text-center\"><ul class=\"pagination\">" +
		"<li><a href=\"/items?q=go\">First</a></li>" +
		"<li><a href=\"/items?q=go\"><span aria-hidden=\"true\">&laquo;</span></a></li> " +
		"<li><a href=\"/items?q=go&page=1\">1</a></li>" +
		"<li class=\"active\"><a>2</a></li>" +
		"<li><a href=\"/items?q=go&page=3\">3</a></li> " +
		"<li><a href=\"/items?q=go&page=3\"><span aria-hidden=\"true\">&raquo;</span></a></li>" +
		"<li><a href=\"/items?q=go&page=3\">Last</a></li>" +
		"</ul></nav>\n"
	assertHTML(t, want, got)
}

func TestPaginationLastPage(t *testing.T) {
	got := Pagination(mustURL(t, "/items?page=3"), 10, 25, nil)
	if strings.Contains(got, "Last") || strings.Contains(got, "&raquo;") {
		t.Fatalf("last page must not link forward: %q", got)
	}
	if !strings.Contains(got, `<li class="active"><a>3</a></li>`) {
		t.Fatalf("expected page 3 to be active: %q", got)
	}
	if !strings.Contains(got, `<a href="/items?page=1">1</a>`) {
		t.Fatalf("expected link to page 1: %q", got)
	}
}

func TestPaginationLinksLastPageAsNeighbour(t *testing.T) {
	got := Pagination(mustURL(t, "/items?page=8"), 10, 100, nil)
	for _, want := range []string{
		`<li><a href="/items?page=9">9</a></li>`,
		`<li><a href="/items?page=10">10</a></li>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected numbered link %q: %q", want, got)
		}
	}
}

func TestPaginationMovesPageParameterLast(t *testing.T) {
	got := Pagination(mustURL(t, "/items?page=2&q=go&sort=new"), 10, 30, nil)
	if !strings.Contains(got, `<a href="/items?q=go&sort=new&page=3">3</a>`) {
		t.Fatalf("page parameter should follow the other parameters: %q", got)
	}
}

func TestPaginationPreservesEncoding(t *testing.T) {
	got := Pagination(mustURL(t, "/search?q=a%20b&tag=x"), 10, 30, nil)
	if !strings.Contains(got, `href="/search?q=a%20b&tag=x&page=2"`) {
		t.Fatalf("query encoding not preserved: %q", got)
	}
}

func TestPager(t *testing.T) {
	got := Pager(mustURL(t, "/items?page=2"), 10, 30, true, nil)
	want := "<nav><ul class=\"pager\">" +
		"<li class=\"previous\"><a href=\"/items\"><span aria-hidden=\"true\">&larr;</span> Newer</a></li> " +
		"<li class=\"next\"><a href=\"/items?page=3\">Older <span aria-hidden=\"true\">&rarr;</span></a></li>" +
		"</ul></nav>\n"
	assertHTML(t, want, got)

	first := Pager(mustURL(t, "/items"), 10, 30, false, nil)
	if strings.Contains(first, "Newer") {
		t.Fatalf("first page must not link back: %q", first)
	}
	if !strings.Contains(first, `<li><a href="/items?page=2">Older`) {
		t.Fatalf("expected unaligned older link: %q", first)
	}
}
