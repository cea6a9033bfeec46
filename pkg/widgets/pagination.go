package widgets

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-bs3/pkg/markup"
)

// PageParam is the query parameter carrying the current page number.
const PageParam = "page"

// PageState is the page arithmetic shared by Pagination and Pager.
type PageState struct {
	Current int
	Total   int
}

// HasPrevious reports whether a previous page exists.
func (s PageState) HasPrevious() bool { return s.Current >= 2 }

// HasNext reports whether a next page exists.
func (s PageState) HasNext() bool { return s.Current < s.Total }

// ResolvePage computes the current page from the request URL and the page
// count. The current page defaults to 1 when the parameter is missing or not
// a positive integer; perPage below 1 is treated as 1.
func ResolvePage(current *url.URL, perPage, totalItems int) PageState {
	if perPage < 1 {
		perPage = 1
	}
	total := 0
	if totalItems > 0 {
		total = (totalItems + perPage - 1) / perPage
	}
	state := PageState{Current: 1, Total: total}
	for _, param := range queryParams(current) {
		if param.key != PageParam {
			continue
		}
		if n, err := strconv.Atoi(param.value); err == nil && n > 0 {
			state.Current = n
		}
	}
	return state
}

// pageLinker builds links for a page number, keeping every other query
// parameter verbatim and in order.
type pageLinker struct {
	path   string
	params []queryParam
}

func newPageLinker(current *url.URL) pageLinker {
	linker := pageLinker{}
	if current == nil {
		return linker
	}
	linker.path = current.Path
	for _, param := range queryParams(current) {
		if param.key == PageParam {
			continue
		}
		linker.params = append(linker.params, param)
	}
	return linker
}

// link returns the URL for page n. Page 1 drops the page parameter when
// omitFirst is set. The page parameter always goes last, after the other
// parameters, instead of staying where the request had it.
func (l pageLinker) link(n int, omitFirst bool) string {
	parts := make([]string, 0, len(l.params)+1)
	for _, param := range l.params {
		parts = append(parts, param.raw)
	}
	if n > 1 || !omitFirst {
		parts = append(parts, PageParam+"="+strconv.Itoa(n))
	}
	if len(parts) == 0 {
		return l.path
	}
	return l.path + "?" + strings.Join(parts, "&")
}

// Pagination renders numbered pagination for totalItems split into pages of
// perPage items, reading the current page from the request URL.
//
// First and « are omitted on page 1, » and Last on the last page. The two
// pages on either side of the current one are linked when they exist.
func Pagination(current *url.URL, perPage, totalItems int, attrs markup.Attributes) string {
	state := ResolvePage(current, perPage, totalItems)
	linker := newPageLinker(current)

	previous := ""
	if state.HasPrevious() {
		prev := min(state.Current-1, state.Total)
		previous = `<li><a href="` + linker.link(1, true) + `">First</a></li>` +
			`<li><a href="` + linker.link(prev, true) + `"><span aria-hidden="true">&laquo;</span></a></li>`
	}

	var pages strings.Builder
	for n := state.Current - 2; n < state.Current; n++ {
		if n < 1 {
			continue
		}
		pages.WriteString(pageItem(linker.link(n, false), n))
	}
	pages.WriteString(`<li class="active"><a>` + strconv.Itoa(state.Current) + `</a></li>`)
	// the last page is a valid neighbour, hence <= Total
	for n := state.Current + 1; n <= state.Current+2 && n <= state.Total; n++ {
		pages.WriteString(pageItem(linker.link(n, false), n))
	}

	next := ""
	if state.HasNext() {
		next = `<li><a href="` + linker.link(state.Current+1, false) + `"><span aria-hidden="true">&raquo;</span></a></li>` +
			`<li><a href="` + linker.link(state.Total, false) + `">Last</a></li>`
	}

	content := `<ul class="pagination">` + previous + " " + pages.String() + " " + next + `</ul>`
	return markup.Tag("nav", content, markup.WithClass("text-center", attrs))
}

// Pager renders the simple Newer/Older pager. Aligned pushes the links to the
// edges of the container.
func Pager(current *url.URL, perPage, totalItems int, aligned bool, attrs markup.Attributes) string {
	state := ResolvePage(current, perPage, totalItems)
	linker := newPageLinker(current)

	previous := ""
	if state.HasPrevious() {
		prev := min(state.Current-1, state.Total)
		previous = "<li"
		if aligned {
			previous += ` class="previous"`
		}
		previous += `><a href="` + linker.link(prev, true) + `"><span aria-hidden="true">&larr;</span> Newer</a></li>`
	}

	next := ""
	if state.HasNext() {
		next = "<li"
		if aligned {
			next += ` class="next"`
		}
		next += `><a href="` + linker.link(state.Current+1, false) + `">Older <span aria-hidden="true">&rarr;</span></a></li>`
	}

	return markup.Tag("nav", `<ul class="pager">`+previous+" "+next+`</ul>`, attrs)
}

func pageItem(href string, n int) string {
	return `<li><a href="` + href + `">` + strconv.Itoa(n) + `</a></li>`
}

type queryParam struct {
	key   string
	value string
	raw   string
}

// queryParams splits the raw query without decoding, so links reproduce the
// caller's encoding exactly.
func queryParams(current *url.URL) []queryParam {
	if current == nil {
		return nil
	}
	raw := strings.Trim(current.RawQuery, "&")
	if raw == "" {
		return nil
	}
	chunks := strings.Split(raw, "&")
	params := make([]queryParam, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk == "" {
			continue
		}
		key, value, ok := strings.Cut(chunk, "=")
		if !ok {
			continue
		}
		params = append(params, queryParam{key: key, value: value, raw: chunk})
	}
	return params
}
