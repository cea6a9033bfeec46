package widgets

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-bs3/pkg/markup"
)

const defaultBreakpoint = "md"

// Col opens a grid column. Each column token is "{breakpoint}-{span}" (md-4,
// xs-12) and becomes col-{token}; each offset token "{breakpoint}-{n}" becomes
// col-{breakpoint}-offset-{n}. A bare offset number uses the md breakpoint.
// Close the column with CloseCol.
func Col(columns, offsets []string, attrs markup.Attributes) string {
	classes := make([]string, 0, len(columns)+len(offsets))
	for _, column := range columns {
		if column = strings.TrimSpace(column); column != "" {
			classes = append(classes, "col-"+column)
		}
	}
	for _, offset := range offsets {
		offset = strings.TrimSpace(offset)
		if offset == "" {
			continue
		}
		breakpoint, n, ok := strings.Cut(offset, "-")
		if !ok {
			breakpoint, n = defaultBreakpoint, offset
		}
		classes = append(classes, "col-"+breakpoint+"-offset-"+n)
	}
	return markup.El("div", "", markup.WithClass(strings.Join(classes, " "), attrs), false)
}

// ColMD opens a col-md-{span} column with an optional md offset. A span
// below 1 is treated as 1.
func ColMD(span, offset int, attrs markup.Attributes) string {
	if span < 1 {
		span = 1
	}
	var offsets []string
	if offset > 0 {
		offsets = []string{defaultBreakpoint + "-" + strconv.Itoa(offset)}
	}
	return Col([]string{defaultBreakpoint + "-" + strconv.Itoa(span)}, offsets, attrs)
}

// CloseCol closes a column opened by Col, emitting beforeClose first.
func CloseCol(beforeClose string) string {
	return beforeClose + "\n</div>"
}

// Row wraps pre-rendered columns in div.row.
func Row(columns []string, attrs markup.Attributes) string {
	return markup.Tag("div", strings.Join(columns, ""), markup.WithClass("row", attrs))
}

// Container opens a div.container (or container-fluid). Close it with
// CloseContainer.
func Container(fluid bool, attrs markup.Attributes) string {
	class := "container"
	if fluid {
		class += "-fluid"
	}
	return markup.El("div", "", markup.WithClass(class, attrs), false)
}

// CloseContainer closes a container opened by Container.
func CloseContainer(beforeClose string) string {
	return beforeClose + "\n</div>"
}
