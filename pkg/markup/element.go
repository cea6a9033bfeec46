package markup

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// El renders a single element followed by a newline. When closeTag is false
// the closing tag is omitted, which is how void elements (<input>, <img>) and
// opening-only wrappers (<form>, grid columns) are produced.
func El(tag, content string, attrs Attributes, closeTag bool) string {
	var builder strings.Builder
	builder.Grow(len(tag)*2 + len(content) + 16)

	builder.WriteByte('<')
	builder.WriteString(tag)
	builder.WriteString(attrs.String())
	builder.WriteByte('>')
	builder.WriteString(content)
	if closeTag {
		builder.WriteString("</")
		builder.WriteString(tag)
		builder.WriteByte('>')
	}
	builder.WriteByte('\n')
	return builder.String()
}

// Tag renders an element with a closing tag.
func Tag(tag, content string, attrs Attributes) string {
	return El(tag, content, attrs, true)
}

// Void renders an element without a closing tag or content.
func Void(tag string, attrs Attributes) string {
	return El(tag, "", attrs, false)
}

// Auto renders tag as a void element when HTML defines it as one.
func Auto(tag, content string, attrs Attributes) string {
	return El(tag, content, attrs, !IsVoid(tag))
}

// IsVoid reports whether tag is an HTML void element.
func IsVoid(tag string) bool {
	switch atom.Lookup([]byte(strings.ToLower(strings.TrimSpace(tag)))) {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr, atom.Img,
		atom.Input, atom.Link, atom.Meta, atom.Source, atom.Track, atom.Wbr:
		return true
	default:
		return false
	}
}

// OpenTag renders only the opening tag, without the trailing newline.
func OpenTag(tag string, attrs Attributes) string {
	return "<" + tag + attrs.String() + ">"
}
