package widgets

import (
	"html"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/goliatone/go-bs3/pkg/markup"
)

// HeadingOptions configures Heading.
type HeadingOptions struct {
	Content string
	// Level is 1-6; anything else renders an <h1>.
	Level int
	// PageHeader wraps the heading in div.page-header.
	PageHeader bool
	// CreateID derives the id attribute from Content (see Slug).
	CreateID bool
	Attrs    markup.Attributes
}

func Heading(opts HeadingOptions) string {
	out := opts.Attrs.Clone()
	if opts.CreateID {
		out["id"] = Slug(opts.Content)
	}
	level := opts.Level
	if level < 1 || level > 6 {
		level = 1
	}
	heading := markup.Tag("h"+strconv.Itoa(level), opts.Content, out)
	if opts.PageHeader {
		return `<div class="page-header">` + heading + `</div>`
	}
	return heading
}

var slugReplacer = strings.NewReplacer(
	"ß", "ss",
	"æ", "a",
	"ð", "o",
	"ø", "o",
	"þ", "b",
	" ", "-",
	".", "",
	",", "",
	";", "",
	":", "",
	"/", "",
)

// Slug lower-cases text, folds accented letters to ASCII, turns spaces into
// dashes and drops . , ; : and /. Other characters are kept.
func Slug(text string) string {
	lowered := slugReplacer.Replace(strings.ToLower(text))
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, lowered)
	if err != nil {
		return lowered
	}
	return folded
}

func P(content string, attrs markup.Attributes) string {
	return markup.Tag("p", content, attrs)
}

func Lead(content string, attrs markup.Attributes) string {
	return markup.Tag("p", content, markup.WithClass("lead", attrs))
}

func Mark(content string, attrs markup.Attributes) string   { return markup.Tag("mark", content, attrs) }
func Del(content string, attrs markup.Attributes) string    { return markup.Tag("del", content, attrs) }
func S(content string, attrs markup.Attributes) string      { return markup.Tag("s", content, attrs) }
func Ins(content string, attrs markup.Attributes) string    { return markup.Tag("ins", content, attrs) }
func U(content string, attrs markup.Attributes) string      { return markup.Tag("u", content, attrs) }
func Small(content string, attrs markup.Attributes) string  { return markup.Tag("small", content, attrs) }
func Strong(content string, attrs markup.Attributes) string { return markup.Tag("strong", content, attrs) }
func Em(content string, attrs markup.Attributes) string     { return markup.Tag("em", content, attrs) }
func Samp(content string, attrs markup.Attributes) string   { return markup.Tag("samp", content, attrs) }
func Var(content string, attrs markup.Attributes) string    { return markup.Tag("var", content, attrs) }

// Abbr renders an abbreviation; initialism adds the initialism class.
func Abbr(content, title string, initialism bool, attrs markup.Attributes) string {
	out := attrs.Clone()
	out["title"] = title
	if initialism {
		out["class"] = markup.MergeClasses("initialism", attrs)
	}
	return markup.Tag("abbr", content, out)
}

// Address joins lines with <br>.
func Address(lines []string, attrs markup.Attributes) string {
	return markup.Tag("address", strings.Join(lines, "<br>"), attrs)
}

// Blockquote renders a quote with an optional <footer> source line.
func Blockquote(content, footer string, reverse bool, attrs markup.Attributes) string {
	if footer != "" {
		footer = "<footer>" + footer + "</footer>"
	}
	out := attrs
	if reverse {
		out = markup.WithClass("blockquote-reverse", attrs)
	}
	return markup.Tag("blockquote", content+footer, out)
}

// Kbd renders keyboard input. A single key is escaped into the element; a
// combination nests one <kbd> per key joined by " + ".
func Kbd(keys []string, attrs markup.Attributes) string {
	if len(keys) == 1 {
		return markup.Tag("kbd", html.EscapeString(keys[0]), attrs)
	}
	nested := make([]string, 0, len(keys))
	for _, key := range keys {
		nested = append(nested, markup.Tag("kbd", html.EscapeString(key), nil))
	}
	return markup.Tag("kbd", strings.Join(nested, " + "), attrs)
}

// Code renders inline code; content is escaped.
func Code(content string, attrs markup.Attributes) string {
	return markup.Tag("code", html.EscapeString(content), attrs)
}

// Pre renders a code block. Language adds a language-{name} class to the
// inner <code> for client-side highlighters.
func Pre(content, language string, scrollable bool, attrs markup.Attributes) string {
	var codeAttrs markup.Attributes
	if language != "" {
		codeAttrs = markup.Attributes{"class": "language-" + language}
	}
	out := attrs
	if scrollable {
		out = markup.WithClass("pre-scrollable", attrs)
	}
	return markup.Tag("pre", Code(content, codeAttrs), out)
}
