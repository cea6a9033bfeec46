package widgets

import "github.com/goliatone/go-bs3/pkg/markup"

// Image renders an <img>. Class tokens become img-{token} (rounded, circle,
// thumbnail, responsive).
func Image(src, alt string, classes []string, attrs markup.Attributes) string {
	out := markup.WithClass(markup.Prefixed("img-", classes), attrs)
	out["src"] = src
	out["alt"] = alt
	return markup.Void("img", out)
}

func ImageRounded(src, alt string, classes []string, attrs markup.Attributes) string {
	return Image(src, alt, withToken(classes, "rounded"), attrs)
}

func ImageCircle(src, alt string, classes []string, attrs markup.Attributes) string {
	return Image(src, alt, withToken(classes, "circle"), attrs)
}

func ImageThumbnail(src, alt string, classes []string, attrs markup.Attributes) string {
	return Image(src, alt, withToken(classes, "thumbnail"), attrs)
}

// Embed renders a responsive iframe wrapper. Ratio defaults to 16by9.
func Embed(src, ratio string, attrs markup.Attributes) string {
	if ratio == "" {
		ratio = "16by9"
	}
	frame := markup.Tag("iframe", "", markup.Attributes{
		"class": "embed-responsive-item",
		"src":   src,
	})
	return markup.Tag("div", frame, markup.WithClass("embed-responsive embed-responsive-"+ratio, attrs))
}
