package page

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-bs3/pkg/markup"
	rendertemplate "github.com/goliatone/go-bs3/pkg/render/template"
	"github.com/goliatone/go-bs3/pkg/widgets"
)

// ErrUnknownWidget is wrapped by BlockError when a block names a widget the
// registry does not know.
var ErrUnknownWidget = errors.New("unknown widget")

// BlockError locates a failure inside the document tree.
type BlockError struct {
	// Path is the block location, e.g. blocks[2].children[0].
	Path   string
	Widget string
	Err    error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("page: %s (%s): %v", e.Path, e.Widget, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}

// Sanitizer cleans untrusted block content and attributes before widgets
// see them.
type Sanitizer interface {
	HTML(raw string) string
	Attributes(attrs markup.Attributes) markup.Attributes
	// URL neutralizes values that end up in href, src or action.
	URL(raw string) string
}

// Logger receives debug traces while a page renders.
type Logger interface {
	Debug(msg string, fields map[string]any)
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRegistry replaces the default widget registry.
func WithRegistry(reg *Registry) Option {
	return func(r *Renderer) {
		if reg != nil {
			r.registry = reg
		}
	}
}

// WithTemplateRenderer enables layouts and the template widget.
func WithTemplateRenderer(tpl rendertemplate.TemplateRenderer) Option {
	return func(r *Renderer) {
		r.templates = tpl
	}
}

// WithSanitizer runs block content, string options, items and attributes
// through s before rendering.
func WithSanitizer(s Sanitizer) Option {
	return func(r *Renderer) {
		r.sanitizer = s
	}
}

func WithLogger(l Logger) Option {
	return func(r *Renderer) {
		r.logger = l
	}
}

// RenderOptions carries the request state some widgets depend on.
type RenderOptions struct {
	// RequestURL drives pagination and pager links.
	RequestURL *url.URL
	// Host decides which nav links are external.
	Host string
}

// Renderer turns documents into HTML. It holds no per-render state and can
// be shared across goroutines.
type Renderer struct {
	registry  *Registry
	templates rendertemplate.TemplateRenderer
	sanitizer Sanitizer
	logger    Logger
}

// NewRenderer builds a Renderer backed by the default registry unless
// WithRegistry is supplied.
func NewRenderer(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.registry == nil {
		r.registry = NewDefaultRegistry()
	}
	return r
}

// Registry exposes the registry the renderer resolves widgets from.
func (r *Renderer) Registry() *Registry {
	return r.registry
}

// Render renders the document. Without a layout the result is the page
// container holding the blocks; with one, the layout template receives
// title, lang, body, stylesheets and scripts.
func (r *Renderer) Render(ctx context.Context, doc Document, opts RenderOptions) ([]byte, error) {
	body, err := r.RenderBlocks(ctx, doc.Blocks, opts)
	if err != nil {
		return nil, err
	}
	body = widgets.Container(doc.Fluid, nil) + widgets.CloseContainer(body) + "\n"

	if strings.TrimSpace(doc.Layout) == "" {
		return []byte(body), nil
	}
	if r.templates == nil {
		return nil, fmt.Errorf("page: layout %q requires a template renderer", doc.Layout)
	}

	stylesheets, scripts := r.registry.Assets(WidgetNames(doc.Blocks))
	lang := doc.Lang
	if lang == "" {
		lang = DefaultLang
	}
	data := map[string]any{
		"title":       doc.Title,
		"lang":        lang,
		"body":        body,
		"stylesheets": mergeAssets([]string{BootstrapCSSURL}, stylesheets, doc.Stylesheets),
		"scripts":     mergeAssets(scripts, doc.Scripts),
	}
	out, err := r.templates.RenderTemplate(doc.Layout, data)
	if err != nil {
		return nil, fmt.Errorf("page: render layout %q: %w", doc.Layout, err)
	}
	return []byte(out), nil
}

// RenderBlocks renders blocks in order without the page container.
func (r *Renderer) RenderBlocks(ctx context.Context, blocks []Block, opts RenderOptions) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var builder strings.Builder
	for idx, block := range blocks {
		html, err := r.renderBlock(ctx, block, "blocks["+strconv.Itoa(idx)+"]", opts)
		if err != nil {
			return "", err
		}
		builder.WriteString(html)
	}
	return builder.String(), nil
}

func (r *Renderer) renderBlock(ctx context.Context, block Block, path string, opts RenderOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	descriptor, ok := r.registry.Descriptor(block.Widget)
	if !ok {
		return "", &BlockError{Path: path, Widget: block.Widget, Err: ErrUnknownWidget}
	}

	if r.sanitizer != nil {
		block = r.sanitize(block)
	}

	data := WidgetData{
		Template:   r.templates,
		RequestURL: opts.RequestURL,
		Host:       opts.Host,
		RenderChild: func(index int) (string, error) {
			if index < 0 || index >= len(block.Children) {
				return "", fmt.Errorf("page: child %d out of range", index)
			}
			childPath := path + ".children[" + strconv.Itoa(index) + "]"
			return r.renderBlock(ctx, block.Children[index], childPath, opts)
		},
	}

	html, err := descriptor.Renderer(block, data)
	if err != nil {
		var blockErr *BlockError
		if errors.As(err, &blockErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", &BlockError{Path: path, Widget: descriptor.Name, Err: err}
	}
	if r.sanitizer != nil && descriptor.Evaluates {
		html = r.sanitizer.HTML(html)
	}

	if r.logger != nil {
		r.logger.Debug("rendered block", map[string]any{
			"path":   path,
			"widget": descriptor.Name,
			"bytes":  len(html),
		})
	}
	return html, nil
}

// urlFields are option and item keys that widgets write into href, src or
// action attributes.
var urlFields = map[string]struct{}{
	"href":   {},
	"src":    {},
	"action": {},
	"image":  {},
	"link":   {},
}

// sanitize returns a cleaned copy of block. Children are cleaned when they
// are rendered.
func (r *Renderer) sanitize(block Block) Block {
	clean := block
	clean.Content = r.sanitizer.HTML(block.Content)
	if block.Attrs != nil {
		clean.Attrs = map[string]string(r.sanitizer.Attributes(markup.Attributes(block.Attrs)))
	}
	if block.Options != nil {
		clean.Options = make(map[string]any, len(block.Options))
		for key, value := range block.Options {
			clean.Options[key] = r.sanitizeField(key, value)
		}
	}
	if block.Items != nil {
		// carousel reads plain string items as image sources
		bareKey := ""
		if normalize(block.Widget) == "carousel" {
			bareKey = "src"
		}
		clean.Items = make([]any, 0, len(block.Items))
		for _, item := range block.Items {
			clean.Items = append(clean.Items, r.sanitizeField(bareKey, item))
		}
	}
	return clean
}

// sanitizeField cleans value, which was found under key. Nested slices keep
// the key of their parent.
func (r *Renderer) sanitizeField(key string, value any) any {
	switch v := value.(type) {
	case string:
		cleaned := r.sanitizer.HTML(v)
		if _, ok := urlFields[strings.ToLower(key)]; ok {
			cleaned = r.sanitizer.URL(cleaned)
		}
		return cleaned
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, r.sanitizeField(key, item))
		}
		return out
	case []string:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, r.sanitizeField(key, item).(string))
		}
		return out
	case map[string]any:
		return r.sanitizeFields(v)
	case Fields:
		return Fields(r.sanitizeFields(v))
	case map[string]string:
		out := make(map[string]string, len(v))
		for field, item := range v {
			out[field] = r.sanitizeField(field, item).(string)
		}
		return out
	default:
		return value
	}
}

func (r *Renderer) sanitizeFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for key, item := range fields {
		out[key] = r.sanitizeField(key, item)
	}
	return out
}

// WidgetNames lists the widgets used by blocks and their children in first
// use order, without duplicates.
func WidgetNames(blocks []Block) []string {
	seen := make(map[string]struct{})
	var names []string
	var walk func([]Block)
	walk = func(list []Block) {
		for _, block := range list {
			name := normalize(block.Widget)
			if _, ok := seen[name]; !ok && name != "" {
				seen[name] = struct{}{}
				names = append(names, name)
			}
			walk(block.Children)
		}
	}
	walk(blocks)
	return names
}

func mergeAssets(groups ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, group := range groups {
		out = appendUnique(out, seen, group)
	}
	return out
}
