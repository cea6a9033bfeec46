package page

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"

	rendertemplate "github.com/goliatone/go-bs3/pkg/render/template"
)

// WidgetRenderer turns one block into markup.
type WidgetRenderer func(block Block, data WidgetData) (string, error)

// WidgetData carries request state and helpers for widget renderers.
type WidgetData struct {
	// Template is nil unless the renderer was built with a template engine.
	Template   rendertemplate.TemplateRenderer
	RequestURL *url.URL
	Host       string
	// RenderChild renders one child block of the current block.
	RenderChild func(index int) (string, error)
}

// Children renders every child of block and returns them in order.
func (d WidgetData) Children(block Block) ([]string, error) {
	out := make([]string, 0, len(block.Children))
	for idx := range block.Children {
		if d.RenderChild == nil {
			return nil, fmt.Errorf("page: children are not supported here")
		}
		html, err := d.RenderChild(idx)
		if err != nil {
			return nil, err
		}
		out = append(out, html)
	}
	return out, nil
}

// Body returns the block content followed by its rendered children.
func (d WidgetData) Body(block Block) (string, error) {
	children, err := d.Children(block)
	if err != nil {
		return "", err
	}
	return block.Content + strings.Join(children, ""), nil
}

// Descriptor bundles a widget renderer with the assets pages using it need.
type Descriptor struct {
	Name        string
	Summary     string
	Renderer    WidgetRenderer
	Stylesheets []string
	Scripts     []string
	// Evaluates marks widgets that execute block content. Their output is
	// passed through Sanitizer.HTML when the renderer has a sanitizer.
	Evaluates bool
}

// Registry maps widget names to descriptors. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	widgets map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		widgets: make(map[string]Descriptor),
	}
}

// Clone returns a deep copy so callers can override entries in isolation.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for name, descriptor := range r.widgets {
		cloned.widgets[name] = cloneDescriptor(descriptor)
	}
	return cloned
}

// Register associates a descriptor with name, replacing any existing entry.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("page: widget name is required")
	}
	if descriptor.Renderer == nil {
		return fmt.Errorf("page: renderer for widget %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = name
	r.widgets[name] = cloneDescriptor(descriptor)
	return nil
}

// MustRegister is Register that panics, for building default registries.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by name. Lookups ignore case and treat
// dashes as underscores.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.widgets[normalize(name)]
	if !ok {
		return Descriptor{}, false
	}
	return cloneDescriptor(descriptor), true
}

// Names returns the registered widget names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.widgets))
	for name := range r.widgets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Assets aggregates the stylesheets and scripts of the named widgets,
// dropping duplicates and keeping first-seen order.
func (r *Registry) Assets(names []string) (stylesheets, scripts []string) {
	if len(names) == 0 {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	seenStyles := make(map[string]struct{})
	seenScripts := make(map[string]struct{})
	for _, name := range names {
		descriptor, ok := r.widgets[normalize(name)]
		if !ok {
			continue
		}
		stylesheets = appendUnique(stylesheets, seenStyles, descriptor.Stylesheets)
		scripts = appendUnique(scripts, seenScripts, descriptor.Scripts)
	}
	return stylesheets, scripts
}

func appendUnique(dst []string, seen map[string]struct{}, values []string) []string {
	for _, value := range values {
		if value == "" {
			continue
		}
		if _, exists := seen[value]; exists {
			continue
		}
		seen[value] = struct{}{}
		dst = append(dst, value)
	}
	return dst
}

func cloneDescriptor(src Descriptor) Descriptor {
	return Descriptor{
		Name:        src.Name,
		Summary:     src.Summary,
		Renderer:    src.Renderer,
		Stylesheets: slices.Clone(src.Stylesheets),
		Scripts:     slices.Clone(src.Scripts),
		Evaluates:   src.Evaluates,
	}
}

func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}
