// Package template defines the renderer-agnostic template contract used by
// page layouts, plus the widget catalog adapted to loosely typed template
// arguments. Engine adapters live in subpackages.
package template
