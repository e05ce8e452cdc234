// Package types contains common types shared across the gourl packages.
package types

import "io"

// Renderer is an interface that is used to render a type to a string or a writer.
type Renderer interface {
	// Render renders the type to a string with the given options.
	Render(opts *RenderOptions) string
	// RenderTo renders the type to a writer with the given options.
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
}

// RenderOptions is a struct that is used to pass options to rendering methods.
type RenderOptions struct {
	// EffectivePort renders the scheme-inferred port when no explicit port is set.
	EffectivePort bool `json:"effective_port,omitempty"`
}

// Suffix is the result of classifying a hostname against the public suffix list.
// Both fields are empty when the hostname is empty or matches no known suffix.
type Suffix struct {
	// Public is the public suffix of the hostname, e.g. "com" for "example.com".
	Public string
	// Registrable is the suffix under which names are registered,
	// e.g. "example.com" for "ru.example.com".
	Registrable string
}

type Equalable interface {
	Equal(val any) bool
}

type Cloneable[T any] interface {
	Clone() T
}
