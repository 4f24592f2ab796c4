package header

//go:generate go tool mockgen -destination=../internal/testutil/codecmock/codec.go -package=codecmock . Codec

import "braces.dev/errtrace"

// Codec converts header values between the wire and typed forms.
//
// Parse must not retain s, Render must be the inverse of Parse up to
// value equality. Implementations must be safe for concurrent use.
type Codec[V any] interface {
	Parse(s string) (V, error)
	Render(v V) string
}

// CodecFuncs adapts a pair of functions to the [Codec] interface.
type CodecFuncs[V any] struct {
	ParseFunc  func(s string) (V, error)
	RenderFunc func(v V) string
}

func (c CodecFuncs[V]) Parse(s string) (V, error) { return errtrace.Wrap2(c.ParseFunc(s)) }

func (c CodecFuncs[V]) Render(v V) string { return c.RenderFunc(v) }
