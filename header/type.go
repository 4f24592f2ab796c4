package header

import (
	"fmt"
	"reflect"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/util"
)

// Type binds a header name to a value type V and a [Codec] for it.
//
// Types are created once and reused as lookup keys; two types are the same
// key if their canonical names are equal. The value type is kept as a runtime
// tag, so retrieval through [ByType] is a checked conversion.
type Type[V any] struct {
	name  Name
	codec Codec[V]
}

// DefineType creates a new header type.
// The name is canonicalized, an invalid field name or a nil codec results in
// an [ErrInvalidArgument] error.
func DefineType[V any](name string, codec Codec[V]) (*Type[V], error) {
	n := CanonicName(name)
	if !n.IsValid() {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidName, "%q", name))
	}
	if codec == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil codec for header %q", n))
	}
	return &Type[V]{name: n, codec: codec}, nil
}

// NewType is like [DefineType] but panics on error.
// It is meant for package level variables.
func NewType[V any](name string, codec Codec[V]) *Type[V] {
	return util.Must2(DefineType(name, codec))
}

// Name returns the canonical header name, a nil type has an empty name.
func (t *Type[V]) Name() Name {
	if t == nil {
		return ""
	}
	return t.name
}

// ValueType returns the runtime type of the header values.
func (t *Type[V]) ValueType() reflect.Type { return reflect.TypeFor[V]() }

// Header creates a header of this type with the given value.
func (t *Type[V]) Header(v V) *Field[V] { return &Field[V]{typ: t, val: v} }

// FromString parses the wire form of a header value and creates a header of this type.
// Codec failures are reported as [ErrMalformedValue] errors.
func (t *Type[V]) FromString(raw string) (*Field[V], error) {
	v, err := t.codec.Parse(raw)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewMalformedValueError(fmt.Errorf("header %q: %w", t.name, err)))
	}
	return t.Header(v), nil
}

// Parse is like [Type.FromString], but returns the header as the generic [Header].
// It allows using the type with [Registry].
func (t *Type[V]) Parse(raw string) (Header, error) {
	h, err := t.FromString(raw)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return h, nil
}

// Render returns the wire form of v.
func (t *Type[V]) Render(v V) string { return t.codec.Render(v) }

func (t *Type[V]) String() string { return string(t.Name()) }

// Equal reports whether val is a [Key] with the same name.
func (t *Type[V]) Equal(val any) bool {
	k, ok := val.(Key)
	return ok && SameKey(t, k)
}

// convert returns h as a header of this type.
// Headers of the same name but a foreign value type are re-parsed with the codec.
func (t *Type[V]) convert(h Header) (*Field[V], bool) {
	if h == nil || !SameKey(t, h.Key()) {
		return nil, false
	}
	if f, ok := h.(*Field[V]); ok {
		return f, true
	}
	f, err := t.FromString(h.RenderValue())
	if err != nil {
		return nil, false
	}
	return f, true
}
