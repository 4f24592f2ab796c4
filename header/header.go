package header

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strconv"

	"braces.dev/errtrace"
	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/httphdr/internal/ioutil"
	"github.com/ghettovoice/httphdr/internal/util"
)

// Header represents a single header field of any type.
//
// Headers are immutable. Two headers are equal if their keys are the same
// and their values are equal.
type Header interface {
	// Key returns the header type.
	Key() Key
	// RenderValue returns the wire form of the header value.
	RenderValue() string
	// Render returns the header field line without the line terminator, e.g. "Name: value".
	Render() string
	// RenderTo writes the header field line without the line terminator to w.
	RenderTo(w io.Writer) (int, error)
	Equal(val any) bool
}

// Field is a header with a value of type V.
type Field[V any] struct {
	typ *Type[V]
	val V
}

// Key returns the header type.
func (h *Field[V]) Key() Key { return h.typ }

// Type returns the header type.
func (h *Field[V]) Type() *Type[V] { return h.typ }

// Name returns the header name.
func (h *Field[V]) Name() Name { return h.typ.Name() }

// Value returns the header value.
func (h *Field[V]) Value() V { return h.val }

// RenderValue returns the wire form of the header value.
func (h *Field[V]) RenderValue() string {
	if h == nil {
		return ""
	}
	return h.typ.Render(h.val)
}

// Render returns the header field line, e.g. "Content-Type: text/plain".
func (h *Field[V]) Render() string {
	if h == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	_, _ = h.RenderTo(sb)
	return sb.String()
}

// RenderTo writes the header field line to w.
func (h *Field[V]) RenderTo(w io.Writer) (int, error) {
	if h == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(string(h.typ.Name()), ": ", h.RenderValue())
	return errtrace.Wrap2(cw.Result())
}

func (h *Field[V]) String() string { return h.Render() }

func (h *Field[V]) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			fmt.Fprint(f, h.Render())
			return
		}
		fmt.Fprint(f, h.RenderValue())
		return
	case 'q':
		if f.Flag('+') {
			fmt.Fprint(f, strconv.Quote(h.Render()))
			return
		}
		fmt.Fprint(f, strconv.Quote(h.RenderValue()))
		return
	default:
		if h == nil || !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, h.Render())
			return
		}
		fmt.Fprintf(f, fmt.FormatString(f, verb), struct {
			Name  Name
			Value V
		}{h.typ.Name(), h.val})
		return
	}
}

// Equal reports whether val is a header of the same type with an equal value.
// Values implementing Equal(any) bool are compared with it, the rest with [cmp.Equal].
func (h *Field[V]) Equal(val any) bool {
	other, ok := val.(*Field[V])
	if !ok {
		return false
	}
	if h == other {
		return true
	} else if h == nil || other == nil {
		return false
	}
	if !SameKey(h.typ, other.typ) {
		return false
	}
	return valuesEqual(h.val, other.val)
}

func valuesEqual[V any](v1, v2 V) bool {
	if eq, ok := any(v1).(interface{ Equal(val any) bool }); ok {
		return eq.Equal(v2)
	}
	return cmp.Equal(v1, v2, exportAll)
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

func (h *Field[V]) LogValue() slog.Value {
	if h == nil {
		return slog.Value{}
	}
	return slog.GroupValue(slog.String(string(h.typ.Name()), h.RenderValue()))
}
