package header

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"
	"strconv"
	"sync/atomic"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/cursor"
	"github.com/ghettovoice/httphdr/internal/ioutil"
	"github.com/ghettovoice/httphdr/internal/util"
)

type shape uint8

const (
	shapeEmpty shape = iota
	shapeSingle
	shapeArray
	shapeJoined
	shapeRemoved
)

// List is a persistent, insertion ordered collection of headers.
//
// A List never changes after construction. Append and Remove return new lists
// that share the unmodified operands instead of copying them, so a list can be
// part of many derived lists at once. Lists are safe for concurrent use,
// cursors obtained from them are not.
//
// A nil *List is a valid empty list.
type List struct {
	shape shape
	// single
	one Header
	// array
	hdrs []Header
	// joined: head then tail, removed: head without dropped names
	head, tail *List
	drop       []Name
	// cached size of joined and removed lists, -1 until computed
	size atomic.Int64
}

var emptyList = &List{shape: shapeEmpty}

// Empty returns the empty list.
func Empty() *List { return emptyList }

// Of returns a list of the given headers.
// The headers slice is copied. Headers must not be nil.
func Of(hdrs ...Header) *List {
	switch len(hdrs) {
	case 0:
		return emptyList
	case 1:
		return newSingle(hdrs[0])
	default:
		return newArray(slices.Clone(hdrs))
	}
}

func newSingle(h Header) *List { return &List{shape: shapeSingle, one: h} }

func newArray(hdrs []Header) *List { return &List{shape: shapeArray, hdrs: hdrs} }

func newJoined(head, tail *List) *List {
	l := &List{shape: shapeJoined, head: head, tail: tail}
	l.size.Store(-1)
	return l
}

func newRemoved(src *List, drop []Name) *List {
	l := &List{shape: shapeRemoved, head: src, drop: drop}
	l.size.Store(-1)
	return l
}

func (l *List) kind() shape {
	if l == nil {
		return shapeEmpty
	}
	return l.shape
}

// IsEmpty reports whether the list is structurally empty, i.e. it is nil or [Empty].
// Derived lists that hold no headers, for example after Remove, are not
// structurally empty, use Size to check them.
func (l *List) IsEmpty() bool { return l.kind() == shapeEmpty }

// Append returns a list with the headers of l followed by hdrs.
// Appending no headers returns l itself.
// Headers must not be nil.
func (l *List) Append(hdrs ...Header) *List {
	if len(hdrs) == 0 {
		return l
	}

	switch l.kind() {
	case shapeEmpty:
		return Of(hdrs...)
	case shapeSingle:
		if len(hdrs) == 1 {
			return newArray([]Header{l.one, hdrs[0]})
		}
	}
	return newJoined(l, Of(hdrs...))
}

// AppendList returns a list with the headers of l followed by the headers of other.
// Appending an empty list returns l, appending to an empty list returns other.
func (l *List) AppendList(other *List) *List {
	if other.IsEmpty() {
		if l == nil {
			return emptyList
		}
		return l
	}
	if l.IsEmpty() {
		return other
	}
	return newJoined(l, other)
}

// Remove returns a list without the headers selected by any of the keys.
// The relative order of the remaining headers is preserved.
// Removing no keys returns l itself.
func (l *List) Remove(keys ...Key) *List {
	if len(keys) == 0 {
		return l
	}

	switch l.kind() {
	case shapeEmpty:
		return l
	case shapeSingle:
		if slices.ContainsFunc(keys, func(k Key) bool { return SameKey(l.one.Key(), k) }) {
			return emptyList
		}
		return l
	}

	names := keyNames(keys)
	if len(names) == 0 {
		return l
	}
	return newRemoved(l, names)
}

func (l *List) dropped(n Name) bool { return slices.Contains(l.drop, n) }

// Has reports whether the list holds at least one header selected by k.
func (l *List) Has(k Key) bool {
	n := keyName(k)
	if n == "" {
		return false
	}
	return l.has(n)
}

func (l *List) has(n Name) bool {
	switch l.kind() {
	case shapeSingle:
		return l.one.Key().Name() == n
	case shapeArray:
		for _, h := range l.hdrs {
			if h.Key().Name() == n {
				return true
			}
		}
		return false
	case shapeJoined:
		return l.head.has(n) || l.tail.has(n)
	case shapeRemoved:
		return !l.dropped(n) && l.head.has(n)
	default:
		return false
	}
}

// Contains reports whether the list holds a header equal to h.
func (l *List) Contains(h Header) bool {
	if h == nil {
		return false
	}
	return l.contains(h, h.Key().Name())
}

func (l *List) contains(h Header, n Name) bool {
	switch l.kind() {
	case shapeSingle:
		return l.one.Equal(h)
	case shapeArray:
		for _, h2 := range l.hdrs {
			if h2.Equal(h) {
				return true
			}
		}
		return false
	case shapeJoined:
		return l.head.contains(h, n) || l.tail.contains(h, n)
	case shapeRemoved:
		return !l.dropped(n) && l.head.contains(h, n)
	default:
		return false
	}
}

// Size returns the number of headers in the list.
// Sizes of derived lists are computed once and cached.
func (l *List) Size() int {
	switch l.kind() {
	case shapeSingle:
		return 1
	case shapeArray:
		return len(l.hdrs)
	case shapeJoined:
		if n := l.size.Load(); n >= 0 {
			return int(n)
		}
		n := l.head.Size() + l.tail.Size()
		l.size.Store(int64(n))
		return n
	case shapeRemoved:
		if n := l.size.Load(); n >= 0 {
			return int(n)
		}
		n := cursor.Count(l.Iterator())
		l.size.Store(int64(n))
		return n
	default:
		return 0
	}
}

// Iterator returns a cursor over all headers in insertion order.
func (l *List) Iterator() cursor.Cursor[Header] {
	switch l.kind() {
	case shapeSingle:
		return cursor.One(l.one)
	case shapeArray:
		return cursor.Of(l.hdrs...)
	case shapeJoined:
		return cursor.Concat(l.head.Iterator(), l.tail.Iterator())
	case shapeRemoved:
		return cursor.Filter(l.head.Iterator(), func(h Header) bool { return !l.dropped(h.Key().Name()) })
	default:
		return cursor.Empty[Header]()
	}
}

// ByKey returns a cursor over the headers selected by k in insertion order.
func (l *List) ByKey(k Key) cursor.Cursor[Header] {
	n := keyName(k)
	if n == "" {
		return cursor.Empty[Header]()
	}

	switch l.kind() {
	case shapeEmpty:
		return cursor.Empty[Header]()
	case shapeSingle:
		if l.one.Key().Name() == n {
			return cursor.One(l.one)
		}
		return cursor.Empty[Header]()
	case shapeRemoved:
		if l.dropped(n) {
			return cursor.Empty[Header]()
		}
	}
	return cursor.Filter(l.Iterator(), func(h Header) bool { return h.Key().Name() == n })
}

// All returns a sequence over all headers in insertion order.
// Each call starts a new traversal.
func (l *List) All() iter.Seq[Header] {
	return func(yield func(Header) bool) {
		cursor.Seq(l.Iterator())(yield)
	}
}

// Slice returns the headers of the list as a new slice.
func (l *List) Slice() []Header {
	if n := l.Size(); n > 0 {
		hdrs := make([]Header, 0, n)
		for h := range l.All() {
			hdrs = append(hdrs, h)
		}
		return hdrs
	}
	return nil
}

// Render returns the header field lines, each one terminated with CRLF.
func (l *List) Render() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	_, _ = l.RenderTo(sb)
	return sb.String()
}

// RenderTo writes the header field lines to w, each one terminated with CRLF.
func (l *List) RenderTo(w io.Writer) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for h := range l.All() {
		cw.Call(h.RenderTo).WriteString("\r\n")
	}
	return errtrace.Wrap2(cw.Result())
}

func (l *List) String() string { return l.Render() }

func (l *List) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, l.Render())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(l.Render()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, l.Render())
			return
		}
		type hideMethods []Header
		fmt.Fprintf(f, fmt.FormatString(f, verb), hideMethods(l.Slice()))
		return
	}
}

func (l *List) LogValue() slog.Value {
	var attrs []slog.Attr
	for h := range l.All() {
		attrs = append(attrs, slog.String(string(h.Key().Name()), h.RenderValue()))
	}
	return slog.GroupValue(attrs...)
}
