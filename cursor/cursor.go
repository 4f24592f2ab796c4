package cursor

import (
	"iter"

	"github.com/ghettovoice/httphdr/internal/errorutil"
)

// ErrExhausted is the panic value of Next called on an exhausted cursor.
const ErrExhausted errorutil.Error = "cursor exhausted"

// Cursor is a lazy, finite, forward-only sequence of elements.
type Cursor[E any] interface {
	// HasNext reports whether Next will return an element.
	// It has no observable side effects.
	HasNext() bool
	// Next returns the next element and advances the cursor.
	// It panics with [ErrExhausted] if there are no more elements.
	Next() E
}

type emptyCursor[E any] struct{}

func (emptyCursor[E]) HasNext() bool { return false }

func (emptyCursor[E]) Next() E { panic(ErrExhausted) }

// Empty returns an immediately exhausted cursor.
func Empty[E any]() Cursor[E] { return emptyCursor[E]{} }

type oneCursor[E any] struct {
	elem E
	done bool
}

func (c *oneCursor[E]) HasNext() bool { return !c.done }

func (c *oneCursor[E]) Next() E {
	if c.done {
		panic(ErrExhausted)
	}
	c.done = true
	return c.elem
}

// One returns a cursor that yields elem once.
func One[E any](elem E) Cursor[E] { return &oneCursor[E]{elem: elem} }

type sliceCursor[E any] struct {
	elems []E
	next  int
}

func (c *sliceCursor[E]) HasNext() bool { return c.next < len(c.elems) }

func (c *sliceCursor[E]) Next() E {
	if c.next >= len(c.elems) {
		panic(ErrExhausted)
	}
	e := c.elems[c.next]
	c.next++
	return e
}

// Of returns a cursor over the given elements.
// The slice is not copied, it must not be modified while the cursor is in use.
func Of[E any](elems ...E) Cursor[E] {
	if len(elems) == 0 {
		return Empty[E]()
	}
	return &sliceCursor[E]{elems: elems}
}

// Seq adapts the cursor to a single-use [iter.Seq].
// Stopping the range loop early leaves the cursor positioned after the last yielded element.
func Seq[E any](c Cursor[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for c.HasNext() {
			if !yield(c.Next()) {
				return
			}
		}
	}
}

// Collect drains the cursor into a slice.
func Collect[E any](c Cursor[E]) []E {
	var elems []E
	for c.HasNext() {
		elems = append(elems, c.Next())
	}
	return elems
}

// Count drains the cursor and returns the number of consumed elements.
func Count[E any](c Cursor[E]) int {
	var n int
	for c.HasNext() {
		c.Next()
		n++
	}
	return n
}

// Mapping is a cursor that converts source elements and skips those that can not be converted.
//
// Like [Filtering], it buffers the next converted element, so HasNext has no
// observable side effects and the conversion runs at most once per source element.
type Mapping[E, R any] struct {
	src  Cursor[E]
	conv func(E) (R, bool)
	next R
	ok   bool
}

// FilterMap returns a cursor over the results of conv applied to src elements,
// omitting the elements for which conv reports false.
func FilterMap[E, R any](src Cursor[E], conv func(E) (R, bool)) *Mapping[E, R] {
	c := &Mapping[E, R]{src: src, conv: conv}
	c.advance()
	return c
}

// HasNext reports whether there is a buffered element.
func (c *Mapping[E, R]) HasNext() bool { return c.ok }

// Next returns the buffered element and converts the following one.
// It panics with [ErrExhausted] if the cursor is exhausted.
func (c *Mapping[E, R]) Next() R {
	if !c.ok {
		panic(ErrExhausted)
	}
	r := c.next
	c.advance()
	return r
}

func (c *Mapping[E, R]) advance() {
	for c.src.HasNext() {
		if r, ok := c.conv(c.src.Next()); ok {
			c.next, c.ok = r, true
			return
		}
	}
	var zero R
	c.next, c.ok = zero, false
}
