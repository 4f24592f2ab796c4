package cursor

// Filtering is a cursor that yields only the source elements accepted by a predicate.
//
// The next accepted element is looked up eagerly on construction and after each
// call to Next, so HasNext and Peek never touch the source.
// The predicate is evaluated at most once per source element.
type Filtering[E any] struct {
	src  Cursor[E]
	pred func(E) bool
	next E
	ok   bool
}

// Filter returns a cursor over the elements of src for which pred returns true.
func Filter[E any](src Cursor[E], pred func(E) bool) *Filtering[E] {
	c := &Filtering[E]{src: src, pred: pred}
	c.advance()
	return c
}

// HasNext reports whether there is a buffered element.
func (c *Filtering[E]) HasNext() bool { return c.ok }

// Peek returns the next element without consuming it.
// The second result is false when the cursor is exhausted.
func (c *Filtering[E]) Peek() (E, bool) { return c.next, c.ok }

// Next returns the buffered element and looks up the following one.
// It panics with [ErrExhausted] if the cursor is exhausted.
func (c *Filtering[E]) Next() E {
	if !c.ok {
		panic(ErrExhausted)
	}
	e := c.next
	c.advance()
	return e
}

func (c *Filtering[E]) advance() {
	for c.src.HasNext() {
		if e := c.src.Next(); c.pred(e) {
			c.next, c.ok = e, true
			return
		}
	}
	var zero E
	c.next, c.ok = zero, false
}
