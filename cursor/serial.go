package cursor

// Serial is a cursor that yields the elements of several cursors one after another.
//
// Exhausted sources are skipped lazily and never revisited.
type Serial[E any] struct {
	srcs []Cursor[E]
	cur  int
}

// Concat returns a cursor over the elements of srcs in the given order.
// It accepts zero sources, the result is then immediately exhausted.
func Concat[E any](srcs ...Cursor[E]) *Serial[E] {
	return &Serial[E]{srcs: srcs}
}

// HasNext reports whether any of the remaining sources has an element.
func (c *Serial[E]) HasNext() bool {
	for c.cur < len(c.srcs) && !c.srcs[c.cur].HasNext() {
		c.cur++
	}
	return c.cur < len(c.srcs)
}

// Next returns the next element of the current source.
// It panics with [ErrExhausted] if all sources are exhausted.
func (c *Serial[E]) Next() E {
	if !c.HasNext() {
		panic(ErrExhausted)
	}
	return c.srcs[c.cur].Next()
}
