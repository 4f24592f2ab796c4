package header

import "github.com/ghettovoice/httphdr/cursor"

// ByType returns a cursor over the headers of type t in l, in insertion order.
//
// Headers registered under the same name with a different value type are
// converted by re-parsing their wire form with the codec of t;
// headers failing the conversion are skipped.
func ByType[V any](l *List, t *Type[V]) cursor.Cursor[*Field[V]] {
	if t == nil {
		return cursor.Empty[*Field[V]]()
	}
	return cursor.FilterMap(l.ByKey(t), t.convert)
}

// First returns the first header of type t in l.
func First[V any](l *List, t *Type[V]) (*Field[V], bool) {
	c := ByType(l, t)
	if !c.HasNext() {
		return nil, false
	}
	return c.Next(), true
}

// Value returns the value of the first header of type t in l.
func Value[V any](l *List, t *Type[V]) (V, bool) {
	h, ok := First(l, t)
	if !ok {
		var zero V
		return zero, false
	}
	return h.Value(), true
}

// Values returns the values of all headers of type t in l.
func Values[V any](l *List, t *Type[V]) []V {
	var vals []V
	for c := ByType(l, t); c.HasNext(); {
		vals = append(vals, c.Next().Value())
	}
	return vals
}
