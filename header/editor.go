package header

import "braces.dev/errtrace"

// Editor edits headers by name on top of a [List].
//
// Every edit derives a new list from the current one, lists returned by
// [Editor.List] are never changed afterwards. Editor is not safe for concurrent use.
type Editor struct {
	reg  *Registry
	list *List
}

// NewEditor creates an editor starting with the base list.
// Raw values are parsed with reg, if nil, a [StandardRegistry] is used.
func NewEditor(reg *Registry, base *List) *Editor {
	if reg == nil {
		reg = StandardRegistry(nil)
	}
	return &Editor{reg: reg, list: base}
}

// Add appends a header.
func (e *Editor) Add(name, raw string) error {
	h, err := e.reg.Parse(name, raw)
	if err != nil {
		return errtrace.Wrap(err)
	}
	e.list = e.list.Append(h)
	return nil
}

// Set replaces all headers of the given name with a single one.
func (e *Editor) Set(name, raw string) error {
	h, err := e.reg.Parse(name, raw)
	if err != nil {
		return errtrace.Wrap(err)
	}
	e.list = e.list.Remove(h.Key()).Append(h)
	return nil
}

// Del removes all headers of the given name.
func (e *Editor) Del(name string) {
	e.list = e.list.Remove(Name(name))
}

// AddHeader appends typed headers.
func (e *Editor) AddHeader(hdrs ...Header) {
	e.list = e.list.Append(hdrs...)
}

// SetHeader replaces all headers of the same type with h.
func (e *Editor) SetHeader(h Header) {
	e.list = e.list.Remove(h.Key()).Append(h)
}

// List returns the current list.
func (e *Editor) List() *List {
	if e.list == nil {
		return Empty()
	}
	return e.list
}
