// Package header provides an immutable, composable model of the header section
// of an HTTP-like message.
//
// # Types and headers
//
// A [Type] binds a header name to a value type and a [Codec] converting values
// from and to their wire form:
//
//	var Retry = header.NewType[int64]("Retry-After", value.IntCodec{})
//
//	h := Retry.Header(120)                  // from a typed value
//	h, err := Retry.FromString("120")       // from the wire form
//	s := h.RenderValue()                    // "120"
//
// Codec failures are reported as [ErrMalformedValue] errors and never touch any list.
// Header names are canonicalized with [CanonicName], types are compared by name.
// The package declares a set of well-known types, see [Standard].
//
// # Lists
//
// A [List] is a persistent, insertion ordered collection of headers.
// Lists never change; [List.Append], [List.AppendList] and [List.Remove]
// return new lists which share the operands instead of copying them:
//
//	base := header.Of(header.Host.Header("example.com"))
//	req := base.Append(header.Accept.Header(accept), header.UserAgent.Header("demo"))
//	anon := req.Remove(header.UserAgent)   // req still holds the User-Agent
//
// Internally a list is one of a closed set of shapes: empty, single header,
// array of headers, join of two lists, and a view of a list hiding some names.
// The shape is an optimization detail, callers observe only the order and the
// membership of headers.
//
// Headers are read with [List.Iterator], [List.All], [List.ByKey] and the
// typed [ByType], [First], [Value] and [Values] helpers. Cursors are lazy and
// single-pass; each reader must obtain its own.
//
// # Registries
//
// A [Registry] maps header names to parsers and is used to build lists from
// raw name-value pairs, e.g. by the wire package or by an [Editor].
// There is no process wide registry, each registry belongs to its creator.
package header
