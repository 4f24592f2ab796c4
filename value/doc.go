// Package value provides typed header values and the codecs converting them
// from and to their wire form.
//
// Every codec is a pair of methods
//
//	Parse(s string) (V, error)
//	Render(v V) string
//
// and can be bound to a header name with header.NewType. Parse failures wrap
// [ErrMalformed], so callers can test them with [errors.Is].
//
// Provided values:
//
//   - [MediaType] and [MediaTypeList] for Content-Type and Accept-like headers
//   - [Link] and [LinkList] for RFC 8288 Link headers
//   - plain strings, integers, HTTP dates, URLs and token lists
package value
