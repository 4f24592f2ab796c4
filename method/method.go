// Package method describes HTTP request methods and their semantic properties.
package method

//go:generate go tool errtrace -w .

import (
	"fmt"
	"log/slog"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/grammar"
)

const (
	// ErrInvalidMethod is returned when a method verb is not a token.
	ErrInvalidMethod errorutil.Error = "invalid method"
	// ErrMethodConflict is returned when a verb is registered with different properties.
	ErrMethodConflict errorutil.Error = "method conflict"
)

// Method is an HTTP request method.
//
// A safe method is read-only, an idempotent method may be repeated with the
// same effect as a single request. Every safe method is idempotent.
// Verbs are case-sensitive.
type Method struct {
	Verb       string
	Safe       bool
	Idempotent bool
}

// Well-known methods.
var (
	Get     = Method{Verb: "GET", Safe: true, Idempotent: true}
	Head    = Method{Verb: "HEAD", Safe: true, Idempotent: true}
	Options = Method{Verb: "OPTIONS", Safe: true, Idempotent: true}
	Trace   = Method{Verb: "TRACE", Safe: true, Idempotent: true}
	Put     = Method{Verb: "PUT", Idempotent: true}
	Delete  = Method{Verb: "DELETE", Idempotent: true}
	Post    = Method{Verb: "POST"}
	Connect = Method{Verb: "CONNECT"}
	Patch   = Method{Verb: "PATCH"}
)

var known = map[string]Method{
	Get.Verb:     Get,
	Head.Verb:    Head,
	Options.Verb: Options,
	Trace.Verb:   Trace,
	Put.Verb:     Put,
	Delete.Verb:  Delete,
	Post.Verb:    Post,
	Connect.Verb: Connect,
	Patch.Verb:   Patch,
}

// New creates a method. A safe method is always idempotent.
func New(verb string, safe, idempotent bool) (Method, error) {
	if !grammar.IsToken(verb) {
		return Method{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidMethod, "%q", verb))
	}
	return Method{Verb: verb, Safe: safe, Idempotent: idempotent || safe}, nil
}

// Lookup returns the well-known method with the given verb.
func Lookup(verb string) (Method, bool) {
	m, ok := known[verb]
	return m, ok
}

// IsValid reports whether the verb is a valid token.
func (m Method) IsValid() bool { return grammar.IsToken(m.Verb) && (!m.Safe || m.Idempotent) }

// Equal reports whether val is a method with the same verb and properties.
func (m Method) Equal(val any) bool {
	switch v := val.(type) {
	case Method:
		return m == v
	case *Method:
		return v != nil && m == *v
	default:
		return false
	}
}

func (m Method) String() string { return m.Verb }

func (m Method) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, m.Verb)
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(m.Verb))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, m.Verb)
			return
		}

		type hideMethods Method
		type Method hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Method(m))
		return
	}
}

func (m Method) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("verb", m.Verb),
		slog.Bool("safe", m.Safe),
		slog.Bool("idempotent", m.Idempotent),
	)
}
