// Package wire converts header lists from and to their wire forms:
// HTTP/1.x field lines, HPACK (HTTP/2) and QPACK (HTTP/3) header blocks.
//
// Encoders write headers in list order and reject fields which are not valid
// on the wire. Decoders build lists with a [header.Registry], so well-known
// headers come back typed.
package wire

//go:generate go tool errtrace -w .

import (
	"context"
	"log/slog"

	"braces.dev/errtrace"
	"golang.org/x/net/http/httpguts"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/log"
)

// ErrInvalidField is returned when a header field can not be represented on the wire.
const ErrInvalidField errorutil.Error = "invalid header field"

// Options are options of the decoders.
type Options struct {
	// Registry parses decoded fields. If nil, a [header.StandardRegistry] is used.
	Registry *header.Registry
	// Lenient keeps values rejected by the registered parser as raw string headers
	// instead of failing.
	Lenient bool
	// Log is used to report skipped fields.
	// If nil, logging is disabled.
	Log *slog.Logger
}

func (o *Options) registry() *header.Registry {
	if o == nil || o.Registry == nil {
		return header.StandardRegistry(&header.RegistryOptions{Log: o.log()})
	}
	return o.Registry
}

func (o *Options) lenient() bool { return o != nil && o.Lenient }

func (o *Options) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Noop
	}
	return o.Log
}

func checkField(h header.Header) error {
	name := h.Key().Name()
	if !name.IsValid() {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidField, "name %q", name))
	}
	if v := h.RenderValue(); !httpguts.ValidHeaderFieldValue(v) {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidField, "%s value %q", name, v))
	}
	return nil
}

// builder accumulates decoded fields into a list.
type builder struct {
	reg     *header.Registry
	lenient bool
	log     *slog.Logger
	hdrs    []header.Header
	err     error
}

func newBuilder(opts *Options) *builder {
	return &builder{
		reg:     opts.registry(),
		lenient: opts.lenient(),
		log:     opts.log(),
	}
}

func (b *builder) add(name, value string) {
	if b.err != nil {
		return
	}
	if len(name) > 0 && name[0] == ':' {
		b.log.LogAttrs(context.Background(), slog.LevelDebug, "pseudo-header field skipped",
			slog.Any("name", log.StringValue(name)),
		)
		return
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		b.err = errorutil.NewWrapperError(ErrInvalidField, "%s value %q", name, value)
		return
	}

	var (
		h   header.Header
		err error
	)
	if b.lenient {
		h, err = b.reg.ParseLenient(name, value)
	} else {
		h, err = b.reg.Parse(name, value)
	}
	if err != nil {
		b.err = err
		return
	}
	b.hdrs = append(b.hdrs, h)
}

func (b *builder) list() (*header.List, error) {
	if b.err != nil {
		return nil, errtrace.Wrap(b.err)
	}
	return header.Of(b.hdrs...), nil
}
