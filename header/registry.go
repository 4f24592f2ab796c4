package header

import (
	"context"
	"log/slog"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/log"
	"github.com/ghettovoice/httphdr/internal/syncutil"
)

// Parser creates headers from raw values. [*Type] implements Parser.
type Parser interface {
	Key
	Parse(raw string) (Header, error)
}

// RegistryOptions are options of [Registry].
type RegistryOptions struct {
	// Log is used to report parser replacements and lenient parse fallbacks.
	// If nil, logging is disabled.
	Log *slog.Logger
}

func (o *RegistryOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Noop
	}
	return o.Log
}

// Registry maps header names to parsers.
//
// A registry is owned by its creator, there is no process wide registry.
// Registry is safe for concurrent use.
type Registry struct {
	parsers syncutil.RWMap[Name, Parser]
	log     *slog.Logger
}

// NewRegistry creates a registry holding the given parsers.
func NewRegistry(opts *RegistryOptions, parsers ...Parser) *Registry {
	r := &Registry{log: opts.log()}
	for _, p := range parsers {
		r.parsers.Swap(p.Name(), p)
	}
	return r
}

// StandardRegistry creates a registry holding the well-known header types.
func StandardRegistry(opts *RegistryOptions) *Registry {
	return NewRegistry(opts, Standard()...)
}

// Register adds the parser, replacing the one registered under the same name.
func (r *Registry) Register(p Parser) {
	if old, replaced := r.parsers.Swap(p.Name(), p); replaced && old != p {
		r.log.LogAttrs(context.Background(), slog.LevelDebug, "header parser replaced",
			slog.String("header", string(p.Name())),
		)
	}
}

// Unregister removes the parser selected by k.
func (r *Registry) Unregister(k Key) {
	r.parsers.Del(keyName(k))
}

// Lookup returns the parser selected by k.
func (r *Registry) Lookup(k Key) (Parser, bool) {
	return r.parsers.Get(keyName(k))
}

// Names returns the sorted names of all registered parsers.
func (r *Registry) Names() []Name {
	return r.parsers.Keys(func(n1, n2 Name) int { return strings.Compare(string(n1), string(n2)) })
}

// Parser returns the parser registered for name or a [Raw] type for unknown names.
func (r *Registry) Parser(name string) (Parser, error) {
	if p, ok := r.Lookup(Name(name)); ok {
		return p, nil
	}
	t, err := Raw(name)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return t, nil
}

// Parse creates a header from the name and the raw value.
func (r *Registry) Parse(name, raw string) (Header, error) {
	p, err := r.Parser(name)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(p.Parse(raw))
}

// ParseLenient is like [Registry.Parse], but keeps values rejected by the
// registered parser as [Raw] headers. Only invalid names are reported as errors.
func (r *Registry) ParseLenient(name, raw string) (Header, error) {
	h, err := r.Parse(name, raw)
	if err == nil {
		return h, nil
	}

	t, rawErr := Raw(name)
	if rawErr != nil {
		return nil, errtrace.Wrap(rawErr)
	}
	r.log.LogAttrs(context.Background(), slog.LevelDebug, "header value kept raw",
		slog.String("header", string(t.Name())),
		slog.Any("error", err),
	)
	return t.Header(raw), nil
}
