package method

import (
	"context"
	"log/slog"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/log"
	"github.com/ghettovoice/httphdr/internal/syncutil"
)

// RegistryOptions are options of [Registry].
type RegistryOptions struct {
	// Log is used to report registered methods.
	// If nil, logging is disabled.
	Log *slog.Logger
}

func (o *RegistryOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Noop
	}
	return o.Log
}

// Registry is a table of methods known to its owner.
// It starts with the well-known methods and can be extended with custom verbs.
// Registry is safe for concurrent use.
type Registry struct {
	methods *syncutil.RWMap[string, Method]
	log     *slog.Logger
}

// NewRegistry creates a registry holding the well-known methods.
func NewRegistry(opts *RegistryOptions) *Registry {
	return &Registry{
		methods: syncutil.NewRWMap(known),
		log:     opts.log(),
	}
}

// Register adds the methods.
// Registering a verb again with the same properties is a no-op,
// with different properties it fails with [ErrMethodConflict].
// Methods preceding the failed one stay registered.
func (r *Registry) Register(ms ...Method) error {
	for _, m := range ms {
		if !m.IsValid() {
			return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidMethod, "%+v", m))
		}
		old, loaded := r.methods.GetOrSet(m.Verb, m)
		if !loaded {
			r.log.LogAttrs(context.Background(), slog.LevelDebug, "method registered", slog.Any("method", m))
			continue
		}
		if old != m {
			return errtrace.Wrap(errorutil.NewWrapperError(ErrMethodConflict, "%q is already registered as %+v", m.Verb, old))
		}
	}
	return nil
}

// Lookup returns the registered method with the given verb.
func (r *Registry) Lookup(verb string) (Method, bool) {
	return r.methods.Get(verb)
}

// Resolve returns the registered method with the given verb.
// Unregistered valid verbs resolve to a method that is neither safe nor idempotent.
func (r *Registry) Resolve(verb string) (Method, error) {
	if m, ok := r.Lookup(verb); ok {
		return m, nil
	}
	return errtrace.Wrap2(New(verb, false, false))
}

// Verbs returns the sorted verbs of all registered methods.
func (r *Registry) Verbs() []string {
	return r.methods.Keys(strings.Compare)
}
