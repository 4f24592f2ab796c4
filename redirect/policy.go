// Package redirect provides policies deciding whether HTTP redirects are followed.
//
// A [Policy] is a plain function, policies are stateless and safe for concurrent use.
// A [Chain] applies a policy to a sequence of redirects and stops on loops or
// after too many hops.
package redirect

import (
	"context"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"github.com/miekg/dns"

	"github.com/ghettovoice/httphdr/internal/util"
)

// Policy reports whether a redirect with the given status from one location to another is followed.
type Policy func(status int, from, to *url.URL) bool

// Never refuses all redirects.
func Never(int, *url.URL, *url.URL) bool { return false }

// Always follows all redirects.
func Always(int, *url.URL, *url.URL) bool { return true }

// FollowSecure follows redirects only when both locations use the https scheme.
func FollowSecure(_ int, from, to *url.URL) bool {
	return from != nil && to != nil && util.EqFold(from.Scheme, "https") && util.EqFold(to.Scheme, "https")
}

// SameHost follows redirects to the same host and port.
func SameHost(_ int, from, to *url.URL) bool {
	return from != nil && to != nil && util.EqFold(from.Host, to.Host)
}

// NoDowngrade refuses redirects from https to any other scheme.
func NoDowngrade(_ int, from, to *url.URL) bool {
	if from == nil || to == nil {
		return false
	}
	return !util.EqFold(from.Scheme, "https") || util.EqFold(to.Scheme, "https")
}

// WithinDomain returns a policy following redirects to hosts equal to domain
// or below it, e.g. "api.example.com" for "example.com".
func WithinDomain(domain string) Policy {
	parent := dns.Fqdn(strings.ToLower(strings.TrimSuffix(domain, ".")))
	return func(_ int, _, to *url.URL) bool {
		if to == nil || to.Hostname() == "" {
			return false
		}
		return dns.IsSubDomain(parent, dns.Fqdn(strings.ToLower(to.Hostname())))
	}
}

// Statuses returns a policy following only redirects with the given status codes.
func Statuses(codes ...int) Policy {
	return func(status int, _, _ *url.URL) bool { return slices.Contains(codes, status) }
}

// All returns a policy following a redirect only if every policy follows it.
// With no policies it follows all redirects.
func All(ps ...Policy) Policy {
	return func(status int, from, to *url.URL) bool {
		for _, p := range ps {
			if !p(status, from, to) {
				return false
			}
		}
		return true
	}
}

// Any returns a policy following a redirect if at least one policy follows it.
// With no policies it refuses all redirects.
func Any(ps ...Policy) Policy {
	return func(status int, from, to *url.URL) bool {
		for _, p := range ps {
			if p(status, from, to) {
				return true
			}
		}
		return false
	}
}

// Logged returns a policy reporting every decision of p to logger at debug level.
func Logged(p Policy, logger *slog.Logger) Policy {
	if logger == nil {
		return p
	}
	return func(status int, from, to *url.URL) bool {
		ok := p(status, from, to)
		logger.LogAttrs(context.Background(), slog.LevelDebug, "redirect decision",
			slog.Int("status", status),
			slog.Any("from", from),
			slog.Any("to", to),
			slog.Bool("follow", ok),
		)
		return ok
	}
}
