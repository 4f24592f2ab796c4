package redirect

//go:generate go tool errtrace -w .

import (
	"context"
	"net/url"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/httphdr/internal/errorutil"
)

const (
	// ErrRefused is returned when the policy refuses a redirect.
	ErrRefused errorutil.Error = "redirect refused"
	// ErrTooManyRedirects is returned when the chain exceeds its hop limit.
	ErrTooManyRedirects errorutil.Error = "too many redirects"
	// ErrLoop is returned when a redirect points to an already visited location.
	ErrLoop errorutil.Error = "redirect loop"
	// ErrStopped is returned when a stopped chain is asked to follow a redirect.
	ErrStopped errorutil.Error = "redirect chain stopped"
)

// DefaultMaxHops is the hop limit used when a chain is created with a non-positive limit.
const DefaultMaxHops = 10

type chainState int

const (
	stateFollowing chainState = iota
	stateStopped
)

func (s chainState) String() string {
	switch s {
	case stateFollowing:
		return "following"
	case stateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

type chainTrigger int

const (
	triggerFollow chainTrigger = iota
	triggerStop
)

func (t chainTrigger) String() string {
	switch t {
	case triggerFollow:
		return "follow"
	case triggerStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Chain tracks a sequence of redirects of a single request.
//
// Once a redirect is refused the chain is stopped and refuses everything after.
// Chain is not safe for concurrent use.
type Chain struct {
	policy  Policy
	maxHops int
	hops    int
	visited []*url.URL
	fsm     *stateless.StateMachine
}

// NewChain creates a chain starting at the origin location.
func NewChain(origin *url.URL, policy Policy, maxHops int) *Chain {
	if policy == nil {
		policy = Never
	}
	if maxHops <= 0 {
		maxHops = DefaultMaxHops
	}

	c := &Chain{policy: policy, maxHops: maxHops}
	if origin != nil {
		c.visited = append(c.visited, origin)
	}

	c.fsm = stateless.NewStateMachine(stateFollowing)
	c.fsm.Configure(stateFollowing).
		PermitReentry(triggerFollow).
		OnEntryFrom(triggerFollow, c.actVisit).
		Permit(triggerStop, stateStopped)
	c.fsm.Configure(stateStopped)
	return c
}

func (c *Chain) actVisit(_ context.Context, args ...any) error {
	c.visited = append(c.visited, args[0].(*url.URL))
	c.hops++
	return nil
}

// Follow reports whether the redirect with the given status to the next location is followed.
// The redirect starts at the last visited location. A refusal is returned as an error
// wrapping one of [ErrRefused], [ErrTooManyRedirects] or [ErrLoop] and stops the chain.
func (c *Chain) Follow(ctx context.Context, status int, to *url.URL) error {
	if c.Stopped() {
		return errtrace.Wrap(ErrStopped)
	}

	var from *url.URL
	if len(c.visited) > 0 {
		from = c.visited[len(c.visited)-1]
	}

	if err := c.check(status, from, to); err != nil {
		if fireErr := c.fsm.FireCtx(ctx, triggerStop); fireErr != nil {
			return errtrace.Wrap(fireErr)
		}
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(c.fsm.FireCtx(ctx, triggerFollow, to))
}

func (c *Chain) check(status int, from, to *url.URL) error {
	if to == nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrRefused, "missing location"))
	}
	for _, u := range c.visited {
		if u.String() == to.String() {
			return errtrace.Wrap(errorutil.NewWrapperError(ErrLoop, "%s", to.Redacted()))
		}
	}
	if c.Hops() >= c.maxHops {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrTooManyRedirects, "%d hops", c.Hops()))
	}
	if !c.policy(status, from, to) {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrRefused, "%d to %s", status, to.Redacted()))
	}
	return nil
}

// Hops returns the number of followed redirects.
func (c *Chain) Hops() int { return c.hops }

// Visited returns the visited locations, starting with the origin if it was given.
func (c *Chain) Visited() []*url.URL { return append([]*url.URL(nil), c.visited...) }

// Stopped reports whether the chain refused a redirect.
func (c *Chain) Stopped() bool { return c.fsm.MustState() == stateStopped }
