package redirect_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/httphdr/redirect"
)

func TestChain(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	cases := []struct {
		name     string
		policy   redirect.Policy
		maxHops  int
		hops     []string
		wantErr  error
		wantHops int
	}{
		{
			"follows",
			redirect.FollowSecure, 0,
			[]string{"https://b.test/", "https://c.test/"},
			nil, 2,
		},
		{
			"refused",
			redirect.FollowSecure, 0,
			[]string{"https://b.test/", "http://c.test/"},
			redirect.ErrRefused, 1,
		},
		{
			"loop",
			redirect.Always, 0,
			[]string{"https://b.test/", "https://a.test/"},
			redirect.ErrLoop, 1,
		},
		{
			"too many",
			redirect.Always, 2,
			[]string{"https://b.test/", "https://c.test/", "https://d.test/"},
			redirect.ErrTooManyRedirects, 2,
		},
		{
			"nil policy",
			nil, 0,
			[]string{"https://b.test/"},
			redirect.ErrRefused, 0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ch := redirect.NewChain(mustURL(t, "https://a.test/"), c.policy, c.maxHops)
			var err error
			for _, hop := range c.hops {
				if err = ch.Follow(ctx, http.StatusFound, mustURL(t, hop)); err != nil {
					break
				}
			}
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("ch.Follow(...) error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if got := ch.Hops(); got != c.wantHops {
				t.Errorf("ch.Hops() = %d, want %d", got, c.wantHops)
			}
			if got := ch.Stopped(); got != (c.wantErr != nil) {
				t.Errorf("ch.Stopped() = %v, want %v", got, c.wantErr != nil)
			}
			if got := len(ch.Visited()); got != c.wantHops+1 {
				t.Errorf("len(ch.Visited()) = %d, want %d", got, c.wantHops+1)
			}
		})
	}
}

func TestChain_Stopped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ch := redirect.NewChain(nil, redirect.SameHost, 0)

	if err := ch.Follow(ctx, http.StatusFound, mustURL(t, "https://a.test/")); err == nil {
		t.Fatalf("ch.Follow(a) error = nil, want refusal without origin")
	}
	err := ch.Follow(ctx, http.StatusFound, mustURL(t, "https://a.test/b"))
	if diff := cmp.Diff(err, error(redirect.ErrStopped), cmpopts.EquateErrors()); diff != "" {
		t.Errorf("ch.Follow(b) error = %v, want %v\ndiff (-got +want):\n%v", err, redirect.ErrStopped, diff)
	}
	if err := ch.Follow(ctx, http.StatusFound, nil); err == nil {
		t.Errorf("ch.Follow(nil) error = nil, want error")
	}
}
