package value_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/httphdr/value"
)

func TestIntCodec(t *testing.T) {
	t.Parallel()

	var codec value.IntCodec

	cases := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{"0", 0, nil},
		{" 1024 ", 1024, nil},
		{"", 0, value.ErrMalformed},
		{"-1", 0, value.ErrMalformed},
		{"-0", 0, value.ErrMalformed},
		{"+1", 0, value.ErrMalformed},
		{"12a", 0, value.ErrMalformed},
	}

	for _, c := range cases {
		got, err := codec.Parse(c.in)
		if !errors.Is(err, c.wantErr) {
			t.Errorf("codec.Parse(%q) error = %v, want %v", c.in, err, c.wantErr)
			continue
		}
		if got != c.want {
			t.Errorf("codec.Parse(%q) = %d, want %d", c.in, got, c.want)
		}
	}

	if got, want := codec.Render(42), "42"; got != want {
		t.Errorf("codec.Render(42) = %q, want %q", got, want)
	}
}

func TestDateCodec(t *testing.T) {
	t.Parallel()

	var codec value.DateCodec
	want := time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC)

	for _, in := range []string{
		"Sun, 06 Nov 1994 08:49:37 GMT",
		"Sunday, 06-Nov-94 08:49:37 GMT",
		"Sun Nov  6 08:49:37 1994",
	} {
		got, err := codec.Parse(in)
		if err != nil {
			t.Errorf("codec.Parse(%q) error = %v, want nil", in, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("codec.Parse(%q) = %v, want %v", in, got, want)
		}
	}

	if got, want := codec.Render(want.In(time.FixedZone("X", 3600))), "Sun, 06 Nov 1994 08:49:37 GMT"; got != want {
		t.Errorf("codec.Render() = %q, want %q", got, want)
	}
	if _, err := codec.Parse("yesterday"); !errors.Is(err, value.ErrMalformed) {
		t.Errorf("codec.Parse(yesterday) error = %v, want %v", err, value.ErrMalformed)
	}
}

func TestURLCodec(t *testing.T) {
	t.Parallel()

	var codec value.URLCodec

	u, err := codec.Parse(" https://example.com/a?b=c ")
	if err != nil {
		t.Fatalf("codec.Parse() error = %v, want nil", err)
	}
	if got, want := codec.Render(u), "https://example.com/a?b=c"; got != want {
		t.Errorf("codec.Render(u) = %q, want %q", got, want)
	}
	if got := codec.Render(nil); got != "" {
		t.Errorf("codec.Render(nil) = %q, want empty", got)
	}
	for _, in := range []string{"", "http://[::1"} {
		if _, err := codec.Parse(in); !errors.Is(err, value.ErrMalformed) {
			t.Errorf("codec.Parse(%q) error = %v, want %v", in, err, value.ErrMalformed)
		}
	}
}

func TestTokensCodec(t *testing.T) {
	t.Parallel()

	var codec value.TokensCodec

	got, err := codec.Parse("GET, HEAD,, OPTIONS ")
	if err != nil {
		t.Fatalf("codec.Parse() error = %v, want nil", err)
	}
	if diff := cmp.Diff(got, value.Tokens{"GET", "HEAD", "OPTIONS"}); diff != "" {
		t.Errorf("codec.Parse() = unexpected result (-got +want):\n%v", diff)
	}
	if !got.Has("head") {
		t.Errorf("ts.Has(head) = false, want true")
	}
	if got, want := codec.Render(got), "GET, HEAD, OPTIONS"; got != want {
		t.Errorf("codec.Render() = %q, want %q", got, want)
	}
	if !got.Equal(value.Tokens{"get", "head", "options"}) {
		t.Errorf("ts.Equal(lower case) = false, want true")
	}
	if _, err := codec.Parse("a b, c"); !errors.Is(err, value.ErrMalformed) {
		t.Errorf("codec.Parse(%q) error = %v, want %v", "a b, c", err, value.ErrMalformed)
	}
}
