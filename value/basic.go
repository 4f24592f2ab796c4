package value

//go:generate go tool errtrace -w .

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/grammar"
	"github.com/ghettovoice/httphdr/internal/util"
)

// StringCodec passes header values through unchanged.
type StringCodec struct{}

func (StringCodec) Parse(s string) (string, error) { return s, nil }

func (StringCodec) Render(v string) string { return v }

// IntCodec converts non-negative decimal integers, e.g. Content-Length or Max-Forwards.
type IntCodec struct{}

func (IntCodec) Parse(s string) (int64, error) {
	s = util.TrimSP(s)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errtrace.Wrap(newMalformedErr(err))
	}
	if n < 0 || s[0] == '+' || s[0] == '-' {
		return 0, errtrace.Wrap(newMalformedErr("invalid non-negative integer %q", s))
	}
	return n, nil
}

func (IntCodec) Render(v int64) string { return strconv.FormatInt(v, 10) }

// DateCodec converts HTTP dates.
// Parse accepts the IMF-fixdate, RFC 850 and asctime formats,
// Render always produces the IMF-fixdate in UTC.
type DateCodec struct{}

func (DateCodec) Parse(s string) (time.Time, error) {
	t, err := http.ParseTime(util.TrimSP(s))
	if err != nil {
		return time.Time{}, errtrace.Wrap(newMalformedErr(err))
	}
	return t, nil
}

func (DateCodec) Render(v time.Time) string { return v.UTC().Format(http.TimeFormat) }

// URLCodec converts URI references, e.g. Location or Content-Location.
type URLCodec struct{}

func (URLCodec) Parse(s string) (*url.URL, error) {
	s = util.TrimSP(s)
	if s == "" {
		return nil, errtrace.Wrap(newMalformedErr("empty URI reference"))
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, errtrace.Wrap(newMalformedErr(err))
	}
	return u, nil
}

func (URLCodec) Render(v *url.URL) string {
	if v == nil {
		return ""
	}
	return v.String()
}

// Tokens is a comma separated list of tokens, e.g. Allow, Vary or Connection.
type Tokens []string

// Has reports whether the list contains tok, compared case-insensitively.
func (ts Tokens) Has(tok string) bool {
	for _, t := range ts {
		if util.EqFold(t, tok) {
			return true
		}
	}
	return false
}

func (ts Tokens) String() string { return strings.Join(ts, ", ") }

// Equal compares token lists case-insensitively and order-sensitively.
func (ts Tokens) Equal(val any) bool {
	var other Tokens
	switch v := val.(type) {
	case Tokens:
		other = v
	case *Tokens:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	if len(ts) != len(other) {
		return false
	}
	for i := range ts {
		if !util.EqFold(ts[i], other[i]) {
			return false
		}
	}
	return true
}

// TokensCodec converts comma separated token lists.
// Empty list elements are skipped, an empty value results in an empty list.
type TokensCodec struct{}

func (TokensCodec) Parse(s string) (Tokens, error) {
	node, err := grammar.ParseTokenList(s)
	if err != nil {
		if errors.Is(err, grammar.ErrEmptyInput) {
			return nil, nil
		}
		return nil, errtrace.Wrap(newMalformedErr(err))
	}

	var ts Tokens
	for _, n := range node.GetNodes("list-token") {
		ts = append(ts, n.String())
	}
	return ts, nil
}

func (TokensCodec) Render(v Tokens) string { return v.String() }
