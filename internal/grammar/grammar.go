// Package grammar implements the header value grammars as ABNF operators.
package grammar

//go:generate go tool errtrace -w .

import (
	"fmt"

	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/httphdr/internal/util"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const ErrNodeNotFound Error = "node not found"

// MustGetNode returns a pointer to the ABNF node with the given key.
func MustGetNode(n *abnf.Node, k string) *abnf.Node {
	sn, ok := n.GetNode(k)
	if !ok {
		panic(fmt.Errorf("get node %q from node %q: %w", k, n.Key, ErrNodeNotFound))
	}
	return sn
}

func matchAll(op abnf.Operator, s []byte) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op(s, 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsToken reports whether s is a token.
func IsToken[T ~string | ~[]byte](s T) bool { return matchAll(tokenRule, []byte(s)) }

// IsQuoted reports whether s is a single quoted-string.
func IsQuoted[T ~string | ~[]byte](s T) bool { return matchAll(quotedString, []byte(s)) }

// Quote returns s as a quoted-string, double quotes and backslashes are escaped.
func Quote(s string) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

// QuoteIfNeeded quotes s unless it is a token.
func QuoteIfNeeded(s string) string {
	if IsToken(s) {
		return s
	}
	return Quote(s)
}

// Unquote returns the text of a quoted-string.
// Any other input is returned as is.
func Unquote(s string) string {
	if len(s) < 2 || s[0] != '"' {
		return s
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := quotedString([]byte(s), 0, ns); err != nil {
		return s
	}
	n := ns.Best()
	if n.Len() != len(s) {
		return s
	}
	return QuotedText(n)
}

// QuotedText returns the text of a quoted-string node with quoted pairs resolved.
func QuotedText(n *abnf.Node) string {
	txt := MustGetNode(n, "quoted-text")

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for _, c := range txt.Children {
		if qp, ok := c.GetNode("quoted-pair"); ok {
			sb.Write(qp.Value[1:])
			continue
		}
		sb.Write(c.Value)
	}
	return sb.String()
}

// Text returns the value of a token or quoted-string alternative node.
func Text(n *abnf.Node) string {
	if qs, ok := n.GetNode("quoted-string"); ok {
		return QuotedText(qs)
	}
	return n.String()
}
