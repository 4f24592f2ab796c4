package grammar

import (
	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/httphdr/internal/errorutil"
)

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

func parse(op abnf.Operator, s []byte) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op(s, 0, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("unexpected %q at position %d", s[nl:], nl))
	}
	return n, nil
}

// ParseMediaType parses a single media type with parameters.
// The result contains "type", "subtype" and "parameter" nodes.
func ParseMediaType[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	return errtrace.Wrap2(parse(mediaTypeRule, []byte(s)))
}

// ParseMediaTypeList parses a comma separated list of media types, empty elements are allowed.
// The result contains a "media-type" node per element.
func ParseMediaTypeList[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	return errtrace.Wrap2(parse(mediaTypeList, []byte(s)))
}

// ParseLinkValue parses a single link value.
// The result contains "uri-reference" and "link-param" nodes.
func ParseLinkValue[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	return errtrace.Wrap2(parse(linkValueRule, []byte(s)))
}

// ParseLinkList parses a comma separated list of link values.
// The result contains a "link-value" node per element.
func ParseLinkList[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	return errtrace.Wrap2(parse(linkList, []byte(s)))
}

// ParseTokenList parses a comma separated list of tokens.
// The result contains a "list-token" node per element.
func ParseTokenList[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	return errtrace.Wrap2(parse(tokenList, []byte(s)))
}
