package header

import (
	"net/textproto"

	"golang.org/x/net/http/httpguts"

	"github.com/ghettovoice/httphdr/internal/util"
)

// Name represents an HTTP header field name.
//
// Name implements [Key], so a bare name can be used to look up or remove
// headers regardless of their value type.
type Name string

var hdrNames = map[string]Name{
	"Content-Md5":      "Content-MD5",
	"Dnt":              "DNT",
	"Etag":             "ETag",
	"Te":               "TE",
	"Www-Authenticate": "WWW-Authenticate",
	"X-Xss-Protection": "X-XSS-Protection",
}

// CanonicName converts name to the canonical form.
// The canonicalization converts the first letter and any letter following a hyphen to upper case;
// the rest are converted to lowercase. For example, the canonical name for "accept-encoding" is "Accept-Encoding".
// A few well-known names keep their conventional spelling, e.g. "etag" converts to "ETag".
func CanonicName[T ~string](name T) Name {
	s := textproto.CanonicalMIMEHeaderKey(string(util.TrimSP(name)))
	if n, ok := hdrNames[s]; ok {
		return n
	}
	return Name(s)
}

// Name returns the canonical form of n.
func (n Name) Name() Name { return CanonicName(n) }

// IsValid checks whether the Name is a valid field name token.
func (n Name) IsValid() bool { return httpguts.ValidHeaderFieldName(string(n)) }

// Equal compares this Name with another case-insensitively.
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return CanonicName(n) == CanonicName(other)
}

// Lower returns the lower-case form used by HTTP/2 and HTTP/3.
func (n Name) Lower() string { return util.LCase(string(n)) }
