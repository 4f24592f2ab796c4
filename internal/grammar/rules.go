package grammar

import (
	"github.com/ghettovoice/abnf"
	"github.com/ghettovoice/abnf/pkg/abnf_core"
)

// Header value rules of RFC 9110 (token, quoted-string, parameters, media-type, lists)
// and RFC 8288 (link-value).

var core = abnf_core.Operators()

func char(key string, c byte) abnf.Operator { return abnf.Literal(key, []byte{c}) }

func span(key string, lo, hi byte) abnf.Operator { return abnf.Range(key, []byte{lo}, []byte{hi}) }

// OWS = *( SP / HTAB )
var ows = abnf.Repeat0Inf("OWS", core.WSP)

// tchar = "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "." /
//
//	"^" / "_" / "`" / "|" / "~" / DIGIT / ALPHA
var tchar = abnf.AltFirst(
	"tchar",
	core.ALPHA,
	core.DIGIT,
	span("%x21", 0x21, 0x21),
	span("%x23-27", 0x23, 0x27),
	span("%x2A-2B", 0x2a, 0x2b),
	span("%x2D-2E", 0x2d, 0x2e),
	span("%x5E-60", 0x5e, 0x60),
	span("%x7C", 0x7c, 0x7c),
	span("%x7E", 0x7e, 0x7e),
)

// token = 1*tchar
func token(key string) abnf.Operator { return abnf.Repeat1Inf(key, tchar) }

var obsText = span("obs-text", 0x80, 0xff)

// qdtext = HTAB / SP / %x21 / %x23-5B / %x5D-7E / obs-text
var qdtext = abnf.AltFirst(
	"qdtext",
	core.HTAB,
	core.SP,
	span("%x21", 0x21, 0x21),
	span("%x23-5B", 0x23, 0x5b),
	span("%x5D-7E", 0x5d, 0x7e),
	obsText,
)

// quoted-pair = "\" ( HTAB / SP / VCHAR / obs-text )
var quotedPair = abnf.Concat(
	"quoted-pair",
	char(`"\"`, '\\'),
	abnf.AltFirst("quoted-pair-char", core.HTAB, core.SP, core.VCHAR, obsText),
)

// quoted-string = DQUOTE *( qdtext / quoted-pair ) DQUOTE
var quotedString = abnf.Concat(
	"quoted-string",
	core.DQUOTE,
	abnf.Repeat0Inf("quoted-text", abnf.AltFirst("quoted-char", qdtext, quotedPair)),
	core.DQUOTE,
)

// parameter = parameter-name "=" parameter-value
// parameter-value = ( token / quoted-string )
var parameter = abnf.Concat(
	"parameter",
	token("parameter-name"),
	char(`"="`, '='),
	abnf.AltFirst("parameter-value", token("parameter-token"), quotedString),
)

// parameters = *( OWS ";" OWS [ parameter ] )
var parameters = abnf.Repeat0Inf("parameters", abnf.Concat(
	"parameters-item",
	ows,
	char(`";"`, ';'),
	ows,
	abnf.Optional("parameter-opt", parameter),
))

// media-type = type "/" subtype parameters
var mediaType = abnf.Concat(
	"media-type",
	token("type"),
	char(`"/"`, '/'),
	token("subtype"),
	parameters,
)

// URI-Reference is only delimited here, the target is validated by the URL parser.
var uriReference = abnf.Repeat0Inf("uri-reference", abnf.AltFirst(
	"uri-char",
	span("%x21-3B", 0x21, 0x3b),
	span("%x3D", 0x3d, 0x3d),
	span("%x3F-7E", 0x3f, 0x7e),
))

// link-param = token BWS [ "=" BWS ( token / quoted-string ) ]
var linkParam = abnf.Concat(
	"link-param",
	token("link-param-name"),
	ows,
	abnf.Optional("link-param-assign", abnf.Concat(
		"link-param-eq",
		char(`"="`, '='),
		ows,
		abnf.AltFirst("link-param-value", token("link-param-token"), quotedString),
	)),
)

// link-value = "<" URI-Reference ">" *( OWS ";" OWS link-param )
var linkValue = abnf.Concat(
	"link-value",
	char(`"<"`, '<'),
	uriReference,
	char(`">"`, '>'),
	abnf.Repeat0Inf("link-params", abnf.Concat("link-params-item", ows, char(`";"`, ';'), ows, linkParam)),
)

// list builds the recipient form of the #element rule with surrounding whitespace:
//
//	OWS [ element ] *( OWS "," OWS [ element ] ) OWS
func list(key string, elem abnf.Operator) abnf.Operator {
	return abnf.Concat(
		key,
		ows,
		abnf.Optional(key+"-first", elem),
		abnf.Repeat0Inf(key+"-rest", abnf.Concat(
			key+"-item",
			ows,
			char(`","`, ','),
			ows,
			abnf.Optional(key+"-opt", elem),
		)),
		ows,
	)
}

var (
	tokenRule     = token("token")
	mediaTypeRule = abnf.Concat("media-type-value", ows, mediaType, ows)
	mediaTypeList = list("media-type-list", mediaType)
	linkValueRule = abnf.Concat("link-value-value", ows, linkValue, ows)
	linkList      = list("link-list", linkValue)
	tokenList     = list("token-list", token("list-token"))
)
