package header

import (
	"net/url"
	"time"

	"github.com/ghettovoice/httphdr/value"
)

// Well-known header types.
var (
	Accept          = NewType[value.MediaTypeList]("Accept", value.MediaTypeListCodec{})
	Allow           = NewType[value.Tokens]("Allow", value.TokensCodec{})
	Connection      = NewType[value.Tokens]("Connection", value.TokensCodec{})
	ContentLength   = NewType[int64]("Content-Length", value.IntCodec{})
	ContentLocation = NewType[*url.URL]("Content-Location", value.URLCodec{})
	ContentType     = NewType[value.MediaType]("Content-Type", value.MediaTypeCodec{})
	Date            = NewType[time.Time]("Date", value.DateCodec{})
	ETag            = NewType[string]("ETag", value.StringCodec{})
	Expires         = NewType[time.Time]("Expires", value.DateCodec{})
	Host            = NewType[string]("Host", value.StringCodec{})
	IfModifiedSince = NewType[time.Time]("If-Modified-Since", value.DateCodec{})
	LastModified    = NewType[time.Time]("Last-Modified", value.DateCodec{})
	Link            = NewType[value.LinkList]("Link", value.LinkListCodec{})
	Location        = NewType[*url.URL]("Location", value.URLCodec{})
	MaxForwards     = NewType[int64]("Max-Forwards", value.IntCodec{})
	Server          = NewType[string]("Server", value.StringCodec{})
	UserAgent       = NewType[string]("User-Agent", value.StringCodec{})
	Vary            = NewType[value.Tokens]("Vary", value.TokensCodec{})
)

// Standard returns parsers of all well-known header types.
func Standard() []Parser {
	return []Parser{
		Accept, Allow, Connection, ContentLength, ContentLocation, ContentType,
		Date, ETag, Expires, Host, IfModifiedSince, LastModified, Link,
		Location, MaxForwards, Server, UserAgent, Vary,
	}
}

// Raw returns a header type with string values for the given name.
// It is used for headers without a registered type.
func Raw(name string) (*Type[string], error) {
	return DefineType[string](name, value.StringCodec{}) //errtrace:skip
}
