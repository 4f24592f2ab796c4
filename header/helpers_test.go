package header_test

import (
	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/httphdr/cursor"
	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/value"
)

var (
	xA   = header.NewType[string]("X-A", value.StringCodec{})
	xB   = header.NewType[string]("X-B", value.StringCodec{})
	xC   = header.NewType[string]("X-C", value.StringCodec{})
	xNum = header.NewType[int64]("X-Num", value.IntCodec{})
	// same name as xB, declared with a lower-case spelling
	xBRaw = header.NewType[string]("x-b", value.StringCodec{})
)

var hdrEqual = cmp.Comparer(func(h1, h2 header.Header) bool {
	if h1 == nil || h2 == nil {
		return h1 == h2
	}
	return h1.Equal(h2)
})

func lines(l *header.List) []string {
	var res []string
	for h := range l.All() {
		res = append(res, h.Render())
	}
	return res
}

func collect(c cursor.Cursor[header.Header]) []string {
	var res []string
	for c.HasNext() {
		res = append(res, c.Next().Render())
	}
	return res
}
