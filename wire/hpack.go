package wire

import (
	"bytes"

	"braces.dev/errtrace"
	"golang.org/x/net/http2/hpack"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/util"
)

// dynamicTableSize is the default HTTP/2 SETTINGS_HEADER_TABLE_SIZE.
const dynamicTableSize = 4096

// EncodeHPACK encodes l as an HPACK header block with a fresh dynamic table.
// Field names are lowercased.
func EncodeHPACK(l *header.List) ([]byte, error) {
	buf := util.GetBytesBuffer()
	defer util.FreeBytesBuffer(buf)

	enc := hpack.NewEncoder(buf)
	for h := range l.All() {
		if err := checkField(h); err != nil {
			return nil, errtrace.Wrap(err)
		}
		if err := enc.WriteField(hpack.HeaderField{
			Name:  h.Key().Name().Lower(),
			Value: h.RenderValue(),
		}); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return bytes.Clone(buf.Bytes()), nil
}

// DecodeHPACK decodes a complete HPACK header block into a list.
// Pseudo-header fields are skipped.
func DecodeHPACK(block []byte, opts *Options) (*header.List, error) {
	b := newBuilder(opts)
	dec := hpack.NewDecoder(dynamicTableSize, func(f hpack.HeaderField) {
		b.add(f.Name, f.Value)
	})
	if _, err := dec.Write(block); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if err := dec.Close(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(b.list())
}
