package wire

import (
	"bytes"

	"braces.dev/errtrace"
	"github.com/marten-seemann/qpack"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/util"
)

// EncodeQPACK encodes l as a QPACK field section without dynamic table references.
// Field names are lowercased.
func EncodeQPACK(l *header.List) ([]byte, error) {
	buf := util.GetBytesBuffer()
	defer util.FreeBytesBuffer(buf)

	enc := qpack.NewEncoder(buf)
	for h := range l.All() {
		if err := checkField(h); err != nil {
			return nil, errtrace.Wrap(err)
		}
		if err := enc.WriteField(qpack.HeaderField{
			Name:  h.Key().Name().Lower(),
			Value: h.RenderValue(),
		}); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return bytes.Clone(buf.Bytes()), nil
}

// DecodeQPACK decodes a complete QPACK field section into a list.
// Pseudo-header fields are skipped, an empty section results in an empty list.
func DecodeQPACK(block []byte, opts *Options) (*header.List, error) {
	if len(block) == 0 {
		return header.Empty(), nil
	}

	b := newBuilder(opts)
	dec := qpack.NewDecoder(func(f qpack.HeaderField) {
		b.add(f.Name, f.Value)
	})
	if _, err := dec.Write(block); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(b.list())
}
