package wire

import (
	"bufio"
	"errors"
	"io"
	"net/textproto"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/util"
)

// WriteHTTP1 writes the headers of l as HTTP/1.x field lines, each terminated with CRLF.
// The terminating empty line is not written. Nothing is written if any header is invalid.
func WriteHTTP1(w io.Writer, l *header.List) error {
	for h := range l.All() {
		if err := checkField(h); err != nil {
			return errtrace.Wrap(err)
		}
	}

	buf := util.GetBytesBuffer()
	defer util.FreeBytesBuffer(buf)
	if _, err := l.RenderTo(buf); err != nil {
		return errtrace.Wrap(err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return errtrace.Wrap(err)
	}
	return nil
}

// ReadHTTP1 reads HTTP/1.x field lines until an empty line or the end of input.
// Obsolete line folding is unfolded. Leading and trailing whitespace of values is trimmed.
func ReadHTTP1(r io.Reader, opts *Options) (*header.List, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	tp := textproto.NewReader(br)
	b := newBuilder(opts)

	for {
		line, err := tp.ReadContinuedLine()
		if len(line) == 0 {
			if err == nil || errors.Is(err, io.EOF) {
				break
			}
			return nil, errtrace.Wrap(err)
		}

		name, value, found := strings.Cut(line, ":")
		if !found {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidField, "malformed line %q", line))
		}
		if name != strings.TrimRight(name, " \t") {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidField, "whitespace before colon in %q", line))
		}
		b.add(name, util.TrimSP(value))
		if b.err != nil {
			break
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errtrace.Wrap(err)
		}
	}
	return errtrace.Wrap2(b.list())
}
