package value

import "github.com/ghettovoice/httphdr/internal/errorutil"

// ErrMalformed is returned by codecs when a wire value can not be parsed.
const ErrMalformed = errorutil.ErrMalformedValue

func newMalformedErr(args ...any) error {
	return errorutil.NewMalformedValueError(args...) //errtrace:skip
}
