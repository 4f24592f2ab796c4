package header

import "github.com/ghettovoice/httphdr/internal/errorutil"

const (
	// ErrMalformedValue is returned when a raw header value is rejected by the codec.
	ErrMalformedValue = errorutil.ErrMalformedValue
	// ErrInvalidName is returned when a string is not a valid header field name.
	ErrInvalidName errorutil.Error = "invalid header name"
	// ErrInvalidArgument is returned when a function is called with an unusable argument.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
)
