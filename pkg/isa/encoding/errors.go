package encoding

import "errors"

var (
	ErrMalformedPattern   = errors.New("malformed bit pattern")
	ErrFieldWidthOverflow = errors.New("value does not fit in field")
	ErrInvalidField       = errors.New("invalid field layout")
)
