package buffer

import "errors"

// Common errors. Accessor and view panics wrap one of these, so
// callers can classify failures with errors.Is.
var (
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnderflow        = errors.New("buffer underflow")
	ErrOverflow         = errors.New("buffer overflow")
	ErrLayoutMisaligned = errors.New("byte size is not a multiple of the layout element width")
	ErrReadOnly         = errors.New("buffer is read-only")
)
