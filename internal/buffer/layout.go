package buffer

// Layout converts a logical value to and from a run of bytes inside a
// byte buffer, letting a byte region be viewed as a different logical
// element type.
//
// Implementations must be stateless (or carry only immutable
// parameters) so a layout can be shared across buffers and goroutines,
// must keep SizeInBytes constant for their lifetime, and must touch
// only the bytes in [byteIndex, byteIndex+SizeInBytes()). Layouts
// perform no bounds checking of their own: the byte buffer they are
// handed validates the translated byte range.
type Layout[T any] interface {
	// SizeInBytes returns the number of bytes one value occupies.
	SizeInBytes() int64

	// ReadValue decodes the value stored at the given byte index.
	ReadValue(b Buffer[byte], byteIndex int64) T

	// WriteValue encodes a value at the given byte index.
	WriteValue(b Buffer[byte], value T, byteIndex int64)
}
