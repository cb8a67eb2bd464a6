package buffer

import (
	"fmt"
	"slices"
	"unsafe"

	"github.com/sirupsen/logrus"
)

// rawEnabled gates the raw backend at runtime. It defaults to the
// build-time capability and is a variable so tests can exercise the
// fallback selection paths.
var rawEnabled = rawSupported

// CanUseRaw reports whether newly created buffers may use the raw
// backend.
func CanUseRaw() bool {
	return rawEnabled
}

// Alloc creates a buffer of primitive elements that can store up to
// size values, selecting the best available backend: raw memory when
// the build supports it, otherwise a slice window, except for booleans
// which fall back to a bit set.
func Alloc[T Elem](size int64) (Buffer[T], error) {
	if err := checkAlloc(size); err != nil {
		return nil, err
	}
	if CanUseRaw() {
		return newRawBuffer[T](size, false), nil
	}
	var zero T
	if _, isBool := any(zero).(bool); isBool {
		logrus.Debugf("buffer: raw backend disabled, packing %d booleans into a bit set", size)
		return any(newBitsetBuffer(size, false)).(Buffer[T]), nil
	}
	logrus.Debugf("buffer: raw backend disabled, allocating %d elements as a slice window", size)
	return &sliceBuffer[T]{data: make([]T, size)}, nil
}

// AllocObjects creates an array-backed buffer of references to values
// of type T. Object buffers have no byte-level representation and are
// always array-backed.
func AllocObjects[T any](size int64) (Buffer[T], error) {
	if err := checkAlloc(size); err != nil {
		return nil, err
	}
	return &sliceBuffer[T]{data: make([]T, size)}, nil
}

// AllocWithLayout creates a buffer of size logical values stored as
// size*layout.SizeInBytes() raw bytes, decoded and encoded through the
// given layout.
func AllocWithLayout[T any](size int64, layout Layout[T]) (Buffer[T], error) {
	if err := checkAlloc(size); err != nil {
		return nil, err
	}
	if layout == nil {
		return nil, fmt.Errorf("%w: nil layout", ErrInvalidArgument)
	}
	stride := layout.SizeInBytes()
	if stride <= 0 || stride > MaxCapacity {
		return nil, fmt.Errorf("%w: layout element width %d", ErrInvalidArgument, stride)
	}
	bytes, err := Alloc[byte](size * stride)
	if err != nil {
		return nil, err
	}
	return newAdapter(bytes, layout)
}

// Adapt exposes an already-allocated byte buffer as a buffer of
// logical values without copying. The adapter's size derives from the
// byte buffer's size.
func Adapt[T any](b Buffer[byte], layout Layout[T]) (Buffer[T], error) {
	return newAdapter(b, layout)
}

// FromSlice creates a buffer over the given slice. With makeCopy set
// the data is copied; otherwise the buffer aliases the caller's
// storage and mutations are visible on both sides.
func FromSlice[T Elem](data []T, readOnly, makeCopy bool) Buffer[T] {
	if makeCopy {
		data = slices.Clone(data)
	}
	if CanUseRaw() {
		return wrapRawSlice(data, readOnly)
	}
	return &sliceBuffer[T]{data: data, readOnly: readOnly}
}

// FromObjects creates an array-backed buffer over the given slice,
// copying it when makeCopy is set and aliasing it otherwise.
func FromObjects[T any](data []T, readOnly, makeCopy bool) Buffer[T] {
	if makeCopy {
		data = slices.Clone(data)
	}
	return &sliceBuffer[T]{data: data, readOnly: readOnly}
}

// FromPointer borrows size elements of contiguous native memory. The
// memory is owned by an external allocator: the buffer never frees it
// and remains valid only as long as the allocator keeps it alive.
func FromPointer[T Elem](ptr unsafe.Pointer, size int64, readOnly bool) (Buffer[T], error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative buffer size %d", ErrInvalidArgument, size)
	}
	if size > 0 && ptr == nil {
		return nil, fmt.Errorf("%w: nil pointer for buffer of size %d", ErrInvalidArgument, size)
	}
	return wrapRawPointer[T](ptr, size, readOnly), nil
}
