// Copyright 2025 The Kiln Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package buffer

import (
	"unsafe"

	core "github.com/kiln-ml/kiln/internal/buffer"
)

// Of creates a buffer of primitive elements that can store up to size
// values, selecting the best available backend.
//
// Example:
//
//	b, err := buffer.Of[float32](1024)
func Of[T Elem](size int64) (Buffer[T], error) {
	return core.Alloc[T](size)
}

// OfObjects creates a buffer of references to values of type T that
// can store up to size values. Object buffers are always array-backed.
func OfObjects[T any](size int64) (Buffer[T], error) {
	return core.AllocObjects[T](size)
}

// WithLayout creates a buffer of size logical values backed by
// size*layout.SizeInBytes() raw bytes, converted through the given
// layout.
//
// Example:
//
//	halves, err := buffer.WithLayout[float32](n, layout.Float16)
func WithLayout[T any](size int64, layout Layout[T]) (Buffer[T], error) {
	return core.AllocWithLayout(size, layout)
}

// Adapt exposes an already-allocated byte buffer as a buffer of
// logical values without copying. The byte buffer's size must be an
// exact multiple of the layout's element width.
func Adapt[T any](b Buffer[byte], layout Layout[T]) (Buffer[T], error) {
	return core.Adapt(b, layout)
}

// FromSlice creates a buffer over the given slice. With makeCopy set
// the data is copied; otherwise the buffer aliases the caller's
// storage, so mutations through the buffer are visible to the caller
// and vice versa. The aliasing form is the zero-copy interop path for
// tensor memory.
func FromSlice[T Elem](data []T, readOnly, makeCopy bool) Buffer[T] {
	return core.FromSlice(data, readOnly, makeCopy)
}

// FromObjects creates an array-backed buffer over the given slice,
// copying it when makeCopy is set and aliasing it otherwise.
func FromObjects[T any](data []T, readOnly, makeCopy bool) Buffer[T] {
	return core.FromObjects(data, readOnly, makeCopy)
}

// FromPointer borrows size elements of contiguous native memory whose
// lifetime is governed by an external allocator. The buffer never
// allocates or frees that memory; it stays valid only as long as the
// allocator keeps it alive.
func FromPointer[T Elem](ptr unsafe.Pointer, size int64, readOnly bool) (Buffer[T], error) {
	return core.FromPointer[T](ptr, size, readOnly)
}
