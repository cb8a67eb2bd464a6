// Package buffer implements fixed-capacity typed data buffers over
// interchangeable storage backends: raw native memory, bounded slice
// windows, and array/bitset fallback storage.
package buffer

import "math"

// Elem is a constraint for the primitive element types a physical
// buffer can host. Arbitrary object types use array-backed buffers
// created by AllocObjects/FromObjects instead.
type Elem interface {
	~uint8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64 | ~bool
}

// MaxCapacity is the maximum number of elements a buffer can store.
// It sits slightly below the maximum 32-bit signed count to leave
// headroom for backends that index with int on 32-bit targets.
const MaxCapacity int64 = math.MaxInt32 - 10

// Buffer is a fixed-capacity, randomly addressable container of
// elements of type T. Capacities are element counts, not byte counts.
//
// Buffers are not internally synchronized. Independent buffers and
// non-overlapping views may be used concurrently; concurrent mutation
// of the same storage must be serialized by the caller.
//
// All accessors validate their arguments before touching storage and
// panic with an error wrapping one of the sentinel errors in this
// package when the contract is violated.
type Buffer[T any] interface {
	// Size returns the capacity of this buffer, in elements.
	Size() int64

	// ReadOnly reports whether this buffer rejects mutation.
	ReadOnly() bool

	// Get returns the value at the given index.
	Get(index int64) T

	// Set stores a value at the given index.
	Set(value T, index int64)

	// Read copies the first len(dst) values of this buffer into dst.
	// Use Offset to read from a different start position and subslice
	// dst to fill part of it.
	Read(dst []T)

	// Write stores the values of src at the start of this buffer.
	Write(src []T)

	// Offset returns a view of this buffer whose index 0 corresponds
	// to index n of this buffer, with size Size()-n. The view shares
	// storage with this buffer: writes on either side are visible to
	// the other.
	Offset(n int64) Buffer[T]

	// Narrow returns a view of this buffer limited to its first n
	// elements. The view shares storage with this buffer.
	Narrow(n int64) Buffer[T]

	// CopyTo copies the first n values of this buffer into dst.
	// Values of dst at indices >= n are left untouched.
	CopyTo(dst Buffer[T], n int64)
}
