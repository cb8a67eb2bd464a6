package buffer

import "unsafe"

// rawBuffer gives direct, copy-free access to contiguous memory. The
// memory is either a Go allocation retained through ref, or native
// memory owned by an external allocator (ref == nil), in which case
// the buffer is valid only as long as that allocator keeps the memory
// alive.
type rawBuffer[T Elem] struct {
	ptr      unsafe.Pointer // first element
	size     int64          // element count
	readOnly bool
	ref      any // retains the owning allocation; nil for borrowed memory
}

// newRawBuffer allocates storage for size elements.
func newRawBuffer[T Elem](size int64, readOnly bool) *rawBuffer[T] {
	s := make([]T, size)
	return &rawBuffer[T]{
		ptr:      unsafe.Pointer(unsafe.SliceData(s)),
		size:     size,
		readOnly: readOnly,
		ref:      s,
	}
}

// wrapRawSlice aliases the caller's slice without copying.
func wrapRawSlice[T Elem](data []T, readOnly bool) *rawBuffer[T] {
	return &rawBuffer[T]{
		ptr:      unsafe.Pointer(unsafe.SliceData(data)),
		size:     int64(len(data)),
		readOnly: readOnly,
		ref:      data,
	}
}

// wrapRawPointer borrows size elements of externally owned memory.
// The buffer never frees it.
func wrapRawPointer[T Elem](ptr unsafe.Pointer, size int64, readOnly bool) *rawBuffer[T] {
	return &rawBuffer[T]{ptr: ptr, size: size, readOnly: readOnly}
}

//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by the validator
func (b *rawBuffer[T]) block() []T {
	return unsafe.Slice((*T)(b.ptr), int(b.size))
}

func (b *rawBuffer[T]) Size() int64 {
	return b.size
}

func (b *rawBuffer[T]) ReadOnly() bool {
	return b.readOnly
}

func (b *rawBuffer[T]) Get(index int64) T {
	checkIndex(index, b.size)
	return b.block()[index]
}

func (b *rawBuffer[T]) Set(value T, index int64) {
	checkWritable(b.readOnly)
	checkIndex(index, b.size)
	b.block()[index] = value
}

func (b *rawBuffer[T]) Read(dst []T) {
	checkRead(len(dst), b.size)
	copy(dst, b.block())
}

func (b *rawBuffer[T]) Write(src []T) {
	checkWritable(b.readOnly)
	checkWrite(len(src), b.size)
	copy(b.block(), src)
}

func (b *rawBuffer[T]) Offset(n int64) Buffer[T] {
	checkView(n, b.size)
	var zero T
	return &rawBuffer[T]{
		ptr:      unsafe.Add(b.ptr, uintptr(n)*unsafe.Sizeof(zero)),
		size:     b.size - n,
		readOnly: b.readOnly,
		ref:      b.ref,
	}
}

func (b *rawBuffer[T]) Narrow(n int64) Buffer[T] {
	checkView(n, b.size)
	return &rawBuffer[T]{ptr: b.ptr, size: n, readOnly: b.readOnly, ref: b.ref}
}

func (b *rawBuffer[T]) CopyTo(dst Buffer[T], n int64) {
	copyBuffer[T](b, dst, n)
}
