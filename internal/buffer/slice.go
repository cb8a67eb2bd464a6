package buffer

// sliceBuffer wraps a bounded slice window. Every access is computed
// from the window start, never from a movable cursor, so concurrent
// readers do not interfere. It is the fallback when the raw backend is
// unavailable and the storage for object buffers, which have no
// byte-level representation.
type sliceBuffer[T any] struct {
	data     []T
	readOnly bool
}

func (b *sliceBuffer[T]) block() []T {
	return b.data
}

func (b *sliceBuffer[T]) Size() int64 {
	return int64(len(b.data))
}

func (b *sliceBuffer[T]) ReadOnly() bool {
	return b.readOnly
}

func (b *sliceBuffer[T]) Get(index int64) T {
	checkIndex(index, int64(len(b.data)))
	return b.data[index]
}

func (b *sliceBuffer[T]) Set(value T, index int64) {
	checkWritable(b.readOnly)
	checkIndex(index, int64(len(b.data)))
	b.data[index] = value
}

func (b *sliceBuffer[T]) Read(dst []T) {
	checkRead(len(dst), int64(len(b.data)))
	copy(dst, b.data)
}

func (b *sliceBuffer[T]) Write(src []T) {
	checkWritable(b.readOnly)
	checkWrite(len(src), int64(len(b.data)))
	copy(b.data, src)
}

func (b *sliceBuffer[T]) Offset(n int64) Buffer[T] {
	checkView(n, int64(len(b.data)))
	return &sliceBuffer[T]{data: b.data[n:], readOnly: b.readOnly}
}

func (b *sliceBuffer[T]) Narrow(n int64) Buffer[T] {
	checkView(n, int64(len(b.data)))
	return &sliceBuffer[T]{data: b.data[:n], readOnly: b.readOnly}
}

func (b *sliceBuffer[T]) CopyTo(dst Buffer[T], n int64) {
	copyBuffer[T](b, dst, n)
}
