package buffer

import "fmt"

// adapterBuffer synthesizes a typed buffer from a byte-backed physical
// buffer and a layout. Bounds on the byte side are enforced by the
// physical buffer itself; the adapter only validates logical indices.
type adapterBuffer[T any] struct {
	bytes  Buffer[byte]
	layout Layout[T]
	stride int64
	size   int64
}

// newAdapter composes a byte buffer with a layout. The byte buffer's
// size must be an exact multiple of the layout's element width.
func newAdapter[T any](b Buffer[byte], l Layout[T]) (*adapterBuffer[T], error) {
	if b == nil || l == nil {
		return nil, fmt.Errorf("%w: nil byte buffer or layout", ErrInvalidArgument)
	}
	stride := l.SizeInBytes()
	if stride <= 0 {
		return nil, fmt.Errorf("%w: layout element width %d", ErrInvalidArgument, stride)
	}
	if b.Size()%stride != 0 {
		return nil, fmt.Errorf("%w: %d bytes, element width %d", ErrLayoutMisaligned, b.Size(), stride)
	}
	return &adapterBuffer[T]{bytes: b, layout: l, stride: stride, size: b.Size() / stride}, nil
}

func (a *adapterBuffer[T]) Size() int64 {
	return a.size
}

func (a *adapterBuffer[T]) ReadOnly() bool {
	return a.bytes.ReadOnly()
}

func (a *adapterBuffer[T]) Get(index int64) T {
	checkIndex(index, a.size)
	return a.layout.ReadValue(a.bytes, index*a.stride)
}

func (a *adapterBuffer[T]) Set(value T, index int64) {
	checkWritable(a.bytes.ReadOnly())
	checkIndex(index, a.size)
	a.layout.WriteValue(a.bytes, value, index*a.stride)
}

// Read decodes element by element: the layout may transform bytes
// arbitrarily, so there is no block fast path.
func (a *adapterBuffer[T]) Read(dst []T) {
	checkRead(len(dst), a.size)
	for i := range dst {
		dst[i] = a.layout.ReadValue(a.bytes, int64(i)*a.stride)
	}
}

func (a *adapterBuffer[T]) Write(src []T) {
	checkWritable(a.bytes.ReadOnly())
	checkWrite(len(src), a.size)
	for i, v := range src {
		a.layout.WriteValue(a.bytes, v, int64(i)*a.stride)
	}
}

// Offset keeps the view an adapter over the shifted byte buffer.
func (a *adapterBuffer[T]) Offset(n int64) Buffer[T] {
	checkView(n, a.size)
	return &adapterBuffer[T]{bytes: a.bytes.Offset(n * a.stride), layout: a.layout, stride: a.stride, size: a.size - n}
}

func (a *adapterBuffer[T]) Narrow(n int64) Buffer[T] {
	checkView(n, a.size)
	return &adapterBuffer[T]{bytes: a.bytes.Narrow(n * a.stride), layout: a.layout, stride: a.stride, size: n}
}

func (a *adapterBuffer[T]) CopyTo(dst Buffer[T], n int64) {
	copyBuffer[T](a, dst, n)
}
