package buffer

import "fmt"

// blockBuffer is implemented by backends whose storage is visible as a
// contiguous slice, enabling block transfers through the copy builtin
// and exact-alias detection between wrappers.
type blockBuffer[T any] interface {
	block() []T
}

// copyBuffer implements CopyTo for every backend. When both sides
// expose contiguous storage the transfer is a single memmove, which
// also makes copies between partially overlapping views well defined.
// Otherwise it falls back to an element loop, for which overlap
// between distinct views of the same storage is undefined.
func copyBuffer[T any](src, dst Buffer[T], n int64) {
	checkWritable(dst.ReadOnly())
	if n < 0 {
		panic(fmt.Errorf("%w: negative copy count %d", ErrInvalidArgument, n))
	}
	if n > src.Size() {
		panic(fmt.Errorf("%w: copying %d values from buffer of size %d", ErrUnderflow, n, src.Size()))
	}
	if n > dst.Size() {
		panic(fmt.Errorf("%w: copying %d values into buffer of size %d", ErrOverflow, n, dst.Size()))
	}
	if src == dst {
		panic(fmt.Errorf("%w: cannot copy a buffer onto itself", ErrInvalidArgument))
	}
	sb, srcOK := src.(blockBuffer[T])
	db, dstOK := dst.(blockBuffer[T])
	if srcOK && dstOK {
		s, d := sb.block(), db.block()
		if len(s) > 0 && len(s) == len(d) && &s[0] == &d[0] {
			panic(fmt.Errorf("%w: source and destination share identical storage", ErrInvalidArgument))
		}
		copy(d[:n], s[:n])
		return
	}
	for i := int64(0); i < n; i++ {
		dst.Set(src.Get(i), i)
	}
}
