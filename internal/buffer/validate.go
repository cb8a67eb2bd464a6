package buffer

import "fmt"

// Precondition gates shared by every backend. Each check runs before
// any storage is touched, so a failed operation is never observable as
// a partial mutation.

// checkIndex validates a single-element access.
func checkIndex(index, size int64) {
	if index < 0 || index >= size {
		panic(fmt.Errorf("%w: index %d for buffer of size %d", ErrIndexOutOfBounds, index, size))
	}
}

// checkView validates an Offset or Narrow argument. Unlike a failed
// element access, a bad view bound is a slicing misuse and reports as
// an invalid argument.
func checkView(n, size int64) {
	if n < 0 || n > size {
		panic(fmt.Errorf("%w: view bound %d for buffer of size %d", ErrInvalidArgument, n, size))
	}
}

// checkRead validates a bulk read of length elements.
func checkRead(length int, size int64) {
	if int64(length) > size {
		panic(fmt.Errorf("%w: reading %d values from buffer of size %d", ErrUnderflow, length, size))
	}
}

// checkWrite validates a bulk write of length elements.
func checkWrite(length int, size int64) {
	if int64(length) > size {
		panic(fmt.Errorf("%w: writing %d values into buffer of size %d", ErrOverflow, length, size))
	}
}

// checkWritable rejects mutation of read-only buffers.
func checkWritable(readOnly bool) {
	if readOnly {
		panic(ErrReadOnly)
	}
}

// checkAlloc validates an allocation size. Returned as an error rather
// than panicking: allocation failures surface from constructors.
func checkAlloc(size int64) error {
	if size < 0 || size > MaxCapacity {
		return fmt.Errorf("%w: buffer size %d outside [0, %d]", ErrInvalidArgument, size, MaxCapacity)
	}
	return nil
}
