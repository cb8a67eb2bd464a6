package buffer

import "github.com/bits-and-blooms/bitset"

// bitsetBuffer packs booleans into a bit set to avoid one byte per
// value. Views share the bit set and address it through origin.
type bitsetBuffer struct {
	bits     *bitset.BitSet
	origin   int64 // first logical bit
	size     int64
	readOnly bool
}

func newBitsetBuffer(size int64, readOnly bool) *bitsetBuffer {
	return &bitsetBuffer{bits: bitset.New(uint(size)), size: size, readOnly: readOnly}
}

func (b *bitsetBuffer) Size() int64 {
	return b.size
}

func (b *bitsetBuffer) ReadOnly() bool {
	return b.readOnly
}

func (b *bitsetBuffer) Get(index int64) bool {
	checkIndex(index, b.size)
	return b.bits.Test(uint(b.origin + index))
}

func (b *bitsetBuffer) Set(value bool, index int64) {
	checkWritable(b.readOnly)
	checkIndex(index, b.size)
	b.bits.SetTo(uint(b.origin+index), value)
}

func (b *bitsetBuffer) Read(dst []bool) {
	checkRead(len(dst), b.size)
	for i := range dst {
		dst[i] = b.bits.Test(uint(b.origin) + uint(i))
	}
}

func (b *bitsetBuffer) Write(src []bool) {
	checkWritable(b.readOnly)
	checkWrite(len(src), b.size)
	for i, v := range src {
		b.bits.SetTo(uint(b.origin)+uint(i), v)
	}
}

func (b *bitsetBuffer) Offset(n int64) Buffer[bool] {
	checkView(n, b.size)
	return &bitsetBuffer{bits: b.bits, origin: b.origin + n, size: b.size - n, readOnly: b.readOnly}
}

func (b *bitsetBuffer) Narrow(n int64) Buffer[bool] {
	checkView(n, b.size)
	return &bitsetBuffer{bits: b.bits, origin: b.origin, size: n, readOnly: b.readOnly}
}

func (b *bitsetBuffer) CopyTo(dst Buffer[bool], n int64) {
	copyBuffer[bool](b, dst, n)
}
