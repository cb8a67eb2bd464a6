package layout

import (
	"encoding/binary"
	"math"

	"github.com/kiln-ml/kiln/internal/buffer"
)

// The endian codecs stage each value through a small stack array and
// move single bytes through the buffer's accessors, so bounds stay
// enforced by the byte buffer itself.

func readWord(b buffer.Buffer[byte], index int64, w []byte) {
	for i := range w {
		w[i] = b.Get(index + int64(i))
	}
}

func writeWord(b buffer.Buffer[byte], index int64, w []byte) {
	for i, v := range w {
		b.Set(v, index+int64(i))
	}
}

type int16Layout struct {
	order binary.ByteOrder
}

func (l int16Layout) SizeInBytes() int64 {
	return 2
}

func (l int16Layout) ReadValue(b buffer.Buffer[byte], index int64) int16 {
	var w [2]byte
	readWord(b, index, w[:])
	return int16(l.order.Uint16(w[:]))
}

func (l int16Layout) WriteValue(b buffer.Buffer[byte], value int16, index int64) {
	var w [2]byte
	l.order.PutUint16(w[:], uint16(value))
	writeWord(b, index, w[:])
}

type int32Layout struct {
	order binary.ByteOrder
}

func (l int32Layout) SizeInBytes() int64 {
	return 4
}

func (l int32Layout) ReadValue(b buffer.Buffer[byte], index int64) int32 {
	var w [4]byte
	readWord(b, index, w[:])
	return int32(l.order.Uint32(w[:]))
}

func (l int32Layout) WriteValue(b buffer.Buffer[byte], value int32, index int64) {
	var w [4]byte
	l.order.PutUint32(w[:], uint32(value))
	writeWord(b, index, w[:])
}

type int64Layout struct {
	order binary.ByteOrder
}

func (l int64Layout) SizeInBytes() int64 {
	return 8
}

func (l int64Layout) ReadValue(b buffer.Buffer[byte], index int64) int64 {
	var w [8]byte
	readWord(b, index, w[:])
	return int64(l.order.Uint64(w[:]))
}

func (l int64Layout) WriteValue(b buffer.Buffer[byte], value int64, index int64) {
	var w [8]byte
	l.order.PutUint64(w[:], uint64(value))
	writeWord(b, index, w[:])
}

type float32Layout struct {
	order binary.ByteOrder
}

func (l float32Layout) SizeInBytes() int64 {
	return 4
}

func (l float32Layout) ReadValue(b buffer.Buffer[byte], index int64) float32 {
	var w [4]byte
	readWord(b, index, w[:])
	return math.Float32frombits(l.order.Uint32(w[:]))
}

func (l float32Layout) WriteValue(b buffer.Buffer[byte], value float32, index int64) {
	var w [4]byte
	l.order.PutUint32(w[:], math.Float32bits(value))
	writeWord(b, index, w[:])
}

type float64Layout struct {
	order binary.ByteOrder
}

func (l float64Layout) SizeInBytes() int64 {
	return 8
}

func (l float64Layout) ReadValue(b buffer.Buffer[byte], index int64) float64 {
	var w [8]byte
	readWord(b, index, w[:])
	return math.Float64frombits(l.order.Uint64(w[:]))
}

func (l float64Layout) WriteValue(b buffer.Buffer[byte], value float64, index int64) {
	var w [8]byte
	l.order.PutUint64(w[:], math.Float64bits(value))
	writeWord(b, index, w[:])
}

type boolLayout struct{}

func (boolLayout) SizeInBytes() int64 {
	return 1
}

func (boolLayout) ReadValue(b buffer.Buffer[byte], index int64) bool {
	return b.Get(index) != 0
}

func (boolLayout) WriteValue(b buffer.Buffer[byte], value bool, index int64) {
	if value {
		b.Set(1, index)
	} else {
		b.Set(0, index)
	}
}
