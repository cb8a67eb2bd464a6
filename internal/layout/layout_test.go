package layout

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiln-ml/kiln/internal/buffer"
)

func byteBuffer(t *testing.T, size int64) buffer.Buffer[byte] {
	t.Helper()
	b, err := buffer.Alloc[byte](size)
	require.NoError(t, err)
	return b
}

// TestFloat16Decode checks IEEE 754 half precision against known bit
// patterns.
func TestFloat16Decode(t *testing.T) {
	tests := []struct {
		name string
		h    uint16
		want float32
	}{
		{name: "zero", h: 0x0000, want: 0},
		{name: "one", h: 0x3C00, want: 1},
		{name: "negative two", h: 0xC000, want: -2},
		{name: "max finite", h: 0x7BFF, want: 65504},
		{name: "smallest subnormal", h: 0x0001, want: float32(math.Ldexp(1, -24))},
		{name: "largest subnormal", h: 0x03FF, want: float32(math.Ldexp(1023, -24))},
		{name: "smallest normal", h: 0x0400, want: 6.103515625e-05},
	}

	b := byteBuffer(t, 2)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b.Set(byte(tt.h), 0)
			b.Set(byte(tt.h>>8), 1)
			assert.Equal(t, tt.want, Float16.ReadValue(b, 0))
		})
	}
}

func TestFloat16SpecialValues(t *testing.T) {
	b := byteBuffer(t, 2)

	write := func(h uint16) {
		b.Set(byte(h), 0)
		b.Set(byte(h>>8), 1)
	}

	write(0x7C00)
	assert.True(t, math.IsInf(float64(Float16.ReadValue(b, 0)), 1))

	write(0xFC00)
	assert.True(t, math.IsInf(float64(Float16.ReadValue(b, 0)), -1))

	write(0x7E00)
	assert.True(t, math.IsNaN(float64(Float16.ReadValue(b, 0))))

	write(0x8000)
	v := Float16.ReadValue(b, 0)
	assert.Equal(t, float32(0), v)
	assert.True(t, math.Signbit(float64(v)), "negative zero keeps its sign")
}

func TestFloat16Encode(t *testing.T) {
	tests := []struct {
		name string
		f    float32
		want uint16
	}{
		{name: "zero", f: 0, want: 0x0000},
		{name: "one", f: 1, want: 0x3C00},
		{name: "negative two", f: -2, want: 0xC000},
		{name: "max finite", f: 65504, want: 0x7BFF},
		{name: "overflow to inf", f: 65536, want: 0x7C00},
		{name: "halfway rounds to even inf", f: 65520, want: 0x7C00},
		{name: "smallest subnormal", f: float32(math.Ldexp(1, -24)), want: 0x0001},
		{name: "below subnormal range", f: float32(math.Ldexp(1, -26)), want: 0x0000},
		{name: "positive infinity", f: float32(math.Inf(1)), want: 0x7C00},
	}

	b := byteBuffer(t, 2)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Float16.WriteValue(b, tt.f, 0)
			got := uint16(b.Get(0)) | uint16(b.Get(1))<<8
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloat16EncodeNaN(t *testing.T) {
	b := byteBuffer(t, 2)
	Float16.WriteValue(b, float32(math.NaN()), 0)
	got := uint16(b.Get(0)) | uint16(b.Get(1))<<8
	assert.Equal(t, uint16(0x7C00), got&0x7C00, "NaN keeps an all-ones exponent")
	assert.NotZero(t, got&0x03FF, "NaN keeps a nonzero mantissa")
}

func TestFloat16RoundTrip(t *testing.T) {
	// Values exactly representable in half precision survive a full
	// round trip.
	values := []float32{0, 1, -1, 0.5, 2048, -2048, 65504, 0.0009765625}

	b := byteBuffer(t, 2)
	for _, f := range values {
		Float16.WriteValue(b, f, 0)
		assert.Equal(t, f, Float16.ReadValue(b, 0), "value %v", f)
	}
}

func TestBFloat16(t *testing.T) {
	b := byteBuffer(t, 2)

	tests := []struct {
		name string
		f    float32
		want uint16
	}{
		{name: "one", f: 1, want: 0x3F80},
		{name: "negative two point five", f: -2.5, want: 0xC020},
		{name: "halfway rounds to even", f: math.Float32frombits(0x3F808000), want: 0x3F80},
		{name: "halfway above odd rounds up", f: math.Float32frombits(0x3F818000), want: 0x3F82},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			BFloat16.WriteValue(b, tt.f, 0)
			got := uint16(b.Get(0)) | uint16(b.Get(1))<<8
			assert.Equal(t, tt.want, got)
		})
	}

	// Round trip for values exactly representable in 8 mantissa bits.
	for _, f := range []float32{0, 1, -1, 0.25, 3, 128} {
		BFloat16.WriteValue(b, f, 0)
		assert.Equal(t, f, BFloat16.ReadValue(b, 0), "value %v", f)
	}
}

func TestBoolLayout(t *testing.T) {
	b := byteBuffer(t, 2)

	Bool.WriteValue(b, true, 0)
	Bool.WriteValue(b, false, 1)
	assert.Equal(t, byte(1), b.Get(0))
	assert.Equal(t, byte(0), b.Get(1))
	assert.True(t, Bool.ReadValue(b, 0))
	assert.False(t, Bool.ReadValue(b, 1))

	// Any nonzero byte decodes as true.
	b.Set(0xFF, 1)
	assert.True(t, Bool.ReadValue(b, 1))
}

func TestEndianLayouts(t *testing.T) {
	b := byteBuffer(t, 8)

	be := Int32(binary.BigEndian)
	be.WriteValue(b, 0x01020304, 0)
	assert.Equal(t, []byte{1, 2, 3, 4}, readBytes(b, 0, 4))
	assert.Equal(t, int32(0x01020304), be.ReadValue(b, 0))

	le := Int32(binary.LittleEndian)
	le.WriteValue(b, 0x01020304, 4)
	assert.Equal(t, []byte{4, 3, 2, 1}, readBytes(b, 4, 4))
	assert.Equal(t, int32(0x01020304), le.ReadValue(b, 4))
}

func TestLayoutRoundTrips(t *testing.T) {
	b := byteBuffer(t, 8)

	t.Run("int16", func(t *testing.T) {
		l := Int16(binary.LittleEndian)
		for _, v := range []int16{0, 1, -1, math.MinInt16, math.MaxInt16} {
			l.WriteValue(b, v, 0)
			assert.Equal(t, v, l.ReadValue(b, 0))
		}
	})
	t.Run("int64", func(t *testing.T) {
		l := Int64(binary.BigEndian)
		for _, v := range []int64{0, -1, math.MinInt64, math.MaxInt64} {
			l.WriteValue(b, v, 0)
			assert.Equal(t, v, l.ReadValue(b, 0))
		}
	})
	t.Run("float32", func(t *testing.T) {
		l := Float32(binary.LittleEndian)
		for _, v := range []float32{0, -1.5, math.MaxFloat32} {
			l.WriteValue(b, v, 0)
			assert.Equal(t, v, l.ReadValue(b, 0))
		}
	})
	t.Run("float64", func(t *testing.T) {
		l := Float64(binary.BigEndian)
		for _, v := range []float64{0, 3.141592653589793, -math.MaxFloat64} {
			l.WriteValue(b, v, 0)
			assert.Equal(t, v, l.ReadValue(b, 0))
		}
	})
}

func TestLayoutWidths(t *testing.T) {
	assert.Equal(t, int64(2), Float16.SizeInBytes())
	assert.Equal(t, int64(2), BFloat16.SizeInBytes())
	assert.Equal(t, int64(1), Bool.SizeInBytes())
	assert.Equal(t, int64(2), Int16(binary.BigEndian).SizeInBytes())
	assert.Equal(t, int64(4), Int32(binary.BigEndian).SizeInBytes())
	assert.Equal(t, int64(8), Int64(binary.BigEndian).SizeInBytes())
	assert.Equal(t, int64(4), Float32(binary.BigEndian).SizeInBytes())
	assert.Equal(t, int64(8), Float64(binary.BigEndian).SizeInBytes())
}

// TestLayoutDefersBounds confirms layouts rely on the byte buffer for
// bounds enforcement: a window that ends mid-element fails on access,
// not silently.
func TestLayoutDefersBounds(t *testing.T) {
	b := byteBuffer(t, 3)
	l := Int32(binary.LittleEndian)

	assert.Panics(t, func() { l.ReadValue(b, 0) })
	assert.Panics(t, func() { l.WriteValue(b, 1, 0) })
}

func readBytes(b buffer.Buffer[byte], index int64, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b.Get(index + int64(i))
	}
	return out
}
