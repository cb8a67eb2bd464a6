package layout

import (
	"math"

	"github.com/kiln-ml/kiln/internal/buffer"
)

type float16Layout struct{}

func (float16Layout) SizeInBytes() int64 {
	return 2
}

func (float16Layout) ReadValue(b buffer.Buffer[byte], index int64) float32 {
	h := uint16(b.Get(index)) | uint16(b.Get(index+1))<<8
	return float16ToFloat32(h)
}

func (float16Layout) WriteValue(b buffer.Buffer[byte], value float32, index int64) {
	h := float32ToFloat16(value)
	b.Set(byte(h), index)
	b.Set(byte(h>>8), index+1)
}

type bfloat16Layout struct{}

func (bfloat16Layout) SizeInBytes() int64 {
	return 2
}

func (bfloat16Layout) ReadValue(b buffer.Buffer[byte], index int64) float32 {
	h := uint16(b.Get(index)) | uint16(b.Get(index+1))<<8
	return math.Float32frombits(uint32(h) << 16)
}

func (bfloat16Layout) WriteValue(b buffer.Buffer[byte], value float32, index int64) {
	h := float32ToBFloat16(value)
	b.Set(byte(h), index)
	b.Set(byte(h>>8), index+1)
}

// float16ToFloat32 converts half precision (IEEE 754) to float32.
func float16ToFloat32(h uint16) float32 {
	sign := uint32(h>>15) & 0x1
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h & 0x3FF)

	var bits uint32
	switch {
	case exp == 0 && mant == 0:
		bits = sign << 31
	case exp == 0:
		// Subnormal number - normalize it.
		e := int32(1)
		for mant&0x400 == 0 {
			mant <<= 1
			e--
		}
		mant &= 0x3FF
		bits = sign<<31 | uint32(e+127-15)<<23 | mant<<13
	case exp == 0x1F:
		// Inf or NaN.
		bits = sign<<31 | 0x7F800000 | mant<<13
	default:
		bits = sign<<31 | (exp+127-15)<<23 | mant<<13
	}
	return math.Float32frombits(bits)
}

// float32ToFloat16 converts float32 to half precision (IEEE 754) with
// round to nearest even. Finite values beyond the half range become
// ±Inf.
func float32ToFloat16(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & 0x8000
	exp := int32(bits>>23&0xFF) - 127 + 15
	mant := bits & 0x7FFFFF

	switch {
	case bits&0x7FFFFFFF > 0x7F800000:
		// NaN: keep the top mantissa bits, force nonzero.
		m := uint16(mant >> 13)
		if m == 0 {
			m = 1
		}
		return sign | 0x7C00 | m
	case exp >= 0x1F:
		return sign | 0x7C00
	case exp <= 0:
		if exp < -10 {
			// Too small for a subnormal.
			return sign
		}
		mant |= 0x800000
		shift := uint32(14 - exp)
		half := uint32(1) << (shift - 1)
		v := mant >> shift
		if mant&half != 0 && (mant&(half-1) != 0 || v&1 == 1) {
			v++
		}
		return sign | uint16(v)
	default:
		v := sign | uint16(exp)<<10 | uint16(mant>>13)
		rem := mant & 0x1FFF
		// Rounding may carry through the exponent, rolling over to Inf
		// exactly when it should.
		if rem > 0x1000 || (rem == 0x1000 && v&1 == 1) {
			v++
		}
		return v
	}
}

// float32ToBFloat16 truncates a float32 to bfloat16 with round to
// nearest even.
func float32ToBFloat16(f float32) uint16 {
	bits := math.Float32bits(f)
	if bits&0x7FFFFFFF > 0x7F800000 {
		// NaN: keep the top mantissa bits, force nonzero.
		h := uint16(bits >> 16)
		if h&0x7F == 0 {
			h |= 0x40
		}
		return h
	}
	rem := bits & 0xFFFF
	v := bits >> 16
	if rem > 0x8000 || (rem == 0x8000 && v&1 == 1) {
		v++
	}
	return uint16(v)
}
