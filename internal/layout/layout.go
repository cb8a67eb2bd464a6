// Package layout provides the stock byte layouts: endian-parameterized
// integer and float codecs, IEEE 754 half precision, bfloat16 and
// bool-as-byte. All layouts are stateless and safe to share.
package layout

import (
	"encoding/binary"

	"github.com/kiln-ml/kiln/internal/buffer"
)

// Float16 stores float32 values as IEEE 754 half precision, two bytes
// little-endian. Encoding rounds to nearest even; subnormals, ±Inf and
// NaN are preserved. Values beyond the half-precision range encode as
// ±Inf.
var Float16 buffer.Layout[float32] = float16Layout{}

// BFloat16 stores float32 values as bfloat16 (truncated float32
// exponent range, 8-bit mantissa), two bytes little-endian. Encoding
// rounds to nearest even.
var BFloat16 buffer.Layout[float32] = bfloat16Layout{}

// Bool stores booleans as a single byte, 0 or 1. Any nonzero byte
// decodes as true.
var Bool buffer.Layout[bool] = boolLayout{}

// Int16 returns a two-byte integer layout with the given byte order.
func Int16(order binary.ByteOrder) buffer.Layout[int16] {
	return int16Layout{order}
}

// Int32 returns a four-byte integer layout with the given byte order.
func Int32(order binary.ByteOrder) buffer.Layout[int32] {
	return int32Layout{order}
}

// Int64 returns an eight-byte integer layout with the given byte order.
func Int64(order binary.ByteOrder) buffer.Layout[int64] {
	return int64Layout{order}
}

// Float32 returns a four-byte IEEE 754 single precision layout with
// the given byte order.
func Float32(order binary.ByteOrder) buffer.Layout[float32] {
	return float32Layout{order}
}

// Float64 returns an eight-byte IEEE 754 double precision layout with
// the given byte order.
func Float64(order binary.ByteOrder) buffer.Layout[float64] {
	return float64Layout{order}
}
