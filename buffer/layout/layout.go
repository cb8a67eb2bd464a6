// Copyright 2025 The Kiln Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layout provides the stock byte layouts for adapted buffers:
// endian-parameterized integer and float codecs, IEEE 754 half
// precision, bfloat16 and bool-as-byte.
//
// Example:
//
//	raw, _ := buffer.Of[byte](2 * n)
//	halves, _ := buffer.Adapt(raw, layout.Float16)
package layout

import (
	"encoding/binary"

	"github.com/kiln-ml/kiln/buffer"
	impl "github.com/kiln-ml/kiln/internal/layout"
)

// Float16 stores float32 values as IEEE 754 half precision, two bytes
// little-endian, rounding to nearest even on encode.
var Float16 buffer.Layout[float32] = impl.Float16

// BFloat16 stores float32 values as bfloat16, two bytes little-endian,
// rounding to nearest even on encode.
var BFloat16 buffer.Layout[float32] = impl.BFloat16

// Bool stores booleans as a single byte, 0 or 1.
var Bool buffer.Layout[bool] = impl.Bool

// Int16 returns a two-byte integer layout with the given byte order.
func Int16(order binary.ByteOrder) buffer.Layout[int16] {
	return impl.Int16(order)
}

// Int32 returns a four-byte integer layout with the given byte order.
func Int32(order binary.ByteOrder) buffer.Layout[int32] {
	return impl.Int32(order)
}

// Int64 returns an eight-byte integer layout with the given byte order.
func Int64(order binary.ByteOrder) buffer.Layout[int64] {
	return impl.Int64(order)
}

// Float32 returns a four-byte IEEE 754 single precision layout with
// the given byte order.
func Float32(order binary.ByteOrder) buffer.Layout[float32] {
	return impl.Float32(order)
}

// Float64 returns an eight-byte IEEE 754 double precision layout with
// the given byte order.
func Float64(order binary.ByteOrder) buffer.Layout[float64] {
	return impl.Float64(order)
}
