// Copyright 2025 The Kiln Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package buffer provides the public API for kiln's typed data
// buffers.
//
// A Buffer[T] is a fixed-capacity, randomly addressable container of a
// single element type backed by one of three interchangeable storage
// strategies:
//   - raw memory: direct, copy-free access to contiguous memory,
//     including externally owned native memory
//   - slice window: a bounded Go slice addressed from a fixed origin
//   - array/bitset: fallback storage for objects and bit-packed
//     booleans
//
// A byte buffer can additionally be reinterpreted as a buffer of a
// different logical type through a pluggable Layout, e.g. float32
// values decoded out of a packed float16 byte region.
//
// Example:
//
//	b, _ := buffer.Of[int64](10)
//	b.Set(100, 6)
//	v := b.Offset(3)      // view of size 7, shares storage
//	_ = v.Get(3)          // 100
package buffer

import (
	core "github.com/kiln-ml/kiln/internal/buffer"
)

// Buffer is a fixed-capacity, randomly addressable container of
// elements of type T. See the package documentation for the backend
// and view semantics.
type Buffer[T any] = core.Buffer[T]

// Layout converts a logical value to and from a run of bytes inside a
// byte buffer. Stock layouts live in the layout subpackage.
type Layout[T any] = core.Layout[T]

// Elem is the constraint for primitive element types a physical buffer
// can host.
type Elem = core.Elem

// MaxCapacity is the maximum number of elements a buffer can store.
const MaxCapacity = core.MaxCapacity

// Error kinds. Accessor and view panics wrap one of these; classify
// with errors.Is.
var (
	ErrIndexOutOfBounds = core.ErrIndexOutOfBounds
	ErrInvalidArgument  = core.ErrInvalidArgument
	ErrUnderflow        = core.ErrUnderflow
	ErrOverflow         = core.ErrOverflow
	ErrLayoutMisaligned = core.ErrLayoutMisaligned
	ErrReadOnly         = core.ErrReadOnly
)

// CanUseRaw reports whether newly created buffers may use the raw
// backend on this build.
func CanUseRaw() bool {
	return core.CanUseRaw()
}
