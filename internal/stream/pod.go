// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stream

import (
	"unsafe"

	"github.com/gogpu/imrender/draw"
)

// Pod is the set of element types that may be viewed as raw bytes.
// Members have no pointers and a layout fixed by the draw package.
type Pod interface {
	draw.Vertex | draw.Index
}

// asBytes views s as its underlying bytes without copying.
// The result aliases s and is little-endian on every supported target.
func asBytes[T Pod](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	size := len(s) * int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), size) //nolint:gosec // Pod types are plain data
}
