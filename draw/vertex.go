// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import "unsafe"

// Vertex is a single UI vertex.
// Its layout matches the vertex input of the UI shader:
//
//	location 0: Pos (vec2<f32>)       offset 0
//	location 1: UV  (vec2<f32>)       offset 8
//	location 2: Col (unorm8x4 → vec4) offset 16
type Vertex struct {
	Pos [2]float32
	UV  [2]float32

	// Col is packed RGBA8, red in the lowest byte.
	Col uint32
}

// Index is a 16-bit index into the vertex array of the owning List.
type Index = uint16

// VertexSize is the byte stride of a Vertex.
const VertexSize = int(unsafe.Sizeof(Vertex{}))

// IndexSize is the byte size of an Index.
const IndexSize = int(unsafe.Sizeof(Index(0)))

// Compile-time layout checks: the pipeline relies on a tightly packed
// 20-byte vertex.
var (
	_ = [1]struct{}{}[VertexSize-20]
	_ = [1]struct{}{}[IndexSize-2]
)

// PackColor packs 8-bit RGBA components into the Col format.
func PackColor(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// UnpackColor splits a packed Col value into its components.
func UnpackColor(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24) //nolint:gosec // intentional truncation
}
