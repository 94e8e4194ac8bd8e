// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"unsafe"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/imrender/draw"
)

// Shader locations of the UI vertex attributes.
const (
	locationPosition = 0
	locationUV       = 1
	locationColor    = 2
)

// uiVertexLayout describes draw.Vertex to the pipeline: one interleaved
// buffer in slot 0. Offsets come from the Go struct so the layout cannot
// drift from the type.
func uiVertexLayout() []gputypes.VertexBufferLayout {
	var v draw.Vertex
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: uint64(draw.VertexSize),
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{
					Format:         gputypes.VertexFormatFloat32x2,
					Offset:         uint64(unsafe.Offsetof(v.Pos)),
					ShaderLocation: locationPosition,
				},
				{
					Format:         gputypes.VertexFormatFloat32x2,
					Offset:         uint64(unsafe.Offsetof(v.UV)),
					ShaderLocation: locationUV,
				},
				{
					// Packed RGBA bytes, normalized to vec4<f32> in the shader.
					Format:         gputypes.VertexFormatUnorm8x4,
					Offset:         uint64(unsafe.Offsetof(v.Col)),
					ShaderLocation: locationColor,
				},
			},
		},
	}
}
