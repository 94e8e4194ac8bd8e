// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imrender

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/imrender/draw"
	"github.com/gogpu/imrender/internal/gpu"
)

// scissorFromClip converts a screen-space clip rectangle to a scissor
// rectangle: the min corner is clamped at zero and floored, the extent is
// the rounded-up absolute size of the rectangle.
func scissorFromClip(clip draw.Rect) gpu.ScissorRect {
	return gpu.ScissorRect{
		X:      uint32(math32.Floor(math32.Max(clip.MinX, 0))),
		Y:      uint32(math32.Floor(math32.Max(clip.MinY, 0))),
		Width:  uint32(math32.Ceil(math32.Abs(clip.MaxX - clip.MinX))),
		Height: uint32(math32.Ceil(math32.Abs(clip.MaxY - clip.MinY))),
	}
}
