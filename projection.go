// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imrender

// OrthoProjection returns the column-major matrix mapping the display
// rectangle [pos, pos+size] to clip space. The top edge maps to +1 and
// the bottom edge to -1, so screen Y grows downward.
func OrthoProjection(pos, size [2]float32) [16]float32 {
	l := pos[0]
	r := pos[0] + size[0]
	t := pos[1]
	b := pos[1] + size[1]
	return [16]float32{
		2 / (r - l), 0, 0, 0,
		0, 2 / (t - b), 0, 0,
		0, 0, -1, 0,
		(r + l) / (l - r), (t + b) / (b - t), 0, 1,
	}
}

