// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imrender

import (
	"math"
	"testing"
)

// transformPoint applies a column-major matrix to (x, y, 0, 1).
func transformPoint(m [16]float32, x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

func TestOrthoProjectionCorners(t *testing.T) {
	tests := []struct {
		name      string
		pos, size [2]float32
	}{
		{"origin", [2]float32{0, 0}, [2]float32{800, 600}},
		{"offset display", [2]float32{100, 50}, [2]float32{320, 240}},
		{"negative origin", [2]float32{-64, -32}, [2]float32{128, 64}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := OrthoProjection(tt.pos, tt.size)
			l, top := tt.pos[0], tt.pos[1]
			r, b := l+tt.size[0], top+tt.size[1]

			corners := []struct {
				x, y   float32
				cx, cy float32
			}{
				{l, top, -1, 1},
				{r, top, 1, 1},
				{l, b, -1, -1},
				{r, b, 1, -1},
				{(l + r) / 2, (top + b) / 2, 0, 0},
			}
			for _, c := range corners {
				gx, gy := transformPoint(m, c.x, c.y)
				if !near(gx, c.cx) || !near(gy, c.cy) {
					t.Errorf("(%v, %v) -> (%v, %v), want (%v, %v)", c.x, c.y, gx, gy, c.cx, c.cy)
				}
			}
		})
	}
}

func TestOrthoProjectionDepth(t *testing.T) {
	m := OrthoProjection([2]float32{0, 0}, [2]float32{2, 2})
	if m[10] != -1 || m[15] != 1 {
		t.Errorf("m[10], m[15] = %v, %v, want -1, 1", m[10], m[15])
	}
	for _, i := range []int{2, 3, 6, 7, 8, 9, 11, 14} {
		if m[i] != 0 {
			t.Errorf("m[%d] = %v, want 0", i, m[i])
		}
	}
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}
