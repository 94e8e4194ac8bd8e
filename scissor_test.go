// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imrender

import (
	"testing"

	"github.com/gogpu/imrender/draw"
	"github.com/gogpu/imrender/internal/gpu"
)

func TestScissorFromClip(t *testing.T) {
	tests := []struct {
		name string
		clip draw.Rect
		want gpu.ScissorRect
	}{
		{"integral", draw.Rect{MaxX: 100, MaxY: 100}, gpu.ScissorRect{Width: 100, Height: 100}},
		{"negative min clamps", draw.Rect{MinX: -5, MinY: -5, MaxX: 50, MaxY: 50}, gpu.ScissorRect{Width: 55, Height: 55}},
		{"fractional min floors", draw.Rect{MinX: 10.5, MinY: 3.25, MaxX: 20.5, MaxY: 13.25}, gpu.ScissorRect{X: 10, Y: 3, Width: 10, Height: 10}},
		{"fractional size ceils", draw.Rect{MinX: 1, MinY: 1, MaxX: 11.1, MaxY: 2.5}, gpu.ScissorRect{X: 1, Y: 1, Width: 11, Height: 2}},
		{"inverted uses abs", draw.Rect{MinX: 30, MinY: 30, MaxX: 10, MaxY: 20}, gpu.ScissorRect{X: 30, Y: 30, Width: 20, Height: 10}},
		{"empty", draw.Rect{MinX: 4, MinY: 4, MaxX: 4, MaxY: 4}, gpu.ScissorRect{X: 4, Y: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scissorFromClip(tt.clip); got != tt.want {
				t.Errorf("scissorFromClip(%+v) = %+v, want %+v", tt.clip, got, tt.want)
			}
		})
	}
}
