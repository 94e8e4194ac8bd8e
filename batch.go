// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imrender

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/imrender/draw"
	"github.com/gogpu/imrender/internal/gpu"
	"github.com/gogpu/imrender/internal/stream"
)

// placedList is a draw list together with where its data landed in the
// geometry stream.
type placedList struct {
	list   *draw.List
	offset stream.Offsets
}

type opKind uint8

const (
	opDraw opKind = iota
	opCallback
)

// drawOp is one planned pass operation.
type drawOp struct {
	kind opKind

	// opDraw
	scissor    gpu.ScissorRect
	texture    draw.TextureID
	bindGroup  hal.BindGroup
	indexCount uint32
	firstIndex uint32
	baseVertex int32

	// opCallback
	list     *draw.List
	callback draw.RawCallback
}

// planDraws turns the commands of the placed lists into pass operations.
// Each list's element batches consume its indices in order starting at
// the list's index offset; vertices are addressed relative to the list's
// vertex offset. It appends to ops and returns the extended slice and the
// number of commands that produced nothing.
func planDraws(ops []drawOp, lists []placedList) ([]drawOp, int, error) {
	skipped := 0
	for li, pl := range lists {
		available := uint32(len(pl.list.Indices)) //nolint:gosec // bounded by stream capacity
		var cursor uint32
		for ci, cmd := range pl.list.Cmds {
			switch c := cmd.(type) {
			case draw.Elements:
				if c.Count == 0 {
					skipped++
					continue
				}
				if c.Count > available-cursor {
					return ops, skipped, fmt.Errorf("%w: list %d cmd %d needs indices [%d, %d), list has %d",
						ErrIndexRange, li, ci, cursor, uint64(cursor)+uint64(c.Count), available)
				}
				ops = append(ops, drawOp{
					kind:       opDraw,
					scissor:    scissorFromClip(c.ClipRect),
					texture:    c.Texture,
					indexCount: c.Count,
					firstIndex: pl.offset.Index + cursor,
					baseVertex: int32(pl.offset.Vertex), //nolint:gosec // bounded by stream capacity
				})
				cursor += c.Count
			case draw.RawCallback:
				ops = append(ops, drawOp{kind: opCallback, list: pl.list, callback: c})
			default:
				skipped++
			}
		}
	}
	return ops, skipped, nil
}
