// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Recorder errors.
var (
	// ErrPassEnded is reported when commands are recorded after End.
	ErrPassEnded = errors.New("gpu: render pass has already ended")

	// ErrBindGroupIndexOutOfRange is reported when a bind group index exceeds 3.
	ErrBindGroupIndexOutOfRange = errors.New("gpu: bind group index exceeds maximum (3)")

	// ErrNilReplayTarget is returned when Replay is given a nil encoder.
	ErrNilReplayTarget = errors.New("gpu: replay target is nil")
)

// RecorderState represents the state of a Recorder.
type RecorderState int

const (
	// RecorderStateRecording means the recorder accepts commands.
	RecorderStateRecording RecorderState = iota

	// RecorderStateEnded means End was called; further commands are dropped.
	RecorderStateEnded
)

// String returns the string representation of RecorderState.
func (s RecorderState) String() string {
	switch s {
	case RecorderStateRecording:
		return "Recording"
	case RecorderStateEnded:
		return "Ended"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// CommandKind identifies a recorded pass command.
type CommandKind int

// Command kinds, one per PassEncoder method.
const (
	CmdSetPipeline CommandKind = iota
	CmdSetBindGroup
	CmdSetVertexBuffer
	CmdSetIndexBuffer
	CmdSetScissorRect
	CmdDrawIndexed
)

// String returns the name of the pass method the kind stands for.
func (k CommandKind) String() string {
	switch k {
	case CmdSetPipeline:
		return "SetPipeline"
	case CmdSetBindGroup:
		return "SetBindGroup"
	case CmdSetVertexBuffer:
		return "SetVertexBuffer"
	case CmdSetIndexBuffer:
		return "SetIndexBuffer"
	case CmdSetScissorRect:
		return "SetScissorRect"
	case CmdDrawIndexed:
		return "DrawIndexed"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// ScissorRect is the argument of a SetScissorRect command.
type ScissorRect struct {
	X, Y, Width, Height uint32
}

// DrawIndexedArgs is the argument of a DrawIndexed command.
type DrawIndexedArgs struct {
	IndexCount    uint32
	InstanceCount uint32
	FirstIndex    uint32
	BaseVertex    int32
	FirstInstance uint32
}

// Command is one recorded pass command. Only the fields relevant to Kind
// are set.
type Command struct {
	Kind CommandKind

	Pipeline  hal.RenderPipeline
	BindGroup hal.BindGroup
	Buffer    hal.Buffer

	// Index is the bind group index or the vertex buffer slot.
	Index   uint32
	Offsets []uint32
	Offset  uint64
	Format  gputypes.IndexFormat

	Scissor ScissorRect
	Draw    DrawIndexedArgs
}

// String formats the command for logs and the demo output.
func (c Command) String() string {
	switch c.Kind {
	case CmdSetBindGroup:
		return fmt.Sprintf("SetBindGroup(%d)", c.Index)
	case CmdSetVertexBuffer:
		return fmt.Sprintf("SetVertexBuffer(slot=%d, offset=%d)", c.Index, c.Offset)
	case CmdSetIndexBuffer:
		return fmt.Sprintf("SetIndexBuffer(format=%v, offset=%d)", c.Format, c.Offset)
	case CmdSetScissorRect:
		s := c.Scissor
		return fmt.Sprintf("SetScissorRect(%d, %d, %d, %d)", s.X, s.Y, s.Width, s.Height)
	case CmdDrawIndexed:
		d := c.Draw
		return fmt.Sprintf("DrawIndexed(count=%d, instances=%d, first=%d, base=%d)",
			d.IndexCount, d.InstanceCount, d.FirstIndex, d.BaseVertex)
	default:
		return c.Kind.String()
	}
}

// Recorder records render pass commands for later replay.
//
// Recorder implements PassEncoder. It serves headless runs and tests, and
// lets a UI layer be recorded once and replayed into several passes.
//
// State Machine:
//
//	Recording -> End() -> Ended
//
// Commands issued after End are dropped and Err reports ErrPassEnded.
type Recorder struct {
	mu       sync.Mutex
	state    RecorderState
	commands []Command
	err      error
}

// NewRecorder creates a Recorder in the Recording state.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// State returns the current recorder state.
func (r *Recorder) State() RecorderState {
	if r == nil {
		return RecorderStateEnded
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// IsEnded returns true if End has been called.
func (r *Recorder) IsEnded() bool {
	return r.State() == RecorderStateEnded
}

// Err returns the first error observed while recording.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// End stops recording. Calling End twice is a no-op.
func (r *Recorder) End() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = RecorderStateEnded
}

// Reset discards every recorded command and returns to Recording.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = RecorderStateRecording
	r.commands = r.commands[:0]
	r.err = nil
}

// Commands returns a copy of the recorded commands in order.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Count returns how many commands of the given kind were recorded.
func (r *Recorder) Count(kind CommandKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for i := range r.commands {
		if r.commands[i].Kind == kind {
			n++
		}
	}
	return n
}

// record appends cmd unless the recorder has ended.
func (r *Recorder) record(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != RecorderStateRecording {
		if r.err == nil {
			r.err = fmt.Errorf("%v: %w", cmd.Kind, ErrPassEnded)
		}
		return
	}
	r.commands = append(r.commands, cmd)
}

// SetPipeline records a pipeline bind.
func (r *Recorder) SetPipeline(pipeline hal.RenderPipeline) {
	r.record(Command{Kind: CmdSetPipeline, Pipeline: pipeline})
}

// SetBindGroup records a bind group bind. WebGPU allows indices 0-3.
func (r *Recorder) SetBindGroup(index uint32, group hal.BindGroup, offsets []uint32) {
	if index > 3 {
		r.mu.Lock()
		if r.err == nil {
			r.err = fmt.Errorf("%w: index %d", ErrBindGroupIndexOutOfRange, index)
		}
		r.mu.Unlock()
		return
	}
	var offs []uint32
	if len(offsets) > 0 {
		offs = append(offs, offsets...)
	}
	r.record(Command{Kind: CmdSetBindGroup, Index: index, BindGroup: group, Offsets: offs})
}

// SetVertexBuffer records a vertex buffer bind.
func (r *Recorder) SetVertexBuffer(slot uint32, buffer hal.Buffer, offset uint64) {
	r.record(Command{Kind: CmdSetVertexBuffer, Index: slot, Buffer: buffer, Offset: offset})
}

// SetIndexBuffer records an index buffer bind.
func (r *Recorder) SetIndexBuffer(buffer hal.Buffer, format gputypes.IndexFormat, offset uint64) {
	r.record(Command{Kind: CmdSetIndexBuffer, Buffer: buffer, Format: format, Offset: offset})
}

// SetScissorRect records a scissor rectangle change.
func (r *Recorder) SetScissorRect(x, y, width, height uint32) {
	r.record(Command{Kind: CmdSetScissorRect, Scissor: ScissorRect{X: x, Y: y, Width: width, Height: height}})
}

// DrawIndexed records an indexed draw.
func (r *Recorder) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	r.record(Command{Kind: CmdDrawIndexed, Draw: DrawIndexedArgs{
		IndexCount:    indexCount,
		InstanceCount: instanceCount,
		FirstIndex:    firstIndex,
		BaseVertex:    baseVertex,
		FirstInstance: firstInstance,
	}})
}

// Replay plays every recorded command into dst in order. The recorder
// keeps its commands, so it can be replayed again.
func (r *Recorder) Replay(dst PassEncoder) error {
	if dst == nil {
		return ErrNilReplayTarget
	}
	for _, c := range r.Commands() {
		switch c.Kind {
		case CmdSetPipeline:
			dst.SetPipeline(c.Pipeline)
		case CmdSetBindGroup:
			dst.SetBindGroup(c.Index, c.BindGroup, c.Offsets)
		case CmdSetVertexBuffer:
			dst.SetVertexBuffer(c.Index, c.Buffer, c.Offset)
		case CmdSetIndexBuffer:
			dst.SetIndexBuffer(c.Buffer, c.Format, c.Offset)
		case CmdSetScissorRect:
			s := c.Scissor
			dst.SetScissorRect(s.X, s.Y, s.Width, s.Height)
		case CmdDrawIndexed:
			d := c.Draw
			dst.DrawIndexed(d.IndexCount, d.InstanceCount, d.FirstIndex, d.BaseVertex, d.FirstInstance)
		}
	}
	return nil
}

var _ PassEncoder = (*Recorder)(nil)
