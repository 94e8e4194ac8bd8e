// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imrender

import "github.com/gogpu/imrender/internal/gpu"

// Recorder is a PassEncoder that stores commands for inspection or later
// replay into real render passes.
type Recorder = gpu.Recorder

// Command is one command stored by a Recorder.
type Command = gpu.Command

// CommandKind identifies a recorded command.
type CommandKind = gpu.CommandKind

// Recorded command kinds.
const (
	CmdSetPipeline     = gpu.CmdSetPipeline
	CmdSetBindGroup    = gpu.CmdSetBindGroup
	CmdSetVertexBuffer = gpu.CmdSetVertexBuffer
	CmdSetIndexBuffer  = gpu.CmdSetIndexBuffer
	CmdSetScissorRect  = gpu.CmdSetScissorRect
	CmdDrawIndexed     = gpu.CmdDrawIndexed
)

// ErrPassEnded is reported by Recorder.Err for commands issued after End.
var ErrPassEnded = gpu.ErrPassEnded

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return gpu.NewRecorder() }
