// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imrender

import "fmt"

// FrameStats describes the last rendered frame.
type FrameStats struct {
	// Lists is the number of draw lists staged and drawn.
	Lists int

	// DroppedLists is the number of draw lists skipped because they did
	// not fit the remaining index or vertex capacity.
	DroppedLists int

	// DrawCalls is the number of DrawIndexed commands issued.
	DrawCalls int

	// Callbacks is the number of raw callbacks invoked.
	Callbacks int

	// SkippedCmds counts commands that produced no GPU work, such as
	// zero-count element batches.
	SkippedCmds int

	// Vertices and Indices are the staged element counts.
	Vertices int
	Indices  int
}

// String returns a one-line summary.
func (s FrameStats) String() string {
	return fmt.Sprintf("lists=%d dropped=%d draws=%d callbacks=%d skipped=%d vertices=%d indices=%d",
		s.Lists, s.DroppedLists, s.DrawCalls, s.Callbacks, s.SkippedCmds, s.Vertices, s.Indices)
}
