// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package stream stages a frame's vertices and indices for upload.
//
// A Stream is allocated once at fixed capacity and reused every frame:
// draw lists are appended in order, the packed bytes are flushed to the GPU
// in one write per buffer, and the staging arrays are truncated for the
// next frame.
package stream

import (
	"errors"
	"fmt"

	"github.com/gogpu/imrender/draw"
)

// ErrCapacityExceeded is returned by Append when a list does not fit.
var ErrCapacityExceeded = errors.New("stream: capacity exceeded")

// DefaultCapacity is the default element capacity of each array.
// Appends keep the running total strictly below it, so every staged index
// value range fits a 16-bit index.
const DefaultCapacity = 1 << 16

// Offsets is where a list's data landed, in elements.
type Offsets struct {
	Index  uint32
	Vertex uint32
}

// Uploader receives the packed, 4-byte padded arrays on Flush.
type Uploader interface {
	WriteIndices(data []byte) error
	WriteVertices(data []byte) error
}

// Stream is an append-only staging area for one frame of geometry.
// It is not safe for concurrent use.
type Stream struct {
	indexCap  int
	vertexCap int

	indices  []byte
	vertices []byte
}

// New creates a stream holding fewer than indexCap indices and fewer than
// vertexCap vertices per frame.
func New(indexCap, vertexCap int) *Stream {
	if indexCap <= 0 {
		indexCap = DefaultCapacity
	}
	if vertexCap <= 0 {
		vertexCap = DefaultCapacity
	}
	return &Stream{
		indexCap:  indexCap,
		vertexCap: vertexCap,
		indices:   make([]byte, 0, Align4(indexCap*draw.IndexSize)),
		vertices:  make([]byte, 0, Align4(vertexCap*draw.VertexSize)),
	}
}

// IndexCapacity returns the configured index capacity.
func (s *Stream) IndexCapacity() int { return s.indexCap }

// VertexCapacity returns the configured vertex capacity.
func (s *Stream) VertexCapacity() int { return s.vertexCap }

// Len returns the number of staged indices and vertices.
func (s *Stream) Len() (indices, vertices int) {
	return len(s.indices) / draw.IndexSize, len(s.vertices) / draw.VertexSize
}

// Append stages one list's geometry and returns its offsets.
// If either array would reach its capacity nothing is written and
// ErrCapacityExceeded is returned.
func (s *Stream) Append(vertices []draw.Vertex, indices []draw.Index) (Offsets, error) {
	idxCount, vtxCount := s.Len()
	if idxCount+len(indices) >= s.indexCap {
		return Offsets{}, fmt.Errorf("%w: %d indices staged, %d more, capacity %d",
			ErrCapacityExceeded, idxCount, len(indices), s.indexCap)
	}
	if vtxCount+len(vertices) >= s.vertexCap {
		return Offsets{}, fmt.Errorf("%w: %d vertices staged, %d more, capacity %d",
			ErrCapacityExceeded, vtxCount, len(vertices), s.vertexCap)
	}

	s.indices = append(s.indices, asBytes(indices)...)
	s.vertices = append(s.vertices, asBytes(vertices)...)

	return Offsets{
		Index:  uint32(idxCount), //nolint:gosec // bounded by capacity
		Vertex: uint32(vtxCount), //nolint:gosec // bounded by capacity
	}, nil
}

// IndexBytes returns the staged index bytes. The slice is only valid until
// the next Append, Flush or Reset.
func (s *Stream) IndexBytes() []byte { return s.indices }

// VertexBytes returns the staged vertex bytes. The slice is only valid
// until the next Append, Flush or Reset.
func (s *Stream) VertexBytes() []byte { return s.vertices }

// Flush pads both arrays to a multiple of 4 bytes, writes each with a
// single call and empties the stream. Empty arrays are not written.
// The stream is emptied even when a write fails.
func (s *Stream) Flush(u Uploader) error {
	defer s.Reset()

	if len(s.indices) > 0 {
		s.indices = pad4(s.indices)
		if err := u.WriteIndices(s.indices); err != nil {
			return fmt.Errorf("stream: upload indices: %w", err)
		}
	}
	if len(s.vertices) > 0 {
		s.vertices = pad4(s.vertices)
		if err := u.WriteVertices(s.vertices); err != nil {
			return fmt.Errorf("stream: upload vertices: %w", err)
		}
	}
	return nil
}

// Reset drops staged data, keeping the allocated capacity.
func (s *Stream) Reset() {
	s.indices = s.indices[:0]
	s.vertices = s.vertices[:0]
}

// Align4 rounds n up to a multiple of 4.
func Align4(n int) int {
	return (n + 3) &^ 3
}

func pad4(b []byte) []byte {
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	return b
}
