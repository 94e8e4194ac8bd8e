// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stream

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/gogpu/imrender/draw"
)

// captureUploader records every write it receives.
type captureUploader struct {
	indexWrites  [][]byte
	vertexWrites [][]byte
	failIndices  error
}

func (u *captureUploader) WriteIndices(data []byte) error {
	if u.failIndices != nil {
		return u.failIndices
	}
	u.indexWrites = append(u.indexWrites, append([]byte(nil), data...))
	return nil
}

func (u *captureUploader) WriteVertices(data []byte) error {
	u.vertexWrites = append(u.vertexWrites, append([]byte(nil), data...))
	return nil
}

func makeGeometry(nv, ni int, seed float32) ([]draw.Vertex, []draw.Index) {
	vs := make([]draw.Vertex, nv)
	for i := range vs {
		f := seed + float32(i)
		vs[i] = draw.Vertex{Pos: [2]float32{f, f + 0.5}, UV: [2]float32{f / 10, f / 20}, Col: uint32(i) + 1}
	}
	is := make([]draw.Index, ni)
	for i := range is {
		is[i] = draw.Index(i % max(nv, 1))
	}
	return vs, is
}

func TestAppendOffsetsAreCumulative(t *testing.T) {
	s := New(1024, 1024)
	sizes := []struct{ nv, ni int }{{4, 6}, {3, 3}, {0, 0}, {10, 24}, {1, 3}}

	var wantIdx, wantVtx uint32
	prev := Offsets{Index: 0, Vertex: 0}
	for i, sz := range sizes {
		vs, is := makeGeometry(sz.nv, sz.ni, float32(i))
		off, err := s.Append(vs, is)
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if off.Index != wantIdx || off.Vertex != wantVtx {
			t.Errorf("append %d: offsets = %+v, want {%d %d}", i, off, wantIdx, wantVtx)
		}
		if i > 0 && (off.Index < prev.Index || off.Vertex < prev.Vertex) {
			t.Errorf("append %d: offsets went backwards: %+v after %+v", i, off, prev)
		}
		prev = off
		wantIdx += uint32(sz.ni)
		wantVtx += uint32(sz.nv)
	}

	ni, nv := s.Len()
	if ni != int(wantIdx) || nv != int(wantVtx) {
		t.Errorf("Len = (%d, %d), want (%d, %d)", ni, nv, wantIdx, wantVtx)
	}
}

func TestAppendPacksBytesInOrder(t *testing.T) {
	s := New(64, 64)
	v1, i1 := makeGeometry(2, 3, 1)
	v2, i2 := makeGeometry(1, 3, 7)
	if _, err := s.Append(v1, i1); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Append(v2, i2); err != nil {
		t.Fatal(err)
	}

	vb := s.VertexBytes()
	if len(vb) != 3*draw.VertexSize {
		t.Fatalf("vertex bytes = %d, want %d", len(vb), 3*draw.VertexSize)
	}
	// Third vertex is v2[0].
	third := vb[2*draw.VertexSize:]
	if x := math.Float32frombits(binary.LittleEndian.Uint32(third[0:])); x != v2[0].Pos[0] {
		t.Errorf("third vertex x = %v, want %v", x, v2[0].Pos[0])
	}
	if u := math.Float32frombits(binary.LittleEndian.Uint32(third[8:])); u != v2[0].UV[0] {
		t.Errorf("third vertex u = %v, want %v", u, v2[0].UV[0])
	}
	if c := binary.LittleEndian.Uint32(third[16:]); c != v2[0].Col {
		t.Errorf("third vertex col = %#x, want %#x", c, v2[0].Col)
	}

	ib := s.IndexBytes()
	want := make([]byte, 0, 12)
	for _, ix := range append(append([]draw.Index(nil), i1...), i2...) {
		want = binary.LittleEndian.AppendUint16(want, ix)
	}
	if !bytes.Equal(ib, want) {
		t.Errorf("index bytes = %v, want %v", ib, want)
	}
}

func TestAppendOverflowLeavesContentsUntouched(t *testing.T) {
	tests := []struct {
		name     string
		idxCap   int
		vtxCap   int
		first    [2]int // vertices, indices
		overflow [2]int
	}{
		{"index reaches capacity", 12, 100, [2]int{4, 6}, [2]int{1, 6}},
		{"index above capacity", 12, 100, [2]int{4, 6}, [2]int{1, 9}},
		{"vertex reaches capacity", 100, 8, [2]int{4, 6}, [2]int{4, 3}},
		{"vertex above capacity", 100, 8, [2]int{4, 6}, [2]int{5, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.idxCap, tt.vtxCap)
			vs, is := makeGeometry(tt.first[0], tt.first[1], 0)
			if _, err := s.Append(vs, is); err != nil {
				t.Fatalf("first append: %v", err)
			}
			beforeIdx := append([]byte(nil), s.IndexBytes()...)
			beforeVtx := append([]byte(nil), s.VertexBytes()...)

			vs, is = makeGeometry(tt.overflow[0], tt.overflow[1], 50)
			_, err := s.Append(vs, is)
			if !errors.Is(err, ErrCapacityExceeded) {
				t.Fatalf("overflow append err = %v, want ErrCapacityExceeded", err)
			}
			if !bytes.Equal(s.IndexBytes(), beforeIdx) {
				t.Error("index bytes changed after failed append")
			}
			if !bytes.Equal(s.VertexBytes(), beforeVtx) {
				t.Error("vertex bytes changed after failed append")
			}
		})
	}
}

func TestAppendAfterOverflowStillAcceptsSmallerList(t *testing.T) {
	s := New(10, 10)
	if _, err := s.Append(makeGeometry(4, 6, 0)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Append(makeGeometry(4, 6, 0)); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("err = %v, want ErrCapacityExceeded", err)
	}
	off, err := s.Append(makeGeometry(3, 3, 0))
	if err != nil {
		t.Fatalf("smaller append: %v", err)
	}
	if off.Index != 6 || off.Vertex != 4 {
		t.Errorf("offsets = %+v, want {6 4}", off)
	}
}

func TestDefaultCapacityFits16BitRange(t *testing.T) {
	s := New(0, 0)
	if s.IndexCapacity() != DefaultCapacity || s.VertexCapacity() != DefaultCapacity {
		t.Fatalf("capacities = %d/%d, want %d", s.IndexCapacity(), s.VertexCapacity(), DefaultCapacity)
	}
	vs, is := makeGeometry(math.MaxUint16, math.MaxUint16, 0)
	if _, err := s.Append(vs, is); err != nil {
		t.Fatalf("65535 elements should fit: %v", err)
	}
	if _, err := s.Append(makeGeometry(1, 0, 0)); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("65536th vertex err = %v, want ErrCapacityExceeded", err)
	}
}

func TestFlushPadsAndClears(t *testing.T) {
	s := New(64, 64)
	// 3 indices = 6 bytes, padded to 8.
	if _, err := s.Append(makeGeometry(3, 3, 0)); err != nil {
		t.Fatal(err)
	}
	u := &captureUploader{}
	if err := s.Flush(u); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(u.indexWrites) != 1 || len(u.vertexWrites) != 1 {
		t.Fatalf("writes = %d/%d, want 1/1", len(u.indexWrites), len(u.vertexWrites))
	}
	if got := len(u.indexWrites[0]); got != 8 {
		t.Errorf("index write = %d bytes, want 8", got)
	}
	if tail := u.indexWrites[0][6:]; tail[0] != 0 || tail[1] != 0 {
		t.Errorf("padding = %v, want zeros", tail)
	}
	if got := len(u.vertexWrites[0]); got != 60 {
		t.Errorf("vertex write = %d bytes, want 60", got)
	}
	if ni, nv := s.Len(); ni != 0 || nv != 0 {
		t.Errorf("Len after Flush = (%d, %d), want (0, 0)", ni, nv)
	}
}

func TestFlushAlignedLengthIsNotPadded(t *testing.T) {
	s := New(64, 64)
	if _, err := s.Append(makeGeometry(4, 6, 0)); err != nil {
		t.Fatal(err)
	}
	u := &captureUploader{}
	if err := s.Flush(u); err != nil {
		t.Fatal(err)
	}
	if got := len(u.indexWrites[0]); got != 12 {
		t.Errorf("index write = %d bytes, want 12", got)
	}
}

func TestFlushEmptyWritesNothing(t *testing.T) {
	s := New(64, 64)
	u := &captureUploader{}
	if err := s.Flush(u); err != nil {
		t.Fatal(err)
	}
	if len(u.indexWrites) != 0 || len(u.vertexWrites) != 0 {
		t.Errorf("empty flush wrote %d/%d buffers", len(u.indexWrites), len(u.vertexWrites))
	}
}

func TestNoCarryoverBetweenFrames(t *testing.T) {
	s := New(64, 64)
	u := &captureUploader{}

	if _, err := s.Append(makeGeometry(5, 9, 100)); err != nil {
		t.Fatal(err)
	}
	if err := s.Flush(u); err != nil {
		t.Fatal(err)
	}

	vs, is := makeGeometry(2, 4, 7)
	off, err := s.Append(vs, is)
	if err != nil {
		t.Fatal(err)
	}
	if off.Index != 0 || off.Vertex != 0 {
		t.Errorf("first offsets of new frame = %+v, want zero", off)
	}
	if !bytes.Equal(s.VertexBytes(), asBytes(vs)) {
		t.Error("vertex bytes contain data from the previous frame")
	}
	if !bytes.Equal(s.IndexBytes(), asBytes(is)) {
		t.Error("index bytes contain data from the previous frame")
	}
}

func TestFlushErrorStillClears(t *testing.T) {
	s := New(64, 64)
	if _, err := s.Append(makeGeometry(3, 3, 0)); err != nil {
		t.Fatal(err)
	}
	boom := errors.New("boom")
	err := s.Flush(&captureUploader{failIndices: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	if ni, nv := s.Len(); ni != 0 || nv != 0 {
		t.Errorf("Len after failed Flush = (%d, %d), want (0, 0)", ni, nv)
	}
}

func TestAppendDoesNotReallocate(t *testing.T) {
	s := New(16, 16)
	idxPtr := &s.indices[:1][0]
	vtxPtr := &s.vertices[:1][0]
	for range 3 {
		if _, err := s.Append(makeGeometry(4, 4, 0)); err != nil {
			break
		}
	}
	if err := s.Flush(&captureUploader{}); err != nil {
		t.Fatal(err)
	}
	if &s.indices[:1][0] != idxPtr || &s.vertices[:1][0] != vtxPtr {
		t.Error("staging arrays were reallocated")
	}
}

func TestAlign4(t *testing.T) {
	for in, want := range map[int]int{0: 0, 1: 4, 2: 4, 3: 4, 4: 4, 5: 8, 6: 8, 131070: 131072} {
		if got := Align4(in); got != want {
			t.Errorf("Align4(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestAsBytesEmpty(t *testing.T) {
	if b := asBytes[draw.Index](nil); b != nil {
		t.Errorf("asBytes(nil) = %v, want nil", b)
	}
}
