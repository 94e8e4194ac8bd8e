// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imrender

import (
	"testing"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/imrender/draw"
)

// createNoopDevice opens a device on the noop backend.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	instance, err := noop.API{}.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

// readBuffer copies n bytes from the start of a noop buffer.
func readBuffer(t *testing.T, device hal.Device, buf hal.Buffer, n uint64) []byte {
	t.Helper()
	m, err := device.MapBuffer(buf, 0, n)
	if err != nil {
		t.Fatalf("MapBuffer: %v", err)
	}
	defer func() { _ = device.UnmapBuffer(buf) }()
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(m.Ptr), n))
	return out
}

// fakeAtlas is a 2x2 white font atlas.
type fakeAtlas struct {
	id      draw.TextureID
	cleared bool
	width   int
	height  int
}

func newFakeAtlas() *fakeAtlas { return &fakeAtlas{width: 2, height: 2} }

func (a *fakeAtlas) RGBA32() ([]byte, int, int) {
	pix := make([]byte, a.width*a.height*4)
	for i := range pix {
		pix[i] = 0xFF
	}
	a.cleared = false
	return pix, a.width, a.height
}

func (a *fakeAtlas) ClearTexData()                  { a.cleared = true }
func (a *fakeAtlas) TextureID() draw.TextureID      { return a.id }
func (a *fakeAtlas) SetTextureID(id draw.TextureID) { a.id = id }

type fakeContext struct{ atlas *fakeAtlas }

func (c fakeContext) Fonts() draw.FontAtlas { return c.atlas }

// testRenderer bundles a renderer on a noop device with its font atlas.
type testRenderer struct {
	*Renderer
	device hal.Device
	queue  hal.Queue
	atlas  *fakeAtlas
}

func newTestRenderer(t *testing.T, opts ...Option) *testRenderer {
	t.Helper()
	device, queue, cleanup := createNoopDevice(t)
	atlas := newFakeAtlas()
	r, err := New(fakeContext{atlas}, device, queue, gputypes.TextureFormatBGRA8Unorm, opts...)
	if err != nil {
		cleanup()
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() {
		r.Destroy()
		cleanup()
	})
	return &testRenderer{Renderer: r, device: device, queue: queue, atlas: atlas}
}

// quad returns a list with 4 vertices and 6 indices drawn with tex.
func quad(tex draw.TextureID, clip draw.Rect) *draw.List {
	return &draw.List{
		Vertices: make([]draw.Vertex, 4),
		Indices:  []draw.Index{0, 1, 2, 0, 2, 3},
		Cmds:     []draw.Cmd{draw.Elements{Count: 6, ClipRect: clip, Texture: tex}},
	}
}

// triangle returns a list with 3 vertices and 3 indices drawn with tex.
func triangle(tex draw.TextureID) *draw.List {
	return &draw.List{
		Vertices: make([]draw.Vertex, 3),
		Indices:  []draw.Index{0, 1, 2},
		Cmds:     []draw.Cmd{draw.Elements{Count: 3, ClipRect: draw.Rect{MaxX: 10, MaxY: 10}, Texture: tex}},
	}
}

func frame(lists ...*draw.List) *draw.Data {
	return &draw.Data{DisplaySize: [2]float32{800, 600}, Lists: lists}
}

// draws returns the DrawIndexed commands of rec.
func draws(rec *Recorder) []Command {
	var out []Command
	for _, c := range rec.Commands() {
		if c.Kind == CmdDrawIndexed {
			out = append(out, c)
		}
	}
	return out
}

// scissors returns the SetScissorRect commands of rec.
func scissors(rec *Recorder) []Command {
	var out []Command
	for _, c := range rec.Commands() {
		if c.Kind == CmdSetScissorRect {
			out = append(out, c)
		}
	}
	return out
}
