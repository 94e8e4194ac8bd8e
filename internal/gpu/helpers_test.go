// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"testing"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// createNoopDevice opens a device on the noop backend.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	instance, err := noop.API{}.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		t.Fatal("noop backend reported no adapters")
	}
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

// countingQueue counts writes issued through it.
type countingQueue struct {
	hal.Queue
	bufferWrites  int
	textureWrites int
	lastLayout    hal.ImageDataLayout
	lastSize      hal.Extent3D
	lastTexBytes  int
}

func (q *countingQueue) WriteBuffer(buffer hal.Buffer, offset uint64, data []byte) error {
	q.bufferWrites++
	return q.Queue.WriteBuffer(buffer, offset, data)
}

func (q *countingQueue) WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D) error {
	q.textureWrites++
	q.lastLayout = *layout
	q.lastSize = *size
	q.lastTexBytes = len(data)
	return q.Queue.WriteTexture(dst, data, layout, size)
}

// destroyLog records the order of Destroy* calls.
type destroyLog struct {
	hal.Device
	calls []string
}

func (d *destroyLog) DestroyBindGroup(g hal.BindGroup) {
	d.calls = append(d.calls, "BindGroup")
	d.Device.DestroyBindGroup(g)
}

func (d *destroyLog) DestroySampler(s hal.Sampler) {
	d.calls = append(d.calls, "Sampler")
	d.Device.DestroySampler(s)
}

func (d *destroyLog) DestroyTextureView(v hal.TextureView) {
	d.calls = append(d.calls, "TextureView")
	d.Device.DestroyTextureView(v)
}

func (d *destroyLog) DestroyTexture(tex hal.Texture) {
	d.calls = append(d.calls, "Texture")
	d.Device.DestroyTexture(tex)
}
