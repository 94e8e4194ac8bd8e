// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Texture creation errors.
var (
	// ErrTextureSizeMismatch is returned when the pixel data length is not
	// width*height*4.
	ErrTextureSizeMismatch = errors.New("gpu: pixel data size does not match texture dimensions")

	// ErrInvalidDimensions is returned for a zero or negative width or
	// height, or for dimensions whose pixel data cannot be addressed.
	ErrInvalidDimensions = errors.New("gpu: invalid texture dimensions")
)

// bytesPerPixel is the size of one RGBA8 texel.
const bytesPerPixel = 4

// Texture is an immutable RGBA8 texture together with the bind group that
// exposes it to the UI shader (binding 0: view, binding 1: sampler).
type Texture struct {
	device hal.Device

	texture   hal.Texture
	view      hal.TextureView
	sampler   hal.Sampler
	bindGroup hal.BindGroup

	width  uint32
	height uint32
}

// NewTexture creates a texture of the given size, uploads pixels with a
// single queue write and builds its bind group against layout.
//
// pixels must hold exactly width*height*4 bytes of RGBA8 data. Validation
// happens before any GPU object is created.
func NewTexture(device hal.Device, queue hal.Queue, layout hal.BindGroupLayout, width, height int, pixels []byte) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	want, ok := pixelBytes(width, height)
	if !ok {
		return nil, fmt.Errorf("%w: %dx%d is too large", ErrInvalidDimensions, width, height)
	}
	if uint64(len(pixels)) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %dx%d",
			ErrTextureSizeMismatch, len(pixels), want, width, height)
	}

	t := &Texture{
		device: device,
		width:  uint32(width),  //nolint:gosec // bounded by pixelBytes
		height: uint32(height), //nolint:gosec // bounded by pixelBytes
	}
	if err := t.create(queue, layout, pixels); err != nil {
		t.Release()
		return nil, err
	}

	slogger().Debug("texture created", "width", width, "height", height)
	return t, nil
}

// pixelBytes returns the RGBA8 data size of a width x height texture.
// It reports false when either side does not fit a uint32 extent or the
// size cannot be held in a byte slice.
func pixelBytes(width, height int) (uint64, bool) {
	w, h := uint64(width), uint64(height)
	if w > math.MaxUint32 || h > math.MaxUint32 {
		return 0, false
	}
	texels := w * h
	if texels > math.MaxUint64/bytesPerPixel {
		return 0, false
	}
	n := texels * bytesPerPixel
	if n > math.MaxInt {
		return 0, false
	}
	return n, true
}

func (t *Texture) create(queue hal.Queue, layout hal.BindGroupLayout, pixels []byte) error {
	size := hal.Extent3D{Width: t.width, Height: t.height, DepthOrArrayLayers: 1}

	tex, err := t.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "imrender_texture",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create texture: %w", err)
	}
	t.texture = tex

	err = queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
			Aspect:   gputypes.TextureAspectAll,
		},
		pixels,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  t.width * bytesPerPixel,
			RowsPerImage: t.height,
		},
		&size,
	)
	if err != nil {
		return fmt.Errorf("upload texture: %w", err)
	}

	view, err := t.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "imrender_texture_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		return fmt.Errorf("create texture view: %w", err)
	}
	t.view = view

	sampler, err := t.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "imrender_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		return fmt.Errorf("create sampler: %w", err)
	}
	t.sampler = sampler

	group, err := t.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "imrender_texture_bind_group",
		Layout: layout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.TextureViewBinding{TextureView: view.NativeHandle()}},
			{Binding: 1, Resource: gputypes.SamplerBinding{Sampler: sampler.NativeHandle()}},
		},
	})
	if err != nil {
		return fmt.Errorf("create texture bind group: %w", err)
	}
	t.bindGroup = group
	return nil
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return int(t.width) }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return int(t.height) }

// BindGroup returns the bind group for slot 1 of the UI pipeline.
func (t *Texture) BindGroup() hal.BindGroup { return t.bindGroup }

// SizeBytes returns the GPU memory held by the texture.
func (t *Texture) SizeBytes() uint64 {
	return uint64(t.width) * uint64(t.height) * bytesPerPixel
}

// Release destroys the GPU objects in reverse creation order.
// Safe to call more than once.
func (t *Texture) Release() {
	if t == nil || t.device == nil {
		return
	}
	if t.bindGroup != nil {
		t.device.DestroyBindGroup(t.bindGroup)
		t.bindGroup = nil
	}
	if t.sampler != nil {
		t.device.DestroySampler(t.sampler)
		t.sampler = nil
	}
	if t.view != nil {
		t.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.texture != nil {
		t.device.DestroyTexture(t.texture)
		t.texture = nil
	}
}
