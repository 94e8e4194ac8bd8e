// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imrender

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/imrender/draw"
	"github.com/gogpu/imrender/internal/gpu"
	"github.com/gogpu/imrender/internal/registry"
	"github.com/gogpu/imrender/internal/stream"
)

// PassEncoder is the part of a render pass the renderer records into.
// hal.RenderPassEncoder and Recorder both satisfy it.
type PassEncoder = gpu.PassEncoder

// Renderer draws immediate-mode UI frames into a render pass.
//
// A Renderer owns one pipeline, fixed-size index and vertex buffers and a
// table of textures. It is bound to one device and queue for its whole
// life. It is not safe for concurrent use: Render, the texture methods and
// Destroy must be called from one goroutine, and the caller must not start
// a new frame before the GPU has consumed the previous one.
type Renderer struct {
	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat
	config Config

	pipeline *gpu.Pipeline
	stream   *stream.Stream
	textures *registry.Table[*gpu.Texture]

	// Per-frame scratch, reused across frames.
	placed []placedList
	ops    []drawOp

	stats     FrameStats
	destroyed bool
}

// New creates a renderer for targets of the given color format, then
// uploads the font atlas of ctx as its first texture.
func New(ctx draw.Context, device hal.Device, queue hal.Queue, format gputypes.TextureFormat, opts ...Option) (*Renderer, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	pipeline, err := gpu.NewPipeline(device, queue, gpu.PipelineConfig{
		Format:         format,
		IndexCapacity:  cfg.IndexCapacity,
		VertexCapacity: cfg.VertexCapacity,
		ShaderFormat:   cfg.ShaderFormat,
		Label:          cfg.Label,
	})
	if err != nil {
		return nil, fmt.Errorf("imrender: %w", err)
	}

	r := &Renderer{
		device:   device,
		queue:    queue,
		format:   format,
		config:   cfg,
		pipeline: pipeline,
		stream:   stream.New(cfg.IndexCapacity, cfg.VertexCapacity),
		textures: registry.New[*gpu.Texture](),
	}
	if err := r.ReloadFontTexture(ctx); err != nil {
		r.Destroy()
		return nil, err
	}

	slogger().Info("renderer created",
		"format", format,
		"index_capacity", cfg.IndexCapacity,
		"vertex_capacity", cfg.VertexCapacity,
	)
	return r, nil
}

// NewFromProvider creates a renderer on a device shared through a
// gpucontext.DeviceProvider. The provider must expose HAL handles through
// HalDevice/HalQueue, or return them directly from Device/Queue. The
// target format is the provider's surface format, or BGRA8Unorm when the
// provider is headless.
func NewFromProvider(ctx draw.Context, provider gpucontext.DeviceProvider, opts ...Option) (*Renderer, error) {
	if provider == nil {
		return nil, ErrNilDevice
	}
	device, queue, err := halFromProvider(provider)
	if err != nil {
		return nil, err
	}
	format := provider.SurfaceFormat()
	if format == gputypes.TextureFormatUndefined {
		slogger().Debug("provider has no surface, using BGRA8Unorm")
		format = gputypes.TextureFormatBGRA8Unorm
	}
	return New(ctx, device, queue, format, opts...)
}

func halFromProvider(provider gpucontext.DeviceProvider) (hal.Device, hal.Queue, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	var dev, q any
	if hp, ok := provider.(halProvider); ok {
		dev, q = hp.HalDevice(), hp.HalQueue()
	} else {
		dev, q = provider.Device(), provider.Queue()
	}

	device, ok := dev.(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("%w: device is %T", ErrNoHALAccess, dev)
	}
	queue, ok := q.(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("%w: queue is %T", ErrNoHALAccess, q)
	}
	return device, queue, nil
}

// Config returns the configuration the renderer was built with.
func (r *Renderer) Config() Config { return r.config }

// Format returns the color target format of the pipeline.
func (r *Renderer) Format() gputypes.TextureFormat { return r.format }

// Stats returns statistics of the last Render call.
func (r *Renderer) Stats() FrameStats { return r.stats }

// Render records one frame of draw data into pass.
//
// Lists are staged in order; a list that would overflow the index or
// vertex capacity is dropped and later lists are still drawn. Every
// texture referenced by the frame is resolved before anything is written
// to the GPU or recorded: an unknown texture aborts the frame with
// ErrTextureNotFound and leaves pass untouched. An Elements command whose
// index range runs past its list's indices aborts the same way with
// ErrIndexRange; commands with a zero count are skipped. A frame with an
// empty display rectangle records nothing.
func (r *Renderer) Render(pass PassEncoder, data *draw.Data) error {
	if r.destroyed {
		return ErrRendererDestroyed
	}
	if data == nil {
		return ErrNilDrawData
	}

	r.stream.Reset()
	r.stats = FrameStats{}
	if data.DisplaySize[0] <= 0 || data.DisplaySize[1] <= 0 {
		return nil
	}

	stats := FrameStats{}
	placed := r.placed[:0]
	for i, list := range data.Lists {
		if list == nil {
			continue
		}
		off, err := r.stream.Append(list.Vertices, list.Indices)
		if errors.Is(err, stream.ErrCapacityExceeded) {
			stats.DroppedLists++
			slogger().Warn("draw list dropped",
				"list", i,
				"vertices", len(list.Vertices),
				"indices", len(list.Indices),
				"err", err,
			)
			continue
		}
		if err != nil {
			r.stream.Reset()
			return err
		}
		placed = append(placed, placedList{list: list, offset: off})
	}
	r.placed = placed
	stats.Lists = len(placed)
	stats.Indices, stats.Vertices = r.stream.Len()

	ops, skipped, err := planDraws(r.ops[:0], placed)
	r.ops = ops
	if err != nil {
		r.stream.Reset()
		return err
	}
	stats.SkippedCmds = skipped

	if err := r.resolveTextures(ops); err != nil {
		r.stream.Reset()
		return err
	}

	if err := r.pipeline.WriteProjection(OrthoProjection(data.DisplayPos, data.DisplaySize)); err != nil {
		r.stream.Reset()
		return fmt.Errorf("imrender: %w", err)
	}
	if err := r.stream.Flush(r.pipeline); err != nil {
		return fmt.Errorf("imrender: %w", err)
	}

	r.pipeline.Bind(pass)
	for i := range ops {
		op := &ops[i]
		switch op.kind {
		case opDraw:
			s := op.scissor
			pass.SetScissorRect(s.X, s.Y, s.Width, s.Height)
			pass.SetBindGroup(1, op.bindGroup, nil)
			pass.DrawIndexed(op.indexCount, 1, op.firstIndex, op.baseVertex, 0)
			stats.DrawCalls++
		case opCallback:
			if op.callback.Func != nil {
				op.callback.Func(op.list, op.callback)
				stats.Callbacks++
			}
		}
	}

	r.stats = stats
	slogger().Debug("frame rendered",
		"lists", stats.Lists,
		"draws", stats.DrawCalls,
		"vertices", stats.Vertices,
		"indices", stats.Indices,
	)
	return nil
}

// resolveTextures looks up the bind group of every draw op.
func (r *Renderer) resolveTextures(ops []drawOp) error {
	for i := range ops {
		if ops[i].kind != opDraw {
			continue
		}
		tex, err := r.textures.Get(ops[i].texture)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrTextureNotFound, err)
		}
		ops[i].bindGroup = tex.BindGroup()
	}
	return nil
}

// Destroy releases every texture and the pipeline. The renderer cannot be
// used afterwards. Calling Destroy more than once is a no-op.
func (r *Renderer) Destroy() {
	if r == nil || r.destroyed {
		return
	}
	r.destroyed = true
	r.textures.Clear()
	r.pipeline.Destroy()
	r.stream.Reset()
	slogger().Info("renderer destroyed")
}
