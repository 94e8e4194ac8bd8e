// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/imrender/draw"
	"github.com/gogpu/imrender/internal/stream"
)

// Pipeline errors.
var (
	// ErrNilDevice is returned when a pipeline is created without a device or queue.
	ErrNilDevice = errors.New("gpu: device or queue is nil")

	// ErrInvalidCapacity is returned for a non-positive buffer capacity.
	ErrInvalidCapacity = errors.New("gpu: buffer capacity must be positive")

	// ErrUploadTooLarge is returned when staged bytes exceed a geometry buffer.
	ErrUploadTooLarge = errors.New("gpu: upload exceeds buffer size")
)

// uniformSize is the size of the projection uniform: one mat4x4<f32>.
const uniformSize = 16 * 4

// PipelineConfig configures NewPipeline.
type PipelineConfig struct {
	// Format is the color format of the render target the pass draws into.
	Format gputypes.TextureFormat

	// IndexCapacity and VertexCapacity size the geometry buffers in
	// elements. They must match the stream feeding the pipeline.
	IndexCapacity  int
	VertexCapacity int

	// ShaderFormat selects WGSL or naga-compiled SPIR-V.
	ShaderFormat ShaderFormat

	// Label prefixes the debug labels of every GPU object.
	Label string
}

// DefaultPipelineConfig returns a configuration for a BGRA8 surface with
// the default stream capacities.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Format:         gputypes.TextureFormatBGRA8Unorm,
		IndexCapacity:  stream.DefaultCapacity,
		VertexCapacity: stream.DefaultCapacity,
		ShaderFormat:   ShaderWGSL,
		Label:          "imrender",
	}
}

// Pipeline owns the fixed GPU state of the UI renderer: bind group
// layouts, shader, render pipeline, the projection uniform and the index
// and vertex buffers. Buffers are sized once and never grow.
//
// Pipeline implements stream.Uploader.
type Pipeline struct {
	device hal.Device
	queue  hal.Queue
	config PipelineConfig

	uniformLayout hal.BindGroupLayout
	textureLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	shader        hal.ShaderModule
	pipeline      hal.RenderPipeline

	uniformBuf   hal.Buffer
	uniformGroup hal.BindGroup
	indexBuf     hal.Buffer
	vertexBuf    hal.Buffer

	indexBufSize  uint64
	vertexBufSize uint64
}

// NewPipeline creates every GPU object of the UI pipeline. On failure the
// objects created so far are destroyed.
func NewPipeline(device hal.Device, queue hal.Queue, config PipelineConfig) (*Pipeline, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	if config.IndexCapacity <= 0 || config.VertexCapacity <= 0 {
		return nil, fmt.Errorf("%w: indices=%d vertices=%d",
			ErrInvalidCapacity, config.IndexCapacity, config.VertexCapacity)
	}
	if config.Label == "" {
		config.Label = "imrender"
	}

	p := &Pipeline{
		device:        device,
		queue:         queue,
		config:        config,
		indexBufSize:  uint64(stream.Align4(config.IndexCapacity * draw.IndexSize)),   //nolint:gosec // positive
		vertexBufSize: uint64(stream.Align4(config.VertexCapacity * draw.VertexSize)), //nolint:gosec // positive
	}
	if err := p.createLayouts(); err != nil {
		p.Destroy()
		return nil, err
	}
	if err := p.createPipeline(); err != nil {
		p.Destroy()
		return nil, err
	}
	if err := p.createBuffers(); err != nil {
		p.Destroy()
		return nil, err
	}

	slogger().Info("ui pipeline created",
		"format", config.Format,
		"shader", config.ShaderFormat,
		"index_buffer", p.indexBufSize,
		"vertex_buffer", p.vertexBufSize,
	)
	return p, nil
}

func (p *Pipeline) label(name string) string {
	return p.config.Label + "_" + name
}

// createLayouts builds the two bind group layouts and the pipeline layout.
//
//	group 0: binding 0 projection uniform (vertex)
//	group 1: binding 0 texture, binding 1 sampler (fragment)
func (p *Pipeline) createLayouts() error {
	uniformLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: p.label("uniform_layout"),
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer: &gputypes.BufferBindingLayout{
					Type:           gputypes.BufferBindingTypeUniform,
					MinBindingSize: uniformSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create uniform layout: %w", err)
	}
	p.uniformLayout = uniformLayout

	textureLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: p.label("texture_layout"),
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create texture layout: %w", err)
	}
	p.textureLayout = textureLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            p.label("pipe_layout"),
		BindGroupLayouts: []hal.BindGroupLayout{p.uniformLayout, p.textureLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout
	return nil
}

// uiBlendState blends color with straight alpha and replaces destination
// alpha with source alpha.
func uiBlendState() gputypes.BlendState {
	return gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorSrcAlpha,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorZero,
			Operation: gputypes.BlendOperationAdd,
		},
	}
}

func (p *Pipeline) createPipeline() error {
	source, err := shaderSource(p.config.ShaderFormat)
	if err != nil {
		return err
	}
	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  p.label("shader"),
		Source: source,
	})
	if err != nil {
		return fmt.Errorf("create ui shader module: %w", err)
	}
	p.shader = shader

	blend := uiBlendState()
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  p.label("pipeline"),
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: vertexEntryPoint,
			Buffers:    uiVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: fragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.config.Format,
					Blend:     &blend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: gputypes.FrontFaceCW,
			CullMode:  gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create ui pipeline: %w", err)
	}
	p.pipeline = pipeline
	return nil
}

func (p *Pipeline) createBuffers() error {
	uniformBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: p.label("uniform_buffer"),
		Size:  uniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create uniform buffer: %w", err)
	}
	p.uniformBuf = uniformBuf

	uniformGroup, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  p.label("uniform_bind_group"),
		Layout: p.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(),
				Offset: 0,
				Size:   uniformSize,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("create uniform bind group: %w", err)
	}
	p.uniformGroup = uniformGroup

	indexBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: p.label("index_buffer"),
		Size:  p.indexBufSize,
		Usage: gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create index buffer: %w", err)
	}
	p.indexBuf = indexBuf

	vertexBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: p.label("vertex_buffer"),
		Size:  p.vertexBufSize,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create vertex buffer: %w", err)
	}
	p.vertexBuf = vertexBuf
	return nil
}

// Config returns the configuration the pipeline was built with.
func (p *Pipeline) Config() PipelineConfig { return p.config }

// TextureLayout returns the layout of bind group 1, used by NewTexture.
func (p *Pipeline) TextureLayout() hal.BindGroupLayout { return p.textureLayout }

// IndexBuffer returns the index buffer.
func (p *Pipeline) IndexBuffer() hal.Buffer { return p.indexBuf }

// VertexBuffer returns the vertex buffer.
func (p *Pipeline) VertexBuffer() hal.Buffer { return p.vertexBuf }

// UniformBuffer returns the projection uniform buffer.
func (p *Pipeline) UniformBuffer() hal.Buffer { return p.uniformBuf }

// WriteProjection uploads a column-major 4x4 matrix to the uniform buffer.
func (p *Pipeline) WriteProjection(m [16]float32) error {
	data := unsafe.Slice((*byte)(unsafe.Pointer(&m[0])), uniformSize)
	if err := p.queue.WriteBuffer(p.uniformBuf, 0, data); err != nil {
		return fmt.Errorf("write projection: %w", err)
	}
	return nil
}

// WriteIndices uploads padded index bytes to the start of the index buffer.
func (p *Pipeline) WriteIndices(data []byte) error {
	return p.write(p.indexBuf, p.indexBufSize, "indices", data)
}

// WriteVertices uploads padded vertex bytes to the start of the vertex buffer.
func (p *Pipeline) WriteVertices(data []byte) error {
	return p.write(p.vertexBuf, p.vertexBufSize, "vertices", data)
}

func (p *Pipeline) write(buf hal.Buffer, size uint64, what string, data []byte) error {
	if uint64(len(data)) > size {
		return fmt.Errorf("%w: %s %d > %d", ErrUploadTooLarge, what, len(data), size)
	}
	if err := p.queue.WriteBuffer(buf, 0, data); err != nil {
		return fmt.Errorf("write %s: %w", what, err)
	}
	return nil
}

// Bind records the per-frame fixed state: pipeline, index buffer (uint16),
// vertex buffer in slot 0 and the projection bind group in slot 0.
func (p *Pipeline) Bind(pass PassEncoder) {
	pass.SetPipeline(p.pipeline)
	pass.SetIndexBuffer(p.indexBuf, gputypes.IndexFormatUint16, 0)
	pass.SetVertexBuffer(0, p.vertexBuf, 0)
	pass.SetBindGroup(0, p.uniformGroup, nil)
}

// Destroy releases all GPU resources in reverse creation order. Safe to
// call on a partially built pipeline and more than once.
func (p *Pipeline) Destroy() {
	if p == nil || p.device == nil {
		return
	}
	if p.vertexBuf != nil {
		p.device.DestroyBuffer(p.vertexBuf)
		p.vertexBuf = nil
	}
	if p.indexBuf != nil {
		p.device.DestroyBuffer(p.indexBuf)
		p.indexBuf = nil
	}
	if p.uniformGroup != nil {
		p.device.DestroyBindGroup(p.uniformGroup)
		p.uniformGroup = nil
	}
	if p.uniformBuf != nil {
		p.device.DestroyBuffer(p.uniformBuf)
		p.uniformBuf = nil
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.textureLayout != nil {
		p.device.DestroyBindGroupLayout(p.textureLayout)
		p.textureLayout = nil
	}
	if p.uniformLayout != nil {
		p.device.DestroyBindGroupLayout(p.uniformLayout)
		p.uniformLayout = nil
	}
}

var _ stream.Uploader = (*Pipeline)(nil)
