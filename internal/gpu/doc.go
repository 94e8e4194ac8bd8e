// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu holds the WebGPU side of the UI renderer.
//
// It builds the fixed render pipeline for UI geometry, owns the projection
// uniform and the index/vertex buffers, wraps RGBA8 textures with their
// bind groups, and records render pass commands. Everything talks to the
// device through github.com/gogpu/wgpu/hal, so any HAL backend (Vulkan,
// Metal, DX12, GLES, software, noop) can drive it.
//
// # Pipeline layout
//
//	group 0  binding 0  mat4x4<f32> projection   (vertex)
//	group 1  binding 0  texture_2d<f32>          (fragment)
//	group 1  binding 1  sampler                  (fragment)
//
// Vertex buffer slot 0 carries interleaved draw.Vertex values:
// location 0 position, location 1 uv, location 2 unorm8x4 color.
//
// # Recording
//
// Renderers draw into a PassEncoder, the subset of hal.RenderPassEncoder
// they need. Recorder implements PassEncoder by storing commands so a
// frame can be inspected in tests, run headless, or replayed into several
// real passes.
package gpu
