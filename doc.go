// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package imrender renders immediate-mode GUI frames with WebGPU.
//
// A UI library produces a draw.Data every frame: lists of vertices and
// 16-bit indices with commands that say which index ranges to draw with
// which texture and clip rectangle. Renderer turns that data into render
// pass commands through github.com/gogpu/wgpu/hal. Pure Go, zero CGO.
//
// # Quick Start
//
//	r, err := imrender.New(uiCtx, device, queue, gputypes.TextureFormatBGRA8Unorm)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Destroy()
//
//	// every frame, inside a render pass on the swapchain texture:
//	if err := r.Render(pass, frame); err != nil {
//	    log.Printf("ui: %v", err)
//	}
//
// # Frame Model
//
// Geometry is staged into fixed-capacity buffers (65536 indices and
// vertices by default, see WithIndexCapacity and WithVertexCapacity). A
// list that does not fit is dropped and the rest of the frame is drawn.
// Textures are resolved before any command is recorded, so a frame that
// references an unknown texture fails with ErrTextureNotFound and leaves
// the pass untouched.
//
// Buffers are single-buffered. The caller must not call Render again
// before the GPU has consumed the previous frame.
//
// # Textures
//
// UploadTexture and UploadImage register RGBA8 textures and return a
// draw.TextureID for use in draw commands. ReloadFontTexture re-uploads the
// UI library's font atlas. RemoveTexture releases a texture.
//
// # Headless Use
//
// Recorder implements the pass interface by storing commands. Render into
// a Recorder to inspect a frame in tests, or replay it into one or more
// real passes with Recorder.Replay.
//
// # Logging
//
// imrender is silent by default. Use SetLogger to enable log/slog output.
package imrender
