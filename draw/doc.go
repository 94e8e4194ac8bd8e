// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package draw defines the per-frame draw data consumed by imrender.
//
// An immediate-mode UI library produces one [Data] value per frame. Each
// [List] carries its own vertices, 16-bit indices and an ordered sequence
// of commands. Commands are either [Elements] (an indexed draw over the
// next Count indices with a clip rectangle and texture) or [RawCallback]
// (a host-supplied escape hatch invoked in place of a draw).
//
// The memory layout of [Vertex] is part of the contract with the GPU
// pipeline: 20 bytes, position at offset 0, UV at offset 8 and a packed
// RGBA8 color at offset 16.
//
// Fonts are exchanged through [FontAtlas]: the renderer asks the atlas to
// rasterize itself to RGBA8, uploads the result and hands back the
// [TextureID] that subsequent [Elements] commands reference.
package draw
