// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

// FontAtlas is the UI library's font atlas as seen by the renderer.
type FontAtlas interface {
	// RGBA32 rasterizes the atlas to tightly packed RGBA8 rows.
	RGBA32() (pixels []byte, width, height int)

	// ClearTexData releases the CPU-side raster copy.
	ClearTexData()

	// TextureID returns the currently registered atlas texture.
	TextureID() TextureID

	// SetTextureID records the texture holding the atlas.
	SetTextureID(id TextureID)
}

// Context is the part of a UI library context the renderer needs.
type Context interface {
	Fonts() FontAtlas
}
