// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imrender

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/imrender/draw"
	"github.com/gogpu/imrender/internal/gpu"
)

// UploadTexture creates a texture from tightly packed, non-premultiplied
// RGBA8 rows and returns its handle. rgba must hold width*height*4 bytes.
func (r *Renderer) UploadTexture(width, height int, rgba []byte) (draw.TextureID, error) {
	if r.destroyed {
		return draw.InvalidTextureID, ErrRendererDestroyed
	}
	tex, err := gpu.NewTexture(r.device, r.queue, r.pipeline.TextureLayout(), width, height, rgba)
	if err != nil {
		return draw.InvalidTextureID, fmt.Errorf("imrender: upload texture: %w", err)
	}
	id := r.textures.Insert(tex)
	slogger().Debug("texture uploaded", "id", id, "width", width, "height", height)
	return id, nil
}

// UploadImage uploads any image.Image as a texture. Images other than a
// tightly packed *image.NRGBA are converted first.
func (r *Renderer) UploadImage(img image.Image) (draw.TextureID, error) {
	if img == nil {
		return draw.InvalidTextureID, ErrNilImage
	}
	nrgba := toNRGBA(img)
	b := nrgba.Bounds()
	return r.UploadTexture(b.Dx(), b.Dy(), nrgba.Pix)
}

// toNRGBA returns img as a zero-origin *image.NRGBA with Stride == 4*width.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) && n.Stride == 4*b.Dx() {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}

// RemoveTexture releases the texture registered under id.
func (r *Renderer) RemoveTexture(id draw.TextureID) error {
	if r.destroyed {
		return ErrRendererDestroyed
	}
	if err := r.textures.Remove(id); err != nil {
		return fmt.Errorf("%w: %w", ErrTextureNotFound, err)
	}
	return nil
}

// HasTexture reports whether id is registered.
func (r *Renderer) HasTexture(id draw.TextureID) bool {
	return r.textures.Contains(id)
}

// TextureCount returns the number of registered textures.
func (r *Renderer) TextureCount() int { return r.textures.Len() }

// TextureBytes returns the GPU memory held by registered textures.
func (r *Renderer) TextureBytes() uint64 { return r.textures.Bytes() }

// ReloadFontTexture rasterizes the font atlas of ctx and uploads it as a
// new texture. The atlas's previous texture, if registered, is released
// after the new one is in place. The atlas receives the new handle and
// its CPU copy is cleared.
func (r *Renderer) ReloadFontTexture(ctx draw.Context) error {
	if r.destroyed {
		return ErrRendererDestroyed
	}
	if ctx == nil {
		return ErrNilContext
	}
	fonts := ctx.Fonts()
	if fonts == nil {
		return fmt.Errorf("%w: no font atlas", ErrNilContext)
	}

	pixels, width, height := fonts.RGBA32()
	id, err := r.UploadTexture(width, height, pixels)
	if err != nil {
		return fmt.Errorf("imrender: font atlas: %w", err)
	}

	if old := fonts.TextureID(); old != draw.InvalidTextureID && r.textures.Contains(old) {
		if err := r.textures.Remove(old); err != nil {
			slogger().Warn("release old font texture", "id", old, "err", err)
		}
	}
	fonts.SetTextureID(id)
	fonts.ClearTexData()

	slogger().Info("font texture loaded", "id", id, "width", width, "height", height)
	return nil
}
