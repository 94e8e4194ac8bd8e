// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fontatlas

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/imrender/draw"
)

// Atlas layout.
const (
	// FirstRune and LastRune bound the rasterized range: printable ASCII.
	FirstRune = 0x20
	LastRune  = 0x7E

	// atlasWidth is the fixed texture width in pixels.
	atlasWidth = 128

	// maxAtlasHeight bounds the packer; the texture is cropped to the
	// rows actually used.
	maxAtlasHeight = 2048

	// glyphPadding separates glyphs so linear filtering does not bleed.
	glyphPadding = 1

	// whiteSize is the side of the opaque block used for solid fills.
	whiteSize = 2
)

// ErrAtlasFull is returned when the glyphs do not fit the atlas.
var ErrAtlasFull = errors.New("fontatlas: glyphs do not fit the atlas")

// Glyph locates one rasterized rune in the atlas.
type Glyph struct {
	// UV is the glyph cell in normalized texture coordinates.
	UV draw.Rect

	// Width and Height are the cell size in pixels.
	Width, Height float32

	// Advance is the horizontal pen advance in pixels.
	Advance float32
}

// Atlas is a white-on-transparent RGBA8 font atlas. It implements
// draw.FontAtlas.
type Atlas struct {
	face    font.Face
	ascent  int
	descent int

	width  int
	height int

	glyphs map[rune]Glyph
	white  [2]float32

	// pix is the rasterized image; nil after ClearTexData until the next
	// RGBA32 call.
	pix *image.NRGBA

	id draw.TextureID
}

// New rasterizes printable ASCII with basicfont.Face7x13.
func New() (*Atlas, error) {
	return NewWithFace(basicfont.Face7x13)
}

// NewWithFace rasterizes printable ASCII with face.
func NewWithFace(face font.Face) (*Atlas, error) {
	m := face.Metrics()
	a := &Atlas{
		face:    face,
		ascent:  m.Ascent.Ceil(),
		descent: m.Descent.Ceil(),
		width:   atlasWidth,
		glyphs:  make(map[rune]Glyph, LastRune-FirstRune+1),
	}
	if err := a.rasterize(); err != nil {
		return nil, err
	}
	return a, nil
}

// rasterize packs and draws every glyph plus the white block, and fills
// the glyph table.
func (a *Atlas) rasterize() error {
	type placed struct {
		r       rune
		rect    image.Rectangle
		advance int
	}

	lineHeight := a.ascent + a.descent
	packer := newShelfPacker(a.width, maxAtlasHeight, glyphPadding)

	whiteRect, ok := packer.allocate(whiteSize, whiteSize)
	if !ok {
		return ErrAtlasFull
	}

	cells := make([]placed, 0, LastRune-FirstRune+1)
	for r := rune(FirstRune); r <= LastRune; r++ {
		adv, ok := a.face.GlyphAdvance(r)
		if !ok {
			continue
		}
		w := adv.Ceil()
		if w <= 0 {
			w = 1
		}
		rect, ok := packer.allocate(w, lineHeight)
		if !ok {
			return fmt.Errorf("%w: rune %q", ErrAtlasFull, r)
		}
		cells = append(cells, placed{r: r, rect: rect, advance: adv.Ceil()})
	}

	a.height = packer.usedHeight()
	img := image.NewNRGBA(image.Rect(0, 0, a.width, a.height))

	for y := whiteRect.Min.Y; y < whiteRect.Max.Y; y++ {
		for x := whiteRect.Min.X; x < whiteRect.Max.X; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
		}
	}
	center := whiteRect.Min.Add(whiteRect.Max).Div(2)
	a.white = [2]float32{
		(float32(center.X)) / float32(a.width),
		(float32(center.Y)) / float32(a.height),
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: a.face,
	}
	for _, c := range cells {
		d.Dot = fixed.P(c.rect.Min.X, c.rect.Min.Y+a.ascent)
		d.DrawString(string(c.r))

		a.glyphs[c.r] = Glyph{
			UV: draw.Rect{
				MinX: float32(c.rect.Min.X) / float32(a.width),
				MinY: float32(c.rect.Min.Y) / float32(a.height),
				MaxX: float32(c.rect.Max.X) / float32(a.width),
				MaxY: float32(c.rect.Max.Y) / float32(a.height),
			},
			Width:   float32(c.rect.Dx()),
			Height:  float32(c.rect.Dy()),
			Advance: float32(c.advance),
		}
	}

	a.pix = img
	return nil
}

// Glyph returns the atlas entry for r.
func (a *Atlas) Glyph(r rune) (Glyph, bool) {
	g, ok := a.glyphs[r]
	return g, ok
}

// WhiteUV returns a texture coordinate inside an opaque white block, for
// drawing untextured shapes with the font texture bound.
func (a *Atlas) WhiteUV() [2]float32 { return a.white }

// LineHeight returns the distance between baselines in pixels.
func (a *Atlas) LineHeight() float32 { return float32(a.ascent + a.descent) }

// Size returns the atlas dimensions in pixels.
func (a *Atlas) Size() (width, height int) { return a.width, a.height }

// RGBA32 returns the atlas as tightly packed non-premultiplied RGBA8 rows,
// rasterizing it again if ClearTexData dropped the pixels.
func (a *Atlas) RGBA32() (pixels []byte, width, height int) {
	if a.pix == nil {
		// Same face and layout as the first pass, so glyph UVs stay valid.
		if err := a.rasterize(); err != nil {
			return nil, 0, 0
		}
	}
	return a.pix.Pix, a.width, a.height
}

// ClearTexData drops the CPU copy of the pixels.
func (a *Atlas) ClearTexData() { a.pix = nil }

// TextureID returns the texture the atlas was last uploaded to.
func (a *Atlas) TextureID() draw.TextureID { return a.id }

// SetTextureID records the texture holding the atlas.
func (a *Atlas) SetTextureID(id draw.TextureID) { a.id = id }

var _ draw.FontAtlas = (*Atlas)(nil)
