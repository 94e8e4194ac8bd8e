// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fontatlas

import "github.com/gogpu/imrender/draw"

// MaxListVertices is the number of vertices a list can address with
// 16-bit indices. Quads that would go past it are not appended.
const MaxListVertices = 1 << 16

// AppendRect appends a solid rectangle to list, sampling the atlas's white
// block. The batch is drawn with the atlas texture and clipped to clip.
// It reports false when list is full and nothing was appended.
func (a *Atlas) AppendRect(list *draw.List, r draw.Rect, col uint32, clip draw.Rect) bool {
	uv := draw.Rect{MinX: a.white[0], MinY: a.white[1], MaxX: a.white[0], MaxY: a.white[1]}
	if !appendQuad(list, r, uv, col) {
		return false
	}
	a.extendElements(list, 6, clip)
	return true
}

// AppendText appends one line of text with its top-left corner at pos.
// Runes missing from the atlas advance the pen by a space. Once list is
// full the remaining glyphs are dropped but the pen still advances.
// It returns the pen position after the last rune.
func (a *Atlas) AppendText(list *draw.List, pos [2]float32, col uint32, clip draw.Rect, text string) [2]float32 {
	x, y := pos[0], pos[1]
	space, _ := a.Glyph(' ')
	quads := uint32(0)
	for _, r := range text {
		g, ok := a.Glyph(r)
		if !ok {
			x += space.Advance
			continue
		}
		if r != ' ' && appendQuad(list, draw.Rect{MinX: x, MinY: y, MaxX: x + g.Width, MaxY: y + g.Height}, g.UV, col) {
			quads++
		}
		x += g.Advance
	}
	if quads > 0 {
		a.extendElements(list, quads*6, clip)
	}
	return [2]float32{x, y}
}

// extendElements grows the last Elements command of list when it uses the
// same texture and clip, and starts a new one otherwise.
func (a *Atlas) extendElements(list *draw.List, count uint32, clip draw.Rect) {
	if n := len(list.Cmds); n > 0 {
		if last, ok := list.Cmds[n-1].(draw.Elements); ok && last.Texture == a.id && last.ClipRect == clip {
			last.Count += count
			list.Cmds[n-1] = last
			return
		}
	}
	list.Cmds = append(list.Cmds, draw.Elements{Count: count, ClipRect: clip, Texture: a.id})
}

// appendQuad appends four vertices and two clockwise triangles, or
// nothing when the quad's indices would not fit in draw.Index.
func appendQuad(list *draw.List, r, uv draw.Rect, col uint32) bool {
	if len(list.Vertices)+4 > MaxListVertices {
		return false
	}
	base := draw.Index(len(list.Vertices)) //nolint:gosec // checked against MaxListVertices
	list.Vertices = append(list.Vertices,
		draw.Vertex{Pos: [2]float32{r.MinX, r.MinY}, UV: [2]float32{uv.MinX, uv.MinY}, Col: col},
		draw.Vertex{Pos: [2]float32{r.MaxX, r.MinY}, UV: [2]float32{uv.MaxX, uv.MinY}, Col: col},
		draw.Vertex{Pos: [2]float32{r.MaxX, r.MaxY}, UV: [2]float32{uv.MaxX, uv.MaxY}, Col: col},
		draw.Vertex{Pos: [2]float32{r.MinX, r.MaxY}, UV: [2]float32{uv.MinX, uv.MaxY}, Col: col},
	)
	list.Indices = append(list.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
	return true
}
