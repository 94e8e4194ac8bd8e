// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fontatlas

import "image"

// shelf is one horizontal strip of the packer.
type shelf struct {
	y      int
	height int
	nextX  int
}

// shelfPacker places rectangles left to right on shelves stacked top to
// bottom. A rectangle goes on the first shelf that has room and is at
// least as tall; otherwise a new shelf is opened below the last one.
type shelfPacker struct {
	width     int
	maxHeight int
	padding   int
	shelves   []shelf
}

func newShelfPacker(width, maxHeight, padding int) *shelfPacker {
	return &shelfPacker{width: width, maxHeight: maxHeight, padding: padding}
}

// allocate returns the placed rectangle, or false if it does not fit.
func (p *shelfPacker) allocate(w, h int) (image.Rectangle, bool) {
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	pw, ph := w+p.padding, h+p.padding
	if pw > p.width {
		return image.Rectangle{}, false
	}

	for i := range p.shelves {
		s := &p.shelves[i]
		if s.nextX+pw > p.width || ph > s.height {
			continue
		}
		r := image.Rect(s.nextX, s.y, s.nextX+w, s.y+h)
		s.nextX += pw
		return r, true
	}

	y := p.usedHeight()
	if y+ph > p.maxHeight {
		return image.Rectangle{}, false
	}
	p.shelves = append(p.shelves, shelf{y: y, height: ph, nextX: pw})
	return image.Rect(0, y, w, y+h), true
}

// usedHeight is the bottom edge of the last shelf.
func (p *shelfPacker) usedHeight() int {
	if len(p.shelves) == 0 {
		return 0
	}
	last := p.shelves[len(p.shelves)-1]
	return last.y + last.height
}
