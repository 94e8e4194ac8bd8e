// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fontatlas provides a ready-made font atlas for imrender.
//
// The atlas rasterizes printable ASCII with a golang.org/x/image font face
// (basicfont.Face7x13 by default) into a white-on-transparent RGBA8
// texture, packed on shelves. It also reserves an opaque white block so
// solid shapes can be drawn with the same texture bound.
//
//	atlas, _ := fontatlas.New()
//	r, _ := imrender.New(fontatlas.NewContext(atlas), device, queue, format)
//
//	list := &draw.List{}
//	atlas.AppendRect(list, draw.Rect{MaxX: 200, MaxY: 40}, bg, clip)
//	atlas.AppendText(list, [2]float32{8, 12}, fg, clip, "hello")
package fontatlas
