// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

// TextureID identifies a texture registered with the renderer.
// IDs are never reused while the renderer is alive.
type TextureID uint64

// InvalidTextureID is never returned by texture registration.
const InvalidTextureID TextureID = 0

// Rect is an axis-aligned rectangle in screen space.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// Width returns MaxX - MinX.
func (r Rect) Width() float32 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect) Height() float32 { return r.MaxY - r.MinY }

// Cmd is one entry of a List's command sequence.
// The set of implementations is closed: Elements and RawCallback.
type Cmd interface {
	isCmd()
}

// Elements draws the next Count indices of the owning list.
type Elements struct {
	// Count is the number of indices consumed by this command.
	Count uint32

	// ClipRect is the scissor region in screen space.
	ClipRect Rect

	// Texture is the texture sampled by the fragment shader.
	Texture TextureID
}

func (Elements) isCmd() {}

// CallbackFunc is invoked by the renderer in place of a draw.
type CallbackFunc func(list *List, cmd RawCallback)

// RawCallback hands control back to the host in the middle of a list.
// The renderer does not interpret Token.
type RawCallback struct {
	Func  CallbackFunc
	Token any
}

func (RawCallback) isCmd() {}

// List is one UI layer's geometry and commands for a frame.
type List struct {
	Vertices []Vertex
	Indices  []Index
	Cmds     []Cmd

	// Native is an opaque host handle passed through to callbacks.
	Native any
}

// Data is everything needed to render one frame.
type Data struct {
	// DisplayPos is the top-left corner of the display rectangle.
	DisplayPos [2]float32

	// DisplaySize is the width and height of the display rectangle.
	DisplaySize [2]float32

	// Lists are rendered back to front in slice order.
	Lists []*List
}

// TotalVertices returns the vertex count over all lists.
func (d *Data) TotalVertices() int {
	n := 0
	for _, l := range d.Lists {
		if l != nil {
			n += len(l.Vertices)
		}
	}
	return n
}

// TotalIndices returns the index count over all lists.
func (d *Data) TotalIndices() int {
	n := 0
	for _, l := range d.Lists {
		if l != nil {
			n += len(l.Indices)
		}
	}
	return n
}

// DisplayRect returns the display rectangle.
func (d *Data) DisplayRect() Rect {
	return Rect{
		MinX: d.DisplayPos[0],
		MinY: d.DisplayPos[1],
		MaxX: d.DisplayPos[0] + d.DisplaySize[0],
		MaxY: d.DisplayPos[1] + d.DisplaySize[1],
	}
}
