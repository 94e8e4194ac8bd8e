// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fontatlas

import "github.com/gogpu/imrender/draw"

// Context is a minimal draw.Context around an Atlas, for hosts that draw
// UI geometry themselves.
type Context struct {
	atlas *Atlas
}

// NewContext wraps atlas.
func NewContext(atlas *Atlas) *Context {
	return &Context{atlas: atlas}
}

// Fonts returns the wrapped atlas.
func (c *Context) Fonts() draw.FontAtlas { return c.atlas }

// Atlas returns the wrapped atlas with its concrete type.
func (c *Context) Atlas() *Atlas { return c.atlas }

var _ draw.Context = (*Context)(nil)
