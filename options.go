// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imrender

import (
	"errors"
	"fmt"

	"github.com/gogpu/imrender/internal/gpu"
	"github.com/gogpu/imrender/internal/stream"
)

// ShaderFormat selects how the UI shader reaches the device.
type ShaderFormat = gpu.ShaderFormat

// Shader formats.
const (
	// ShaderWGSL hands WGSL source to the device.
	ShaderWGSL = gpu.ShaderWGSL

	// ShaderSPIRV compiles the shader to SPIR-V with naga first.
	ShaderSPIRV = gpu.ShaderSPIRV
)

// DefaultCapacity is the default per-frame index and vertex capacity.
const DefaultCapacity = stream.DefaultCapacity

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("imrender: invalid config")

// Config holds renderer settings. Build one with DefaultConfig and Options.
type Config struct {
	// IndexCapacity bounds the indices staged per frame. A frame always
	// holds fewer than IndexCapacity indices; lists that would reach it
	// are dropped.
	IndexCapacity int

	// VertexCapacity bounds the vertices staged per frame, with the same
	// strict rule as IndexCapacity.
	VertexCapacity int

	// ShaderFormat selects WGSL or SPIR-V shader input.
	ShaderFormat ShaderFormat

	// Label prefixes GPU object debug labels.
	Label string
}

// DefaultConfig returns the default renderer configuration: 65536-element
// index and vertex capacity and WGSL shaders.
func DefaultConfig() Config {
	return Config{
		IndexCapacity:  DefaultCapacity,
		VertexCapacity: DefaultCapacity,
		ShaderFormat:   ShaderWGSL,
		Label:          "imrender",
	}
}

// Validate reports whether the configuration can build a renderer.
func (c Config) Validate() error {
	if c.IndexCapacity <= 0 {
		return fmt.Errorf("%w: index capacity %d must be positive", ErrInvalidConfig, c.IndexCapacity)
	}
	if c.VertexCapacity <= 0 {
		return fmt.Errorf("%w: vertex capacity %d must be positive", ErrInvalidConfig, c.VertexCapacity)
	}
	switch c.ShaderFormat {
	case ShaderWGSL, ShaderSPIRV:
	default:
		return fmt.Errorf("%w: shader format %v", ErrInvalidConfig, c.ShaderFormat)
	}
	return nil
}

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := imrender.New(ctx, device, queue, format,
//	    imrender.WithVertexCapacity(1<<18),
//	    imrender.WithShaderFormat(imrender.ShaderSPIRV),
//	)
type Option func(*Config)

// WithIndexCapacity sets the per-frame index capacity.
func WithIndexCapacity(n int) Option {
	return func(c *Config) {
		c.IndexCapacity = n
	}
}

// WithVertexCapacity sets the per-frame vertex capacity.
func WithVertexCapacity(n int) Option {
	return func(c *Config) {
		c.VertexCapacity = n
	}
}

// WithShaderFormat selects the shader input format. Use ShaderSPIRV for
// HAL backends that do not accept WGSL.
func WithShaderFormat(f ShaderFormat) Option {
	return func(c *Config) {
		c.ShaderFormat = f
	}
}

// WithLabel sets the debug label prefix of GPU objects.
func WithLabel(label string) Option {
	return func(c *Config) {
		c.Label = label
	}
}

// buildConfig applies opts over DefaultConfig and validates the result.
func buildConfig(opts []Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
