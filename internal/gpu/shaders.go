// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// Embedded UI shader source.
//
//go:embed shaders/ui.wgsl
var uiShaderSource string

// Shader entry points in ui.wgsl.
const (
	vertexEntryPoint   = "vs_main"
	fragmentEntryPoint = "fs_main"
)

// ShaderFormat selects how the UI shader is handed to the device.
type ShaderFormat int

const (
	// ShaderWGSL passes WGSL source to the device.
	ShaderWGSL ShaderFormat = iota

	// ShaderSPIRV compiles WGSL to SPIR-V with naga before module creation.
	// Use this for HAL backends that only consume SPIR-V.
	ShaderSPIRV
)

// String returns a human-readable name for the format.
func (f ShaderFormat) String() string {
	switch f {
	case ShaderWGSL:
		return "WGSL"
	case ShaderSPIRV:
		return "SPIR-V"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

// UIShaderSource returns the embedded WGSL source of the UI shader.
func UIShaderSource() string { return uiShaderSource }

// shaderSource builds the hal shader source for the requested format.
func shaderSource(format ShaderFormat) (hal.ShaderSource, error) {
	switch format {
	case ShaderWGSL:
		return hal.ShaderSource{WGSL: uiShaderSource}, nil
	case ShaderSPIRV:
		code, err := compileSPIRV(uiShaderSource)
		if err != nil {
			return hal.ShaderSource{}, err
		}
		return hal.ShaderSource{SPIRV: code}, nil
	default:
		return hal.ShaderSource{}, fmt.Errorf("unsupported shader format %v", format)
	}
}

// compileSPIRV compiles WGSL to little-endian SPIR-V words.
func compileSPIRV(wgsl string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("compile ui shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("compile ui shader: SPIR-V length %d is not word aligned", len(spirvBytes))
	}

	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}
