// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imrender

import "errors"

// Renderer errors.
var (
	// ErrNilDrawData is returned by Render when data is nil.
	ErrNilDrawData = errors.New("imrender: draw data is nil")

	// ErrNilContext is returned when a nil UI context is passed.
	ErrNilContext = errors.New("imrender: UI context is nil")

	// ErrNilDevice is returned when the device or queue is nil.
	ErrNilDevice = errors.New("imrender: device or queue is nil")

	// ErrNoHALAccess is returned by NewFromProvider when the provider does
	// not expose HAL device and queue handles.
	ErrNoHALAccess = errors.New("imrender: device provider does not expose HAL handles")

	// ErrRendererDestroyed is returned when a destroyed renderer is used.
	ErrRendererDestroyed = errors.New("imrender: renderer has been destroyed")

	// ErrTextureNotFound is returned when draw data or RemoveTexture
	// references a texture that is not registered. A frame that hits it
	// records nothing.
	ErrTextureNotFound = errors.New("imrender: texture not found")

	// ErrIndexRange is returned when a list's commands consume more indices
	// than the list holds.
	ErrIndexRange = errors.New("imrender: draw command exceeds list index range")

	// ErrNilImage is returned by UploadImage for a nil image.
	ErrNilImage = errors.New("imrender: image is nil")
)
