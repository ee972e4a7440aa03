// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

// Colorbuffer is a renderbuffer backing that owns a reference to a color
// Image surface, either wrapping a caller-supplied one or allocating a
// fresh one from a device.
type Colorbuffer struct {
	RenderbufferStorage

	renderTarget *Image
}

// NewColorbufferFromImage wraps an existing color surface. The storage
// takes its own reference; the caller keeps its reference. No allocation
// happens. Geometry and internal format are copied from the surface, the
// GL-facing format is derived from the internal format, and the sample
// count is recovered from the surface's depth-field packing. A nil image
// leaves the storage in its unbacked default state.
func NewColorbufferFromImage(renderTarget *Image) *Colorbuffer {
	c := &Colorbuffer{
		RenderbufferStorage: defaultStorage(),
		renderTarget:        renderTarget,
	}

	if renderTarget != nil {
		renderTarget.AddRef()

		c.width = renderTarget.Width()
		c.height = renderTarget.Height()
		c.internalFormat = renderTarget.InternalFormat()
		c.format = BackBufferFormat(c.internalFormat)
		c.samples = renderTarget.Depth() &^ 1
	}

	return c
}

// NewColorbuffer allocates a color surface of the requested geometry from
// the device. The requested sample count is snapped to the device's
// supported set. When width or height is not positive no allocation is
// attempted. On allocation failure OUT_OF_MEMORY is raised and the
// storage is left unbacked, but the requested geometry, format, and
// snapped sample count are still recorded so later queries report the
// intended storage.
func NewColorbuffer(device Device, width, height int, format Enum, samples int) *Colorbuffer {
	c := &Colorbuffer{RenderbufferStorage: defaultStorage()}

	requestedFormat := RenderbufferFormat(format)
	supportedSamples := device.Capabilities().SupportedMultisampleCount(samples)

	c.width = width
	c.height = height
	c.format = format
	c.internalFormat = requestedFormat
	c.samples = supportedSamples

	if width > 0 && height > 0 {
		c.renderTarget = device.CreateRenderTarget(width, height, requestedFormat, supportedSamples, false)

		if c.renderTarget == nil {
			RecordError(OutOfMemory)
		}
	}

	return c
}

// Destroy releases the owned surface reference, if any.
func (c *Colorbuffer) Destroy() {
	if c.renderTarget != nil {
		c.renderTarget.Release()
		c.renderTarget = nil
	}
}

// RenderTarget returns a new owning reference to the color surface, or
// nil when the storage is unbacked. The caller must Release it.
func (c *Colorbuffer) RenderTarget() *Image {
	if c.renderTarget != nil {
		c.renderTarget.AddRef()
	}

	return c.renderTarget
}

// CreateSharedImage returns a new owning reference to the color surface
// and marks it shared, or returns nil when the storage is unbacked. The
// caller must Release it.
func (c *Colorbuffer) CreateSharedImage() *Image {
	if c.renderTarget != nil {
		c.renderTarget.AddRef()
		c.renderTarget.MarkShared()
	}

	return c.renderTarget
}

// IsShared reports whether the color surface is shared. An unbacked
// storage has nothing to alias and reports false.
func (c *Colorbuffer) IsShared() bool {
	return c.renderTarget != nil && c.renderTarget.IsShared()
}

// Ensure Colorbuffer implements RenderbufferInterface.
var _ RenderbufferInterface = (*Colorbuffer)(nil)
