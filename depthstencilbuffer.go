// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import "github.com/gogpu/gputypes"

// DepthStencilbuffer is a renderbuffer backing that owns a reference to a
// combined depth-stencil Image surface. Depthbuffer and Stencilbuffer
// specialize it by construction only: they overwrite the GL-facing format
// so parameter queries report a single-aspect format even though the
// physical backing is always the combined surface.
type DepthStencilbuffer struct {
	RenderbufferStorage

	depthStencil *Image
}

// depthStencilDefault is the unbacked default for depth-stencil storages:
// the combined format, so queries stay coherent even when wrapping a nil
// surface.
func depthStencilDefault() RenderbufferStorage {
	s := defaultStorage()
	s.format = Depth24Stencil8
	s.internalFormat = gputypes.TextureFormatDepth24PlusStencil8
	return s
}

// NewDepthStencilbufferFromImage wraps an existing depth-stencil surface.
// The storage takes its own reference; no allocation happens. A nil image
// leaves the storage in its unbacked combined-format default state.
func NewDepthStencilbufferFromImage(depthStencil *Image) *DepthStencilbuffer {
	d := &DepthStencilbuffer{
		RenderbufferStorage: depthStencilDefault(),
		depthStencil:        depthStencil,
	}

	if depthStencil != nil {
		depthStencil.AddRef()

		d.width = depthStencil.Width()
		d.height = depthStencil.Height()
		d.internalFormat = depthStencil.InternalFormat()
		d.format = DepthStencilFormat(d.internalFormat)
		d.samples = depthStencil.Depth() &^ 1
	}

	return d
}

// NewDepthStencilbuffer allocates a combined 24-bit depth / 8-bit stencil
// surface from the device, regardless of which aspect is eventually
// exposed. The requested sample count is snapped to the device's
// supported set. On allocation failure OUT_OF_MEMORY is raised and the
// storage is left unbacked with the requested geometry recorded.
func NewDepthStencilbuffer(device Device, width, height int, samples int) *DepthStencilbuffer {
	d := &DepthStencilbuffer{RenderbufferStorage: depthStencilDefault()}

	supportedSamples := device.Capabilities().SupportedMultisampleCount(samples)

	d.width = width
	d.height = height
	d.samples = supportedSamples

	if width > 0 && height > 0 {
		d.depthStencil = device.CreateDepthStencilSurface(width, height,
			gputypes.TextureFormatDepth24PlusStencil8, supportedSamples, false)

		if d.depthStencil == nil {
			RecordError(OutOfMemory)
		}
	}

	return d
}

// Destroy releases the owned surface reference, if any.
func (d *DepthStencilbuffer) Destroy() {
	if d.depthStencil != nil {
		d.depthStencil.Release()
		d.depthStencil = nil
	}
}

// RenderTarget returns a new owning reference to the depth-stencil
// surface, or nil when the storage is unbacked. The caller must Release
// it.
func (d *DepthStencilbuffer) RenderTarget() *Image {
	if d.depthStencil != nil {
		d.depthStencil.AddRef()
	}

	return d.depthStencil
}

// CreateSharedImage returns a new owning reference to the depth-stencil
// surface and marks it shared, or returns nil when the storage is
// unbacked. The caller must Release it.
func (d *DepthStencilbuffer) CreateSharedImage() *Image {
	if d.depthStencil != nil {
		d.depthStencil.AddRef()
		d.depthStencil.MarkShared()
	}

	return d.depthStencil
}

// IsShared reports whether the depth-stencil surface is shared. An
// unbacked storage reports false.
func (d *DepthStencilbuffer) IsShared() bool {
	return d.depthStencil != nil && d.depthStencil.IsShared()
}

// Ensure DepthStencilbuffer implements RenderbufferInterface.
var _ RenderbufferInterface = (*DepthStencilbuffer)(nil)

// Depthbuffer exposes the depth aspect of a combined depth-stencil
// storage. When a backing was obtained, the GL-facing format is
// overwritten to the depth-only enumerator so parameter queries report a
// valid format for storage re-specification; the internal format still
// reports the combined surface.
type Depthbuffer struct {
	DepthStencilbuffer
}

// NewDepthbufferFromImage wraps an existing depth-stencil surface as a
// depth attachment.
func NewDepthbufferFromImage(depthStencil *Image) *Depthbuffer {
	d := &Depthbuffer{DepthStencilbuffer: *NewDepthStencilbufferFromImage(depthStencil)}

	if d.depthStencil != nil {
		d.format = DepthComponent16
	}

	return d
}

// NewDepthbuffer allocates a combined depth-stencil surface exposed as a
// depth attachment.
func NewDepthbuffer(device Device, width, height int, samples int) *Depthbuffer {
	d := &Depthbuffer{DepthStencilbuffer: *NewDepthStencilbuffer(device, width, height, samples)}

	if d.depthStencil != nil {
		d.format = DepthComponent16
	}

	return d
}

// Stencilbuffer exposes the stencil aspect of a combined depth-stencil
// storage; see Depthbuffer for the format-override rules.
type Stencilbuffer struct {
	DepthStencilbuffer
}

// NewStencilbufferFromImage wraps an existing depth-stencil surface as a
// stencil attachment.
func NewStencilbufferFromImage(depthStencil *Image) *Stencilbuffer {
	s := &Stencilbuffer{DepthStencilbuffer: *NewDepthStencilbufferFromImage(depthStencil)}

	if s.depthStencil != nil {
		s.format = StencilIndex8
	}

	return s
}

// NewStencilbuffer allocates a combined depth-stencil surface exposed as
// a stencil attachment.
func NewStencilbuffer(device Device, width, height int, samples int) *Stencilbuffer {
	s := &Stencilbuffer{DepthStencilbuffer: *NewDepthStencilbuffer(device, width, height, samples)}

	if s.depthStencil != nil {
		s.format = StencilIndex8
	}

	return s
}
