// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import "github.com/gogpu/wgpu/core"

// Image is a reference-counted pixel surface shared across attachment
// kinds. A renderbuffer storage, a texture mip level, and an EGL image can
// all hold references to the same Image; the surface is destroyed when the
// last reference is released.
//
// The depth field packs the sample count next to the slice count: devices
// write samples|1 for multisampled surfaces and 1 otherwise, so readers
// recover the sample count with Depth()&^1. The packing is load-bearing
// for compatibility with surface allocators and must not be normalized
// here.
//
// The reference count is a plain integer; see the package documentation
// for the single-goroutine ownership contract.
type Image struct {
	refs int

	width  int
	height int
	depth  int
	format TextureFormat

	// shared marks the surface as visible through more than one
	// independent attachment path. It is a one-way marker, not a count.
	shared bool

	// Exactly one backing is populated: pix for lockable CPU surfaces,
	// texture for GPU surfaces.
	pix     []byte
	texture core.TextureID

	// onDestroy is invoked once when the last reference is released.
	// Devices use it to return the surface's bytes to their budget.
	onDestroy func(*Image)
}

// NewImage creates a CPU-backed surface with the given geometry and
// internal format. The depth field carries the sample packing described on
// Image. The caller owns the initial reference.
func NewImage(width, height, depth int, format TextureFormat) *Image {
	return &Image{
		refs:   1,
		width:  width,
		height: height,
		depth:  depth,
		format: format,
		pix:    make([]byte, width*height*FormatBytes(format)),
	}
}

// NewGPUImage creates a surface backed by a GPU texture handle instead of
// CPU pixels. The caller owns the initial reference.
func NewGPUImage(width, height, depth int, format TextureFormat, texture core.TextureID) *Image {
	return &Image{
		refs:    1,
		width:   width,
		height:  height,
		depth:   depth,
		format:  format,
		texture: texture,
	}
}

// AddRef takes a new reference to the surface.
func (img *Image) AddRef() {
	img.refs++
}

// Release drops a reference. When the count reaches zero the backing is
// destroyed: CPU pixels are freed, the GPU handle is cleared, and the
// device's destroy hook (if any) runs exactly once.
func (img *Image) Release() {
	if img.refs > 0 {
		img.refs--
	}
	if img.refs > 0 {
		return
	}

	if img.onDestroy != nil {
		hook := img.onDestroy
		img.onDestroy = nil
		hook(img)
	}
	img.pix = nil
	img.texture = core.TextureID{}
}

// RefCount returns the current reference count.
func (img *Image) RefCount() int {
	return img.refs
}

// Width returns the surface width in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the surface height in pixels.
func (img *Image) Height() int {
	return img.height
}

// Depth returns the raw depth field, including the sample packing.
func (img *Image) Depth() int {
	return img.depth
}

// InternalFormat returns the internal pixel format of the surface.
func (img *Image) InternalFormat() TextureFormat {
	return img.format
}

// MarkShared flags the surface as aliased by more than one independent
// attachment path. The flag is never cleared.
func (img *Image) MarkShared() {
	img.shared = true
}

// IsShared reports whether the surface has been marked shared.
func (img *Image) IsShared() bool {
	return img.shared
}

// Pixels returns direct access to the CPU backing, or nil for GPU-backed
// surfaces.
func (img *Image) Pixels() []byte {
	return img.pix
}

// Texture returns the GPU texture handle, zero for CPU-backed surfaces.
func (img *Image) Texture() core.TextureID {
	return img.texture
}

// SetDestroyFunc installs the hook run when the last reference is
// released. The allocating device uses this for budget accounting.
func (img *Image) SetDestroyFunc(f func(*Image)) {
	img.onDestroy = f
}

// SizeBytes returns the CPU backing size in bytes, or the equivalent
// surface size for GPU-backed images.
func (img *Image) SizeBytes() uint64 {
	if img.pix != nil {
		return uint64(len(img.pix))
	}
	return uint64(img.width * img.height * FormatBytes(img.format))
}
