// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

// Texture2D is the contract a texture object must satisfy to be aliased by
// a renderbuffer through RenderbufferTexture2D. The texture implementation
// itself lives with the texture object model; this package only consumes
// the interface.
//
// Per-level accessors take the texture target and mip level; the
// renderbuffer proxy always queries (TextureTarget2D, 0).
//
// RenderTarget and CreateSharedImage return a new owning reference to the
// level's backing Image (or nil); the caller must Release it on every
// path. CreateSharedImage additionally marks the Image shared.
//
// AddProxyRef and ReleaseProxy maintain the texture's own count of
// renderbuffer handles aliasing it, independent of its normal reference
// count: a texture must not be destroyed while such a proxy is alive.
type Texture2D interface {
	Width(target Enum, level int) int
	Height(target Enum, level int) int
	Format(target Enum, level int) Enum
	InternalFormat(target Enum, level int) TextureFormat
	RenderTarget(target Enum, level int) *Image
	CreateSharedImage(target Enum, level int) *Image
	IsShared(target Enum, level int) bool

	AddProxyRef(proxy *Renderbuffer)
	ReleaseProxy(proxy *Renderbuffer)
}
