// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Renderbuffer objects and their backings. A Renderbuffer handle forwards
// to exactly one installed RenderbufferInterface: either a storage that
// owns an Image surface (Colorbuffer, DepthStencilbuffer and its
// specializations) or a proxy onto a texture mip level
// (RenderbufferTexture2D). [OpenGL ES 2.0.24] section 4.4.3 page 108.

package gles

// RenderbufferInterface is the capability set every renderbuffer backing
// must answer, independent of how storage is physically realized.
//
// RenderTarget and CreateSharedImage return a new owning reference to the
// backing Image (or nil when there is none); the caller must Release it on
// every path. CreateSharedImage additionally marks the Image shared, for
// use when a second independent handle will alias the same surface.
//
// AddProxyRef and ReleaseProxy are called by the owning Renderbuffer on
// its own reference-count changes. Storage-owning backings ignore them;
// the texture proxy forwards them so the texture's proxy count tracks how
// many renderbuffer handles alias it.
type RenderbufferInterface interface {
	AddProxyRef(proxy *Renderbuffer)
	ReleaseProxy(proxy *Renderbuffer)

	Width() int
	Height() int
	Format() Enum
	InternalFormat() TextureFormat
	Samples() int

	RenderTarget() *Image
	CreateSharedImage() *Image
	IsShared() bool

	// Destroy releases any resources the backing owns. Called when the
	// owning Renderbuffer is destroyed or its storage is re-specified.
	Destroy()
}

// RenderbufferStorage is the field base shared by all storage-owning
// backings: geometry, the GL-facing format, the internal format actually
// backing the surface (which may differ, e.g. a depth-only view over a
// combined depth-stencil surface), and the sample count. Width and height
// of zero mean allocation failed or was never requested.
type RenderbufferStorage struct {
	width          int
	height         int
	format         Enum
	internalFormat TextureFormat
	samples        int
}

// defaultStorage is the safe "not yet allocated" state: zero size, the
// narrowest 4-channel opaque format over its widened backing, no
// multisampling.
func defaultStorage() RenderbufferStorage {
	return RenderbufferStorage{
		format:         RGBA4,
		internalFormat: RenderbufferFormat(RGBA4),
	}
}

// AddProxyRef is a no-op: storages manage their Image lifetime
// independently of the owning Renderbuffer's reference count.
func (s *RenderbufferStorage) AddProxyRef(proxy *Renderbuffer) {}

// ReleaseProxy is a no-op; see AddProxyRef.
func (s *RenderbufferStorage) ReleaseProxy(proxy *Renderbuffer) {}

// Width returns the storage width in pixels.
func (s *RenderbufferStorage) Width() int {
	return s.width
}

// Height returns the storage height in pixels.
func (s *RenderbufferStorage) Height() int {
	return s.height
}

// Format returns the GL-facing pixel format.
func (s *RenderbufferStorage) Format() Enum {
	return s.format
}

// InternalFormat returns the internal format backing the surface.
func (s *RenderbufferStorage) InternalFormat() TextureFormat {
	return s.internalFormat
}

// Samples returns the sample count (0 or 1 = non-multisampled).
func (s *RenderbufferStorage) Samples() int {
	return s.samples
}

// RenderbufferTexture2D proxies a renderbuffer onto mip level 0 of an
// existing 2D texture. It holds no storage of its own: every query is
// forwarded live to the texture, so results track the texture's current
// state rather than being cached. The proxy does not take a normal
// ownership reference on the texture; the owning Renderbuffer's AddRef
// and Release keep the texture's proxy count in step instead.
type RenderbufferTexture2D struct {
	texture Texture2D
}

// NewRenderbufferTexture2D creates a proxy backing onto the given texture.
func NewRenderbufferTexture2D(texture Texture2D) *RenderbufferTexture2D {
	return &RenderbufferTexture2D{texture: texture}
}

// AddProxyRef notifies the texture of a reference held via this proxy.
func (rt *RenderbufferTexture2D) AddProxyRef(proxy *Renderbuffer) {
	rt.texture.AddProxyRef(proxy)
}

// ReleaseProxy releases a proxy reference on the texture.
func (rt *RenderbufferTexture2D) ReleaseProxy(proxy *Renderbuffer) {
	rt.texture.ReleaseProxy(proxy)
}

// Width returns the width of the texture's base mip level.
func (rt *RenderbufferTexture2D) Width() int {
	return rt.texture.Width(TextureTarget2D, 0)
}

// Height returns the height of the texture's base mip level.
func (rt *RenderbufferTexture2D) Height() int {
	return rt.texture.Height(TextureTarget2D, 0)
}

// Format returns the GL-facing format of the texture's base mip level.
func (rt *RenderbufferTexture2D) Format() Enum {
	return rt.texture.Format(TextureTarget2D, 0)
}

// InternalFormat returns the internal format of the texture's base level.
func (rt *RenderbufferTexture2D) InternalFormat() TextureFormat {
	return rt.texture.InternalFormat(TextureTarget2D, 0)
}

// Samples returns 0: textures used as renderbuffer targets are never
// multisampled.
func (rt *RenderbufferTexture2D) Samples() int {
	return 0
}

// RenderTarget returns a new owning reference to the texture level's
// backing Image. The caller must Release it.
func (rt *RenderbufferTexture2D) RenderTarget() *Image {
	return rt.texture.RenderTarget(TextureTarget2D, 0)
}

// CreateSharedImage returns a new owning reference to the texture level's
// backing Image and marks it shared. The caller must Release it.
func (rt *RenderbufferTexture2D) CreateSharedImage() *Image {
	return rt.texture.CreateSharedImage(TextureTarget2D, 0)
}

// IsShared reports whether the texture level's backing Image is shared.
func (rt *RenderbufferTexture2D) IsShared() bool {
	return rt.texture.IsShared(TextureTarget2D, 0)
}

// Destroy clears the texture reference without destroying the texture.
func (rt *RenderbufferTexture2D) Destroy() {
	rt.texture = nil
}

// Ensure RenderbufferTexture2D implements RenderbufferInterface.
var _ RenderbufferInterface = (*RenderbufferTexture2D)(nil)

// Renderbuffer is the externally addressable, named, reference-counted
// attachment handle. It owns exactly one RenderbufferInterface at a time
// and forwards all queries to it; SetStorage swaps the backing without
// changing the handle's identity.
type Renderbuffer struct {
	NamedObject
	instance RenderbufferInterface
}

// NewRenderbuffer creates a handle over an initial backing. The instance
// must be non-nil; the handle owns it and destroys it on the handle's own
// destruction or on SetStorage. The reference count starts at zero: the
// creating context takes the first reference with AddRef.
func NewRenderbuffer(name uint32, instance RenderbufferInterface) *Renderbuffer {
	if instance == nil {
		panic("gles: NewRenderbuffer requires a non-nil backing instance")
	}
	return &Renderbuffer{
		NamedObject: NamedObject{name: name},
		instance:    instance,
	}
}

// AddRef takes a reference on the handle. The installed backing may need
// to maintain its own reference count (the texture proxy case), so the
// proxy hook runs first.
func (rb *Renderbuffer) AddRef() {
	rb.instance.AddProxyRef(rb)

	rb.Object.AddRef()
}

// Release drops a reference on the handle, destroying the handle's
// backing when the count reaches zero. The proxy hook runs first, keeping
// a proxied texture's count in step one-for-one with AddRef.
func (rb *Renderbuffer) Release() {
	rb.instance.ReleaseProxy(rb)

	if rb.Object.release() {
		rb.instance.Destroy()
	}
}

// SetStorage re-specifies the handle's backing: the previous instance is
// destroyed (releasing any Image it owned) before the new one becomes
// visible, so no intermediate state exposes two current backings.
// A nil instance is a programmer error and panics.
func (rb *Renderbuffer) SetStorage(newStorage RenderbufferInterface) {
	if newStorage == nil {
		panic("gles: Renderbuffer.SetStorage requires a non-nil backing instance")
	}

	Logger().Debug("renderbuffer storage re-specified", "name", rb.Name())

	rb.instance.Destroy()
	rb.instance = newStorage
}

// RenderTarget returns a new owning reference to the current backing's
// Image, or nil. The caller must Release it on every path.
func (rb *Renderbuffer) RenderTarget() *Image {
	return rb.instance.RenderTarget()
}

// CreateSharedImage returns a new owning reference to the current
// backing's Image and marks it shared, or returns nil. The caller must
// Release it on every path.
func (rb *Renderbuffer) CreateSharedImage() *Image {
	return rb.instance.CreateSharedImage()
}

// IsShared reports whether the current backing's Image is shared.
func (rb *Renderbuffer) IsShared() bool {
	return rb.instance.IsShared()
}

// Width returns the current backing's width in pixels.
func (rb *Renderbuffer) Width() int {
	return rb.instance.Width()
}

// Height returns the current backing's height in pixels.
func (rb *Renderbuffer) Height() int {
	return rb.instance.Height()
}

// Format returns the current backing's GL-facing format.
func (rb *Renderbuffer) Format() Enum {
	return rb.instance.Format()
}

// InternalFormat returns the current backing's internal format.
func (rb *Renderbuffer) InternalFormat() TextureFormat {
	return rb.instance.InternalFormat()
}

// Samples returns the current backing's sample count.
func (rb *Renderbuffer) Samples() int {
	return rb.instance.Samples()
}

// RedSize returns the red channel bit depth, derived from the current
// backing's internal format.
func (rb *Renderbuffer) RedSize() int {
	return RedSize(rb.instance.InternalFormat())
}

// GreenSize returns the green channel bit depth.
func (rb *Renderbuffer) GreenSize() int {
	return GreenSize(rb.instance.InternalFormat())
}

// BlueSize returns the blue channel bit depth.
func (rb *Renderbuffer) BlueSize() int {
	return BlueSize(rb.instance.InternalFormat())
}

// AlphaSize returns the alpha channel bit depth.
func (rb *Renderbuffer) AlphaSize() int {
	return AlphaSize(rb.instance.InternalFormat())
}

// DepthSize returns the depth channel bit depth.
func (rb *Renderbuffer) DepthSize() int {
	return DepthSize(rb.instance.InternalFormat())
}

// StencilSize returns the stencil channel bit depth.
func (rb *Renderbuffer) StencilSize() int {
	return StencilSize(rb.instance.InternalFormat())
}
