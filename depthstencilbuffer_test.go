// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNewDepthStencilbuffer(t *testing.T) {
	device := &fakeDevice{}
	d := NewDepthStencilbuffer(device, 64, 32, 4)
	defer d.Destroy()

	if device.depthStencils != 1 {
		t.Fatalf("depth-stencil allocations = %d, want 1", device.depthStencils)
	}
	if device.lastFormat != gputypes.TextureFormatDepth24PlusStencil8 {
		t.Errorf("device saw format %v, want Depth24PlusStencil8", device.lastFormat)
	}
	if d.Width() != 64 || d.Height() != 32 {
		t.Errorf("size = %dx%d, want 64x32", d.Width(), d.Height())
	}
	if d.Format() != Depth24Stencil8 {
		t.Errorf("Format() = %v, want DEPTH24_STENCIL8", d.Format())
	}
	if d.Samples() != 4 {
		t.Errorf("Samples() = %d, want 4", d.Samples())
	}

	rt := d.RenderTarget()
	if rt == nil {
		t.Fatal("RenderTarget() = nil, want backing surface")
	}
	rt.Release()
}

func TestNewDepthStencilbufferAllocationFailure(t *testing.T) {
	LastError() // clear

	device := &fakeDevice{fail: true}
	d := NewDepthStencilbuffer(device, 64, 32, 0)
	defer d.Destroy()

	if got := LastError(); got != OutOfMemory {
		t.Errorf("LastError() = %v, want OUT_OF_MEMORY", got)
	}
	if rt := d.RenderTarget(); rt != nil {
		t.Error("RenderTarget() != nil after failed allocation")
	}
	if d.Width() != 64 || d.Height() != 32 {
		t.Errorf("size = %dx%d, want 64x32 (request recorded)", d.Width(), d.Height())
	}
}

func TestDepthbufferFormatOverride(t *testing.T) {
	t.Run("backed", func(t *testing.T) {
		img := NewImage(16, 16, 1, gputypes.TextureFormatDepth24PlusStencil8)
		defer img.Release()

		d := NewDepthbufferFromImage(img)
		defer d.Destroy()

		if d.Format() != DepthComponent16 {
			t.Errorf("Format() = %v, want DEPTH_COMPONENT16", d.Format())
		}
		// The physical surface stays combined.
		if d.InternalFormat() != gputypes.TextureFormatDepth24PlusStencil8 {
			t.Errorf("InternalFormat() = %v, want Depth24PlusStencil8", d.InternalFormat())
		}
	})

	t.Run("unbacked", func(t *testing.T) {
		d := NewDepthbufferFromImage(nil)
		defer d.Destroy()

		// No backing, no override: the combined default stands.
		if d.Format() != Depth24Stencil8 {
			t.Errorf("Format() = %v, want DEPTH24_STENCIL8", d.Format())
		}
	})

	t.Run("allocated", func(t *testing.T) {
		device := &fakeDevice{}
		d := NewDepthbuffer(device, 16, 16, 0)
		defer d.Destroy()

		if d.Format() != DepthComponent16 {
			t.Errorf("Format() = %v, want DEPTH_COMPONENT16", d.Format())
		}
	})
}

func TestStencilbufferFormatOverride(t *testing.T) {
	t.Run("backed", func(t *testing.T) {
		img := NewImage(16, 16, 1, gputypes.TextureFormatDepth24PlusStencil8)
		defer img.Release()

		s := NewStencilbufferFromImage(img)
		defer s.Destroy()

		if s.Format() != StencilIndex8 {
			t.Errorf("Format() = %v, want STENCIL_INDEX8", s.Format())
		}
		if s.InternalFormat() != gputypes.TextureFormatDepth24PlusStencil8 {
			t.Errorf("InternalFormat() = %v, want Depth24PlusStencil8", s.InternalFormat())
		}
	})

	t.Run("unbacked", func(t *testing.T) {
		s := NewStencilbufferFromImage(nil)
		defer s.Destroy()

		if s.Format() != Depth24Stencil8 {
			t.Errorf("Format() = %v, want DEPTH24_STENCIL8", s.Format())
		}
	})

	t.Run("allocated failure", func(t *testing.T) {
		LastError() // clear

		device := &fakeDevice{fail: true}
		s := NewStencilbuffer(device, 16, 16, 0)
		defer s.Destroy()

		if got := LastError(); got != OutOfMemory {
			t.Errorf("LastError() = %v, want OUT_OF_MEMORY", got)
		}
		// Failed allocation leaves no backing, so no override either.
		if s.Format() != Depth24Stencil8 {
			t.Errorf("Format() = %v, want DEPTH24_STENCIL8", s.Format())
		}
	})
}

func TestDepthStencilbufferWrapSamples(t *testing.T) {
	// Depth field 5 encodes 4 samples plus the multisample marker bit.
	img := NewImage(32, 32, 5, gputypes.TextureFormatDepth24PlusStencil8)
	defer img.Release()

	d := NewDepthStencilbufferFromImage(img)
	defer d.Destroy()

	if img.RefCount() != 2 {
		t.Errorf("img.RefCount() = %d after wrap, want 2", img.RefCount())
	}
	if d.Samples() != 4 {
		t.Errorf("Samples() = %d, want 4", d.Samples())
	}
}

func TestDepthStencilbufferSharedImage(t *testing.T) {
	img := NewImage(8, 8, 1, gputypes.TextureFormatDepth24PlusStencil8)
	defer img.Release()

	d := NewDepthStencilbufferFromImage(img)
	defer d.Destroy()

	if d.IsShared() {
		t.Error("IsShared() = true before CreateSharedImage")
	}
	shared := d.CreateSharedImage()
	if shared == nil {
		t.Fatal("CreateSharedImage() = nil")
	}
	if !d.IsShared() {
		t.Error("IsShared() = false after CreateSharedImage()")
	}
	shared.Release()

	// Unbacked storages never report shared.
	u := NewDepthStencilbufferFromImage(nil)
	defer u.Destroy()
	if u.IsShared() {
		t.Error("IsShared() = true for unbacked storage")
	}
	if u.CreateSharedImage() != nil {
		t.Error("CreateSharedImage() != nil for unbacked storage")
	}
}
