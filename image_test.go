// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
)

func TestImageRefCounting(t *testing.T) {
	img := NewImage(16, 16, 1, gputypes.TextureFormatRGBA8Unorm)

	if img.RefCount() != 1 {
		t.Fatalf("initial RefCount() = %d, want 1", img.RefCount())
	}

	img.AddRef()
	img.AddRef()
	if img.RefCount() != 3 {
		t.Errorf("RefCount() = %d after two AddRefs, want 3", img.RefCount())
	}

	img.Release()
	img.Release()
	if img.RefCount() != 1 {
		t.Errorf("RefCount() = %d, want 1", img.RefCount())
	}
	if img.Pixels() == nil {
		t.Error("Pixels() = nil while a reference is still held")
	}

	img.Release()
	if img.Pixels() != nil {
		t.Error("Pixels() != nil after last release")
	}
}

func TestImageDestroyHookRunsOnce(t *testing.T) {
	img := NewImage(8, 8, 1, gputypes.TextureFormatRGBA8Unorm)

	calls := 0
	img.SetDestroyFunc(func(*Image) { calls++ })

	img.Release()
	img.Release() // over-release must not rerun the hook
	if calls != 1 {
		t.Errorf("destroy hook ran %d times, want 1", calls)
	}
}

func TestImageMarkShared(t *testing.T) {
	img := NewImage(8, 8, 1, gputypes.TextureFormatRGBA8Unorm)
	defer img.Release()

	if img.IsShared() {
		t.Error("IsShared() = true for fresh image")
	}
	img.MarkShared()
	img.MarkShared() // idempotent
	if !img.IsShared() {
		t.Error("IsShared() = false after MarkShared")
	}
}

func TestImageGeometry(t *testing.T) {
	img := NewImage(64, 32, 5, gputypes.TextureFormatRGBA8Unorm)
	defer img.Release()

	if img.Width() != 64 || img.Height() != 32 {
		t.Errorf("size = %dx%d, want 64x32", img.Width(), img.Height())
	}
	if img.Depth() != 5 {
		t.Errorf("Depth() = %d, want 5 (raw packing preserved)", img.Depth())
	}
	if img.InternalFormat() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("InternalFormat() = %v, want RGBA8Unorm", img.InternalFormat())
	}
	if want := uint64(64 * 32 * 4); img.SizeBytes() != want {
		t.Errorf("SizeBytes() = %d, want %d", img.SizeBytes(), want)
	}
	if len(img.Pixels()) != 64*32*4 {
		t.Errorf("len(Pixels()) = %d, want %d", len(img.Pixels()), 64*32*4)
	}
}

func TestGPUImage(t *testing.T) {
	var texture core.TextureID
	img := NewGPUImage(32, 32, 1, gputypes.TextureFormatBGRA8Unorm, texture)
	defer img.Release()

	if img.Pixels() != nil {
		t.Error("Pixels() != nil for GPU-backed image")
	}
	if want := uint64(32 * 32 * 4); img.SizeBytes() != want {
		t.Errorf("SizeBytes() = %d, want %d", img.SizeBytes(), want)
	}
}
