// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"testing"

	"github.com/gogpu/gles"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// mockDevice implements gpucontext.Device for testing.
type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

// mockProvider implements gpucontext.DeviceProvider for testing.
type mockProvider struct {
	device gpucontext.Device
}

func (m *mockProvider) Device() gpucontext.Device   { return m.device }
func (m *mockProvider) Queue() gpucontext.Queue     { return nil }
func (m *mockProvider) Adapter() gpucontext.Adapter { return nil }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}
func (m *mockProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

func TestBackendUnavailableWithoutProvider(t *testing.T) {
	SetDeviceProvider(nil)
	t.Cleanup(func() { SetDeviceProvider(nil) })

	if available() {
		t.Error("available() = true without a provider")
	}
	if _, err := newDevice(); !errors.Is(err, ErrNoDeviceProvider) {
		t.Errorf("newDevice() error = %v, want ErrNoDeviceProvider", err)
	}

	// The registry falls back to the software backend.
	d, err := gles.NewDevice()
	if err != nil {
		t.Fatalf("gles.NewDevice() error: %v", err)
	}
	if _, ok := d.(*gles.SoftwareDevice); !ok {
		t.Errorf("gles.NewDevice() = %T without provider, want *gles.SoftwareDevice", d)
	}
}

func TestBackendSelectedWithProvider(t *testing.T) {
	SetDeviceProvider(&mockProvider{device: &mockDevice{}})
	t.Cleanup(func() { SetDeviceProvider(nil) })

	if !available() {
		t.Fatal("available() = false with a configured provider")
	}

	// GPU registers at higher priority than software, so it wins.
	d, err := gles.NewDevice()
	if err != nil {
		t.Fatalf("gles.NewDevice() error: %v", err)
	}
	if _, ok := d.(*Device); !ok {
		t.Errorf("gles.NewDevice() = %T with provider, want *gpu.Device", d)
	}
}

func TestBackendUnavailableWithNilDevice(t *testing.T) {
	// A provider whose Device() is nil (context not yet initialized) must
	// not be selected.
	SetDeviceProvider(&mockProvider{})
	t.Cleanup(func() { SetDeviceProvider(nil) })

	if available() {
		t.Error("available() = true with a nil underlying device")
	}
}

func TestDeviceAllocate(t *testing.T) {
	d := NewDevice(&mockProvider{device: &mockDevice{}})

	img := d.CreateRenderTarget(64, 32, gputypes.TextureFormatBGRA8Unorm, 4, false)
	if img == nil {
		t.Fatal("CreateRenderTarget() = nil")
	}
	defer img.Release()

	if img.Width() != 64 || img.Height() != 32 {
		t.Errorf("size = %dx%d, want 64x32", img.Width(), img.Height())
	}
	if img.Depth() != 5 {
		t.Errorf("Depth() = %d, want 5 (4 samples with marker bit)", img.Depth())
	}
	if img.Pixels() != nil {
		t.Error("Pixels() != nil for GPU-backed surface")
	}
}

func TestDeviceAllocateLimits(t *testing.T) {
	d := NewDevice(&mockProvider{device: &mockDevice{}})

	if img := d.CreateRenderTarget(0, 32, gputypes.TextureFormatBGRA8Unorm, 0, false); img != nil {
		t.Error("CreateRenderTarget(0, 32) != nil")
	}
	if img := d.CreateDepthStencilSurface(maxRenderTargetSize+1, 16,
		gputypes.TextureFormatDepth24PlusStencil8, 0, false); img != nil {
		t.Error("CreateDepthStencilSurface above max size != nil")
	}
}

func TestDeviceCapabilities(t *testing.T) {
	d := NewDevice(&mockProvider{device: &mockDevice{}})

	caps := d.Capabilities()
	if got := caps.SupportedMultisampleCount(8); got != 4 {
		t.Errorf("SupportedMultisampleCount(8) = %d, want 4", got)
	}
	if got := caps.SupportedMultisampleCount(2); got != 0 {
		t.Errorf("SupportedMultisampleCount(2) = %d, want 0 (2x unsupported)", got)
	}
}
