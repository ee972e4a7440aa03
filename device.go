// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import "log/slog"

// Device allocates the pixel surfaces backing renderbuffer storages.
//
// Both allocation methods return a surface the caller owns (initial
// reference included) or nil when the device cannot satisfy the request;
// the storage layer turns nil into an OUT_OF_MEMORY raise. Allocation is
// attempted exactly once per request, never retried.
type Device interface {
	// CreateRenderTarget allocates a color surface. The lockable flag
	// requests CPU access to the pixels.
	CreateRenderTarget(width, height int, format TextureFormat, samples int, lockable bool) *Image

	// CreateDepthStencilSurface allocates a combined depth-stencil
	// surface.
	CreateDepthStencilSurface(width, height int, format TextureFormat, samples int, lockable bool) *Image

	// Capabilities returns the device's limits, including the supported
	// multisample counts.
	Capabilities() DeviceCapabilities
}

// DeviceCapabilities describes the limits of a surface allocator.
type DeviceCapabilities struct {
	// SampleCounts is the supported multisample set in ascending order.
	// 0 (or 1) means non-multisampled.
	SampleCounts []int

	// MaxRenderTargetSize is the maximum surface dimension (0 = unlimited).
	MaxRenderTargetSize int
}

// SupportedMultisampleCount snaps a requested sample count to the device's
// supported set: the largest supported count not exceeding the request.
// Requests above the maximum snap to the maximum; requests below the
// minimum snap to the minimum.
func (c DeviceCapabilities) SupportedMultisampleCount(requested int) int {
	if len(c.SampleCounts) == 0 {
		return 0
	}
	supported := c.SampleCounts[0]
	for _, s := range c.SampleCounts {
		if s > requested {
			break
		}
		supported = s
	}
	return supported
}

// PackSamples encodes a sample count into an Image depth field: samples|1
// for multisampled surfaces, 1 otherwise. Depth()&^1 recovers the count.
func PackSamples(samples int) int {
	if samples >= 2 {
		return samples | 1
	}
	return 1
}

// Default software device limits.
const (
	// DefaultMemoryBudgetMB is the default surface memory budget (256 MB).
	DefaultMemoryBudgetMB = 256

	// DefaultMaxRenderTargetSize is the default maximum surface dimension.
	DefaultMaxRenderTargetSize = 8192
)

// defaultSampleCounts is the multisample set of the software rasterizer.
var defaultSampleCounts = []int{0, 2, 4}

// SoftwareDeviceConfig holds configuration for creating a SoftwareDevice.
// The zero value selects the defaults.
type SoftwareDeviceConfig struct {
	// SampleCounts overrides the supported multisample set (ascending).
	SampleCounts []int

	// MemoryBudgetMB caps total live surface memory in megabytes.
	// Defaults to DefaultMemoryBudgetMB if <= 0.
	MemoryBudgetMB int

	// MaxRenderTargetSize caps surface dimensions.
	// Defaults to DefaultMaxRenderTargetSize if <= 0.
	MaxRenderTargetSize int
}

// SoftwareDevice allocates CPU-backed surfaces. It enforces a byte budget
// over all live surfaces it has allocated; an allocation that would exceed
// the budget fails, which the storage layer reports as OUT_OF_MEMORY.
//
// SoftwareDevice follows the package's single-goroutine ownership model.
type SoftwareDevice struct {
	caps        DeviceCapabilities
	budgetBytes uint64
	usedBytes   uint64
	logger      *slog.Logger
}

// NewSoftwareDevice creates a software surface allocator.
func NewSoftwareDevice(config SoftwareDeviceConfig) *SoftwareDevice {
	budgetMB := config.MemoryBudgetMB
	if budgetMB <= 0 {
		budgetMB = DefaultMemoryBudgetMB
	}
	maxSize := config.MaxRenderTargetSize
	if maxSize <= 0 {
		maxSize = DefaultMaxRenderTargetSize
	}
	samples := config.SampleCounts
	if len(samples) == 0 {
		samples = defaultSampleCounts
	}

	return &SoftwareDevice{
		caps: DeviceCapabilities{
			SampleCounts:        samples,
			MaxRenderTargetSize: maxSize,
		},
		budgetBytes: uint64(budgetMB) * 1024 * 1024,
		logger:      Logger(),
	}
}

// SetLogger configures the device's logger. The registry calls this with
// the package logger when handing out devices.
func (d *SoftwareDevice) SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	d.logger = l
}

// Capabilities returns the device limits.
func (d *SoftwareDevice) Capabilities() DeviceCapabilities {
	return d.caps
}

// CreateRenderTarget allocates a CPU-backed color surface, or nil if the
// request exceeds the device limits or budget.
func (d *SoftwareDevice) CreateRenderTarget(width, height int, format TextureFormat, samples int, lockable bool) *Image {
	return d.allocate(width, height, format, samples)
}

// CreateDepthStencilSurface allocates a CPU-backed depth-stencil surface,
// or nil if the request exceeds the device limits or budget.
func (d *SoftwareDevice) CreateDepthStencilSurface(width, height int, format TextureFormat, samples int, lockable bool) *Image {
	return d.allocate(width, height, format, samples)
}

func (d *SoftwareDevice) allocate(width, height int, format TextureFormat, samples int) *Image {
	if width <= 0 || height <= 0 {
		return nil
	}
	if width > d.caps.MaxRenderTargetSize || height > d.caps.MaxRenderTargetSize {
		d.logger.Warn("surface exceeds maximum render target size",
			"width", width, "height", height, "max", d.caps.MaxRenderTargetSize)
		return nil
	}

	size := uint64(width * height * FormatBytes(format))
	if d.usedBytes+size > d.budgetBytes {
		d.logger.Warn("surface allocation exceeds memory budget",
			"width", width, "height", height, "format", format,
			"sizeBytes", size, "usedBytes", d.usedBytes, "budgetBytes", d.budgetBytes)
		return nil
	}

	img := NewImage(width, height, PackSamples(samples), format)
	d.usedBytes += size
	img.SetDestroyFunc(func(*Image) {
		d.usedBytes -= size
	})

	d.logger.Debug("surface allocated",
		"width", width, "height", height, "format", format,
		"samples", samples, "sizeBytes", size)
	return img
}

// UsedBytes returns the live surface memory currently accounted against
// the budget.
func (d *SoftwareDevice) UsedBytes() uint64 {
	return d.usedBytes
}

// Ensure SoftwareDevice implements Device.
var _ Device = (*SoftwareDevice)(nil)
