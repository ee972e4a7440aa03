package gpu

import (
	"log/slog"

	"github.com/gogpu/gles"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/core"
)

// GPU device limits. Conservative WebGPU baseline values; adapter-specific
// limits come later with real texture allocation.
const (
	maxRenderTargetSize = 8192
)

// gpuSampleCounts is the multisample set WebGPU render attachments
// guarantee.
var gpuSampleCounts = []int{0, 4}

// Device allocates GPU-backed surfaces on a shared device from the host
// application's gpucontext.DeviceProvider.
//
// Note: texture creation is a stub. Surfaces carry a zero core.TextureID
// until wgpu texture allocation is wired through the provider's device;
// geometry, format, and lifetime tracking are fully functional, which is
// all the attachment model needs.
type Device struct {
	provider gpucontext.DeviceProvider
	logger   *slog.Logger
}

// NewDevice creates a GPU surface allocator over the given provider.
func NewDevice(provider gpucontext.DeviceProvider) *Device {
	return &Device{
		provider: provider,
		logger:   gles.Logger(),
	}
}

// SetLogger configures the device's logger. The registry calls this with
// the package logger when handing out devices.
func (d *Device) SetLogger(l *slog.Logger) {
	if l != nil {
		d.logger = l
	}
}

// Capabilities returns the device limits.
func (d *Device) Capabilities() gles.DeviceCapabilities {
	return gles.DeviceCapabilities{
		SampleCounts:        gpuSampleCounts,
		MaxRenderTargetSize: maxRenderTargetSize,
	}
}

// CreateRenderTarget allocates a GPU-backed color surface, or nil if the
// request exceeds the device limits.
func (d *Device) CreateRenderTarget(width, height int, format gles.TextureFormat, samples int, lockable bool) *gles.Image {
	return d.allocate(width, height, format, samples)
}

// CreateDepthStencilSurface allocates a GPU-backed depth-stencil surface,
// or nil if the request exceeds the device limits.
func (d *Device) CreateDepthStencilSurface(width, height int, format gles.TextureFormat, samples int, lockable bool) *gles.Image {
	return d.allocate(width, height, format, samples)
}

func (d *Device) allocate(width, height int, format gles.TextureFormat, samples int) *gles.Image {
	if width <= 0 || height <= 0 {
		return nil
	}
	if width > maxRenderTargetSize || height > maxRenderTargetSize {
		d.logger.Warn("surface exceeds maximum render target size",
			"width", width, "height", height, "max", maxRenderTargetSize)
		return nil
	}

	// TODO: create the texture through d.provider.Device() once wgpu
	// texture allocation is exposed by gpucontext; until then the image
	// carries a zero handle.
	var texture core.TextureID

	d.logger.Debug("GPU surface allocated",
		"width", width, "height", height, "format", format, "samples", samples)
	return gles.NewGPUImage(width, height, gles.PackSamples(samples), format, texture)
}

// Ensure Device implements gles.Device.
var _ gles.Device = (*Device)(nil)
