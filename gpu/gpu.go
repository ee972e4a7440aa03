// Package gpu registers the GPU device backend for renderbuffer surface
// allocation.
//
// Import this package to make GPU-backed surfaces available through the
// gles device registry. The backend needs a GPU device shared by the host
// application; until SetDeviceProvider is called it reports itself
// unavailable and the registry falls back to the software device.
//
// Usage:
//
//	import _ "github.com/gogpu/gles/gpu" // enable GPU surface allocation
//
//	gpu.SetDeviceProvider(app) // app implements gpucontext.DeviceProvider
//	device, err := gles.NewDevice()
package gpu

import (
	"errors"
	"sync"

	"github.com/gogpu/gles"
	"github.com/gogpu/gpucontext"
)

// ErrNoDeviceProvider is returned when the GPU backend is asked for a
// device before a provider has been configured.
var ErrNoDeviceProvider = errors.New("gpu: no device provider configured")

var (
	providerMu sync.RWMutex
	provider   gpucontext.DeviceProvider
)

func init() {
	gles.RegisterDevice("gpu", 100, newDevice, available)
}

// SetDeviceProvider configures the GPU backend to allocate surfaces on a
// shared GPU device from an external provider (e.g., gogpu). This avoids
// creating a separate GPU instance and enables efficient device sharing.
//
// Call this before creating devices, typically right after the host
// application has initialized its GPU context. Pass nil to make the
// backend unavailable again.
func SetDeviceProvider(p gpucontext.DeviceProvider) {
	providerMu.Lock()
	provider = p
	providerMu.Unlock()

	if p != nil {
		gles.Logger().Info("GPU device provider configured")
	}
}

// available reports whether a usable provider has been configured.
func available() bool {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return provider != nil && provider.Device() != nil
}

// newDevice is the registry factory for the GPU backend.
func newDevice() (gles.Device, error) {
	providerMu.RLock()
	p := provider
	providerMu.RUnlock()

	if p == nil {
		return nil, ErrNoDeviceProvider
	}
	return NewDevice(p), nil
}
