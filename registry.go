// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gles

import (
	"errors"
	"sort"
	"sync"
)

// DeviceFactory creates a new Device.
// Implementations should validate their environment and return descriptive
// errors.
type DeviceFactory func() (Device, error)

// DeviceEntry represents a registered device backend.
type DeviceEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: GPU backends (via gpucontext device providers)
	//   - 10: the software rasterizer
	Priority int

	// Factory creates device instances.
	Factory DeviceFactory

	// Available reports if the backend is available on this system.
	Available func() bool
}

// globalDevices is the default registry.
var globalDevices = &DeviceRegistry{}

// DeviceRegistry manages registered surface-allocator backends.
//
// The registry lets GPU backends register themselves without requiring
// changes to the core library:
//
//	func init() {
//	    gles.RegisterDevice("gpu", 100, gpuFactory, gpuAvailable)
//	}
//
// Example usage:
//
//	device, err := gles.NewDevice() // best available
//	device, err := gles.NewDeviceByName("software")
type DeviceRegistry struct {
	mu      sync.RWMutex
	entries map[string]*DeviceEntry
}

// RegisterDevice adds a backend to the global registry.
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func RegisterDevice(name string, priority int, factory DeviceFactory, available func() bool) {
	globalDevices.Register(name, priority, factory, available)
}

// UnregisterDevice removes a backend from the global registry.
func UnregisterDevice(name string) {
	globalDevices.Unregister(name)
}

// ListDevices returns all registered backend names sorted by priority
// (highest first).
func ListDevices() []string {
	return globalDevices.List()
}

// AvailableDevices returns names of all available backends sorted by
// priority.
func AvailableDevices() []string {
	return globalDevices.Available()
}

// NewDevice creates a device using the best available backend.
// Returns an error if no backends are available.
func NewDevice() (Device, error) {
	return globalDevices.NewDevice()
}

// NewDeviceByName creates a device using a specific named backend.
func NewDeviceByName(name string) (Device, error) {
	return globalDevices.NewDeviceByName(name)
}

// Register adds a backend to this registry.
func (r *DeviceRegistry) Register(name string, priority int, factory DeviceFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*DeviceEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &DeviceEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *DeviceRegistry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *DeviceRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *DeviceRegistry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// NewDevice creates a device using the best available backend.
func (r *DeviceRegistry) NewDevice() (Device, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoDeviceAvailable
	}

	// Try each available backend in priority order.
	var lastErr error
	for _, name := range available {
		d, err := r.NewDeviceByName(name)
		if err == nil {
			return d, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoDeviceAvailable
}

// NewDeviceByName creates a device using a specific backend.
func (r *DeviceRegistry) NewDeviceByName(name string) (Device, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &DeviceNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &DeviceUnavailableError{Name: name}
	}

	d, err := entry.Factory()
	if err != nil {
		return nil, err
	}

	propagateLogger(d, Logger())
	Logger().Info("device backend selected", "name", name)
	return d, nil
}

// sortedNames returns backend names sorted by priority (highest first).
// If onlyAvailable is true, filters to available backends only.
// Must be called with lock held.
func (r *DeviceRegistry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Errors.
var (
	// ErrNoDeviceAvailable is returned when no device backends are
	// registered or available on the current system.
	ErrNoDeviceAvailable = errors.New("gles: no device backend available")
)

// DeviceNotFoundError indicates a named backend is not registered.
type DeviceNotFoundError struct {
	Name string
}

func (e *DeviceNotFoundError) Error() string {
	return "gles: device backend not found: " + e.Name
}

// DeviceUnavailableError indicates a backend exists but is not available.
type DeviceUnavailableError struct {
	Name string
}

func (e *DeviceUnavailableError) Error() string {
	return "gles: device backend unavailable: " + e.Name
}

// init registers the built-in software device backend.
func init() {
	RegisterDevice("software", 10, func() (Device, error) {
		return NewSoftwareDevice(SoftwareDeviceConfig{}), nil
	}, nil)
}
