// Package gles implements the renderbuffer attachment object model of a
// client-side OpenGL ES implementation for the GoGPU ecosystem.
//
// # Overview
//
// A Renderbuffer is an externally visible, named, reference-counted handle
// that can serve as a color, depth, or stencil attachment. The handle itself
// never stores pixels; it delegates to exactly one installed backing at a
// time:
//
//   - Colorbuffer, DepthStencilbuffer, Depthbuffer, Stencilbuffer: storages
//     that own a reference to a device-allocated Image surface.
//   - RenderbufferTexture2D: a proxy onto mip level 0 of an existing 2D
//     texture, forwarding all queries to the texture.
//
// Re-specifying storage (glRenderbufferStorage semantics) swaps the backing
// without changing the handle's identity:
//
//	device, _ := gles.NewDevice()
//	rb := gles.NewRenderbuffer(1, gles.NewColorbuffer(device, 64, 64, gles.RGBA4, 0))
//	rb.AddRef()
//
//	// Re-back the same handle with a larger surface.
//	rb.SetStorage(gles.NewColorbuffer(device, 256, 256, gles.RGBA4, 4))
//
//	rb.Release()
//
// # Devices
//
// Image surfaces are allocated through a Device. Backends register
// themselves in a priority registry; the built-in software device is always
// available, and importing the gpu subpackage registers a GPU device backed
// by a gpucontext.DeviceProvider from the host application.
//
// # Ownership
//
// RenderTarget and CreateSharedImage return a new owning reference on every
// call; the caller must Release it on every path, including error paths.
// Reference counts are plain counters: a Renderbuffer or Image must not be
// mutated concurrently from multiple goroutines without external
// synchronization.
package gles
