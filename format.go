package gles

import "github.com/gogpu/gputypes"

// TextureFormat is the engine-internal pixel format backing a surface.
// It is aliased from gputypes so gles stays interchangeable with the rest
// of the GoGPU ecosystem while keeping signatures readable.
type TextureFormat = gputypes.TextureFormat

// RenderbufferFormat maps a GL renderbuffer storage format to the internal
// texture format that backs it. Narrow color formats (RGBA4, RGB5_A1,
// RGB565) are widened to 8-bit channels, and every depth or stencil request
// is backed by the combined depth24/stencil8 surface; the GL-facing format
// is tracked separately by the storage object. Unknown formats map to
// TextureFormatUndefined.
func RenderbufferFormat(format Enum) TextureFormat {
	switch format {
	case RGBA4, RGB5A1, RGB565, RGB8, RGBA8:
		return gputypes.TextureFormatRGBA8Unorm
	case BGRA8:
		return gputypes.TextureFormatBGRA8Unorm
	case R8:
		return gputypes.TextureFormatR8Unorm
	case DepthComponent16, StencilIndex8, Depth24Stencil8:
		return gputypes.TextureFormatDepth24PlusStencil8
	default:
		return gputypes.TextureFormatUndefined
	}
}

// BackBufferFormat returns the canonical GL color format for an internal
// format. Used when wrapping an existing color surface whose GL-facing
// format is not otherwise known.
func BackBufferFormat(internal TextureFormat) Enum {
	switch internal {
	case gputypes.TextureFormatRGBA8Unorm:
		return RGBA8
	case gputypes.TextureFormatBGRA8Unorm:
		return BGRA8
	case gputypes.TextureFormatR8Unorm:
		return R8
	default:
		return RGBA4
	}
}

// DepthStencilFormat returns the canonical GL depth-stencil format for an
// internal format. Every depth-stencil surface is currently the combined
// depth24/stencil8 layout, so the answer is uniform; the switch grows when
// separate depth-only surfaces are introduced.
func DepthStencilFormat(internal TextureFormat) Enum {
	return Depth24Stencil8
}

// FormatBytes returns the per-pixel byte size of an internal format.
func FormatBytes(internal TextureFormat) int {
	switch internal {
	case gputypes.TextureFormatRGBA8Unorm,
		gputypes.TextureFormatBGRA8Unorm,
		gputypes.TextureFormatDepth24PlusStencil8:
		return 4
	case gputypes.TextureFormatR8Unorm:
		return 1
	default:
		return 0
	}
}

// Per-channel bit sizes, derived from the internal format. These back the
// glGetRenderbufferParameteriv size queries and are always computed, never
// stored.

// RedSize returns the red channel bit depth of an internal format.
func RedSize(internal TextureFormat) int {
	switch internal {
	case gputypes.TextureFormatRGBA8Unorm,
		gputypes.TextureFormatBGRA8Unorm,
		gputypes.TextureFormatR8Unorm:
		return 8
	default:
		return 0
	}
}

// GreenSize returns the green channel bit depth of an internal format.
func GreenSize(internal TextureFormat) int {
	switch internal {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return 8
	default:
		return 0
	}
}

// BlueSize returns the blue channel bit depth of an internal format.
func BlueSize(internal TextureFormat) int {
	switch internal {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return 8
	default:
		return 0
	}
}

// AlphaSize returns the alpha channel bit depth of an internal format.
func AlphaSize(internal TextureFormat) int {
	switch internal {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return 8
	default:
		return 0
	}
}

// DepthSize returns the depth channel bit depth of an internal format.
func DepthSize(internal TextureFormat) int {
	switch internal {
	case gputypes.TextureFormatDepth24PlusStencil8:
		return 24
	default:
		return 0
	}
}

// StencilSize returns the stencil channel bit depth of an internal format.
func StencilSize(internal TextureFormat) int {
	switch internal {
	case gputypes.TextureFormatDepth24PlusStencil8:
		return 8
	default:
		return 0
	}
}
