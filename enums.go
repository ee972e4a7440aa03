// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import "fmt"

// Enum is a GL enumerator value. The constants below are the subset the
// renderbuffer object model speaks: renderbuffer storage formats, error
// codes, and texture targets. Values match the Khronos GL headers.
type Enum uint32

// Renderbuffer storage formats.
const (
	RGBA4            Enum = 0x8056
	RGB5A1           Enum = 0x8057
	RGB565           Enum = 0x8D62
	RGB8             Enum = 0x8051
	RGBA8            Enum = 0x8058
	R8               Enum = 0x8229
	BGRA8            Enum = 0x93A1
	DepthComponent16 Enum = 0x81A5
	StencilIndex8    Enum = 0x8D48
	Depth24Stencil8  Enum = 0x88F0
)

// Error codes reported through the error sink.
const (
	NoError          Enum = 0
	InvalidEnum      Enum = 0x0500
	InvalidValue     Enum = 0x0501
	InvalidOperation Enum = 0x0502
	OutOfMemory      Enum = 0x0505
)

// Texture targets.
const (
	TextureTarget2D Enum = 0x0DE1
)

// String returns a readable name for known enumerators, falling back to the
// hexadecimal value.
func (e Enum) String() string {
	switch e {
	case NoError:
		return "NO_ERROR"
	case RGBA4:
		return "RGBA4"
	case RGB5A1:
		return "RGB5_A1"
	case RGB565:
		return "RGB565"
	case RGB8:
		return "RGB8"
	case RGBA8:
		return "RGBA8"
	case R8:
		return "R8"
	case BGRA8:
		return "BGRA8_EXT"
	case DepthComponent16:
		return "DEPTH_COMPONENT16"
	case StencilIndex8:
		return "STENCIL_INDEX8"
	case Depth24Stencil8:
		return "DEPTH24_STENCIL8"
	case InvalidEnum:
		return "INVALID_ENUM"
	case InvalidValue:
		return "INVALID_VALUE"
	case InvalidOperation:
		return "INVALID_OPERATION"
	case OutOfMemory:
		return "OUT_OF_MEMORY"
	case TextureTarget2D:
		return "TEXTURE_2D"
	default:
		return fmt.Sprintf("Enum(0x%04X)", uint32(e))
	}
}
