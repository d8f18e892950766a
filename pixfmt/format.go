// Package pixfmt describes client pixel data: the OpenGL format and type
// enums, the per-format layout arithmetic, and the pixel storage modes that
// control row padding, skips and byte order.
//
// Values carry the numeric OpenGL enum values so they can be passed straight
// through to a GL-style collaborator.
package pixfmt

import "fmt"

// Format is a pixel format: which components a group holds and in what order.
type Format uint32

// Pixel formats.
const (
	ColorIndex     Format = 0x1900
	StencilIndex   Format = 0x1901
	DepthComponent Format = 0x1902
	Red            Format = 0x1903
	Green          Format = 0x1904
	Blue           Format = 0x1905
	Alpha          Format = 0x1906
	RGB            Format = 0x1907
	RGBA           Format = 0x1908
	Luminance      Format = 0x1909
	LuminanceAlpha Format = 0x190A
	BGR            Format = 0x80E0
	BGRA           Format = 0x80E1
)

// Legal reports whether f is a format the mipmap builder understands.
func (f Format) Legal() bool {
	switch f {
	case ColorIndex, StencilIndex, DepthComponent,
		Red, Green, Blue, Alpha,
		RGB, RGBA, Luminance, LuminanceAlpha,
		BGR, BGRA:
		return true
	default:
		return false
	}
}

// IsIndex reports whether f holds index values rather than normalized
// colors. Index data is copied bit-for-bit instead of being rescaled.
func (f Format) IsIndex() bool {
	return f == ColorIndex || f == StencilIndex
}

// Components returns the number of components per group for a planar type.
func (f Format) Components() int {
	switch f {
	case RGB, BGR:
		return 3
	case LuminanceAlpha:
		return 2
	case RGBA, BGRA:
		return 4
	default:
		return 1
	}
}

// String returns the GL name of the format.
func (f Format) String() string {
	switch f {
	case ColorIndex:
		return "COLOR_INDEX"
	case StencilIndex:
		return "STENCIL_INDEX"
	case DepthComponent:
		return "DEPTH_COMPONENT"
	case Red:
		return "RED"
	case Green:
		return "GREEN"
	case Blue:
		return "BLUE"
	case Alpha:
		return "ALPHA"
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	case Luminance:
		return "LUMINANCE"
	case LuminanceAlpha:
		return "LUMINANCE_ALPHA"
	case BGR:
		return "BGR"
	case BGRA:
		return "BGRA"
	default:
		return fmt.Sprintf("Format(0x%X)", uint32(f))
	}
}

// Type is the storage type of one element of a pixel group.
type Type uint32

// Sample types.
const (
	Bitmap        Type = 0x1A00
	Byte          Type = 0x1400
	UnsignedByte  Type = 0x1401
	Short         Type = 0x1402
	UnsignedShort Type = 0x1403
	Int           Type = 0x1404
	UnsignedInt   Type = 0x1405
	Float         Type = 0x1406
)

// Packed pixel types. One element holds every component of a group.
const (
	UnsignedByte332       Type = 0x8032
	UnsignedByte233Rev    Type = 0x8362
	UnsignedShort565      Type = 0x8363
	UnsignedShort565Rev   Type = 0x8364
	UnsignedShort4444     Type = 0x8033
	UnsignedShort4444Rev  Type = 0x8365
	UnsignedShort5551     Type = 0x8034
	UnsignedShort1555Rev  Type = 0x8366
	UnsignedInt8888       Type = 0x8035
	UnsignedInt8888Rev    Type = 0x8367
	UnsignedInt1010102    Type = 0x8036
	UnsignedInt2101010Rev Type = 0x8368
)

// PackedTypes lists every packed pixel type in a fixed order.
var PackedTypes = []Type{
	UnsignedByte332, UnsignedByte233Rev,
	UnsignedShort565, UnsignedShort565Rev,
	UnsignedShort4444, UnsignedShort4444Rev,
	UnsignedShort5551, UnsignedShort1555Rev,
	UnsignedInt8888, UnsignedInt8888Rev,
	UnsignedInt1010102, UnsignedInt2101010Rev,
}

// Legal reports whether t is a type the mipmap builder understands.
func (t Type) Legal() bool {
	switch t {
	case Bitmap, Byte, UnsignedByte, Short, UnsignedShort,
		Int, UnsignedInt, Float:
		return true
	}
	return t.Packed()
}

// Packed reports whether t is a packed pixel type.
func (t Type) Packed() bool {
	switch t {
	case UnsignedByte332, UnsignedByte233Rev,
		UnsignedShort565, UnsignedShort565Rev,
		UnsignedShort4444, UnsignedShort4444Rev,
		UnsignedShort5551, UnsignedShort1555Rev,
		UnsignedInt8888, UnsignedInt8888Rev,
		UnsignedInt1010102, UnsignedInt2101010Rev:
		return true
	default:
		return false
	}
}

// PackedComponents returns the number of components a packed type encodes,
// or 0 if t is not packed.
func (t Type) PackedComponents() int {
	switch t {
	case UnsignedByte332, UnsignedByte233Rev,
		UnsignedShort565, UnsignedShort565Rev:
		return 3
	case UnsignedShort4444, UnsignedShort4444Rev,
		UnsignedShort5551, UnsignedShort1555Rev,
		UnsignedInt8888, UnsignedInt8888Rev,
		UnsignedInt1010102, UnsignedInt2101010Rev:
		return 4
	default:
		return 0
	}
}

// BytesPerElement returns the storage size of one element. Bitmap elements
// are a single bit, so the result is fractional.
func (t Type) BytesPerElement() float64 {
	if t == Bitmap {
		return 1.0 / 8.0
	}
	return float64(t.ElementSize())
}

// ElementSize returns the byte size of one element. Bitmap reports 1, the
// unit its rows are addressed in.
func (t Type) ElementSize() int {
	switch t {
	case Bitmap, UnsignedByte, Byte, UnsignedByte332, UnsignedByte233Rev:
		return 1
	case UnsignedShort, Short,
		UnsignedShort565, UnsignedShort565Rev,
		UnsignedShort4444, UnsignedShort4444Rev,
		UnsignedShort5551, UnsignedShort1555Rev:
		return 2
	default:
		return 4
	}
}

// Signed reports whether t holds signed integers.
func (t Type) Signed() bool {
	return t == Byte || t == Short || t == Int
}

// String returns the GL name of the type.
func (t Type) String() string {
	switch t {
	case Bitmap:
		return "BITMAP"
	case Byte:
		return "BYTE"
	case UnsignedByte:
		return "UNSIGNED_BYTE"
	case Short:
		return "SHORT"
	case UnsignedShort:
		return "UNSIGNED_SHORT"
	case Int:
		return "INT"
	case UnsignedInt:
		return "UNSIGNED_INT"
	case Float:
		return "FLOAT"
	case UnsignedByte332:
		return "UNSIGNED_BYTE_3_3_2"
	case UnsignedByte233Rev:
		return "UNSIGNED_BYTE_2_3_3_REV"
	case UnsignedShort565:
		return "UNSIGNED_SHORT_5_6_5"
	case UnsignedShort565Rev:
		return "UNSIGNED_SHORT_5_6_5_REV"
	case UnsignedShort4444:
		return "UNSIGNED_SHORT_4_4_4_4"
	case UnsignedShort4444Rev:
		return "UNSIGNED_SHORT_4_4_4_4_REV"
	case UnsignedShort5551:
		return "UNSIGNED_SHORT_5_5_5_1"
	case UnsignedShort1555Rev:
		return "UNSIGNED_SHORT_1_5_5_5_REV"
	case UnsignedInt8888:
		return "UNSIGNED_INT_8_8_8_8"
	case UnsignedInt8888Rev:
		return "UNSIGNED_INT_8_8_8_8_REV"
	case UnsignedInt1010102:
		return "UNSIGNED_INT_10_10_10_2"
	case UnsignedInt2101010Rev:
		return "UNSIGNED_INT_2_10_10_10_REV"
	default:
		return fmt.Sprintf("Type(0x%X)", uint32(t))
	}
}
