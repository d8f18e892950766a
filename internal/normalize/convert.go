package normalize

import (
	"math"

	"github.com/gogpu/mipmap/internal/codec"
	"github.com/gogpu/mipmap/pixfmt"
)

// toCanonical reads one element and returns its canonical value.
type toCanonical func(b []byte, swap bool) uint16

// fromCanonical writes one element in host byte order.
type fromCanonical func(v uint16, b []byte)

// decoder returns the element reader for a planar type. Color values are
// rescaled to the full uint16 range; index values keep their bits.
func decoder(t pixfmt.Type, index bool) toCanonical {
	switch t {
	case pixfmt.UnsignedByte:
		if index {
			return func(b []byte, _ bool) uint16 { return uint16(b[0]) }
		}
		return func(b []byte, _ bool) uint16 { return uint16(b[0]) * 257 }
	case pixfmt.Byte:
		if index {
			return func(b []byte, _ bool) uint16 { return uint16(int8(b[0])) }
		}
		return func(b []byte, _ bool) uint16 { return uint16(int32(int8(b[0])) * 516) }
	case pixfmt.UnsignedShort:
		return codec.Load16
	case pixfmt.Short:
		if index {
			return codec.Load16
		}
		return func(b []byte, swap bool) uint16 {
			return uint16(int32(int16(codec.Load16(b, swap))) * 2)
		}
	case pixfmt.UnsignedInt:
		if index {
			return func(b []byte, swap bool) uint16 { return uint16(codec.Load32(b, swap)) }
		}
		return func(b []byte, swap bool) uint16 { return uint16(codec.Load32(b, swap) >> 16) }
	case pixfmt.Int:
		if index {
			return func(b []byte, swap bool) uint16 { return uint16(codec.Load32(b, swap)) }
		}
		return func(b []byte, swap bool) uint16 {
			return uint16(int32(codec.Load32(b, swap)) >> 15)
		}
	case pixfmt.Float:
		if index {
			return func(b []byte, swap bool) uint16 {
				return clampU16(float64(codec.LoadFloat32(b, swap)))
			}
		}
		return func(b []byte, swap bool) uint16 {
			return clampU16(65535 * float64(codec.LoadFloat32(b, swap)))
		}
	default:
		return nil
	}
}

// encoder returns the element writer for a planar type, the inverse of
// decoder.
func encoder(t pixfmt.Type, index bool) fromCanonical {
	switch t {
	case pixfmt.UnsignedByte:
		if index {
			return func(v uint16, b []byte) { b[0] = byte(v) }
		}
		return func(v uint16, b []byte) { b[0] = byte(v >> 8) }
	case pixfmt.Byte:
		if index {
			return func(v uint16, b []byte) { b[0] = byte(v) }
		}
		return func(v uint16, b []byte) { b[0] = byte(v >> 9) }
	case pixfmt.UnsignedShort:
		return func(v uint16, b []byte) { codec.Store16(b, v) }
	case pixfmt.Short:
		if index {
			return func(v uint16, b []byte) { codec.Store16(b, v) }
		}
		return func(v uint16, b []byte) { codec.Store16(b, v>>1) }
	case pixfmt.UnsignedInt:
		if index {
			return func(v uint16, b []byte) { codec.Store32(b, uint32(v)) }
		}
		return func(v uint16, b []byte) { codec.Store32(b, uint32(v)*65537) }
	case pixfmt.Int:
		if index {
			return func(v uint16, b []byte) { codec.Store32(b, uint32(v)) }
		}
		return func(v uint16, b []byte) { codec.Store32(b, uint32(v)*65537/2) }
	case pixfmt.Float:
		if index {
			return func(v uint16, b []byte) { codec.StoreFloat32(b, float32(v)) }
		}
		return func(v uint16, b []byte) { codec.StoreFloat32(b, float32(v)/65535) }
	default:
		return nil
	}
}

// clampU16 truncates x toward zero into [0, 65535]. NaN maps to 0.
func clampU16(x float64) uint16 {
	switch {
	case !(x > 0):
		return 0
	case x >= math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(x)
}
