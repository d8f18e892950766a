package codec

import (
	"encoding/binary"
	"math"
	"math/bits"
)

// HostOrder is the byte order of the machine. Canonical and upload buffers
// are always in host order.
var HostOrder = binary.NativeEndian

// Load16 reads a host-order uint16, byte-reversed when swap is set.
func Load16(b []byte, swap bool) uint16 {
	v := HostOrder.Uint16(b)
	if swap {
		v = bits.ReverseBytes16(v)
	}
	return v
}

// Load32 reads a host-order uint32, byte-reversed when swap is set.
func Load32(b []byte, swap bool) uint32 {
	v := HostOrder.Uint32(b)
	if swap {
		v = bits.ReverseBytes32(v)
	}
	return v
}

// LoadFloat32 reads a host-order float32, byte-reversed when swap is set.
func LoadFloat32(b []byte, swap bool) float32 {
	return math.Float32frombits(Load32(b, swap))
}

// Store16 writes v in host order.
func Store16(b []byte, v uint16) { HostOrder.PutUint16(b, v) }

// Store32 writes v in host order.
func Store32(b []byte, v uint32) { HostOrder.PutUint32(b, v) }

// StoreFloat32 writes v in host order.
func StoreFloat32(b []byte, v float32) { Store32(b, math.Float32bits(v)) }

// SwapInPlace byte-reverses every size-byte element of b. Sizes other than
// 2 and 4 leave b untouched.
func SwapInPlace(b []byte, size int) {
	switch size {
	case 2:
		for i := 0; i+1 < len(b); i += 2 {
			b[i], b[i+1] = b[i+1], b[i]
		}
	case 4:
		for i := 0; i+3 < len(b); i += 4 {
			b[i], b[i+1], b[i+2], b[i+3] = b[i+3], b[i+2], b[i+1], b[i]
		}
	}
}
