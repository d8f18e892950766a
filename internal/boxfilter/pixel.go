// Package boxfilter implements box-filter halving and rescaling of images
// in any planar or packed pixel layout.
//
// The algorithms are written once over the Pixel interface. A Pixel decodes
// one group into float64 components and encodes a filtered mean back with its
// own rounding policy. Source planes may be strided and byte-swapped;
// destinations are always tightly packed in host byte order.
package boxfilter

import (
	"github.com/gogpu/mipmap/internal/codec"
	"github.com/gogpu/mipmap/pixfmt"
)

// Pixel reads and writes one pixel group.
type Pixel interface {
	// Components returns the number of decoded components, 1 to 4.
	Components() int

	// Size returns the byte size of one group.
	Size() int

	// Element returns the byte-swap unit of the layout.
	Element() int

	// Decode reads the group at the start of src.
	Decode(src []byte, swap bool, out *[4]float64)

	// Encode writes a group to the start of dst in host byte order.
	Encode(in *[4]float64, dst []byte)
}

// PackedPixel is a pixel stored in one packed element. Components are
// normalized to [0, 1] and re-quantized on Encode.
type PackedPixel struct {
	P codec.Packed
}

func (p PackedPixel) Components() int { return p.P.Components() }
func (p PackedPixel) Size() int       { return p.P.Size() }
func (p PackedPixel) Element() int    { return p.P.Size() }

func (p PackedPixel) Decode(src []byte, swap bool, out *[4]float64) {
	var c [4]float32
	codec.Extract(p.P, swap, src, &c)
	for i := range c {
		out[i] = float64(c[i])
	}
}

func (p PackedPixel) Encode(in *[4]float64, dst []byte) {
	var c [4]float32
	for i := range c {
		c[i] = float32(in[i])
	}
	codec.Shove(p.P, &c, 0, dst)
}

// ForType returns the pixel codec of a sample type holding the given number
// of components per group. Packed types ignore components. Bitmap has no
// byte-addressable codec and reports false.
func ForType(t pixfmt.Type, components int) (Pixel, bool) {
	if p, ok := codec.FromType(t); ok {
		return PackedPixel{P: p}, true
	}
	switch t {
	case pixfmt.UnsignedByte:
		return NewScalar[uint8](components), true
	case pixfmt.Byte:
		return NewScalar[int8](components), true
	case pixfmt.UnsignedShort:
		return NewScalar[uint16](components), true
	case pixfmt.Short:
		return NewScalar[int16](components), true
	case pixfmt.UnsignedInt:
		return NewScalar[uint32](components), true
	case pixfmt.Int:
		return NewScalar[int32](components), true
	case pixfmt.Float:
		return NewScalar[float32](components), true
	default:
		return nil, false
	}
}

// Canonical returns the codec of the canonical representation: one uint16
// per component.
func Canonical(components int) Pixel {
	return NewScalar[uint16](components)
}
