// Package codec converts packed pixels to and from normalized float
// components.
//
// Every packed layout is a fixed table of bit fields. Extract reads one
// element (byte-reversing it first when asked) and divides each field by its
// maximum; Shove clamps, quantizes and writes one element in host byte
// order. Reversing the bytes of shoved elements is left to the caller.
package codec

import (
	"fmt"
	"math"

	"github.com/gogpu/mipmap/pixfmt"
)

// Packed identifies one packed pixel layout.
type Packed uint8

// Packed layouts, in the order of pixfmt.PackedTypes.
const (
	P332 Packed = iota
	P233Rev
	P565
	P565Rev
	P4444
	P4444Rev
	P5551
	P1555Rev
	P8888
	P8888Rev
	P1010102
	P2101010Rev

	numPacked
)

// field is one component of a packed element. The component value is
// (element & mask) >> shift, in [0, max].
type field struct {
	mask  uint32
	shift uint8
	max   uint32
}

type layout struct {
	typ    pixfmt.Type
	size   int
	n      int
	fields [4]field
}

// layouts holds the bit layout of each packed type. Field order is R, G, B, A.
var layouts = [numPacked]layout{
	P332: {pixfmt.UnsignedByte332, 1, 3, [4]field{
		{0xE0, 5, 7}, {0x1C, 2, 7}, {0x03, 0, 3},
	}},
	P233Rev: {pixfmt.UnsignedByte233Rev, 1, 3, [4]field{
		{0x07, 0, 7}, {0x38, 3, 7}, {0xC0, 6, 3},
	}},
	P565: {pixfmt.UnsignedShort565, 2, 3, [4]field{
		{0xF800, 11, 31}, {0x07E0, 5, 63}, {0x001F, 0, 31},
	}},
	P565Rev: {pixfmt.UnsignedShort565Rev, 2, 3, [4]field{
		{0x001F, 0, 31}, {0x07E0, 5, 63}, {0xF800, 11, 31},
	}},
	P4444: {pixfmt.UnsignedShort4444, 2, 4, [4]field{
		{0xF000, 12, 15}, {0x0F00, 8, 15}, {0x00F0, 4, 15}, {0x000F, 0, 15},
	}},
	P4444Rev: {pixfmt.UnsignedShort4444Rev, 2, 4, [4]field{
		{0x000F, 0, 15}, {0x00F0, 4, 15}, {0x0F00, 8, 15}, {0xF000, 12, 15},
	}},
	P5551: {pixfmt.UnsignedShort5551, 2, 4, [4]field{
		{0xF800, 11, 31}, {0x07C0, 6, 31}, {0x003E, 1, 31}, {0x0001, 0, 1},
	}},
	P1555Rev: {pixfmt.UnsignedShort1555Rev, 2, 4, [4]field{
		{0x001F, 0, 31}, {0x03E0, 5, 31}, {0x7C00, 10, 31}, {0x8000, 15, 1},
	}},
	P8888: {pixfmt.UnsignedInt8888, 4, 4, [4]field{
		{0xFF000000, 24, 255}, {0x00FF0000, 16, 255}, {0x0000FF00, 8, 255}, {0x000000FF, 0, 255},
	}},
	P8888Rev: {pixfmt.UnsignedInt8888Rev, 4, 4, [4]field{
		{0x000000FF, 0, 255}, {0x0000FF00, 8, 255}, {0x00FF0000, 16, 255}, {0xFF000000, 24, 255},
	}},
	P1010102: {pixfmt.UnsignedInt1010102, 4, 4, [4]field{
		{0xFFC00000, 22, 1023}, {0x003FF000, 12, 1023}, {0x00000FFC, 2, 1023}, {0x00000003, 0, 3},
	}},
	P2101010Rev: {pixfmt.UnsignedInt2101010Rev, 4, 4, [4]field{
		{0x000003FF, 0, 1023}, {0x000FFC00, 10, 1023}, {0x3FF00000, 20, 1023}, {0xC0000000, 30, 3},
	}},
}

// FromType returns the layout of a packed pixfmt type.
func FromType(t pixfmt.Type) (Packed, bool) {
	for p := range numPacked {
		if layouts[p].typ == t {
			return p, true
		}
	}
	return 0, false
}

// MustFromType is FromType for types already known to be packed.
func MustFromType(t pixfmt.Type) Packed {
	p, ok := FromType(t)
	if !ok {
		panic(fmt.Sprintf("codec: %v is not a packed type", t))
	}
	return p
}

// Type returns the pixfmt type of the layout.
func (p Packed) Type() pixfmt.Type { return layouts[p].typ }

// Size returns the element size in bytes: 1, 2 or 4.
func (p Packed) Size() int { return layouts[p].size }

// Components returns the number of fields: 3 or 4.
func (p Packed) Components() int { return layouts[p].n }

// Max returns the largest value field i can hold.
func (p Packed) Max(i int) uint32 { return layouts[p].fields[i].max }

func (p Packed) String() string {
	if p >= numPacked {
		return fmt.Sprintf("Packed(%d)", uint8(p))
	}
	return layouts[p].typ.String()
}

// Extract decodes the element at the start of src into out. Fields beyond
// Components are left untouched. When swap is set the bytes of the element
// are reversed before decoding.
func Extract(p Packed, swap bool, src []byte, out *[4]float32) {
	l := &layouts[p]
	v := load(l.size, swap, src)
	for i := 0; i < l.n; i++ {
		f := &l.fields[i]
		out[i] = float32((v&f.mask)>>f.shift) / float32(f.max)
	}
}

// Shove encodes in as element index of dst, in host byte order. Components
// are clamped to [0, 1] and rounded with floor(x*max + 0.5).
func Shove(p Packed, in *[4]float32, index int, dst []byte) {
	l := &layouts[p]
	var v uint32
	for i := 0; i < l.n; i++ {
		f := &l.fields[i]
		v |= (Quantize(in[i], f.max) << f.shift) & f.mask
	}
	store(l.size, v, dst[index*l.size:])
}

// Quantize maps c in [0, 1] onto [0, limit] with round-to-nearest. Values
// outside the range are clamped and NaN maps to 0.
func Quantize(c float32, limit uint32) uint32 {
	x := float64(c)
	switch {
	case !(x > 0):
		return 0
	case x >= 1:
		return limit
	}
	return uint32(math.Floor(x*float64(limit) + 0.5))
}

func load(size int, swap bool, src []byte) uint32 {
	switch size {
	case 1:
		return uint32(src[0])
	case 2:
		return uint32(Load16(src, swap))
	default:
		return Load32(src, swap)
	}
}

func store(size int, v uint32, dst []byte) {
	switch size {
	case 1:
		dst[0] = byte(v)
	case 2:
		Store16(dst, uint16(v))
	default:
		Store32(dst, v)
	}
}
