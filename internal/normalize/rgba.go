package normalize

import (
	"github.com/gogpu/mipmap/internal/codec"
	"github.com/gogpu/mipmap/pixfmt"
)

// ToRGBA8 expands an image of any legal format and type into tightly
// packed 8-bit RGBA, reading it with unpack modes s.
//
// Luminance replicates into red, green and blue. Missing color components
// are 0 and missing alpha is 255. BGR and BGRA are reordered. Index and
// depth values are shown as luminance.
func ToRGBA8(s pixfmt.PixelStore, w, h, d int, f pixfmt.Format, t pixfmt.Type, src []byte) ([]byte, error) {
	canon := make([]byte, CanonicalLen(w, h, d, f, t))
	if err := Fill(s, w, h, d, f, t, src, canon); err != nil {
		return nil, err
	}
	nc := pixfmt.GroupComponents(f, t)
	out := make([]byte, w*h*d*4)
	var c [4]byte
	for g, o := 0, 0; o < len(out); g, o = g+nc*2, o+4 {
		for i := 0; i < nc; i++ {
			c[i] = byte(codec.Load16(canon[g+2*i:], false) >> 8)
		}
		if f.IsIndex() {
			c[0] = byte(codec.Load16(canon[g:], false))
		}
		expand(f, c, out[o:o+4])
	}
	return out, nil
}

func expand(f pixfmt.Format, c [4]byte, px []byte) {
	r, g, b, a := byte(0), byte(0), byte(0), byte(255)
	switch f {
	case pixfmt.Red:
		r = c[0]
	case pixfmt.Green:
		g = c[0]
	case pixfmt.Blue:
		b = c[0]
	case pixfmt.Alpha:
		a = c[0]
	case pixfmt.RGB:
		r, g, b = c[0], c[1], c[2]
	case pixfmt.RGBA:
		r, g, b, a = c[0], c[1], c[2], c[3]
	case pixfmt.BGR:
		r, g, b = c[2], c[1], c[0]
	case pixfmt.BGRA:
		r, g, b, a = c[2], c[1], c[0], c[3]
	case pixfmt.LuminanceAlpha:
		r, g, b, a = c[0], c[0], c[0], c[1]
	default:
		r, g, b = c[0], c[0], c[0]
	}
	px[0], px[1], px[2], px[3] = r, g, b, a
}
