package normalize

import (
	"github.com/gogpu/mipmap/internal/codec"
	"github.com/gogpu/mipmap/pixfmt"
)

// bitMask returns the mask of bit i (0..7) within a byte. MSB-first order
// puts bit 0 in the high bit.
func bitMask(i int, lsbFirst bool) byte {
	if lsbFirst {
		return 1 << i
	}
	return 0x80 >> i
}

// fillBitmap expands one bit per component. A set bit is 65535, or 1 for
// index formats.
func fillBitmap(s pixfmt.PixelStore, w, h int, f pixfmt.Format, src, dst []byte) int {
	nc := f.Components()
	row := s.BitmapRowStride(w, nc)
	skip := s.SkipPixels * nc
	start := s.SkipRows*row + skip/8
	on := uint16(65535)
	if f.IsIndex() {
		on = 1
	}

	o := 0
	for y := 0; y < h; y++ {
		p := start + y*row
		bit := skip % 8
		for e := 0; e < w*nc; e++ {
			var v uint16
			if src[p]&bitMask(bit, s.LSBFirst) != 0 {
				v = on
			}
			codec.Store16(dst[o:], v)
			o += 2
			if bit++; bit == 8 {
				bit = 0
				p++
			}
		}
	}
	return o
}

// emptyBitmap packs one bit per component. Color values above 32767 set the
// bit; index values set it when odd. Other bits of the touched bytes are
// preserved.
func emptyBitmap(s pixfmt.PixelStore, w, h int, f pixfmt.Format, src, dst []byte) int {
	nc := f.Components()
	row := s.BitmapRowStride(w, nc)
	skip := s.SkipPixels * nc
	start := s.SkipRows*row + skip/8
	index := f.IsIndex()

	o := 0
	for y := 0; y < h; y++ {
		p := start + y*row
		bit := skip % 8
		for e := 0; e < w*nc; e++ {
			v := codec.Load16(src[o:], false)
			o += 2
			set := v > 32767
			if index {
				set = v&1 != 0
			}
			m := bitMask(bit, s.LSBFirst)
			if set {
				dst[p] |= m
			} else {
				dst[p] &^= m
			}
			if bit++; bit == 8 {
				bit = 0
				p++
			}
		}
	}
	return o
}
