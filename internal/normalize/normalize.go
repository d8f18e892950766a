// Package normalize converts client pixel buffers to and from the canonical
// representation: one host-order uint16 per component, groups tightly
// packed, images contiguous.
//
// Fill reads with unpack storage modes and Empty writes with pack storage
// modes, so row length, skips, alignment, byte swapping and bitmap bit
// order are all honoured. Packed types go through the codec; scalar types
// are converted element by element.
package normalize

import (
	"errors"
	"fmt"

	"github.com/gogpu/mipmap/internal/codec"
	"github.com/gogpu/mipmap/pixfmt"
)

// ErrLayout reports a buffer that does not match its described layout.
// Callers that validated the layout treat it as a bug.
var ErrLayout = errors.New("normalize: buffer does not match layout")

// CanonicalLen returns the byte length of the canonical form of an image.
func CanonicalLen(w, h, d int, f pixfmt.Format, t pixfmt.Type) int {
	return w * h * d * pixfmt.GroupComponents(f, t) * 2
}

// SourceLen returns the number of bytes Fill reads from a client buffer.
func SourceLen(s pixfmt.PixelStore, w, h, d int, f pixfmt.Format, t pixfmt.Type) int {
	if t == pixfmt.Bitmap {
		return s.BitmapSpan(w, h, f.Components())
	}
	return s.Span(w, h, d, pixfmt.GroupSize(f, t))
}

// Fill converts a client image read with unpack modes s into canonical
// components in dst. d is 1 for 2D images.
func Fill(s pixfmt.PixelStore, w, h, d int, f pixfmt.Format, t pixfmt.Type, src, dst []byte) error {
	want := CanonicalLen(w, h, d, f, t)
	if len(dst) < want {
		return fmt.Errorf("%w: canonical buffer holds %d bytes, need %d", ErrLayout, len(dst), want)
	}
	if n := SourceLen(s, w, h, d, f, t); len(src) < n {
		return fmt.Errorf("%w: source holds %d bytes, layout spans %d", ErrLayout, len(src), n)
	}

	var n int
	switch {
	case t == pixfmt.Bitmap:
		if d != 1 {
			return fmt.Errorf("%w: bitmap volumes are not supported", ErrLayout)
		}
		n = fillBitmap(s, w, h, f, src, dst)
	case t.Packed():
		n = fillPacked(s, w, h, d, t, src, dst)
	default:
		dec := decoder(t, f.IsIndex())
		if dec == nil {
			return fmt.Errorf("%w: unsupported type %v", ErrLayout, t)
		}
		n = fillScalar(s, w, h, d, f, t, dec, src, dst)
	}
	if n != want {
		return fmt.Errorf("%w: produced %d bytes, want %d", ErrLayout, n, want)
	}
	return nil
}

func fillScalar(s pixfmt.PixelStore, w, h, d int, f pixfmt.Format, t pixfmt.Type,
	dec toCanonical, src, dst []byte) int {
	es := t.ElementSize()
	gs := pixfmt.GroupSize(f, t)
	row := s.RowStride(w, gs)
	img := s.ImageStride(h, row)
	start := s.Offset(gs, row, img)
	elems := w * f.Components()

	o := 0
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			p := start + z*img + y*row
			for e := 0; e < elems; e++ {
				codec.Store16(dst[o:], dec(src[p:], s.SwapBytes))
				p += es
				o += 2
			}
		}
	}
	return o
}

func fillPacked(s pixfmt.PixelStore, w, h, d int, t pixfmt.Type, src, dst []byte) int {
	pk := codec.MustFromType(t)
	gs := pk.Size()
	nc := pk.Components()
	row := s.RowStride(w, gs)
	img := s.ImageStride(h, row)
	start := s.Offset(gs, row, img)

	var c [4]float32
	o := 0
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			p := start + z*img + y*row
			for x := 0; x < w; x++ {
				codec.Extract(pk, s.SwapBytes, src[p:], &c)
				for i := 0; i < nc; i++ {
					codec.Store16(dst[o:], uint16(c[i]*65535))
					o += 2
				}
				p += gs
			}
		}
	}
	return o
}

// Empty converts canonical components in src into a client image written
// with pack modes s. Bytes outside the addressed groups are left untouched.
func Empty(s pixfmt.PixelStore, w, h, d int, f pixfmt.Format, t pixfmt.Type, src, dst []byte) error {
	want := CanonicalLen(w, h, d, f, t)
	if len(src) < want {
		return fmt.Errorf("%w: canonical buffer holds %d bytes, need %d", ErrLayout, len(src), want)
	}
	if n := SourceLen(s, w, h, d, f, t); len(dst) < n {
		return fmt.Errorf("%w: destination holds %d bytes, layout spans %d", ErrLayout, len(dst), n)
	}

	var n int
	switch {
	case t == pixfmt.Bitmap:
		if d != 1 {
			return fmt.Errorf("%w: bitmap volumes are not supported", ErrLayout)
		}
		n = emptyBitmap(s, w, h, f, src, dst)
	case t.Packed():
		n = emptyPacked(s, w, h, d, t, src, dst)
	default:
		enc := encoder(t, f.IsIndex())
		if enc == nil {
			return fmt.Errorf("%w: unsupported type %v", ErrLayout, t)
		}
		n = emptyScalar(s, w, h, d, f, t, enc, src, dst)
	}
	if n != want {
		return fmt.Errorf("%w: consumed %d bytes, want %d", ErrLayout, n, want)
	}
	return nil
}

func emptyScalar(s pixfmt.PixelStore, w, h, d int, f pixfmt.Format, t pixfmt.Type,
	enc fromCanonical, src, dst []byte) int {
	es := t.ElementSize()
	gs := pixfmt.GroupSize(f, t)
	row := s.RowStride(w, gs)
	img := s.ImageStride(h, row)
	start := s.Offset(gs, row, img)
	elems := w * f.Components()

	o := 0
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			p := start + z*img + y*row
			for e := 0; e < elems; e++ {
				enc(codec.Load16(src[o:], false), dst[p:])
				if s.SwapBytes {
					codec.SwapInPlace(dst[p:p+es], es)
				}
				p += es
				o += 2
			}
		}
	}
	return o
}

func emptyPacked(s pixfmt.PixelStore, w, h, d int, t pixfmt.Type, src, dst []byte) int {
	pk := codec.MustFromType(t)
	gs := pk.Size()
	nc := pk.Components()
	row := s.RowStride(w, gs)
	img := s.ImageStride(h, row)
	start := s.Offset(gs, row, img)

	var c [4]float32
	o := 0
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			p := start + z*img + y*row
			for x := 0; x < w; x++ {
				for i := 0; i < nc; i++ {
					c[i] = float32(codec.Load16(src[o:], false)) / 65535
					o += 2
				}
				codec.Shove(pk, &c, 0, dst[p:])
				if s.SwapBytes {
					codec.SwapInPlace(dst[p:p+gs], gs)
				}
				p += gs
			}
		}
	}
	return o
}
