package boxfilter

import (
	"fmt"

	"github.com/gogpu/mipmap/internal/codec"
)

// Dims is the extent of an image. 1D images have Height and Depth 1, 2D
// images have Depth 1.
type Dims struct {
	Width, Height, Depth int
}

// Half returns the extent of the next mipmap level: every axis halves and
// stops at 1.
func (d Dims) Half() Dims {
	return Dims{half(d.Width), half(d.Height), half(d.Depth)}
}

// Len returns the number of groups.
func (d Dims) Len() int { return d.Width * d.Height * d.Depth }

// Unit reports whether every axis is 1.
func (d Dims) Unit() bool { return d.Width == 1 && d.Height == 1 && d.Depth == 1 }

func (d Dims) String() string {
	return fmt.Sprintf("%dx%dx%d", d.Width, d.Height, d.Depth)
}

func half(n int) int {
	if n > 1 {
		return n / 2
	}
	return 1
}

// Plane is a strided view of pixel groups.
type Plane struct {
	Data []byte
	Dims

	// Group, Row and Image are the byte distances between neighbouring
	// groups, rows and images.
	Group, Row, Image int

	// Swap marks multi-byte elements as byte-reversed relative to the host.
	Swap bool
}

// Tight returns a host-order plane of tightly packed groups.
func Tight(px Pixel, data []byte, d Dims) Plane {
	g := px.Size()
	return Plane{
		Data:  data,
		Dims:  d,
		Group: g,
		Row:   g * d.Width,
		Image: g * d.Width * d.Height,
	}
}

// at returns the byte offset of group (x, y, z).
func (p *Plane) at(x, y, z int) int {
	return z*p.Image + y*p.Row + x*p.Group
}

// Copy writes the groups of src tightly packed in host byte order to dst and
// returns the number of bytes written. Group bytes are copied verbatim apart
// from the byte swap, so no rounding happens.
func Copy(px Pixel, src Plane, dst []byte) int {
	g := px.Size()
	e := px.Element()
	o := 0
	for z := 0; z < src.Depth; z++ {
		for y := 0; y < src.Height; y++ {
			if !src.Swap && src.Group == g {
				off := src.at(0, y, z)
				o += copy(dst[o:], src.Data[off:off+g*src.Width])
				continue
			}
			for x := 0; x < src.Width; x++ {
				off := src.at(x, y, z)
				copy(dst[o:o+g], src.Data[off:off+g])
				if src.Swap {
					codec.SwapInPlace(dst[o:o+g], e)
				}
				o += g
			}
		}
	}
	return o
}
