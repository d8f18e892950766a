package boxfilter

// Halve writes the next mipmap level of src to dst and returns its extent.
//
// Every output group is the mean of the 2x2x2 input block it covers. Axes of
// extent 1 contribute a single sample, which yields the 4-neighbour kernel
// for images and 1-pixel-thick slices, the 2-neighbour kernel for rows and
// columns, and a plain copy for a single group. An odd extent drops its last
// row, column or image. Samples are summed x fastest, then y, then z.
//
// dst must hold Half().Len() groups.
func Halve(px Pixel, src Plane, dst []byte) Dims {
	out := src.Half()
	sx, sy, sz := taps(src.Width), taps(src.Height), taps(src.Depth)
	n := float64(sx * sy * sz)
	c := px.Components()
	g := px.Size()

	var acc, v [4]float64
	o := 0
	for z := 0; z < out.Depth; z++ {
		for y := 0; y < out.Height; y++ {
			for x := 0; x < out.Width; x++ {
				acc = [4]float64{}
				for k := 0; k < sz; k++ {
					for j := 0; j < sy; j++ {
						for i := 0; i < sx; i++ {
							px.Decode(src.Data[src.at(2*x+i, 2*y+j, 2*z+k):], src.Swap, &v)
							for ch := 0; ch < c; ch++ {
								acc[ch] += v[ch]
							}
						}
					}
				}
				for ch := 0; ch < c; ch++ {
					acc[ch] /= n
				}
				px.Encode(&acc, dst[o:])
				o += g
			}
		}
	}
	return out
}

func taps(n int) int {
	if n > 1 {
		return 2
	}
	return 1
}

// Halve1D halves a tightly packed row.
func Halve1D(px Pixel, src []byte, width int, swap bool, dst []byte) int {
	p := Tight(px, src, Dims{width, 1, 1})
	p.Swap = swap
	return Halve(px, p, dst).Width
}

// Halve2D halves a tightly packed image.
func Halve2D(px Pixel, src []byte, width, height int, swap bool, dst []byte) (int, int) {
	p := Tight(px, src, Dims{width, height, 1})
	p.Swap = swap
	d := Halve(px, p, dst)
	return d.Width, d.Height
}

// Halve3D halves a tightly packed volume.
func Halve3D(px Pixel, src []byte, d Dims, swap bool, dst []byte) Dims {
	p := Tight(px, src, d)
	p.Swap = swap
	return Halve(px, p, dst)
}
