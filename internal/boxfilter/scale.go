package boxfilter

import "math"

// tap is one input sample contributing to an output sample along one axis.
type tap struct {
	i int
	w float64
}

// footprints returns, for each of the out samples of an axis, the input
// samples its box covers and their coverage.
//
// Shrinking, output sample o covers [o*in/out, (o+1)*in/out) clamped to
// [0, in). Growing, it covers a box of one input sample centred on
// (o+0.5)*in/out, and indices past either end wrap around.
func footprints(in, out int) [][]tap {
	fp := make([][]tap, out)
	conv := float64(in) / float64(out)
	for o := range fp {
		var lo, hi float64
		if in >= out {
			lo = float64(o) * conv
			hi = math.Min(float64(o+1)*conv, float64(in))
		} else {
			c := (float64(o) + 0.5) * conv
			lo, hi = c-0.5, c+0.5
		}
		for i := int(math.Floor(lo)); float64(i) < hi; i++ {
			w := math.Min(float64(i+1), hi) - math.Max(float64(i), lo)
			if w <= 0 {
				continue
			}
			fp[o] = append(fp[o], tap{(i%in + in) % in, w})
		}
	}
	return fp
}

// Scale resamples src to the extent out with a box filter, writing tightly
// packed host-order groups to dst.
//
// Each output group is the coverage-weighted mean of the input groups its
// box overlaps. Each axis is filtered independently, so one may grow while
// another shrinks. When every axis is exactly halved, or stays at 1, Scale
// uses Halve, which gives the same bytes.
func Scale(px Pixel, src Plane, dst []byte, out Dims) {
	if halving(src.Width, out.Width) && halving(src.Height, out.Height) &&
		halving(src.Depth, out.Depth) {
		Halve(px, src, dst)
		return
	}
	scale(px, src, dst, out)
}

func halving(in, out int) bool {
	return in == 2*out || (in == 1 && out == 1)
}

func scale(px Pixel, src Plane, dst []byte, out Dims) {
	xs := footprints(src.Width, out.Width)
	ys := footprints(src.Height, out.Height)
	zs := footprints(src.Depth, out.Depth)
	c := px.Components()
	g := px.Size()

	var acc, v [4]float64
	o := 0
	for oz := range zs {
		for oy := range ys {
			for ox := range xs {
				acc = [4]float64{}
				area := 0.0
				for _, tz := range zs[oz] {
					for _, ty := range ys[oy] {
						wzy := tz.w * ty.w
						for _, tx := range xs[ox] {
							w := wzy * tx.w
							px.Decode(src.Data[src.at(tx.i, ty.i, tz.i):], src.Swap, &v)
							for ch := 0; ch < c; ch++ {
								acc[ch] += w * v[ch]
							}
							area += w
						}
					}
				}
				for ch := 0; ch < c; ch++ {
					acc[ch] /= area
				}
				px.Encode(&acc, dst[o:])
				o += g
			}
		}
	}
}

// Scale2D resamples a tightly packed image.
func Scale2D(px Pixel, src []byte, win, hin int, swap bool, dst []byte, wout, hout int) {
	p := Tight(px, src, Dims{win, hin, 1})
	p.Swap = swap
	Scale(px, p, dst, Dims{wout, hout, 1})
}
