package mipmap

import (
	"github.com/gogpu/mipmap/internal/boxfilter"
	"github.com/gogpu/mipmap/pixfmt"
)

// fitKey identifies one closest-fit probe.
type fitKey struct {
	target   Target
	dims     boxfilter.Dims
	internal int32
	format   pixfmt.Format
	typ      pixfmt.Type
}

// closestFit returns the power-of-two extent the pyramid of src is built
// at. It probes the Context with the level-1 extent of the nearest power of
// two on the proxy target, halving until the device accepts it.
func (b *Builder) closestFit(src *Source, d boxfilter.Dims) boxfilter.Dims {
	key := fitKey{src.Target, d, src.InternalFormat, src.Format, src.Type}
	if b.fits != nil {
		if r, ok := b.fits.Get(key); ok {
			return r
		}
	}
	r := b.probe(src, d)
	if b.fits != nil {
		b.fits.Set(key, r)
	}
	b.log().Debug("mipmap: closest fit", "target", src.Target, "in", d, "out", r)
	return r
}

func (b *Builder) probe(src *Source, d boxfilter.Dims) boxfilter.Dims {
	p := boxfilter.Dims{
		Width:  pixfmt.NearestPower(d.Width),
		Height: pixfmt.NearestPower(d.Height),
		Depth:  pixfmt.NearestPower(d.Depth),
	}
	img := Image{
		Target:         src.Target.Proxy(),
		Level:          1,
		InternalFormat: src.InternalFormat,
		Format:         src.Format,
		Type:           src.Type,
		Alignment:      1,
	}
	for {
		one := p.Half()
		img.Width, img.Height, img.Depth = one.Width, one.Height, one.Depth
		if b.ctx.Fits(&img) {
			return p
		}
		if p.Unit() {
			break
		}
		p = one
	}

	if src.Target.Dimensions() == 3 {
		b.log().Warn("mipmap: no extent fits, using 1x1x1", "target", src.Target, "size", d)
		return boxfilter.Dims{Width: 1, Height: 1, Depth: 1}
	}
	b.log().Warn("mipmap: proxy probe failed, clamping to max texture size",
		"target", src.Target, "size", d)
	return b.clamp(src.Target, boxfilter.Dims{
		Width:  pixfmt.NearestPower(d.Width),
		Height: pixfmt.NearestPower(d.Height),
		Depth:  1,
	})
}

func (b *Builder) clamp(t Target, p boxfilter.Dims) boxfilter.Dims {
	limit := b.ctx.MaxTextureSize(t)
	if limit <= 0 {
		return p
	}
	p.Width = min(p.Width, limit)
	p.Height = min(p.Height, limit)
	p.Depth = min(p.Depth, limit)
	return p
}

// FitStats reports hits and misses of the closest-fit cache.
func (b *Builder) FitStats() (hits, misses uint64) {
	if b.fits == nil {
		return 0, 0
	}
	s := b.fits.Stats()
	return s.Hits, s.Misses
}
