package mipmap

import (
	"fmt"

	"github.com/gogpu/mipmap/internal/boxfilter"
	"github.com/gogpu/mipmap/pixfmt"
)

// Build2DMipmaps uploads a full pyramid for a 2D or cube-map face target.
//
// The source is rescaled to the largest power-of-two extent the Context
// accepts, then halved down to 1x1. Every level is uploaded.
func (b *Builder) Build2DMipmaps(src Source) error {
	return b.build2D(&src, Levels{}, true)
}

// Build2DMipmapLevels uploads levels lv.Base through lv.Max of a pyramid
// whose level lv.User is the source image. The source is not rescaled, so
// its extents should be powers of two.
func (b *Builder) Build2DMipmapLevels(src Source, lv Levels) error {
	return b.build2D(&src, lv, false)
}

func (b *Builder) build2D(src *Source, lv Levels, auto bool) error {
	saved := b.ctx.StorageModes()
	defer b.ctx.SetStorageModes(saved)

	if src.Target.Dimensions() != 2 {
		return fmt.Errorf("%w: %s is not a 2D target", ErrInvalidEnum, src.Target)
	}
	if err := checkEnums(src.InternalFormat, src.Format, src.Type); err != nil {
		return err
	}
	if src.Width < 1 || src.Height < 1 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidValue, src.Width, src.Height)
	}

	in := boxfilter.Dims{Width: src.Width, Height: src.Height, Depth: 1}
	out := in
	if auto {
		out = b.closestFit(src, in)
	}
	p, err := b.prepare(src, lv, out, auto, saved.Unpack.Alignment)
	if err != nil {
		return err
	}
	if err := checkData(saved.Unpack, in.Width, in.Height, 1, src.Format, src.Type, src.Data); err != nil {
		return err
	}

	b.enter(saved)
	defer p.bufs.release()

	px, native := boxfilter.ForType(src.Type, src.Format.Components())
	if !native {
		if err := b.fillCanonical(p, saved.Unpack, in, out); err != nil {
			return err
		}
		cpx := boxfilter.Canonical(pixfmt.GroupComponents(src.Format, src.Type))
		return b.run(p, cpx, out, b.emitCanonical)
	}

	if err := p.bufs.grow(out.Len()*px.Size(), p.lv.User); err != nil {
		return err
	}
	plane := sourcePlane(saved.Unpack, px, src.Data, in)
	if in == out {
		boxfilter.Copy(px, plane, p.bufs.next)
	} else {
		boxfilter.Scale(px, plane, p.bufs.next, out)
		b.log().Debug("mipmap: rescaled to power of two", "from", in, "to", out)
	}
	p.bufs.swap()
	return b.run(p, px, out, b.emitNative(px))
}
