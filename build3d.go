package mipmap

import (
	"fmt"

	"github.com/gogpu/mipmap/internal/boxfilter"
	"github.com/gogpu/mipmap/internal/normalize"
	"github.com/gogpu/mipmap/pixfmt"
)

// Build3DMipmaps uploads a full pyramid for a 3D target. The volume is
// rescaled to the largest power-of-two extent the Context accepts, then
// halved down to 1x1x1.
func (b *Builder) Build3DMipmaps(src Source) error {
	return b.build3D(&src, Levels{}, true)
}

// Build3DMipmapLevels uploads levels lv.Base through lv.Max of a 3D pyramid
// whose level lv.User is the source volume.
func (b *Builder) Build3DMipmapLevels(src Source, lv Levels) error {
	return b.build3D(&src, lv, false)
}

func (b *Builder) build3D(src *Source, lv Levels, auto bool) error {
	saved := b.ctx.StorageModes()
	defer b.ctx.SetStorageModes(saved)

	if src.Target.Dimensions() != 3 {
		return fmt.Errorf("%w: %s is not a 3D target", ErrInvalidEnum, src.Target)
	}
	if src.Type == pixfmt.Bitmap {
		return fmt.Errorf("%w: %s volumes are not supported", ErrInvalidEnum, src.Type)
	}
	if err := checkEnums(src.InternalFormat, src.Format, src.Type); err != nil {
		return err
	}
	if src.Width < 1 || src.Height < 1 || src.Depth < 1 {
		return fmt.Errorf("%w: size %dx%dx%d", ErrInvalidValue, src.Width, src.Height, src.Depth)
	}

	in := boxfilter.Dims{Width: src.Width, Height: src.Height, Depth: src.Depth}
	out := in
	if auto {
		out = b.closestFit(src, in)
	}
	p, err := b.prepare(src, lv, out, auto, saved.Unpack.Alignment)
	if err != nil {
		return err
	}
	if err := checkData(saved.Unpack, in.Width, in.Height, in.Depth, src.Format, src.Type, src.Data); err != nil {
		return err
	}

	b.enter(saved)
	defer p.bufs.release()

	px, _ := boxfilter.ForType(src.Type, src.Format.Components())
	if in == out {
		if err := p.bufs.grow(out.Len()*px.Size(), p.lv.User); err != nil {
			return err
		}
		boxfilter.Copy(px, sourcePlane(saved.Unpack, px, src.Data, in), p.bufs.next)
		p.bufs.swap()
		return b.run(p, px, out, b.emitNative(px))
	}

	// Rescale in canonical form, then continue natively from the result.
	if err := b.fillCanonical(p, saved.Unpack, in, out); err != nil {
		return err
	}
	if err := p.bufs.grow(out.Len()*px.Size(), p.lv.User); err != nil {
		return err
	}
	err = normalize.Empty(pixfmt.Tight(1), out.Width, out.Height, out.Depth,
		src.Format, src.Type, p.bufs.cur, p.bufs.next)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	}
	p.bufs.swap()
	return b.run(p, px, out, b.emitNative(px))
}
