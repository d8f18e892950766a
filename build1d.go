package mipmap

import (
	"fmt"

	"github.com/gogpu/mipmap/internal/boxfilter"
	"github.com/gogpu/mipmap/pixfmt"
)

// Build1DMipmaps uploads a full pyramid for a 1D target. The row is
// rescaled to the nearest power of two no larger than the maximum texture
// size, then halved down to a single texel.
func (b *Builder) Build1DMipmaps(src Source) error {
	return b.build1D(&src, Levels{}, true)
}

// Build1DMipmapLevels uploads levels lv.Base through lv.Max of a 1D pyramid
// whose level lv.User is the source row.
func (b *Builder) Build1DMipmapLevels(src Source, lv Levels) error {
	return b.build1D(&src, lv, false)
}

// build1D always goes through the canonical representation: rows are short
// and the rescale and halving then share one code path for every type.
func (b *Builder) build1D(src *Source, lv Levels, auto bool) error {
	saved := b.ctx.StorageModes()
	defer b.ctx.SetStorageModes(saved)

	if src.Target.Dimensions() != 1 {
		return fmt.Errorf("%w: %s is not a 1D target", ErrInvalidEnum, src.Target)
	}
	if err := checkEnums(src.InternalFormat, src.Format, src.Type); err != nil {
		return err
	}
	if src.Width < 1 {
		return fmt.Errorf("%w: width %d", ErrInvalidValue, src.Width)
	}

	in := boxfilter.Dims{Width: src.Width, Height: 1, Depth: 1}
	out := in
	if auto {
		out = b.closestFit(src, in)
	}
	p, err := b.prepare(src, lv, out, auto, saved.Unpack.Alignment)
	if err != nil {
		return err
	}
	if err := checkData(saved.Unpack, in.Width, 1, 1, src.Format, src.Type, src.Data); err != nil {
		return err
	}

	b.enter(saved)
	defer p.bufs.release()

	if err := b.fillCanonical(p, saved.Unpack, in, out); err != nil {
		return err
	}
	px := boxfilter.Canonical(pixfmt.GroupComponents(src.Format, src.Type))
	return b.run(p, px, out, b.emitCanonical)
}
