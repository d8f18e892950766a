package mipmap

import (
	"fmt"

	"github.com/gogpu/mipmap/internal/boxfilter"
	"github.com/gogpu/mipmap/internal/normalize"
	"github.com/gogpu/mipmap/pixfmt"
)

// ScaleImage resamples a 2D image with a box filter. in is read with the
// Context's unpack storage modes and out is written with its pack modes;
// the sample types may differ. A zero extent is a successful no-op.
func (b *Builder) ScaleImage(f pixfmt.Format,
	win, hin int, tin pixfmt.Type, in []byte,
	wout, hout int, tout pixfmt.Type, out []byte,
) error {
	return b.scale(f,
		size(win, hin, 1), tin, in,
		size(wout, hout, 1), tout, out, false)
}

// ScaleImage3D resamples a volume like ScaleImage. Bitmap is not accepted.
func (b *Builder) ScaleImage3D(f pixfmt.Format,
	win, hin, din int, tin pixfmt.Type, in []byte,
	wout, hout, dout int, tout pixfmt.Type, out []byte,
) error {
	return b.scale(f,
		size(win, hin, din), tin, in,
		size(wout, hout, dout), tout, out, true)
}

// extent is a client-supplied size, which may be zero or negative.
type extent struct{ boxfilter.Dims }

func size(w, h, d int) extent {
	return extent{boxfilter.Dims{Width: w, Height: h, Depth: d}}
}

func (e extent) empty() bool { return e.Width == 0 || e.Height == 0 || e.Depth == 0 }

func (e extent) negative() bool { return e.Width < 0 || e.Height < 0 || e.Depth < 0 }

func (b *Builder) scale(f pixfmt.Format,
	din extent, tin pixfmt.Type, in []byte,
	dout extent, tout pixfmt.Type, out []byte, volume bool,
) error {
	if din.empty() || dout.empty() {
		return nil
	}
	if din.negative() || dout.negative() {
		return fmt.Errorf("%w: size %s to %s", ErrInvalidValue, din, dout)
	}
	for _, t := range [...]pixfmt.Type{tin, tout} {
		if err := checkFormat(f, t); err != nil {
			return err
		}
		if volume && t == pixfmt.Bitmap {
			return fmt.Errorf("%w: %s volumes are not supported", ErrInvalidEnum, t)
		}
	}
	if err := checkPacked(f, tin); err != nil {
		return err
	}
	if err := checkPacked(f, tout); err != nil {
		return err
	}

	modes := b.ctx.StorageModes()
	if err := checkData(modes.Unpack, din.Width, din.Height, din.Depth, f, tin, in); err != nil {
		return err
	}
	if err := checkData(modes.Pack, dout.Width, dout.Height, dout.Depth, f, tout, out); err != nil {
		return err
	}

	n := f.Components()
	before, err := b.alloc.Get(din.Len() * n * 2)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}
	defer b.alloc.Put(before)
	after, err := b.alloc.Get(dout.Len() * n * 2)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}
	defer b.alloc.Put(after)

	err = normalize.Fill(modes.Unpack, din.Width, din.Height, din.Depth, f, tin, in, before)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	px := boxfilter.Canonical(n)
	boxfilter.Scale(px, boxfilter.Tight(px, before, din.Dims), after, dout.Dims)
	err = normalize.Empty(modes.Pack, dout.Width, dout.Height, dout.Depth, f, tout, after, out)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	b.log().Debug("mipmap: image scaled", "format", f, "from", din, "to", dout,
		"in", tin, "out", tout)
	return nil
}

// ScaleImage resamples a 2D image with a default Builder for ctx.
func ScaleImage(ctx Context, f pixfmt.Format,
	win, hin int, tin pixfmt.Type, in []byte,
	wout, hout int, tout pixfmt.Type, out []byte,
) error {
	return New(ctx).ScaleImage(f, win, hin, tin, in, wout, hout, tout, out)
}

// ScaleImage3D resamples a volume with a default Builder for ctx.
func ScaleImage3D(ctx Context, f pixfmt.Format,
	win, hin, din int, tin pixfmt.Type, in []byte,
	wout, hout, dout int, tout pixfmt.Type, out []byte,
) error {
	return New(ctx).ScaleImage3D(f, win, hin, din, tin, in, wout, hout, dout, tout, out)
}
