package mipmap

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/mipmap/internal/boxfilter"
	"github.com/gogpu/mipmap/internal/cache"
	"github.com/gogpu/mipmap/internal/normalize"
	"github.com/gogpu/mipmap/pixfmt"
)

// Builder builds mipmap pyramids on the CPU and uploads them through a
// Context.
//
// A Builder is safe for concurrent use only if its Context is; builds swap
// the Context's storage modes for their duration.
type Builder struct {
	ctx   Context
	opts  options
	fits  *cache.Cache[fitKey, boxfilter.Dims]
	alloc Allocator
}

// New creates a Builder that uploads to ctx.
func New(ctx Context, opts ...Option) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	b := &Builder{ctx: ctx, opts: o, alloc: o.alloc}
	if o.fitSize > 0 {
		b.fits = cache.New[fitKey, boxfilter.Dims](o.fitSize)
	}
	return b
}

// Context returns the Context the Builder uploads to.
func (b *Builder) Context() Context { return b.ctx }

func (b *Builder) log() *slog.Logger {
	if b.opts.logger != nil {
		return b.opts.logger
	}
	return Logger()
}

// plan is one pyramid build after validation.
type plan struct {
	src   *Source
	lv    Levels
	total int // number of the last level
	align int // unpack alignment captured at entry
	bufs  levels
}

// prepare resolves the levels of a build whose level-user image has
// extent d. Automatic builds upload every level.
func (b *Builder) prepare(src *Source, lv Levels, d boxfilter.Dims, auto bool, align int) (*plan, error) {
	total := pixfmt.LevelCount(d.Width, d.Height, d.Depth) + lv.User
	if auto {
		lv = Levels{Max: total}
	}
	if !lv.legal(total) {
		return nil, fmt.Errorf("%w: levels %s outside 0..%d", ErrInvalidValue, lv, total)
	}
	return &plan{
		src:   src,
		lv:    lv,
		total: total,
		align: align,
		bufs:  levels{alloc: b.alloc},
	}, nil
}

// enter installs the upload storage modes: unpack rows aligned as the
// client had them, without skips, row length or byte swapping.
func (b *Builder) enter(saved pixfmt.StorageModes) {
	m := saved
	m.Unpack = pixfmt.Tight(saved.Unpack.Alignment)
	b.ctx.SetStorageModes(m)
}

// emitter uploads level data of extent d held in a build buffer.
type emitter func(p *plan, level int, d boxfilter.Dims, data []byte) error

// run computes every level of p starting from p.bufs.cur, which holds the
// level-user image of extent d in the layout of px, and hands the levels in
// the upload range to emit.
func (b *Builder) run(p *plan, px boxfilter.Pixel, d boxfilter.Dims, emit emitter) error {
	for level := p.lv.User; level <= p.total; level++ {
		if level >= p.lv.Base && level <= p.lv.Max {
			if err := emit(p, level, d, p.bufs.cur); err != nil {
				return err
			}
		} else {
			b.log().Debug("mipmap: level computed", "level", level, "size", d)
		}
		if level == p.total {
			break
		}
		next := d.Half()
		if err := p.bufs.grow(next.Len()*px.Size(), level+1); err != nil {
			return err
		}
		boxfilter.Halve(px, boxfilter.Tight(px, p.bufs.cur, d), p.bufs.next)
		p.bufs.swap()
		d = next
	}
	b.log().Info("mipmap: pyramid built",
		"target", p.src.Target,
		"format", p.src.Format,
		"type", p.src.Type,
		"levels", p.lv.Max-p.lv.Base+1)
	return nil
}

// emitNative uploads a tightly packed native level, padding rows to the
// unpack alignment when needed.
func (b *Builder) emitNative(px boxfilter.Pixel) emitter {
	return func(p *plan, level int, d boxfilter.Dims, data []byte) error {
		g := px.Size()
		tight := d.Width * g
		stride := pixfmt.Tight(p.align).RowStride(d.Width, g)
		if stride == tight {
			return b.upload(p, level, d, data[:d.Len()*g])
		}

		rows := d.Height * d.Depth
		buf, err := p.bufs.get(stride*rows, level)
		if err != nil {
			return err
		}
		defer p.bufs.put(buf)
		for r := 0; r < rows; r++ {
			copy(buf[r*stride:r*stride+tight], data[r*tight:])
			clear(buf[r*stride+tight : (r+1)*stride])
		}
		return b.upload(p, level, d, buf)
	}
}

// emitCanonical converts a canonical level to the source format and type
// and uploads it.
func (b *Builder) emitCanonical(p *plan, level int, d boxfilter.Dims, data []byte) error {
	s := pixfmt.Tight(p.align)
	f, t := p.src.Format, p.src.Type
	buf, err := p.bufs.get(normalize.SourceLen(s, d.Width, d.Height, d.Depth, f, t), level)
	if err != nil {
		return err
	}
	defer p.bufs.put(buf)
	clear(buf)
	if err := normalize.Empty(s, d.Width, d.Height, d.Depth, f, t, data, buf); err != nil {
		return fmt.Errorf("%w: level %d: %w", ErrInvalidOperation, level, err)
	}
	return b.upload(p, level, d, buf)
}

func (b *Builder) upload(p *plan, level int, d boxfilter.Dims, data []byte) error {
	img := Image{
		Target:         p.src.Target,
		Level:          level,
		InternalFormat: p.src.InternalFormat,
		Width:          d.Width,
		Height:         d.Height,
		Depth:          d.Depth,
		Format:         p.src.Format,
		Type:           p.src.Type,
		Alignment:      p.align,
		Data:           data,
	}
	if err := b.ctx.Upload(&img); err != nil {
		return fmt.Errorf("mipmap: upload %s: %w", &img, err)
	}
	b.log().Debug("mipmap: level uploaded", "level", level, "size", d, "bytes", len(data))
	return nil
}

// sourcePlane addresses the client image of src with the unpack modes s.
func sourcePlane(s pixfmt.PixelStore, px boxfilter.Pixel, data []byte, d boxfilter.Dims) boxfilter.Plane {
	g := px.Size()
	row := s.RowStride(d.Width, g)
	img := s.ImageStride(d.Height, row)
	return boxfilter.Plane{
		Data:  data[s.Offset(g, row, img):],
		Dims:  d,
		Group: g,
		Row:   row,
		Image: img,
		Swap:  s.SwapBytes,
	}
}

// fillCanonical converts the client image of src to canonical components
// in a new build buffer, then rescales it to out when the extents differ.
// It leaves the result in p.bufs.cur.
func (b *Builder) fillCanonical(p *plan, s pixfmt.PixelStore, in, out boxfilter.Dims) error {
	src := p.src
	n := pixfmt.GroupComponents(src.Format, src.Type)
	if err := p.bufs.grow(in.Len()*n*2, p.lv.User); err != nil {
		return err
	}
	if err := normalize.Fill(s, in.Width, in.Height, in.Depth, src.Format, src.Type, src.Data, p.bufs.next); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	p.bufs.swap()
	if in == out {
		return nil
	}

	px := boxfilter.Canonical(n)
	if err := p.bufs.grow(out.Len()*n*2, p.lv.User); err != nil {
		return err
	}
	boxfilter.Scale(px, boxfilter.Tight(px, p.bufs.cur, in), p.bufs.next, out)
	p.bufs.swap()
	b.log().Debug("mipmap: rescaled to power of two", "from", in, "to", out)
	return nil
}

// Build1DMipmaps builds a 1D pyramid with a default Builder for ctx.
func Build1DMipmaps(ctx Context, src Source) error {
	return New(ctx).Build1DMipmaps(src)
}

// Build1DMipmapLevels builds selected levels of a 1D pyramid.
func Build1DMipmapLevels(ctx Context, src Source, lv Levels) error {
	return New(ctx).Build1DMipmapLevels(src, lv)
}

// Build2DMipmaps builds a 2D or cube-map face pyramid.
func Build2DMipmaps(ctx Context, src Source) error {
	return New(ctx).Build2DMipmaps(src)
}

// Build2DMipmapLevels builds selected levels of a 2D pyramid.
func Build2DMipmapLevels(ctx Context, src Source, lv Levels) error {
	return New(ctx).Build2DMipmapLevels(src, lv)
}

// Build3DMipmaps builds a 3D pyramid.
func Build3DMipmaps(ctx Context, src Source) error {
	return New(ctx).Build3DMipmaps(src)
}

// Build3DMipmapLevels builds selected levels of a 3D pyramid.
func Build3DMipmapLevels(ctx Context, src Source, lv Levels) error {
	return New(ctx).Build3DMipmapLevels(src, lv)
}
