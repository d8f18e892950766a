// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"fmt"
	"math/bits"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/mipmap"
	"github.com/gogpu/mipmap/internal/normalize"
	"github.com/gogpu/mipmap/pixfmt"
)

var (
	// ErrProxyUpload is returned when a level is uploaded to a proxy target.
	ErrProxyUpload = errors.New("wgpu: cannot upload to a proxy target")

	// ErrTextureMismatch is returned when a level does not belong to the
	// texture created by the first upload.
	ErrTextureMismatch = errors.New("wgpu: level does not match texture")

	// ErrNoHAL is returned by FromProvider when the provider does not
	// expose HAL objects.
	ErrNoHAL = errors.New("wgpu: provider does not expose HAL types")
)

// Option configures a Context.
type Option func(*Context)

// WithLimits sets the device limits used for size queries and probes.
// The default is gputypes.DefaultLimits.
func WithLimits(l gputypes.Limits) Option {
	return func(c *Context) { c.limits = l }
}

// WithLabel sets the texture label.
func WithLabel(label string) Option {
	return func(c *Context) { c.label = label }
}

// WithUsage adds texture usages to TextureBinding | CopyDst.
func WithUsage(u gputypes.TextureUsage) Option {
	return func(c *Context) { c.usage |= u }
}

// Context is a mipmap.Context that writes levels to a HAL texture.
// It is safe for concurrent use.
type Context struct {
	mu     sync.Mutex
	device hal.Device
	queue  hal.Queue
	limits gputypes.Limits
	label  string
	usage  gputypes.TextureUsage
	modes  pixfmt.StorageModes

	tex     hal.Texture
	format  gputypes.TextureFormat
	dim     gputypes.TextureDimension
	base    hal.Extent3D
	mips    uint32
	written int
}

var _ mipmap.Context = (*Context)(nil)

// New creates a Context on device and queue.
func New(device hal.Device, queue hal.Queue, opts ...Option) *Context {
	c := &Context{
		device: device,
		queue:  queue,
		limits: gputypes.DefaultLimits(),
		label:  "mipmap",
		usage:  gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
		modes:  pixfmt.DefaultStorageModes(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FromProvider creates a Context on the HAL device and queue of a gogpu
// device provider. The provider must implement HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue.
func FromProvider(provider gpucontext.DeviceProvider, opts ...Option) (*Context, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHAL)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHAL)
	}
	return New(device, queue, opts...), nil
}

// StorageModes implements mipmap.Context.
func (c *Context) StorageModes() pixfmt.StorageModes {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modes
}

// SetStorageModes implements mipmap.Context.
func (c *Context) SetStorageModes(m pixfmt.StorageModes) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modes = m
}

// MaxTextureSize implements mipmap.Context.
func (c *Context) MaxTextureSize(t mipmap.Target) int {
	switch t.Dimensions() {
	case 3:
		return int(c.limits.MaxTextureDimension3D)
	default:
		return int(c.limits.MaxTextureDimension2D)
	}
}

// Fits implements mipmap.Context by checking the level-0 extent implied by
// img against the device limits. Cube-map faces must be square.
func (c *Context) Fits(img *mipmap.Image) bool {
	if img.Target == mipmap.ProxyTextureCubeMap && img.Width != img.Height {
		return false
	}
	limit := c.MaxTextureSize(img.Target)
	for _, n := range [...]int{img.Width, img.Height, img.Depth} {
		if n < 1 || n<<img.Level > limit {
			return false
		}
	}
	return true
}

// Upload implements mipmap.Context. The first upload creates the texture.
func (c *Context) Upload(img *mipmap.Image) error {
	if img.Target.IsProxy() {
		return fmt.Errorf("%w: %s", ErrProxyUpload, img.Target)
	}
	format, direct := textureFormat(img.Format, img.Type)
	data, bytesPerRow := img.Data, img.RowStride()
	if !direct {
		var err error
		data, err = normalize.ToRGBA8(img.Store(), img.Width, img.Height, img.Depth,
			img.Format, img.Type, img.Data)
		if err != nil {
			return fmt.Errorf("wgpu: convert %s: %w", img, err)
		}
		bytesPerRow = 4 * img.Width
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tex == nil {
		if err := c.create(img, format, direct); err != nil {
			return err
		}
	}
	if err := c.check(img, format); err != nil {
		return err
	}

	z := uint32(0)
	depth := uint32(img.Depth)
	if face := img.Target.CubeFace(); face >= 0 {
		z, depth = uint32(face), 1
	}
	c.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  c.tex,
			MipLevel: uint32(img.Level),
			Origin:   hal.Origin3D{X: 0, Y: 0, Z: z},
			Aspect:   gputypes.TextureAspectAll,
		},
		data,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(bytesPerRow),
			RowsPerImage: uint32(img.Height),
		},
		&hal.Extent3D{
			Width:              uint32(img.Width),
			Height:             uint32(img.Height),
			DepthOrArrayLayers: depth,
		},
	)
	c.written++
	mipmap.Logger().Debug("wgpu: level written", "level", img.Level, "target", img.Target,
		"width", img.Width, "height", img.Height, "depth", img.Depth)
	return nil
}

// create allocates a texture whose mip chain contains img at img.Level.
func (c *Context) create(img *mipmap.Image, format gputypes.TextureFormat, direct bool) error {
	base := hal.Extent3D{
		Width:              uint32(img.Width) << img.Level,
		Height:             1,
		DepthOrArrayLayers: 1,
	}
	// 1D textures cannot have mip levels, so rows go to a 2D texture of
	// height 1.
	dim := gputypes.TextureDimension2D
	switch img.Target.Dimensions() {
	case 2:
		base.Height = uint32(img.Height) << img.Level
		if img.Target.CubeFace() >= 0 {
			base.DepthOrArrayLayers = 6
		}
	case 3:
		dim = gputypes.TextureDimension3D
		base.Height = uint32(img.Height) << img.Level
		base.DepthOrArrayLayers = uint32(img.Depth) << img.Level
	}
	largest := max(base.Width, base.Height)
	if dim == gputypes.TextureDimension3D {
		largest = max(largest, base.DepthOrArrayLayers)
	}
	mips := uint32(bits.Len32(largest))

	tex, err := c.device.CreateTexture(&hal.TextureDescriptor{
		Label:         c.label,
		Size:          base,
		MipLevelCount: mips,
		SampleCount:   1,
		Dimension:     dim,
		Format:        format,
		Usage:         c.usage,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create texture: %w", err)
	}
	c.tex, c.format, c.dim, c.base, c.mips = tex, format, dim, base, mips
	if !direct {
		mipmap.Logger().Warn("wgpu: expanding levels to RGBA8", "format", img.Format, "type", img.Type)
	}
	mipmap.Logger().Debug("wgpu: texture created", "width", base.Width, "height", base.Height,
		"layers", base.DepthOrArrayLayers, "mips", mips, "format", format)
	return nil
}

// check reports whether img addresses a level of the current texture.
func (c *Context) check(img *mipmap.Image, format gputypes.TextureFormat) error {
	if format != c.format {
		return fmt.Errorf("%w: %s needs format %v, texture has %v", ErrTextureMismatch, img, format, c.format)
	}
	if uint32(img.Level) >= c.mips {
		return fmt.Errorf("%w: %s beyond %d levels", ErrTextureMismatch, img, c.mips)
	}
	w := max(c.base.Width>>img.Level, 1)
	h := max(c.base.Height>>img.Level, 1)
	d := uint32(1)
	if c.dim == gputypes.TextureDimension3D {
		d = max(c.base.DepthOrArrayLayers>>img.Level, 1)
	}
	if uint32(img.Width) != w || (img.Target.Dimensions() > 1 && uint32(img.Height) != h) ||
		(img.Target.Dimensions() == 3 && uint32(img.Depth) != d) {
		return fmt.Errorf("%w: %s, level is %dx%dx%d", ErrTextureMismatch, img, w, h, d)
	}
	return nil
}

// Texture returns the texture created by the first upload, or nil.
func (c *Context) Texture() hal.Texture {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tex
}

// Format returns the texture format, valid after the first upload.
func (c *Context) Format() gputypes.TextureFormat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.format
}

// Dimension returns the texture dimension, valid after the first upload.
func (c *Context) Dimension() gputypes.TextureDimension {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dim
}

// MipLevelCount returns the number of mip levels of the texture.
func (c *Context) MipLevelCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int(c.mips)
}

// Written returns the number of levels written.
func (c *Context) Written() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.written
}

// Destroy releases the texture. The Context can be reused for a new
// pyramid afterwards.
func (c *Context) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tex != nil {
		c.device.DestroyTexture(c.tex)
		c.tex = nil
	}
	c.mips, c.written = 0, 0
}

// textureFormat returns the texture format for a client layout and
// whether the data can be written without conversion.
func textureFormat(f pixfmt.Format, t pixfmt.Type) (gputypes.TextureFormat, bool) {
	if t == pixfmt.UnsignedByte {
		switch f {
		case pixfmt.RGBA:
			return gputypes.TextureFormatRGBA8Unorm, true
		case pixfmt.BGRA:
			return gputypes.TextureFormatBGRA8Unorm, true
		case pixfmt.Red:
			return gputypes.TextureFormatR8Unorm, true
		}
	}
	return gputypes.TextureFormatRGBA8Unorm, false
}
