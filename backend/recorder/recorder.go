// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recorder provides an in-memory mipmap.Context.
//
// A Recorder keeps a copy of every uploaded level, answers capability
// probes against a configurable maximum texture size, and holds the pixel
// storage modes like a GL context would. Use it to get a pyramid on the CPU
// or to observe what a build uploads.
package recorder

import (
	"image"
	"sync"

	"github.com/gogpu/mipmap"
	"github.com/gogpu/mipmap/pixfmt"
)

// DefaultMaxTextureSize is the maximum extent of 1D and 2D textures unless
// configured otherwise.
const DefaultMaxTextureSize = 8192

// DefaultMax3DTextureSize is the maximum extent of 3D textures unless
// configured otherwise.
const DefaultMax3DTextureSize = 2048

// Option configures a Recorder.
type Option func(*Recorder)

// WithMaxTextureSize sets the maximum 1D and 2D extent.
func WithMaxTextureSize(n int) Option {
	return func(r *Recorder) { r.max2D = n }
}

// WithMax3DTextureSize sets the maximum 3D extent.
func WithMax3DTextureSize(n int) Option {
	return func(r *Recorder) { r.max3D = n }
}

// WithStorageModes sets the initial storage modes.
func WithStorageModes(m pixfmt.StorageModes) Option {
	return func(r *Recorder) { r.modes = m }
}

// WithUploadHook installs a function called before every upload is
// recorded. A non-nil error rejects the upload.
func WithUploadHook(fn func(*mipmap.Image) error) Option {
	return func(r *Recorder) { r.hook = fn }
}

// Recorder is an in-memory mipmap.Context. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	modes   pixfmt.StorageModes
	max2D   int
	max3D   int
	hook    func(*mipmap.Image) error
	uploads []mipmap.Image
	probes  []mipmap.Image
	sets    int
}

var _ mipmap.Context = (*Recorder)(nil)

// New creates a Recorder with the GL default storage modes.
func New(opts ...Option) *Recorder {
	r := &Recorder{
		modes: pixfmt.DefaultStorageModes(),
		max2D: DefaultMaxTextureSize,
		max3D: DefaultMax3DTextureSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StorageModes implements mipmap.Context.
func (r *Recorder) StorageModes() pixfmt.StorageModes {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.modes
}

// SetStorageModes implements mipmap.Context.
func (r *Recorder) SetStorageModes(m pixfmt.StorageModes) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modes = m
	r.sets++
}

// MaxTextureSize implements mipmap.Context.
func (r *Recorder) MaxTextureSize(t mipmap.Target) int {
	if t.Dimensions() == 3 {
		return r.max3D
	}
	return r.max2D
}

// Fits implements mipmap.Context. A level fits when its extent, scaled back
// to level 0, is within the maximum texture size on every axis.
func (r *Recorder) Fits(img *mipmap.Image) bool {
	r.mu.Lock()
	r.probes = append(r.probes, *img)
	r.mu.Unlock()

	limit := r.MaxTextureSize(img.Target)
	for _, n := range [...]int{img.Width, img.Height, img.Depth} {
		if n < 1 || n<<img.Level > limit {
			return false
		}
	}
	return true
}

// Upload implements mipmap.Context. The level data is copied.
func (r *Recorder) Upload(img *mipmap.Image) error {
	if r.hook != nil {
		if err := r.hook(img); err != nil {
			return err
		}
	}
	c := *img
	c.Data = append([]byte(nil), img.Data...)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.uploads = append(r.uploads, c)
	return nil
}

// Uploads returns the recorded uploads in order.
func (r *Recorder) Uploads() []mipmap.Image {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]mipmap.Image(nil), r.uploads...)
}

// Probes returns the images passed to Fits in order.
func (r *Recorder) Probes() []mipmap.Image {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]mipmap.Image(nil), r.probes...)
}

// ModeChanges returns how many times the storage modes were set.
func (r *Recorder) ModeChanges() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sets
}

// Level returns the last upload of the given target and level.
func (r *Recorder) Level(t mipmap.Target, level int) (mipmap.Image, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.uploads) - 1; i >= 0; i-- {
		if u := r.uploads[i]; u.Target == t && u.Level == level {
			return u, true
		}
	}
	return mipmap.Image{}, false
}

// Levels returns the level numbers uploaded for t in upload order.
func (r *Recorder) Levels(t mipmap.Target) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []int
	for _, u := range r.uploads {
		if u.Target == t {
			out = append(out, u.Level)
		}
	}
	return out
}

// NRGBA returns an RGBA / UNSIGNED_BYTE level as an image, or nil.
func (r *Recorder) NRGBA(t mipmap.Target, level int) *image.NRGBA {
	u, ok := r.Level(t, level)
	if !ok {
		return nil
	}
	return mipmap.LevelImage(&u)
}

// Reset drops all recorded uploads and probes.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uploads = nil
	r.probes = nil
	r.sets = 0
}
