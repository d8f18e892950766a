// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recorder

import (
	"errors"
	"testing"

	"github.com/gogpu/mipmap"
	"github.com/gogpu/mipmap/pixfmt"
)

func TestRecorderDefaults(t *testing.T) {
	r := New()
	if got := r.StorageModes(); got != pixfmt.DefaultStorageModes() {
		t.Errorf("StorageModes() = %+v, want GL defaults", got)
	}
	if got := r.MaxTextureSize(mipmap.Texture2D); got != DefaultMaxTextureSize {
		t.Errorf("MaxTextureSize(2D) = %d, want %d", got, DefaultMaxTextureSize)
	}
	if got := r.MaxTextureSize(mipmap.ProxyTexture3D); got != DefaultMax3DTextureSize {
		t.Errorf("MaxTextureSize(3D) = %d, want %d", got, DefaultMax3DTextureSize)
	}
}

func TestRecorderFits(t *testing.T) {
	r := New(WithMaxTextureSize(64), WithMax3DTextureSize(16))
	tests := []struct {
		name string
		img  mipmap.Image
		want bool
	}{
		{"level 1 at limit", mipmap.Image{Target: mipmap.ProxyTexture2D, Level: 1, Width: 32, Height: 32, Depth: 1}, true},
		{"level 1 too wide", mipmap.Image{Target: mipmap.ProxyTexture2D, Level: 1, Width: 64, Height: 1, Depth: 1}, false},
		{"3D limit", mipmap.Image{Target: mipmap.ProxyTexture3D, Level: 1, Width: 8, Height: 8, Depth: 16}, false},
		{"3D fits", mipmap.Image{Target: mipmap.ProxyTexture3D, Level: 1, Width: 8, Height: 8, Depth: 8}, true},
		{"zero size", mipmap.Image{Target: mipmap.ProxyTexture2D, Level: 0, Width: 0, Height: 1, Depth: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Fits(&tt.img); got != tt.want {
				t.Errorf("Fits(%v) = %v, want %v", &tt.img, got, tt.want)
			}
		})
	}
	if got := len(r.Probes()); got != len(tests) {
		t.Errorf("Probes() = %d, want %d", got, len(tests))
	}
}

func TestRecorderUploadCopies(t *testing.T) {
	r := New()
	data := []byte{1, 2, 3, 4}
	img := mipmap.Image{Target: mipmap.Texture2D, Level: 0, Width: 1, Height: 1, Depth: 1,
		Format: pixfmt.RGBA, Type: pixfmt.UnsignedByte, Alignment: 4, Data: data}
	if err := r.Upload(&img); err != nil {
		t.Fatalf("Upload() = %v", err)
	}
	data[0] = 99

	got, ok := r.Level(mipmap.Texture2D, 0)
	if !ok {
		t.Fatal("Level() found nothing")
	}
	if got.Data[0] != 1 {
		t.Errorf("recorded data changed with caller buffer: %v", got.Data)
	}
	if px := r.NRGBA(mipmap.Texture2D, 0); px == nil || px.Pix[2] != 3 {
		t.Errorf("NRGBA() = %v", px)
	}
	if _, ok := r.Level(mipmap.Texture2D, 1); ok {
		t.Error("Level(1) found an upload that never happened")
	}

	r.Reset()
	if len(r.Uploads()) != 0 || r.ModeChanges() != 0 {
		t.Error("Reset() kept state")
	}
}

func TestRecorderUploadHook(t *testing.T) {
	boom := errors.New("full")
	r := New(WithUploadHook(func(img *mipmap.Image) error {
		if img.Level > 0 {
			return boom
		}
		return nil
	}))
	if err := r.Upload(&mipmap.Image{Target: mipmap.Texture1D, Level: 0}); err != nil {
		t.Fatalf("Upload(0) = %v", err)
	}
	if err := r.Upload(&mipmap.Image{Target: mipmap.Texture1D, Level: 1}); !errors.Is(err, boom) {
		t.Fatalf("Upload(1) = %v, want %v", err, boom)
	}
	if got := r.Levels(mipmap.Texture1D); len(got) != 1 {
		t.Errorf("Levels() = %v, want [0]", got)
	}
}

func TestRecorderModeChanges(t *testing.T) {
	r := New()
	src := mipmap.Source{
		Target: mipmap.Texture2D, InternalFormat: 4,
		Width: 4, Height: 4, Depth: 1,
		Format: pixfmt.RGBA, Type: pixfmt.UnsignedByte,
		Data: make([]byte, 64),
	}
	if err := mipmap.Build2DMipmaps(r, src); err != nil {
		t.Fatalf("Build2DMipmaps() = %v", err)
	}
	// Tight modes installed once, captured modes restored once.
	if got := r.ModeChanges(); got != 2 {
		t.Errorf("ModeChanges() = %d, want 2", got)
	}
	if got := r.Levels(mipmap.Texture2D); len(got) != 3 {
		t.Errorf("Levels() = %v, want [0 1 2]", got)
	}
}
