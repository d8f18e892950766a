// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu uploads mipmap pyramids to WebGPU textures through the
// gogpu/wgpu HAL.
//
// A Context implements mipmap.Context on a hal.Device and hal.Queue. The
// texture is created on the first upload with room for the whole mip
// chain; every level is written with Queue.WriteTexture. Cube-map faces
// land in the layers of one six-layer 2D texture, and 1D pyramids in a 2D
// texture of height 1.
//
// RGBA and BGRA unsigned-byte data is written as is and RED unsigned-byte
// data goes to an R8 texture. Every other format and type is expanded to
// RGBA8 on the CPU first.
//
// Usage with a gogpu device provider:
//
//	ctx, err := wgpu.FromProvider(provider)
//	if err != nil {
//	    return err
//	}
//	defer ctx.Destroy()
//	if err := mipmap.Build2DMipmaps(ctx, mipmap.SourceFromImage(img)); err != nil {
//	    return err
//	}
//	view := ctx.Texture()
package wgpu
