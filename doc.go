// Package mipmap builds mipmap pyramids on the CPU and converts pixel data
// between the OpenGL client formats.
//
// # Overview
//
// A Builder takes a client image, rescales it to a power-of-two extent the
// device accepts, and halves it with a box filter down to a single texel.
// Each level is handed to a Context, which owns the texture and the pixel
// storage modes. Builds exist for 1D rows, 2D images and cube-map faces,
// and 3D volumes, each with an automatic variant and an explicit level
// range variant.
//
// # Quick Start
//
//	rec := recorder.New()
//	src := mipmap.SourceFromImage(img)
//	if err := mipmap.Build2DMipmaps(rec, src); err != nil {
//	    log.Fatal(err)
//	}
//	for _, lvl := range rec.Uploads() {
//	    fmt.Println(lvl)
//	}
//
// # Pixel data
//
// Client buffers are described by a pixfmt.Format, a pixfmt.Type and the
// storage modes of the Context. Every format and type combination of the
// OpenGL 1.2 client API is accepted, including the twelve packed types and
// single-bit BITMAP data. Planar sample types are filtered in their own
// representation; BITMAP and 1D rows go through a canonical form of one
// uint16 per component.
//
// # Errors
//
// Every error wraps one of ErrInvalidEnum, ErrInvalidValue,
// ErrInvalidOperation or ErrOutOfMemory. Code returns the matching GLU
// result code. A failed build leaves the levels it already uploaded in
// place and always restores the Context's storage modes.
//
// # Backends
//
// backend/recorder keeps every uploaded level in memory. backend/wgpu
// uploads to a WebGPU texture through a gogpu/wgpu HAL device.
package mipmap
