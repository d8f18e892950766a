package mipmap

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/mipmap/pixfmt"
)

// SourceFromImage converts img to a 2D RGBA / UNSIGNED_BYTE source with
// non-premultiplied alpha. Rows are tightly packed, which satisfies any
// unpack alignment with no row length or skips.
func SourceFromImage(img image.Image) Source {
	r := img.Bounds()
	var pix []byte
	if n, ok := img.(*image.NRGBA); ok && n.Stride == 4*r.Dx() {
		pix = n.Pix[:4*r.Dx()*r.Dy()]
	} else {
		dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
		pix = dst.Pix
	}
	return Source{
		Target:         Texture2D,
		InternalFormat: int32(pixfmt.RGBA),
		Width:          r.Dx(),
		Height:         r.Dy(),
		Depth:          1,
		Format:         pixfmt.RGBA,
		Type:           pixfmt.UnsignedByte,
		Data:           pix,
	}
}

// LevelImage wraps an uploaded RGBA / UNSIGNED_BYTE level as an image.
// It returns nil for any other layout.
func LevelImage(img *Image) *image.NRGBA {
	if img.Format != pixfmt.RGBA || img.Type != pixfmt.UnsignedByte || img.Depth > 1 {
		return nil
	}
	return &image.NRGBA{
		Pix:    img.Data,
		Stride: img.RowStride(),
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
}
