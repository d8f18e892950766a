package mipmap

import (
	"fmt"

	"github.com/gogpu/mipmap/pixfmt"
)

// Context is the graphics collaborator a Builder drives. It owns the pixel
// storage modes and the texture the levels are uploaded to.
//
// Builders call Context from a single goroutine per build. Implementations
// shared between goroutines must serialize builds themselves, because the
// storage modes are swapped for the duration of a build.
type Context interface {
	// StorageModes returns the current pack and unpack storage modes.
	StorageModes() pixfmt.StorageModes

	// SetStorageModes replaces the pack and unpack storage modes.
	SetStorageModes(pixfmt.StorageModes)

	// MaxTextureSize returns the largest extent the device accepts for
	// textures of the target's dimensionality.
	MaxTextureSize(Target) int

	// Fits reports whether the device could hold img. img.Target is a proxy
	// target and img.Data is nil.
	Fits(img *Image) bool

	// Upload stores one mipmap level. img.Data follows the upload layout:
	// rows padded to the unpack alignment captured at build entry, no skips,
	// host byte order, images contiguous. The buffer is only valid for the
	// duration of the call.
	Upload(img *Image) error
}

// Image is one mipmap level handed to a Context.
type Image struct {
	Target         Target
	Level          int
	InternalFormat int32
	Width          int
	Height         int
	Depth          int
	Format         pixfmt.Format
	Type           pixfmt.Type

	// Alignment is the row alignment of Data.
	Alignment int

	Data []byte
}

// RowStride returns the byte distance between rows of Data.
func (img *Image) RowStride() int {
	s := pixfmt.Tight(img.Alignment)
	if img.Type == pixfmt.Bitmap {
		return s.BitmapRowStride(img.Width, img.Format.Components())
	}
	return s.RowStride(img.Width, pixfmt.GroupSize(img.Format, img.Type))
}

// Store returns the storage modes that describe Data.
func (img *Image) Store() pixfmt.PixelStore {
	return pixfmt.Tight(img.Alignment)
}

func (img *Image) String() string {
	return fmt.Sprintf("%s level %d %dx%dx%d %s/%s",
		img.Target, img.Level, img.Width, img.Height, img.Depth, img.Format, img.Type)
}

// Target is a texture target. Values are the OpenGL enums.
type Target uint32

// Texture targets.
const (
	Texture1D      Target = 0x0DE0
	Texture2D      Target = 0x0DE1
	Texture3D      Target = 0x806F
	ProxyTexture1D Target = 0x8063
	ProxyTexture2D Target = 0x8064
	ProxyTexture3D Target = 0x8070

	TextureCubeMapPositiveX Target = 0x8515
	TextureCubeMapNegativeX Target = 0x8516
	TextureCubeMapPositiveY Target = 0x8517
	TextureCubeMapNegativeY Target = 0x8518
	TextureCubeMapPositiveZ Target = 0x8519
	TextureCubeMapNegativeZ Target = 0x851A
	ProxyTextureCubeMap     Target = 0x851B
)

// Dimensions returns 1, 2 or 3 for the dimensionality of t, and 0 for an
// unknown target. Cube-map faces are 2D.
func (t Target) Dimensions() int {
	switch {
	case t == Texture1D || t == ProxyTexture1D:
		return 1
	case t == Texture2D || t == ProxyTexture2D || t == ProxyTextureCubeMap || t.CubeFace() >= 0:
		return 2
	case t == Texture3D || t == ProxyTexture3D:
		return 3
	default:
		return 0
	}
}

// Proxy returns the proxy target used to probe t.
func (t Target) Proxy() Target {
	switch {
	case t == Texture1D || t == ProxyTexture1D:
		return ProxyTexture1D
	case t == Texture2D || t == ProxyTexture2D:
		return ProxyTexture2D
	case t == Texture3D || t == ProxyTexture3D:
		return ProxyTexture3D
	case t == ProxyTextureCubeMap || t.CubeFace() >= 0:
		return ProxyTextureCubeMap
	default:
		return 0
	}
}

// IsProxy reports whether t is a proxy target.
func (t Target) IsProxy() bool {
	switch t {
	case ProxyTexture1D, ProxyTexture2D, ProxyTexture3D, ProxyTextureCubeMap:
		return true
	default:
		return false
	}
}

// CubeFace returns the face index 0-5 of a cube-map face target in
// +X, -X, +Y, -Y, +Z, -Z order, or -1.
func (t Target) CubeFace() int {
	if t >= TextureCubeMapPositiveX && t <= TextureCubeMapNegativeZ {
		return int(t - TextureCubeMapPositiveX)
	}
	return -1
}

func (t Target) String() string {
	switch t {
	case Texture1D:
		return "TEXTURE_1D"
	case Texture2D:
		return "TEXTURE_2D"
	case Texture3D:
		return "TEXTURE_3D"
	case ProxyTexture1D:
		return "PROXY_TEXTURE_1D"
	case ProxyTexture2D:
		return "PROXY_TEXTURE_2D"
	case ProxyTexture3D:
		return "PROXY_TEXTURE_3D"
	case ProxyTextureCubeMap:
		return "PROXY_TEXTURE_CUBE_MAP"
	}
	if f := t.CubeFace(); f >= 0 {
		return [...]string{
			"TEXTURE_CUBE_MAP_POSITIVE_X", "TEXTURE_CUBE_MAP_NEGATIVE_X",
			"TEXTURE_CUBE_MAP_POSITIVE_Y", "TEXTURE_CUBE_MAP_NEGATIVE_Y",
			"TEXTURE_CUBE_MAP_POSITIVE_Z", "TEXTURE_CUBE_MAP_NEGATIVE_Z",
		}[f]
	}
	return fmt.Sprintf("Target(0x%04X)", uint32(t))
}
