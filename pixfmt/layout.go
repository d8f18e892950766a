package pixfmt

import "math"

// ComponentsPerGroup returns how many elements make up one pixel group.
// Packed types store a whole group in one element.
func ComponentsPerGroup(f Format, t Type) int {
	if t.Packed() {
		return 1
	}
	return f.Components()
}

// GroupComponents returns how many components one pixel group decodes to.
// Unlike ComponentsPerGroup this counts the fields inside a packed element.
func GroupComponents(f Format, t Type) int {
	if t.Packed() {
		return t.PackedComponents()
	}
	return f.Components()
}

// GroupSize returns the byte size of one pixel group for a byte-addressable
// type. It is meaningless for Bitmap.
func GroupSize(f Format, t Type) int {
	return t.ElementSize() * ComponentsPerGroup(f, t)
}

// LegalForPackedType reports whether format f may be combined with t.
// Three-component packed types need RGB; four-component packed types need
// RGBA or BGRA. Non-packed types accept any format.
func LegalForPackedType(f Format, t Type) bool {
	switch t.PackedComponents() {
	case 3:
		return f == RGB
	case 4:
		return f == RGBA || f == BGRA
	default:
		return true
	}
}

// Internal formats accepted besides the legacy component counts 1..4.
var internalFormats = map[int32]struct{}{
	int32(Alpha): {}, int32(RGB): {}, int32(RGBA): {},
	int32(Luminance): {}, int32(LuminanceAlpha): {},
	int32(Red): {}, int32(DepthComponent): {}, int32(ColorIndex): {},
	0x803B: {}, // ALPHA4
	0x803C: {}, // ALPHA8
	0x803F: {}, // LUMINANCE4
	0x8040: {}, // LUMINANCE8
	0x8043: {}, // LUMINANCE4_ALPHA4
	0x8045: {}, // LUMINANCE8_ALPHA8
	0x8049: {}, // INTENSITY
	0x804B: {}, // INTENSITY8
	0x2A10: {}, // R3_G3_B2
	0x804F: {}, // RGB4
	0x8050: {}, // RGB5
	0x8051: {}, // RGB8
	0x8052: {}, // RGB10
	0x8054: {}, // RGB16
	0x8055: {}, // RGBA2
	0x8056: {}, // RGBA4
	0x8057: {}, // RGB5_A1
	0x8058: {}, // RGBA8
	0x8059: {}, // RGB10_A2
	0x805B: {}, // RGBA16
	0x8229: {}, // R8
	0x822B: {}, // RG8
	0x8227: {}, // RG
	0x8C41: {}, // SRGB8
	0x8C43: {}, // SRGB8_ALPHA8
	0x8D62: {}, // RGB565
	0x81A5: {}, // DEPTH_COMPONENT16
	0x81A6: {}, // DEPTH_COMPONENT24
	0x8814: {}, // RGBA32F
	0x8815: {}, // RGB32F
	0x822E: {}, // R32F
	0x881A: {}, // RGBA16F
	0x80E1: {}, // BGRA, accepted by some drivers as an internal format
}

// LegalInternalFormat reports whether v is an internal format the builder
// will forward to the collaborator.
func LegalInternalFormat(v int32) bool {
	if v >= 1 && v <= 4 {
		return true
	}
	_, ok := internalFormats[v]
	return ok
}

// ImageSize returns the byte size of a tightly packed width x height image.
// Bitmap rows are rounded up to whole bytes.
func ImageSize(width, height int, f Format, t Type) int {
	n, _ := ImageSize3DChecked(width, height, 1, f, t)
	return n
}

// ImageSize3D returns the byte size of a tightly packed volume.
func ImageSize3D(width, height, depth int, f Format, t Type) int {
	n, _ := ImageSize3DChecked(width, height, depth, f, t)
	return n
}

// ImageSizeChecked is ImageSize with overflow detection.
func ImageSizeChecked(width, height int, f Format, t Type) (int, bool) {
	return ImageSize3DChecked(width, height, 1, f, t)
}

// ImageSize3DChecked is ImageSize3D with overflow detection. It reports
// false when the size cannot be represented as an int.
func ImageSize3DChecked(width, height, depth int, f Format, t Type) (int, bool) {
	if width < 0 || height < 0 || depth < 0 {
		return 0, false
	}
	components := ComponentsPerGroup(f, t)
	var row int
	var ok bool
	if t == Bitmap {
		row, ok = mulInt(width, components)
		if !ok {
			return 0, false
		}
		row = (row + 7) / 8
	} else {
		row, ok = mulInt(width, GroupSize(f, t))
		if !ok {
			return 0, false
		}
	}
	n := row
	for _, m := range [...]int{height, depth} {
		if n, ok = mulInt(n, m); !ok {
			return 0, false
		}
	}
	return n, true
}

// CanonicalSize returns the byte size of an image in the canonical
// representation: one host-order uint16 per decoded component.
func CanonicalSize(width, height, depth int, f Format, t Type) (int, bool) {
	n, ok := mulInt(width, GroupComponents(f, t))
	if !ok {
		return 0, false
	}
	for _, m := range [...]int{height, depth, 2} {
		if n, ok = mulInt(n, m); !ok {
			return 0, false
		}
	}
	return n, true
}

func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}
