package pixfmt

import (
	"errors"
	"fmt"
)

// ErrStorageMode is returned by PixelStore.Validate for unusable modes.
var ErrStorageMode = errors.New("pixfmt: invalid pixel storage mode")

// PixelStore holds the storage modes of one transfer direction.
//
// The zero value is not a usable store: Alignment must be 1, 2, 4 or 8.
// Use DefaultStorageModes for the GL defaults.
type PixelStore struct {
	// Alignment is the byte boundary every row starts on.
	Alignment int

	// RowLength overrides the image width as the number of groups per row
	// when greater than zero.
	RowLength int

	SkipRows   int
	SkipPixels int
	SkipImages int

	// ImageHeight overrides the image height as the number of rows per
	// image of a volume when greater than zero.
	ImageHeight int

	// LSBFirst selects bit order for Bitmap rows.
	LSBFirst bool

	// SwapBytes byte-reverses every multi-byte element.
	SwapBytes bool
}

// StorageModes is a snapshot of both transfer directions. Pack describes
// buffers written by the library, Unpack buffers it reads.
type StorageModes struct {
	Pack   PixelStore
	Unpack PixelStore
}

// DefaultStore returns a PixelStore with the GL defaults.
func DefaultStore() PixelStore {
	return PixelStore{Alignment: 4}
}

// DefaultStorageModes returns the GL default storage modes.
func DefaultStorageModes() StorageModes {
	return StorageModes{Pack: DefaultStore(), Unpack: DefaultStore()}
}

// Tight returns a store with the given alignment and no row length, skips
// or byte swapping.
func Tight(alignment int) PixelStore {
	return PixelStore{Alignment: alignment}
}

// Validate reports whether the store can address a buffer.
func (s PixelStore) Validate() error {
	switch s.Alignment {
	case 1, 2, 4, 8:
	default:
		return fmt.Errorf("%w: alignment %d", ErrStorageMode, s.Alignment)
	}
	if s.RowLength < 0 || s.SkipRows < 0 || s.SkipPixels < 0 ||
		s.SkipImages < 0 || s.ImageHeight < 0 {
		return fmt.Errorf("%w: negative length or skip", ErrStorageMode)
	}
	return nil
}

// GroupsPerLine returns the number of groups per row for an image of the
// given width.
func (s PixelStore) GroupsPerLine(width int) int {
	if s.RowLength > 0 {
		return s.RowLength
	}
	return width
}

// RowsPerImage returns the number of rows per image for a volume of the
// given height.
func (s PixelStore) RowsPerImage(height int) int {
	if s.ImageHeight > 0 {
		return s.ImageHeight
	}
	return height
}

// RowStride returns the byte distance between rows of groupSize-byte
// groups, rounded up to the alignment.
func (s PixelStore) RowStride(width, groupSize int) int {
	return align(s.GroupsPerLine(width)*groupSize, s.Alignment)
}

// BitmapRowStride returns the byte distance between rows of a Bitmap image
// with the given number of components per group.
func (s PixelStore) BitmapRowStride(width, components int) int {
	bits := s.GroupsPerLine(width) * components
	return align((bits+7)/8, s.Alignment)
}

// ImageStride returns the byte distance between the images of a volume.
func (s PixelStore) ImageStride(height, rowStride int) int {
	return s.RowsPerImage(height) * rowStride
}

// Offset returns the byte offset of the first addressed group.
func (s PixelStore) Offset(groupSize, rowStride, imageStride int) int {
	return s.SkipImages*imageStride + s.SkipRows*rowStride + s.SkipPixels*groupSize
}

// Span returns the number of bytes a width x height x depth image occupies
// under these modes, starting at the beginning of the buffer. Bitmap images
// are not handled here; see BitmapSpan.
func (s PixelStore) Span(width, height, depth, groupSize int) int {
	if width == 0 || height == 0 || depth == 0 {
		return 0
	}
	row := s.RowStride(width, groupSize)
	img := s.ImageStride(height, row)
	return s.Offset(groupSize, row, img) +
		(depth-1)*img + (height-1)*row + width*groupSize
}

// BitmapSpan returns the number of bytes a Bitmap image occupies under
// these modes.
func (s PixelStore) BitmapSpan(width, height, components int) int {
	if width == 0 || height == 0 {
		return 0
	}
	row := s.BitmapRowStride(width, components)
	first := s.SkipRows*row + (s.SkipPixels*components)/8
	lastBit := (s.SkipPixels*components)%8 + width*components
	return first + (height-1)*row + (lastBit+7)/8
}

func align(n, alignment int) int {
	if alignment <= 1 {
		return n
	}
	if r := n % alignment; r != 0 {
		n += alignment - r
	}
	return n
}
