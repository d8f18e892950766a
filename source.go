package mipmap

import (
	"fmt"

	"github.com/gogpu/mipmap/internal/normalize"
	"github.com/gogpu/mipmap/pixfmt"
)

// Source is a client image to build a pyramid from. Data is read with the
// Context's unpack storage modes. Height and Depth are ignored by the
// builds that do not use them.
type Source struct {
	Target         Target
	InternalFormat int32
	Width          int
	Height         int
	Depth          int
	Format         pixfmt.Format
	Type           pixfmt.Type
	Data           []byte
}

// Levels selects the levels of an explicit build.
//
// User is the level number the source image is assigned. Levels User
// through the 1x1 level are computed; only Base through Max are uploaded.
type Levels struct {
	User, Base, Max int
}

func (lv Levels) String() string {
	return fmt.Sprintf("user %d base %d max %d", lv.User, lv.Base, lv.Max)
}

// legal reports whether lv addresses levels of a pyramid whose last level
// is total.
func (lv Levels) legal(total int) bool {
	return lv.Base >= 0 && lv.Base >= lv.User && lv.Max >= lv.Base && total >= lv.Max
}

// checkEnums validates the format, type and internal format of a build.
func checkEnums(internal int32, f pixfmt.Format, t pixfmt.Type) error {
	if err := checkFormat(f, t); err != nil {
		return err
	}
	if f == pixfmt.StencilIndex {
		return fmt.Errorf("%w: %s cannot be mipmapped", ErrInvalidEnum, f)
	}
	if !pixfmt.LegalInternalFormat(internal) {
		return fmt.Errorf("%w: internal format 0x%X", ErrInvalidEnum, internal)
	}
	return checkPacked(f, t)
}

// checkFormat validates a format and type pair for any operation.
func checkFormat(f pixfmt.Format, t pixfmt.Type) error {
	if !f.Legal() {
		return fmt.Errorf("%w: format %s", ErrInvalidEnum, f)
	}
	if !t.Legal() {
		return fmt.Errorf("%w: type %s", ErrInvalidEnum, t)
	}
	if t == pixfmt.Bitmap && !f.IsIndex() {
		return fmt.Errorf("%w: %s requires an index format, got %s", ErrInvalidEnum, t, f)
	}
	return nil
}

func checkPacked(f pixfmt.Format, t pixfmt.Type) error {
	if !pixfmt.LegalForPackedType(f, t) {
		return fmt.Errorf("%w: format %s does not fit %s", ErrInvalidOperation, f, t)
	}
	return nil
}

// checkData reports whether data covers a w x h x d image read with s.
func checkData(s pixfmt.PixelStore, w, h, d int, f pixfmt.Format, t pixfmt.Type, data []byte) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	if _, ok := pixfmt.ImageSize3DChecked(w, h, d, f, t); !ok {
		return fmt.Errorf("%w: %dx%dx%d image is too large", ErrOutOfMemory, w, h, d)
	}
	if need := normalize.SourceLen(s, w, h, d, f, t); len(data) < need {
		return fmt.Errorf("%w: data holds %d bytes, layout needs %d", ErrInvalidValue, len(data), need)
	}
	return nil
}
