package mipmap

import (
	"errors"

	"github.com/gogpu/mipmap/internal/bufpool"
)

// Sentinel errors. Every error returned by a build or scale operation wraps
// exactly one of them; use errors.Is or Code to classify it.
var (
	// ErrInvalidEnum reports an illegal format, type, internal format or
	// target.
	ErrInvalidEnum = errors.New("mipmap: invalid enum")

	// ErrInvalidValue reports a non-positive dimension, an illegal level
	// range, unusable storage modes or a buffer too short for its layout.
	ErrInvalidValue = errors.New("mipmap: invalid value")

	// ErrInvalidOperation reports a format that cannot be combined with a
	// packed pixel type, or an upload the collaborator rejected.
	ErrInvalidOperation = errors.New("mipmap: invalid operation")

	// ErrOutOfMemory reports a failed working-buffer allocation. Levels
	// uploaded before the failure stay uploaded.
	ErrOutOfMemory = errors.New("mipmap: out of memory")
)

// GLU result codes.
const (
	CodeOK               = 0
	CodeInvalidEnum      = 100900
	CodeInvalidValue     = 100901
	CodeOutOfMemory      = 100902
	CodeInvalidOperation = 100904
)

// Code maps an error to its GLU result code. Errors that wrap none of the
// sentinels, such as upload failures reported by a collaborator, map to
// CodeInvalidOperation.
func Code(err error) int {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrInvalidEnum):
		return CodeInvalidEnum
	case errors.Is(err, ErrInvalidValue):
		return CodeInvalidValue
	case errors.Is(err, ErrOutOfMemory), errors.Is(err, bufpool.ErrOutOfMemory):
		return CodeOutOfMemory
	default:
		return CodeInvalidOperation
	}
}
