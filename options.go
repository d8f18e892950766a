package mipmap

import (
	"log/slog"

	"github.com/gogpu/mipmap/internal/bufpool"
)

// Option configures a Builder.
//
// Example:
//
//	b := mipmap.New(ctx,
//	    mipmap.WithMemoryBudget(64<<20),
//	    mipmap.WithLogger(slog.Default()),
//	)
type Option func(*options)

type options struct {
	alloc   Allocator
	logger  *slog.Logger
	fitSize int
}

func defaultOptions() options {
	return options{
		alloc:   defaultPool,
		fitSize: 64,
	}
}

// WithAllocator sets the source of working buffers. Any allocation error
// aborts the build with ErrOutOfMemory.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.alloc = a
		}
	}
}

// WithMemoryBudget gives the Builder its own buffer pool that never hands
// out more than budget bytes at once.
func WithMemoryBudget(budget int64) Option {
	return func(o *options) {
		o.alloc = bufpool.New(budget, 4)
	}
}

// WithLogger sets a logger for this Builder instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithFitCache sets how many closest-fit probe results the Builder
// remembers. Zero disables the cache.
func WithFitCache(size int) Option {
	return func(o *options) {
		o.fitSize = size
	}
}
