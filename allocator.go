package mipmap

import (
	"fmt"

	"github.com/gogpu/mipmap/internal/bufpool"
)

// Allocator supplies the working buffers of a build. A build holds at most
// a handful of buffers at once and returns each of them with Put.
type Allocator interface {
	// Get returns a buffer of length n. The contents need not be zeroed.
	Get(n int) ([]byte, error)

	// Put returns a buffer obtained from Get.
	Put(buf []byte)
}

// defaultPool backs Builders created without an allocator option.
var defaultPool = bufpool.New(0, 4)

// levels is the pair of working buffers of a pyramid: the level being
// uploaded and the level being computed from it. The buffers are owned by
// the pair and swapped by handle; release returns both.
type levels struct {
	alloc     Allocator
	cur, next []byte
}

// get allocates a scratch buffer that the caller returns with put.
func (l *levels) get(n, level int) ([]byte, error) {
	buf, err := l.alloc.Get(n)
	if err != nil {
		return nil, fmt.Errorf("%w: level %d: %w", ErrOutOfMemory, level, err)
	}
	return buf[:n], nil
}

func (l *levels) put(buf []byte) {
	if buf != nil {
		l.alloc.Put(buf)
	}
}

// grow allocates the next buffer.
func (l *levels) grow(n, level int) error {
	buf, err := l.get(n, level)
	if err != nil {
		return err
	}
	l.next = buf
	return nil
}

// swap makes next current and returns the old current buffer.
func (l *levels) swap() {
	l.put(l.cur)
	l.cur, l.next = l.next, nil
}

func (l *levels) release() {
	l.put(l.cur)
	l.put(l.next)
	l.cur, l.next = nil, nil
}
