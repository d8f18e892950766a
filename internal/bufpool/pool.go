// Package bufpool provides working buffers for mipmap levels.
//
// Buffers are grouped into power-of-two capacity classes so the current and
// next level buffers of successive builds are reused instead of reallocated.
// A byte budget caps the memory handed out at once; a request beyond it
// fails with ErrOutOfMemory instead of growing the heap.
package bufpool

import (
	"errors"
	"fmt"
	"math/bits"
	"sync"
)

// ErrOutOfMemory is returned by Get when a request would exceed the budget.
var ErrOutOfMemory = errors.New("bufpool: out of memory")

// minClass is the smallest capacity handed out.
const minClass = 64

// Pool is a thread-safe pool of byte buffers.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int   // max buffers retained per class
	budget  int64 // max bytes handed out at once, 0 for unlimited
	live    int64
}

// New creates a pool that hands out at most budget bytes at once and keeps
// at most maxPerBucket free buffers per capacity class. Zero means unlimited
// for either.
func New(budget int64, maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
		budget:  budget,
	}
}

// Get returns a zeroed buffer of length n.
func (p *Pool) Get(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrOutOfMemory, n)
	}
	class := classOf(n)
	if class == 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrOutOfMemory, n)
	}

	p.mu.Lock()
	if p.budget > 0 && p.live+int64(class) > p.budget {
		live := p.live
		p.mu.Unlock()
		return nil, fmt.Errorf("%w: %d bytes requested, %d of %d in use",
			ErrOutOfMemory, n, live, p.budget)
	}
	p.live += int64(class)
	bucket := p.buckets[class]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[class] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		buf = buf[:n]
		clear(buf)
		return buf, nil
	}
	p.mu.Unlock()

	return make([]byte, n, class), nil
}

// Put returns a buffer obtained from Get. Buffers of foreign capacity are
// dropped.
func (p *Pool) Put(buf []byte) {
	if buf == nil {
		return
	}
	class := cap(buf)
	if class < minClass || class&(class-1) != 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.live -= int64(class)
	if p.live < 0 {
		p.live = 0
	}
	bucket := p.buckets[class]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[class] = append(bucket, buf[:0])
}

// Live returns the number of bytes currently handed out, counted by
// capacity class.
func (p *Pool) Live() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.live
}

// Budget returns the byte budget, 0 for unlimited.
func (p *Pool) Budget() int64 { return p.budget }

// classOf returns the capacity class for n bytes, or 0 if it overflows.
func classOf(n int) int {
	if n <= minClass {
		return minClass
	}
	shift := bits.Len(uint(n - 1))
	if shift >= bits.UintSize-1 {
		return 0
	}
	return 1 << shift
}
