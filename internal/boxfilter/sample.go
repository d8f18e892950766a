package boxfilter

import (
	"math"
	"unsafe"

	"github.com/gogpu/mipmap/internal/codec"
)

// Sample is the set of element types a planar pixel can be stored in.
type Sample interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32 | ~float32
}

// Scalar is a planar pixel of n components of type T.
//
// Integer samples round the filtered mean with trunc(mean + 0.5) and clamp
// to the range of T. Float samples store the mean unbiased.
//
// The zero value is unusable; build one with NewScalar.
type Scalar[T Sample] struct {
	n      int
	size   int
	float  bool
	lo, hi float64
}

// Instantiations for each sample type.
type (
	U8  = Scalar[uint8]
	S8  = Scalar[int8]
	U16 = Scalar[uint16]
	S16 = Scalar[int16]
	U32 = Scalar[uint32]
	S32 = Scalar[int32]
	F32 = Scalar[float32]
)

// NewScalar returns a planar pixel of n components, 1 <= n <= 4.
func NewScalar[T Sample](n int) Scalar[T] {
	var zero T
	s := Scalar[T]{
		n:    n,
		size: int(unsafe.Sizeof(zero)),
	}
	one := T(1)
	s.float = one/2 != 0
	if s.float {
		s.lo, s.hi = -math.MaxFloat32, math.MaxFloat32
		return s
	}
	bits := 8 * s.size
	if signed := zero-one < zero; signed {
		s.lo = -math.Ldexp(1, bits-1)
		s.hi = math.Ldexp(1, bits-1) - 1
	} else {
		s.hi = math.Ldexp(1, bits) - 1
	}
	return s
}

func (s Scalar[T]) Components() int { return s.n }
func (s Scalar[T]) Size() int       { return s.n * s.size }
func (s Scalar[T]) Element() int    { return s.size }

// Decode reads n elements from src. Components beyond n are zeroed.
func (s Scalar[T]) Decode(src []byte, swap bool, out *[4]float64) {
	*out = [4]float64{}
	for i := 0; i < s.n; i++ {
		out[i] = float64(s.load(src[i*s.size:], swap))
	}
}

// Encode writes n elements to dst in host byte order.
func (s Scalar[T]) Encode(in *[4]float64, dst []byte) {
	for i := 0; i < s.n; i++ {
		s.store(dst[i*s.size:], s.round(in[i]))
	}
}

func (s Scalar[T]) round(v float64) T {
	if s.float {
		return T(float32(v))
	}
	v = math.Trunc(v + 0.5)
	switch {
	case math.IsNaN(v):
		v = 0
	case v < s.lo:
		v = s.lo
	case v > s.hi:
		v = s.hi
	}
	return T(v)
}

func (s Scalar[T]) load(b []byte, swap bool) T {
	switch s.size {
	case 1:
		return T(b[0])
	case 2:
		return T(codec.Load16(b, swap))
	default:
		if s.float {
			return T(codec.LoadFloat32(b, swap))
		}
		return T(codec.Load32(b, swap))
	}
}

func (s Scalar[T]) store(b []byte, v T) {
	switch s.size {
	case 1:
		b[0] = byte(v)
	case 2:
		codec.Store16(b, uint16(v))
	default:
		if s.float {
			codec.StoreFloat32(b, float32(v))
			return
		}
		codec.Store32(b, uint32(v))
	}
}
