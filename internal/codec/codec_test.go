package codec

import (
	"math"
	"testing"

	"github.com/gogpu/mipmap/pixfmt"
)

func TestFromType(t *testing.T) {
	for i, typ := range pixfmt.PackedTypes {
		p, ok := FromType(typ)
		if !ok {
			t.Fatalf("FromType(%v) not found", typ)
		}
		if int(p) != i {
			t.Errorf("FromType(%v) = %d, want %d", typ, p, i)
		}
		if p.Type() != typ {
			t.Errorf("%v.Type() = %v", p, p.Type())
		}
		if p.Size() != typ.ElementSize() {
			t.Errorf("%v.Size() = %d, want %d", p, p.Size(), typ.ElementSize())
		}
		if p.Components() != typ.PackedComponents() {
			t.Errorf("%v.Components() = %d, want %d", p, p.Components(), typ.PackedComponents())
		}
	}
	if _, ok := FromType(pixfmt.UnsignedByte); ok {
		t.Error("FromType(UnsignedByte) reported packed")
	}
}

// Each field must cover distinct bits and the fields together must cover
// the whole element.
func TestLayoutMasks(t *testing.T) {
	for p := range numPacked {
		l := layouts[p]
		var seen uint32
		for i := 0; i < l.n; i++ {
			f := l.fields[i]
			if seen&f.mask != 0 {
				t.Errorf("%v: field %d overlaps", p, i)
			}
			seen |= f.mask
			if f.mask>>f.shift != f.max {
				t.Errorf("%v: field %d mask>>shift = %#x, max = %d", p, i, f.mask>>f.shift, f.max)
			}
		}
		want := uint32(1)<<(8*l.size) - 1
		if l.size == 4 {
			want = math.MaxUint32
		}
		if seen != want {
			t.Errorf("%v: fields cover %#x, want %#x", p, seen, want)
		}
	}
}

func TestShoveBitLayout(t *testing.T) {
	tests := []struct {
		p    Packed
		in   [4]float32
		want uint32
	}{
		{P332, [4]float32{1, 0, 0}, 0xE0},
		{P332, [4]float32{0, 0, 1}, 0x03},
		{P233Rev, [4]float32{0, 0, 1}, 0xC0},
		{P565, [4]float32{1, 0, 0}, 0xF800},
		{P565, [4]float32{0, 1, 0}, 0x07E0},
		{P565Rev, [4]float32{1, 0, 0}, 0x001F},
		{P4444, [4]float32{0, 0, 0, 1}, 0x000F},
		{P4444Rev, [4]float32{0, 0, 0, 1}, 0xF000},
		{P5551, [4]float32{0, 0, 0, 1}, 0x0001},
		{P5551, [4]float32{0, 0, 1, 0}, 0x003E},
		{P1555Rev, [4]float32{0, 0, 0, 1}, 0x8000},
		{P8888, [4]float32{1, 0, 0, 0}, 0xFF000000},
		{P8888Rev, [4]float32{1, 0, 0, 0}, 0x000000FF},
		{P1010102, [4]float32{0, 1, 0, 0}, 0x003FF000},
		{P2101010Rev, [4]float32{0, 0, 0, 1}, 0xC0000000},
	}
	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			buf := make([]byte, 8)
			Shove(tt.p, &tt.in, 1, buf)
			got := load(tt.p.Size(), false, buf[tt.p.Size():])
			if got != tt.want {
				t.Errorf("Shove = %#x, want %#x", got, tt.want)
			}
			for _, b := range buf[:tt.p.Size()] {
				if b != 0 {
					t.Fatalf("Shove wrote outside element 1: % x", buf)
				}
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for p := range numPacked {
		t.Run(p.String(), func(t *testing.T) {
			buf := make([]byte, 4)
			for i := 0; i < p.Components(); i++ {
				limit := p.Max(i)
				values := []float32{0, 1, 0.5}
				for k := uint32(0); k <= limit; k++ {
					values = append(values, float32(k)/float32(limit))
				}
				for _, v := range values {
					var in, out [4]float32
					in[i] = v
					Shove(p, &in, 0, buf)
					Extract(p, false, buf, &out)
					if d := math.Abs(float64(out[i] - v)); d > 1/float64(limit)+1e-6 {
						t.Fatalf("field %d: %v -> %v (error %v > 1/%d)", i, v, out[i], d, limit)
					}
				}
			}
		})
	}
}

// Exact k/max values must survive unchanged.
func TestRoundTripExact(t *testing.T) {
	buf := make([]byte, 4)
	for p := range numPacked {
		for i := 0; i < p.Components(); i++ {
			limit := p.Max(i)
			for k := uint32(0); k <= limit; k++ {
				var in, out [4]float32
				in[i] = float32(k) / float32(limit)
				Shove(p, &in, 0, buf)
				Extract(p, false, buf, &out)
				if out[i] != in[i] {
					t.Fatalf("%v field %d: %d/%d -> %v", p, i, k, limit, out[i])
				}
			}
		}
	}
}

func TestExtractSwap(t *testing.T) {
	var plain, swapped [4]float32
	buf := make([]byte, 4)
	in := [4]float32{1, 0, 0.2, 0.6}

	Shove(P4444, &in, 0, buf)
	Extract(P4444, false, buf, &plain)
	SwapInPlace(buf[:2], 2)
	Extract(P4444, true, buf, &swapped)
	if plain != swapped {
		t.Errorf("swapped extract = %v, want %v", swapped, plain)
	}

	Shove(P2101010Rev, &in, 0, buf)
	Extract(P2101010Rev, false, buf, &plain)
	SwapInPlace(buf, 4)
	Extract(P2101010Rev, true, buf, &swapped)
	if plain != swapped {
		t.Errorf("swapped extract = %v, want %v", swapped, plain)
	}
}

func TestQuantizeClamps(t *testing.T) {
	tests := []struct {
		in   float32
		want uint32
	}{
		{-0.5, 0},
		{float32(math.NaN()), 0},
		{2, 31},
		{float32(math.Inf(1)), 31},
		{0.5, 16},
		{0.49, 15},
	}
	for _, tt := range tests {
		if got := Quantize(tt.in, 31); got != tt.want {
			t.Errorf("Quantize(%v, 31) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestScalarHelpers(t *testing.T) {
	b := make([]byte, 4)
	Store16(b, 0x1234)
	if got := Load16(b, false); got != 0x1234 {
		t.Errorf("Load16 = %#x", got)
	}
	if got := Load16(b, true); got != 0x3412 {
		t.Errorf("Load16 swap = %#x", got)
	}
	Store32(b, 0x01020304)
	if got := Load32(b, true); got != 0x04030201 {
		t.Errorf("Load32 swap = %#x", got)
	}
	StoreFloat32(b, 1.5)
	if got := LoadFloat32(b, false); got != 1.5 {
		t.Errorf("LoadFloat32 = %v", got)
	}
	SwapInPlace(b, 4)
	if got := LoadFloat32(b, true); got != 1.5 {
		t.Errorf("LoadFloat32 swap = %v", got)
	}
}

func BenchmarkExtractShove(b *testing.B) {
	buf := make([]byte, 4)
	in := [4]float32{0.1, 0.2, 0.3, 0.4}
	var out [4]float32
	for b.Loop() {
		Shove(P8888, &in, 0, buf)
		Extract(P8888, false, buf, &out)
	}
}
