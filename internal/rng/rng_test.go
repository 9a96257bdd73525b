package rng

import (
	"errors"
	"testing"
)

// fixedSource returns values from a pre-set sequence.
type fixedSource struct {
	values []uint64
	max    uint64
	idx    int
}

func (s *fixedSource) Next() uint64 {
	v := s.values[s.idx%len(s.values)]
	s.idx++
	return v
}

func (s *fixedSource) Max() uint64 { return s.max }

func TestLibcSource_KnownSequence(t *testing.T) {
	tests := []struct {
		seed int32
		want []uint64
	}{
		{seed: 1, want: []uint64{0, 740882966, 1616430695}},
		{seed: 0, want: []uint64{2049033599, 2025915578, 1407788582}},
	}

	for _, tc := range tests {
		src := NewLibcSource(tc.seed)
		for i, want := range tc.want {
			if got := src.Next(); got != want {
				t.Errorf("seed %d draw %d = %d, want %d", tc.seed, i, got, want)
			}
		}
	}
}

func TestLibcSource_Reseed(t *testing.T) {
	src := NewLibcSource(42)
	first := []uint64{src.Next(), src.Next(), src.Next()}

	src.Seed(42)
	for i, want := range first {
		if got := src.Next(); got != want {
			t.Errorf("after reseed draw %d = %d, want %d", i, got, want)
		}
	}
}

func TestLibcSource_NegativeSeedWrapsLikeUnsigned(t *testing.T) {
	a := NewLibcSource(-1)
	b := &LibcSource{state: 0xfffffffe}
	for i := 0; i < 5; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestLibcSource_Range(t *testing.T) {
	src := NewLibcSource(7)
	for i := 0; i < 10000; i++ {
		if v := src.Next(); v > LibcRandMax {
			t.Fatalf("draw %d = %d exceeds RAND_MAX", i, v)
		}
	}
}

func TestPCGSource_Deterministic(t *testing.T) {
	a := NewPCGSource(42)
	b := NewPCGSource(42)
	for i := 0; i < 100; i++ {
		x, y := a.Next(), b.Next()
		if x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
		if x > a.Max() {
			t.Fatalf("draw %d = %d exceeds max %d", i, x, a.Max())
		}
	}
}

func TestPCGSource_SeedsDiffer(t *testing.T) {
	a := NewPCGSource(1)
	b := NewPCGSource(2)
	same := 0
	for i := 0; i < 10; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	if same == 10 {
		t.Error("different seeds produced identical streams")
	}
}

func TestFloat32_Bounds(t *testing.T) {
	src := &fixedSource{values: []uint64{0, 100}, max: 100}

	if got := Float32(src, -5, 700); got != -5 {
		t.Errorf("lowest draw = %v, want -5", got)
	}
	if got := Float32(src, -5, 700); got != 700 {
		t.Errorf("highest draw = %v, want 700", got)
	}
}

func TestFloat32_Midpoint(t *testing.T) {
	src := &fixedSource{values: []uint64{50}, max: 100}
	if got := Float32(src, 10, 100); got != 55 {
		t.Errorf("midpoint draw = %v, want 55", got)
	}
}

func TestNormalized_Range(t *testing.T) {
	for _, alg := range AllAlgorithms() {
		src := New(alg, 99)
		for i := 0; i < 1000; i++ {
			v := Normalized(src)
			if v < 0 || v > 1 {
				t.Fatalf("%s: draw %d = %v outside [0, 1]", alg, i, v)
			}
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input string
		want  Algorithm
	}{
		{"libc", Libc},
		{"LIBC", Libc},
		{" pcg ", PCG},
		{"", DefaultAlgorithm},
	}

	for _, tc := range tests {
		got, err := ParseAlgorithm(tc.input)
		if err != nil {
			t.Errorf("ParseAlgorithm(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("ParseAlgorithm(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseAlgorithm_Invalid(t *testing.T) {
	_, err := ParseAlgorithm("mt19937")
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestNew_ReturnsIndependentSources(t *testing.T) {
	a := New(Libc, 5)
	b := New(Libc, 5)
	a.Next()
	a.Next()

	fresh := New(Libc, 5)
	if b.Next() != fresh.Next() {
		t.Error("drawing from one source advanced another")
	}
}
