package rng

import "math/rand/v2"

// pcgMax is the largest 53-bit value, the precision Go uses for float64 draws.
const pcgMax = 1<<53 - 1

// PCGSource adapts the math/rand/v2 PCG generator. Its stream is stable
// across platforms for a given Go release.
type PCGSource struct {
	pcg *rand.PCG
}

// NewPCGSource returns a PCG source seeded with (seed, seed).
func NewPCGSource(seed int64) *PCGSource {
	return &PCGSource{pcg: rand.NewPCG(uint64(seed), uint64(seed))}
}

// Next returns the top 53 bits of the next PCG output.
func (s *PCGSource) Next() uint64 {
	return s.pcg.Uint64() >> 11
}

// Max returns 2^53-1.
func (s *PCGSource) Max() uint64 {
	return pcgMax
}
