// Package rng provides caller-owned pseudo-random sources for rectangle
// generation. Every Source carries its own state, so two goroutines holding
// two sources never share anything.
package rng

// Source yields raw integer draws.
type Source interface {
	// Next returns the next raw draw in [0, Max()].
	Next() uint64
	// Max returns the largest value Next can return.
	Max() uint64
}

// Normalized returns the next draw of src scaled to [0, 1].
func Normalized(src Source) float32 {
	return float32(src.Next()) / float32(src.Max())
}

// Float32 returns a uniform draw in [lo, hi].
func Float32(src Source, lo, hi float32) float32 {
	// float32() rounds the product before the add; it must not fuse into an FMA.
	return lo + float32(Normalized(src)*(hi-lo))
}
