package rect

import "github.com/mrsinham/rectforge/internal/rng"

// Generate draws BatchSize rectangles from src. Each rectangle consumes four
// draws in the order x, y, width, height. The returned batch lists the last
// generated rectangle first.
func Generate(src rng.Source, p Params) []Rect {
	batch := make([]Rect, 0, BatchSize)
	for range BatchSize {
		batch = append(batch, Rect{
			X:      rng.Float32(src, p.MinPos, p.MaxCanvasWidth),
			Y:      rng.Float32(src, p.MinPos, p.MaxCanvasHeight),
			Width:  rng.Float32(src, p.Width.Min, p.Width.Max),
			Height: rng.Float32(src, p.Height.Min, p.Height.Max),
		})
	}
	Reverse(batch)
	return batch
}

// Reverse reverses batch in place.
func Reverse(batch []Rect) {
	for i, j := 0, len(batch)-1; i < j; i, j = i+1, j-1 {
		batch[i], batch[j] = batch[j], batch[i]
	}
}

// GenerateBuffer seeds a fresh source and returns the flattened batch.
func GenerateBuffer(alg rng.Algorithm, seed int64, p Params) []float32 {
	return Flatten(Generate(rng.New(alg, seed), p))
}

// GetRectList is the host-facing entry point: the libc generator seeded with
// seed, the default preset, flattened. The slice is owned by the caller.
func GetRectList(seed int32) []float32 {
	return GenerateBuffer(rng.Libc, int64(seed), DefaultPreset.Params())
}
