package rect

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Bounds is the box enclosing every rectangle of a batch.
type Bounds struct {
	MinX float64 `json:"min_x" yaml:"min_x"`
	MinY float64 `json:"min_y" yaml:"min_y"`
	MaxX float64 `json:"max_x" yaml:"max_x"`
	MaxY float64 `json:"max_y" yaml:"max_y"`
}

// Summary describes a batch for diagnostics.
type Summary struct {
	Count      int     `json:"count" yaml:"count"`
	Bounds     Bounds  `json:"bounds" yaml:"bounds"`
	MeanWidth  float64 `json:"mean_width" yaml:"mean_width"`
	StdWidth   float64 `json:"std_width" yaml:"std_width"`
	MeanHeight float64 `json:"mean_height" yaml:"mean_height"`
	StdHeight  float64 `json:"std_height" yaml:"std_height"`
	TotalArea  float64 `json:"total_area" yaml:"total_area"`
}

// Summarize computes bounds and size statistics. Standard deviations are
// zero for batches of fewer than two rectangles.
func Summarize(batch []Rect) Summary {
	n := len(batch)
	if n == 0 {
		return Summary{}
	}

	left := make([]float64, n)
	top := make([]float64, n)
	right := make([]float64, n)
	bottom := make([]float64, n)
	widths := make([]float64, n)
	heights := make([]float64, n)
	areas := make([]float64, n)
	for i, r := range batch {
		left[i] = float64(r.X)
		top[i] = float64(r.Y)
		right[i] = float64(r.X + r.Width)
		bottom[i] = float64(r.Y + r.Height)
		widths[i] = float64(r.Width)
		heights[i] = float64(r.Height)
		areas[i] = float64(r.Area())
	}

	s := Summary{
		Count: n,
		Bounds: Bounds{
			MinX: floats.Min(left),
			MinY: floats.Min(top),
			MaxX: floats.Max(right),
			MaxY: floats.Max(bottom),
		},
		TotalArea: floats.Sum(areas),
	}
	if n < 2 {
		s.MeanWidth, s.MeanHeight = widths[0], heights[0]
		return s
	}
	s.MeanWidth, s.StdWidth = stat.MeanStdDev(widths, nil)
	s.MeanHeight, s.StdHeight = stat.MeanStdDev(heights, nil)
	return s
}
