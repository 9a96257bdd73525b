package rect

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	batch := []Rect{
		{X: -5, Y: 10, Width: 10, Height: 20},
		{X: 100, Y: 0, Width: 30, Height: 40},
	}

	s := Summarize(batch)

	if s.Count != 2 {
		t.Errorf("Count = %d, want 2", s.Count)
	}
	want := Bounds{MinX: -5, MinY: 0, MaxX: 130, MaxY: 40}
	if s.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", s.Bounds, want)
	}
	if s.MeanWidth != 20 || s.MeanHeight != 30 {
		t.Errorf("means = %v/%v, want 20/30", s.MeanWidth, s.MeanHeight)
	}
	// Sample standard deviation of {10, 30}.
	if math.Abs(s.StdWidth-math.Sqrt(200)) > 1e-9 {
		t.Errorf("StdWidth = %v, want %v", s.StdWidth, math.Sqrt(200))
	}
	if s.TotalArea != 200+1200 {
		t.Errorf("TotalArea = %v, want 1400", s.TotalArea)
	}
}

func TestSummarize_SingleAndEmpty(t *testing.T) {
	if s := Summarize(nil); s != (Summary{}) {
		t.Errorf("empty batch summary = %+v", s)
	}

	s := Summarize([]Rect{{X: 1, Y: 2, Width: 3, Height: 4}})
	if s.StdWidth != 0 || s.StdHeight != 0 {
		t.Errorf("single rect should have zero deviation, got %+v", s)
	}
	if s.MeanWidth != 3 || s.MeanHeight != 4 {
		t.Errorf("single rect means = %v/%v", s.MeanWidth, s.MeanHeight)
	}
}
