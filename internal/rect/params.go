package rect

import (
	"fmt"
	"strings"

	"github.com/mrsinham/rectforge/internal/util"
)

// Range is an inclusive [Min, Max] generation interval.
type Range struct {
	Min float32 `json:"min" yaml:"min"`
	Max float32 `json:"max" yaml:"max"`
}

// Contains reports whether v lies in r.
func (r Range) Contains(v float32) bool {
	return v >= r.Min && v <= r.Max
}

// Params holds the named constants that bound generation.
// X is drawn from [MinPos, MaxCanvasWidth] and Y from [MinPos, MaxCanvasHeight].
type Params struct {
	MinPos          float32 `json:"min_pos"`
	MaxCanvasWidth  float32 `json:"max_canvas_width"`
	MaxCanvasHeight float32 `json:"max_canvas_height"`
	Width           Range   `json:"width"`
	Height          Range   `json:"height"`
}

// XRange returns the interval X is drawn from.
func (p Params) XRange() Range {
	return Range{Min: p.MinPos, Max: p.MaxCanvasWidth}
}

// YRange returns the interval Y is drawn from.
func (p Params) YRange() Range {
	return Range{Min: p.MinPos, Max: p.MaxCanvasHeight}
}

// Validate checks that every range is well ordered.
func (p Params) Validate() error {
	ranges := []struct {
		name string
		r    Range
	}{
		{"x", p.XRange()},
		{"y", p.YRange()},
		{"width", p.Width},
		{"height", p.Height},
	}
	for _, nr := range ranges {
		if nr.r.Min > nr.r.Max {
			return fmt.Errorf("%s [%g, %g]: %w", nr.name, nr.r.Min, nr.r.Max, ErrInvalidRange)
		}
	}
	return nil
}

// Contains reports whether every field of r lies within the generation bounds.
func (p Params) Contains(r Rect) bool {
	return p.XRange().Contains(r.X) &&
		p.YRange().Contains(r.Y) &&
		p.Width.Contains(r.Width) &&
		p.Height.Contains(r.Height)
}

// Preset names one of the known constant sets.
type Preset string

const (
	// Bleed lets rectangles start slightly off canvas on a 700x200 area.
	Bleed Preset = "bleed"
	// Tall keeps positions on a 600x200 canvas and allows taller rectangles.
	Tall Preset = "tall"
)

// DefaultPreset is used when none is configured.
const DefaultPreset = Bleed

// AllPresets returns all known presets.
func AllPresets() []Preset {
	return []Preset{Bleed, Tall}
}

// ParsePreset parses a preset name, case-insensitively.
// An empty string yields DefaultPreset.
func ParsePreset(s string) (Preset, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultPreset, nil
	}
	return util.ParseName(s, AllPresets(), ErrUnknownPreset)
}

// Params returns the constants of the preset. Unknown presets fall back to
// DefaultPreset.
func (p Preset) Params() Params {
	switch p {
	case Tall:
		return Params{
			MinPos:          0,
			MaxCanvasWidth:  600,
			MaxCanvasHeight: 200,
			Width:           Range{Min: 10, Max: 100},
			Height:          Range{Min: 10, Max: 200},
		}
	default:
		return Params{
			MinPos:          -5,
			MaxCanvasWidth:  700,
			MaxCanvasHeight: 200,
			Width:           Range{Min: 10, Max: 100},
			Height:          Range{Min: 10, Max: 100},
		}
	}
}
