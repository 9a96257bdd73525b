// Package config loads generation settings from YAML files and server
// settings from the environment.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mrsinham/rectforge/internal/export"
	"github.com/mrsinham/rectforge/internal/rect"
	"github.com/mrsinham/rectforge/internal/rng"
)

// ErrSeedRange is returned when a seed does not fit in a signed 32-bit integer.
var ErrSeedRange = errors.New("seed out of int32 range")

// File is the YAML representation of a generation run.
type File struct {
	Seed      int64       `yaml:"seed"`
	Preset    string      `yaml:"preset,omitempty"`
	Algorithm string      `yaml:"algorithm,omitempty"`
	Format    string      `yaml:"format,omitempty"`
	Output    string      `yaml:"output,omitempty"`
	Summary   bool        `yaml:"summary,omitempty"`
	Params    *ParamsYAML `yaml:"params,omitempty"`
}

// ParamsYAML overrides individual constants of the selected preset.
// Unset fields keep the preset value.
type ParamsYAML struct {
	MinPos          *float32    `yaml:"min_pos,omitempty"`
	MaxCanvasWidth  *float32    `yaml:"max_canvas_width,omitempty"`
	MaxCanvasHeight *float32    `yaml:"max_canvas_height,omitempty"`
	Width           *rect.Range `yaml:"width,omitempty"`
	Height          *rect.Range `yaml:"height,omitempty"`
}

// Resolved is a validated File ready for generation.
type Resolved struct {
	Seed      int64
	Preset    rect.Preset
	Algorithm rng.Algorithm
	Format    export.Format
	Params    rect.Params
	// Custom is set when overrides changed the preset's constants.
	Custom  bool
	Output  string
	Summary bool
}

// LoadFromYAML reads a File from path.
func LoadFromYAML(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &f, nil
}

// SaveToYAML writes f to path.
func SaveToYAML(f *File, path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Resolve parses names, applies overrides on top of the preset and
// validates the resulting params.
func (f *File) Resolve() (Resolved, error) {
	if f.Seed < math.MinInt32 || f.Seed > math.MaxInt32 {
		return Resolved{}, fmt.Errorf("%w: %d", ErrSeedRange, f.Seed)
	}
	preset, err := rect.ParsePreset(f.Preset)
	if err != nil {
		return Resolved{}, err
	}
	alg, err := rng.ParseAlgorithm(f.Algorithm)
	if err != nil {
		return Resolved{}, err
	}
	format, err := export.ParseFormat(f.Format)
	if err != nil {
		return Resolved{}, err
	}

	base := preset.Params()
	params := f.Params.apply(base)
	if err := params.Validate(); err != nil {
		return Resolved{}, fmt.Errorf("params: %w", err)
	}

	return Resolved{
		Seed:      f.Seed,
		Preset:    preset,
		Algorithm: alg,
		Format:    format,
		Params:    params,
		Custom:    params != base,
		Output:    f.Output,
		Summary:   f.Summary,
	}, nil
}

func (p *ParamsYAML) apply(base rect.Params) rect.Params {
	if p == nil {
		return base
	}
	if p.MinPos != nil {
		base.MinPos = *p.MinPos
	}
	if p.MaxCanvasWidth != nil {
		base.MaxCanvasWidth = *p.MaxCanvasWidth
	}
	if p.MaxCanvasHeight != nil {
		base.MaxCanvasHeight = *p.MaxCanvasHeight
	}
	if p.Width != nil {
		base.Width = *p.Width
	}
	if p.Height != nil {
		base.Height = *p.Height
	}
	return base
}

// FromResolved converts r back to a File. Params are written out only when
// they differ from the preset.
func FromResolved(r Resolved) *File {
	f := &File{
		Seed:      r.Seed,
		Preset:    string(r.Preset),
		Algorithm: string(r.Algorithm),
		Format:    string(r.Format),
		Output:    r.Output,
		Summary:   r.Summary,
	}
	if r.Custom {
		p := r.Params
		f.Params = &ParamsYAML{
			MinPos:          &p.MinPos,
			MaxCanvasWidth:  &p.MaxCanvasWidth,
			MaxCanvasHeight: &p.MaxCanvasHeight,
			Width:           &p.Width,
			Height:          &p.Height,
		}
	}
	return f
}
