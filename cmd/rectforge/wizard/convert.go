package wizard

import (
	"fmt"

	"github.com/mrsinham/rectforge/cmd/rectforge/wizard/types"
	"github.com/mrsinham/rectforge/internal/config"
)

// ToFile converts wizard settings to a config file.
func ToFile(s *types.Settings) *config.File {
	return &config.File{
		Seed:      s.Seed,
		Preset:    s.Preset,
		Algorithm: s.Algorithm,
		Format:    s.Format,
		Output:    s.Output,
		Summary:   s.Summary,
		Params:    s.Params,
	}
}

// FromFile converts a config file to wizard settings.
func FromFile(f *config.File) *types.Settings {
	return &types.Settings{
		Seed:      f.Seed,
		Preset:    f.Preset,
		Algorithm: f.Algorithm,
		Format:    f.Format,
		Output:    f.Output,
		Summary:   f.Summary,
		Params:    f.Params,
	}
}

// Resolve validates s and returns the generation config it describes.
func Resolve(s *types.Settings) (config.Resolved, error) {
	r, err := ToFile(s).Resolve()
	if err != nil {
		return config.Resolved{}, fmt.Errorf("invalid settings: %w", err)
	}
	return r, nil
}

// LoadFromYAML reads wizard settings from a config file.
func LoadFromYAML(path string) (*types.Settings, error) {
	f, err := config.LoadFromYAML(path)
	if err != nil {
		return nil, err
	}
	return FromFile(f), nil
}

// SaveToYAML writes wizard settings to a config file.
func SaveToYAML(s *types.Settings, path string) error {
	return config.SaveToYAML(ToFile(s), path)
}
