// Package types holds the state shared between the wizard and its screens.
package types

import "github.com/mrsinham/rectforge/internal/config"

// Settings holds the values edited by the wizard screens.
type Settings struct {
	Seed      int64
	Preset    string
	Algorithm string
	Format    string
	Output    string
	Summary   bool

	// Params carries overrides loaded with --from. The wizard does not
	// edit them but keeps them when saving.
	Params *config.ParamsYAML
}
