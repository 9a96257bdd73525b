package help

// HelpText describes one wizard field.
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts maps form field keys to their help.
var Texts = map[string]HelpText{
	"seed": {
		Title:       "SEED",
		Description: "Seed of the random source.",
		Details:     "Signed 32-bit integer. The same seed, preset and algorithm always produce the same batch.",
	},
	"preset": {
		Title:       "PRESET",
		Description: "Named generation bounds.",
		Details: `bleed - x in [-5, 700], y in [-5, 200], sizes 10-100
tall  - x in [0, 600], y in [0, 200], width 10-100, height 10-200`,
	},
	"algorithm": {
		Title:       "ALGORITHM",
		Description: "Pseudo-random source.",
		Details: `libc - linear congruential generator compatible with C srand/rand
pcg  - permuted congruential generator from Go's math/rand/v2`,
	},
	"format": {
		Title:       "FORMAT",
		Description: "How the batch is written.",
		Details:     "text, table, json, yaml, or binary (160 bytes of little-endian float32).",
	},
	"output": {
		Title:       "OUTPUT FILE",
		Description: "File receiving the batch.",
		Details:     "Leave empty or use - to print to the terminal.",
	},
	"summary": {
		Title:       "SUMMARY",
		Description: "Append batch statistics.",
		Details:     "Bounding box, mean and standard deviation of sizes, total area.",
	},
}
