package export

import (
	"github.com/mrsinham/rectforge/internal/rect"
	"github.com/mrsinham/rectforge/internal/rng"
)

// Document is a generated batch together with what produced it.
type Document struct {
	Seed      int64         `json:"seed" yaml:"seed"`
	Preset    rect.Preset   `json:"preset,omitempty" yaml:"preset,omitempty"`
	Algorithm rng.Algorithm `json:"algorithm" yaml:"algorithm"`
	Stride    int           `json:"stride" yaml:"stride"`
	Rects     []rect.Rect   `json:"rects" yaml:"rects"`
	Buffer    []float32     `json:"buffer" yaml:"buffer,flow"`
	Summary   *rect.Summary `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// NewDocument flattens batch and wraps it with its provenance.
// An empty preset marks a batch generated from custom params.
func NewDocument(seed int64, preset rect.Preset, alg rng.Algorithm, batch []rect.Rect) Document {
	return Document{
		Seed:      seed,
		Preset:    preset,
		Algorithm: alg,
		Stride:    rect.FieldsPerRect,
		Rects:     batch,
		Buffer:    rect.Flatten(batch),
	}
}

// WithSummary attaches the batch summary.
func (d Document) WithSummary() Document {
	s := rect.Summarize(d.Rects)
	d.Summary = &s
	return d
}
