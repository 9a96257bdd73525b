package server

import (
	"github.com/mrsinham/rectforge/internal/rect"
	"github.com/mrsinham/rectforge/internal/rng"
)

// SummaryResponse is the JSON shape returned by GET /v1/rects/summary.
type SummaryResponse struct {
	Seed      int64         `json:"seed"`
	Preset    rect.Preset   `json:"preset"`
	Algorithm rng.Algorithm `json:"algorithm"`
	Summary   rect.Summary  `json:"summary"`
	RequestID string        `json:"request_id,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
