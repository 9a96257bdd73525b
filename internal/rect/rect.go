// Package rect generates batches of pseudo-random axis-aligned rectangles and
// flattens them into the float32 buffer handed to host renderers.
package rect

import "errors"

const (
	// BatchSize is the number of rectangles in every batch.
	BatchSize = 10
	// FieldsPerRect is the buffer stride: x, y, width, height.
	FieldsPerRect = 4
	// BufferLen is the length of a flattened batch.
	BufferLen = BatchSize * FieldsPerRect
)

var (
	ErrBufferStride  = errors.New("buffer length is not a multiple of 4")
	ErrInvalidRange  = errors.New("range minimum exceeds maximum")
	ErrUnknownPreset = errors.New("unknown preset")
)

// Rect is an axis-aligned box given by its top-left corner and extent.
type Rect struct {
	X      float32 `json:"x" yaml:"x"`
	Y      float32 `json:"y" yaml:"y"`
	Width  float32 `json:"width" yaml:"width"`
	Height float32 `json:"height" yaml:"height"`
}

// Area returns Width*Height.
func (r Rect) Area() float32 {
	return r.Width * r.Height
}
