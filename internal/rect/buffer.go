package rect

import "fmt"

// Flatten writes x, y, width, height of every rectangle, in batch order, into
// a new slice of length len(batch)*FieldsPerRect.
func Flatten(batch []Rect) []float32 {
	buf := make([]float32, 0, len(batch)*FieldsPerRect)
	for _, r := range batch {
		buf = append(buf, r.X, r.Y, r.Width, r.Height)
	}
	return buf
}

// Unflatten is the inverse of Flatten.
func Unflatten(buf []float32) ([]Rect, error) {
	if len(buf)%FieldsPerRect != 0 {
		return nil, fmt.Errorf("unflatten %d values: %w", len(buf), ErrBufferStride)
	}
	batch := make([]Rect, 0, len(buf)/FieldsPerRect)
	for i := 0; i < len(buf); i += FieldsPerRect {
		batch = append(batch, Rect{
			X:      buf[i],
			Y:      buf[i+1],
			Width:  buf[i+2],
			Height: buf[i+3],
		})
	}
	return batch, nil
}
