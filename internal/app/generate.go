// Package app runs a resolved generation config end to end: it builds the
// batch, renders it in the requested format and writes it to a file or to
// the caller's writer.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/mrsinham/rectforge/internal/config"
	"github.com/mrsinham/rectforge/internal/export"
	"github.com/mrsinham/rectforge/internal/rect"
	"github.com/mrsinham/rectforge/internal/rng"
)

// Result describes a completed run.
type Result struct {
	Document export.Document
	// Path is empty when the output went to the caller's writer.
	Path  string
	Bytes int64
}

// Document generates the batch described by r.
func Document(r config.Resolved) export.Document {
	batch := rect.Generate(rng.New(r.Algorithm, r.Seed), r.Params)

	preset := r.Preset
	if r.Custom {
		preset = ""
	}
	doc := export.NewDocument(r.Seed, preset, r.Algorithm, batch)
	if r.Summary {
		doc = doc.WithSummary()
	}
	return doc
}

// Run generates the batch and writes it to r.Output, or to stdout when the
// output is empty or "-".
func Run(r config.Resolved, stdout io.Writer) (Result, error) {
	doc := Document(r)

	if r.Output == "" || r.Output == "-" {
		cw := &countingWriter{w: stdout}
		if err := export.Write(cw, r.Format, doc); err != nil {
			return Result{}, fmt.Errorf("write %s: %w", r.Format, err)
		}
		return Result{Document: doc, Bytes: cw.n}, nil
	}

	f, err := os.Create(r.Output)
	if err != nil {
		return Result{}, fmt.Errorf("create output: %w", err)
	}
	cw := &countingWriter{w: f}
	if err := export.Write(cw, r.Format, doc); err != nil {
		f.Close()
		return Result{}, fmt.Errorf("write %s: %w", r.Format, err)
	}
	if err := f.Close(); err != nil {
		return Result{}, fmt.Errorf("close output: %w", err)
	}
	return Result{Document: doc, Path: r.Output, Bytes: cw.n}, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
