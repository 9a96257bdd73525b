// Package export writes rectangle batches in the formats understood by host
// consumers and humans.
package export

import (
	"errors"
	"strings"

	"github.com/mrsinham/rectforge/internal/util"
)

var (
	ErrUnknownFormat   = errors.New("unknown format")
	ErrTruncatedBuffer = errors.New("binary buffer length is not a multiple of 4 bytes")
)

// Format is an output encoding.
type Format string

const (
	Text   Format = "text"   // one rectangle per line
	Table  Format = "table"  // bordered table for terminals
	JSON   Format = "json"   // Document as JSON
	YAML   Format = "yaml"   // Document as YAML
	Binary Format = "binary" // little-endian float32, the raw host buffer
)

// DefaultFormat is used when none is configured.
const DefaultFormat = Text

// AllFormats returns all supported formats.
func AllFormats() []Format {
	return []Format{Text, Table, JSON, YAML, Binary}
}

// ParseFormat parses a format name, case-insensitively.
// An empty string yields DefaultFormat.
func ParseFormat(s string) (Format, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultFormat, nil
	}
	return util.ParseName(s, AllFormats(), ErrUnknownFormat)
}

// ContentType returns the MIME type used when serving f over HTTP.
func (f Format) ContentType() string {
	switch f {
	case JSON:
		return "application/json"
	case YAML:
		return "application/yaml"
	case Binary:
		return "application/octet-stream"
	default:
		return "text/plain; charset=utf-8"
	}
}
