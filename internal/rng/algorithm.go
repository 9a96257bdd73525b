package rng

import (
	"errors"
	"strings"

	"github.com/mrsinham/rectforge/internal/util"
)

// ErrUnknownAlgorithm is returned when an algorithm name is not recognised.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm names a raw generator kind.
type Algorithm string

const (
	Libc Algorithm = "libc" // musl srand/rand
	PCG  Algorithm = "pcg"  // math/rand/v2 PCG
)

// DefaultAlgorithm is used when none is configured.
const DefaultAlgorithm = Libc

// AllAlgorithms returns all supported algorithms.
func AllAlgorithms() []Algorithm {
	return []Algorithm{Libc, PCG}
}

// ParseAlgorithm parses an algorithm name, case-insensitively.
// An empty string yields DefaultAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultAlgorithm, nil
	}
	return util.ParseName(s, AllAlgorithms(), ErrUnknownAlgorithm)
}

// New returns a fresh source of the given algorithm. Libc sources use the
// low 32 bits of seed, as srand takes an unsigned int.
func New(alg Algorithm, seed int64) Source {
	switch alg {
	case PCG:
		return NewPCGSource(seed)
	default:
		return NewLibcSource(int32(seed))
	}
}
