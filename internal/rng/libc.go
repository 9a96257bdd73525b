package rng

// LibcRandMax mirrors RAND_MAX of the musl C library.
const LibcRandMax = 0x7fffffff

const libcMultiplier = 6364136223846793005

// LibcSource reproduces the srand/rand pair of musl libc. Seeding with the
// same value yields the same stream as `srand(seed); rand(); rand(); ...`
// in a program linked against musl.
type LibcSource struct {
	state uint64
}

// NewLibcSource returns a source seeded like srand(seed).
func NewLibcSource(seed int32) *LibcSource {
	s := &LibcSource{}
	s.Seed(seed)
	return s
}

// Seed resets the stream. The seed is taken as an unsigned int and the
// decrement happens in 32 bits, so Seed(0) starts from 0xffffffff.
func (s *LibcSource) Seed(seed int32) {
	s.state = uint64(uint32(seed) - 1)
}

// Next returns the next value in [0, LibcRandMax].
func (s *LibcSource) Next() uint64 {
	s.state = libcMultiplier*s.state + 1
	return s.state >> 33
}

// Max returns LibcRandMax.
func (s *LibcSource) Max() uint64 {
	return LibcRandMax
}
