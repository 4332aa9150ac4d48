package hashsink

import (
	"hash"

	sha256simd "github.com/minio/sha256-simd"
)

// sha256Sink wraps a SIMD-accelerated SHA-256 (github.com/minio/sha256-simd,
// which itself uses github.com/klauspost/cpuid/v2 for feature detection) as
// a Sink. It is the default handle srchash's source hasher and command
// runner absorb into.
type sha256Sink struct {
	h hash.Hash
}

// NewSHA256Sink returns a Sink backed by a fresh SHA-256 state.
func NewSHA256Sink() Sink {
	return &sha256Sink{h: sha256simd.New()}
}

func (s *sha256Sink) AbsorbBytes(p []byte) {
	s.h.Write(p) //nolint:errcheck // hash.Hash.Write never returns an error
}

func (s *sha256Sink) AbsorbDelimiter(label string) {
	s.h.Write([]byte{delimiterFrame}) //nolint:errcheck // hash.Hash.Write never returns an error
	s.h.Write([]byte(label))          //nolint:errcheck // hash.Hash.Write never returns an error
}

func (s *sha256Sink) AbsorbInt(v int64) {
	b := absorbIntBytes(v)
	s.h.Write(b[:]) //nolint:errcheck // hash.Hash.Write never returns an error
}

func (s *sha256Sink) Sum() []byte {
	return s.h.Sum(nil)
}
