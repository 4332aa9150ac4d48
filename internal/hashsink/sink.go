// Package hashsink defines the incremental hash handle contract consumed by
// srchash's source hasher and command runner, plus a default
// SIMD-accelerated implementation.
package hashsink

import "encoding/binary"

// delimiterFrame is the framing byte prepended to every delimiter label.
// 0x1F (ASCII unit separator) cannot occur in the UTF-8 source text or
// subprocess output this module absorbs, so a delimiter can never be
// confused with ordinary absorbed bytes, and
// AbsorbBytes(A); AbsorbDelimiter("x"); AbsorbBytes(B) is always
// distinguishable from AbsorbBytes(A||B).
const delimiterFrame = 0x1F

// Sink is an opaque incremental hash accumulator. Implementations are owned
// and destroyed by their caller; Sink itself never outlives a single
// scan/hash/run call.
type Sink interface {
	// AbsorbBytes mixes len(p) bytes into the running state.
	AbsorbBytes(p []byte)

	// AbsorbDelimiter mixes a short label, framed so it cannot collide with
	// ordinary absorbed content.
	AbsorbDelimiter(label string)

	// AbsorbInt mixes an integer in fixed-width binary form.
	AbsorbInt(v int64)

	// Sum returns the current digest. Calling it does not reset the state.
	Sum() []byte
}

// absorbIntBytes renders v as 8 bytes, big-endian, fixed width regardless of
// platform or value sign.
func absorbIntBytes(v int64) [8]byte {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], uint64(v))

	return buf
}
