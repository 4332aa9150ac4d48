// Package hashtest provides a recording hashsink.Sink for tests across
// srchash's hasher and command-runner packages: a fake hash handle whose
// absorbed operations are inspectable instead of opaque.
package hashtest

import (
	"encoding/binary"

	"srchash/internal/hashsink"
)

// Op is one recorded absorb operation.
type Op struct {
	Kind  string // "bytes", "delimiter", or "int"
	Bytes []byte
	Label string
	Int   int64
}

// Recorder is a hashsink.Sink that records every absorbed operation in
// order, instead of mixing it into a real digest. Sum returns the
// concatenation of every absorbed byte, delimiter label, and fixed-width
// integer, which is enough to assert on the exact sequence a test cares
// about without depending on a specific digest algorithm.
type Recorder struct {
	Ops []Op
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

func (r *Recorder) AbsorbBytes(p []byte) {
	cp := append([]byte(nil), p...)
	r.Ops = append(r.Ops, Op{Kind: "bytes", Bytes: cp})
}

func (r *Recorder) AbsorbDelimiter(label string) {
	r.Ops = append(r.Ops, Op{Kind: "delimiter", Label: label})
}

func (r *Recorder) AbsorbInt(v int64) {
	r.Ops = append(r.Ops, Op{Kind: "int", Int: v})
}

func (r *Recorder) Sum() []byte {
	var out []byte

	for _, op := range r.Ops {
		switch op.Kind {
		case "bytes":
			out = append(out, op.Bytes...)
		case "delimiter":
			out = append(out, 0x1F)
			out = append(out, []byte(op.Label)...)
		case "int":
			out = binary.BigEndian.AppendUint64(out, uint64(op.Int))
		}
	}

	return out
}

// TotalBytesAbsorbed returns the sum of len(p) over every AbsorbBytes call.
func (r *Recorder) TotalBytesAbsorbed() int {
	n := 0

	for _, op := range r.Ops {
		if op.Kind == "bytes" {
			n += len(op.Bytes)
		}
	}

	return n
}

var _ hashsink.Sink = (*Recorder)(nil)
