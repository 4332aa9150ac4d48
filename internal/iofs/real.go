package iofs

import "os"

// Real implements [FS] using the real filesystem. Every method is a pure
// passthrough to the os package with identical error semantics.
type Real struct{}

// NewReal returns a new [Real] filesystem.
func NewReal() *Real {
	return &Real{}
}

func (r *Real) Open(path string) (File, error) {
	return os.Open(path)
}

func (r *Real) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (r *Real) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path) //nolint:gosec // path is caller-controlled source input
}

// Compile-time interface check.
var _ FS = (*Real)(nil)
