package iofs

import (
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
)

// ChaosConfig controls fault injection probabilities for [Chaos]. Each rate
// is a float64 from 0.0 (never) to 1.0 (always). The zero value disables all
// fault injection.
type ChaosConfig struct {
	// OpenFailRate controls how often Open fails to open a file at all.
	// Returns EIO.
	OpenFailRate float64

	// ReadFailRate controls how often ReadFile and File.Read fail entirely.
	// For ReadFile, returns EIO. For File.Read, always returns EIO.
	ReadFailRate float64

	// PartialReadRate controls how often File.Read returns a short read
	// (n < len(p), err == nil) instead of filling the buffer. This is valid
	// io.Reader behavior, exercising a caller's read-until-EOF loop over a
	// File returned by Open.
	PartialReadRate float64

	// StatFailRate controls how often Stat fails on a path.
	// Returns EIO.
	StatFailRate float64
}

// ChaosMode controls how [Chaos] behaves.
type ChaosMode uint8

const (
	// ChaosModeActive enables fault-rate injection. Default for a new Chaos.
	ChaosModeActive ChaosMode = iota

	// ChaosModeNoOp passes every operation directly to the underlying FS.
	ChaosModeNoOp
)

// ChaosStats contains counts of injected faults, for test assertions.
type ChaosStats struct {
	OpenFails  int64
	ReadFails  int64
	StatFails  int64
	PartialRds int64
}

// chaosError marks an error as intentionally injected by [Chaos]. It wraps
// the underlying error so errors.Is/As continue to work, while [IsChaosErr]
// can distinguish an injected fault from a real OS error in tests.
type chaosError struct {
	Err error
}

func (e *chaosError) Error() string { return "chaos: " + e.Err.Error() }
func (e *chaosError) Unwrap() error { return e.Err }

// IsChaosErr reports whether err (or any wrapped error) was injected by [Chaos].
func IsChaosErr(err error) bool {
	var injected *chaosError

	return errors.As(err, &injected)
}

// Chaos wraps an [FS] and injects random read/open/stat failures, so the
// source hasher's transient-input-error handling can be exercised
// deterministically in tests instead of waiting for a flaky disk.
//
// Chaos never injects ENOENT: a missing file should come from the wrapped FS
// so Chaos doesn't manufacture "not found" results the real filesystem
// wouldn't have produced.
type Chaos struct {
	fs     FS
	rng    *rand.Rand
	rngMu  sync.Mutex
	config ChaosConfig
	mode   atomic.Uint32

	openFails  atomic.Int64
	readFails  atomic.Int64
	statFails  atomic.Int64
	partialRds atomic.Int64
}

// NewChaos creates a new [Chaos] filesystem wrapping underlying. seed
// controls random fault injection for reproducibility. Panics if underlying
// is nil.
func NewChaos(underlying FS, seed int64, config ChaosConfig) *Chaos {
	if underlying == nil {
		panic("iofs: underlying fs is nil")
	}

	return &Chaos{
		fs:     underlying,
		rng:    rand.New(rand.NewPCG(uint64(seed), uint64(seed))),
		config: config,
	}
}

// SetMode updates Chaos behavior. Safe to call concurrently with filesystem
// operations.
func (c *Chaos) SetMode(m ChaosMode) { c.mode.Store(uint32(m)) }

// Stats returns the current fault injection counts.
func (c *Chaos) Stats() ChaosStats {
	return ChaosStats{
		OpenFails:  c.openFails.Load(),
		ReadFails:  c.readFails.Load(),
		StatFails:  c.statFails.Load(),
		PartialRds: c.partialRds.Load(),
	}
}

func (c *Chaos) getMode() ChaosMode {
	return ChaosMode(c.mode.Load())
}

func (c *Chaos) Open(path string) (File, error) {
	mode := c.getMode()
	if mode == ChaosModeActive && c.should(c.config.OpenFailRate) {
		c.openFails.Add(1)

		return nil, &chaosError{Err: &fs.PathError{Op: "open", Path: path, Err: syscall.EIO}}
	}

	f, err := c.fs.Open(path)
	if err != nil {
		return nil, err
	}

	return &chaosFile{f: f, chaos: c, path: path}, nil
}

func (c *Chaos) Stat(path string) (os.FileInfo, error) {
	mode := c.getMode()
	if mode == ChaosModeActive && c.should(c.config.StatFailRate) {
		c.statFails.Add(1)

		return nil, &chaosError{Err: &fs.PathError{Op: "stat", Path: path, Err: syscall.EIO}}
	}

	return c.fs.Stat(path)
}

func (c *Chaos) ReadFile(path string) ([]byte, error) {
	mode := c.getMode()
	if mode == ChaosModeActive && c.should(c.config.ReadFailRate) {
		c.readFails.Add(1)

		return nil, &chaosError{Err: &fs.PathError{Op: "read", Path: path, Err: syscall.EIO}}
	}

	return c.fs.ReadFile(path)
}

func (c *Chaos) should(rate float64) bool {
	c.rngMu.Lock()
	defer c.rngMu.Unlock()

	return c.rng.Float64() < rate
}

// chaosFile wraps a [File] to inject read faults on an already-open handle.
type chaosFile struct {
	f     File
	chaos *Chaos
	path  string
}

func (cf *chaosFile) Read(p []byte) (int, error) {
	mode := cf.chaos.getMode()
	if mode != ChaosModeActive {
		return cf.f.Read(p)
	}

	if cf.chaos.should(cf.chaos.config.ReadFailRate) {
		cf.chaos.readFails.Add(1)

		return 0, &chaosError{Err: &fs.PathError{Op: "read", Path: cf.path, Err: syscall.EIO}}
	}

	if cf.chaos.config.PartialReadRate > 0 && cf.chaos.should(cf.chaos.config.PartialReadRate) && len(p) > 1 {
		cf.chaos.partialRds.Add(1)

		half := len(p) / 2

		return cf.f.Read(p[:half])
	}

	return cf.f.Read(p)
}

func (cf *chaosFile) Close() error { return cf.f.Close() }

func (cf *chaosFile) Stat() (os.FileInfo, error) { return cf.f.Stat() }

// Compile-time interface checks.
var _ FS = (*Chaos)(nil)
var _ File = (*chaosFile)(nil)
