package macroscan

import (
	"github.com/klauspost/cpuid/v2"

	"srchash/internal/buffer"
)

// useWide is decided once at package init: query CPU support for 256-bit
// integer SIMD and prefer the wide path when available.
// cpuid.CPU.Supports(cpuid.AVX2) is the runtime probe; the wide path itself
// needs no actual AVX2 instructions (it is plain Go), but gating on the same
// feature this binary's SHA-256 implementation already probes for avoids
// adding a second feature-detection policy.
var useWide = cpuid.CPU.Supports(cpuid.AVX2)

// Scan returns the findings bitmask for buf, dispatching to the scalar or
// wide path per useWide. Both paths are required to agree on every input;
// see TestScan_RandomizedParity in scan_test.go.
func Scan(buf *buffer.Buffer) Findings {
	if useWide {
		return scanWide(buf)
	}

	return scanScalar(buf)
}

// ScanScalar forces the Boyer-Moore-Horspool path regardless of CPU
// features. Exported for tests and benchmarks that need to compare both
// paths directly.
func ScanScalar(buf *buffer.Buffer) Findings {
	return scanScalar(buf)
}

// ScanWide forces the word-parallel path regardless of CPU features.
// Exported for tests and benchmarks that need to compare both paths
// directly.
func ScanWide(buf *buffer.Buffer) Findings {
	return scanWide(buf)
}
