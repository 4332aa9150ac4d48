package macroscan

import "srchash/internal/buffer"

// dateSuffix, timeSuffix, and timestampSuffix are the bytes expected
// starting at the second underscore of a candidate "__" pair. Together with
// the first underscore they spell out the full macro name.
var (
	dateSuffix      = []byte("_DATE__")
	timeSuffix      = []byte("_TIME__")
	timestampSuffix = []byte("_TIMESTAMP__")
)

// isIdentifierByte reports whether b can occur inside a C identifier.
func isIdentifierByte(b byte) bool {
	switch {
	case b == '_':
		return true
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	default:
		return false
	}
}

// verify confirms a candidate macro match. p is the index of the second
// underscore of a candidate "__" pair (the byte at buf.At(p-1) must be the
// first underscore of that pair, but verify itself does not check that —
// callers only reach here once they know p-1 is '_'). verify returns the
// finding bit for a confirmed whole-token match, or 0 if the candidate does
// not match any macro suffix or fails the token-boundary check.
func verify(buf *buffer.Buffer, p int) Findings {
	remaining := buf.Size() - p
	if remaining < 7 {
		return 0
	}

	if matchSuffix(buf, p, dateSuffix) {
		return verifyBoundary(buf, p, len(dateSuffix), FoundDate)
	}

	if matchSuffix(buf, p, timeSuffix) {
		return verifyBoundary(buf, p, len(timeSuffix), FoundTime)
	}

	if remaining >= len(timestampSuffix) && matchSuffix(buf, p, timestampSuffix) {
		return verifyBoundary(buf, p, len(timestampSuffix), FoundTimestamp)
	}

	return 0
}

// matchSuffix reports whether the bytes at buf.At(p)..buf.At(p+len(suffix)-1)
// equal suffix exactly.
func matchSuffix(buf *buffer.Buffer, p int, suffix []byte) bool {
	for i, want := range suffix {
		if buf.At(p+i) != want {
			return false
		}
	}

	return true
}

// verifyBoundary applies the token-boundary check: the byte immediately
// before the leading "__" (at p-2) and the byte immediately after the
// trailing "__" (at p+matchLen) must both be non-identifier bytes.
func verifyBoundary(buf *buffer.Buffer, p, matchLen int, found Findings) Findings {
	before := buf.At(p - 2)
	after := buf.At(p + matchLen)

	if isIdentifierByte(before) || isIdentifierByte(after) {
		return 0
	}

	return found
}
