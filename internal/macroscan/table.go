package macroscan

// windowLen is the length of the fixed scan window used by the scalar path:
// long enough to distinguish all three macros by their first 8 bytes
// ("__DATE__", "__TIME__", and the first 8 bytes of "__TIMESTAMP__").
const windowLen = 8

// profiles are the 8-byte windows the Boyer-Moore-Horspool walk recognizes.
// Each profile shares a leading "__" (offset 0) and an 'E' at offset 5 — the
// property the cheap start[i-7]=='_' / start[i-2]=='E' filter in scanScalar
// relies on. The full match (including the remainder of __TIMESTAMP__) is
// confirmed by verify.
var profiles = [][]byte{
	[]byte("__DATE__"),
	[]byte("__TIME__"),
	[]byte("__TIMEST"), // first 8 bytes of __TIMESTAMP__
}

// skipTable is the 256-entry Boyer-Moore-Horspool bad-character table.
// skipTable[c] is the number of bytes the scan cursor may safely advance
// when the window's rightmost byte is c, computed as the minimum, across all
// profiles, of the classical single-needle Horspool skip for that profile.
// Using the minimum keeps the walk safe for every profile simultaneously: it
// never advances past a position where some profile could still match.
var skipTable [256]byte

func init() {
	for c := range skipTable {
		skipTable[c] = windowLen
	}

	for _, profile := range profiles {
		prefix := profile[:windowLen-1]

		for j, c := range prefix {
			dist := byte(windowLen - 1 - j)
			if dist < skipTable[c] {
				skipTable[c] = dist
			}
		}
	}
}
