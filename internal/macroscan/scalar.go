package macroscan

import "srchash/internal/buffer"

// scanScalar walks the buffer with a Boyer-Moore-Horspool skip, looking for
// the three temporal macro tokens.
//
// The cursor i walks the 8-byte window ending at i. 'E' sits at offset 5 of
// every profile and '_' at offset 0 (see table.go), so testing buf.At(i-2)
// and buf.At(i-7) cheaply rejects the overwhelming majority of positions
// before paying for the full verifier.
func scanScalar(buf *buffer.Buffer) Findings {
	size := buf.Size()
	if size < windowLen {
		return 0
	}

	var found Findings

	for i := windowLen - 1; i < size; {
		if buf.At(i-2) == 'E' && buf.At(i-7) == '_' {
			found |= verify(buf, i-6)
		}

		i += int(skipTable[buf.At(i)])
	}

	return found
}
