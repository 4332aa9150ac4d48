package cmdrunner

import (
	"strings"

	"srchash/internal/hashsink"
)

// RunMulti splits cmdList on ';' and runs each non-empty segment through
// Run with the same compilerPath, absorbing every segment's output into
// sink. It returns true iff every segment returned true; every segment
// runs even after an earlier one fails, so the hash still picks up
// whatever material the rest of the command list produces. failed lists
// the trimmed text of each segment that returned false, in the order they
// ran, so a caller can report each one individually rather than collapsing
// a multi-segment run into a single verdict.
//
// A fatal error from any segment (pipe creation failure) aborts the
// remaining segments and propagates immediately.
func RunMulti(sink hashsink.Sink, cmdList, compilerPath string) (allOK bool, failed []string, err error) {
	allOK = true

	for _, segment := range strings.Split(cmdList, ";") {
		trimmed := strings.TrimSpace(segment)
		if trimmed == "" {
			continue
		}

		ok, err := Run(sink, segment, compilerPath)
		if err != nil {
			return false, failed, err
		}

		if !ok {
			allOK = false

			failed = append(failed, trimmed)
		}
	}

	return allOK, failed, nil
}
