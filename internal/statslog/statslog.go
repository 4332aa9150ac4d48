package statslog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"srchash/internal/macroscan"
)

// Sink appends diagnostic lines to a single sidecar file. The zero Sink
// (empty Path) is valid and silently discards every record, so callers
// don't need to branch on whether stats logging is enabled.
type Sink struct {
	Path string
}

// RecordFinding appends one line recording a single temporal macro found
// while hashing sourcePath. Call it once per finding bit set in a
// [macroscan.Findings] value; a file containing more than one temporal
// macro gets more than one line.
func (s Sink) RecordFinding(sourcePath string, finding macroscan.Findings) error {
	if s.Path == "" || finding == 0 {
		return nil
	}

	return s.append(fmt.Sprintf("finding\t%s\t%s\t%s", time.Now().Format(time.RFC3339), sourcePath, describeFindings(finding)))
}

// RecordRunFailure appends one line recording a failed command-runner
// segment.
func (s Sink) RecordRunFailure(cmdSegment string) error {
	if s.Path == "" {
		return nil
	}

	return s.append(fmt.Sprintf("run-failure\t%s\t%s", time.Now().Format(time.RFC3339), cmdSegment))
}

func (s Sink) append(line string) error {
	lock, err := acquireLock(s.Path)
	if err != nil {
		return fmt.Errorf("acquiring stats-log lock: %w", err)
	}

	defer lock.release()

	existing, readErr := os.ReadFile(s.Path) //nolint:gosec // path is caller-controlled config value
	if readErr != nil && !os.IsNotExist(readErr) {
		return fmt.Errorf("reading stats log: %w", readErr)
	}

	var sb strings.Builder

	sb.Write(existing)
	sb.WriteString(line)
	sb.WriteString("\n")

	if err := atomic.WriteFile(s.Path, strings.NewReader(sb.String())); err != nil {
		return fmt.Errorf("writing stats log: %w", err)
	}

	return nil
}

func describeFindings(f macroscan.Findings) string {
	var parts []string

	if f.Has(macroscan.FoundDate) {
		parts = append(parts, "date")
	}

	if f.Has(macroscan.FoundTime) {
		parts = append(parts, "time")
	}

	if f.Has(macroscan.FoundTimestamp) {
		parts = append(parts, "timestamp")
	}

	return strings.Join(parts, ",")
}
