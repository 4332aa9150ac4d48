// Package sourcehash composes [srchash/internal/macroscan] with an
// [srchash/internal/hashsink.Sink] to hash a preprocessed source buffer,
// adding date/mtime entropy when the buffer contains a temporal macro whose
// value would otherwise make the digest unstable across builds.
package sourcehash

import (
	"fmt"

	"srchash/internal/buffer"
	"srchash/internal/hashsink"
	"srchash/internal/iofs"
	"srchash/internal/macroscan"
)

// HashBuffer absorbs buf into sink, scanning for temporal macros first
// (unless cfg.SloppyTimeMacros is set) and adding delimited entropy for
// __DATE__ and __TIMESTAMP__ findings so the digest does not silently
// depend on wall-clock or mtime without that dependency being visible in
// what was absorbed.
//
// path and fsys are only consulted when the buffer contains __TIMESTAMP__,
// to stat the originating file's modification time. clock supplies "now"
// for __DATE__. The returned Findings is valid even when err != nil, up to
// whichever step failed.
func HashBuffer(
	sink hashsink.Sink,
	buf *buffer.Buffer,
	path string,
	clock Clock,
	fsys iofs.FS,
	cfg Config,
) (macroscan.Findings, error) {
	var findings macroscan.Findings

	if !cfg.SloppyTimeMacros {
		findings = macroscan.Scan(buf)
	}

	sink.AbsorbBytes(buf.Bytes())

	if findings.Has(macroscan.FoundDate) {
		now := clock.Now().Local()

		sink.AbsorbDelimiter("date")
		sink.AbsorbInt(int64(now.Year()))
		sink.AbsorbInt(int64(now.Month()))
		sink.AbsorbInt(int64(now.Day()))
	}

	// FoundTime adds no entropy: only the finding is returned. It is
	// relevant to the caller's own "reuse preprocessed output"
	// optimization, which this package has no opinion on.

	if findings.Has(macroscan.FoundTimestamp) {
		info, err := fsys.Stat(path)
		if err != nil {
			return findings, fmt.Errorf("%w: %s: %w", errStatSource, path, err)
		}

		mtime := info.ModTime().Local()

		sink.AbsorbDelimiter("timestamp")
		sink.AbsorbBytes([]byte(FormatTimestamp(mtime)))
	}

	return findings, nil
}

// HashFile reads path through fsys and delegates to HashBuffer, with a
// short-circuit for precompiled headers: isPCH(path) decides whether path
// is a precompiled header, in which case its raw bytes are absorbed
// directly with no scan.
func HashFile(
	sink hashsink.Sink,
	fsys iofs.FS,
	path string,
	clock Clock,
	cfg Config,
	isPCH func(string) bool,
) (macroscan.Findings, error) {
	if isPCH(path) {
		data, err := fsys.ReadFile(path)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", errReadSource, path, err)
		}

		sink.AbsorbBytes(data)

		return 0, nil
	}

	info, err := fsys.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errStatSource, path, err)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errReadSource, path, err)
	}

	buf := buffer.NewBuffer(int(info.Size()))
	if err := buf.SetSize(len(data)); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errBufferTooSmall, path, err)
	}

	copy(buf.Bytes(), data)

	return HashBuffer(sink, buf, path, clock, fsys, cfg)
}
