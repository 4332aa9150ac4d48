package cli

import (
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"srchash/internal/config"
	"srchash/internal/hashsink"
	"srchash/internal/iofs"
	"srchash/internal/macroscan"
	"srchash/internal/sourcehash"
	"srchash/internal/statslog"
)

// pchExtensions are the file extensions treated as precompiled headers by
// the isPCH predicate wired into sourcehash.HashFile, in place of real
// compiler-argument-derived detection.
var pchExtensions = map[string]bool{
	".pch": true,
	".gch": true,
	".pth": true,
}

func isPrecompiledHeader(path string) bool {
	return pchExtensions[strings.ToLower(filepath.Ext(path))]
}

// HashCmd returns the "hash" command: hash a single source file and print
// its digest and findings.
func HashCmd(cfg config.Config) *Command {
	flags := flag.NewFlagSet("hash", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "hash <path>",
		Short: "Hash a source file, absorbing temporal macro entropy where found",
		Exec: func(o *IO, args []string) error {
			return execHash(o, cfg, args)
		},
	}
}

func execHash(o *IO, cfg config.Config, args []string) error {
	if len(args) == 0 {
		return errPathRequired
	}

	path := args[0]

	sink := hashsink.NewSHA256Sink()

	findings, err := sourcehash.HashFile(
		sink,
		iofs.NewReal(),
		path,
		sourcehash.SystemClock{},
		sourcehash.Config{SloppyTimeMacros: cfg.SloppyTimeMacros},
		isPrecompiledHeader,
	)
	if err != nil {
		return fmt.Errorf("hashing %s: %w", path, err)
	}

	stats := statslog.Sink{Path: cfg.StatsLog}

	for _, bit := range []macroscan.Findings{macroscan.FoundDate, macroscan.FoundTime, macroscan.FoundTimestamp} {
		if !findings.Has(bit) {
			continue
		}

		if err := stats.RecordFinding(path, bit); err != nil {
			o.ErrPrintln("warning: could not write stats log:", err)
		}
	}

	o.Printf("%s  %s  %s\n", hex.EncodeToString(sink.Sum()), describeFindings(findings), path)

	return nil
}

func describeFindings(f macroscan.Findings) string {
	if f == 0 {
		return "-"
	}

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
