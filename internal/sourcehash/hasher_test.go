package sourcehash

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"srchash/internal/buffer"
	"srchash/internal/hashsink/hashtest"
	"srchash/internal/iofs"
	"srchash/internal/macroscan"
)

type fakeClock struct{ t time.Time }

func (f fakeClock) Now() time.Time { return f.t }

func TestHashBuffer_NoFindings_AbsorbsOnlyBuffer(t *testing.T) {
	t.Parallel()

	buf := buffer.FromBytes([]byte("int x = 1;\n"))
	rec := hashtest.New()

	findings, err := HashBuffer(rec, buf, "a.c", fakeClock{}, iofs.NewReal(), Config{})
	if err != nil {
		t.Fatalf("HashBuffer: %v", err)
	}

	if findings != 0 {
		t.Errorf("findings = %v, want 0", findings)
	}

	if len(rec.Ops) != 1 || rec.Ops[0].Kind != "bytes" {
		t.Fatalf("Ops = %+v, want a single bytes absorb", rec.Ops)
	}
}

func TestHashBuffer_SloppyTimeMacros_SkipsScan(t *testing.T) {
	t.Parallel()

	buf := buffer.FromBytes([]byte("__DATE__"))
	rec := hashtest.New()

	findings, err := HashBuffer(rec, buf, "a.c", fakeClock{}, iofs.NewReal(), Config{SloppyTimeMacros: true})
	if err != nil {
		t.Fatalf("HashBuffer: %v", err)
	}

	if findings != 0 {
		t.Errorf("findings = %v, want 0 under SloppyTimeMacros", findings)
	}

	if len(rec.Ops) != 1 {
		t.Fatalf("Ops = %+v, want a single bytes absorb (no date entropy)", rec.Ops)
	}
}

func TestHashBuffer_FoundDate_AbsorbsDelimiterAndYMD(t *testing.T) {
	t.Parallel()

	buf := buffer.FromBytes([]byte("x __DATE__ y"))
	rec := hashtest.New()
	clock := fakeClock{t: time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC)}

	findings, err := HashBuffer(rec, buf, "a.c", clock, iofs.NewReal(), Config{})
	if err != nil {
		t.Fatalf("HashBuffer: %v", err)
	}

	if !findings.Has(macroscan.FoundDate) {
		t.Fatalf("findings = %v, want FoundDate", findings)
	}

	// bytes, delimiter, int(year), int(month), int(day)
	if len(rec.Ops) != 5 {
		t.Fatalf("Ops = %+v, want 5 absorb calls", rec.Ops)
	}

	if rec.Ops[1].Kind != "delimiter" || rec.Ops[1].Label != "date" {
		t.Errorf("Ops[1] = %+v, want delimiter %q", rec.Ops[1], "date")
	}

	if rec.Ops[2].Int != 2026 || rec.Ops[3].Int != int64(time.July) || rec.Ops[4].Int != 31 {
		t.Errorf("date fields = %+v, want 2026/7/31", rec.Ops[2:5])
	}
}

func TestHashBuffer_FoundTime_AddsNoEntropy(t *testing.T) {
	t.Parallel()

	buf := buffer.FromBytes([]byte("x __TIME__ y"))
	rec := hashtest.New()

	findings, err := HashBuffer(rec, buf, "a.c", fakeClock{}, iofs.NewReal(), Config{})
	if err != nil {
		t.Fatalf("HashBuffer: %v", err)
	}

	if !findings.Has(macroscan.FoundTime) {
		t.Fatalf("findings = %v, want FoundTime", findings)
	}

	if len(rec.Ops) != 1 {
		t.Fatalf("Ops = %+v, want only the buffer absorb", rec.Ops)
	}
}

func TestHashBuffer_FoundTimestamp_AbsorbsFormattedMtime(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.c")

	if err := os.WriteFile(path, []byte("x __TIMESTAMP__ y"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	mtime := time.Date(2020, time.January, 2, 3, 4, 5, 0, time.Local)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	buf := buffer.FromBytes([]byte("x __TIMESTAMP__ y"))
	rec := hashtest.New()

	findings, err := HashBuffer(rec, buf, path, fakeClock{}, iofs.NewReal(), Config{})
	if err != nil {
		t.Fatalf("HashBuffer: %v", err)
	}

	if !findings.Has(macroscan.FoundTimestamp) {
		t.Fatalf("findings = %v, want FoundTimestamp", findings)
	}

	if len(rec.Ops) != 3 {
		t.Fatalf("Ops = %+v, want bytes, delimiter, bytes", rec.Ops)
	}

	if rec.Ops[1].Label != "timestamp" {
		t.Errorf("Ops[1].Label = %q, want %q", rec.Ops[1].Label, "timestamp")
	}

	formatted := string(rec.Ops[2].Bytes)
	if len(formatted) != len(timestampFormat) {
		t.Errorf("formatted timestamp %q has len %d, want %d", formatted, len(formatted), len(timestampFormat))
	}
}

func TestHashBuffer_FoundTimestamp_StatFailureIsError(t *testing.T) {
	t.Parallel()

	buf := buffer.FromBytes([]byte("x __TIMESTAMP__ y"))
	rec := hashtest.New()

	missing := filepath.Join(t.TempDir(), "nope.c")

	_, err := HashBuffer(rec, buf, missing, fakeClock{}, iofs.NewReal(), Config{})
	if err == nil {
		t.Fatal("HashBuffer: want error for missing stat target, got nil")
	}
}

func TestHashFile_ReadsAndDelegates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.c")

	if err := os.WriteFile(path, []byte("int x;\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	rec := hashtest.New()
	notPCH := func(string) bool { return false }

	findings, err := HashFile(rec, iofs.NewReal(), path, fakeClock{}, Config{}, notPCH)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}

	if findings != 0 {
		t.Errorf("findings = %v, want 0", findings)
	}

	if got, want := rec.TotalBytesAbsorbed(), len("int x;\n"); got != want {
		t.Errorf("absorbed %d bytes, want %d", got, want)
	}
}

func TestHashFile_PrecompiledHeader_SkipsScan(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.pch")

	content := []byte("__DATE__ __TIME__ binary pch blob")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	rec := hashtest.New()
	isPCH := func(p string) bool { return filepath.Ext(p) == ".pch" }

	findings, err := HashFile(rec, iofs.NewReal(), path, fakeClock{}, Config{}, isPCH)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}

	if findings != 0 {
		t.Errorf("findings = %v, want 0 for precompiled header short-circuit", findings)
	}

	if len(rec.Ops) != 1 || rec.Ops[0].Kind != "bytes" {
		t.Fatalf("Ops = %+v, want a single raw bytes absorb", rec.Ops)
	}

	if string(rec.Ops[0].Bytes) != string(content) {
		t.Error("precompiled header content was not absorbed verbatim")
	}
}

func TestHashFile_MissingFile_ReturnsError(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.c")
	rec := hashtest.New()
	notPCH := func(string) bool { return false }

	_, err := HashFile(rec, iofs.NewReal(), missing, fakeClock{}, Config{}, notPCH)
	if err == nil {
		t.Fatal("HashFile: want error for missing file, got nil")
	}
}

func TestHashFile_ChaosReadFailure_IsTransientError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.c")

	if err := os.WriteFile(path, []byte("int x;"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	chaos := iofs.NewChaos(iofs.NewReal(), 7, iofs.ChaosConfig{ReadFailRate: 1.0})
	rec := hashtest.New()
	notPCH := func(string) bool { return false }

	_, err := HashFile(rec, chaos, path, fakeClock{}, Config{}, notPCH)
	if err == nil {
		t.Fatal("HashFile: want error under injected read failure, got nil")
	}

	if !iofs.IsChaosErr(err) {
		t.Errorf("error %v does not wrap a chaos-injected fault", err)
	}
}
