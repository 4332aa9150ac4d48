package cli

import (
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"

	"srchash/internal/buffer"
	"srchash/internal/config"
	"srchash/internal/hashsink"
	"srchash/internal/iofs"
	"srchash/internal/sourcehash"
)

// replSentinel ends a pasted snippet; a lone line containing only this
// terminates input and triggers a hash.
const replSentinel = "."

// ReplCmd returns the "repl" command: an interactive loop that hashes
// pasted source snippets and prints their digest and findings as they are
// entered, without requiring a file on disk.
func ReplCmd(stdin io.Reader, cfg config.Config) *Command {
	return &Command{
		Usage: "repl",
		Short: "Paste source snippets interactively and see digest + findings live",
		Exec: func(o *IO, _ []string) error {
			return runRepl(o, cfg)
		},
	}
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".srchash_history")
}

// fixedModTime is a minimal os.FileInfo that reports a fixed modification
// time, so __TIMESTAMP__ findings in pasted snippets (which have no file
// backing them) still have an mtime to hash. hashAndPrintSnippet sets it to
// the time each snippet is hashed, so the same __TIMESTAMP__ snippet pasted
// in two different seconds gets two different digests.
type fixedModTime struct {
	t time.Time
}

func (f fixedModTime) Name() string       { return "<repl>" }
func (f fixedModTime) Size() int64        { return 0 }
func (f fixedModTime) Mode() os.FileMode  { return 0 }
func (f fixedModTime) ModTime() time.Time { return f.t }
func (f fixedModTime) IsDir() bool        { return false }
func (f fixedModTime) Sys() any           { return nil }

// replFS supplies Stat for the __TIMESTAMP__ macro path in [sourcehash.HashBuffer]
// without touching any real file; Open and ReadFile are never called on it
// since the REPL feeds bytes straight into HashBuffer.
type replFS struct {
	info os.FileInfo
}

func (r replFS) Open(string) (iofs.File, error) {
	panic("replFS: Open not supported")
}

func (r replFS) Stat(string) (os.FileInfo, error) {
	return r.info, nil
}

func (r replFS) ReadFile(string) ([]byte, error) {
	panic("replFS: ReadFile not supported")
}

var _ iofs.FS = replFS{}

func runRepl(o *IO, cfg config.Config) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	if f, err := os.Open(historyFilePath()); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	o.Println("srchash repl - paste a snippet, end with a lone '.' line, Ctrl-D to quit")

	for {
		var lines []string

		for {
			text, err := line.Prompt("srchash> ")
			if err != nil {
				if err == liner.ErrPromptAborted || err == io.EOF {
					saveReplHistory(line)
					o.Println("")

					return nil
				}

				return err
			}

			if text == replSentinel {
				break
			}

			lines = append(lines, text)
			line.AppendHistory(text)
		}

		if len(lines) == 0 {
			continue
		}

		snippet := strings.Join(lines, "\n") + "\n"
		hashAndPrintSnippet(o, cfg, snippet)
	}
}

func saveReplHistory(line *liner.State) {
	path := historyFilePath()
	if path == "" {
		return
	}

	if f, err := os.Create(path); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

func hashAndPrintSnippet(o *IO, cfg config.Config, snippet string) {
	data := []byte(snippet)

	buf := buffer.NewBuffer(len(data))
	if err := buf.SetSize(len(data)); err != nil {
		o.ErrPrintln("error:", err)

		return
	}

	copy(buf.Bytes(), data)

	sink := hashsink.NewSHA256Sink()
	clock := sourcehash.SystemClock{}

	fsys := replFS{info: fixedModTime{t: clock.Now()}}

	findings, err := sourcehash.HashBuffer(
		sink,
		buf,
		"<repl>",
		clock,
		fsys,
		sourcehash.Config{SloppyTimeMacros: cfg.SloppyTimeMacros},
	)
	if err != nil {
		o.ErrPrintln("error:", err)

		return
	}

	o.Printf("%s  %s\n", hex.EncodeToString(sink.Sum()), describeFindings(findings))
}
