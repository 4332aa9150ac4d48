// Package cmdrunner spawns a compiler (or compiler-adjacent) subprocess and
// absorbs its merged stdout+stderr into a hash handle, per the Command
// Runner and Multi-command Orchestrator.
package cmdrunner

import (
	shellwords "github.com/mattn/go-shellwords"
)

// compilerPlaceholder is the literal token substituted with the caller's
// compiler path.
const compilerPlaceholder = "%compiler%"

// Tokenize splits cmd into an argument vector using shell-like whitespace
// splitting with quoting, the way a shell would before exec.
func Tokenize(cmd string) ([]string, error) {
	return shellwords.Parse(cmd)
}

// SubstituteCompiler replaces every argument literally equal to
// "%compiler%" with compilerPath, returning a new slice.
func SubstituteCompiler(args []string, compilerPath string) []string {
	out := make([]string, len(args))

	for i, a := range args {
		if a == compilerPlaceholder {
			out[i] = compilerPath
			continue
		}

		out[i] = a
	}

	return out
}
