// Command srchash scans and hashes compiler source inputs the way a
// compilation cache keys its entries: drop-in C preprocessor macro
// awareness, precompiled-header passthrough, and compiler-invocation
// hashing, without implementing a cache itself.
package main

import (
	"os"

	"srchash/internal/cli"
)

func main() {
	exitCode := cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args, os.Environ())

	os.Exit(exitCode)
}
