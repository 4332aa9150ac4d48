package cli

import (
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command defines a CLI command with unified help generation.
type Command struct {
	// Flags defines command-specific flags. May be nil for a command with
	// no flags of its own.
	Flags *flag.FlagSet

	// Usage is the freeform usage string shown after "srchash" in help,
	// e.g. "hash <path> [flags]".
	Usage string

	// Short is a one-line description for the global help listing.
	Short string

	Exec func(o *IO, args []string) error
}

// Name returns the command name (first word of Usage).
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")

	return name
}

// HelpLine returns the short help line for the main usage display.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-28s %s", c.Usage, c.Short)
}

// PrintHelp prints the full help output for "srchash <cmd> --help".
func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage: srchash", c.Usage)
	o.Println()
	o.Println(c.Short)

	if c.Flags != nil && c.Flags.HasFlags() {
		o.Println()
		o.Println("Flags:")

		var buf strings.Builder

		c.Flags.SetOutput(&buf)
		c.Flags.PrintDefaults()
		o.Printf("%s", buf.String())
	}
}

// Run parses flags and executes the command, returning the process exit
// code.
func (c *Command) Run(o *IO, args []string) int {
	if c.Flags != nil {
		c.Flags.SetOutput(&strings.Builder{})

		if err := c.Flags.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				c.PrintHelp(o)

				return 0
			}

			o.ErrPrintln("error:", err)

			return 1
		}

		args = c.Flags.Args()
	}

	if err := c.Exec(o, args); err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	return 0
}
