package cli

import (
	"errors"
	"strings"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestCommand_Name_IsFirstWordOfUsage(t *testing.T) {
	t.Parallel()

	c := &Command{Usage: "hash <path>"}

	if got := c.Name(); got != "hash" {
		t.Errorf("Name() = %q, want %q", got, "hash")
	}
}

func TestCommand_Run_ExecutesAndReturnsZeroOnSuccess(t *testing.T) {
	t.Parallel()

	var out, errOut strings.Builder

	called := false
	c := &Command{
		Usage: "noop",
		Exec: func(_ *IO, args []string) error {
			called = true

			return nil
		},
	}

	code := c.Run(NewIO(&out, &errOut), nil)
	if code != 0 {
		t.Errorf("Run() = %d, want 0", code)
	}

	if !called {
		t.Error("Exec was not called")
	}
}

func TestCommand_Run_ReturnsOneAndPrintsErrorOnFailure(t *testing.T) {
	t.Parallel()

	var out, errOut strings.Builder

	c := &Command{
		Usage: "fail",
		Exec: func(_ *IO, _ []string) error {
			return errors.New("boom")
		},
	}

	code := c.Run(NewIO(&out, &errOut), nil)
	if code != 1 {
		t.Errorf("Run() = %d, want 1", code)
	}

	if !strings.Contains(errOut.String(), "boom") {
		t.Errorf("stderr = %q, want it to contain %q", errOut.String(), "boom")
	}
}

func TestCommand_Run_ParsesOwnFlags(t *testing.T) {
	t.Parallel()

	var out, errOut strings.Builder

	flags := flag.NewFlagSet("greet", flag.ContinueOnError)
	name := flags.String("name", "", "name to greet")

	var got string

	c := &Command{
		Flags: flags,
		Usage: "greet",
		Exec: func(_ *IO, _ []string) error {
			got = *name

			return nil
		},
	}

	code := c.Run(NewIO(&out, &errOut), []string{"--name", "world"})
	if code != 0 {
		t.Fatalf("Run() = %d, want 0", code)
	}

	if got != "world" {
		t.Errorf("flag value = %q, want %q", got, "world")
	}
}

func TestCommand_Run_HelpFlagPrintsHelpAndReturnsZero(t *testing.T) {
	t.Parallel()

	var out, errOut strings.Builder

	flags := flag.NewFlagSet("greet", flag.ContinueOnError)

	c := &Command{Flags: flags, Usage: "greet", Short: "say hi", Exec: func(*IO, []string) error { return nil }}

	code := c.Run(NewIO(&out, &errOut), []string{"--help"})
	if code != 0 {
		t.Errorf("Run(--help) = %d, want 0", code)
	}

	if !strings.Contains(out.String(), "say hi") {
		t.Errorf("help output = %q, want it to contain Short description", out.String())
	}
}
