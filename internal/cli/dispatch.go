// Package cli implements the command-line interface for srchash.
package cli

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"srchash/internal/config"
)

// Run is the main entry point. Returns the process exit code.
func Run(stdin io.Reader, out, errOut io.Writer, args []string, env []string) int {
	globalFlags := flag.NewFlagSet("srchash", flag.ContinueOnError)
	globalFlags.SetInterspersed(false)
	globalFlags.Usage = func() {}
	globalFlags.SetOutput(&strings.Builder{})

	flagHelp := globalFlags.BoolP("help", "h", false, "Show help")
	flagCwd := globalFlags.StringP("cwd", "C", "", "Run as if started in `dir`")
	flagConfig := globalFlags.StringP("config", "c", "", "Use specified config `file`")
	flagCompiler := globalFlags.String("compiler", "", "Override the %compiler% substitution value")
	flagSloppy := globalFlags.Bool("sloppy-time-macros", false, "Disable the temporal macro scan")
	flagStatsLog := globalFlags.String("stats-log", "", "Override the diagnostic stats-log path")

	if err := globalFlags.Parse(args[1:]); err != nil {
		fprintln(errOut, "error:", err)
		printGlobalOptions(errOut)

		return 1
	}

	workDir := *flagCwd
	if workDir == "" {
		workDir = "."
	}

	cfg, _, err := config.LoadConfig(workDir, *flagConfig, config.CLIOverrides{
		Config: config.Config{
			CompilerPath:     *flagCompiler,
			SloppyTimeMacros: *flagSloppy,
			StatsLog:         *flagStatsLog,
		},
		CompilerPathSet:     globalFlags.Changed("compiler"),
		SloppyTimeMacrosSet: globalFlags.Changed("sloppy-time-macros"),
		StatsLogSet:         globalFlags.Changed("stats-log"),
	}, env)
	if err != nil {
		fprintln(errOut, "error:", err)
		printGlobalOptions(errOut)

		return 1
	}

	commands := allCommands(stdin, cfg)

	commandMap := make(map[string]*Command, len(commands))
	for _, cmd := range commands {
		commandMap[cmd.Name()] = cmd
	}

	commandAndArgs := globalFlags.Args()

	if *flagHelp || (len(commandAndArgs) == 0 && globalFlags.NFlag() == 0) {
		printUsage(out, commands)

		return 0
	}

	if len(commandAndArgs) == 0 {
		fprintln(errOut, "error: no command provided")
		printUsage(errOut, commands)

		return 1
	}

	cmdName := commandAndArgs[0]

	cmd, ok := commandMap[cmdName]
	if !ok {
		fprintln(errOut, "error: unknown command:", cmdName)
		printUsage(errOut, commands)

		return 1
	}

	return cmd.Run(NewIO(out, errOut), commandAndArgs[1:])
}

func allCommands(stdin io.Reader, cfg config.Config) []*Command {
	return []*Command{
		HashCmd(cfg),
		RunCmd(cfg),
		ReplCmd(stdin, cfg),
		PrintConfigCmd(cfg),
	}
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

const globalOptionsHelp = `  -h, --help                  Show help
  -C, --cwd <dir>             Run as if started in <dir>
  -c, --config <file>         Use specified config file
  --compiler <path>           Override the %compiler% substitution value
  --sloppy-time-macros        Disable the temporal macro scan
  --stats-log <path>          Override the diagnostic stats-log path`

func printGlobalOptions(w io.Writer) {
	fprintln(w, "Usage: srchash [flags] <command> [args]")
	fprintln(w)
	fprintln(w, "Global flags:")
	fprintln(w, globalOptionsHelp)
	fprintln(w)
	fprintln(w, "Run 'srchash --help' for a list of commands.")
}

func printUsage(w io.Writer, commands []*Command) {
	fprintln(w, "srchash - compiler-cache source scanning and hashing toolkit")
	fprintln(w)
	fprintln(w, "Usage: srchash [flags] <command> [args]")
	fprintln(w)
	fprintln(w, "Flags:")
	fprintln(w, globalOptionsHelp)
	fprintln(w)
	fprintln(w, "Commands:")

	for _, cmd := range commands {
		fprintln(w, cmd.HelpLine())
	}
}
