package cli

import (
	"encoding/hex"
	"strings"

	flag "github.com/spf13/pflag"

	"srchash/internal/cmdrunner"
	"srchash/internal/config"
	"srchash/internal/hashsink"
	"srchash/internal/statslog"
)

// RunCmd returns the "run" command: run a ';'-joined command list through
// the orchestrator, hashing its combined output.
func RunCmd(cfg config.Config) *Command {
	flags := flag.NewFlagSet("run", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "run <command-list>",
		Short: "Run ';'-joined commands, hashing their merged stdout+stderr",
		Exec: func(o *IO, args []string) error {
			return execRun(o, cfg, args)
		},
	}
}

func execRun(o *IO, cfg config.Config, args []string) error {
	if len(args) == 0 {
		return errCommandRequired
	}

	cmdList := strings.Join(args, " ")

	sink := hashsink.NewSHA256Sink()

	ok, failed, err := cmdrunner.RunMulti(sink, cmdList, cfg.CompilerPath)
	if err != nil {
		return err
	}

	stats := statslog.Sink{Path: cfg.StatsLog}

	for _, segment := range failed {
		if err := stats.RecordRunFailure(segment); err != nil {
			o.ErrPrintln("warning: could not write stats log:", err)
		}
	}

	o.Printf("%s  ok=%t\n", hex.EncodeToString(sink.Sum()), ok)

	return nil
}
