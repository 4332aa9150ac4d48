package cli

import (
	"srchash/internal/config"
)

// PrintConfigCmd returns the "print-config" command.
func PrintConfigCmd(cfg config.Config) *Command {
	return &Command{
		Usage: "print-config",
		Short: "Print the resolved configuration as JSON",
		Exec: func(o *IO, _ []string) error {
			out, err := config.FormatConfig(cfg)
			if err != nil {
				return err
			}

			o.Println(out)

			return nil
		},
	}
}
