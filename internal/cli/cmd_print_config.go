package cli

import (
	flag "github.com/spf13/pflag"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(app *App) *Command {
	fs := flag.NewFlagSet("print-config", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "print-config",
		Short: "Show the effective configuration",
		Exec: func(o *IO, _ []string) error {
			o.Printf("board_file: %s\n", app.Cfg.BoardFileAbs)
			o.Printf("log_file:   %s\n", app.Cfg.LogFileAbs)

			if app.Cfg.Sources.Global != "" {
				o.Printf("global config: %s\n", app.Cfg.Sources.Global)
			}

			if app.Cfg.Sources.Project != "" {
				o.Printf("project config: %s\n", app.Cfg.Sources.Project)
			}

			return nil
		},
	}
}
