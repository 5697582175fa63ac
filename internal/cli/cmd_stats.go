package cli

import flag "github.com/spf13/pflag"

// StatsCmd returns the stats command.
func StatsCmd(app *App) *Command {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "stats",
		Short: "Show board-wide task counts",
		Long: "Show total, completed, and high-priority task counts. Stats always cover\n" +
			"the whole board, never a filtered view.",
		Exec: func(o *IO, _ []string) error {
			stats := app.Store.Stats()

			o.Printf("total:         %d\n", stats.Total)
			o.Printf("completed:     %d\n", stats.Completed)
			o.Printf("high priority: %d\n", stats.HighPriority)

			return nil
		},
	}
}
