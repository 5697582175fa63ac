package cli

import (
	flag "github.com/spf13/pflag"
)

// RmCmd returns the rm command.
func RmCmd(app *App) *Command {
	fs := flag.NewFlagSet("rm", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "rm <group> <task-id>",
		Short: "Delete a task",
		Exec: func(o *IO, args []string) error {
			groupID, taskID, err := taskArgs(app, args)
			if err != nil {
				return err
			}

			app.Store.DeleteTask(groupID, taskID)
			o.Printf("deleted %s from %s\n", taskID, groupID)

			return nil
		},
	}
}
