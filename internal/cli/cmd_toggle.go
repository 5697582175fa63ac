package cli

import (
	flag "github.com/spf13/pflag"
)

// ToggleCmd returns the toggle command.
func ToggleCmd(app *App) *Command {
	fs := flag.NewFlagSet("toggle", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "toggle <group> <task-id>",
		Short: "Toggle a task's completion",
		Long: "Mark a task complete, or send a complete task back to planned. Tasks that\n" +
			"were in-progress or blocked do not return to their old status.",
		Exec: func(o *IO, args []string) error {
			groupID, taskID, err := taskArgs(app, args)
			if err != nil {
				return err
			}

			app.Store.ToggleComplete(groupID, taskID)
			o.Printf("%s is now %s\n", taskID, app.Store.Board().Task(groupID, taskID).Status)

			return nil
		},
	}
}
