package cli

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/agentictools/taskboard/internal/board"
)

// StatusCmd returns the status command.
func StatusCmd(app *App) *Command {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "status <group> <task-id> <status>",
		Short: "Set a task's status",
		Long:  "Set a task's status to planned, in-progress, blocked, or complete.",
		Exec: func(o *IO, args []string) error {
			return execStatus(o, app, args)
		},
	}
}

func execStatus(o *IO, app *App, args []string) error {
	groupID, taskID, err := taskArgs(app, args)
	if err != nil {
		return err
	}

	if len(args) < 3 {
		return errStatusRequired
	}

	status := board.Status(args[2])
	if !board.IsValidStatus(status) {
		return fmt.Errorf("%w: %s", errInvalidStatus, args[2])
	}

	app.Store.UpdateTaskStatus(groupID, taskID, status)
	o.Printf("%s is now %s\n", taskID, status)

	return nil
}

// taskArgs validates the common "<group> <task-id>" argument pair.
func taskArgs(app *App, args []string) (string, string, error) {
	if len(args) < 1 {
		return "", "", errGroupRequired
	}

	if len(args) < 2 {
		return "", "", errTaskIDRequired
	}

	groupID, taskID := args[0], args[1]

	if app.Store.Board().Group(groupID) == nil {
		return "", "", fmt.Errorf("%w: %s", errUnknownGroup, groupID)
	}

	if app.Store.Board().Task(groupID, taskID) == nil {
		return "", "", fmt.Errorf("%w: %s", errUnknownTask, taskID)
	}

	return groupID, taskID, nil
}
