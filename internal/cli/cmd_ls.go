package cli

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/agentictools/taskboard/internal/board"
)

// LsCmd returns the ls command.
func LsCmd(app *App) *Command {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.StringSlice("status", nil, "Filter by status, repeatable (planned|in-progress|blocked|complete)")
	fs.String("search", "", "Case-insensitive search over title, description, owner, and tags")

	return &Command{
		Flags: fs,
		Usage: "ls [flags]",
		Short: "List the board",
		Long: "List every group and its tasks, newest first. Status filters match any of\n" +
			"the selected statuses; search matches title, description, owner, or tags.",
		Exec: func(o *IO, _ []string) error {
			return execLs(o, app, fs)
		},
	}
}

func execLs(o *IO, app *App, fs *flag.FlagSet) error {
	statuses, _ := fs.GetStringSlice("status")

	for _, raw := range statuses {
		status := board.Status(raw)
		if !board.IsValidStatus(status) {
			return fmt.Errorf("%w: %s", errInvalidStatus, raw)
		}

		app.Store.ToggleStatusFilter(status)
	}

	search, _ := fs.GetString("search")
	app.Store.SetSearchTerm(search)

	for _, group := range app.Store.FilteredGroups() {
		o.Printf("%s: %s\n", group.ID, group.Name)

		if group.Mission != "" {
			o.Printf("  %s\n", group.Mission)
		}

		if len(group.Tasks) == 0 {
			o.Println("  (no tasks)")
			o.Println()

			continue
		}

		for _, task := range group.Tasks {
			o.Println(formatTaskLine(task))
		}

		o.Println()
	}

	return nil
}

func formatTaskLine(task board.Task) string {
	var builder strings.Builder

	builder.WriteString("  ")
	builder.WriteString(task.ID)
	builder.WriteString(" [")
	builder.WriteString(string(task.Status))
	builder.WriteString("/")
	builder.WriteString(string(task.Priority))
	builder.WriteString("] ")
	builder.WriteString(task.Title)
	builder.WriteString(" (")
	builder.WriteString(task.Owner)
	builder.WriteString(", due ")
	builder.WriteString(task.DueDate)
	builder.WriteString(")")

	if len(task.Tags) > 0 {
		builder.WriteString(" tags: ")
		builder.WriteString(strings.Join(task.Tags, ","))
	}

	return builder.String()
}
