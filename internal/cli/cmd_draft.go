package cli

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/agentictools/taskboard/internal/board"
)

// DraftCmd returns the draft command.
func DraftCmd(app *App) *Command {
	fs := flag.NewFlagSet("draft", flag.ContinueOnError)
	fs.String("title", "", "Stage a title")
	fs.StringP("description", "d", "", "Stage a description")
	fs.StringP("owner", "o", "", "Stage an owner")
	fs.String("due", "", "Stage a due date (YYYY-MM-DD)")
	fs.StringP("priority", "p", "", "Stage a priority (low|medium|high)")
	fs.String("tags", "", "Stage comma-separated tags")

	return &Command{
		Flags: fs,
		Usage: "draft <group> [flags]",
		Short: "Stage or show a group's task draft",
		Long: "Stage fields into a group's draft without creating a task. Fields merge\n" +
			"into whatever is already staged. With no flags, the current draft is\n" +
			"printed. Drafts are transient and never persisted.",
		Exec: func(o *IO, args []string) error {
			return execDraft(o, app, fs, args)
		},
	}
}

func execDraft(o *IO, app *App, fs *flag.FlagSet, args []string) error {
	if len(args) < 1 {
		return errGroupRequired
	}

	groupID := args[0]
	if app.Store.Board().Group(groupID) == nil {
		return fmt.Errorf("%w: %s", errUnknownGroup, groupID)
	}

	var patch board.DraftPatch

	if fs.Changed("title") {
		v, _ := fs.GetString("title")
		patch.Title = &v
	}

	if fs.Changed("description") {
		v, _ := fs.GetString("description")
		patch.Description = &v
	}

	if fs.Changed("owner") {
		v, _ := fs.GetString("owner")
		patch.Owner = &v
	}

	if fs.Changed("due") {
		v, _ := fs.GetString("due")
		patch.DueDate = &v
	}

	if fs.Changed("priority") {
		v, _ := fs.GetString("priority")
		priority := board.Priority(v)

		if v != "" && !board.IsValidPriority(priority) {
			return fmt.Errorf("%w: %s", errInvalidPriority, v)
		}

		patch.Priority = &priority
	}

	if fs.Changed("tags") {
		v, _ := fs.GetString("tags")
		patch.Tags = &v
	}

	app.Store.UpdateDraft(groupID, patch)

	draft := app.Store.Draft(groupID)
	o.Printf("draft for %s:\n", groupID)
	o.Printf("  title:       %s\n", draft.Title)
	o.Printf("  description: %s\n", draft.Description)
	o.Printf("  owner:       %s\n", draft.Owner)
	o.Printf("  due:         %s\n", draft.DueDate)
	o.Printf("  priority:    %s\n", draft.Priority)
	o.Printf("  tags:        %s\n", draft.Tags)

	return nil
}
