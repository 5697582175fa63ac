package cli

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/agentictools/taskboard/internal/board"
)

// CreateCmd returns the create command.
func CreateCmd(app *App) *Command {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.StringP("description", "d", "", "Task description")
	fs.StringP("owner", "o", "", "Task owner (required unless staged in the draft)")
	fs.String("due", "", "Due date (YYYY-MM-DD, defaults to two days out)")
	fs.StringP("priority", "p", "", "Priority (low|medium|high)")
	fs.String("tags", "", "Comma-separated tags")
	fs.BoolP("interactive", "i", false, "Prompt for each field interactively")

	return &Command{
		Flags: fs,
		Usage: "create <group> [<title>] [flags]",
		Short: "Create a task in a group",
		Long: "Create a task. Flags are merged into the group's draft first, so fields\n" +
			"staged earlier with 'draft' are kept unless overridden. On success the\n" +
			"group's draft is cleared.",
		Exec: func(o *IO, args []string) error {
			return execCreate(o, app, fs, args)
		},
	}
}

func execCreate(o *IO, app *App, fs *flag.FlagSet, args []string) error {
	if len(args) < 1 {
		return errGroupRequired
	}

	groupID := args[0]
	if app.Store.Board().Group(groupID) == nil {
		return fmt.Errorf("%w: %s", errUnknownGroup, groupID)
	}

	if interactive, _ := fs.GetBool("interactive"); interactive {
		patch, err := promptDraft(app.Store.Draft(groupID))
		if err != nil {
			return err
		}

		app.Store.UpdateDraft(groupID, patch)
	} else {
		app.Store.UpdateDraft(groupID, patchFromFlags(fs, args[1:]))
	}

	draft := app.Store.Draft(groupID)

	// Surface what the store would silently reject.
	if strings.TrimSpace(draft.Title) == "" {
		return errTitleRequired
	}

	if strings.TrimSpace(draft.Owner) == "" {
		return errOwnerRequired
	}

	if draft.Priority != "" && !board.IsValidPriority(draft.Priority) {
		return fmt.Errorf("%w: %s", errInvalidPriority, draft.Priority)
	}

	app.Store.CreateTask(groupID, draft)

	task := app.Store.Board().Group(groupID).Tasks[0]
	o.Printf("created %s in %s\n", task.ID, groupID)

	return nil
}

// patchFromFlags builds a draft patch from the create flags. Only
// flags the user actually set become part of the patch.
func patchFromFlags(fs *flag.FlagSet, args []string) board.DraftPatch {
	var patch board.DraftPatch

	if len(args) > 0 {
		title := strings.Join(args, " ")
		patch.Title = &title
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
		patch.Priority = &priority
	}

	if fs.Changed("tags") {
		v, _ := fs.GetString("tags")
		patch.Tags = &v
	}

	return patch
}
