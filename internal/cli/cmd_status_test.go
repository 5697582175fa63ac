package cli_test

import (
	"testing"

	"github.com/agentictools/taskboard/internal/cli"
)

func TestStatusCommand(t *testing.T) {
	t.Parallel()

	t.Run("sets a new status and persists it", func(t *testing.T) {
		t.Parallel()

		c := cli.NewCLI(t)
		c.MustRun("ls") // seed the board

		stdout := c.MustRun("status", "party-a", "seed-a-deck", "blocked")
		cli.AssertContains(t, stdout, "seed-a-deck is now blocked")

		// Survives across invocations.
		cli.AssertContains(t, c.MustRun("ls"), "seed-a-deck [blocked/medium]")
		cli.AssertContains(t, c.ReadBoard(), `"status": "blocked"`)
	})

	t.Run("re-setting the same status succeeds", func(t *testing.T) {
		t.Parallel()

		c := cli.NewCLI(t)
		c.MustRun("ls")

		c.MustRun("status", "party-a", "seed-a-deck", "planned")
		c.MustRun("status", "party-a", "seed-a-deck", "planned")
	})

	for _, tt := range []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{name: "missing task id", args: []string{"status", "party-a"}, wantStderr: "task id is required"},
		{name: "missing status", args: []string{"status", "party-a", "seed-a-deck"}, wantStderr: "status is required"},
		{name: "unknown group", args: []string{"status", "party-c", "seed-a-deck", "planned"}, wantStderr: "unknown group"},
		{name: "unknown task", args: []string{"status", "party-a", "nope", "planned"}, wantStderr: "unknown task"},
		{name: "invalid status", args: []string{"status", "party-a", "seed-a-deck", "done"}, wantStderr: "invalid status: done"},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			c.MustRun("ls")

			cli.AssertContains(t, c.MustFail(tt.args...), tt.wantStderr)
		})
	}
}

func TestToggleCommand(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("ls")

	// planned -> complete
	cli.AssertContains(t, c.MustRun("toggle", "party-a", "seed-a-deck"), "seed-a-deck is now complete")

	// complete -> planned
	cli.AssertContains(t, c.MustRun("toggle", "party-a", "seed-a-deck"), "seed-a-deck is now planned")

	// in-progress collapses to complete, then planned (not back to in-progress)
	cli.AssertContains(t, c.MustRun("toggle", "party-a", "seed-a-brief"), "seed-a-brief is now complete")
	cli.AssertContains(t, c.MustRun("toggle", "party-a", "seed-a-brief"), "seed-a-brief is now planned")

	cli.AssertContains(t, c.MustFail("toggle", "party-a", "nope"), "unknown task")
}

func TestRmCommand(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("ls")

	cli.AssertContains(t, c.MustRun("rm", "party-a", "seed-a-brief"), "deleted seed-a-brief from party-a")

	lsOut := c.MustRun("ls")
	cli.AssertNotContains(t, lsOut, "Finalize Q3 Campaign Brief")
	cli.AssertContains(t, lsOut, "Draft partner pitch deck")

	// The id is gone for good, so a second rm reports unknown task.
	cli.AssertContains(t, c.MustFail("rm", "party-a", "seed-a-brief"), "unknown task")
}

func TestStatsCommand(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout := c.MustRun("stats")
	cli.AssertContains(t, stdout, "total:         4")
	cli.AssertContains(t, stdout, "completed:     0")
	cli.AssertContains(t, stdout, "high priority: 2")

	c.MustRun("toggle", "party-a", "seed-a-brief")

	stdout = c.MustRun("stats")
	cli.AssertContains(t, stdout, "completed:     1")
	// Priority counts are untouched by completion.
	cli.AssertContains(t, stdout, "high priority: 2")
}

func TestDraftCommand(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout := c.MustRun("draft", "party-a", "--title", "Staged title", "-o", "Sam", "-p", "high")
	cli.AssertContains(t, stdout, "title:       Staged title")
	cli.AssertContains(t, stdout, "owner:       Sam")
	cli.AssertContains(t, stdout, "priority:    high")

	// Drafts never reach the board file.
	cli.AssertNotContains(t, c.ReadBoard(), "Staged title")

	cli.AssertContains(t, c.MustFail("draft", "party-c"), "unknown group")
	cli.AssertContains(t, c.MustFail("draft", "party-a", "-p", "urgent"), "invalid priority")
}
