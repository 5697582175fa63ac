package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/agentictools/taskboard/internal/board"
)

// promptDraft walks the draft fields interactively. Existing draft
// values are shown as defaults; entering nothing keeps them.
func promptDraft(current board.Draft) (board.DraftPatch, error) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	var patch board.DraftPatch

	fields := []struct {
		label   string
		current string
		target  **string
	}{
		{label: "title", current: current.Title, target: &patch.Title},
		{label: "description", current: current.Description, target: &patch.Description},
		{label: "owner", current: current.Owner, target: &patch.Owner},
		{label: "due date (YYYY-MM-DD)", current: current.DueDate, target: &patch.DueDate},
		{label: "tags (comma-separated)", current: current.Tags, target: &patch.Tags},
	}

	for _, field := range fields {
		value, err := promptField(line, field.label, field.current)
		if err != nil {
			return board.DraftPatch{}, err
		}

		if value != "" {
			v := value
			*field.target = &v
		}
	}

	priority, err := promptField(line, "priority (low|medium|high)", string(current.Priority))
	if err != nil {
		return board.DraftPatch{}, err
	}

	if priority != "" {
		p := board.Priority(priority)
		if !board.IsValidPriority(p) {
			return board.DraftPatch{}, fmt.Errorf("%w: %s", errInvalidPriority, priority)
		}

		patch.Priority = &p
	}

	return patch, nil
}

func promptField(line *liner.State, label, current string) (string, error) {
	prompt := label
	if current != "" {
		prompt += " [" + current + "]"
	}

	value, err := line.Prompt(prompt + ": ")
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", errPromptAborted
		}

		return "", fmt.Errorf("read %s: %w", label, err)
	}

	return strings.TrimSpace(value), nil
}
