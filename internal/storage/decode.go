package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/agentictools/taskboard/internal/board"
)

var (
	errGroupIDEmpty     = errors.New("group id is empty")
	errGroupIDDuplicate = errors.New("duplicate group id")
	errTaskIDEmpty      = errors.New("task id is empty")
	errTaskIDDuplicate  = errors.New("duplicate task id")
	errTaskTitleEmpty   = errors.New("task title is empty")
	errTaskOwnerEmpty   = errors.New("task owner is empty")
	errTaskStatus       = errors.New("invalid task status")
	errTaskPriority     = errors.New("invalid task priority")
)

// decodeSnapshot parses and strictly validates a persisted snapshot.
//
// Unlike the loose "trust whatever parsed" approach, every required
// field and enum membership is checked up front, so the rest of the
// program never sees a structurally broken board. Any violation makes
// the whole snapshot unusable; the caller falls back to seed data.
func decodeSnapshot(data []byte) (board.Snapshot, error) {
	var snapshot board.Snapshot

	err := json.Unmarshal(data, &snapshot)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	groupIDs := make(map[string]bool, len(snapshot))
	taskIDs := make(map[string]bool)

	for gi := range snapshot {
		group := &snapshot[gi]

		if strings.TrimSpace(group.ID) == "" {
			return nil, fmt.Errorf("group %d: %w", gi, errGroupIDEmpty)
		}

		if groupIDs[group.ID] {
			return nil, fmt.Errorf("group %q: %w", group.ID, errGroupIDDuplicate)
		}

		groupIDs[group.ID] = true

		for ti := range group.Tasks {
			err := validateTask(&group.Tasks[ti], taskIDs)
			if err != nil {
				return nil, fmt.Errorf("group %q task %d: %w", group.ID, ti, err)
			}
		}

		if group.Tasks == nil {
			group.Tasks = []board.Task{}
		}
	}

	return snapshot, nil
}

// validateTask checks required fields and enum membership, and
// normalizes a null tags array to an empty one. Task ids are checked
// board-wide, not just per group.
func validateTask(task *board.Task, taskIDs map[string]bool) error {
	if strings.TrimSpace(task.ID) == "" {
		return errTaskIDEmpty
	}

	if taskIDs[task.ID] {
		return fmt.Errorf("%w: %s", errTaskIDDuplicate, task.ID)
	}

	taskIDs[task.ID] = true

	if strings.TrimSpace(task.Title) == "" {
		return errTaskTitleEmpty
	}

	if strings.TrimSpace(task.Owner) == "" {
		return errTaskOwnerEmpty
	}

	if !board.IsValidStatus(task.Status) {
		return fmt.Errorf("%w: %q", errTaskStatus, task.Status)
	}

	if !board.IsValidPriority(task.Priority) {
		return fmt.Errorf("%w: %q", errTaskPriority, task.Priority)
	}

	if task.Tags == nil {
		task.Tags = []string{}
	}

	return nil
}
