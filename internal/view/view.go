// Package view derives read-side projections of the board: filtered
// group listings and aggregate statistics. Every function is pure and
// operates on copies; nothing here mutates the authoritative state.
package view

import (
	"strings"

	"github.com/agentictools/taskboard/internal/board"
)

// Filter is the transient, non-persisted view criteria applied at read
// time: a set of selected statuses (empty set = no status filter) plus
// a free-text search term. The term is stored verbatim; trimming and
// case folding happen at evaluation time.
type Filter struct {
	Statuses map[board.Status]bool
	Search   string
}

// NewFilter returns an empty filter.
func NewFilter() Filter {
	return Filter{Statuses: make(map[board.Status]bool)}
}

// Clone returns an independent copy of the filter.
func (f Filter) Clone() Filter {
	clone := Filter{Statuses: make(map[board.Status]bool, len(f.Statuses)), Search: f.Search}
	for status := range f.Statuses {
		clone.Statuses[status] = true
	}

	return clone
}

// Toggle adds the status to the selected set if absent and removes it
// if present. Multiple statuses may be active at once, meaning "match
// any of these".
func (f Filter) Toggle(status board.Status) {
	if f.Statuses[status] {
		delete(f.Statuses, status)
	} else {
		f.Statuses[status] = true
	}
}

// matches reports whether the task passes the filter.
func (f Filter) matches(task board.Task) bool {
	if len(f.Statuses) > 0 && !f.Statuses[task.Status] {
		return false
	}

	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}

	if strings.Contains(strings.ToLower(task.Title), term) ||
		strings.Contains(strings.ToLower(task.Description), term) ||
		strings.Contains(strings.ToLower(task.Owner), term) {
		return true
	}

	for _, tag := range task.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}

	return false
}

// FilteredGroups returns a copy of the snapshot whose task sequences
// are limited to tasks passing the filter. Group identity and order
// are preserved even when a group's filtered list comes out empty.
func FilteredGroups(snapshot board.Snapshot, filter Filter) board.Snapshot {
	result := make(board.Snapshot, len(snapshot))

	for i, group := range snapshot {
		filtered := group
		filtered.Tasks = make([]board.Task, 0, len(group.Tasks))

		for _, task := range group.Tasks {
			if filter.matches(task) {
				filtered.Tasks = append(filtered.Tasks, task.Clone())
			}
		}

		result[i] = filtered
	}

	return result
}

// Stats are board-wide aggregates.
type Stats struct {
	Total        int
	Completed    int
	HighPriority int
}

// BoardStats aggregates over the full, unfiltered snapshot. Stats must
// reflect the whole board regardless of any active filter, so this
// function deliberately takes no Filter.
func BoardStats(snapshot board.Snapshot) Stats {
	var stats Stats

	for _, group := range snapshot {
		stats.Total += len(group.Tasks)

		for _, task := range group.Tasks {
			if task.Status == board.StatusComplete {
				stats.Completed++
			}

			if task.Priority == board.PriorityHigh {
				stats.HighPriority++
			}
		}
	}

	return stats
}
