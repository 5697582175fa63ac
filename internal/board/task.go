// Package board holds the task board domain model: groups, tasks,
// drafts, and the pure helpers that construct them. Nothing in this
// package performs I/O or owns mutable state.
package board

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is a task lifecycle stage.
type Status string

// Status constants.
const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in-progress"
	StatusBlocked    Status = "blocked"
	StatusComplete   Status = "complete"
)

// Statuses lists all valid statuses in display order.
//
//nolint:gochecknoglobals // package-level constant
var Statuses = []Status{StatusPlanned, StatusInProgress, StatusBlocked, StatusComplete}

// IsValidStatus reports whether s is a member of the status enum.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusBlocked, StatusComplete:
		return true
	default:
		return false
	}
}

// Priority is a task urgency tier.
type Priority string

// Priority constants.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is assigned when a draft leaves priority blank.
const DefaultPriority = PriorityMedium

// IsValidPriority reports whether p is a member of the priority enum.
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// DateFormat is the ISO calendar-date layout used for due dates.
const DateFormat = "2006-01-02"

// Task is a single tracked item inside a group.
//
// ID and CreatedAt are immutable after construction. The JSON tags
// define the persisted wire shape and must not change.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Owner       string   `json:"owner"`
	DueDate     string   `json:"dueDate"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"`
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	clone := t
	clone.Tags = append([]string(nil), t.Tags...)

	return clone
}

// NewTaskID generates an opaque task id.
//
// IDs are globally unique by construction, so per-group uniqueness
// holds without any per-group bookkeeping.
func NewTaskID() string {
	return uuid.NewString()
}

// DefaultDueDate returns the due date assigned when a draft leaves the
// field blank: two days after now, as an ISO calendar date.
func DefaultDueDate(now time.Time) string {
	return now.AddDate(0, 0, 2).Format(DateFormat)
}

// ParseTags splits a raw comma-separated tag string into tokens.
// Tokens are trimmed, empty tokens are discarded, and insertion order
// and duplicates are preserved.
func ParseTags(raw string) []string {
	tags := []string{}

	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		tags = append(tags, token)
	}

	return tags
}

// NewTask constructs a task from a draft at submission time.
//
// The caller is responsible for rejecting drafts with a blank title or
// owner; NewTask itself applies only the defaulting rules (due date,
// priority) and normalization (trimming, tag parsing).
func NewTask(draft Draft, now time.Time) Task {
	dueDate := strings.TrimSpace(draft.DueDate)
	if dueDate == "" {
		dueDate = DefaultDueDate(now)
	}

	priority := draft.Priority
	if !IsValidPriority(priority) {
		priority = DefaultPriority
	}

	return Task{
		ID:          NewTaskID(),
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Owner:       strings.TrimSpace(draft.Owner),
		DueDate:     dueDate,
		Status:      StatusPlanned,
		Priority:    priority,
		Tags:        ParseTags(draft.Tags),
		CreatedAt:   now.UTC().Format(time.RFC3339),
	}
}
