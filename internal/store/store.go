// Package store is the single source of truth for the board. All
// mutation goes through a Store method; after every mutation the new
// snapshot is write-through persisted and observers are notified.
//
// Every operation is total: invalid input (unknown ids, blank required
// fields) is a guarded no-op, never an error. The UI only requests
// operations on ids it has itself rendered, so the guards are a safety
// net rather than a control path.
//
// A Store is owned by a single goroutine. Mutations are processed one
// at a time in call order, which is also what guarantees a persisted
// write for mutation N is never overtaken by a stale write for N-1.
package store

import (
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/agentictools/taskboard/internal/board"
	"github.com/agentictools/taskboard/internal/view"
)

// Adapter is the persistence boundary the store writes through.
// *storage.Store satisfies it; tests substitute fakes.
type Adapter interface {
	Load() (board.Snapshot, bool)
	Save(board.Snapshot)
}

// Observer receives a deep copy of the snapshot after each board
// mutation. Observers may re-derive views at their own pace; nothing
// requires them to do so synchronously inside the mutation call.
type Observer func(board.Snapshot)

// Options configures a Store. The zero value is usable: the clock
// defaults to time.Now and logging is discarded.
type Options struct {
	Clock func() time.Time
	Log   *logrus.Logger
}

// Store holds the authoritative board snapshot, the per-group drafts,
// and the transient filter state. It is an explicitly owned value
// handed to the presentation layer, never a package-level singleton.
type Store struct {
	adapter   Adapter
	clock     func() time.Time
	log       *logrus.Logger
	board     board.Snapshot
	drafts    map[string]board.Draft
	filter    view.Filter
	observers map[int]Observer
	nextObs   int
}

// New creates an empty store bound to the given persistence adapter.
// Call Hydrate before use.
func New(adapter Adapter, opts Options) *Store {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	log := opts.Log
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	return &Store{
		adapter:   adapter,
		clock:     clock,
		log:       log,
		drafts:    make(map[string]board.Draft),
		filter:    view.NewFilter(),
		observers: make(map[int]Observer),
	}
}

// Hydrate installs the persisted snapshot, or the seed board when no
// usable persisted state exists. Drafts are reset to empty for every
// present group; the filter is left untouched.
func (s *Store) Hydrate() {
	snapshot, ok := s.adapter.Load()
	if !ok {
		snapshot = board.Seed(s.clock())
		s.log.WithField("groups", len(snapshot)).Debug("no persisted board, seeded")
	} else {
		s.log.WithField("groups", len(snapshot)).Debug("board hydrated from storage")
	}

	s.board = snapshot
	s.drafts = make(map[string]board.Draft, len(snapshot))

	for _, group := range snapshot {
		s.drafts[group.ID] = board.Draft{}
	}

	// Persist immediately so a freshly seeded board round-trips before
	// the first mutation.
	s.commit()
}

// Subscribe registers an observer and returns its unsubscribe func.
func (s *Store) Subscribe(fn Observer) func() {
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn

	return func() { delete(s.observers, id) }
}

func (s *Store) notify() {
	if len(s.observers) == 0 {
		return
	}

	snapshot := s.board.Clone()
	for _, fn := range s.observers {
		fn(snapshot)
	}
}

// commit persists the snapshot and fans out to observers. Called after
// every successful board mutation.
func (s *Store) commit() {
	s.adapter.Save(s.board)
	s.notify()
}

// Board returns a deep copy of the current snapshot.
func (s *Store) Board() board.Snapshot {
	return s.board.Clone()
}

// Draft returns the current draft for the group. Unknown group ids
// yield an empty draft.
func (s *Store) Draft(groupID string) board.Draft {
	return s.drafts[groupID]
}

// CreateTask validates the draft and, if it passes, prepends a new
// planned task to the target group and resets that group's stored
// draft. A blank title or owner, or an unknown group, leaves both the
// snapshot and the draft untouched.
func (s *Store) CreateTask(groupID string, draft board.Draft) {
	group := s.board.Group(groupID)
	if group == nil {
		s.log.WithField("group", groupID).Debug("create ignored: unknown group")

		return
	}

	if strings.TrimSpace(draft.Title) == "" || strings.TrimSpace(draft.Owner) == "" {
		s.log.WithField("group", groupID).Debug("create ignored: blank title or owner")

		return
	}

	task := board.NewTask(draft, s.clock())
	group.Tasks = append([]board.Task{task}, group.Tasks...)
	s.drafts[groupID] = board.Draft{}

	s.commit()
}

// UpdateTaskStatus sets the task's status verbatim. Any value is
// accepted, including re-setting the current one. Unknown ids are a
// no-op.
func (s *Store) UpdateTaskStatus(groupID, taskID string, status board.Status) {
	task := s.board.Task(groupID, taskID)
	if task == nil {
		return
	}

	task.Status = status
	s.commit()
}

// ToggleComplete flips a task between complete and planned: a complete
// task goes back to planned, any other status goes to complete.
// Unknown ids are a no-op.
func (s *Store) ToggleComplete(groupID, taskID string) {
	task := s.board.Task(groupID, taskID)
	if task == nil {
		return
	}

	if task.Status == board.StatusComplete {
		task.Status = board.StatusPlanned
	} else {
		task.Status = board.StatusComplete
	}

	s.commit()
}

// DeleteTask removes the task from its group. Unknown ids are a no-op
// and leave the snapshot structurally unchanged.
func (s *Store) DeleteTask(groupID, taskID string) {
	group := s.board.Group(groupID)
	if group == nil {
		return
	}

	for i := range group.Tasks {
		if group.Tasks[i].ID == taskID {
			group.Tasks = append(group.Tasks[:i], group.Tasks[i+1:]...)
			s.commit()

			return
		}
	}
}

// UpdateDraft merges the patch into the group's draft, leaving fields
// the patch does not set unchanged. Drafts are transient: no persist,
// no observer fan-out. Unknown group ids are a no-op.
func (s *Store) UpdateDraft(groupID string, patch board.DraftPatch) {
	if s.board.Group(groupID) == nil {
		return
	}

	s.drafts[groupID] = s.drafts[groupID].Apply(patch)
}

// ToggleStatusFilter set-toggles the status in the active filter.
func (s *Store) ToggleStatusFilter(status board.Status) {
	s.filter.Toggle(status)
}

// SetSearchTerm replaces the search term verbatim. Trimming and case
// folding happen at filter-evaluation time.
func (s *Store) SetSearchTerm(term string) {
	s.filter.Search = term
}

// Filter returns a copy of the active filter state.
func (s *Store) Filter() view.Filter {
	return s.filter.Clone()
}

// FilteredGroups derives the filtered board from the current snapshot
// and filter state.
func (s *Store) FilteredGroups() board.Snapshot {
	return view.FilteredGroups(s.board, s.filter)
}

// Stats aggregates over the full, unfiltered snapshot regardless of
// the active filter.
func (s *Store) Stats() view.Stats {
	return view.BoardStats(s.board)
}
