package store_test

import (
	"testing"

	"github.com/agentictools/taskboard/internal/board"
	"github.com/agentictools/taskboard/internal/store"
	"github.com/agentictools/taskboard/internal/testutil"
)

// FuzzOpSequences drives random create/delete/status/toggle sequences
// against a hydrated store and checks the structural invariants that
// must survive any interleaving.
func FuzzOpSequences(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0, 1, 2, 3, 4, 5, 6, 7})
	f.Add([]byte("create delete toggle status create create"))

	f.Fuzz(func(t *testing.T, input []byte) {
		stream := testutil.NewByteStream(input)

		adapter := &fakeAdapter{}
		st := store.New(adapter, store.Options{Clock: testutil.NewClock().Now})
		st.Hydrate()

		groupIDs := []string{board.GroupPartyA, board.GroupPartyB, "no-such-group"}

		for stream.HasMore() {
			groupID := groupIDs[stream.NextInt(len(groupIDs))]

			switch stream.NextInt(4) {
			case 0:
				st.CreateTask(groupID, board.Draft{
					Title: stream.NextString(8),
					Owner: stream.NextString(4),
					Tags:  stream.NextString(6),
				})
			case 1:
				st.DeleteTask(groupID, pickTaskID(st, groupID, stream))
			case 2:
				st.UpdateTaskStatus(groupID, pickTaskID(st, groupID, stream), board.Statuses[stream.NextInt(len(board.Statuses))])
			case 3:
				st.ToggleComplete(groupID, pickTaskID(st, groupID, stream))
			}

			assertInvariants(t, st)
		}

		// The last write-through save must equal the final state.
		if len(adapter.saves) > 0 {
			last := adapter.saves[len(adapter.saves)-1]
			if len(last) != len(st.Board()) {
				t.Fatalf("stale write-through: %d groups saved, %d live", len(last), len(st.Board()))
			}
		}
	})
}

// pickTaskID returns either an existing task id from the group or a
// deliberately unknown one.
func pickTaskID(st *store.Store, groupID string, stream *testutil.ByteStream) string {
	group := st.Board().Group(groupID)
	if group == nil || len(group.Tasks) == 0 || stream.NextInt(4) == 0 {
		return "missing-" + stream.NextString(3)
	}

	return group.Tasks[stream.NextInt(len(group.Tasks))].ID
}

// assertInvariants checks the properties that must hold after every
// operation: globally unique task ids, valid statuses, a fixed group
// set, and trimmed required fields.
func assertInvariants(t *testing.T, st *store.Store) {
	t.Helper()

	snapshot := st.Board()

	if len(snapshot) != 2 {
		t.Fatalf("group set changed: %d groups", len(snapshot))
	}

	seen := make(map[string]bool)

	for _, group := range snapshot {
		for _, task := range group.Tasks {
			if task.ID == "" {
				t.Fatal("task with empty id")
			}

			if seen[task.ID] {
				t.Fatalf("duplicate task id %s", task.ID)
			}

			seen[task.ID] = true

			if !board.IsValidStatus(task.Status) {
				t.Fatalf("task %s has invalid status %q", task.ID, task.Status)
			}

			if task.Title == "" || task.Owner == "" {
				t.Fatalf("task %s has blank required field", task.ID)
			}
		}
	}
}
