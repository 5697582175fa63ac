package view_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentictools/taskboard/internal/board"
	"github.com/agentictools/taskboard/internal/view"
)

func seedBoard() board.Snapshot {
	return board.Seed(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
}

func TestFilteredGroupsEmptyFilterIsIdentity(t *testing.T) {
	t.Parallel()

	snapshot := seedBoard()
	filtered := view.FilteredGroups(snapshot, view.NewFilter())

	if diff := cmp.Diff(snapshot, filtered); diff != "" {
		t.Errorf("empty filter must be identity (-want +got):\n%s", diff)
	}
}

func TestFilteredGroupsByStatus(t *testing.T) {
	t.Parallel()

	snapshot := seedBoard()

	filter := view.NewFilter()
	filter.Toggle(board.StatusInProgress)

	filtered := view.FilteredGroups(snapshot, filter)

	// Group order and identity survive even when a group empties out.
	require.Len(t, filtered, 2)
	assert.Equal(t, board.GroupPartyA, filtered[0].ID)
	assert.Equal(t, board.GroupPartyB, filtered[1].ID)

	require.Len(t, filtered[0].Tasks, 1)
	assert.Equal(t, "Finalize Q3 Campaign Brief", filtered[0].Tasks[0].Title)
	assert.Empty(t, filtered[1].Tasks)

	// Clearing the filter restores full membership.
	filter.Toggle(board.StatusInProgress)
	restored := view.FilteredGroups(snapshot, filter)

	if diff := cmp.Diff(snapshot, restored); diff != "" {
		t.Errorf("cleared filter must restore all tasks (-want +got):\n%s", diff)
	}
}

func TestFilteredGroupsMultipleStatusesMatchAny(t *testing.T) {
	t.Parallel()

	filter := view.NewFilter()
	filter.Toggle(board.StatusPlanned)
	filter.Toggle(board.StatusBlocked)

	filtered := view.FilteredGroups(seedBoard(), filter)

	require.Len(t, filtered[0].Tasks, 1) // planned deck task
	require.Len(t, filtered[1].Tasks, 2) // planned review + blocked cleanup
}

func TestFilteredGroupsBySearch(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		search     string
		wantTitles []string
	}{
		{name: "title match case-insensitive", search: "q3 campaign", wantTitles: []string{"Finalize Q3 Campaign Brief"}},
		{name: "owner match", search: "JORDAN", wantTitles: []string{"Draft partner pitch deck"}},
		{name: "description match", search: "budget split", wantTitles: []string{"Finalize Q3 Campaign Brief"}},
		{name: "tag match", search: "partners", wantTitles: []string{"Draft partner pitch deck"}},
		{name: "term is trimmed", search: "  q3  ", wantTitles: []string{"Finalize Q3 Campaign Brief"}},
		{name: "no match", search: "zzz", wantTitles: []string{}},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			filter := view.NewFilter()
			filter.Search = tt.search

			filtered := view.FilteredGroups(seedBoard(), filter)

			titles := []string{}
			for _, task := range filtered[0].Tasks {
				titles = append(titles, task.Title)
			}

			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestFilteredGroupsCombinesStatusAndSearch(t *testing.T) {
	t.Parallel()

	filter := view.NewFilter()
	filter.Toggle(board.StatusPlanned)
	filter.Search = "sam"

	filtered := view.FilteredGroups(seedBoard(), filter)

	// Sam owns a planned task and a blocked one; only the planned task passes.
	assert.Empty(t, filtered[0].Tasks)
	require.Len(t, filtered[1].Tasks, 1)
	assert.Equal(t, "Review onboarding flow feedback", filtered[1].Tasks[0].Title)
}

func TestFilteredGroupsReturnsCopies(t *testing.T) {
	t.Parallel()

	snapshot := seedBoard()
	filtered := view.FilteredGroups(snapshot, view.NewFilter())

	filtered[0].Tasks[0].Title = "changed"
	filtered[0].Tasks[0].Tags[0] = "changed"

	assert.Equal(t, "Finalize Q3 Campaign Brief", snapshot[0].Tasks[0].Title)
	assert.Equal(t, "marketing", snapshot[0].Tasks[0].Tags[0])
}

func TestBoardStats(t *testing.T) {
	t.Parallel()

	snapshot := seedBoard()

	stats := view.BoardStats(snapshot)
	assert.Equal(t, view.Stats{Total: 4, Completed: 0, HighPriority: 2}, stats)

	// Mark one high-priority task complete and recount.
	snapshot[0].Tasks[0].Status = board.StatusComplete

	stats = view.BoardStats(snapshot)
	assert.Equal(t, view.Stats{Total: 4, Completed: 1, HighPriority: 2}, stats)
}

func TestBoardStatsIgnoresFilters(t *testing.T) {
	t.Parallel()

	snapshot := seedBoard()

	// Stats are computed from the unfiltered snapshot; a filter that
	// would hide every task must not change them.
	filter := view.NewFilter()
	filter.Search = "no-such-task"
	filtered := view.FilteredGroups(snapshot, filter)

	for _, group := range filtered {
		assert.Empty(t, group.Tasks)
	}

	assert.Equal(t, 4, view.BoardStats(snapshot).Total)
}

func TestFilterClone(t *testing.T) {
	t.Parallel()

	filter := view.NewFilter()
	filter.Toggle(board.StatusPlanned)
	filter.Search = "x"

	clone := filter.Clone()
	clone.Toggle(board.StatusPlanned)
	clone.Toggle(board.StatusBlocked)

	assert.True(t, filter.Statuses[board.StatusPlanned])
	assert.False(t, filter.Statuses[board.StatusBlocked])
	assert.Equal(t, "x", clone.Search)
}
