package board

import "time"

// Seed group ids. The group set is fixed; these are the only groups
// the board ever contains.
const (
	GroupPartyA = "party-a"
	GroupPartyB = "party-b"
)

// Seed returns the fixed starter board installed when no persisted
// state exists. Task ids are stable strings rather than generated ids
// so a freshly seeded board is deterministic.
func Seed(now time.Time) Snapshot {
	created := now.UTC().Format(time.RFC3339)

	return Snapshot{
		{
			ID:      GroupPartyA,
			Name:    "Party A",
			Mission: "Launch-side workstream: campaign, positioning, and outbound.",
			Tasks: []Task{
				{
					ID:          "seed-a-brief",
					Title:       "Finalize Q3 Campaign Brief",
					Description: "Lock messaging, channel mix, and budget split for the Q3 push.",
					Owner:       "Maya",
					DueDate:     DefaultDueDate(now),
					Status:      StatusInProgress,
					Priority:    PriorityHigh,
					Tags:        []string{"marketing", "q3"},
					CreatedAt:   created,
				},
				{
					ID:          "seed-a-deck",
					Title:       "Draft partner pitch deck",
					Description: "First pass only; design polish comes later.",
					Owner:       "Jordan",
					DueDate:     now.AddDate(0, 0, 7).Format(DateFormat),
					Status:      StatusPlanned,
					Priority:    PriorityMedium,
					Tags:        []string{"partners"},
					CreatedAt:   created,
				},
			},
		},
		{
			ID:      GroupPartyB,
			Name:    "Party B",
			Mission: "Delivery-side workstream: build, review, and ship.",
			Tasks: []Task{
				{
					ID:          "seed-b-review",
					Title:       "Review onboarding flow feedback",
					Description: "Triage the pilot-cohort notes into actionable items.",
					Owner:       "Sam",
					DueDate:     now.AddDate(0, 0, 4).Format(DateFormat),
					Status:      StatusPlanned,
					Priority:    PriorityHigh,
					Tags:        []string{"onboarding", "pilot"},
					CreatedAt:   created,
				},
				{
					ID:          "seed-b-cleanup",
					Title:       "Archive stale experiment branches",
					Description: "",
					Owner:       "Sam",
					DueDate:     now.AddDate(0, 0, 10).Format(DateFormat),
					Status:      StatusBlocked,
					Priority:    PriorityLow,
					Tags:        []string{"housekeeping"},
					CreatedAt:   created,
				},
			},
		},
	}
}
