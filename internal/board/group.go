package board

// Group is a fixed, named collection of tasks. The set of groups is
// static: core operations never create or delete groups, only the
// tasks inside them. Tasks are ordered newest-created first.
type Group struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Mission string `json:"mission"`
	Tasks   []Task `json:"tasks"`
}

// Clone returns a deep copy of the group.
func (g Group) Clone() Group {
	clone := g
	clone.Tasks = make([]Task, len(g.Tasks))

	for i, task := range g.Tasks {
		clone.Tasks[i] = task.Clone()
	}

	return clone
}

// Snapshot is the complete serializable board state: an ordered
// sequence of groups. It is the sole unit of persistence.
type Snapshot []Group

// Clone returns a deep copy of the snapshot. Every read that leaves
// the state store goes through Clone so no caller can alias the
// authoritative state.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}

	clone := make(Snapshot, len(s))
	for i, group := range s {
		clone[i] = group.Clone()
	}

	return clone
}

// Group returns a pointer to the group with the given id, or nil.
func (s Snapshot) Group(groupID string) *Group {
	for i := range s {
		if s[i].ID == groupID {
			return &s[i]
		}
	}

	return nil
}

// Task returns a pointer to the task with the given id inside the
// given group, or nil if either is missing.
func (s Snapshot) Task(groupID, taskID string) *Task {
	group := s.Group(groupID)
	if group == nil {
		return nil
	}

	for i := range group.Tasks {
		if group.Tasks[i].ID == taskID {
			return &group.Tasks[i]
		}
	}

	return nil
}
