package board

// Draft is the transient, unvalidated input state for composing a new
// task. One draft exists per group at all times; it may be partially
// filled, invalid, or empty. Validation happens only at submission
// time (see NewTask and the state store's CreateTask). Drafts are
// never persisted.
type Draft struct {
	Title       string
	Description string
	Owner       string
	DueDate     string
	Priority    Priority
	// Tags is the raw comma-separated input string, parsed only at
	// submission time.
	Tags string
}

// DraftPatch is a partial draft update. Only non-nil fields are
// merged; everything else is left unchanged.
type DraftPatch struct {
	Title       *string
	Description *string
	Owner       *string
	DueDate     *string
	Priority    *Priority
	Tags        *string
}

// Apply merges the patch into the draft and returns the result.
func (d Draft) Apply(patch DraftPatch) Draft {
	if patch.Title != nil {
		d.Title = *patch.Title
	}

	if patch.Description != nil {
		d.Description = *patch.Description
	}

	if patch.Owner != nil {
		d.Owner = *patch.Owner
	}

	if patch.DueDate != nil {
		d.DueDate = *patch.DueDate
	}

	if patch.Priority != nil {
		d.Priority = *patch.Priority
	}

	if patch.Tags != nil {
		d.Tags = *patch.Tags
	}

	return d
}
