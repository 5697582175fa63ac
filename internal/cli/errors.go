package cli

import "errors"

var (
	errGroupRequired   = errors.New("group id is required")
	errTitleRequired   = errors.New("title is required")
	errTaskIDRequired  = errors.New("task id is required")
	errStatusRequired  = errors.New("status is required")
	errUnknownGroup    = errors.New("unknown group")
	errUnknownTask     = errors.New("unknown task")
	errInvalidStatus   = errors.New("invalid status")
	errInvalidPriority = errors.New("invalid priority")
	errOwnerRequired   = errors.New("owner is required")
	errPromptAborted   = errors.New("input aborted")
)
