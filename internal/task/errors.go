package task

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrEmptyTitle   = errors.New("task title is required")
	ErrInvalidState = errors.New("invalid completion state")
	ErrInvalidLoad  = errors.New("invalid cognitive load")
	ErrInvalidParts = errors.New("parts must be between 0 and 10")
)
