package errors

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskStatusNotFound = errors.New("task status not found")
	ErrInvalidRequest     = errors.New("invalid task request")
)
