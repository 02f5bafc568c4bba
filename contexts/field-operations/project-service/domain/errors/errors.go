package errors

import "errors"

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrMemberNotFound      = errors.New("project member not found")
	ErrMemberAlreadyExists = errors.New("project member already exists")
	ErrInvalidRequest      = errors.New("invalid request")
	ErrInvalidRole         = errors.New("invalid project role")
)
