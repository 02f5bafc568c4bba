package errors

import "errors"

var (
	// ErrProjectNotFound covers both a genuinely missing project and a
	// project owned by another tenant. The two cases are deliberately
	// indistinguishable so cross-tenant existence never leaks.
	ErrProjectNotFound = errors.New("project not found")

	ErrNotAProjectMember      = errors.New("not a project member")
	ErrInsufficientPermission = errors.New("insufficient permission")
	ErrOrgAdminRequired       = errors.New("tenant org_admin required")
	ErrTenantRequired         = errors.New("tenant id is required")
	ErrInvalidRequest         = errors.New("invalid request")
	ErrInvalidRole            = errors.New("invalid role")
	ErrUserNotFound           = errors.New("user not found")
	ErrMemberNotFound         = errors.New("tenant member not found")
	ErrMemberAlreadyExists    = errors.New("tenant member already exists")
)
