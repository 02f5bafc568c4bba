package entities

import "time"

// TenantMembership is one (tenant, user) row; at most one exists per pair.
type TenantMembership struct {
	TenantID  string
	UserID    string
	Role      string
	CreatedAt time.Time
}

// ProjectAccess is a granted access decision for one project operation.
type ProjectAccess struct {
	ProjectID string
	TenantID  string
	Role      string
}
