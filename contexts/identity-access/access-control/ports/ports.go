package ports

import (
	"context"
	"time"

	"fieldops/contexts/identity-access/access-control/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// MembershipRepository is the write/read boundary for tenant membership rows.
// InsertTenantMemberIfAbsent must tolerate a concurrent insert of the same
// (tenant, user) pair: a unique-constraint conflict is not an error. The
// bootstrap rule relies on that insert-or-observe contract instead of
// locking.
type MembershipRepository interface {
	GetTenantMember(ctx context.Context, tenantID string, userID string) (entities.TenantMembership, bool, error)
	TenantHasMembers(ctx context.Context, tenantID string) (bool, error)
	InsertTenantMemberIfAbsent(ctx context.Context, membership entities.TenantMembership) error
	InsertTenantMember(ctx context.Context, membership entities.TenantMembership) error
	ListTenantMembers(ctx context.Context, tenantID string) ([]entities.TenantMembership, error)
	UpdateTenantMemberRole(ctx context.Context, tenantID string, userID string, role string) (entities.TenantMembership, bool, error)
	DeleteTenantMember(ctx context.Context, tenantID string, userID string) error
}

// ProjectCatalog exposes the project facts this module needs for access
// decisions. Project rows themselves are owned by project-service.
type ProjectCatalog interface {
	// GetProjectTenant returns the owning tenant of a project, or ok=false
	// when the project does not exist.
	GetProjectTenant(ctx context.Context, projectID string) (tenantID string, ok bool, err error)
	// GetProjectMemberRole returns the caller's explicit project role, or
	// ok=false when no membership row exists.
	GetProjectMemberRole(ctx context.Context, projectID string, userID string) (role string, ok bool, err error)
}

// UserDirectory resolves invitation targets. Backed by the identity provider;
// this module never sees credentials.
type UserDirectory interface {
	FindUserIDByEmail(ctx context.Context, email string) (string, bool, error)
}
