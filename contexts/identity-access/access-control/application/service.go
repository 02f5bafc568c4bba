package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"fieldops/contexts/identity-access/access-control/domain/entities"
	domainerrors "fieldops/contexts/identity-access/access-control/domain/errors"
	"fieldops/contexts/identity-access/access-control/domain/services"
	"fieldops/contexts/identity-access/access-control/ports"
)

type Service struct {
	Memberships ports.MembershipRepository
	Projects    ports.ProjectCatalog
	Directory   ports.UserDirectory
	Clock       ports.Clock
	Logger      *slog.Logger
}

// ResolveTenantRole returns the caller's role within a tenant, applying the
// bootstrap rule: the first authenticated user to touch an empty tenant
// becomes its org_admin.
//
// The bootstrap insert is insert-or-observe, not insert-must-succeed: two
// callers racing on an empty tenant may both attempt the insert, the store's
// uniqueness constraint picks one winner, and the re-read below returns
// whatever row actually exists. ok=false means the caller has no membership.
func (s Service) ResolveTenantRole(ctx context.Context, tenantID string, userID string) (string, bool, error) {
	tenantID = strings.TrimSpace(tenantID)
	userID = strings.TrimSpace(userID)
	if tenantID == "" {
		return "", false, domainerrors.ErrTenantRequired
	}
	if userID == "" {
		return "", false, domainerrors.ErrInvalidRequest
	}

	membership, found, err := s.Memberships.GetTenantMember(ctx, tenantID, userID)
	if err != nil {
		return "", false, err
	}
	if found {
		return membership.Role, true, nil
	}

	hasMembers, err := s.Memberships.TenantHasMembers(ctx, tenantID)
	if err != nil {
		return "", false, err
	}
	if !hasMembers {
		if err := s.Memberships.InsertTenantMemberIfAbsent(ctx, entities.TenantMembership{
			TenantID:  tenantID,
			UserID:    userID,
			Role:      services.TenantRoleOrgAdmin,
			CreatedAt: s.now(),
		}); err != nil {
			return "", false, err
		}
		ResolveLogger(s.Logger).Info("tenant bootstrap admin inserted",
			"event", "tenant_bootstrap_admin_inserted",
			"module", "identity-access/access-control",
			"layer", "application",
			"tenant_id", tenantID,
			"user_id", userID,
		)
	}

	membership, found, err = s.Memberships.GetTenantMember(ctx, tenantID, userID)
	if err != nil {
		return "", false, err
	}
	if !found {
		// A racing caller won the bootstrap; this caller stays memberless.
		return "", false, nil
	}
	return membership.Role, true, nil
}

// AccessQuery names one project operation to authorize.
type AccessQuery struct {
	ProjectID  string
	TenantID   string
	UserID     string
	Permission string
}

// ResolveProjectAccess decides whether the caller may perform an operation on
// a project. A project outside the caller's tenant is reported as not found,
// never as forbidden. Tenant org_admins administer every project of their
// tenant regardless of project membership.
func (s Service) ResolveProjectAccess(ctx context.Context, query AccessQuery) (entities.ProjectAccess, error) {
	projectID := strings.TrimSpace(query.ProjectID)
	tenantID := strings.TrimSpace(query.TenantID)
	userID := strings.TrimSpace(query.UserID)
	if tenantID == "" {
		return entities.ProjectAccess{}, domainerrors.ErrTenantRequired
	}
	if projectID == "" || userID == "" || strings.TrimSpace(query.Permission) == "" {
		return entities.ProjectAccess{}, domainerrors.ErrInvalidRequest
	}

	owningTenant, found, err := s.Projects.GetProjectTenant(ctx, projectID)
	if err != nil {
		return entities.ProjectAccess{}, err
	}
	if !found || owningTenant != tenantID {
		return entities.ProjectAccess{}, domainerrors.ErrProjectNotFound
	}

	tenantRole, _, err := s.ResolveTenantRole(ctx, tenantID, userID)
	if err != nil {
		return entities.ProjectAccess{}, err
	}
	if tenantRole == services.TenantRoleOrgAdmin {
		return entities.ProjectAccess{
			ProjectID: projectID,
			TenantID:  tenantID,
			Role:      services.ProjectRoleAdmin,
		}, nil
	}

	role, found, err := s.Projects.GetProjectMemberRole(ctx, projectID, userID)
	if err != nil {
		return entities.ProjectAccess{}, err
	}
	if !found {
		return entities.ProjectAccess{}, domainerrors.ErrNotAProjectMember
	}
	if role == "" {
		role = services.ProjectRoleViewer
	}
	if !services.HasPermission(role, query.Permission) {
		return entities.ProjectAccess{}, domainerrors.ErrInsufficientPermission
	}
	return entities.ProjectAccess{
		ProjectID: projectID,
		TenantID:  tenantID,
		Role:      role,
	}, nil
}

// RequireOrgAdmin gates tenant-wide administrative operations.
func (s Service) RequireOrgAdmin(ctx context.Context, tenantID string, userID string) error {
	role, found, err := s.ResolveTenantRole(ctx, tenantID, userID)
	if err != nil {
		return err
	}
	if !found || role != services.TenantRoleOrgAdmin {
		return domainerrors.ErrOrgAdminRequired
	}
	return nil
}

// ListMembers returns tenant memberships ordered by creation time.
func (s Service) ListMembers(ctx context.Context, tenantID string, callerID string) ([]entities.TenantMembership, error) {
	if err := s.RequireOrgAdmin(ctx, tenantID, callerID); err != nil {
		return nil, err
	}
	return s.Memberships.ListTenantMembers(ctx, strings.TrimSpace(tenantID))
}

// AddMemberInput identifies the invitee either directly by user id or by
// email resolved through the user directory.
type AddMemberInput struct {
	UserID string
	Email  string
	Role   string
}

func (s Service) AddMember(ctx context.Context, tenantID string, callerID string, input AddMemberInput) (entities.TenantMembership, error) {
	if err := s.RequireOrgAdmin(ctx, tenantID, callerID); err != nil {
		return entities.TenantMembership{}, err
	}
	if !services.IsTenantRole(input.Role) {
		return entities.TenantMembership{}, domainerrors.ErrInvalidRole
	}

	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		email := strings.ToLower(strings.TrimSpace(input.Email))
		if email == "" {
			return entities.TenantMembership{}, domainerrors.ErrInvalidRequest
		}
		resolved, found, err := s.Directory.FindUserIDByEmail(ctx, email)
		if err != nil {
			return entities.TenantMembership{}, err
		}
		if !found {
			return entities.TenantMembership{}, domainerrors.ErrUserNotFound
		}
		userID = resolved
	}

	membership := entities.TenantMembership{
		TenantID:  strings.TrimSpace(tenantID),
		UserID:    userID,
		Role:      input.Role,
		CreatedAt: s.now(),
	}
	if err := s.Memberships.InsertTenantMember(ctx, membership); err != nil {
		return entities.TenantMembership{}, err
	}

	ResolveLogger(s.Logger).Info("tenant member added",
		"event", "tenant_member_added",
		"module", "identity-access/access-control",
		"layer", "application",
		"tenant_id", membership.TenantID,
		"user_id", membership.UserID,
		"role", membership.Role,
	)
	return membership, nil
}

func (s Service) UpdateMemberRole(ctx context.Context, tenantID string, callerID string, userID string, role string) (entities.TenantMembership, error) {
	if err := s.RequireOrgAdmin(ctx, tenantID, callerID); err != nil {
		return entities.TenantMembership{}, err
	}
	if !services.IsTenantRole(role) {
		return entities.TenantMembership{}, domainerrors.ErrInvalidRole
	}
	membership, found, err := s.Memberships.UpdateTenantMemberRole(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(userID), role)
	if err != nil {
		return entities.TenantMembership{}, err
	}
	if !found {
		return entities.TenantMembership{}, domainerrors.ErrMemberNotFound
	}
	return membership, nil
}

func (s Service) RemoveMember(ctx context.Context, tenantID string, callerID string, userID string) error {
	if err := s.RequireOrgAdmin(ctx, tenantID, callerID); err != nil {
		return err
	}
	return s.Memberships.DeleteTenantMember(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(userID))
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
