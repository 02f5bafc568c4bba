package httpadapter

import (
	"context"
	"log/slog"

	"fieldops/contexts/identity-access/access-control/application"
	"fieldops/contexts/identity-access/access-control/domain/entities"
	httptransport "fieldops/contexts/identity-access/access-control/transport/http"
)

// Handler maps HTTP DTOs to application service calls.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// ResolveTenantRoleHandler resolves the caller's tenant role, applying the
// bootstrap rule for empty tenants.
func (h Handler) ResolveTenantRoleHandler(ctx context.Context, tenantID string, userID string) (httptransport.TenantRoleResponse, error) {
	role, isMember, err := h.Service.ResolveTenantRole(ctx, tenantID, userID)
	if err != nil {
		application.ResolveLogger(h.Logger).Error("tenant role resolution failed",
			"event", "tenant_role_resolution_failed",
			"module", "identity-access/access-control",
			"layer", "transport",
			"tenant_id", tenantID,
			"user_id", userID,
			"error", err.Error(),
		)
		return httptransport.TenantRoleResponse{}, err
	}
	return httptransport.TenantRoleResponse{
		TenantID: tenantID,
		UserID:   userID,
		Role:     role,
		IsMember: isMember,
	}, nil
}

// CheckAccessHandler evaluates one project permission for the caller.
func (h Handler) CheckAccessHandler(ctx context.Context, tenantID string, userID string, request httptransport.CheckAccessRequest) (httptransport.CheckAccessResponse, error) {
	access, err := h.Service.ResolveProjectAccess(ctx, application.AccessQuery{
		ProjectID:  request.ProjectID,
		TenantID:   tenantID,
		UserID:     userID,
		Permission: request.Permission,
	})
	if err != nil {
		return httptransport.CheckAccessResponse{}, err
	}
	return httptransport.CheckAccessResponse{
		ProjectID: access.ProjectID,
		TenantID:  access.TenantID,
		Role:      access.Role,
	}, nil
}

func (h Handler) ListMembersHandler(ctx context.Context, tenantID string, callerID string) (httptransport.ListTenantMembersResponse, error) {
	members, err := h.Service.ListMembers(ctx, tenantID, callerID)
	if err != nil {
		return httptransport.ListTenantMembersResponse{}, err
	}
	out := httptransport.ListTenantMembersResponse{Members: make([]httptransport.TenantMemberDTO, 0, len(members))}
	for _, member := range members {
		out.Members = append(out.Members, memberDTO(member))
	}
	return out, nil
}

func (h Handler) AddMemberHandler(ctx context.Context, tenantID string, callerID string, request httptransport.AddTenantMemberRequest) (httptransport.TenantMemberDTO, error) {
	member, err := h.Service.AddMember(ctx, tenantID, callerID, application.AddMemberInput{
		UserID: request.UserID,
		Email:  request.Email,
		Role:   request.Role,
	})
	if err != nil {
		return httptransport.TenantMemberDTO{}, err
	}
	return memberDTO(member), nil
}

func (h Handler) UpdateMemberHandler(ctx context.Context, tenantID string, callerID string, userID string, request httptransport.UpdateTenantMemberRequest) (httptransport.TenantMemberDTO, error) {
	member, err := h.Service.UpdateMemberRole(ctx, tenantID, callerID, userID, request.Role)
	if err != nil {
		return httptransport.TenantMemberDTO{}, err
	}
	return memberDTO(member), nil
}

func (h Handler) RemoveMemberHandler(ctx context.Context, tenantID string, callerID string, userID string) error {
	return h.Service.RemoveMember(ctx, tenantID, callerID, userID)
}

func memberDTO(member entities.TenantMembership) httptransport.TenantMemberDTO {
	return httptransport.TenantMemberDTO{
		TenantID:  member.TenantID,
		UserID:    member.UserID,
		Role:      member.Role,
		CreatedAt: member.CreatedAt,
	}
}
