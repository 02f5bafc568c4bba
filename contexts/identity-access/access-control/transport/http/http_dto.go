package httptransport

import "time"

// ErrorResponse is the module's uniform error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TenantRoleResponse reports the caller's resolved role within the tenant.
type TenantRoleResponse struct {
	TenantID string `json:"tenant_id"`
	UserID   string `json:"user_id"`
	Role     string `json:"role,omitempty"`
	IsMember bool   `json:"is_member"`
}

// CheckAccessRequest asks whether the caller may perform one project
// operation.
type CheckAccessRequest struct {
	ProjectID  string `json:"project_id"`
	Permission string `json:"permission"`
}

// CheckAccessResponse is a granted access decision.
type CheckAccessResponse struct {
	ProjectID string `json:"project_id"`
	TenantID  string `json:"tenant_id"`
	Role      string `json:"role"`
}

type TenantMemberDTO struct {
	TenantID  string    `json:"tenant_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type ListTenantMembersResponse struct {
	Members []TenantMemberDTO `json:"members"`
}

// AddTenantMemberRequest invites a user by id or by directory email.
type AddTenantMemberRequest struct {
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role"`
}

type UpdateTenantMemberRequest struct {
	Role string `json:"role"`
}
