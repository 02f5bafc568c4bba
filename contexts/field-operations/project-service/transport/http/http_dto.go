package httptransport

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateProjectRequest struct {
	Name               string   `json:"name"`
	Timezone           string   `json:"timezone,omitempty"`
	Lat                *float64 `json:"lat,omitempty"`
	Lng                *float64 `json:"lng,omitempty"`
	Location           string   `json:"location,omitempty"`
	Address            string   `json:"address,omitempty"`
	ProjectAdminUserID string   `json:"project_admin_user_id,omitempty"`
}

type UpdateProjectRequest struct {
	Name               *string  `json:"name,omitempty"`
	Timezone           *string  `json:"timezone,omitempty"`
	Lat                *float64 `json:"lat,omitempty"`
	Lng                *float64 `json:"lng,omitempty"`
	Location           *string  `json:"location,omitempty"`
	Address            *string  `json:"address,omitempty"`
	ProjectAdminUserID *string  `json:"project_admin_user_id,omitempty"`
}

type ProjectDTO struct {
	ID                 string    `json:"id"`
	TenantID           string    `json:"tenant_id"`
	Name               string    `json:"name"`
	Timezone           string    `json:"timezone,omitempty"`
	Lat                *float64  `json:"lat,omitempty"`
	Lng                *float64  `json:"lng,omitempty"`
	Location           string    `json:"location,omitempty"`
	Address            string    `json:"address,omitempty"`
	ProjectAdminUserID string    `json:"project_admin_user_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type ListProjectsResponse struct {
	Projects []ProjectDTO `json:"projects"`
}

type ProjectMemberDTO struct {
	ProjectID string    `json:"project_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type ListProjectMembersResponse struct {
	Members []ProjectMemberDTO `json:"members"`
}

type AddProjectMemberRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type UpdateProjectMemberRequest struct {
	Role string `json:"role"`
}
