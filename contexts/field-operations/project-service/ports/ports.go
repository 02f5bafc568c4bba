package ports

import (
	"context"
	"time"

	"fieldops/contexts/field-operations/project-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts project id generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// ProjectUpdate carries partial-update fields; nil means leave unchanged.
type ProjectUpdate struct {
	Name               *string
	Timezone           *string
	Lat                *float64
	Lng                *float64
	Location           *string
	Address            *string
	ProjectAdminUserID *string
}

// Repository is the persistence boundary for projects and their members.
type Repository interface {
	CreateProject(ctx context.Context, project entities.Project) error
	GetProject(ctx context.Context, projectID string, tenantID string) (entities.Project, bool, error)
	ListProjectsForTenant(ctx context.Context, tenantID string) ([]entities.Project, error)
	ListProjectsForUser(ctx context.Context, tenantID string, userID string) ([]entities.Project, error)
	UpdateProject(ctx context.Context, projectID string, tenantID string, update ProjectUpdate, updatedAt time.Time) (entities.Project, bool, error)
	DeleteProject(ctx context.Context, projectID string, tenantID string) error

	AddProjectMember(ctx context.Context, membership entities.ProjectMembership) error
	ListProjectMembers(ctx context.Context, projectID string) ([]entities.ProjectMembership, error)
	UpdateProjectMemberRole(ctx context.Context, projectID string, userID string, role string) (entities.ProjectMembership, bool, error)
	RemoveProjectMember(ctx context.Context, projectID string, userID string) error
}
