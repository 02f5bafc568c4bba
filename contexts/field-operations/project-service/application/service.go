package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"fieldops/contexts/field-operations/project-service/domain/entities"
	domainerrors "fieldops/contexts/field-operations/project-service/domain/errors"
	"fieldops/contexts/field-operations/project-service/ports"
)

const (
	roleAdmin  = "admin"
	roleMember = "member"
	roleViewer = "viewer"
)

func isValidProjectRole(role string) bool {
	return role == roleAdmin || role == roleMember || role == roleViewer
}

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// CreateProjectInput carries caller-supplied project fields.
type CreateProjectInput struct {
	Name               string
	Timezone           string
	Lat                *float64
	Lng                *float64
	Location           string
	Address            string
	ProjectAdminUserID string
}

// CreateProject inserts the project and adds the creator as project admin.
func (s Service) CreateProject(ctx context.Context, tenantID string, creatorID string, input CreateProjectInput) (entities.Project, error) {
	tenantID = strings.TrimSpace(tenantID)
	creatorID = strings.TrimSpace(creatorID)
	if tenantID == "" || creatorID == "" || strings.TrimSpace(input.Name) == "" {
		return entities.Project{}, domainerrors.ErrInvalidRequest
	}

	projectID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Project{}, err
	}
	now := s.now()
	project := entities.Project{
		ID:                 projectID,
		TenantID:           tenantID,
		Name:               strings.TrimSpace(input.Name),
		Timezone:           strings.TrimSpace(input.Timezone),
		Lat:                input.Lat,
		Lng:                input.Lng,
		Location:           strings.TrimSpace(input.Location),
		Address:            strings.TrimSpace(input.Address),
		ProjectAdminUserID: strings.TrimSpace(input.ProjectAdminUserID),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.Repo.CreateProject(ctx, project); err != nil {
		return entities.Project{}, err
	}
	if err := s.Repo.AddProjectMember(ctx, entities.ProjectMembership{
		ProjectID: projectID,
		UserID:    creatorID,
		Role:      roleAdmin,
		CreatedAt: now,
	}); err != nil {
		return entities.Project{}, err
	}

	ResolveLogger(s.Logger).Info("project created",
		"event", "project_created",
		"module", "field-operations/project-service",
		"layer", "application",
		"project_id", projectID,
		"tenant_id", tenantID,
	)
	return project, nil
}

func (s Service) GetProject(ctx context.Context, projectID string, tenantID string) (entities.Project, error) {
	project, found, err := s.Repo.GetProject(ctx, strings.TrimSpace(projectID), strings.TrimSpace(tenantID))
	if err != nil {
		return entities.Project{}, err
	}
	if !found {
		return entities.Project{}, domainerrors.ErrProjectNotFound
	}
	return project, nil
}

// ListProjects returns the caller's projects, newest first. Tenant org
// admins see every project of the tenant; other callers only see projects
// they are assigned to.
func (s Service) ListProjects(ctx context.Context, tenantID string, userID string, tenantWide bool) ([]entities.Project, error) {
	if tenantWide {
		return s.Repo.ListProjectsForTenant(ctx, strings.TrimSpace(tenantID))
	}
	return s.Repo.ListProjectsForUser(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(userID))
}

func (s Service) UpdateProject(ctx context.Context, projectID string, tenantID string, update ports.ProjectUpdate) (entities.Project, error) {
	project, found, err := s.Repo.UpdateProject(ctx, strings.TrimSpace(projectID), strings.TrimSpace(tenantID), update, s.now())
	if err != nil {
		return entities.Project{}, err
	}
	if !found {
		return entities.Project{}, domainerrors.ErrProjectNotFound
	}
	return project, nil
}

func (s Service) DeleteProject(ctx context.Context, projectID string, tenantID string) error {
	return s.Repo.DeleteProject(ctx, strings.TrimSpace(projectID), strings.TrimSpace(tenantID))
}

func (s Service) ListMembers(ctx context.Context, projectID string) ([]entities.ProjectMembership, error) {
	return s.Repo.ListProjectMembers(ctx, strings.TrimSpace(projectID))
}

func (s Service) AddMember(ctx context.Context, projectID string, userID string, role string) (entities.ProjectMembership, error) {
	projectID = strings.TrimSpace(projectID)
	userID = strings.TrimSpace(userID)
	if projectID == "" || userID == "" {
		return entities.ProjectMembership{}, domainerrors.ErrInvalidRequest
	}
	if !isValidProjectRole(role) {
		return entities.ProjectMembership{}, domainerrors.ErrInvalidRole
	}
	membership := entities.ProjectMembership{
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
		CreatedAt: s.now(),
	}
	if err := s.Repo.AddProjectMember(ctx, membership); err != nil {
		return entities.ProjectMembership{}, err
	}
	return membership, nil
}

func (s Service) UpdateMemberRole(ctx context.Context, projectID string, userID string, role string) (entities.ProjectMembership, error) {
	if !isValidProjectRole(role) {
		return entities.ProjectMembership{}, domainerrors.ErrInvalidRole
	}
	membership, found, err := s.Repo.UpdateProjectMemberRole(ctx, strings.TrimSpace(projectID), strings.TrimSpace(userID), role)
	if err != nil {
		return entities.ProjectMembership{}, err
	}
	if !found {
		return entities.ProjectMembership{}, domainerrors.ErrMemberNotFound
	}
	return membership, nil
}

func (s Service) RemoveMember(ctx context.Context, projectID string, userID string) error {
	return s.Repo.RemoveProjectMember(ctx, strings.TrimSpace(projectID), strings.TrimSpace(userID))
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
