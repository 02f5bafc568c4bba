package httpadapter

import (
	"context"
	"log/slog"

	"fieldops/contexts/field-operations/project-service/application"
	"fieldops/contexts/field-operations/project-service/domain/entities"
	"fieldops/contexts/field-operations/project-service/ports"
	httptransport "fieldops/contexts/field-operations/project-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateProjectHandler(ctx context.Context, tenantID string, creatorID string, request httptransport.CreateProjectRequest) (httptransport.ProjectDTO, error) {
	project, err := h.Service.CreateProject(ctx, tenantID, creatorID, application.CreateProjectInput{
		Name:               request.Name,
		Timezone:           request.Timezone,
		Lat:                request.Lat,
		Lng:                request.Lng,
		Location:           request.Location,
		Address:            request.Address,
		ProjectAdminUserID: request.ProjectAdminUserID,
	})
	if err != nil {
		return httptransport.ProjectDTO{}, err
	}
	return projectDTO(project), nil
}

func (h Handler) GetProjectHandler(ctx context.Context, projectID string, tenantID string) (httptransport.ProjectDTO, error) {
	project, err := h.Service.GetProject(ctx, projectID, tenantID)
	if err != nil {
		return httptransport.ProjectDTO{}, err
	}
	return projectDTO(project), nil
}

func (h Handler) ListProjectsHandler(ctx context.Context, tenantID string, userID string, tenantWide bool) (httptransport.ListProjectsResponse, error) {
	projects, err := h.Service.ListProjects(ctx, tenantID, userID, tenantWide)
	if err != nil {
		return httptransport.ListProjectsResponse{}, err
	}
	out := httptransport.ListProjectsResponse{Projects: make([]httptransport.ProjectDTO, 0, len(projects))}
	for _, project := range projects {
		out.Projects = append(out.Projects, projectDTO(project))
	}
	return out, nil
}

func (h Handler) UpdateProjectHandler(ctx context.Context, projectID string, tenantID string, request httptransport.UpdateProjectRequest) (httptransport.ProjectDTO, error) {
	project, err := h.Service.UpdateProject(ctx, projectID, tenantID, ports.ProjectUpdate{
		Name:               request.Name,
		Timezone:           request.Timezone,
		Lat:                request.Lat,
		Lng:                request.Lng,
		Location:           request.Location,
		Address:            request.Address,
		ProjectAdminUserID: request.ProjectAdminUserID,
	})
	if err != nil {
		return httptransport.ProjectDTO{}, err
	}
	return projectDTO(project), nil
}

func (h Handler) DeleteProjectHandler(ctx context.Context, projectID string, tenantID string) error {
	return h.Service.DeleteProject(ctx, projectID, tenantID)
}

func (h Handler) ListMembersHandler(ctx context.Context, projectID string) (httptransport.ListProjectMembersResponse, error) {
	members, err := h.Service.ListMembers(ctx, projectID)
	if err != nil {
		return httptransport.ListProjectMembersResponse{}, err
	}
	out := httptransport.ListProjectMembersResponse{Members: make([]httptransport.ProjectMemberDTO, 0, len(members))}
	for _, member := range members {
		out.Members = append(out.Members, memberDTO(member))
	}
	return out, nil
}

func (h Handler) AddMemberHandler(ctx context.Context, projectID string, request httptransport.AddProjectMemberRequest) (httptransport.ProjectMemberDTO, error) {
	member, err := h.Service.AddMember(ctx, projectID, request.UserID, request.Role)
	if err != nil {
		return httptransport.ProjectMemberDTO{}, err
	}
	return memberDTO(member), nil
}

func (h Handler) UpdateMemberHandler(ctx context.Context, projectID string, userID string, request httptransport.UpdateProjectMemberRequest) (httptransport.ProjectMemberDTO, error) {
	member, err := h.Service.UpdateMemberRole(ctx, projectID, userID, request.Role)
	if err != nil {
		return httptransport.ProjectMemberDTO{}, err
	}
	return memberDTO(member), nil
}

func (h Handler) RemoveMemberHandler(ctx context.Context, projectID string, userID string) error {
	return h.Service.RemoveMember(ctx, projectID, userID)
}

func projectDTO(project entities.Project) httptransport.ProjectDTO {
	return httptransport.ProjectDTO{
		ID:                 project.ID,
		TenantID:           project.TenantID,
		Name:               project.Name,
		Timezone:           project.Timezone,
		Lat:                project.Lat,
		Lng:                project.Lng,
		Location:           project.Location,
		Address:            project.Address,
		ProjectAdminUserID: project.ProjectAdminUserID,
		CreatedAt:          project.CreatedAt,
		UpdatedAt:          project.UpdatedAt,
	}
}

func memberDTO(member entities.ProjectMembership) httptransport.ProjectMemberDTO {
	return httptransport.ProjectMemberDTO{
		ProjectID: member.ProjectID,
		UserID:    member.UserID,
		Role:      member.Role,
		CreatedAt: member.CreatedAt,
	}
}
