package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"fieldops/contexts/field-operations/project-service/domain/entities"
	domainerrors "fieldops/contexts/field-operations/project-service/domain/errors"
	"fieldops/contexts/field-operations/project-service/ports"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing the project repository. It also
// satisfies the access-control project catalog and the attendance project
// locator, so one instance can back the whole in-memory wiring.
type Store struct {
	mu sync.RWMutex

	projects map[string]entities.Project
	members  map[string]entities.ProjectMembership // key projectID+"/"+userID
}

func NewStore() *Store {
	return &Store{
		projects: make(map[string]entities.Project),
		members:  make(map[string]entities.ProjectMembership),
	}
}

func memberKey(projectID, userID string) string { return projectID + "/" + userID }

func (s *Store) CreateProject(_ context.Context, project entities.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[project.ID] = project
	return nil
}

func (s *Store) GetProject(_ context.Context, projectID string, tenantID string) (entities.Project, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	project, ok := s.projects[projectID]
	if !ok || project.TenantID != tenantID {
		return entities.Project{}, false, nil
	}
	return project, true, nil
}

func (s *Store) ListProjectsForTenant(_ context.Context, tenantID string) ([]entities.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.Project
	for _, project := range s.projects {
		if project.TenantID == tenantID {
			out = append(out, project)
		}
	}
	sortProjectsNewestFirst(out)
	return out, nil
}

func (s *Store) ListProjectsForUser(_ context.Context, tenantID string, userID string) ([]entities.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.Project
	for _, membership := range s.members {
		if membership.UserID != userID {
			continue
		}
		project, ok := s.projects[membership.ProjectID]
		if ok && project.TenantID == tenantID {
			out = append(out, project)
		}
	}
	sortProjectsNewestFirst(out)
	return out, nil
}

func (s *Store) UpdateProject(_ context.Context, projectID string, tenantID string, update ports.ProjectUpdate, updatedAt time.Time) (entities.Project, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, ok := s.projects[projectID]
	if !ok || project.TenantID != tenantID {
		return entities.Project{}, false, nil
	}
	if update.Name != nil {
		project.Name = *update.Name
	}
	if update.Timezone != nil {
		project.Timezone = *update.Timezone
	}
	if update.Lat != nil {
		project.Lat = update.Lat
	}
	if update.Lng != nil {
		project.Lng = update.Lng
	}
	if update.Location != nil {
		project.Location = *update.Location
	}
	if update.Address != nil {
		project.Address = *update.Address
	}
	if update.ProjectAdminUserID != nil {
		project.ProjectAdminUserID = *update.ProjectAdminUserID
	}
	project.UpdatedAt = updatedAt
	s.projects[projectID] = project
	return project, true, nil
}

func (s *Store) DeleteProject(_ context.Context, projectID string, tenantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, ok := s.projects[projectID]
	if !ok || project.TenantID != tenantID {
		return nil
	}
	delete(s.projects, projectID)
	for key, membership := range s.members {
		if membership.ProjectID == projectID {
			delete(s.members, key)
		}
	}
	return nil
}

func (s *Store) AddProjectMember(_ context.Context, membership entities.ProjectMembership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := memberKey(membership.ProjectID, membership.UserID)
	if _, exists := s.members[key]; exists {
		return domainerrors.ErrMemberAlreadyExists
	}
	s.members[key] = membership
	return nil
}

func (s *Store) ListProjectMembers(_ context.Context, projectID string) ([]entities.ProjectMembership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.ProjectMembership
	for _, membership := range s.members {
		if membership.ProjectID == projectID {
			out = append(out, membership)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].UserID < out[j].UserID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) UpdateProjectMemberRole(_ context.Context, projectID string, userID string, role string) (entities.ProjectMembership, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := memberKey(projectID, userID)
	membership, ok := s.members[key]
	if !ok {
		return entities.ProjectMembership{}, false, nil
	}
	membership.Role = role
	s.members[key] = membership
	return membership, true, nil
}

func (s *Store) RemoveProjectMember(_ context.Context, projectID string, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.members, memberKey(projectID, userID))
	return nil
}

// GetProjectTenant satisfies the access-control project catalog port.
func (s *Store) GetProjectTenant(_ context.Context, projectID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	project, ok := s.projects[projectID]
	if !ok {
		return "", false, nil
	}
	return project.TenantID, true, nil
}

// GetProjectMemberRole satisfies the access-control project catalog port.
func (s *Store) GetProjectMemberRole(_ context.Context, projectID string, userID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	membership, ok := s.members[memberKey(projectID, userID)]
	if !ok {
		return "", false, nil
	}
	return membership.Role, true, nil
}

// GetProjectLocation satisfies the attendance project locator port.
// ok=false means the project has no configured coordinates.
func (s *Store) GetProjectLocation(_ context.Context, projectID string) (float64, float64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	project, exists := s.projects[projectID]
	if !exists || project.Lat == nil || project.Lng == nil {
		return 0, 0, false, nil
	}
	return *project.Lat, *project.Lng, true, nil
}

func (s *Store) Now() time.Time { return time.Now().UTC() }

func (s *Store) NewID(_ context.Context) (string, error) { return uuid.NewString(), nil }

func sortProjectsNewestFirst(projects []entities.Project) {
	sort.Slice(projects, func(i, j int) bool {
		if projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].ID < projects[j].ID
		}
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
}
