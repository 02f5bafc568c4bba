package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"fieldops/contexts/identity-access/access-control/domain/entities"
	domainerrors "fieldops/contexts/identity-access/access-control/domain/errors"
)

// Store is an in-memory adapter implementing the membership repository,
// project catalog, user directory, and clock ports. It is intended for tests
// and local development wiring.
type Store struct {
	mu sync.RWMutex

	members        map[string]entities.TenantMembership // key tenantID+"/"+userID
	projectTenants map[string]string                    // projectID -> tenantID
	projectRoles   map[string]string                    // projectID+"/"+userID -> role
	usersByEmail   map[string]string                    // email -> userID
}

func NewStore() *Store {
	return &Store{
		members:        make(map[string]entities.TenantMembership),
		projectTenants: make(map[string]string),
		projectRoles:   make(map[string]string),
		usersByEmail:   make(map[string]string),
	}
}

func memberKey(tenantID, userID string) string { return tenantID + "/" + userID }

func (s *Store) GetTenantMember(_ context.Context, tenantID string, userID string) (entities.TenantMembership, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	membership, ok := s.members[memberKey(tenantID, userID)]
	return membership, ok, nil
}

func (s *Store) TenantHasMembers(_ context.Context, tenantID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, membership := range s.members {
		if membership.TenantID == tenantID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) InsertTenantMemberIfAbsent(_ context.Context, membership entities.TenantMembership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := memberKey(membership.TenantID, membership.UserID)
	if _, exists := s.members[key]; exists {
		return nil
	}
	s.members[key] = membership
	return nil
}

func (s *Store) InsertTenantMember(_ context.Context, membership entities.TenantMembership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := memberKey(membership.TenantID, membership.UserID)
	if _, exists := s.members[key]; exists {
		return domainerrors.ErrMemberAlreadyExists
	}
	s.members[key] = membership
	return nil
}

func (s *Store) ListTenantMembers(_ context.Context, tenantID string) ([]entities.TenantMembership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.TenantMembership
	for _, membership := range s.members {
		if membership.TenantID == tenantID {
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

func (s *Store) UpdateTenantMemberRole(_ context.Context, tenantID string, userID string, role string) (entities.TenantMembership, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := memberKey(tenantID, userID)
	membership, ok := s.members[key]
	if !ok {
		return entities.TenantMembership{}, false, nil
	}
	membership.Role = role
	s.members[key] = membership
	return membership, true, nil
}

func (s *Store) DeleteTenantMember(_ context.Context, tenantID string, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.members, memberKey(tenantID, userID))
	return nil
}

func (s *Store) GetProjectTenant(_ context.Context, projectID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tenantID, ok := s.projectTenants[projectID]
	return tenantID, ok, nil
}

func (s *Store) GetProjectMemberRole(_ context.Context, projectID string, userID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	role, ok := s.projectRoles[projectID+"/"+userID]
	return role, ok, nil
}

func (s *Store) FindUserIDByEmail(_ context.Context, email string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.usersByEmail[email]
	return userID, ok, nil
}

func (s *Store) Now() time.Time { return time.Now().UTC() }

// SeedProject registers a project and its owning tenant for access checks.
func (s *Store) SeedProject(projectID string, tenantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projectTenants[projectID] = tenantID
}

// SeedProjectMember registers an explicit project role for a user.
func (s *Store) SeedProjectMember(projectID string, userID string, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projectRoles[projectID+"/"+userID] = role
}

// SeedUser registers an email for directory lookups.
func (s *Store) SeedUser(email string, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usersByEmail[email] = userID
}
