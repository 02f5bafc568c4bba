package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"fieldops/contexts/field-operations/material-service/domain/entities"
	"fieldops/contexts/field-operations/material-service/ports"
	"fieldops/internal/shared/ledger"
)

// Store is an in-memory adapter backing the catalog, the project materials,
// and the stock ledger entries.
type Store struct {
	mu sync.RWMutex

	masters   map[string]entities.MasterMaterial
	materials map[string]entities.Material
	entries   []ledger.Entry
}

func NewStore() *Store {
	return &Store{
		masters:   make(map[string]entities.MasterMaterial),
		materials: make(map[string]entities.Material),
	}
}

func (s *Store) CreateMasterMaterial(_ context.Context, material entities.MasterMaterial) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.masters[material.ID] = material
	return nil
}

func (s *Store) GetMasterMaterial(_ context.Context, materialID string, tenantID string) (entities.MasterMaterial, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	material, ok := s.masters[materialID]
	if !ok || material.TenantID != tenantID {
		return entities.MasterMaterial{}, false, nil
	}
	return material, true, nil
}

func (s *Store) ListMasterMaterials(_ context.Context, tenantID string) ([]entities.MasterMaterial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.MasterMaterial
	for _, material := range s.masters {
		if material.TenantID == tenantID {
			out = append(out, material)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) UpdateMasterMaterial(_ context.Context, materialID string, tenantID string, update ports.MasterMaterialUpdate, updatedAt time.Time) (entities.MasterMaterial, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	material, ok := s.masters[materialID]
	if !ok || material.TenantID != tenantID {
		return entities.MasterMaterial{}, false, nil
	}
	if update.Name != nil {
		material.Name = *update.Name
	}
	if update.Unit != nil {
		material.Unit = *update.Unit
	}
	material.UpdatedAt = updatedAt
	s.masters[materialID] = material
	return material, true, nil
}

func (s *Store) CreateMaterial(_ context.Context, material entities.Material) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.materials[material.ID] = material
	return nil
}

func (s *Store) GetMaterial(_ context.Context, materialID string, projectID string) (entities.Material, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	material, ok := s.materials[materialID]
	if !ok || material.ProjectID != projectID {
		return entities.Material{}, false, nil
	}
	return material, true, nil
}

func (s *Store) ListMaterials(_ context.Context, projectID string) ([]entities.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.Material
	for _, material := range s.materials {
		if material.ProjectID == projectID {
			out = append(out, material)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) UpdateMaterial(_ context.Context, materialID string, projectID string, update ports.MaterialUpdate, updatedAt time.Time) (entities.Material, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	material, ok := s.materials[materialID]
	if !ok || material.ProjectID != projectID {
		return entities.Material{}, false, nil
	}
	if update.Name != nil {
		material.Name = *update.Name
	}
	if update.Unit != nil {
		material.Unit = *update.Unit
	}
	material.UpdatedAt = updatedAt
	s.materials[materialID] = material
	return material, true, nil
}

func (s *Store) DeleteMaterial(_ context.Context, materialID string, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	material, ok := s.materials[materialID]
	if !ok || material.ProjectID != projectID {
		return nil
	}
	delete(s.materials, materialID)
	return nil
}

// AppendEntry satisfies the shared ledger store.
func (s *Store) AppendEntry(_ context.Context, entry ledger.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// ListEntries satisfies the shared ledger store, ascending by creation time.
func (s *Store) ListEntries(_ context.Context, subjectID string) ([]ledger.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []ledger.Entry
	for _, entry := range s.entries {
		if entry.SubjectID == subjectID {
			out = append(out, entry)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) Now() time.Time { return time.Now().UTC() }

func (s *Store) NewID(_ context.Context) (string, error) { return uuid.NewString(), nil }
