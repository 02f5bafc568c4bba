package ports

import (
	"context"
	"time"

	"fieldops/contexts/field-operations/material-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// MasterMaterialUpdate carries optional catalog fields; nil means unchanged.
type MasterMaterialUpdate struct {
	Name *string
	Unit *string
}

// MaterialUpdate carries optional material fields; nil means unchanged.
type MaterialUpdate struct {
	Name *string
	Unit *string
}

// Repository is the persistence boundary for the catalog and the project
// materials. Stock entries go through the shared ledger store instead.
type Repository interface {
	CreateMasterMaterial(ctx context.Context, material entities.MasterMaterial) error
	GetMasterMaterial(ctx context.Context, materialID string, tenantID string) (entities.MasterMaterial, bool, error)
	ListMasterMaterials(ctx context.Context, tenantID string) ([]entities.MasterMaterial, error)
	UpdateMasterMaterial(ctx context.Context, materialID string, tenantID string, update MasterMaterialUpdate, updatedAt time.Time) (entities.MasterMaterial, bool, error)

	CreateMaterial(ctx context.Context, material entities.Material) error
	GetMaterial(ctx context.Context, materialID string, projectID string) (entities.Material, bool, error)
	ListMaterials(ctx context.Context, projectID string) ([]entities.Material, error)
	UpdateMaterial(ctx context.Context, materialID string, projectID string, update MaterialUpdate, updatedAt time.Time) (entities.Material, bool, error)
	DeleteMaterial(ctx context.Context, materialID string, projectID string) error
}
