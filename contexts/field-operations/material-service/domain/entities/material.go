package entities

import "time"

// MasterMaterial is a tenant-level catalog entry that project materials can
// be created from.
type MasterMaterial struct {
	ID        string
	TenantID  string
	Name      string
	Unit      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Material is a project-scoped material whose stock is tracked through the
// ledger. MasterMaterialID is empty for free-form materials.
type Material struct {
	ID               string
	ProjectID        string
	MasterMaterialID string
	Name             string
	Unit             string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
