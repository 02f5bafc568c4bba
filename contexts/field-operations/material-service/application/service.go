package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fieldops/contexts/field-operations/material-service/domain/entities"
	domainerrors "fieldops/contexts/field-operations/material-service/domain/errors"
	domainservices "fieldops/contexts/field-operations/material-service/domain/services"
	"fieldops/contexts/field-operations/material-service/ports"
	"fieldops/internal/shared/ledger"
)

const (
	StockIn  = "in"
	StockOut = "out"
)

// StockConvention is the polarity pair used by every material stock ledger.
var StockConvention = ledger.Convention{Increase: StockIn, Decrease: StockOut}

type Service struct {
	Repo   ports.Repository
	Stock  ledger.Engine
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// CreateMasterMaterial adds a catalog entry for the tenant.
func (s Service) CreateMasterMaterial(ctx context.Context, tenantID string, name string, unit string) (entities.MasterMaterial, error) {
	tenantID = strings.TrimSpace(tenantID)
	name = strings.TrimSpace(name)
	if tenantID == "" || name == "" {
		return entities.MasterMaterial{}, domainerrors.ErrInvalidRequest
	}
	if !domainservices.IsAllowedUnit(unit) {
		return entities.MasterMaterial{}, domainerrors.ErrInvalidUnit
	}

	materialID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.MasterMaterial{}, err
	}
	now := s.now()
	material := entities.MasterMaterial{
		ID:        materialID,
		TenantID:  tenantID,
		Name:      name,
		Unit:      unit,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.CreateMasterMaterial(ctx, material); err != nil {
		return entities.MasterMaterial{}, err
	}

	ResolveLogger(s.Logger).Info("master material created",
		"event", "master_material_created",
		"module", "field-operations/material-service",
		"layer", "application",
		"master_material_id", materialID,
		"tenant_id", tenantID,
	)
	return material, nil
}

func (s Service) GetMasterMaterial(ctx context.Context, materialID string, tenantID string) (entities.MasterMaterial, error) {
	material, found, err := s.Repo.GetMasterMaterial(ctx, strings.TrimSpace(materialID), strings.TrimSpace(tenantID))
	if err != nil {
		return entities.MasterMaterial{}, err
	}
	if !found {
		return entities.MasterMaterial{}, domainerrors.ErrMasterMaterialNotFound
	}
	return material, nil
}

func (s Service) ListMasterMaterials(ctx context.Context, tenantID string) ([]entities.MasterMaterial, error) {
	return s.Repo.ListMasterMaterials(ctx, strings.TrimSpace(tenantID))
}

func (s Service) UpdateMasterMaterial(ctx context.Context, materialID string, tenantID string, update ports.MasterMaterialUpdate) (entities.MasterMaterial, error) {
	if update.Unit != nil && !domainservices.IsAllowedUnit(*update.Unit) {
		return entities.MasterMaterial{}, domainerrors.ErrInvalidUnit
	}
	material, found, err := s.Repo.UpdateMasterMaterial(ctx, strings.TrimSpace(materialID), strings.TrimSpace(tenantID), update, s.now())
	if err != nil {
		return entities.MasterMaterial{}, err
	}
	if !found {
		return entities.MasterMaterial{}, domainerrors.ErrMasterMaterialNotFound
	}
	return material, nil
}

// CreateMaterialInput creates either from the master catalog (name and unit
// copied from the master entry) or free-form with an explicit name and unit.
type CreateMaterialInput struct {
	MasterMaterialID string
	Name             string
	Unit             string
}

func (s Service) CreateMaterial(ctx context.Context, projectID string, tenantID string, input CreateMaterialInput) (entities.Material, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Material{}, domainerrors.ErrInvalidRequest
	}

	name := strings.TrimSpace(input.Name)
	unit := input.Unit
	masterID := strings.TrimSpace(input.MasterMaterialID)
	if masterID != "" {
		master, found, err := s.Repo.GetMasterMaterial(ctx, masterID, strings.TrimSpace(tenantID))
		if err != nil {
			return entities.Material{}, err
		}
		if !found {
			return entities.Material{}, domainerrors.ErrMasterMaterialNotFound
		}
		name = master.Name
		unit = master.Unit
	} else {
		if name == "" {
			return entities.Material{}, domainerrors.ErrInvalidRequest
		}
		if !domainservices.IsAllowedUnit(unit) {
			return entities.Material{}, domainerrors.ErrInvalidUnit
		}
	}

	materialID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Material{}, err
	}
	now := s.now()
	material := entities.Material{
		ID:               materialID,
		ProjectID:        projectID,
		MasterMaterialID: masterID,
		Name:             name,
		Unit:             unit,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Repo.CreateMaterial(ctx, material); err != nil {
		return entities.Material{}, err
	}

	ResolveLogger(s.Logger).Info("material created",
		"event", "material_created",
		"module", "field-operations/material-service",
		"layer", "application",
		"material_id", materialID,
		"project_id", projectID,
	)
	return material, nil
}

func (s Service) GetMaterial(ctx context.Context, materialID string, projectID string) (entities.Material, error) {
	material, found, err := s.Repo.GetMaterial(ctx, strings.TrimSpace(materialID), strings.TrimSpace(projectID))
	if err != nil {
		return entities.Material{}, err
	}
	if !found {
		return entities.Material{}, domainerrors.ErrMaterialNotFound
	}
	return material, nil
}

func (s Service) ListMaterials(ctx context.Context, projectID string) ([]entities.Material, error) {
	return s.Repo.ListMaterials(ctx, strings.TrimSpace(projectID))
}

func (s Service) UpdateMaterial(ctx context.Context, materialID string, projectID string, update ports.MaterialUpdate) (entities.Material, error) {
	if update.Unit != nil && !domainservices.IsAllowedUnit(*update.Unit) {
		return entities.Material{}, domainerrors.ErrInvalidUnit
	}
	material, found, err := s.Repo.UpdateMaterial(ctx, strings.TrimSpace(materialID), strings.TrimSpace(projectID), update, s.now())
	if err != nil {
		return entities.Material{}, err
	}
	if !found {
		return entities.Material{}, domainerrors.ErrMaterialNotFound
	}
	return material, nil
}

func (s Service) DeleteMaterial(ctx context.Context, materialID string, projectID string) error {
	return s.Repo.DeleteMaterial(ctx, strings.TrimSpace(materialID), strings.TrimSpace(projectID))
}

// AddStockEntryInput carries one in/out movement for a material.
type AddStockEntryInput struct {
	Polarity   string
	Quantity   decimal.Decimal
	Notes      string
	ReceiptRef string
	CreatedBy  string
}

// AddStockEntry appends a movement to the material's ledger after confirming
// the material belongs to the project.
func (s Service) AddStockEntry(ctx context.Context, materialID string, projectID string, input AddStockEntryInput) (ledger.Entry, error) {
	if _, err := s.GetMaterial(ctx, materialID, projectID); err != nil {
		return ledger.Entry{}, err
	}
	return s.Stock.Append(ctx, ledger.AppendInput{
		SubjectID:   strings.TrimSpace(materialID),
		Polarity:    input.Polarity,
		Amount:      input.Quantity,
		Notes:       input.Notes,
		EvidenceRef: input.ReceiptRef,
		CreatedBy:   input.CreatedBy,
	})
}

func (s Service) StockHistory(ctx context.Context, materialID string, projectID string) ([]ledger.Entry, error) {
	if _, err := s.GetMaterial(ctx, materialID, projectID); err != nil {
		return nil, err
	}
	return s.Stock.History(ctx, materialID)
}

func (s Service) StockBalance(ctx context.Context, materialID string, projectID string) (decimal.Decimal, error) {
	if _, err := s.GetMaterial(ctx, materialID, projectID); err != nil {
		return decimal.Zero, err
	}
	return s.Stock.Balance(ctx, materialID)
}

// MaterialWithBalance pairs a material with its recomputed stock balance.
type MaterialWithBalance struct {
	Material entities.Material
	Balance  decimal.Decimal
}

func (s Service) ListMaterialsWithBalances(ctx context.Context, projectID string) ([]MaterialWithBalance, error) {
	materials, err := s.ListMaterials(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := make([]MaterialWithBalance, 0, len(materials))
	for _, material := range materials {
		balance, err := s.Stock.Balance(ctx, material.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, MaterialWithBalance{Material: material, Balance: balance})
	}
	return out, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
