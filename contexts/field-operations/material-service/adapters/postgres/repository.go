package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fieldops/contexts/field-operations/material-service/domain/entities"
	"fieldops/contexts/field-operations/material-service/ports"
	"fieldops/internal/shared/ledger"
)

type masterMaterialModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	TenantID  string    `gorm:"column:tenant_id;index"`
	Name      string    `gorm:"column:name"`
	Unit      string    `gorm:"column:unit"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (masterMaterialModel) TableName() string { return "master_materials" }

func (m masterMaterialModel) toEntity() entities.MasterMaterial {
	return entities.MasterMaterial{
		ID:        m.ID,
		TenantID:  m.TenantID,
		Name:      m.Name,
		Unit:      m.Unit,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type materialModel struct {
	ID               string    `gorm:"column:id;primaryKey"`
	ProjectID        string    `gorm:"column:project_id;index"`
	MasterMaterialID string    `gorm:"column:master_material_id"`
	Name             string    `gorm:"column:name"`
	Unit             string    `gorm:"column:unit"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (materialModel) TableName() string { return "materials" }

func (m materialModel) toEntity() entities.Material {
	return entities.Material{
		ID:               m.ID,
		ProjectID:        m.ProjectID,
		MasterMaterialID: m.MasterMaterialID,
		Name:             m.Name,
		Unit:             m.Unit,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

type stockEntryModel struct {
	ID         string          `gorm:"column:id;primaryKey"`
	MaterialID string          `gorm:"column:material_id;index"`
	Polarity   string          `gorm:"column:polarity"`
	Quantity   decimal.Decimal `gorm:"column:quantity;type:numeric(20,6)"`
	Notes      string          `gorm:"column:notes"`
	ReceiptRef string          `gorm:"column:receipt_ref"`
	CreatedBy  string          `gorm:"column:created_by"`
	CreatedAt  time.Time       `gorm:"column:created_at;index"`
}

func (stockEntryModel) TableName() string { return "material_stock_entries" }

// Repository persists the catalog, the project materials, and the stock
// ledger entries. It satisfies both the module repository port and the
// shared ledger store.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) Repository { return Repository{DB: db} }

func (r Repository) CreateMasterMaterial(ctx context.Context, material entities.MasterMaterial) error {
	row := masterMaterialModel{
		ID:        material.ID,
		TenantID:  material.TenantID,
		Name:      material.Name,
		Unit:      material.Unit,
		CreatedAt: material.CreatedAt,
		UpdatedAt: material.UpdatedAt,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert master material: %w", err)
	}
	return nil
}

func (r Repository) GetMasterMaterial(ctx context.Context, materialID string, tenantID string) (entities.MasterMaterial, bool, error) {
	var row masterMaterialModel
	err := r.DB.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", materialID, tenantID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.MasterMaterial{}, false, nil
	}
	if err != nil {
		return entities.MasterMaterial{}, false, fmt.Errorf("select master material: %w", err)
	}
	return row.toEntity(), true, nil
}

func (r Repository) ListMasterMaterials(ctx context.Context, tenantID string) ([]entities.MasterMaterial, error) {
	var rows []masterMaterialModel
	err := r.DB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list master materials: %w", err)
	}
	out := make([]entities.MasterMaterial, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r Repository) UpdateMasterMaterial(ctx context.Context, materialID string, tenantID string, update ports.MasterMaterialUpdate, updatedAt time.Time) (entities.MasterMaterial, bool, error) {
	changes := map[string]any{"updated_at": updatedAt}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.Unit != nil {
		changes["unit"] = *update.Unit
	}
	result := r.DB.WithContext(ctx).
		Model(&masterMaterialModel{}).
		Where("id = ? AND tenant_id = ?", materialID, tenantID).
		Updates(changes)
	if result.Error != nil {
		return entities.MasterMaterial{}, false, fmt.Errorf("update master material: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.MasterMaterial{}, false, nil
	}
	return r.GetMasterMaterial(ctx, materialID, tenantID)
}

func (r Repository) CreateMaterial(ctx context.Context, material entities.Material) error {
	row := materialModel{
		ID:               material.ID,
		ProjectID:        material.ProjectID,
		MasterMaterialID: material.MasterMaterialID,
		Name:             material.Name,
		Unit:             material.Unit,
		CreatedAt:        material.CreatedAt,
		UpdatedAt:        material.UpdatedAt,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

func (r Repository) GetMaterial(ctx context.Context, materialID string, projectID string) (entities.Material, bool, error) {
	var row materialModel
	err := r.DB.WithContext(ctx).
		Where("id = ? AND project_id = ?", materialID, projectID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Material{}, false, nil
	}
	if err != nil {
		return entities.Material{}, false, fmt.Errorf("select material: %w", err)
	}
	return row.toEntity(), true, nil
}

func (r Repository) ListMaterials(ctx context.Context, projectID string) ([]entities.Material, error) {
	var rows []materialModel
	err := r.DB.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	out := make([]entities.Material, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r Repository) UpdateMaterial(ctx context.Context, materialID string, projectID string, update ports.MaterialUpdate, updatedAt time.Time) (entities.Material, bool, error) {
	changes := map[string]any{"updated_at": updatedAt}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.Unit != nil {
		changes["unit"] = *update.Unit
	}
	result := r.DB.WithContext(ctx).
		Model(&materialModel{}).
		Where("id = ? AND project_id = ?", materialID, projectID).
		Updates(changes)
	if result.Error != nil {
		return entities.Material{}, false, fmt.Errorf("update material: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.Material{}, false, nil
	}
	return r.GetMaterial(ctx, materialID, projectID)
}

func (r Repository) DeleteMaterial(ctx context.Context, materialID string, projectID string) error {
	err := r.DB.WithContext(ctx).
		Where("id = ? AND project_id = ?", materialID, projectID).
		Delete(&materialModel{}).Error
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}

// AppendEntry satisfies the shared ledger store.
func (r Repository) AppendEntry(ctx context.Context, entry ledger.Entry) error {
	row := stockEntryModel{
		ID:         entry.EntryID,
		MaterialID: entry.SubjectID,
		Polarity:   entry.Polarity,
		Quantity:   entry.Amount,
		Notes:      entry.Notes,
		ReceiptRef: entry.EvidenceRef,
		CreatedBy:  entry.CreatedBy,
		CreatedAt:  entry.CreatedAt,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert stock entry: %w", err)
	}
	return nil
}

// ListEntries satisfies the shared ledger store, ascending by creation time.
func (r Repository) ListEntries(ctx context.Context, subjectID string) ([]ledger.Entry, error) {
	var rows []stockEntryModel
	err := r.DB.WithContext(ctx).
		Where("material_id = ?", subjectID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	out := make([]ledger.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, ledger.Entry{
			EntryID:     row.ID,
			SubjectID:   row.MaterialID,
			Polarity:    row.Polarity,
			Amount:      row.Quantity,
			Notes:       row.Notes,
			EvidenceRef: row.ReceiptRef,
			CreatedBy:   row.CreatedBy,
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, nil
}
