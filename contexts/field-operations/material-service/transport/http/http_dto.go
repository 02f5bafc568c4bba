package httptransport

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateMasterMaterialRequest struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

type UpdateMasterMaterialRequest struct {
	Name *string `json:"name,omitempty"`
	Unit *string `json:"unit,omitempty"`
}

type MasterMaterialDTO struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListMasterMaterialsResponse struct {
	Materials []MasterMaterialDTO `json:"materials"`
}

type CreateMaterialRequest struct {
	MasterMaterialID string `json:"master_material_id,omitempty"`
	Name             string `json:"name,omitempty"`
	Unit             string `json:"unit,omitempty"`
}

type UpdateMaterialRequest struct {
	Name *string `json:"name,omitempty"`
	Unit *string `json:"unit,omitempty"`
}

type MaterialDTO struct {
	ID               string    `json:"id"`
	ProjectID        string    `json:"project_id"`
	MasterMaterialID string    `json:"master_material_id,omitempty"`
	Name             string    `json:"name"`
	Unit             string    `json:"unit"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ListMaterialsResponse struct {
	Materials []MaterialDTO `json:"materials"`
}

type MaterialWithBalanceDTO struct {
	MaterialDTO
	Balance decimal.Decimal `json:"balance"`
}

type ListMaterialsWithBalancesResponse struct {
	Materials []MaterialWithBalanceDTO `json:"materials"`
}

type AddStockEntryRequest struct {
	Polarity   string          `json:"polarity"`
	Quantity   decimal.Decimal `json:"quantity"`
	Notes      string          `json:"notes,omitempty"`
	ReceiptRef string          `json:"receipt_ref,omitempty"`
}

type StockEntryDTO struct {
	ID         string          `json:"id"`
	MaterialID string          `json:"material_id"`
	Polarity   string          `json:"polarity"`
	Quantity   decimal.Decimal `json:"quantity"`
	Notes      string          `json:"notes,omitempty"`
	ReceiptRef string          `json:"receipt_ref,omitempty"`
	CreatedBy  string          `json:"created_by,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

type StockHistoryResponse struct {
	Entries []StockEntryDTO `json:"entries"`
}

type StockBalanceResponse struct {
	MaterialID string          `json:"material_id"`
	Balance    decimal.Decimal `json:"balance"`
}
