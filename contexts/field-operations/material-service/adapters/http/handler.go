package httpadapter

import (
	"context"
	"log/slog"

	"fieldops/contexts/field-operations/material-service/application"
	"fieldops/contexts/field-operations/material-service/domain/entities"
	"fieldops/contexts/field-operations/material-service/ports"
	httptransport "fieldops/contexts/field-operations/material-service/transport/http"
	"fieldops/internal/shared/ledger"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateMasterMaterialHandler(ctx context.Context, tenantID string, request httptransport.CreateMasterMaterialRequest) (httptransport.MasterMaterialDTO, error) {
	material, err := h.Service.CreateMasterMaterial(ctx, tenantID, request.Name, request.Unit)
	if err != nil {
		return httptransport.MasterMaterialDTO{}, err
	}
	return masterMaterialDTO(material), nil
}

func (h Handler) GetMasterMaterialHandler(ctx context.Context, materialID string, tenantID string) (httptransport.MasterMaterialDTO, error) {
	material, err := h.Service.GetMasterMaterial(ctx, materialID, tenantID)
	if err != nil {
		return httptransport.MasterMaterialDTO{}, err
	}
	return masterMaterialDTO(material), nil
}

func (h Handler) ListMasterMaterialsHandler(ctx context.Context, tenantID string) (httptransport.ListMasterMaterialsResponse, error) {
	materials, err := h.Service.ListMasterMaterials(ctx, tenantID)
	if err != nil {
		return httptransport.ListMasterMaterialsResponse{}, err
	}
	out := httptransport.ListMasterMaterialsResponse{Materials: make([]httptransport.MasterMaterialDTO, 0, len(materials))}
	for _, material := range materials {
		out.Materials = append(out.Materials, masterMaterialDTO(material))
	}
	return out, nil
}

func (h Handler) UpdateMasterMaterialHandler(ctx context.Context, materialID string, tenantID string, request httptransport.UpdateMasterMaterialRequest) (httptransport.MasterMaterialDTO, error) {
	material, err := h.Service.UpdateMasterMaterial(ctx, materialID, tenantID, ports.MasterMaterialUpdate{
		Name: request.Name,
		Unit: request.Unit,
	})
	if err != nil {
		return httptransport.MasterMaterialDTO{}, err
	}
	return masterMaterialDTO(material), nil
}

func (h Handler) CreateMaterialHandler(ctx context.Context, projectID string, tenantID string, request httptransport.CreateMaterialRequest) (httptransport.MaterialDTO, error) {
	material, err := h.Service.CreateMaterial(ctx, projectID, tenantID, application.CreateMaterialInput{
		MasterMaterialID: request.MasterMaterialID,
		Name:             request.Name,
		Unit:             request.Unit,
	})
	if err != nil {
		return httptransport.MaterialDTO{}, err
	}
	return materialDTO(material), nil
}

func (h Handler) ListMaterialsHandler(ctx context.Context, projectID string) (httptransport.ListMaterialsResponse, error) {
	materials, err := h.Service.ListMaterials(ctx, projectID)
	if err != nil {
		return httptransport.ListMaterialsResponse{}, err
	}
	out := httptransport.ListMaterialsResponse{Materials: make([]httptransport.MaterialDTO, 0, len(materials))}
	for _, material := range materials {
		out.Materials = append(out.Materials, materialDTO(material))
	}
	return out, nil
}

func (h Handler) ListMaterialsWithBalancesHandler(ctx context.Context, projectID string) (httptransport.ListMaterialsWithBalancesResponse, error) {
	materials, err := h.Service.ListMaterialsWithBalances(ctx, projectID)
	if err != nil {
		return httptransport.ListMaterialsWithBalancesResponse{}, err
	}
	out := httptransport.ListMaterialsWithBalancesResponse{Materials: make([]httptransport.MaterialWithBalanceDTO, 0, len(materials))}
	for _, item := range materials {
		out.Materials = append(out.Materials, httptransport.MaterialWithBalanceDTO{
			MaterialDTO: materialDTO(item.Material),
			Balance:     item.Balance,
		})
	}
	return out, nil
}

func (h Handler) UpdateMaterialHandler(ctx context.Context, materialID string, projectID string, request httptransport.UpdateMaterialRequest) (httptransport.MaterialDTO, error) {
	material, err := h.Service.UpdateMaterial(ctx, materialID, projectID, ports.MaterialUpdate{
		Name: request.Name,
		Unit: request.Unit,
	})
	if err != nil {
		return httptransport.MaterialDTO{}, err
	}
	return materialDTO(material), nil
}

func (h Handler) DeleteMaterialHandler(ctx context.Context, materialID string, projectID string) error {
	return h.Service.DeleteMaterial(ctx, materialID, projectID)
}

func (h Handler) AddStockEntryHandler(ctx context.Context, materialID string, projectID string, createdBy string, request httptransport.AddStockEntryRequest) (httptransport.StockEntryDTO, error) {
	entry, err := h.Service.AddStockEntry(ctx, materialID, projectID, application.AddStockEntryInput{
		Polarity:   request.Polarity,
		Quantity:   request.Quantity,
		Notes:      request.Notes,
		ReceiptRef: request.ReceiptRef,
		CreatedBy:  createdBy,
	})
	if err != nil {
		return httptransport.StockEntryDTO{}, err
	}
	return stockEntryDTO(entry), nil
}

func (h Handler) StockHistoryHandler(ctx context.Context, materialID string, projectID string) (httptransport.StockHistoryResponse, error) {
	entries, err := h.Service.StockHistory(ctx, materialID, projectID)
	if err != nil {
		return httptransport.StockHistoryResponse{}, err
	}
	out := httptransport.StockHistoryResponse{Entries: make([]httptransport.StockEntryDTO, 0, len(entries))}
	for _, entry := range entries {
		out.Entries = append(out.Entries, stockEntryDTO(entry))
	}
	return out, nil
}

func (h Handler) StockBalanceHandler(ctx context.Context, materialID string, projectID string) (httptransport.StockBalanceResponse, error) {
	balance, err := h.Service.StockBalance(ctx, materialID, projectID)
	if err != nil {
		return httptransport.StockBalanceResponse{}, err
	}
	return httptransport.StockBalanceResponse{MaterialID: materialID, Balance: balance}, nil
}

func masterMaterialDTO(material entities.MasterMaterial) httptransport.MasterMaterialDTO {
	return httptransport.MasterMaterialDTO{
		ID:        material.ID,
		TenantID:  material.TenantID,
		Name:      material.Name,
		Unit:      material.Unit,
		CreatedAt: material.CreatedAt,
		UpdatedAt: material.UpdatedAt,
	}
}

func materialDTO(material entities.Material) httptransport.MaterialDTO {
	return httptransport.MaterialDTO{
		ID:               material.ID,
		ProjectID:        material.ProjectID,
		MasterMaterialID: material.MasterMaterialID,
		Name:             material.Name,
		Unit:             material.Unit,
		CreatedAt:        material.CreatedAt,
		UpdatedAt:        material.UpdatedAt,
	}
}

func stockEntryDTO(entry ledger.Entry) httptransport.StockEntryDTO {
	return httptransport.StockEntryDTO{
		ID:         entry.EntryID,
		MaterialID: entry.SubjectID,
		Polarity:   entry.Polarity,
		Quantity:   entry.Amount,
		Notes:      entry.Notes,
		ReceiptRef: entry.EvidenceRef,
		CreatedBy:  entry.CreatedBy,
		CreatedAt:  entry.CreatedAt,
	}
}
