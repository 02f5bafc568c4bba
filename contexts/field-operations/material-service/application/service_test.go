package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fieldops/contexts/field-operations/material-service/adapters/memory"
	domainerrors "fieldops/contexts/field-operations/material-service/domain/errors"
	"fieldops/contexts/field-operations/material-service/ports"
	"fieldops/internal/shared/ledger"
)

type stepClock struct {
	current time.Time
}

func (c *stepClock) Now() time.Time {
	c.current = c.current.Add(time.Second)
	return c.current
}

type seqIDGen struct {
	next int
}

func (g *seqIDGen) NewID(context.Context) (string, error) {
	g.next++
	return fmt.Sprintf("id-%03d", g.next), nil
}

func newTestService() Service {
	store := memory.NewStore()
	clock := &stepClock{current: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
	idGen := &seqIDGen{}
	return Service{
		Repo: store,
		Stock: ledger.Engine{
			Convention: StockConvention,
			Store:      store,
			Clock:      clock,
			IDGen:      idGen,
		},
		Clock: clock,
		IDGen: idGen,
	}
}

func TestCreateMasterMaterialValidatesUnit(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	if _, err := service.CreateMasterMaterial(ctx, "tenant-a", "Cement", "sacks"); !errors.Is(err, domainerrors.ErrInvalidUnit) {
		t.Fatalf("expected ErrInvalidUnit, got %v", err)
	}

	master, err := service.CreateMasterMaterial(ctx, "tenant-a", "Cement", "bags")
	if err != nil {
		t.Fatalf("CreateMasterMaterial: %v", err)
	}
	if master.Unit != "bags" || master.TenantID != "tenant-a" {
		t.Fatalf("unexpected master %+v", master)
	}
}

func TestMasterMaterialScopedToTenant(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	master, err := service.CreateMasterMaterial(ctx, "tenant-a", "Rebar", "tonnes")
	if err != nil {
		t.Fatalf("CreateMasterMaterial: %v", err)
	}

	if _, err := service.GetMasterMaterial(ctx, master.ID, "tenant-b"); !errors.Is(err, domainerrors.ErrMasterMaterialNotFound) {
		t.Fatalf("cross-tenant get: expected ErrMasterMaterialNotFound, got %v", err)
	}

	listed, err := service.ListMasterMaterials(ctx, "tenant-a")
	if err != nil {
		t.Fatalf("ListMasterMaterials: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != master.ID {
		t.Fatalf("unexpected catalog %+v", listed)
	}
}

func TestCreateMaterialFromMasterCopiesNameAndUnit(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	master, err := service.CreateMasterMaterial(ctx, "tenant-a", "Sand", "cubic m")
	if err != nil {
		t.Fatalf("CreateMasterMaterial: %v", err)
	}

	material, err := service.CreateMaterial(ctx, "project-1", "tenant-a", CreateMaterialInput{
		MasterMaterialID: master.ID,
		Name:             "ignored",
		Unit:             "ignored",
	})
	if err != nil {
		t.Fatalf("CreateMaterial: %v", err)
	}
	if material.Name != "Sand" || material.Unit != "cubic m" || material.MasterMaterialID != master.ID {
		t.Fatalf("master fields not copied: %+v", material)
	}

	if _, err := service.CreateMaterial(ctx, "project-1", "tenant-a", CreateMaterialInput{MasterMaterialID: "missing"}); !errors.Is(err, domainerrors.ErrMasterMaterialNotFound) {
		t.Fatalf("unknown master: expected ErrMasterMaterialNotFound, got %v", err)
	}
}

func TestCreateFreeFormMaterialValidatesUnit(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	if _, err := service.CreateMaterial(ctx, "project-1", "tenant-a", CreateMaterialInput{Name: "Paint", Unit: "buckets"}); !errors.Is(err, domainerrors.ErrInvalidUnit) {
		t.Fatalf("expected ErrInvalidUnit, got %v", err)
	}
	if _, err := service.CreateMaterial(ctx, "project-1", "tenant-a", CreateMaterialInput{Unit: "kg"}); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("blank name: expected ErrInvalidRequest, got %v", err)
	}

	material, err := service.CreateMaterial(ctx, "project-1", "tenant-a", CreateMaterialInput{Name: "Paint", Unit: "L"})
	if err != nil {
		t.Fatalf("CreateMaterial: %v", err)
	}
	if material.MasterMaterialID != "" {
		t.Fatalf("free-form material should have no master id: %+v", material)
	}
}

func TestListMaterialsOrderedByCreation(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	first, err := service.CreateMaterial(ctx, "project-1", "tenant-a", CreateMaterialInput{Name: "Bricks", Unit: "pieces"})
	if err != nil {
		t.Fatalf("CreateMaterial: %v", err)
	}
	second, err := service.CreateMaterial(ctx, "project-1", "tenant-a", CreateMaterialInput{Name: "Gravel", Unit: "tonnes"})
	if err != nil {
		t.Fatalf("CreateMaterial: %v", err)
	}

	materials, err := service.ListMaterials(ctx, "project-1")
	if err != nil {
		t.Fatalf("ListMaterials: %v", err)
	}
	if len(materials) != 2 || materials[0].ID != first.ID || materials[1].ID != second.ID {
		t.Fatalf("expected creation order, got %+v", materials)
	}
}

func TestStockEntriesAndBalance(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	material, err := service.CreateMaterial(ctx, "project-1", "tenant-a", CreateMaterialInput{Name: "Cement", Unit: "bags"})
	if err != nil {
		t.Fatalf("CreateMaterial: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := service.AddStockEntry(ctx, material.ID, "project-1", AddStockEntryInput{
			Polarity: StockIn,
			Quantity: decimal.RequireFromString("0.10"),
		}); err != nil {
			t.Fatalf("AddStockEntry in: %v", err)
		}
	}
	if _, err := service.AddStockEntry(ctx, material.ID, "project-1", AddStockEntryInput{
		Polarity: StockOut,
		Quantity: decimal.RequireFromString("0.10"),
	}); err != nil {
		t.Fatalf("AddStockEntry out: %v", err)
	}

	balance, err := service.StockBalance(ctx, material.ID, "project-1")
	if err != nil {
		t.Fatalf("StockBalance: %v", err)
	}
	if !balance.Equal(decimal.RequireFromString("0.20")) {
		t.Fatalf("expected exactly 0.20, got %s", balance.String())
	}

	history, err := service.StockHistory(ctx, material.ID, "project-1")
	if err != nil {
		t.Fatalf("StockHistory: %v", err)
	}
	if len(history) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].CreatedAt.Before(history[i-1].CreatedAt) {
			t.Fatalf("history out of order at %d", i)
		}
	}
}

func TestStockOperationsRequireMaterialInProject(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	material, err := service.CreateMaterial(ctx, "project-1", "tenant-a", CreateMaterialInput{Name: "Cement", Unit: "bags"})
	if err != nil {
		t.Fatalf("CreateMaterial: %v", err)
	}

	if _, err := service.AddStockEntry(ctx, material.ID, "project-2", AddStockEntryInput{
		Polarity: StockIn,
		Quantity: decimal.NewFromInt(1),
	}); !errors.Is(err, domainerrors.ErrMaterialNotFound) {
		t.Fatalf("wrong project append: expected ErrMaterialNotFound, got %v", err)
	}
	if _, err := service.StockBalance(ctx, material.ID, "project-2"); !errors.Is(err, domainerrors.ErrMaterialNotFound) {
		t.Fatalf("wrong project balance: expected ErrMaterialNotFound, got %v", err)
	}
	if _, err := service.AddStockEntry(ctx, material.ID, "project-1", AddStockEntryInput{
		Polarity: "transfer",
		Quantity: decimal.NewFromInt(1),
	}); !errors.Is(err, ledger.ErrUnknownPolarity) {
		t.Fatalf("bad polarity: expected ErrUnknownPolarity, got %v", err)
	}
}

func TestListMaterialsWithBalances(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	cement, err := service.CreateMaterial(ctx, "project-1", "tenant-a", CreateMaterialInput{Name: "Cement", Unit: "bags"})
	if err != nil {
		t.Fatalf("CreateMaterial: %v", err)
	}
	if _, err := service.CreateMaterial(ctx, "project-1", "tenant-a", CreateMaterialInput{Name: "Sand", Unit: "cubic m"}); err != nil {
		t.Fatalf("CreateMaterial: %v", err)
	}
	if _, err := service.AddStockEntry(ctx, cement.ID, "project-1", AddStockEntryInput{
		Polarity: StockIn,
		Quantity: decimal.RequireFromString("12.5"),
	}); err != nil {
		t.Fatalf("AddStockEntry: %v", err)
	}

	listed, err := service.ListMaterialsWithBalances(ctx, "project-1")
	if err != nil {
		t.Fatalf("ListMaterialsWithBalances: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(listed))
	}
	if !listed[0].Balance.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("cement balance: got %s", listed[0].Balance.String())
	}
	if !listed[1].Balance.IsZero() {
		t.Fatalf("untouched material should have zero balance, got %s", listed[1].Balance.String())
	}
}

func TestUpdateAndDeleteMaterial(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	material, err := service.CreateMaterial(ctx, "project-1", "tenant-a", CreateMaterialInput{Name: "Pipe", Unit: "m"})
	if err != nil {
		t.Fatalf("CreateMaterial: %v", err)
	}

	badUnit := "spools"
	if _, err := service.UpdateMaterial(ctx, material.ID, "project-1", ports.MaterialUpdate{Unit: &badUnit}); !errors.Is(err, domainerrors.ErrInvalidUnit) {
		t.Fatalf("bad unit update: expected ErrInvalidUnit, got %v", err)
	}

	newUnit := "rolls"
	updated, err := service.UpdateMaterial(ctx, material.ID, "project-1", ports.MaterialUpdate{Unit: &newUnit})
	if err != nil {
		t.Fatalf("UpdateMaterial: %v", err)
	}
	if updated.Unit != "rolls" || updated.Name != "Pipe" {
		t.Fatalf("unexpected update result %+v", updated)
	}

	if err := service.DeleteMaterial(ctx, material.ID, "project-1"); err != nil {
		t.Fatalf("DeleteMaterial: %v", err)
	}
	if _, err := service.GetMaterial(ctx, material.ID, "project-1"); !errors.Is(err, domainerrors.ErrMaterialNotFound) {
		t.Fatalf("expected ErrMaterialNotFound after delete, got %v", err)
	}
}
