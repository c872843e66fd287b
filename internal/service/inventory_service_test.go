package service_test

import (
	"context"
	"testing"

	"github.com/ReponseBlaise/Preferred-System/internal/apierror"
	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildInventorySvc() (service.InventoryService, *stubInventoryRepo, *stubExpenseRepo, *stubProjectRepo) {
	inventoryRepo := newStubInventoryRepo()
	expenseRepo := &stubExpenseRepo{}
	projectRepo := newStubProjectRepo()
	svc := service.NewInventoryService(inventoryRepo, expenseRepo, projectRepo, testAudit())
	return svc, inventoryRepo, expenseRepo, projectRepo
}

func TestCreateInventoryItem_TotalValueComputed(t *testing.T) {
	svc, repo, _, projectRepo := buildInventorySvc()
	p := seedProject(projectRepo, "Warehouse Extension", "WH-01")

	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateInventoryItemRequest{
		ProjectID: p.ID.String(),
		ItemName:  "Cement 50kg",
		Quantity:  decimal.NewFromInt(40),
		Unit:      "bag",
		UnitPrice: decimal.NewFromInt(12500),
		Category:  "Construction",
	})
	require.NoError(t, err)
	assert.Equal(t, "500000", resp.TotalValue.String())

	stored, err := repo.FindByID(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, "500000", stored.TotalValue.String())
}

func TestCreateInventoryItem_UnknownCategory(t *testing.T) {
	svc, _, _, projectRepo := buildInventorySvc()
	p := seedProject(projectRepo, "Warehouse Extension", "WH-01")

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateInventoryItemRequest{
		ProjectID: p.ID.String(),
		ItemName:  "Cement 50kg",
		Quantity:  decimal.NewFromInt(1),
		Unit:      "bag",
		UnitPrice: decimal.NewFromInt(12500),
		Category:  "Groceries",
	})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindValidation, apiErr.Kind)
}

func TestCreateInventoryItem_UnknownProject(t *testing.T) {
	svc, _, _, _ := buildInventorySvc()

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateInventoryItemRequest{
		ProjectID: uuid.New().String(),
		ItemName:  "Cement 50kg",
		Quantity:  decimal.NewFromInt(1),
		Unit:      "bag",
		UnitPrice: decimal.NewFromInt(12500),
		Category:  "Construction",
	})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindNotFound, apiErr.Kind)
}

func TestUpdateInventoryItem_RecomputesTotal(t *testing.T) {
	svc, _, _, projectRepo := buildInventorySvc()
	p := seedProject(projectRepo, "Warehouse Extension", "WH-01")

	created, err := svc.Create(context.Background(), uuid.New(), dto.CreateInventoryItemRequest{
		ProjectID: p.ID.String(),
		ItemName:  "Rebar 12mm",
		Quantity:  decimal.NewFromInt(100),
		Unit:      "pcs",
		UnitPrice: decimal.NewFromInt(3000),
		Category:  "Construction",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), uuid.New(), uuid.MustParse(created.ID), dto.UpdateInventoryItemRequest{
		ItemName:  "Rebar 12mm",
		Quantity:  decimal.NewFromInt(60),
		Unit:      "pcs",
		UnitPrice: decimal.NewFromInt(3500),
		Category:  "Construction",
	})
	require.NoError(t, err)
	assert.Equal(t, "210000", updated.TotalValue.String())
}

func TestCreateExpense_Validation(t *testing.T) {
	svc, _, expenseRepo, projectRepo := buildInventorySvc()
	p := seedProject(projectRepo, "Warehouse Extension", "WH-01")

	resp, err := svc.CreateExpense(context.Background(), uuid.New(), dto.CreateExpenseRequest{
		ProjectID:   p.ID.String(),
		ExpenseType: "transport",
		Amount:      decimal.NewFromInt(25000),
		ExpenseDate: "2026-08-20",
	})
	require.NoError(t, err)
	assert.Equal(t, "transport", resp.ExpenseType)
	assert.Len(t, expenseRepo.expenses, 1)

	_, err = svc.CreateExpense(context.Background(), uuid.New(), dto.CreateExpenseRequest{
		ProjectID:   p.ID.String(),
		ExpenseType: "bribes",
		Amount:      decimal.NewFromInt(1000),
		ExpenseDate: "2026-08-20",
	})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindValidation, apiErr.Kind)

	_, err = svc.CreateExpense(context.Background(), uuid.New(), dto.CreateExpenseRequest{
		ProjectID:   p.ID.String(),
		ExpenseType: "fees",
		Amount:      decimal.NewFromInt(-5),
		ExpenseDate: "2026-08-20",
	})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindValidation, apiErr.Kind)
}
