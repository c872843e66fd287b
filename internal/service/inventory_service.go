package service

import (
	"context"
	"time"

	"github.com/ReponseBlaise/Preferred-System/internal/apierror"
	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/model"
	"github.com/ReponseBlaise/Preferred-System/internal/repository"

	"github.com/google/uuid"
)

type InventoryService interface {
	Create(ctx context.Context, actorID uuid.UUID, req dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, filter dto.InventoryFilter) ([]dto.InventoryItemResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error

	CreateExpense(ctx context.Context, actorID uuid.UUID, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	ListExpenses(ctx context.Context, projectID uuid.UUID, filter dto.ExpenseFilter) ([]dto.ExpenseResponse, error)
}

type inventoryService struct {
	repo        repository.InventoryRepository
	expenseRepo repository.ExpenseRepository
	projectRepo repository.ProjectRepository
	audit       AuditService
}

func NewInventoryService(
	repo repository.InventoryRepository,
	expenseRepo repository.ExpenseRepository,
	projectRepo repository.ProjectRepository,
	audit AuditService,
) InventoryService {
	return &inventoryService{repo: repo, expenseRepo: expenseRepo, projectRepo: projectRepo, audit: audit}
}

func (s *inventoryService) Create(ctx context.Context, actorID uuid.UUID, req dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return nil, apierror.Validation("invalid project_id")
	}
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, apierror.NotFound("project not found")
	}
	if !model.ValidMaterialCategory(req.Category) {
		return nil, apierror.Validation("invalid category")
	}
	if req.Quantity.IsNegative() || req.UnitPrice.IsNegative() {
		return nil, apierror.Validation("quantity and unit_price must not be negative")
	}

	item := &model.InventoryItem{
		ProjectID:   projectID,
		ItemName:    req.ItemName,
		Description: req.Description,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		UnitPrice:   req.UnitPrice,
		// total_value is derived server-side, clients never send it
		TotalValue: req.Quantity.Mul(req.UnitPrice),
		Category:   req.Category,
		CreatedBy:  &actorID,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, apierror.Internal("failed to create inventory item")
	}
	s.audit.Record(ctx, &actorID, model.AuditCreate, "inventory_items", &item.ID)
	return inventoryItemToResponse(item), nil
}

func (s *inventoryService) ListByProject(ctx context.Context, projectID uuid.UUID, filter dto.InventoryFilter) ([]dto.InventoryItemResponse, error) {
	items, err := s.repo.ListByProject(ctx, projectID, filter)
	if err != nil {
		return nil, apierror.Internal("failed to list inventory")
	}
	resp := make([]dto.InventoryItemResponse, len(items))
	for i := range items {
		resp[i] = *inventoryItemToResponse(&items[i])
	}
	return resp, nil
}

func (s *inventoryService) Update(ctx context.Context, actorID, id uuid.UUID, req dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("inventory item not found")
	}
	if !model.ValidMaterialCategory(req.Category) {
		return nil, apierror.Validation("invalid category")
	}
	if req.Quantity.IsNegative() || req.UnitPrice.IsNegative() {
		return nil, apierror.Validation("quantity and unit_price must not be negative")
	}

	item.ItemName = req.ItemName
	item.Description = req.Description
	item.Quantity = req.Quantity
	item.Unit = req.Unit
	item.UnitPrice = req.UnitPrice
	item.TotalValue = req.Quantity.Mul(req.UnitPrice)
	item.Category = req.Category
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, apierror.Internal("failed to update inventory item")
	}
	s.audit.Record(ctx, &actorID, model.AuditUpdate, "inventory_items", &item.ID)
	return inventoryItemToResponse(item), nil
}

func (s *inventoryService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("inventory item not found")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Internal("failed to delete inventory item")
	}
	s.audit.Record(ctx, &actorID, model.AuditDelete, "inventory_items", &id)
	return nil
}

func (s *inventoryService) CreateExpense(ctx context.Context, actorID uuid.UUID, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return nil, apierror.Validation("invalid project_id")
	}
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, apierror.NotFound("project not found")
	}
	if !model.ValidExpenseType(req.ExpenseType) {
		return nil, apierror.Validation("invalid expense_type")
	}
	if !req.Amount.IsPositive() {
		return nil, apierror.Validation("amount must be positive")
	}
	expenseDate, err := time.Parse("2006-01-02", req.ExpenseDate)
	if err != nil {
		return nil, apierror.Validation("invalid expense_date")
	}

	expense := &model.Expense{
		ProjectID:   projectID,
		ExpenseType: req.ExpenseType,
		Description: req.Description,
		Amount:      req.Amount,
		ExpenseDate: expenseDate,
		CreatedBy:   &actorID,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, apierror.Internal("failed to create expense")
	}
	s.audit.Record(ctx, &actorID, model.AuditCreate, "expenses", &expense.ID)
	return expenseToResponse(expense), nil
}

func (s *inventoryService) ListExpenses(ctx context.Context, projectID uuid.UUID, filter dto.ExpenseFilter) ([]dto.ExpenseResponse, error) {
	expenses, err := s.expenseRepo.ListByProject(ctx, projectID, filter)
	if err != nil {
		return nil, apierror.Internal("failed to list expenses")
	}
	resp := make([]dto.ExpenseResponse, len(expenses))
	for i := range expenses {
		resp[i] = *expenseToResponse(&expenses[i])
	}
	return resp, nil
}

func inventoryItemToResponse(item *model.InventoryItem) *dto.InventoryItemResponse {
	return &dto.InventoryItemResponse{
		ID:          item.ID.String(),
		ProjectID:   item.ProjectID.String(),
		ItemName:    item.ItemName,
		Description: item.Description,
		Quantity:    item.Quantity,
		Unit:        item.Unit,
		UnitPrice:   item.UnitPrice,
		TotalValue:  item.TotalValue,
		Category:    item.Category,
		CreatedAt:   item.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func expenseToResponse(e *model.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID.String(),
		ProjectID:   e.ProjectID.String(),
		ExpenseType: e.ExpenseType,
		Description: e.Description,
		Amount:      e.Amount,
		ExpenseDate: e.ExpenseDate.Format("2006-01-02"),
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
