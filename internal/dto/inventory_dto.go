package dto

import "github.com/shopspring/decimal"

// InventoryFilter is bound from the query string of GET /v1/inventory.
type InventoryFilter struct {
	ProjectID string `form:"project_id" validate:"required,uuid"`
	Category  string `form:"category"`
	Search    string `form:"search"`
}

type CreateInventoryItemRequest struct {
	ProjectID   string          `json:"project_id" validate:"required,uuid"`
	ItemName    string          `json:"item_name"  validate:"required,min=2"`
	Description *string         `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"   validate:"min=0"`
	Unit        string          `json:"unit"       validate:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"min=0"`
	Category    string          `json:"category"   validate:"required"`
}

type UpdateInventoryItemRequest struct {
	ItemName    string          `json:"item_name"  validate:"required,min=2"`
	Description *string         `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"   validate:"min=0"`
	Unit        string          `json:"unit"       validate:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"min=0"`
	Category    string          `json:"category"   validate:"required"`
}

type InventoryItemResponse struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	ItemName    string          `json:"item_name"`
	Description *string         `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalValue  decimal.Decimal `json:"total_value"`
	Category    string          `json:"category"`
	CreatedAt   string          `json:"created_at"`
}

// ExpenseFilter is bound from the query string of GET /v1/inventory/expenses.
type ExpenseFilter struct {
	ProjectID string `form:"project_id" validate:"required,uuid"`
	Type      string `form:"type"`
	StartDate string `form:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date"   validate:"omitempty,datetime=2006-01-02"`
}

type CreateExpenseRequest struct {
	ProjectID   string          `json:"project_id"   validate:"required,uuid"`
	ExpenseType string          `json:"expense_type" validate:"required,oneof=communication transport ticket fees other"`
	Description *string         `json:"description"`
	Amount      decimal.Decimal `json:"amount"       validate:"required,gt=0"`
	ExpenseDate string          `json:"expense_date" validate:"required,datetime=2006-01-02"`
}

type ExpenseResponse struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	ExpenseType string          `json:"expense_type"`
	Description *string         `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate string          `json:"expense_date"`
	CreatedAt   string          `json:"created_at"`
}
