package dto

import "github.com/shopspring/decimal"

// EmployeeFilter is bound from the query string of GET /v1/employees/project/:project_id.
type EmployeeFilter struct {
	IsActive string `form:"is_active"` // "true" | "false" | "" (all)
	Search   string `form:"search"`
}

type CreateEmployeeRequest struct {
	ProjectID   string          `json:"project_id"   validate:"required,uuid"`
	FullName    string          `json:"full_name"    validate:"required,min=2"`
	Position    string          `json:"position"     validate:"required"`
	PhoneNumber string          `json:"phone_number"`
	RatePerDay  decimal.Decimal `json:"rate_per_day" validate:"required,gt=0"`
}

type UpdateEmployeeRequest struct {
	FullName    string          `json:"full_name"    validate:"required,min=2"`
	Position    string          `json:"position"     validate:"required"`
	PhoneNumber string          `json:"phone_number"`
	RatePerDay  decimal.Decimal `json:"rate_per_day" validate:"required,gt=0"`
}

type EmployeeResponse struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	FullName    string          `json:"full_name"`
	Position    string          `json:"position"`
	PhoneNumber string          `json:"phone_number"`
	RatePerDay  decimal.Decimal `json:"rate_per_day"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   string          `json:"created_at"`
}
