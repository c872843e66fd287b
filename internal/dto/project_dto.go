package dto

import "github.com/shopspring/decimal"

type CreateProjectRequest struct {
	ProjectName string  `json:"project_name" validate:"required,min=2"`
	ProjectCode string  `json:"project_code" validate:"required,min=2,max=20"`
	Location    string  `json:"location"     validate:"required"`
	Description *string `json:"description"`
}

type AssignUserRequest struct {
	UserID    string `json:"user_id"    validate:"required,uuid"`
	ProjectID string `json:"project_id" validate:"required,uuid"`
}

type ProjectResponse struct {
	ID          string  `json:"id"`
	ProjectName string  `json:"project_name"`
	ProjectCode string  `json:"project_code"`
	Location    string  `json:"location"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
}

// ProjectStatsResponse backs GET /v1/projects/:project_id/stats.
type ProjectStatsResponse struct {
	ProjectID       string          `json:"project_id"`
	ActiveEmployees int64           `json:"active_employees"`
	InventoryValue  decimal.Decimal `json:"inventory_value"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	AttendanceToday int64           `json:"attendance_today"`
}
