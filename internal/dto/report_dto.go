package dto

import "github.com/shopspring/decimal"

// PayrollReportQuery is bound from GET /v1/reports/payroll.
type PayrollReportQuery struct {
	ProjectID string `form:"project_id" validate:"required,uuid"`
	StartDate string `form:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date"   validate:"required,datetime=2006-01-02"`
	Format    string `form:"format,default=json" validate:"oneof=json pdf excel"`
}

// InventoryReportQuery is bound from GET /v1/reports/inventory.
type InventoryReportQuery struct {
	ProjectID string `form:"project_id" validate:"required,uuid"`
	Format    string `form:"format,default=json" validate:"oneof=json pdf excel"`
}

// PayrollReportRow is one employee line of the payroll report. The amounts
// follow the payroll aggregator (days present × rate captured per row).
type PayrollReportRow struct {
	EmployeeID  string          `json:"employee_id"`
	FullName    string          `json:"full_name"`
	Position    string          `json:"position"`
	RatePerDay  decimal.Decimal `json:"rate_per_day"`
	DaysWorked  int             `json:"days_worked"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// PeriodInfo describes the reporting window and project heading.
type PeriodInfo struct {
	ProjectName  string `json:"project_name"`
	ProjectCode  string `json:"project_code"`
	Location     string `json:"location"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	DaysInPeriod int    `json:"days_in_period"`
	PeriodType   string `json:"period_type"` // Weekly | Bi-Weekly | Custom Period
}

type PayrollReportSummary struct {
	TotalEmployees  int             `json:"total_employees"`
	TotalDaysWorked int             `json:"total_days_worked"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

type InventoryReportSummary struct {
	TotalItems    int64           `json:"total_items"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// PayrollReport is the full payload behind GET /v1/reports/payroll. The same
// struct feeds the JSON response and the PDF/Excel renderers.
type PayrollReport struct {
	Period  PeriodInfo           `json:"period"`
	Rows    []PayrollReportRow   `json:"rows"`
	Summary PayrollReportSummary `json:"summary"`
}

// InventoryReport is the full payload behind GET /v1/reports/inventory.
type InventoryReport struct {
	ProjectName string                  `json:"project_name"`
	ProjectCode string                  `json:"project_code"`
	Location    string                  `json:"location"`
	GeneratedAt string                  `json:"generated_at"`
	Rows        []InventoryItemResponse `json:"rows"`
	Summary     InventoryReportSummary  `json:"summary"`
}
