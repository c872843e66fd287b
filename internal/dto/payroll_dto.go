package dto

import "github.com/shopspring/decimal"

type GeneratePayrollRequest struct {
	PeriodStart string `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd   string `json:"period_end"   validate:"required,datetime=2006-01-02"`
}

type MarkPaidRequest struct {
	PaidDate string `json:"paid_date" validate:"required,datetime=2006-01-02"`
}

// PayrollFilter is bound from the query string of GET /v1/payroll.
type PayrollFilter struct {
	Status string `form:"status" validate:"omitempty,oneof=pending processed paid cancelled"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

type PayrollResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	FullName    string          `json:"full_name,omitempty"`
	Position    string          `json:"position,omitempty"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	TotalDays   int             `json:"total_days"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	RatePerDay  decimal.Decimal `json:"rate_per_day"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetAmount   decimal.Decimal `json:"net_amount"`
	Status      string          `json:"status"`
	PaidDate    *string         `json:"paid_date"`
}

type PayrollListResponse struct {
	Data  []PayrollResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// PayrollPeriodSummary accompanies GET /v1/payroll/period/:start/:end.
type PayrollPeriodSummary struct {
	TotalEmployees  int             `json:"total_employees"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`
	PaidCount       int             `json:"paid_count"`
	PendingCount    int             `json:"pending_count"`
}
