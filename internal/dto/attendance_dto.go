package dto

import "github.com/shopspring/decimal"

// AttendanceTableQuery is bound from GET /v1/attendance/table.
type AttendanceTableQuery struct {
	ProjectID      string `form:"project_id"      validate:"required,uuid"`
	AttendanceDate string `form:"attendance_date" validate:"required,datetime=2006-01-02"`
}

// AttendanceTableRow is one roster line of the day table. Employees without
// a stored record for the date are returned with the synthesized default
// (absent, zero hours) so the client always sees the full roster.
type AttendanceTableRow struct {
	EmployeeID   string          `json:"employee_id"`
	FullName     string          `json:"full_name"`
	Position     string          `json:"position"`
	RatePerDay   decimal.Decimal `json:"rate_per_day"`
	AttendanceID *string         `json:"attendance_id"`
	Status       string          `json:"status"`
	HoursWorked  decimal.Decimal `json:"hours_worked"`
	Comment      *string         `json:"comment"`
}

type AttendanceRecordInput struct {
	EmployeeID  string          `json:"employee_id"  validate:"required,uuid"`
	Status      string          `json:"status"       validate:"required,oneof=present absent leave half-day"`
	HoursWorked decimal.Decimal `json:"hours_worked" validate:"min=0"`
	Comment     *string         `json:"comment"`
}

type BulkSaveAttendanceRequest struct {
	ProjectID         string                  `json:"project_id"         validate:"required,uuid"`
	AttendanceDate    string                  `json:"attendance_date"    validate:"required,datetime=2006-01-02"`
	AttendanceRecords []AttendanceRecordInput `json:"attendance_records" validate:"required,min=1,dive"`
}

type BulkSaveAttendanceResponse struct {
	RecordsSaved int `json:"records_saved"`
}

// AttendanceHistoryQuery is bound from GET /v1/attendance/history.
// All filters besides project_id are optional and conjunctive.
type AttendanceHistoryQuery struct {
	ProjectID  string `form:"project_id"  validate:"required,uuid"`
	StartDate  string `form:"start_date"  validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `form:"end_date"    validate:"omitempty,datetime=2006-01-02"`
	EmployeeID string `form:"employee_id" validate:"omitempty,uuid"`
}

type AttendanceHistoryRow struct {
	ID             string          `json:"id"`
	AttendanceDate string          `json:"attendance_date"`
	Status         string          `json:"status"`
	HoursWorked    decimal.Decimal `json:"hours_worked"`
	Comment        *string         `json:"comment"`
	FullName       string          `json:"full_name"`
	Position       string          `json:"position"`
	RatePerDay     decimal.Decimal `json:"rate_per_day"`
}
