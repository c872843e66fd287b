package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Attendance status values.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLeave   = "leave"
	AttendanceHalfDay = "half-day"
)

// ValidAttendanceStatus reports whether s is one of the known status values.
func ValidAttendanceStatus(s string) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLeave, AttendanceHalfDay:
		return true
	}
	return false
}

// Attendance holds at most one record per (employee, calendar date) — the
// composite unique index is what makes bulk-save an upsert rather than an
// insert. Rows are overwritten in place, never deleted.
type Attendance struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_employee_date"`
	AttendanceDate time.Time       `gorm:"type:date;not null;uniqueIndex:idx_employee_date"`
	Status         string          `gorm:"type:varchar(10);not null;default:'absent'"`
	HoursWorked    decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Comment        *string
	CreatedBy      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Employee *Employee `gorm:"foreignKey:EmployeeID"`
}
