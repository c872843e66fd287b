package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payroll status values. Transitions: pending → paid (one-directional),
// pending → cancelled. "processed" exists for imported data but is never
// produced by generation.
const (
	PayrollPending   = "pending"
	PayrollProcessed = "processed"
	PayrollPaid      = "paid"
	PayrollCancelled = "cancelled"
)

// Payroll is a generated, immutable snapshot of pay owed for one employee
// for one period. RatePerDay is captured at generation time: later rate
// changes to the employee never alter an existing snapshot.
type Payroll struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	PeriodStart time.Time       `gorm:"type:date;not null;index"`
	PeriodEnd   time.Time       `gorm:"type:date;not null;index"`
	TotalDays   int             `gorm:"not null;default:0"`
	TotalHours  decimal.Decimal `gorm:"type:decimal(7,2);not null;default:0"`
	RatePerDay  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	GrossAmount decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Deductions  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	NetAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Status      string          `gorm:"type:varchar(10);not null;default:'pending'"`
	PaidDate    *time.Time      `gorm:"type:date"`
	ProcessedBy *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Employee *Employee `gorm:"foreignKey:EmployeeID"`
}
