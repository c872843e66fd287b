package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense types accepted by the API.
var ExpenseTypes = []string{"communication", "transport", "ticket", "fees", "other"}

// ValidExpenseType reports whether t is a known expense type.
func ValidExpenseType(t string) bool {
	for _, v := range ExpenseTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Expense is a project-scoped spend record.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ExpenseType string          `gorm:"type:varchar(20);not null"`
	Description *string
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	ExpenseDate time.Time       `gorm:"type:date;not null"`
	CreatedBy   *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
