package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee belongs to exactly one project. Soft-deleted via IsActive so that
// attendance and payroll history stay intact.
type Employee struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	FullName    string          `gorm:"index;not null"`
	Position    string          `gorm:"not null"`
	PhoneNumber string
	RatePerDay  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IsActive    bool            `gorm:"not null;default:true"`
	CreatedBy   *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Project *Project `gorm:"foreignKey:ProjectID"`
}
