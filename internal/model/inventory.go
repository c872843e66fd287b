package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Material categories accepted for inventory items.
var MaterialCategories = []string{
	"Construction", "Electrical", "Plumbing", "Tools", "Safety", "Office", "Other",
}

// ValidMaterialCategory reports whether c is a known category.
func ValidMaterialCategory(c string) bool {
	for _, v := range MaterialCategories {
		if v == c {
			return true
		}
	}
	return false
}

// InventoryItem is a project-scoped material record.
// TotalValue is always quantity × unit price, computed server-side.
type InventoryItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemName    string          `gorm:"not null"`
	Description *string
	Quantity    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Unit        string          `gorm:"not null;default:'pcs'"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalValue  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Category    string          `gorm:"not null;default:'Other'"`
	CreatedBy   *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
