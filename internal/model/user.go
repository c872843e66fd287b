package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ReponseBlaise/Preferred-System/internal/authz"
)

// User stores system accounts with role-based access.
// Role: "manager" | "storeman" | "employee"
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	FullName     string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Role         authz.Role `gorm:"type:varchar(20);not null"`
	// IsActive gates authentication; users are deactivated, never deleted.
	IsActive  bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
