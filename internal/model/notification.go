package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification types.
const (
	NotifyInfo    = "info"
	NotifyPayroll = "payroll"
	NotifyEnquiry = "enquiry"
)

// Notification is an in-app message created as a side effect of domain
// events (new enquiry, payroll run).
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"not null"`
	Message   string    `gorm:"not null"`
	Type      string    `gorm:"type:varchar(12);not null;default:'info'"`
	IsRead    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}
