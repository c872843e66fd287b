package model

import (
	"time"

	"github.com/google/uuid"
)

// Enquiry status values.
const (
	EnquiryPending   = "pending"
	EnquiryResponded = "responded"
	EnquiryClosed    = "closed"
)

// Enquiry is an inter-role message; it defaults to the manager as recipient
// when no addressee is given.
type Enquiry struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FromUser      uuid.UUID `gorm:"type:uuid;not null;index"`
	ToUser        uuid.UUID `gorm:"type:uuid;not null;index"`
	Subject       string    `gorm:"not null"`
	Message       string    `gorm:"not null"`
	Response      *string
	RespondedBy   *uuid.UUID `gorm:"type:uuid"`
	RespondedAt   *time.Time
	Status        string  `gorm:"type:varchar(10);not null;default:'pending'"`
	AttachmentURL *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
