package model

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions.
const (
	AuditCreate = "CREATE"
	AuditUpdate = "UPDATE"
	AuditDelete = "DELETE"
	AuditLogin  = "LOGIN"
	AuditExport = "EXPORT"
)

// AuditLogEntry is append-only; rows are never updated or deleted.
// UserID is a nullable reference, not ownership — the acting user may be
// deactivated later without invalidating the trail.
type AuditLogEntry struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Action    string     `gorm:"type:varchar(10);not null"`
	TableName string     `gorm:"not null"`
	RecordID  *uuid.UUID `gorm:"type:uuid"`
	NewValues *string    `gorm:"type:jsonb"`
	IPAddress string
	UserAgent string
	CreatedAt time.Time `gorm:"index"`
}
