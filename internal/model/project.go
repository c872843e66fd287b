package model

import (
	"time"

	"github.com/google/uuid"
)

// Project is a named, coded work site. Employees, inventory, expenses and
// (transitively) attendance all hang off a project.
type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectName string    `gorm:"not null"`
	ProjectCode string    `gorm:"uniqueIndex;not null"`
	Location    string
	Description *string
	IsActive    bool `gorm:"not null;default:true"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectAssignment links a non-manager user to a project. Managers have
// implicit access to every project and never need a row here.
type ProjectAssignment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_project"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_project"`
	CreatedAt time.Time

	Project *Project `gorm:"foreignKey:ProjectID"`
}
