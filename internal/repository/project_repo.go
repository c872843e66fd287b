package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ReponseBlaise/Preferred-System/internal/model"
)

// ProjectRepository defines the data access contract for projects and
// project assignments.
type ProjectRepository interface {
	Create(ctx context.Context, p *model.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error)

	CreateAssignment(ctx context.Context, a *model.ProjectAssignment) error
	// AssignmentExists reports whether the (user, project) pair has an
	// explicit assignment row. Missing projects simply yield false.
	AssignmentExists(ctx context.Context, userID, projectID uuid.UUID) (bool, error)
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepository(db *gorm.DB) ProjectRepository { return &projectRepo{db: db} }

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *projectRepo) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).Where("is_active = true").Order("project_name ASC").Find(&projects).Error
	return projects, err
}

func (r *projectRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Joins("JOIN project_assignments pa ON pa.project_id = projects.id").
		Where("pa.user_id = ? AND projects.is_active = true", userID).
		Order("projects.project_name ASC").
		Find(&projects).Error
	return projects, err
}

func (r *projectRepo) CreateAssignment(ctx context.Context, a *model.ProjectAssignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *projectRepo) AssignmentExists(ctx context.Context, userID, projectID uuid.UUID) (bool, error) {
	var a model.ProjectAssignment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
