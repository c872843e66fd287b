package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/model"
)

// EmployeeRepository defines the data access contract for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, e *model.Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, filter dto.EmployeeFilter) ([]model.Employee, error)
	// ListActiveByProject returns the active roster ordered by
	// lower(full_name) asc, id asc — the day-table ordering.
	ListActiveByProject(ctx context.Context, projectID uuid.UUID) ([]model.Employee, error)
	Update(ctx context.Context, e *model.Employee) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	CountActive(ctx context.Context) (int64, error)
	CountActiveByProject(ctx context.Context, projectID uuid.UUID) (int64, error)
}

type employeeRepo struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository { return &employeeRepo{db: db} }

func (r *employeeRepo) Create(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *employeeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *employeeRepo) ListByProject(ctx context.Context, projectID uuid.UUID, filter dto.EmployeeFilter) ([]model.Employee, error) {
	q := r.db.WithContext(ctx).Where("project_id = ?", projectID)

	switch filter.IsActive {
	case "true":
		q = q.Where("is_active = true")
	case "false":
		q = q.Where("is_active = false")
	}

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("full_name ILIKE ? OR position ILIKE ? OR phone_number ILIKE ?", like, like, like)
	}

	var employees []model.Employee
	err := q.Order("full_name ASC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) ListActiveByProject(ctx context.Context, projectID uuid.UUID) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND is_active = true", projectID).
		Order("LOWER(full_name) ASC, id ASC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) Update(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *employeeRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Employee{}).Where("id = ?", id).Update("is_active", false).Error
}

func (r *employeeRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Employee{}).Where("is_active = true").Count(&n).Error
	return n, err
}

func (r *employeeRepo) CountActiveByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("project_id = ? AND is_active = true", projectID).Count(&n).Error
	return n, err
}
