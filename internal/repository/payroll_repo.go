package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/model"
)

// PayrollAggregate is one row of the attendance aggregation that feeds
// payroll generation and the payroll report.
type PayrollAggregate struct {
	EmployeeID  uuid.UUID       `gorm:"column:employee_id"`
	FullName    string          `gorm:"column:full_name"`
	Position    string          `gorm:"column:position"`
	RatePerDay  decimal.Decimal `gorm:"column:rate_per_day"`
	TotalHours  decimal.Decimal `gorm:"column:total_hours"`
	DaysPresent int             `gorm:"column:days_present"`
}

// PayrollRepository defines the data access contract for payroll snapshots.
type PayrollRepository interface {
	// AggregateForPeriod sums present hours and counts present days per
	// active employee over [start, end]. The LEFT JOIN keeps employees with
	// zero attendance rows in the result (zeros, never omitted). When
	// projectID is non-nil the aggregation is restricted to that project.
	AggregateForPeriod(ctx context.Context, tx *gorm.DB, start, end time.Time, projectID *uuid.UUID) ([]PayrollAggregate, error)

	CreateTx(tx *gorm.DB, p *model.Payroll) error
	ExistsForPeriod(ctx context.Context, start, end time.Time) (bool, error)

	FindByID(ctx context.Context, id uuid.UUID) (*model.Payroll, error)
	Update(ctx context.Context, p *model.Payroll) error
	List(ctx context.Context, filter dto.PayrollFilter) ([]model.Payroll, int64, error)
	ListByPeriod(ctx context.Context, start, end time.Time) ([]model.Payroll, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, limit int) ([]model.Payroll, error)

	// MonthTotal sums rate_per_day over every present attendance row of the
	// given month — one present row is one paid day at the employee's rate.
	MonthTotal(ctx context.Context, year int, month time.Month) (decimal.Decimal, error)

	// DB exposes the underlying *gorm.DB so the service can open the
	// generation transaction. Nil in unit tests.
	DB() *gorm.DB
}

type payrollRepo struct{ db *gorm.DB }

func NewPayrollRepository(db *gorm.DB) PayrollRepository { return &payrollRepo{db: db} }

const aggregateQuery = `
SELECT e.id AS employee_id,
       e.full_name,
       e.position,
       e.rate_per_day,
       COALESCE(SUM(CASE WHEN a.status = 'present' THEN a.hours_worked ELSE 0 END), 0) AS total_hours,
       COUNT(CASE WHEN a.status = 'present' THEN 1 END) AS days_present
FROM employees e
LEFT JOIN attendances a ON e.id = a.employee_id
  AND a.attendance_date BETWEEN ? AND ?
WHERE e.is_active = true`

func (r *payrollRepo) AggregateForPeriod(ctx context.Context, tx *gorm.DB, start, end time.Time, projectID *uuid.UUID) ([]PayrollAggregate, error) {
	db := r.db
	if tx != nil {
		db = tx
	}

	query := aggregateQuery
	args := []interface{}{start, end}
	if projectID != nil {
		query += " AND e.project_id = ?"
		args = append(args, *projectID)
	}
	query += `
GROUP BY e.id, e.full_name, e.position, e.rate_per_day
ORDER BY LOWER(e.full_name) ASC, e.id ASC`

	var rows []PayrollAggregate
	err := db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	return rows, err
}

func (r *payrollRepo) CreateTx(tx *gorm.DB, p *model.Payroll) error {
	return tx.Create(p).Error
}

func (r *payrollRepo) ExistsForPeriod(ctx context.Context, start, end time.Time) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Payroll{}).
		Where("period_start = ? AND period_end = ?", start, end).
		Count(&n).Error
	return n > 0, err
}

func (r *payrollRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Payroll, error) {
	var p model.Payroll
	err := r.db.WithContext(ctx).Preload("Employee").First(&p, "id = ?", id).Error
	return &p, err
}

func (r *payrollRepo) Update(ctx context.Context, p *model.Payroll) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *payrollRepo) List(ctx context.Context, filter dto.PayrollFilter) ([]model.Payroll, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Payroll{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.Payroll
	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Employee").
		Order("period_end DESC").
		Limit(filter.Limit).Offset(offset).
		Find(&rows).Error
	return rows, total, err
}

func (r *payrollRepo) ListByPeriod(ctx context.Context, start, end time.Time) ([]model.Payroll, error) {
	var rows []model.Payroll
	err := r.db.WithContext(ctx).
		Joins("JOIN employees ON employees.id = payrolls.employee_id").
		Where("payrolls.period_start = ? AND payrolls.period_end = ?", start, end).
		Preload("Employee").
		Order("employees.full_name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *payrollRepo) ListByEmployee(ctx context.Context, employeeID uuid.UUID, limit int) ([]model.Payroll, error) {
	var rows []model.Payroll
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("period_end DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *payrollRepo) MonthTotal(ctx context.Context, year int, month time.Month) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	err := r.db.WithContext(ctx).Raw(`
SELECT COALESCE(SUM(e.rate_per_day), 0) AS total
FROM attendances a
JOIN employees e ON e.id = a.employee_id
WHERE a.status = 'present'
  AND EXTRACT(YEAR FROM a.attendance_date) = ?
  AND EXTRACT(MONTH FROM a.attendance_date) = ?`, year, int(month)).Scan(&row).Error
	return row.Total, err
}

func (r *payrollRepo) DB() *gorm.DB { return r.db }
