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

// ExpenseRepository defines the data access contract for project expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, e *model.Expense) error
	ListByProject(ctx context.Context, projectID uuid.UUID, filter dto.ExpenseFilter) ([]model.Expense, error)
	SumByProject(ctx context.Context, projectID uuid.UUID) (decimal.Decimal, error)
	SumMonth(ctx context.Context, year int, month time.Month) (decimal.Decimal, error)
}

type expenseRepo struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) ExpenseRepository { return &expenseRepo{db: db} }

func (r *expenseRepo) Create(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *expenseRepo) ListByProject(ctx context.Context, projectID uuid.UUID, filter dto.ExpenseFilter) ([]model.Expense, error) {
	q := r.db.WithContext(ctx).Where("project_id = ?", projectID)

	if filter.Type != "" {
		q = q.Where("expense_type = ?", filter.Type)
	}
	if filter.StartDate != "" {
		q = q.Where("expense_date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		q = q.Where("expense_date <= ?", filter.EndDate)
	}

	var expenses []model.Expense
	err := q.Order("expense_date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) SumByProject(ctx context.Context, projectID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	err := r.db.WithContext(ctx).Model(&model.Expense{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("project_id = ?", projectID).
		Scan(&row).Error
	return row.Total, err
}

func (r *expenseRepo) SumMonth(ctx context.Context, year int, month time.Month) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	err := r.db.WithContext(ctx).Model(&model.Expense{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("EXTRACT(YEAR FROM expense_date) = ? AND EXTRACT(MONTH FROM expense_date) = ?", year, int(month)).
		Scan(&row).Error
	return row.Total, err
}
