package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/model"
)

// InventoryRepository defines the data access contract for inventory items.
type InventoryRepository interface {
	Create(ctx context.Context, item *model.InventoryItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, filter dto.InventoryFilter) ([]model.InventoryItem, error)
	// ListForReport orders by category then item name — the report layout.
	ListForReport(ctx context.Context, projectID uuid.UUID) ([]model.InventoryItem, error)
	Update(ctx context.Context, item *model.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error

	SumTotalValue(ctx context.Context) (decimal.Decimal, error)
	SumTotalValueByProject(ctx context.Context, projectID uuid.UUID) (decimal.Decimal, error)
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) InventoryRepository { return &inventoryRepo{db: db} }

func (r *inventoryRepo) Create(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	return &item, err
}

func (r *inventoryRepo) ListByProject(ctx context.Context, projectID uuid.UUID, filter dto.InventoryFilter) ([]model.InventoryItem, error) {
	q := r.db.WithContext(ctx).Where("project_id = ?", projectID)

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("item_name ILIKE ? OR description ILIKE ?", like, like)
	}

	var items []model.InventoryItem
	err := q.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *inventoryRepo) ListForReport(ctx context.Context, projectID uuid.UUID) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("category ASC, item_name ASC").
		Find(&items).Error
	return items, err
}

func (r *inventoryRepo) Update(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.InventoryItem{}, "id = ?", id).Error
}

func (r *inventoryRepo) SumTotalValue(ctx context.Context) (decimal.Decimal, error) {
	return r.sumValue(ctx, nil)
}

func (r *inventoryRepo) SumTotalValueByProject(ctx context.Context, projectID uuid.UUID) (decimal.Decimal, error) {
	return r.sumValue(ctx, &projectID)
}

func (r *inventoryRepo) sumValue(ctx context.Context, projectID *uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	q := r.db.WithContext(ctx).Model(&model.InventoryItem{}).
		Select("COALESCE(SUM(total_value), 0) AS total")
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	err := q.Scan(&row).Error
	return row.Total, err
}
