package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ReponseBlaise/Preferred-System/internal/model"
)

// EnquiryRepository defines the data access contract for enquiries.
type EnquiryRepository interface {
	Create(ctx context.Context, e *model.Enquiry) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Enquiry, error)
	// ListByUser returns enquiries the user sent or received, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Enquiry, error)
	ListAll(ctx context.Context) ([]model.Enquiry, error)
	Update(ctx context.Context, e *model.Enquiry) error
	CountPendingFor(ctx context.Context, userID uuid.UUID) (int64, error)
	CountPending(ctx context.Context) (int64, error)
}

type enquiryRepo struct{ db *gorm.DB }

func NewEnquiryRepository(db *gorm.DB) EnquiryRepository { return &enquiryRepo{db: db} }

func (r *enquiryRepo) Create(ctx context.Context, e *model.Enquiry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *enquiryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Enquiry, error) {
	var e model.Enquiry
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *enquiryRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Enquiry, error) {
	var enquiries []model.Enquiry
	err := r.db.WithContext(ctx).
		Where("from_user = ? OR to_user = ?", userID, userID).
		Order("created_at DESC").
		Find(&enquiries).Error
	return enquiries, err
}

func (r *enquiryRepo) ListAll(ctx context.Context) ([]model.Enquiry, error) {
	var enquiries []model.Enquiry
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&enquiries).Error
	return enquiries, err
}

func (r *enquiryRepo) Update(ctx context.Context, e *model.Enquiry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *enquiryRepo) CountPendingFor(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Enquiry{}).
		Where("to_user = ? AND status = ?", userID, model.EnquiryPending).
		Count(&n).Error
	return n, err
}

func (r *enquiryRepo) CountPending(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Enquiry{}).
		Where("status = ?", model.EnquiryPending).
		Count(&n).Error
	return n, err
}
