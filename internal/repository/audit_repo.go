package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/model"
)

// AuditRepository appends to and reads from the audit trail. There is no
// update or delete — the table is append-only by contract.
type AuditRepository interface {
	Create(ctx context.Context, entry *model.AuditLogEntry) error
	Recent(ctx context.Context, limit int) ([]dto.AuditLogRow, error)
	List(ctx context.Context, limit, offset int) ([]dto.AuditLogRow, int64, error)
}

type auditRepo struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) AuditRepository { return &auditRepo{db: db} }

func (r *auditRepo) Create(ctx context.Context, entry *model.AuditLogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

const auditRowQuery = `
SELECT al.action, al.table_name, u.full_name AS user_name,
       to_char(al.created_at, 'YYYY-MM-DD"T"HH24:MI:SS"Z"') AS created_at
FROM audit_log_entries al
LEFT JOIN users u ON u.id = al.user_id
ORDER BY al.created_at DESC`

func (r *auditRepo) Recent(ctx context.Context, limit int) ([]dto.AuditLogRow, error) {
	var rows []dto.AuditLogRow
	err := r.db.WithContext(ctx).Raw(auditRowQuery+" LIMIT ?", limit).Scan(&rows).Error
	return rows, err
}

func (r *auditRepo) List(ctx context.Context, limit, offset int) ([]dto.AuditLogRow, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.AuditLogEntry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []dto.AuditLogRow
	err := r.db.WithContext(ctx).Raw(auditRowQuery+" LIMIT ? OFFSET ?", limit, offset).Scan(&rows).Error
	return rows, total, err
}
