package service

import (
	"context"

	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/model"
	"github.com/ReponseBlaise/Preferred-System/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RequestMeta carries the client address and agent from the HTTP layer down
// to the audit trail without services depending on gin.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

type requestMetaKey struct{}

// WithRequestMeta stores request metadata in the context.
func WithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// AuditService writes the append-only activity trail. Record is best-effort:
// an insert failure is logged and swallowed, it never fails the request that
// triggered it.
type AuditService interface {
	Record(ctx context.Context, userID *uuid.UUID, action, tableName string, recordID *uuid.UUID)
	Recent(ctx context.Context, limit int) ([]dto.AuditLogRow, error)
	List(ctx context.Context, limit, offset int) (*dto.AuditLogListResponse, error)
}

type auditService struct {
	repo repository.AuditRepository
}

func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) Record(ctx context.Context, userID *uuid.UUID, action, tableName string, recordID *uuid.UUID) {
	entry := &model.AuditLogEntry{
		UserID:    userID,
		Action:    action,
		TableName: tableName,
		RecordID:  recordID,
	}
	if meta, ok := ctx.Value(requestMetaKey{}).(RequestMeta); ok {
		entry.IPAddress = meta.IPAddress
		entry.UserAgent = meta.UserAgent
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		log.Warn().Err(err).
			Str("action", action).
			Str("table", tableName).
			Msg("audit write failed")
	}
}

func (s *auditService) Recent(ctx context.Context, limit int) ([]dto.AuditLogRow, error) {
	return s.repo.Recent(ctx, limit)
}

func (s *auditService) List(ctx context.Context, limit, offset int) (*dto.AuditLogListResponse, error) {
	rows, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.AuditLogListResponse{Data: rows, Total: total}, nil
}
