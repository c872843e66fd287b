package service

import (
	"context"

	"github.com/ReponseBlaise/Preferred-System/internal/apierror"
	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/model"
	"github.com/ReponseBlaise/Preferred-System/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// NotificationService creates and serves in-app notifications. Notify is
// best-effort like the audit trail: a failed insert is logged, never
// propagated to the triggering request.
type NotificationService interface {
	Notify(ctx context.Context, userID uuid.UUID, title, message, typ string)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]dto.NotificationResponse, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) Notify(ctx context.Context, userID uuid.UUID, title, message, typ string) {
	n := &model.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    typ,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("notification write failed")
	}
}

func (s *notificationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]dto.NotificationResponse, error) {
	notifications, err := s.repo.ListByUser(ctx, userID, 50)
	if err != nil {
		return nil, apierror.Internal("failed to list notifications")
	}
	resp := make([]dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		resp[i] = dto.NotificationResponse{
			ID:        n.ID.String(),
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}
	return resp, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.MarkRead(ctx, id, userID); err != nil {
		return apierror.NotFound("notification not found")
	}
	return nil
}
