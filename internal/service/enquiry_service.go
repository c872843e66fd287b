package service

import (
	"context"
	"time"

	"github.com/ReponseBlaise/Preferred-System/internal/apierror"
	"github.com/ReponseBlaise/Preferred-System/internal/authz"
	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/model"
	"github.com/ReponseBlaise/Preferred-System/internal/repository"
	"github.com/ReponseBlaise/Preferred-System/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type EnquiryService interface {
	Create(ctx context.Context, fromUser uuid.UUID, req dto.CreateEnquiryRequest, attachmentURL *string) (*dto.EnquiryResponse, error)
	Get(ctx context.Context, userID uuid.UUID, role authz.Role, id uuid.UUID) (*dto.EnquiryResponse, error)
	ListForUser(ctx context.Context, userID uuid.UUID, role authz.Role) ([]dto.EnquiryResponse, error)
	Respond(ctx context.Context, responderID uuid.UUID, id uuid.UUID, req dto.RespondEnquiryRequest) (*dto.EnquiryResponse, error)
	UpdateStatus(ctx context.Context, actorID, id uuid.UUID, req dto.UpdateEnquiryStatusRequest) (*dto.EnquiryResponse, error)
	PendingCount(ctx context.Context, userID uuid.UUID, role authz.Role) (int64, error)
}

type enquiryService struct {
	repo       repository.EnquiryRepository
	userRepo   repository.UserRepository
	notifier   NotificationService
	dispatcher *worker.Dispatcher
	audit      AuditService
}

func NewEnquiryService(
	repo repository.EnquiryRepository,
	userRepo repository.UserRepository,
	notifier NotificationService,
	dispatcher *worker.Dispatcher,
	audit AuditService,
) EnquiryService {
	return &enquiryService{repo: repo, userRepo: userRepo, notifier: notifier, dispatcher: dispatcher, audit: audit}
}

// Create files a new enquiry. When no addressee is given it goes to the
// first manager. The recipient gets an in-app notification and a best-effort
// email; neither can fail the request.
func (s *enquiryService) Create(ctx context.Context, fromUser uuid.UUID, req dto.CreateEnquiryRequest, attachmentURL *string) (*dto.EnquiryResponse, error) {
	var toUser *model.User
	if req.ToUser != "" {
		id, err := uuid.Parse(req.ToUser)
		if err != nil {
			return nil, apierror.Validation("invalid to_user")
		}
		u, err := s.userRepo.FindByID(ctx, id)
		if err != nil {
			return nil, apierror.NotFound("recipient not found")
		}
		toUser = u
	} else {
		u, err := s.userRepo.FindFirstManager(ctx)
		if err != nil {
			return nil, apierror.Internal("no manager available to receive the enquiry")
		}
		toUser = u
	}

	enquiry := &model.Enquiry{
		FromUser:      fromUser,
		ToUser:        toUser.ID,
		Subject:       req.Subject,
		Message:       req.Message,
		Status:        model.EnquiryPending,
		AttachmentURL: attachmentURL,
	}
	if err := s.repo.Create(ctx, enquiry); err != nil {
		return nil, apierror.Internal("failed to create enquiry")
	}

	s.audit.Record(ctx, &fromUser, model.AuditCreate, "enquiries", &enquiry.ID)
	s.notifier.Notify(ctx, toUser.ID, "New enquiry", req.Subject, model.NotifyEnquiry)

	if s.dispatcher != nil && toUser.Email != "" {
		job := worker.EmailJobPayload{
			ToEmail: toUser.Email,
			Subject: "New enquiry: " + req.Subject,
			Body:    req.Message,
		}
		if err := s.dispatcher.EnqueueEmail(ctx, job); err != nil {
			log.Warn().Err(err).Msg("enquiry: failed to enqueue email")
		}
	}

	return s.toResponse(ctx, enquiry), nil
}

// Get returns an enquiry to its participants. Managers may read any enquiry;
// everyone else must be the sender or the recipient. The 403 carries no
// resource fields.
func (s *enquiryService) Get(ctx context.Context, userID uuid.UUID, role authz.Role, id uuid.UUID) (*dto.EnquiryResponse, error) {
	enquiry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("enquiry not found")
	}
	if role != authz.RoleManager && enquiry.FromUser != userID && enquiry.ToUser != userID {
		return nil, apierror.Authorization("access denied")
	}
	return s.toResponse(ctx, enquiry), nil
}

func (s *enquiryService) ListForUser(ctx context.Context, userID uuid.UUID, role authz.Role) ([]dto.EnquiryResponse, error) {
	var (
		enquiries []model.Enquiry
		err       error
	)
	if role == authz.RoleManager {
		enquiries, err = s.repo.ListAll(ctx)
	} else {
		enquiries, err = s.repo.ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, apierror.Internal("failed to list enquiries")
	}
	resp := make([]dto.EnquiryResponse, len(enquiries))
	for i := range enquiries {
		resp[i] = *s.toResponse(ctx, &enquiries[i])
	}
	return resp, nil
}

func (s *enquiryService) Respond(ctx context.Context, responderID uuid.UUID, id uuid.UUID, req dto.RespondEnquiryRequest) (*dto.EnquiryResponse, error) {
	enquiry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("enquiry not found")
	}
	if enquiry.Status == model.EnquiryClosed {
		return nil, apierror.Conflict("enquiry is closed")
	}

	now := time.Now()
	enquiry.Response = &req.Response
	enquiry.RespondedBy = &responderID
	enquiry.RespondedAt = &now
	enquiry.Status = model.EnquiryResponded
	if err := s.repo.Update(ctx, enquiry); err != nil {
		return nil, apierror.Internal("failed to update enquiry")
	}

	s.audit.Record(ctx, &responderID, model.AuditUpdate, "enquiries", &enquiry.ID)
	s.notifier.Notify(ctx, enquiry.FromUser, "Enquiry answered", enquiry.Subject, model.NotifyEnquiry)
	return s.toResponse(ctx, enquiry), nil
}

func (s *enquiryService) UpdateStatus(ctx context.Context, actorID, id uuid.UUID, req dto.UpdateEnquiryStatusRequest) (*dto.EnquiryResponse, error) {
	enquiry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("enquiry not found")
	}
	enquiry.Status = req.Status
	if err := s.repo.Update(ctx, enquiry); err != nil {
		return nil, apierror.Internal("failed to update enquiry")
	}
	s.audit.Record(ctx, &actorID, model.AuditUpdate, "enquiries", &enquiry.ID)
	return s.toResponse(ctx, enquiry), nil
}

func (s *enquiryService) PendingCount(ctx context.Context, userID uuid.UUID, role authz.Role) (int64, error) {
	if role == authz.RoleManager {
		return s.repo.CountPending(ctx)
	}
	return s.repo.CountPendingFor(ctx, userID)
}

func (s *enquiryService) toResponse(ctx context.Context, e *model.Enquiry) *dto.EnquiryResponse {
	resp := &dto.EnquiryResponse{
		ID:            e.ID.String(),
		FromUser:      e.FromUser.String(),
		ToUser:        e.ToUser.String(),
		Subject:       e.Subject,
		Message:       e.Message,
		Response:      e.Response,
		Status:        e.Status,
		AttachmentURL: e.AttachmentURL,
		CreatedAt:     e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if e.RespondedBy != nil {
		id := e.RespondedBy.String()
		resp.RespondedBy = &id
	}
	if e.RespondedAt != nil {
		t := e.RespondedAt.Format("2006-01-02T15:04:05Z")
		resp.RespondedAt = &t
	}
	if sender, err := s.userRepo.FindByID(ctx, e.FromUser); err == nil {
		resp.FromUserName = sender.FullName
	}
	return resp
}
