package service

import (
	"context"

	"github.com/ReponseBlaise/Preferred-System/internal/authz"
	"github.com/ReponseBlaise/Preferred-System/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AccessService answers the single question "may this user touch this
// project". It is total: any input yields true or false, never an error
// surfaced to the caller.
type AccessService interface {
	HasProjectAccess(ctx context.Context, userID uuid.UUID, role authz.Role, projectID uuid.UUID) bool
}

type accessService struct {
	projectRepo repository.ProjectRepository
}

func NewAccessService(projectRepo repository.ProjectRepository) AccessService {
	return &accessService{projectRepo: projectRepo}
}

// HasProjectAccess returns true for managers unconditionally; everyone else
// needs an assignment row. A missing project or a lookup failure is false,
// not an error: denial is always a safe answer.
func (s *accessService) HasProjectAccess(ctx context.Context, userID uuid.UUID, role authz.Role, projectID uuid.UUID) bool {
	if role == authz.RoleManager {
		return true
	}
	ok, err := s.projectRepo.AssignmentExists(ctx, userID, projectID)
	if err != nil {
		log.Warn().Err(err).
			Str("user_id", userID.String()).
			Str("project_id", projectID.String()).
			Msg("access check failed, denying")
		return false
	}
	return ok
}
