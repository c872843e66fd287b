package service

import (
	"context"

	"github.com/ReponseBlaise/Preferred-System/internal/apierror"
	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/model"
	"github.com/ReponseBlaise/Preferred-System/internal/repository"

	"github.com/google/uuid"
)

type ProjectService interface {
	Create(ctx context.Context, creatorID uuid.UUID, req dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	List(ctx context.Context) ([]dto.ProjectResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]dto.ProjectResponse, error)
	AssignUser(ctx context.Context, req dto.AssignUserRequest) error
	Stats(ctx context.Context, projectID uuid.UUID) (*dto.ProjectStatsResponse, error)
}

type projectService struct {
	repo          repository.ProjectRepository
	userRepo      repository.UserRepository
	employeeRepo  repository.EmployeeRepository
	inventoryRepo repository.InventoryRepository
	expenseRepo   repository.ExpenseRepository
	attendRepo    repository.AttendanceRepository
	audit         AuditService
}

func NewProjectService(
	repo repository.ProjectRepository,
	userRepo repository.UserRepository,
	employeeRepo repository.EmployeeRepository,
	inventoryRepo repository.InventoryRepository,
	expenseRepo repository.ExpenseRepository,
	attendRepo repository.AttendanceRepository,
	audit AuditService,
) ProjectService {
	return &projectService{
		repo:          repo,
		userRepo:      userRepo,
		employeeRepo:  employeeRepo,
		inventoryRepo: inventoryRepo,
		expenseRepo:   expenseRepo,
		attendRepo:    attendRepo,
		audit:         audit,
	}
}

func (s *projectService) Create(ctx context.Context, creatorID uuid.UUID, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	project := &model.Project{
		ProjectName: req.ProjectName,
		ProjectCode: req.ProjectCode,
		Location:    req.Location,
		Description: req.Description,
		IsActive:    true,
		CreatedBy:   &creatorID,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, apierror.Conflict("project code already exists")
	}
	s.audit.Record(ctx, &creatorID, model.AuditCreate, "projects", &project.ID)
	return projectToResponse(project), nil
}

func (s *projectService) List(ctx context.Context) ([]dto.ProjectResponse, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal("failed to list projects")
	}
	return projectsToResponses(projects), nil
}

func (s *projectService) ListMine(ctx context.Context, userID uuid.UUID) ([]dto.ProjectResponse, error) {
	projects, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apierror.Internal("failed to list projects")
	}
	return projectsToResponses(projects), nil
}

func (s *projectService) AssignUser(ctx context.Context, req dto.AssignUserRequest) error {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return apierror.Validation("invalid user_id")
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return apierror.Validation("invalid project_id")
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return apierror.NotFound("user not found")
	}
	if _, err := s.repo.FindByID(ctx, projectID); err != nil {
		return apierror.NotFound("project not found")
	}

	exists, err := s.repo.AssignmentExists(ctx, userID, projectID)
	if err != nil {
		return apierror.Internal("failed to check assignment")
	}
	if exists {
		return apierror.Conflict("user is already assigned to this project")
	}

	assignment := &model.ProjectAssignment{UserID: userID, ProjectID: projectID}
	if err := s.repo.CreateAssignment(ctx, assignment); err != nil {
		return apierror.Internal("failed to assign user")
	}
	s.audit.Record(ctx, &userID, model.AuditCreate, "project_assignments", &assignment.ID)
	return nil
}

func (s *projectService) Stats(ctx context.Context, projectID uuid.UUID) (*dto.ProjectStatsResponse, error) {
	if _, err := s.repo.FindByID(ctx, projectID); err != nil {
		return nil, apierror.NotFound("project not found")
	}

	employees, err := s.employeeRepo.CountActiveByProject(ctx, projectID)
	if err != nil {
		return nil, apierror.Internal("failed to compute stats")
	}
	inventoryValue, err := s.inventoryRepo.SumTotalValueByProject(ctx, projectID)
	if err != nil {
		return nil, apierror.Internal("failed to compute stats")
	}
	expenses, err := s.expenseRepo.SumByProject(ctx, projectID)
	if err != nil {
		return nil, apierror.Internal("failed to compute stats")
	}
	attendanceToday, err := s.attendRepo.CountByProjectAndDate(ctx, projectID, todayUTC())
	if err != nil {
		return nil, apierror.Internal("failed to compute stats")
	}

	return &dto.ProjectStatsResponse{
		ProjectID:       projectID.String(),
		ActiveEmployees: employees,
		InventoryValue:  inventoryValue,
		TotalExpenses:   expenses,
		AttendanceToday: attendanceToday,
	}, nil
}

func projectToResponse(p *model.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:          p.ID.String(),
		ProjectName: p.ProjectName,
		ProjectCode: p.ProjectCode,
		Location:    p.Location,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func projectsToResponses(projects []model.Project) []dto.ProjectResponse {
	resp := make([]dto.ProjectResponse, len(projects))
	for i := range projects {
		resp[i] = *projectToResponse(&projects[i])
	}
	return resp
}
