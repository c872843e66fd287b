package service

import (
	"context"

	"github.com/ReponseBlaise/Preferred-System/internal/apierror"
	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/model"
	"github.com/ReponseBlaise/Preferred-System/internal/repository"

	"github.com/google/uuid"
)

type EmployeeService interface {
	Create(ctx context.Context, actorID uuid.UUID, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, filter dto.EmployeeFilter) ([]dto.EmployeeResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

type employeeService struct {
	repo        repository.EmployeeRepository
	projectRepo repository.ProjectRepository
	audit       AuditService
}

func NewEmployeeService(repo repository.EmployeeRepository, projectRepo repository.ProjectRepository, audit AuditService) EmployeeService {
	return &employeeService{repo: repo, projectRepo: projectRepo, audit: audit}
}

func (s *employeeService) Create(ctx context.Context, actorID uuid.UUID, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return nil, apierror.Validation("invalid project_id")
	}
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, apierror.NotFound("project not found")
	}
	if !req.RatePerDay.IsPositive() {
		return nil, apierror.Validation("rate_per_day must be positive")
	}

	employee := &model.Employee{
		ProjectID:   projectID,
		FullName:    req.FullName,
		Position:    req.Position,
		PhoneNumber: req.PhoneNumber,
		RatePerDay:  req.RatePerDay,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, apierror.Internal("failed to create employee")
	}
	s.audit.Record(ctx, &actorID, model.AuditCreate, "employees", &employee.ID)
	return employeeToResponse(employee), nil
}

func (s *employeeService) ListByProject(ctx context.Context, projectID uuid.UUID, filter dto.EmployeeFilter) ([]dto.EmployeeResponse, error) {
	employees, err := s.repo.ListByProject(ctx, projectID, filter)
	if err != nil {
		return nil, apierror.Internal("failed to list employees")
	}
	resp := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		resp[i] = *employeeToResponse(&employees[i])
	}
	return resp, nil
}

func (s *employeeService) Get(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("employee not found")
	}
	return employeeToResponse(employee), nil
}

func (s *employeeService) Update(ctx context.Context, actorID, id uuid.UUID, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("employee not found")
	}
	if !req.RatePerDay.IsPositive() {
		return nil, apierror.Validation("rate_per_day must be positive")
	}

	employee.FullName = req.FullName
	employee.Position = req.Position
	employee.PhoneNumber = req.PhoneNumber
	employee.RatePerDay = req.RatePerDay
	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, apierror.Internal("failed to update employee")
	}
	s.audit.Record(ctx, &actorID, model.AuditUpdate, "employees", &employee.ID)
	return employeeToResponse(employee), nil
}

func (s *employeeService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("employee not found")
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return apierror.Internal("failed to delete employee")
	}
	s.audit.Record(ctx, &actorID, model.AuditDelete, "employees", &id)
	return nil
}

func employeeToResponse(e *model.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:          e.ID.String(),
		ProjectID:   e.ProjectID.String(),
		FullName:    e.FullName,
		Position:    e.Position,
		PhoneNumber: e.PhoneNumber,
		RatePerDay:  e.RatePerDay,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
