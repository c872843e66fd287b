package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ReponseBlaise/Preferred-System/internal/apierror"
	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/model"
	"github.com/ReponseBlaise/Preferred-System/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AttendanceService interface {
	DayTable(ctx context.Context, query dto.AttendanceTableQuery) ([]dto.AttendanceTableRow, error)
	BulkSave(ctx context.Context, actorID uuid.UUID, req dto.BulkSaveAttendanceRequest) (*dto.BulkSaveAttendanceResponse, error)
	History(ctx context.Context, query dto.AttendanceHistoryQuery) ([]dto.AttendanceHistoryRow, error)
}

type attendanceService struct {
	repo         repository.AttendanceRepository
	employeeRepo repository.EmployeeRepository
	projectRepo  repository.ProjectRepository
	audit        AuditService
}

func NewAttendanceService(
	repo repository.AttendanceRepository,
	employeeRepo repository.EmployeeRepository,
	projectRepo repository.ProjectRepository,
	audit AuditService,
) AttendanceService {
	return &attendanceService{repo: repo, employeeRepo: employeeRepo, projectRepo: projectRepo, audit: audit}
}

// DayTable returns one row per active employee of the project for the given
// date. Employees without a stored record get the synthesized default
// (absent, zero hours, nil attendance_id) so the client always renders the
// full roster. Ordering follows the roster: lower(full_name) asc, id asc.
func (s *attendanceService) DayTable(ctx context.Context, query dto.AttendanceTableQuery) ([]dto.AttendanceTableRow, error) {
	projectID, err := uuid.Parse(query.ProjectID)
	if err != nil {
		return nil, apierror.Validation("invalid project_id")
	}
	date, err := time.Parse("2006-01-02", query.AttendanceDate)
	if err != nil {
		return nil, apierror.Validation("invalid attendance_date")
	}
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, apierror.NotFound("project not found")
	}

	roster, err := s.employeeRepo.ListActiveByProject(ctx, projectID)
	if err != nil {
		return nil, apierror.Internal("failed to load roster")
	}
	recorded, err := s.repo.FindByProjectAndDate(ctx, projectID, date)
	if err != nil {
		return nil, apierror.Internal("failed to load attendance")
	}

	rows := make([]dto.AttendanceTableRow, 0, len(roster))
	for i := range roster {
		e := &roster[i]
		row := dto.AttendanceTableRow{
			EmployeeID:  e.ID.String(),
			FullName:    e.FullName,
			Position:    e.Position,
			RatePerDay:  e.RatePerDay,
			Status:      model.AttendanceAbsent,
			HoursWorked: decimal.Zero,
		}
		if rec, ok := recorded[e.ID]; ok {
			id := rec.ID.String()
			row.AttendanceID = &id
			row.Status = rec.Status
			row.HoursWorked = rec.HoursWorked
			row.Comment = rec.Comment
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// BulkSave upserts a batch of attendance records for one project and date.
// Every employee_id must belong to the project's active roster; one bad
// record rejects the whole batch before anything is written, and the write
// itself is a single transaction.
func (s *attendanceService) BulkSave(ctx context.Context, actorID uuid.UUID, req dto.BulkSaveAttendanceRequest) (*dto.BulkSaveAttendanceResponse, error) {
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return nil, apierror.Validation("invalid project_id")
	}
	date, err := time.Parse("2006-01-02", req.AttendanceDate)
	if err != nil {
		return nil, apierror.Validation("invalid attendance_date")
	}
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, apierror.NotFound("project not found")
	}

	roster, err := s.employeeRepo.ListActiveByProject(ctx, projectID)
	if err != nil {
		return nil, apierror.Internal("failed to load roster")
	}
	members := make(map[uuid.UUID]bool, len(roster))
	for _, e := range roster {
		members[e.ID] = true
	}

	records := make([]model.Attendance, 0, len(req.AttendanceRecords))
	for _, input := range req.AttendanceRecords {
		employeeID, err := uuid.Parse(input.EmployeeID)
		if err != nil {
			return nil, apierror.Validation(fmt.Sprintf("invalid employee_id %q", input.EmployeeID))
		}
		if !members[employeeID] {
			return nil, apierror.Validation(fmt.Sprintf("employee %s is not on this project's active roster", input.EmployeeID))
		}
		if !model.ValidAttendanceStatus(input.Status) {
			return nil, apierror.Validation(fmt.Sprintf("invalid status %q", input.Status))
		}
		if input.HoursWorked.IsNegative() {
			return nil, apierror.Validation("hours_worked cannot be negative")
		}

		records = append(records, model.Attendance{
			ProjectID:      projectID,
			EmployeeID:     employeeID,
			AttendanceDate: date,
			Status:         input.Status,
			HoursWorked:    input.HoursWorked,
			Comment:        input.Comment,
			CreatedBy:      &actorID,
		})
	}

	if err := s.repo.BulkUpsert(ctx, records); err != nil {
		return nil, apierror.Internal("failed to save attendance")
	}

	s.audit.Record(ctx, &actorID, model.AuditUpdate, "attendances", nil)
	return &dto.BulkSaveAttendanceResponse{RecordsSaved: len(records)}, nil
}

func (s *attendanceService) History(ctx context.Context, query dto.AttendanceHistoryQuery) ([]dto.AttendanceHistoryRow, error) {
	projectID, err := uuid.Parse(query.ProjectID)
	if err != nil {
		return nil, apierror.Validation("invalid project_id")
	}

	var start, end *time.Time
	if query.StartDate != "" {
		t, err := time.Parse("2006-01-02", query.StartDate)
		if err != nil {
			return nil, apierror.Validation("invalid start_date")
		}
		start = &t
	}
	if query.EndDate != "" {
		t, err := time.Parse("2006-01-02", query.EndDate)
		if err != nil {
			return nil, apierror.Validation("invalid end_date")
		}
		end = &t
	}
	var employeeID *uuid.UUID
	if query.EmployeeID != "" {
		id, err := uuid.Parse(query.EmployeeID)
		if err != nil {
			return nil, apierror.Validation("invalid employee_id")
		}
		employeeID = &id
	}

	records, err := s.repo.History(ctx, projectID, start, end, employeeID)
	if err != nil {
		return nil, apierror.Internal("failed to load history")
	}

	rows := make([]dto.AttendanceHistoryRow, 0, len(records))
	for i := range records {
		rec := &records[i]
		row := dto.AttendanceHistoryRow{
			ID:             rec.ID.String(),
			AttendanceDate: rec.AttendanceDate.Format("2006-01-02"),
			Status:         rec.Status,
			HoursWorked:    rec.HoursWorked,
			Comment:        rec.Comment,
		}
		if rec.Employee != nil {
			row.FullName = rec.Employee.FullName
			row.Position = rec.Employee.Position
			row.RatePerDay = rec.Employee.RatePerDay
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// todayUTC truncates now to a calendar date.
func todayUTC() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
