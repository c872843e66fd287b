package service

import (
	"context"
	"time"

	"github.com/ReponseBlaise/Preferred-System/internal/apierror"
	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/infra"
	"github.com/ReponseBlaise/Preferred-System/internal/model"
	"github.com/ReponseBlaise/Preferred-System/internal/repository"
	"github.com/ReponseBlaise/Preferred-System/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PayrollService interface {
	Generate(ctx context.Context, actorID uuid.UUID, req dto.GeneratePayrollRequest) ([]dto.PayrollResponse, error)
	MarkPaid(ctx context.Context, actorID, id uuid.UUID, req dto.MarkPaidRequest) (*dto.PayrollResponse, error)
	Cancel(ctx context.Context, actorID, id uuid.UUID) (*dto.PayrollResponse, error)
	List(ctx context.Context, filter dto.PayrollFilter) (*dto.PayrollListResponse, error)
	ListByPeriod(ctx context.Context, start, end string) ([]dto.PayrollResponse, *dto.PayrollPeriodSummary, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]dto.PayrollResponse, error)
	Export(ctx context.Context, start, end string) ([]byte, string, error)
}

type payrollService struct {
	repo       repository.PayrollRepository
	audit      AuditService
	notifier   NotificationService
	dispatcher *worker.Dispatcher
}

func NewPayrollService(repo repository.PayrollRepository, audit AuditService, notifier NotificationService, dispatcher *worker.Dispatcher) PayrollService {
	return &payrollService{repo: repo, audit: audit, notifier: notifier, dispatcher: dispatcher}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Generate ──────────────────────────────────────────────────────────────────
// One snapshot per active employee for the period:
//   1. Validate start ≤ end, end not in the future
//   2. Reject if snapshots already exist for the exact period (conflict)
//   3. BEGIN TX: aggregate attendance (LEFT JOIN — zero-attendance employees
//      included with zeros), insert one pending snapshot per employee with
//      the rate captured by value
//   4. COMMIT
//   5. (async) dispatch the payroll-run report job

func (s *payrollService) Generate(ctx context.Context, actorID uuid.UUID, req dto.GeneratePayrollRequest) ([]dto.PayrollResponse, error) {
	start, err := time.Parse("2006-01-02", req.PeriodStart)
	if err != nil {
		return nil, apierror.Validation("invalid period_start")
	}
	end, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil {
		return nil, apierror.Validation("invalid period_end")
	}
	if start.After(end) {
		return nil, apierror.Validation("period_start must not be after period_end")
	}
	if end.After(todayUTC()) {
		return nil, apierror.Validation("period_end cannot be in the future")
	}

	exists, err := s.repo.ExistsForPeriod(ctx, start, end)
	if err != nil {
		return nil, apierror.Internal("failed to check existing payroll")
	}
	if exists {
		return nil, apierror.Conflict("payroll already generated for this period")
	}

	var created []model.Payroll
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		aggregates, err := s.repo.AggregateForPeriod(ctx, tx, start, end, nil)
		if err != nil {
			return err
		}
		for _, agg := range aggregates {
			gross := agg.RatePerDay.Mul(decimal.NewFromInt(int64(agg.DaysPresent)))
			p := model.Payroll{
				EmployeeID:  agg.EmployeeID,
				PeriodStart: start,
				PeriodEnd:   end,
				TotalDays:   agg.DaysPresent,
				TotalHours:  agg.TotalHours,
				RatePerDay:  agg.RatePerDay,
				GrossAmount: gross,
				Deductions:  decimal.Zero,
				NetAmount:   gross,
				Status:      model.PayrollPending,
				ProcessedBy: &actorID,
			}
			if err := s.repo.CreateTx(tx, &p); err != nil {
				return err
			}
			p.Employee = &model.Employee{
				ID:         agg.EmployeeID,
				FullName:   agg.FullName,
				Position:   agg.Position,
				RatePerDay: agg.RatePerDay,
			}
			created = append(created, p)
		}
		return nil
	})
	if txErr != nil {
		return nil, apierror.Internal("payroll generation failed")
	}

	s.audit.Record(ctx, &actorID, model.AuditCreate, "payrolls", nil)

	if s.notifier != nil {
		s.notifier.Notify(ctx, actorID, "Payroll generated",
			"Payroll run for "+req.PeriodStart+" to "+req.PeriodEnd, model.NotifyPayroll)
	}

	// Async run report — fire & forget
	if s.dispatcher != nil {
		payload := worker.ReportJobPayload{
			PeriodStart: req.PeriodStart,
			PeriodEnd:   req.PeriodEnd,
			GeneratedBy: actorID.String(),
		}
		_ = s.dispatcher.EnqueueReport(ctx, payload)
	}

	resp := make([]dto.PayrollResponse, len(created))
	for i := range created {
		resp[i] = *payrollToResponse(&created[i])
	}
	return resp, nil
}

// MarkPaid moves a snapshot to paid. Re-marking an already paid snapshot is
// permitted and refreshes paid_date; a cancelled snapshot cannot be paid.
func (s *payrollService) MarkPaid(ctx context.Context, actorID, id uuid.UUID, req dto.MarkPaidRequest) (*dto.PayrollResponse, error) {
	paidDate, err := time.Parse("2006-01-02", req.PaidDate)
	if err != nil {
		return nil, apierror.Validation("invalid paid_date")
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("payroll not found")
	}
	if p.Status == model.PayrollCancelled {
		return nil, apierror.Conflict("cancelled payroll cannot be marked paid")
	}

	p.Status = model.PayrollPaid
	p.PaidDate = &paidDate
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apierror.Internal("failed to update payroll")
	}
	s.audit.Record(ctx, &actorID, model.AuditUpdate, "payrolls", &p.ID)
	return payrollToResponse(p), nil
}

// Cancel voids a pending snapshot. Paid and cancelled snapshots are final.
func (s *payrollService) Cancel(ctx context.Context, actorID, id uuid.UUID) (*dto.PayrollResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("payroll not found")
	}
	if p.Status != model.PayrollPending {
		return nil, apierror.Conflict("only pending payroll can be cancelled")
	}

	p.Status = model.PayrollCancelled
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apierror.Internal("failed to update payroll")
	}
	s.audit.Record(ctx, &actorID, model.AuditUpdate, "payrolls", &p.ID)
	return payrollToResponse(p), nil
}

func (s *payrollService) List(ctx context.Context, filter dto.PayrollFilter) (*dto.PayrollListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	payrolls, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Internal("failed to list payroll")
	}
	data := make([]dto.PayrollResponse, len(payrolls))
	for i := range payrolls {
		data[i] = *payrollToResponse(&payrolls[i])
	}
	return &dto.PayrollListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *payrollService) ListByPeriod(ctx context.Context, start, end string) ([]dto.PayrollResponse, *dto.PayrollPeriodSummary, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, nil, apierror.Validation("invalid period start")
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, nil, apierror.Validation("invalid period end")
	}

	payrolls, err := s.repo.ListByPeriod(ctx, startDate, endDate)
	if err != nil {
		return nil, nil, apierror.Internal("failed to list payroll")
	}

	summary := &dto.PayrollPeriodSummary{
		TotalGross:      decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNet:        decimal.Zero,
	}
	data := make([]dto.PayrollResponse, len(payrolls))
	for i := range payrolls {
		p := &payrolls[i]
		data[i] = *payrollToResponse(p)
		summary.TotalEmployees++
		summary.TotalGross = summary.TotalGross.Add(p.GrossAmount)
		summary.TotalDeductions = summary.TotalDeductions.Add(p.Deductions)
		summary.TotalNet = summary.TotalNet.Add(p.NetAmount)
		switch p.Status {
		case model.PayrollPaid:
			summary.PaidCount++
		case model.PayrollPending:
			summary.PendingCount++
		}
	}
	return data, summary, nil
}

func (s *payrollService) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]dto.PayrollResponse, error) {
	payrolls, err := s.repo.ListByEmployee(ctx, employeeID, 12)
	if err != nil {
		return nil, apierror.Internal("failed to list payroll")
	}
	data := make([]dto.PayrollResponse, len(payrolls))
	for i := range payrolls {
		data[i] = *payrollToResponse(&payrolls[i])
	}
	return data, nil
}

func (s *payrollService) Export(ctx context.Context, start, end string) ([]byte, string, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, "", apierror.Validation("invalid period start")
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, "", apierror.Validation("invalid period end")
	}

	payrolls, err := s.repo.ListByPeriod(ctx, startDate, endDate)
	if err != nil {
		return nil, "", apierror.Internal("failed to load payroll")
	}
	if len(payrolls) == 0 {
		return nil, "", apierror.NotFound("no payroll for this period")
	}

	data, err := infra.RenderPayrollExportExcel(start, end, payrolls)
	if err != nil {
		return nil, "", apierror.Internal("failed to render export")
	}
	filename := "payroll_" + start + "_" + end + ".xlsx"
	return data, filename, nil
}

func payrollToResponse(p *model.Payroll) *dto.PayrollResponse {
	resp := &dto.PayrollResponse{
		ID:          p.ID.String(),
		EmployeeID:  p.EmployeeID.String(),
		PeriodStart: p.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   p.PeriodEnd.Format("2006-01-02"),
		TotalDays:   p.TotalDays,
		TotalHours:  p.TotalHours,
		RatePerDay:  p.RatePerDay,
		GrossAmount: p.GrossAmount,
		Deductions:  p.Deductions,
		NetAmount:   p.NetAmount,
		Status:      p.Status,
	}
	if p.Employee != nil {
		resp.FullName = p.Employee.FullName
		resp.Position = p.Employee.Position
	}
	if p.PaidDate != nil {
		d := p.PaidDate.Format("2006-01-02")
		resp.PaidDate = &d
	}
	return resp
}
