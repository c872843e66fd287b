package service

import (
	"context"
	"time"

	"github.com/ReponseBlaise/Preferred-System/internal/apierror"
	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/infra"
	"github.com/ReponseBlaise/Preferred-System/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportOutput is either a JSON payload or a rendered binary document.
type ReportOutput struct {
	JSON        interface{}
	Binary      []byte
	ContentType string
	Filename    string
}

type ReportService interface {
	Payroll(ctx context.Context, query dto.PayrollReportQuery) (*ReportOutput, error)
	Inventory(ctx context.Context, query dto.InventoryReportQuery) (*ReportOutput, error)
}

type reportService struct {
	payrollRepo   repository.PayrollRepository
	inventoryRepo repository.InventoryRepository
	projectRepo   repository.ProjectRepository
}

func NewReportService(
	payrollRepo repository.PayrollRepository,
	inventoryRepo repository.InventoryRepository,
	projectRepo repository.ProjectRepository,
) ReportService {
	return &reportService{payrollRepo: payrollRepo, inventoryRepo: inventoryRepo, projectRepo: projectRepo}
}

// Payroll builds the period report for one project. Amounts follow the
// payroll aggregator (days present × rate); employees with no attendance in
// the window are omitted — unlike generation, which always snapshots them.
func (s *reportService) Payroll(ctx context.Context, query dto.PayrollReportQuery) (*ReportOutput, error) {
	projectID, err := uuid.Parse(query.ProjectID)
	if err != nil {
		return nil, apierror.Validation("invalid project_id")
	}
	start, err := time.Parse("2006-01-02", query.StartDate)
	if err != nil {
		return nil, apierror.Validation("invalid start_date")
	}
	end, err := time.Parse("2006-01-02", query.EndDate)
	if err != nil {
		return nil, apierror.Validation("invalid end_date")
	}
	if start.After(end) {
		return nil, apierror.Validation("start_date must not be after end_date")
	}

	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, apierror.NotFound("project not found")
	}

	aggregates, err := s.payrollRepo.AggregateForPeriod(ctx, nil, start, end, &projectID)
	if err != nil {
		return nil, apierror.Internal("failed to aggregate attendance")
	}

	report := &dto.PayrollReport{
		Period: dto.PeriodInfo{
			ProjectName:  project.ProjectName,
			ProjectCode:  project.ProjectCode,
			Location:     project.Location,
			StartDate:    query.StartDate,
			EndDate:      query.EndDate,
			DaysInPeriod: int(end.Sub(start).Hours()/24) + 1,
		},
		Summary: dto.PayrollReportSummary{TotalAmount: decimal.Zero},
	}
	report.Period.PeriodType = periodType(report.Period.DaysInPeriod)

	for _, agg := range aggregates {
		if agg.DaysPresent == 0 {
			continue
		}
		amount := agg.RatePerDay.Mul(decimal.NewFromInt(int64(agg.DaysPresent)))
		report.Rows = append(report.Rows, dto.PayrollReportRow{
			EmployeeID:  agg.EmployeeID.String(),
			FullName:    agg.FullName,
			Position:    agg.Position,
			RatePerDay:  agg.RatePerDay,
			DaysWorked:  agg.DaysPresent,
			TotalHours:  agg.TotalHours,
			TotalAmount: amount,
		})
		report.Summary.TotalEmployees++
		report.Summary.TotalDaysWorked += agg.DaysPresent
		report.Summary.TotalAmount = report.Summary.TotalAmount.Add(amount)
	}

	base := "payroll_report_" + project.ProjectCode + "_" + query.EndDate
	switch query.Format {
	case "pdf":
		data, err := infra.RenderPayrollReportPDF(report)
		if err != nil {
			return nil, apierror.Internal("failed to render report")
		}
		return &ReportOutput{Binary: data, ContentType: contentTypePDF, Filename: base + ".pdf"}, nil
	case "excel":
		data, err := infra.RenderPayrollReportExcel(report)
		if err != nil {
			return nil, apierror.Internal("failed to render report")
		}
		return &ReportOutput{Binary: data, ContentType: contentTypeXLSX, Filename: base + ".xlsx"}, nil
	default:
		return &ReportOutput{JSON: report}, nil
	}
}

// Inventory builds the current stock report for one project, ordered by
// category then item name.
func (s *reportService) Inventory(ctx context.Context, query dto.InventoryReportQuery) (*ReportOutput, error) {
	projectID, err := uuid.Parse(query.ProjectID)
	if err != nil {
		return nil, apierror.Validation("invalid project_id")
	}
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, apierror.NotFound("project not found")
	}

	items, err := s.inventoryRepo.ListForReport(ctx, projectID)
	if err != nil {
		return nil, apierror.Internal("failed to load inventory")
	}

	report := &dto.InventoryReport{
		ProjectName: project.ProjectName,
		ProjectCode: project.ProjectCode,
		Location:    project.Location,
		GeneratedAt: time.Now().UTC().Format("2006-01-02 15:04"),
		Summary: dto.InventoryReportSummary{
			TotalQuantity: decimal.Zero,
			TotalValue:    decimal.Zero,
		},
	}
	for i := range items {
		item := &items[i]
		report.Rows = append(report.Rows, *inventoryItemToResponse(item))
		report.Summary.TotalItems++
		report.Summary.TotalQuantity = report.Summary.TotalQuantity.Add(item.Quantity)
		report.Summary.TotalValue = report.Summary.TotalValue.Add(item.TotalValue)
	}

	base := "inventory_report_" + project.ProjectCode
	switch query.Format {
	case "pdf":
		data, err := infra.RenderInventoryReportPDF(report)
		if err != nil {
			return nil, apierror.Internal("failed to render report")
		}
		return &ReportOutput{Binary: data, ContentType: contentTypePDF, Filename: base + ".pdf"}, nil
	case "excel":
		data, err := infra.RenderInventoryReportExcel(report)
		if err != nil {
			return nil, apierror.Internal("failed to render report")
		}
		return &ReportOutput{Binary: data, ContentType: contentTypeXLSX, Filename: base + ".xlsx"}, nil
	default:
		return &ReportOutput{JSON: report}, nil
	}
}

func periodType(days int) string {
	switch days {
	case 7:
		return "Weekly"
	case 14:
		return "Bi-Weekly"
	default:
		return "Custom Period"
	}
}
