package worker

// report_worker.go
// Processes payroll-run report jobs from QueueReport. A job is enqueued after
// every successful payroll generation: the worker renders the run summary PDF
// and chains an email job so a manager gets the document without blocking the
// generation request.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ReponseBlaise/Preferred-System/internal/infra"
	"github.com/ReponseBlaise/Preferred-System/internal/model"
	"github.com/ReponseBlaise/Preferred-System/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReportJobPayload is the job envelope sent to QueueReport.
type ReportJobPayload struct {
	ProjectID   *string `json:"project_id,omitempty"`
	PeriodStart string  `json:"period_start"` // 2006-01-02
	PeriodEnd   string  `json:"period_end"`   // 2006-01-02
	GeneratedBy string  `json:"generated_by"`
}

// ReportWorker renders payroll run PDFs and chains delivery emails.
type ReportWorker struct {
	payrollRepo    repository.PayrollRepository
	projectRepo    repository.ProjectRepository
	userRepo       repository.UserRepository
	dispatcher     *Dispatcher
	pdfStoragePath string
}

// NewReportWorker wires all dependencies for the report worker.
func NewReportWorker(
	payrollRepo repository.PayrollRepository,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	dispatcher *Dispatcher,
	pdfStoragePath string,
) *ReportWorker {
	return &ReportWorker{
		payrollRepo:    payrollRepo,
		projectRepo:    projectRepo,
		userRepo:       userRepo,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process handles a single report job:
//  1. Parse ReportJobPayload from the job envelope
//  2. Load the payroll snapshots for the period
//  3. Render the run summary PDF
//  4. Enqueue an email job addressed to a manager with the PDF attached
func (w *ReportWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReportJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("report_worker: invalid payload")
		return
	}

	start, err := time.Parse("2006-01-02", payload.PeriodStart)
	if err != nil {
		log.Error().Str("period_start", payload.PeriodStart).Msg("report_worker: invalid period_start")
		return
	}
	end, err := time.Parse("2006-01-02", payload.PeriodEnd)
	if err != nil {
		log.Error().Str("period_end", payload.PeriodEnd).Msg("report_worker: invalid period_end")
		return
	}

	payrolls, err := w.payrollRepo.ListByPeriod(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Msg("report_worker: failed to load payrolls")
		return
	}
	if len(payrolls) == 0 {
		log.Warn().
			Str("period_start", payload.PeriodStart).
			Str("period_end", payload.PeriodEnd).
			Msg("report_worker: no payrolls for period, nothing to render")
		return
	}

	// A run may cover a single project or the whole roster.
	project := &model.Project{ProjectName: "All Projects", ProjectCode: "ALL"}
	if payload.ProjectID != nil {
		if pid, err := uuid.Parse(*payload.ProjectID); err == nil {
			if p, err := w.projectRepo.FindByID(ctx, pid); err == nil {
				project = p
			}
		}
	}

	pdfPath, err := infra.GeneratePayrollRunPDF(project, start, end, payrolls, w.pdfStoragePath)
	if err != nil {
		log.Error().Err(err).Msg("report_worker: PDF generation failed")
		return
	}
	log.Info().Str("pdf", pdfPath).Msg("report_worker: payroll run PDF generated")

	// Deliver to the generating manager, falling back to any manager.
	// Best effort — the PDF is already on disk.
	var manager *model.User
	if uid, err := uuid.Parse(payload.GeneratedBy); err == nil {
		if u, err := w.userRepo.FindByID(ctx, uid); err == nil {
			manager = u
		}
	}
	if manager == nil {
		if manager, err = w.userRepo.FindFirstManager(ctx); err != nil {
			log.Warn().Err(err).Msg("report_worker: no manager to email, skipping delivery")
			return
		}
	}

	emailJob := EmailJobPayload{
		ToEmail: manager.Email,
		Subject: fmt.Sprintf("Payroll run %s — %s to %s", project.ProjectCode, payload.PeriodStart, payload.PeriodEnd),
		Body: fmt.Sprintf("Payroll has been generated for %s (%s to %s).\n%d employee snapshots are attached.",
			project.ProjectName, payload.PeriodStart, payload.PeriodEnd, len(payrolls)),
		AttachmentPath: pdfPath,
	}
	if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
		log.Warn().Err(err).Str("email", manager.Email).Msg("report_worker: failed to enqueue email")
		return
	}
	log.Info().Str("email", manager.Email).Msg("report_worker: email job enqueued")
}
