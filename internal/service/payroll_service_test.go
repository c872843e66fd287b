package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/ReponseBlaise/Preferred-System/internal/apierror"
	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/model"
	"github.com/ReponseBlaise/Preferred-System/internal/repository"
	"github.com/ReponseBlaise/Preferred-System/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPayrollSvc() (service.PayrollService, *stubPayrollRepo) {
	repo := newStubPayrollRepo()
	return service.NewPayrollService(repo, testAudit(), nil, nil), repo
}

func aggregate(name, position string, rate float64, hours float64, days int) repository.PayrollAggregate {
	return repository.PayrollAggregate{
		EmployeeID:  uuid.New(),
		FullName:    name,
		Position:    position,
		RatePerDay:  decimal.NewFromFloat(rate),
		TotalHours:  decimal.NewFromFloat(hours),
		DaysPresent: days,
	}
}

func TestGeneratePayroll_Amounts(t *testing.T) {
	svc, repo := buildPayrollSvc()
	repo.aggregates = []repository.PayrollAggregate{
		aggregate("Alice Mason", "Mason", 15000, 24, 3),
		aggregate("Bob Carpenter", "Carpenter", 20000, 8, 1),
	}

	resp, err := svc.Generate(context.Background(), uuid.New(), dto.GeneratePayrollRequest{
		PeriodStart: "2026-08-01",
		PeriodEnd:   "2026-08-07",
	})
	require.NoError(t, err)
	require.Len(t, resp, 2)

	byName := map[string]dto.PayrollResponse{}
	for _, p := range resp {
		byName[p.FullName] = p
	}

	// 15000 × 3 days = 45000; deductions are always zero so net == gross
	assert.Equal(t, "45000", byName["Alice Mason"].GrossAmount.String())
	assert.Equal(t, "45000", byName["Alice Mason"].NetAmount.String())
	assert.True(t, byName["Alice Mason"].Deductions.IsZero())
	assert.Equal(t, 3, byName["Alice Mason"].TotalDays)

	// 20000 × 1 day = 20000
	assert.Equal(t, "20000", byName["Bob Carpenter"].GrossAmount.String())
	assert.Equal(t, model.PayrollPending, byName["Bob Carpenter"].Status)
}

func TestGeneratePayroll_ZeroAttendanceStillSnapshotted(t *testing.T) {
	svc, repo := buildPayrollSvc()
	// the aggregation's LEFT JOIN yields a zero row for employees with no
	// attendance in the window; generation must keep it
	repo.aggregates = []repository.PayrollAggregate{
		aggregate("Idle Worker", "Laborer", 10000, 0, 0),
	}

	resp, err := svc.Generate(context.Background(), uuid.New(), dto.GeneratePayrollRequest{
		PeriodStart: "2026-08-01",
		PeriodEnd:   "2026-08-07",
	})
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, 0, resp[0].TotalDays)
	assert.True(t, resp[0].GrossAmount.IsZero())
	assert.True(t, resp[0].NetAmount.IsZero())
	assert.Equal(t, "10000", resp[0].RatePerDay.String())
}

func TestGeneratePayroll_RateCapturedByValue(t *testing.T) {
	svc, repo := buildPayrollSvc()
	agg := aggregate("Carol Welder", "Welder", 18000, 16, 2)
	repo.aggregates = []repository.PayrollAggregate{agg}

	resp, err := svc.Generate(context.Background(), uuid.New(), dto.GeneratePayrollRequest{
		PeriodStart: "2026-08-01",
		PeriodEnd:   "2026-08-07",
	})
	require.NoError(t, err)

	// a later rate change must not touch the stored snapshot
	stored, err := repo.FindByID(context.Background(), uuid.MustParse(resp[0].ID))
	require.NoError(t, err)
	assert.Equal(t, "18000", stored.RatePerDay.String())
	assert.Equal(t, "36000", stored.GrossAmount.String())
}

func TestGeneratePayroll_DuplicatePeriodConflict(t *testing.T) {
	svc, repo := buildPayrollSvc()
	repo.aggregates = []repository.PayrollAggregate{
		aggregate("Alice Mason", "Mason", 15000, 8, 1),
	}

	req := dto.GeneratePayrollRequest{PeriodStart: "2026-08-01", PeriodEnd: "2026-08-07"}
	_, err := svc.Generate(context.Background(), uuid.New(), req)
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), uuid.New(), req)
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindConflict, apiErr.Kind)
}

func TestGeneratePayroll_FutureEndRejected(t *testing.T) {
	svc, _ := buildPayrollSvc()
	future := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")

	_, err := svc.Generate(context.Background(), uuid.New(), dto.GeneratePayrollRequest{
		PeriodStart: "2026-08-01",
		PeriodEnd:   future,
	})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindValidation, apiErr.Kind)
}

func TestGeneratePayroll_StartAfterEndRejected(t *testing.T) {
	svc, _ := buildPayrollSvc()
	_, err := svc.Generate(context.Background(), uuid.New(), dto.GeneratePayrollRequest{
		PeriodStart: "2026-08-07",
		PeriodEnd:   "2026-08-01",
	})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindValidation, apiErr.Kind)
}

func TestMarkPaid_RefreshesPaidDate(t *testing.T) {
	svc, repo := buildPayrollSvc()
	repo.aggregates = []repository.PayrollAggregate{
		aggregate("Alice Mason", "Mason", 15000, 8, 1),
	}
	resp, err := svc.Generate(context.Background(), uuid.New(), dto.GeneratePayrollRequest{
		PeriodStart: "2026-08-01", PeriodEnd: "2026-08-07",
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp[0].ID)

	paid, err := svc.MarkPaid(context.Background(), uuid.New(), id, dto.MarkPaidRequest{PaidDate: "2026-08-10"})
	require.NoError(t, err)
	assert.Equal(t, model.PayrollPaid, paid.Status)
	require.NotNil(t, paid.PaidDate)
	assert.Equal(t, "2026-08-10", *paid.PaidDate)

	// re-marking an already paid snapshot is allowed and moves the date
	paid, err = svc.MarkPaid(context.Background(), uuid.New(), id, dto.MarkPaidRequest{PaidDate: "2026-08-12"})
	require.NoError(t, err)
	require.NotNil(t, paid.PaidDate)
	assert.Equal(t, "2026-08-12", *paid.PaidDate)
}

func TestMarkPaid_CancelledConflict(t *testing.T) {
	svc, repo := buildPayrollSvc()
	repo.aggregates = []repository.PayrollAggregate{
		aggregate("Alice Mason", "Mason", 15000, 8, 1),
	}
	resp, err := svc.Generate(context.Background(), uuid.New(), dto.GeneratePayrollRequest{
		PeriodStart: "2026-08-01", PeriodEnd: "2026-08-07",
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp[0].ID)

	_, err = svc.Cancel(context.Background(), uuid.New(), id)
	require.NoError(t, err)

	_, err = svc.MarkPaid(context.Background(), uuid.New(), id, dto.MarkPaidRequest{PaidDate: "2026-08-10"})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindConflict, apiErr.Kind)
}

func TestCancel_OnlyPending(t *testing.T) {
	svc, repo := buildPayrollSvc()
	repo.aggregates = []repository.PayrollAggregate{
		aggregate("Alice Mason", "Mason", 15000, 8, 1),
	}
	resp, err := svc.Generate(context.Background(), uuid.New(), dto.GeneratePayrollRequest{
		PeriodStart: "2026-08-01", PeriodEnd: "2026-08-07",
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp[0].ID)

	_, err = svc.MarkPaid(context.Background(), uuid.New(), id, dto.MarkPaidRequest{PaidDate: "2026-08-10"})
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), uuid.New(), id)
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindConflict, apiErr.Kind)
}

func TestListByPeriod_Summary(t *testing.T) {
	svc, repo := buildPayrollSvc()
	repo.aggregates = []repository.PayrollAggregate{
		aggregate("Alice Mason", "Mason", 15000, 24, 3),
		aggregate("Bob Carpenter", "Carpenter", 20000, 8, 1),
	}
	_, err := svc.Generate(context.Background(), uuid.New(), dto.GeneratePayrollRequest{
		PeriodStart: "2026-08-01", PeriodEnd: "2026-08-07",
	})
	require.NoError(t, err)

	rows, summary, err := svc.ListByPeriod(context.Background(), "2026-08-01", "2026-08-07")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, 2, summary.TotalEmployees)
	assert.Equal(t, "65000", summary.TotalGross.String())
	assert.Equal(t, "65000", summary.TotalNet.String())
	assert.True(t, summary.TotalDeductions.IsZero())
	assert.Equal(t, 2, summary.PendingCount)
	assert.Equal(t, 0, summary.PaidCount)
}
