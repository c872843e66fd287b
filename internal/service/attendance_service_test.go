package service_test

import (
	"context"
	"testing"

	"github.com/ReponseBlaise/Preferred-System/internal/apierror"
	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/model"
	"github.com/ReponseBlaise/Preferred-System/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAttendanceSvc() (service.AttendanceService, *stubAttendanceRepo, *stubEmployeeRepo, *stubProjectRepo) {
	attendRepo := newStubAttendanceRepo()
	employeeRepo := newStubEmployeeRepo()
	attendRepo.employees = employeeRepo
	projectRepo := newStubProjectRepo()
	svc := service.NewAttendanceService(attendRepo, employeeRepo, projectRepo, testAudit())
	return svc, attendRepo, employeeRepo, projectRepo
}

func TestDayTable_SynthesizesDefaultsInRosterOrder(t *testing.T) {
	svc, _, employeeRepo, projectRepo := buildAttendanceSvc()
	p := seedProject(projectRepo, "Warehouse Extension", "WH-01")
	seedEmployee(employeeRepo, p.ID, "zack stone", "Laborer", 8000)
	alice := seedEmployee(employeeRepo, p.ID, "Alice Mason", "Mason", 15000)

	rows, err := svc.DayTable(context.Background(), dto.AttendanceTableQuery{
		ProjectID:      p.ID.String(),
		AttendanceDate: "2026-08-20",
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// case-insensitive name ordering
	assert.Equal(t, alice.ID.String(), rows[0].EmployeeID)
	assert.Equal(t, "zack stone", rows[1].FullName)

	// nothing recorded yet: synthesized defaults, no attendance id
	for _, row := range rows {
		assert.Nil(t, row.AttendanceID)
		assert.Equal(t, model.AttendanceAbsent, row.Status)
		assert.True(t, row.HoursWorked.IsZero())
	}
}

func TestDayTable_OverlaysRecordedEntries(t *testing.T) {
	svc, _, employeeRepo, projectRepo := buildAttendanceSvc()
	p := seedProject(projectRepo, "Warehouse Extension", "WH-01")
	alice := seedEmployee(employeeRepo, p.ID, "Alice Mason", "Mason", 15000)
	seedEmployee(employeeRepo, p.ID, "Bob Carpenter", "Carpenter", 20000)

	_, err := svc.BulkSave(context.Background(), uuid.New(), dto.BulkSaveAttendanceRequest{
		ProjectID:      p.ID.String(),
		AttendanceDate: "2026-08-20",
		AttendanceRecords: []dto.AttendanceRecordInput{
			{EmployeeID: alice.ID.String(), Status: model.AttendancePresent, HoursWorked: decimal.NewFromInt(8)},
		},
	})
	require.NoError(t, err)

	rows, err := svc.DayTable(context.Background(), dto.AttendanceTableQuery{
		ProjectID:      p.ID.String(),
		AttendanceDate: "2026-08-20",
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.NotNil(t, rows[0].AttendanceID)
	assert.Equal(t, model.AttendancePresent, rows[0].Status)
	assert.Equal(t, "8", rows[0].HoursWorked.String())

	// Bob still gets the synthesized default
	assert.Nil(t, rows[1].AttendanceID)
	assert.Equal(t, model.AttendanceAbsent, rows[1].Status)
}

func TestBulkSave_RejectsNonRosterEmployee(t *testing.T) {
	svc, attendRepo, employeeRepo, projectRepo := buildAttendanceSvc()
	p := seedProject(projectRepo, "Warehouse Extension", "WH-01")
	alice := seedEmployee(employeeRepo, p.ID, "Alice Mason", "Mason", 15000)

	other := seedProject(projectRepo, "Bridge Works", "BR-02")
	stranger := seedEmployee(employeeRepo, other.ID, "Eve Outsider", "Laborer", 9000)

	_, err := svc.BulkSave(context.Background(), uuid.New(), dto.BulkSaveAttendanceRequest{
		ProjectID:      p.ID.String(),
		AttendanceDate: "2026-08-20",
		AttendanceRecords: []dto.AttendanceRecordInput{
			{EmployeeID: alice.ID.String(), Status: model.AttendancePresent, HoursWorked: decimal.NewFromInt(8)},
			{EmployeeID: stranger.ID.String(), Status: model.AttendancePresent, HoursWorked: decimal.NewFromInt(8)},
		},
	})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindValidation, apiErr.Kind)

	// one bad record rejects the whole batch: nothing was written
	assert.Empty(t, attendRepo.records)
}

func TestBulkSave_InvalidStatusRejected(t *testing.T) {
	svc, _, employeeRepo, projectRepo := buildAttendanceSvc()
	p := seedProject(projectRepo, "Warehouse Extension", "WH-01")
	alice := seedEmployee(employeeRepo, p.ID, "Alice Mason", "Mason", 15000)

	_, err := svc.BulkSave(context.Background(), uuid.New(), dto.BulkSaveAttendanceRequest{
		ProjectID:      p.ID.String(),
		AttendanceDate: "2026-08-20",
		AttendanceRecords: []dto.AttendanceRecordInput{
			{EmployeeID: alice.ID.String(), Status: "vacation", HoursWorked: decimal.NewFromInt(8)},
		},
	})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindValidation, apiErr.Kind)
}

func TestBulkSave_ResaveOverwritesInPlace(t *testing.T) {
	svc, attendRepo, employeeRepo, projectRepo := buildAttendanceSvc()
	p := seedProject(projectRepo, "Warehouse Extension", "WH-01")
	alice := seedEmployee(employeeRepo, p.ID, "Alice Mason", "Mason", 15000)

	req := dto.BulkSaveAttendanceRequest{
		ProjectID:      p.ID.String(),
		AttendanceDate: "2026-08-20",
		AttendanceRecords: []dto.AttendanceRecordInput{
			{EmployeeID: alice.ID.String(), Status: model.AttendancePresent, HoursWorked: decimal.NewFromInt(8)},
		},
	}
	resp, err := svc.BulkSave(context.Background(), uuid.New(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.RecordsSaved)

	// same day again with a correction: still one row, new values
	req.AttendanceRecords[0].Status = model.AttendanceHalfDay
	req.AttendanceRecords[0].HoursWorked = decimal.NewFromInt(4)
	resp, err = svc.BulkSave(context.Background(), uuid.New(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.RecordsSaved)

	assert.Len(t, attendRepo.records, 1)
	for _, rec := range attendRepo.records {
		assert.Equal(t, model.AttendanceHalfDay, rec.Status)
		assert.Equal(t, "4", rec.HoursWorked.String())
	}
}

func TestHistory_Filters(t *testing.T) {
	svc, _, employeeRepo, projectRepo := buildAttendanceSvc()
	p := seedProject(projectRepo, "Warehouse Extension", "WH-01")
	alice := seedEmployee(employeeRepo, p.ID, "Alice Mason", "Mason", 15000)
	bob := seedEmployee(employeeRepo, p.ID, "Bob Carpenter", "Carpenter", 20000)

	for _, day := range []string{"2026-08-18", "2026-08-19", "2026-08-20"} {
		_, err := svc.BulkSave(context.Background(), uuid.New(), dto.BulkSaveAttendanceRequest{
			ProjectID:      p.ID.String(),
			AttendanceDate: day,
			AttendanceRecords: []dto.AttendanceRecordInput{
				{EmployeeID: alice.ID.String(), Status: model.AttendancePresent, HoursWorked: decimal.NewFromInt(8)},
				{EmployeeID: bob.ID.String(), Status: model.AttendanceAbsent, HoursWorked: decimal.Zero},
			},
		})
		require.NoError(t, err)
	}

	rows, err := svc.History(context.Background(), dto.AttendanceHistoryQuery{
		ProjectID:  p.ID.String(),
		StartDate:  "2026-08-19",
		EmployeeID: alice.ID.String(),
	})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "Alice Mason", row.FullName)
	}
}
