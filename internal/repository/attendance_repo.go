package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ReponseBlaise/Preferred-System/internal/model"
)

// AttendanceRepository defines the data access contract for the attendance
// ledger. The (employee_id, attendance_date) uniqueness lives in the schema;
// BulkUpsert leans on it via ON CONFLICT.
type AttendanceRepository interface {
	// FindByProjectAndDate returns the stored records for one project day,
	// keyed by employee. Employees without a row are simply absent from the map.
	FindByProjectAndDate(ctx context.Context, projectID uuid.UUID, date time.Time) (map[uuid.UUID]model.Attendance, error)

	// BulkUpsert applies all records in one transaction: insert-or-overwrite
	// per (employee_id, attendance_date). A failure on any record rolls back
	// every write of the call.
	BulkUpsert(ctx context.Context, records []model.Attendance) error

	History(ctx context.Context, projectID uuid.UUID, start, end *time.Time, employeeID *uuid.UUID) ([]model.Attendance, error)

	CountByDate(ctx context.Context, date time.Time) (int64, error)
	CountByProjectAndDate(ctx context.Context, projectID uuid.UUID, date time.Time) (int64, error)
}

type attendanceRepo struct{ db *gorm.DB }

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository { return &attendanceRepo{db: db} }

func (r *attendanceRepo) FindByProjectAndDate(ctx context.Context, projectID uuid.UUID, date time.Time) (map[uuid.UUID]model.Attendance, error) {
	var rows []model.Attendance
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND attendance_date = ?", projectID, date).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[uuid.UUID]model.Attendance, len(rows))
	for _, rec := range rows {
		byEmployee[rec.EmployeeID] = rec
	}
	return byEmployee, nil
}

func (r *attendanceRepo) BulkUpsert(ctx context.Context, records []model.Attendance) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range records {
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "employee_id"}, {Name: "attendance_date"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"status", "hours_worked", "comment", "updated_at",
				}),
			}).Create(&records[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *attendanceRepo) History(ctx context.Context, projectID uuid.UUID, start, end *time.Time, employeeID *uuid.UUID) ([]model.Attendance, error) {
	q := r.db.WithContext(ctx).Model(&model.Attendance{}).
		Joins("JOIN employees ON employees.id = attendances.employee_id").
		Where("attendances.project_id = ?", projectID).
		Preload("Employee")

	if start != nil {
		q = q.Where("attendances.attendance_date >= ?", *start)
	}
	if end != nil {
		q = q.Where("attendances.attendance_date <= ?", *end)
	}
	if employeeID != nil {
		q = q.Where("attendances.employee_id = ?", *employeeID)
	}

	var rows []model.Attendance
	err := q.Order("attendances.attendance_date DESC, employees.full_name ASC").Find(&rows).Error
	return rows, err
}

func (r *attendanceRepo) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Attendance{}).
		Where("attendance_date = ?", date).Count(&n).Error
	return n, err
}

func (r *attendanceRepo) CountByProjectAndDate(ctx context.Context, projectID uuid.UUID, date time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Attendance{}).
		Where("project_id = ? AND attendance_date = ?", projectID, date).Count(&n).Error
	return n, err
}
