package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ReponseBlaise/Preferred-System/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that GORM
// cannot express on its own.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations creates / updates the schema. Also used by the integration
// test suite against throwaway containers.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.ProjectAssignment{},
		&model.Employee{},
		&model.Attendance{},
		&model.Payroll{},
		&model.InventoryItem{},
		&model.Expense{},
		&model.Enquiry{},
		&model.Notification{},
		&model.AuditLogEntry{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate does not cover:
// value constraints on closed status sets and non-negative amounts. Each
// statement is guarded so re-running on a patched schema is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		{"attendance status check", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_attendances_status') THEN
    ALTER TABLE attendances ADD CONSTRAINT chk_attendances_status
      CHECK (status IN ('present', 'absent', 'leave', 'half-day'));
  END IF;
END $$`},
		{"attendance hours non-negative", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_attendances_hours') THEN
    ALTER TABLE attendances ADD CONSTRAINT chk_attendances_hours
      CHECK (hours_worked >= 0);
  END IF;
END $$`},
		{"payroll status check", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_payrolls_status') THEN
    ALTER TABLE payrolls ADD CONSTRAINT chk_payrolls_status
      CHECK (status IN ('pending', 'processed', 'paid', 'cancelled'));
  END IF;
END $$`},
		{"employee rate positive", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_employees_rate') THEN
    ALTER TABLE employees ADD CONSTRAINT chk_employees_rate
      CHECK (rate_per_day > 0);
  END IF;
END $$`},
		{"inventory quantities non-negative", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_inventory_amounts') THEN
    ALTER TABLE inventory_items ADD CONSTRAINT chk_inventory_amounts
      CHECK (quantity >= 0 AND unit_price >= 0 AND total_value >= 0);
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
