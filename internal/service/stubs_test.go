package service_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/model"
	"github.com/ReponseBlaise/Preferred-System/internal/repository"
	"github.com/ReponseBlaise/Preferred-System/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

var errNotFound = errors.New("not found")

// stubUserRepo is an in-memory UserRepository for testing.
type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.IsActive {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *stubUserRepo) FindByUsernameOrEmail(_ context.Context, username, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *stubUserRepo) FindFirstManager(_ context.Context) (*model.User, error) {
	var first *model.User
	for _, u := range r.users {
		if u.Role != "manager" || !u.IsActive {
			continue
		}
		if first == nil || u.CreatedAt.Before(first.CreatedAt) {
			first = u
		}
	}
	if first == nil {
		return nil, errNotFound
	}
	return first, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return errNotFound
	}
	u.IsActive = false
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// stubProjectRepo holds projects and explicit (user, project) assignments.
type stubProjectRepo struct {
	projects    map[uuid.UUID]*model.Project
	assignments map[[2]uuid.UUID]bool
	assignErr   error
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{
		projects:    make(map[uuid.UUID]*model.Project),
		assignments: make(map[[2]uuid.UUID]bool),
	}
}

func (r *stubProjectRepo) Create(_ context.Context, p *model.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for _, existing := range r.projects {
		if existing.ProjectCode == p.ProjectCode {
			return errors.New("project code already exists")
		}
	}
	r.projects[p.ID] = p
	return nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubProjectRepo) List(_ context.Context) ([]model.Project, error) {
	var out []model.Project
	for _, p := range r.projects {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Project, error) {
	var out []model.Project
	for _, p := range r.projects {
		if p.IsActive && r.assignments[[2]uuid.UUID{userID, p.ID}] {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) CreateAssignment(_ context.Context, a *model.ProjectAssignment) error {
	r.assignments[[2]uuid.UUID{a.UserID, a.ProjectID}] = true
	return nil
}

func (r *stubProjectRepo) AssignmentExists(_ context.Context, userID, projectID uuid.UUID) (bool, error) {
	if r.assignErr != nil {
		return false, r.assignErr
	}
	return r.assignments[[2]uuid.UUID{userID, projectID}], nil
}

var _ repository.ProjectRepository = (*stubProjectRepo)(nil)

// stubEmployeeRepo keeps the active roster ordering of the real repository:
// lower(full_name) asc, id asc.
type stubEmployeeRepo struct {
	employees map[uuid.UUID]*model.Employee
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[uuid.UUID]*model.Employee)}
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.employees[e.ID] = e
	return nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, errNotFound
	}
	return e, nil
}

func (r *stubEmployeeRepo) ListByProject(_ context.Context, projectID uuid.UUID, _ dto.EmployeeFilter) ([]model.Employee, error) {
	return r.activeByProject(projectID), nil
}

func (r *stubEmployeeRepo) ListActiveByProject(_ context.Context, projectID uuid.UUID) ([]model.Employee, error) {
	return r.activeByProject(projectID), nil
}

func (r *stubEmployeeRepo) activeByProject(projectID uuid.UUID) []model.Employee {
	var out []model.Employee
	for _, e := range r.employees {
		if e.ProjectID == projectID && e.IsActive {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].FullName), strings.ToLower(out[j].FullName)
		if a != b {
			return a < b
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *model.Employee) error {
	r.employees[e.ID] = e
	return nil
}

func (r *stubEmployeeRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	e, ok := r.employees[id]
	if !ok {
		return errNotFound
	}
	e.IsActive = false
	return nil
}

func (r *stubEmployeeRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, e := range r.employees {
		if e.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *stubEmployeeRepo) CountActiveByProject(_ context.Context, projectID uuid.UUID) (int64, error) {
	return int64(len(r.activeByProject(projectID))), nil
}

var _ repository.EmployeeRepository = (*stubEmployeeRepo)(nil)

// stubAttendanceRepo keys records by (employee, date) so repeated bulk-saves
// overwrite rather than duplicate, like the real upsert. When employees is
// set, History preloads the employee like the real repository does.
type stubAttendanceRepo struct {
	records   map[string]model.Attendance
	employees *stubEmployeeRepo
}

func newStubAttendanceRepo() *stubAttendanceRepo {
	return &stubAttendanceRepo{records: make(map[string]model.Attendance)}
}

func attKey(employeeID uuid.UUID, date time.Time) string {
	return employeeID.String() + "|" + date.Format("2006-01-02")
}

func (r *stubAttendanceRepo) FindByProjectAndDate(_ context.Context, projectID uuid.UUID, date time.Time) (map[uuid.UUID]model.Attendance, error) {
	out := make(map[uuid.UUID]model.Attendance)
	for _, rec := range r.records {
		if rec.ProjectID == projectID && rec.AttendanceDate.Equal(date) {
			out[rec.EmployeeID] = rec
		}
	}
	return out, nil
}

func (r *stubAttendanceRepo) BulkUpsert(_ context.Context, records []model.Attendance) error {
	for _, rec := range records {
		key := attKey(rec.EmployeeID, rec.AttendanceDate)
		if existing, ok := r.records[key]; ok {
			rec.ID = existing.ID
		} else if rec.ID == uuid.Nil {
			rec.ID = uuid.New()
		}
		r.records[key] = rec
	}
	return nil
}

func (r *stubAttendanceRepo) History(_ context.Context, projectID uuid.UUID, start, end *time.Time, employeeID *uuid.UUID) ([]model.Attendance, error) {
	var out []model.Attendance
	for _, rec := range r.records {
		if rec.ProjectID != projectID {
			continue
		}
		if start != nil && rec.AttendanceDate.Before(*start) {
			continue
		}
		if end != nil && rec.AttendanceDate.After(*end) {
			continue
		}
		if employeeID != nil && rec.EmployeeID != *employeeID {
			continue
		}
		if r.employees != nil {
			if e, ok := r.employees.employees[rec.EmployeeID]; ok {
				rec.Employee = e
			}
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AttendanceDate.After(out[j].AttendanceDate)
	})
	return out, nil
}

func (r *stubAttendanceRepo) CountByDate(_ context.Context, date time.Time) (int64, error) {
	var n int64
	for _, rec := range r.records {
		if rec.AttendanceDate.Equal(date) && rec.Status == model.AttendancePresent {
			n++
		}
	}
	return n, nil
}

func (r *stubAttendanceRepo) CountByProjectAndDate(_ context.Context, projectID uuid.UUID, date time.Time) (int64, error) {
	var n int64
	for _, rec := range r.records {
		if rec.ProjectID == projectID && rec.AttendanceDate.Equal(date) && rec.Status == model.AttendancePresent {
			n++
		}
	}
	return n, nil
}

var _ repository.AttendanceRepository = (*stubAttendanceRepo)(nil)

// stubPayrollRepo serves a preset aggregation and stores created snapshots.
type stubPayrollRepo struct {
	aggregates []repository.PayrollAggregate
	payrolls   map[uuid.UUID]*model.Payroll
}

func newStubPayrollRepo() *stubPayrollRepo {
	return &stubPayrollRepo{payrolls: make(map[uuid.UUID]*model.Payroll)}
}

func (r *stubPayrollRepo) AggregateForPeriod(_ context.Context, _ *gorm.DB, _, _ time.Time, _ *uuid.UUID) ([]repository.PayrollAggregate, error) {
	return r.aggregates, nil
}

func (r *stubPayrollRepo) CreateTx(_ *gorm.DB, p *model.Payroll) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	stored := *p
	r.payrolls[p.ID] = &stored
	return nil
}

func (r *stubPayrollRepo) ExistsForPeriod(_ context.Context, start, end time.Time) (bool, error) {
	for _, p := range r.payrolls {
		if p.PeriodStart.Equal(start) && p.PeriodEnd.Equal(end) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubPayrollRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Payroll, error) {
	p, ok := r.payrolls[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubPayrollRepo) Update(_ context.Context, p *model.Payroll) error {
	r.payrolls[p.ID] = p
	return nil
}

func (r *stubPayrollRepo) List(_ context.Context, filter dto.PayrollFilter) ([]model.Payroll, int64, error) {
	var out []model.Payroll
	for _, p := range r.payrolls {
		if filter.Status == "" || p.Status == filter.Status {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubPayrollRepo) ListByPeriod(_ context.Context, start, end time.Time) ([]model.Payroll, error) {
	var out []model.Payroll
	for _, p := range r.payrolls {
		if p.PeriodStart.Equal(start) && p.PeriodEnd.Equal(end) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPayrollRepo) ListByEmployee(_ context.Context, employeeID uuid.UUID, limit int) ([]model.Payroll, error) {
	var out []model.Payroll
	for _, p := range r.payrolls {
		if p.EmployeeID == employeeID {
			out = append(out, *p)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubPayrollRepo) MonthTotal(_ context.Context, _ int, _ time.Month) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *stubPayrollRepo) DB() *gorm.DB { return nil }

var _ repository.PayrollRepository = (*stubPayrollRepo)(nil)

// stubInventoryRepo is an in-memory InventoryRepository.
type stubInventoryRepo struct {
	items map[uuid.UUID]*model.InventoryItem
}

func newStubInventoryRepo() *stubInventoryRepo {
	return &stubInventoryRepo{items: make(map[uuid.UUID]*model.InventoryItem)}
}

func (r *stubInventoryRepo) Create(_ context.Context, item *model.InventoryItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubInventoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, errNotFound
	}
	return item, nil
}

func (r *stubInventoryRepo) ListByProject(_ context.Context, projectID uuid.UUID, _ dto.InventoryFilter) ([]model.InventoryItem, error) {
	var out []model.InventoryItem
	for _, item := range r.items {
		if item.ProjectID == projectID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubInventoryRepo) ListForReport(ctx context.Context, projectID uuid.UUID) ([]model.InventoryItem, error) {
	return r.ListByProject(ctx, projectID, dto.InventoryFilter{})
}

func (r *stubInventoryRepo) Update(_ context.Context, item *model.InventoryItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *stubInventoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return errNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *stubInventoryRepo) SumTotalValue(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range r.items {
		total = total.Add(item.TotalValue)
	}
	return total, nil
}

func (r *stubInventoryRepo) SumTotalValueByProject(_ context.Context, projectID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range r.items {
		if item.ProjectID == projectID {
			total = total.Add(item.TotalValue)
		}
	}
	return total, nil
}

var _ repository.InventoryRepository = (*stubInventoryRepo)(nil)

type stubExpenseRepo struct {
	expenses []model.Expense
}

func (r *stubExpenseRepo) Create(_ context.Context, e *model.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.expenses = append(r.expenses, *e)
	return nil
}

func (r *stubExpenseRepo) ListByProject(_ context.Context, projectID uuid.UUID, _ dto.ExpenseFilter) ([]model.Expense, error) {
	var out []model.Expense
	for _, e := range r.expenses {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubExpenseRepo) SumByProject(_ context.Context, projectID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range r.expenses {
		if e.ProjectID == projectID {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

func (r *stubExpenseRepo) SumMonth(_ context.Context, _ int, _ time.Month) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

var _ repository.ExpenseRepository = (*stubExpenseRepo)(nil)

type stubEnquiryRepo struct {
	enquiries map[uuid.UUID]*model.Enquiry
}

func newStubEnquiryRepo() *stubEnquiryRepo {
	return &stubEnquiryRepo{enquiries: make(map[uuid.UUID]*model.Enquiry)}
}

func (r *stubEnquiryRepo) Create(_ context.Context, e *model.Enquiry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.enquiries[e.ID] = e
	return nil
}

func (r *stubEnquiryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Enquiry, error) {
	e, ok := r.enquiries[id]
	if !ok {
		return nil, errNotFound
	}
	return e, nil
}

func (r *stubEnquiryRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Enquiry, error) {
	var out []model.Enquiry
	for _, e := range r.enquiries {
		if e.FromUser == userID || e.ToUser == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubEnquiryRepo) ListAll(_ context.Context) ([]model.Enquiry, error) {
	var out []model.Enquiry
	for _, e := range r.enquiries {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEnquiryRepo) Update(_ context.Context, e *model.Enquiry) error {
	r.enquiries[e.ID] = e
	return nil
}

func (r *stubEnquiryRepo) CountPendingFor(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, e := range r.enquiries {
		if e.ToUser == userID && e.Status == model.EnquiryPending {
			n++
		}
	}
	return n, nil
}

func (r *stubEnquiryRepo) CountPending(_ context.Context) (int64, error) {
	var n int64
	for _, e := range r.enquiries {
		if e.Status == model.EnquiryPending {
			n++
		}
	}
	return n, nil
}

var _ repository.EnquiryRepository = (*stubEnquiryRepo)(nil)

type stubNotificationRepo struct {
	notifications []model.Notification
}

func (r *stubNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	r.notifications = append(r.notifications, *n)
	return nil
}

func (r *stubNotificationRepo) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id, userID uuid.UUID) error {
	for i := range r.notifications {
		if r.notifications[i].ID == id && r.notifications[i].UserID == userID {
			r.notifications[i].IsRead = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

var _ repository.NotificationRepository = (*stubNotificationRepo)(nil)

type stubAuditRepo struct {
	entries []model.AuditLogEntry
}

func (r *stubAuditRepo) Create(_ context.Context, entry *model.AuditLogEntry) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *stubAuditRepo) Recent(_ context.Context, _ int) ([]dto.AuditLogRow, error) {
	return nil, nil
}

func (r *stubAuditRepo) List(_ context.Context, _, _ int) ([]dto.AuditLogRow, int64, error) {
	return nil, 0, nil
}

var _ repository.AuditRepository = (*stubAuditRepo)(nil)

// ── Helpers ───────────────────────────────────────────────────────────────────

func testAudit() service.AuditService {
	return service.NewAuditService(&stubAuditRepo{})
}

func seedProject(repo *stubProjectRepo, name, code string) *model.Project {
	p := &model.Project{
		ID:          uuid.New(),
		ProjectName: name,
		ProjectCode: code,
		Location:    "Kigali",
		IsActive:    true,
	}
	repo.projects[p.ID] = p
	return p
}

func seedEmployee(repo *stubEmployeeRepo, projectID uuid.UUID, name, position string, rate float64) *model.Employee {
	e := &model.Employee{
		ID:         uuid.New(),
		ProjectID:  projectID,
		FullName:   name,
		Position:   position,
		RatePerDay: decimal.NewFromFloat(rate),
		IsActive:   true,
	}
	repo.employees[e.ID] = e
	return e
}
