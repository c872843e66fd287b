package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ReponseBlaise/Preferred-System/internal/apierror"
	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = 30 * time.Second
)

type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStats, error)
}

type dashboardService struct {
	employeeRepo  repository.EmployeeRepository
	attendRepo    repository.AttendanceRepository
	inventoryRepo repository.InventoryRepository
	expenseRepo   repository.ExpenseRepository
	enquiryRepo   repository.EnquiryRepository
	payrollRepo   repository.PayrollRepository
	auditRepo     repository.AuditRepository
	rdb           *redis.Client
}

func NewDashboardService(
	employeeRepo repository.EmployeeRepository,
	attendRepo repository.AttendanceRepository,
	inventoryRepo repository.InventoryRepository,
	expenseRepo repository.ExpenseRepository,
	enquiryRepo repository.EnquiryRepository,
	payrollRepo repository.PayrollRepository,
	auditRepo repository.AuditRepository,
	rdb *redis.Client,
) DashboardService {
	return &dashboardService{
		employeeRepo:  employeeRepo,
		attendRepo:    attendRepo,
		inventoryRepo: inventoryRepo,
		expenseRepo:   expenseRepo,
		enquiryRepo:   enquiryRepo,
		payrollRepo:   payrollRepo,
		auditRepo:     auditRepo,
		rdb:           rdb,
	}
}

// Stats aggregates the manager dashboard. Results are cached in redis for
// 30 seconds; cache errors fall through to a fresh computation.
func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var stats dto.DashboardStats
			if err := json.Unmarshal(cached, &stats); err == nil {
				return &stats, nil
			}
		}
	}

	today := todayUTC()

	employees, err := s.employeeRepo.CountActive(ctx)
	if err != nil {
		return nil, apierror.Internal("failed to compute dashboard")
	}
	attendance, err := s.attendRepo.CountByDate(ctx, today)
	if err != nil {
		return nil, apierror.Internal("failed to compute dashboard")
	}
	inventoryValue, err := s.inventoryRepo.SumTotalValue(ctx)
	if err != nil {
		return nil, apierror.Internal("failed to compute dashboard")
	}
	monthExpenses, err := s.expenseRepo.SumMonth(ctx, today.Year(), today.Month())
	if err != nil {
		return nil, apierror.Internal("failed to compute dashboard")
	}
	pendingEnquiries, err := s.enquiryRepo.CountPending(ctx)
	if err != nil {
		return nil, apierror.Internal("failed to compute dashboard")
	}
	monthPayroll, err := s.payrollRepo.MonthTotal(ctx, today.Year(), today.Month())
	if err != nil {
		return nil, apierror.Internal("failed to compute dashboard")
	}
	recent, err := s.auditRepo.Recent(ctx, 10)
	if err != nil {
		return nil, apierror.Internal("failed to compute dashboard")
	}

	stats := &dto.DashboardStats{
		TotalEmployees:   employees,
		TodayAttendance:  attendance,
		InventoryValue:   inventoryValue,
		MonthExpenses:    monthExpenses,
		PendingEnquiries: pendingEnquiries,
		MonthPayroll:     monthPayroll,
		RecentActivities: recent,
	}

	if s.rdb != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.rdb.Set(ctx, dashboardCacheKey, data, dashboardCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("dashboard cache write failed")
			}
		}
	}
	return stats, nil
}
