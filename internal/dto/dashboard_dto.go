package dto

import "github.com/shopspring/decimal"

// DashboardStats backs GET /v1/dashboard/stats (manager only).
type DashboardStats struct {
	TotalEmployees   int64           `json:"totalEmployees"`
	TodayAttendance  int64           `json:"todayAttendance"`
	InventoryValue   decimal.Decimal `json:"inventoryValue"`
	MonthExpenses    decimal.Decimal `json:"monthExpenses"`
	PendingEnquiries int64           `json:"pendingEnquiries"`
	MonthPayroll     decimal.Decimal `json:"monthPayroll"`
	RecentActivities []AuditLogRow   `json:"recentActivities"`
}

type AuditLogRow struct {
	Action    string  `json:"action"`
	TableName string  `json:"table_name"`
	UserName  *string `json:"user_name"`
	CreatedAt string  `json:"created_at"`
}

type AuditLogListResponse struct {
	Data  []AuditLogRow `json:"data"`
	Total int64         `json:"total"`
}
