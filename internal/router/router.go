package router

import (
	"time"

	"github.com/ReponseBlaise/Preferred-System/internal/authz"
	"github.com/ReponseBlaise/Preferred-System/internal/config"
	"github.com/ReponseBlaise/Preferred-System/internal/handler"
	"github.com/ReponseBlaise/Preferred-System/internal/infra"
	"github.com/ReponseBlaise/Preferred-System/internal/middleware"
	"github.com/ReponseBlaise/Preferred-System/internal/repository"
	"github.com/ReponseBlaise/Preferred-System/internal/service"
	"github.com/ReponseBlaise/Preferred-System/internal/upload"
	"github.com/ReponseBlaise/Preferred-System/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, smtpCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	uploads := upload.NewStore(cfg.UploadPath)
	dispatcher := worker.NewDispatcher(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	attendRepo := repository.NewAttendanceRepository(db)
	payrollRepo := repository.NewPayrollRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	enquiryRepo := repository.NewEnquiryRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	auditSvc := service.NewAuditService(auditRepo)
	accessSvc := service.NewAccessService(projectRepo)
	authSvc := service.NewAuthService(userRepo, auditSvc, cfg)
	projectSvc := service.NewProjectService(projectRepo, userRepo, employeeRepo, inventoryRepo, expenseRepo, attendRepo, auditSvc)
	employeeSvc := service.NewEmployeeService(employeeRepo, projectRepo, auditSvc)
	attendanceSvc := service.NewAttendanceService(attendRepo, employeeRepo, projectRepo, auditSvc)
	notificationSvc := service.NewNotificationService(notificationRepo)
	payrollSvc := service.NewPayrollService(payrollRepo, auditSvc, notificationSvc, dispatcher)
	inventorySvc := service.NewInventoryService(inventoryRepo, expenseRepo, projectRepo, auditSvc)
	enquirySvc := service.NewEnquiryService(enquiryRepo, userRepo, notificationSvc, dispatcher, auditSvc)
	reportSvc := service.NewReportService(payrollRepo, inventoryRepo, projectRepo)
	dashboardSvc := service.NewDashboardService(employeeRepo, attendRepo, inventoryRepo, expenseRepo, enquiryRepo, payrollRepo, auditRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	projectsH := handler.NewProjectsHandler(projectSvc, accessSvc)
	employeesH := handler.NewEmployeesHandler(employeeSvc, accessSvc)
	attendanceH := handler.NewAttendanceHandler(attendanceSvc, accessSvc)
	payrollH := handler.NewPayrollHandler(payrollSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc, accessSvc)
	enquiriesH := handler.NewEnquiriesHandler(enquirySvc, uploads)
	reportsH := handler.NewReportsHandler(reportSvc, accessSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc, auditSvc)
	notificationsH := handler.NewNotificationsHandler(notificationSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, smtpCB))
	r.Static("/uploads", uploads.BasePath())

	auth := r.Group("/v1/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes — every endpoint is gated by one (resource, op) pair
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/auth/me", authH.Me)

		projects := v1.Group("/projects")
		{
			projects.POST("", middleware.RequireCapability(authz.ResProjects, authz.OpWrite), projectsH.Create)
			projects.GET("", middleware.RequireCapability(authz.ResProjects, authz.OpAdmin), projectsH.List)
			projects.GET("/mine", middleware.RequireCapability(authz.ResProjects, authz.OpRead), projectsH.ListMine)
			projects.POST("/:project_id/assign", middleware.RequireCapability(authz.ResProjects, authz.OpAdmin), projectsH.Assign)
			projects.GET("/:project_id/stats", middleware.RequireCapability(authz.ResProjects, authz.OpRead), projectsH.Stats)
		}

		employees := v1.Group("/employees")
		{
			employees.POST("", middleware.RequireCapability(authz.ResEmployees, authz.OpWrite), employeesH.Create)
			employees.GET("/project/:project_id", middleware.RequireCapability(authz.ResEmployees, authz.OpRead), employeesH.ListByProject)
			employees.PUT("/:id", middleware.RequireCapability(authz.ResEmployees, authz.OpWrite), employeesH.Update)
			employees.DELETE("/:id", middleware.RequireCapability(authz.ResEmployees, authz.OpDelete), employeesH.Delete)
		}

		attendance := v1.Group("/attendance")
		{
			attendance.GET("/table", middleware.RequireCapability(authz.ResAttendance, authz.OpRead), attendanceH.Table)
			attendance.POST("/bulk-save", middleware.RequireCapability(authz.ResAttendance, authz.OpWrite), attendanceH.BulkSave)
			attendance.GET("/history", middleware.RequireCapability(authz.ResAttendance, authz.OpRead), attendanceH.History)
		}

		payroll := v1.Group("/payroll")
		{
			payroll.POST("/generate", middleware.RequireCapability(authz.ResPayroll, authz.OpAdmin), payrollH.Generate)
			payroll.GET("", middleware.RequireCapability(authz.ResPayroll, authz.OpRead), payrollH.List)
			payroll.GET("/period/:start/:end", middleware.RequireCapability(authz.ResPayroll, authz.OpRead), payrollH.ByPeriod)
			payroll.GET("/employee/:employeeId", middleware.RequireCapability(authz.ResPayroll, authz.OpRead), payrollH.ByEmployee)
			payroll.GET("/export", middleware.RequireCapability(authz.ResPayroll, authz.OpAdmin), payrollH.Export)
			payroll.PUT("/:id/mark-paid", middleware.RequireCapability(authz.ResPayroll, authz.OpAdmin), payrollH.MarkPaid)
			payroll.PUT("/:id/cancel", middleware.RequireCapability(authz.ResPayroll, authz.OpAdmin), payrollH.Cancel)
		}

		inventory := v1.Group("/inventory")
		{
			inventory.GET("", middleware.RequireCapability(authz.ResInventory, authz.OpRead), inventoryH.List)
			inventory.POST("", middleware.RequireCapability(authz.ResInventory, authz.OpWrite), inventoryH.Create)
			inventory.PUT("/:id", middleware.RequireCapability(authz.ResInventory, authz.OpWrite), inventoryH.Update)
			inventory.DELETE("/:id", middleware.RequireCapability(authz.ResInventory, authz.OpDelete), inventoryH.Delete)
		}

		expenses := v1.Group("/expenses")
		{
			expenses.GET("", middleware.RequireCapability(authz.ResExpenses, authz.OpRead), inventoryH.ListExpenses)
			expenses.POST("", middleware.RequireCapability(authz.ResExpenses, authz.OpWrite), inventoryH.CreateExpense)
		}

		enquiries := v1.Group("/enquiries")
		{
			enquiries.POST("", middleware.RequireCapability(authz.ResEnquiries, authz.OpWrite), enquiriesH.Create)
			enquiries.GET("", middleware.RequireCapability(authz.ResEnquiries, authz.OpRead), enquiriesH.List)
			enquiries.GET("/pending-count", middleware.RequireCapability(authz.ResEnquiries, authz.OpRead), enquiriesH.PendingCount)
			enquiries.GET("/:id", middleware.RequireCapability(authz.ResEnquiries, authz.OpRead), enquiriesH.Get)
			enquiries.PUT("/:id/respond", middleware.RequireCapability(authz.ResEnquiries, authz.OpAdmin), enquiriesH.Respond)
			enquiries.PUT("/:id/status", middleware.RequireCapability(authz.ResEnquiries, authz.OpAdmin), enquiriesH.UpdateStatus)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/payroll", middleware.RequireCapability(authz.ResReports, authz.OpRead), reportsH.Payroll)
			reports.GET("/inventory", middleware.RequireCapability(authz.ResReports, authz.OpAdmin), reportsH.Inventory)
		}

		dashboard := v1.Group("/dashboard", middleware.RequireCapability(authz.ResDashboard, authz.OpRead))
		{
			dashboard.GET("/stats", dashboardH.Stats)
			dashboard.GET("/audit-logs", dashboardH.AuditLogs)
		}

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", middleware.RequireCapability(authz.ResNotifications, authz.OpRead), notificationsH.List)
			notifications.PUT("/:id/read", middleware.RequireCapability(authz.ResNotifications, authz.OpWrite), notificationsH.MarkRead)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
