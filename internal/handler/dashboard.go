package handler

import (
	"net/http"
	"strconv"

	"github.com/ReponseBlaise/Preferred-System/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svc   service.DashboardService
	audit service.AuditService
}

func NewDashboardHandler(svc service.DashboardService, audit service.AuditService) *DashboardHandler {
	return &DashboardHandler{svc: svc, audit: audit}
}

// Stats godoc
// @Summary      Aggregated dashboard counters
// @Description  Cached for 30 seconds; figures may lag writes by up to that window.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.DashboardStats
// @Router       /v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, stats)
}

// AuditLogs godoc
// @Summary      Paginated audit trail
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query int false "Page size (default 50, max 200)"
// @Param        offset query int false "Offset (default 0)"
// @Success      200 {object} dto.AuditLogListResponse
// @Router       /v1/dashboard/audit-logs [get]
func (h *DashboardHandler) AuditLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	resp, err := h.audit.List(c.Request.Context(), limit, offset)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}
