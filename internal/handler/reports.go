package handler

import (
	"net/http"

	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReportsHandler struct {
	svc    service.ReportService
	access service.AccessService
}

func NewReportsHandler(svc service.ReportService, access service.AccessService) *ReportsHandler {
	return &ReportsHandler{svc: svc, access: access}
}

// Payroll godoc
// @Summary      On-demand payroll report for a project and period
// @Description  format=json returns the report body; format=pdf or excel streams the rendered document.
// @Tags         reports
// @Produce      json
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        project_id query string true  "Project UUID"
// @Param        start_date query string true  "YYYY-MM-DD"
// @Param        end_date   query string true  "YYYY-MM-DD"
// @Param        format     query string false "json | pdf | excel"
// @Success      200 {object} dto.PayrollReport
// @Router       /v1/reports/payroll [get]
func (h *ReportsHandler) Payroll(c *gin.Context) {
	var query dto.PayrollReportQuery
	if !bindQueryAndValidate(c, &query) {
		return
	}
	projectID, err := uuid.Parse(query.ProjectID)
	if err != nil {
		fail(c, err)
		return
	}
	if !requireProjectAccess(c, h.access, projectID) {
		return
	}
	out, err := h.svc.Payroll(c.Request.Context(), query)
	if err != nil {
		fail(c, err)
		return
	}
	h.write(c, out)
}

// Inventory godoc
// @Summary      Inventory report for a project
// @Tags         reports
// @Produce      json
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        project_id query string true  "Project UUID"
// @Param        format     query string false "json | pdf | excel"
// @Success      200 {object} dto.InventoryReport
// @Router       /v1/reports/inventory [get]
func (h *ReportsHandler) Inventory(c *gin.Context) {
	var query dto.InventoryReportQuery
	if !bindQueryAndValidate(c, &query) {
		return
	}
	projectID, err := uuid.Parse(query.ProjectID)
	if err != nil {
		fail(c, err)
		return
	}
	if !requireProjectAccess(c, h.access, projectID) {
		return
	}
	out, err := h.svc.Inventory(c.Request.Context(), query)
	if err != nil {
		fail(c, err)
		return
	}
	h.write(c, out)
}

func (h *ReportsHandler) write(c *gin.Context, out *service.ReportOutput) {
	if out.JSON != nil {
		respond(c, http.StatusOK, out.JSON)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+out.Filename+`"`)
	c.Data(http.StatusOK, out.ContentType, out.Binary)
}
