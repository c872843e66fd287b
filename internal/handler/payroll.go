package handler

import (
	"net/http"

	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/service"

	"github.com/gin-gonic/gin"
)

type PayrollHandler struct{ svc service.PayrollService }

func NewPayrollHandler(svc service.PayrollService) *PayrollHandler {
	return &PayrollHandler{svc: svc}
}

// Generate godoc
// @Summary      Generate payroll snapshots for a period
// @Description  One pending snapshot per active employee; rate captured by value; rejects overlapping periods and future end dates.
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.GeneratePayrollRequest true "Period"
// @Success      201 {array} dto.PayrollResponse
// @Failure      409 {object} apierror.Envelope
// @Router       /v1/payroll/generate [post]
func (h *PayrollHandler) Generate(c *gin.Context) {
	var req dto.GeneratePayrollRequest
	if !bindAndValidate(c, &req) {
		return
	}
	userID, _ := actor(c)
	resp, err := h.svc.Generate(c.Request.Context(), userID, req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}

// List godoc
// @Summary      List payroll snapshots
// @Tags         payroll
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "pending | processed | paid | cancelled"
// @Param        page   query int    false "Page (default 1)"
// @Param        limit  query int    false "Page size (default 20)"
// @Success      200 {object} dto.PayrollListResponse
// @Router       /v1/payroll [get]
func (h *PayrollHandler) List(c *gin.Context) {
	var filter dto.PayrollFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// ByPeriod godoc
// @Summary      Payroll snapshots and summary for one period
// @Tags         payroll
// @Produce      json
// @Security     BearerAuth
// @Param        start path string true "Period start YYYY-MM-DD"
// @Param        end   path string true "Period end YYYY-MM-DD"
// @Success      200 {object} dto.PayrollListResponse
// @Router       /v1/payroll/period/{start}/{end} [get]
func (h *PayrollHandler) ByPeriod(c *gin.Context) {
	data, summary, err := h.svc.ListByPeriod(c.Request.Context(), c.Param("start"), c.Param("end"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"payrolls": data, "summary": summary})
}

// ByEmployee godoc
// @Summary      Last payroll snapshots of an employee
// @Tags         payroll
// @Produce      json
// @Security     BearerAuth
// @Param        employeeId path string true "Employee UUID"
// @Success      200 {array} dto.PayrollResponse
// @Router       /v1/payroll/employee/{employeeId} [get]
func (h *PayrollHandler) ByEmployee(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "employeeId")
	if !ok {
		return
	}
	resp, err := h.svc.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// MarkPaid godoc
// @Summary      Mark a payroll snapshot as paid
// @Description  Re-marking an already paid snapshot refreshes paid_date; cancelled snapshots cannot be paid.
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string             true "Payroll UUID"
// @Param        body body dto.MarkPaidRequest true "Paid date"
// @Success      200 {object} dto.PayrollResponse
// @Failure      409 {object} apierror.Envelope
// @Router       /v1/payroll/{id}/mark-paid [put]
func (h *PayrollHandler) MarkPaid(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.MarkPaidRequest
	if !bindAndValidate(c, &req) {
		return
	}
	userID, _ := actor(c)
	resp, err := h.svc.MarkPaid(c.Request.Context(), userID, id, req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Cancel godoc
// @Summary      Cancel a pending payroll snapshot
// @Tags         payroll
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payroll UUID"
// @Success      200 {object} dto.PayrollResponse
// @Failure      409 {object} apierror.Envelope
// @Router       /v1/payroll/{id}/cancel [put]
func (h *PayrollHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, _ := actor(c)
	resp, err := h.svc.Cancel(c.Request.Context(), userID, id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Export godoc
// @Summary      Export a period's payroll as XLSX
// @Tags         payroll
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        start query string true "Period start YYYY-MM-DD"
// @Param        end   query string true "Period end YYYY-MM-DD"
// @Success      200 {file} binary
// @Router       /v1/payroll/export [get]
func (h *PayrollHandler) Export(c *gin.Context) {
	data, filename, err := h.svc.Export(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
