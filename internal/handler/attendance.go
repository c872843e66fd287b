package handler

import (
	"net/http"

	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AttendanceHandler struct {
	svc    service.AttendanceService
	access service.AccessService
}

func NewAttendanceHandler(svc service.AttendanceService, access service.AccessService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc, access: access}
}

// Table godoc
// @Summary      Day attendance table
// @Description  One row per active employee of the project; employees without a stored record appear as absent with zero hours.
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        project_id      query string true "Project UUID"
// @Param        attendance_date query string true "Date YYYY-MM-DD"
// @Success      200 {array} dto.AttendanceTableRow
// @Failure      403 {object} apierror.Envelope
// @Router       /v1/attendance/table [get]
func (h *AttendanceHandler) Table(c *gin.Context) {
	var query dto.AttendanceTableQuery
	if !bindQueryAndValidate(c, &query) {
		return
	}
	if projectID, err := uuid.Parse(query.ProjectID); err == nil {
		if !requireProjectAccess(c, h.access, projectID) {
			return
		}
	}
	resp, err := h.svc.DayTable(c.Request.Context(), query)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// BulkSave godoc
// @Summary      Save a day's attendance for a project
// @Description  Upserts the batch atomically — one row per (employee, date). Re-saving the same day overwrites in place.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.BulkSaveAttendanceRequest true "Attendance batch"
// @Success      200 {object} dto.BulkSaveAttendanceResponse
// @Failure      403 {object} apierror.Envelope
// @Router       /v1/attendance/bulk-save [post]
func (h *AttendanceHandler) BulkSave(c *gin.Context) {
	var req dto.BulkSaveAttendanceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if projectID, err := uuid.Parse(req.ProjectID); err == nil {
		if !requireProjectAccess(c, h.access, projectID) {
			return
		}
	}
	userID, _ := actor(c)
	resp, err := h.svc.BulkSave(c.Request.Context(), userID, req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// History godoc
// @Summary      Attendance history
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        project_id  query string true  "Project UUID"
// @Param        start_date  query string false "Date YYYY-MM-DD"
// @Param        end_date    query string false "Date YYYY-MM-DD"
// @Param        employee_id query string false "Employee UUID"
// @Success      200 {array} dto.AttendanceHistoryRow
// @Failure      403 {object} apierror.Envelope
// @Router       /v1/attendance/history [get]
func (h *AttendanceHandler) History(c *gin.Context) {
	var query dto.AttendanceHistoryQuery
	if !bindQueryAndValidate(c, &query) {
		return
	}
	if projectID, err := uuid.Parse(query.ProjectID); err == nil {
		if !requireProjectAccess(c, h.access, projectID) {
			return
		}
	}
	resp, err := h.svc.History(c.Request.Context(), query)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}
