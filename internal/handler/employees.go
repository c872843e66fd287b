package handler

import (
	"net/http"

	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EmployeesHandler struct {
	svc    service.EmployeeService
	access service.AccessService
}

func NewEmployeesHandler(svc service.EmployeeService, access service.AccessService) *EmployeesHandler {
	return &EmployeesHandler{svc: svc, access: access}
}

// Create godoc
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateEmployeeRequest true "Employee details"
// @Success      201 {object} dto.EmployeeResponse
// @Failure      403 {object} apierror.Envelope
// @Router       /v1/employees [post]
func (h *EmployeesHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if projectID, err := uuid.Parse(req.ProjectID); err == nil {
		if !requireProjectAccess(c, h.access, projectID) {
			return
		}
	}
	userID, _ := actor(c)
	resp, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}

// ListByProject godoc
// @Summary      List employees of a project
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        project_id path  string true  "Project UUID"
// @Param        is_active  query string false "true | false"
// @Param        search     query string false "Name or position substring"
// @Success      200 {array} dto.EmployeeResponse
// @Failure      403 {object} apierror.Envelope
// @Router       /v1/employees/project/{project_id} [get]
func (h *EmployeesHandler) ListByProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}
	if !requireProjectAccess(c, h.access, projectID) {
		return
	}
	var filter dto.EmployeeFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.ListByProject(c.Request.Context(), projectID, filter)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Update godoc
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                    true "Employee UUID"
// @Param        body body dto.UpdateEmployeeRequest true "New values"
// @Success      200 {object} dto.EmployeeResponse
// @Failure      403 {object} apierror.Envelope
// @Router       /v1/employees/{id} [put]
func (h *EmployeesHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !h.checkEmployeeAccess(c, id) {
		return
	}
	var req dto.UpdateEmployeeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	userID, _ := actor(c)
	resp, err := h.svc.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Delete godoc
// @Summary      Soft-delete an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Employee UUID"
// @Success      200 {object} nil
// @Failure      403 {object} apierror.Envelope
// @Router       /v1/employees/{id} [delete]
func (h *EmployeesHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !h.checkEmployeeAccess(c, id) {
		return
	}
	userID, _ := actor(c)
	if err := h.svc.Delete(c.Request.Context(), userID, id); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": true})
}

// checkEmployeeAccess resolves the employee's project and runs the access
// predicate against it. Unknown employee ids fall through to the service so
// the caller gets its 404.
func (h *EmployeesHandler) checkEmployeeAccess(c *gin.Context, id uuid.UUID) bool {
	employee, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		return true
	}
	projectID, err := uuid.Parse(employee.ProjectID)
	if err != nil {
		return true
	}
	return requireProjectAccess(c, h.access, projectID)
}
