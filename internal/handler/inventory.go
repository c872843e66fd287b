package handler

import (
	"net/http"

	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	svc    service.InventoryService
	access service.AccessService
}

func NewInventoryHandler(svc service.InventoryService, access service.AccessService) *InventoryHandler {
	return &InventoryHandler{svc: svc, access: access}
}

// List godoc
// @Summary      List inventory items of a project
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        project_id query string true  "Project UUID"
// @Param        category   query string false "Category filter"
// @Param        search     query string false "Item name substring"
// @Success      200 {array} dto.InventoryItemResponse
// @Failure      403 {object} apierror.Envelope
// @Router       /v1/inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	var filter dto.InventoryFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	projectID, err := uuid.Parse(filter.ProjectID)
	if err != nil {
		fail(c, err)
		return
	}
	if !requireProjectAccess(c, h.access, projectID) {
		return
	}
	resp, err := h.svc.ListByProject(c.Request.Context(), projectID, filter)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Create godoc
// @Summary      Add an inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateInventoryItemRequest true "Item details"
// @Success      201 {object} dto.InventoryItemResponse
// @Failure      403 {object} apierror.Envelope
// @Router       /v1/inventory [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	var req dto.CreateInventoryItemRequest
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

// Update godoc
// @Summary      Update an inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                         true "Item UUID"
// @Param        body body dto.UpdateInventoryItemRequest true "New values"
// @Success      200 {object} dto.InventoryItemResponse
// @Router       /v1/inventory/{id} [put]
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateInventoryItemRequest
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
// @Summary      Delete an inventory item
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Item UUID"
// @Success      200 {object} nil
// @Router       /v1/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, _ := actor(c)
	if err := h.svc.Delete(c.Request.Context(), userID, id); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": true})
}

// ListExpenses godoc
// @Summary      List expenses of a project
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        project_id query string true  "Project UUID"
// @Param        type       query string false "Expense type filter"
// @Param        start_date query string false "Date YYYY-MM-DD"
// @Param        end_date   query string false "Date YYYY-MM-DD"
// @Success      200 {array} dto.ExpenseResponse
// @Failure      403 {object} apierror.Envelope
// @Router       /v1/inventory/expenses [get]
func (h *InventoryHandler) ListExpenses(c *gin.Context) {
	var filter dto.ExpenseFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	projectID, err := uuid.Parse(filter.ProjectID)
	if err != nil {
		fail(c, err)
		return
	}
	if !requireProjectAccess(c, h.access, projectID) {
		return
	}
	resp, err := h.svc.ListExpenses(c.Request.Context(), projectID, filter)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// CreateExpense godoc
// @Summary      Record a project expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateExpenseRequest true "Expense details"
// @Success      201 {object} dto.ExpenseResponse
// @Failure      403 {object} apierror.Envelope
// @Router       /v1/inventory/expenses [post]
func (h *InventoryHandler) CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if projectID, err := uuid.Parse(req.ProjectID); err == nil {
		if !requireProjectAccess(c, h.access, projectID) {
			return
		}
	}
	userID, _ := actor(c)
	resp, err := h.svc.CreateExpense(c.Request.Context(), userID, req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}
