package handler

import (
	"net/http"

	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/service"

	"github.com/gin-gonic/gin"
)

type ProjectsHandler struct {
	svc    service.ProjectService
	access service.AccessService
}

func NewProjectsHandler(svc service.ProjectService, access service.AccessService) *ProjectsHandler {
	return &ProjectsHandler{svc: svc, access: access}
}

// Create godoc
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateProjectRequest true "Project details"
// @Success      201 {object} dto.ProjectResponse
// @Failure      409 {object} apierror.Envelope
// @Router       /v1/projects [post]
func (h *ProjectsHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if !bindAndValidate(c, &req) {
		return
	}
	userID, _ := actor(c)
	resp, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}

// List godoc
// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ProjectResponse
// @Router       /v1/projects [get]
func (h *ProjectsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// ListMine godoc
// @Summary      List the caller's assigned projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ProjectResponse
// @Router       /v1/projects/my-projects [get]
func (h *ProjectsHandler) ListMine(c *gin.Context) {
	userID, _ := actor(c)
	resp, err := h.svc.ListMine(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Assign godoc
// @Summary      Assign a user to a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AssignUserRequest true "Assignment"
// @Success      201 {object} nil
// @Failure      409 {object} apierror.Envelope
// @Router       /v1/projects/assign [post]
func (h *ProjectsHandler) Assign(c *gin.Context) {
	var req dto.AssignUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.AssignUser(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"assigned": true})
}

// Stats godoc
// @Summary      Project statistics
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        project_id path string true "Project UUID"
// @Success      200 {object} dto.ProjectStatsResponse
// @Failure      403 {object} apierror.Envelope
// @Router       /v1/projects/{project_id}/stats [get]
func (h *ProjectsHandler) Stats(c *gin.Context) {
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}
	if !requireProjectAccess(c, h.access, projectID) {
		return
	}
	resp, err := h.svc.Stats(c.Request.Context(), projectID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}
