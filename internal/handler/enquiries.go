package handler

import (
	"net/http"
	"strings"

	"github.com/ReponseBlaise/Preferred-System/internal/apierror"
	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/service"
	"github.com/ReponseBlaise/Preferred-System/internal/upload"

	"github.com/gin-gonic/gin"
)

type EnquiriesHandler struct {
	svc     service.EnquiryService
	uploads *upload.Store
}

func NewEnquiriesHandler(svc service.EnquiryService, uploads *upload.Store) *EnquiriesHandler {
	return &EnquiriesHandler{svc: svc, uploads: uploads}
}

// Create godoc
// @Summary      File an enquiry
// @Description  JSON body, or multipart form with an optional "attachment" file (5 MB limit). Defaults to the manager when to_user is omitted.
// @Tags         enquiries
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateEnquiryRequest true "Enquiry"
// @Success      201 {object} dto.EnquiryResponse
// @Router       /v1/enquiries [post]
func (h *EnquiriesHandler) Create(c *gin.Context) {
	var req dto.CreateEnquiryRequest
	var attachmentURL *string

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("invalid form: "+err.Error()))
			return
		}
		if !validateStruct(c, &req) {
			return
		}
		if fh, err := c.FormFile("attachment"); err == nil {
			url, err := h.uploads.Save(c, fh)
			if err != nil {
				c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
				return
			}
			attachmentURL = &url
		}
	} else if !bindAndValidate(c, &req) {
		return
	}

	userID, _ := actor(c)
	resp, err := h.svc.Create(c.Request.Context(), userID, req, attachmentURL)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}

// List godoc
// @Summary      List enquiries visible to the caller
// @Tags         enquiries
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.EnquiryResponse
// @Router       /v1/enquiries [get]
func (h *EnquiriesHandler) List(c *gin.Context) {
	userID, role := actor(c)
	resp, err := h.svc.ListForUser(c.Request.Context(), userID, role)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Get godoc
// @Summary      Read one enquiry
// @Tags         enquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Enquiry UUID"
// @Success      200 {object} dto.EnquiryResponse
// @Failure      403 {object} apierror.Envelope
// @Router       /v1/enquiries/{id} [get]
func (h *EnquiriesHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, role := actor(c)
	resp, err := h.svc.Get(c.Request.Context(), userID, role, id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Respond godoc
// @Summary      Answer an enquiry
// @Tags         enquiries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                    true "Enquiry UUID"
// @Param        body body dto.RespondEnquiryRequest true "Response text"
// @Success      200 {object} dto.EnquiryResponse
// @Router       /v1/enquiries/{id}/respond [put]
func (h *EnquiriesHandler) Respond(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.RespondEnquiryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	userID, _ := actor(c)
	resp, err := h.svc.Respond(c.Request.Context(), userID, id, req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// UpdateStatus godoc
// @Summary      Change enquiry status
// @Tags         enquiries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                         true "Enquiry UUID"
// @Param        body body dto.UpdateEnquiryStatusRequest true "New status"
// @Success      200 {object} dto.EnquiryResponse
// @Router       /v1/enquiries/{id}/status [put]
func (h *EnquiriesHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateEnquiryStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	userID, _ := actor(c)
	resp, err := h.svc.UpdateStatus(c.Request.Context(), userID, id, req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// PendingCount godoc
// @Summary      Count of pending enquiries for the caller
// @Tags         enquiries
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} nil
// @Router       /v1/enquiries/pending-count [get]
func (h *EnquiriesHandler) PendingCount(c *gin.Context) {
	userID, role := actor(c)
	count, err := h.svc.PendingCount(c.Request.Context(), userID, role)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"pending": count})
}
