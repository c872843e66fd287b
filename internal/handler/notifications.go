package handler

import (
	"net/http"

	"github.com/ReponseBlaise/Preferred-System/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationsHandler struct {
	svc service.NotificationService
}

func NewNotificationsHandler(svc service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{svc: svc}
}

// List godoc
// @Summary      Latest notifications for the caller
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.NotificationResponse
// @Router       /v1/notifications [get]
func (h *NotificationsHandler) List(c *gin.Context) {
	userID, _ := actor(c)
	resp, err := h.svc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// MarkRead godoc
// @Summary      Mark one notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Notification UUID"
// @Success      200 {object} nil
// @Router       /v1/notifications/{id}/read [put]
func (h *NotificationsHandler) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, _ := actor(c)
	if err := h.svc.MarkRead(c.Request.Context(), id, userID); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"read": true})
}
