package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/evermore-apps/evermore-backend/internal/http/response"
	"github.com/evermore-apps/evermore-backend/internal/services"
)

type NotificationHandler struct {
	notificationService services.NotificationService
}

func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (nh *NotificationHandler) List(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	unreadOnly := c.Query("unread_only") == "true"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	notifications, err := nh.notificationService.List(c.Request.Context(), coupleID, unreadOnly, limit, offset)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "notification_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"notifications": notifications})
}

func (nh *NotificationHandler) UnreadCount(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	count, err := nh.notificationService.UnreadCount(c.Request.Context(), coupleID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "notification_count_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"unread": count})
}

func (nh *NotificationHandler) MarkRead(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	var req struct {
		IDs []uuid.UUID `json:"ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := nh.notificationService.MarkRead(c.Request.Context(), coupleID, req.IDs); err != nil {
		response.RespondError(c, http.StatusBadRequest, "notification_mark_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (nh *NotificationHandler) MarkAllRead(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	if err := nh.notificationService.MarkAllRead(c.Request.Context(), coupleID); err != nil {
		response.RespondError(c, http.StatusBadRequest, "notification_mark_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
