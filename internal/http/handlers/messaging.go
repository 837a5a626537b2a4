package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/http/response"
	"github.com/evermore-apps/evermore-backend/internal/services"
)

type MessagingHandler struct {
	messagingService services.MessagingService
}

func NewMessagingHandler(messagingService services.MessagingService) *MessagingHandler {
	return &MessagingHandler{messagingService: messagingService}
}

func (mh *MessagingHandler) Post(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	var req struct {
		GuestID *uuid.UUID `json:"guest_id"`
		Author  string     `json:"author"`
		Body    string     `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	message := types.Message{
		CoupleID: coupleID,
		GuestID:  req.GuestID,
		Author:   req.Author,
		Body:     req.Body,
	}
	if err := mh.messagingService.PostMessage(c.Request.Context(), &message); err != nil {
		response.RespondError(c, http.StatusBadRequest, "message_post_failed", err)
		return
	}
	response.RespondCreated(c, message)
}

func (mh *MessagingHandler) List(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	approvedOnly := c.DefaultQuery("approved_only", "true") != "false"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	messages, err := mh.messagingService.ListMessages(c.Request.Context(), coupleID, approvedOnly, limit, offset)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "message_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"messages": messages})
}

func (mh *MessagingHandler) Approve(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	messageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := mh.messagingService.Approve(c.Request.Context(), coupleID, messageID); err != nil {
		response.RespondError(c, http.StatusBadRequest, "message_approve_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (mh *MessagingHandler) Reject(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	messageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := mh.messagingService.Reject(c.Request.Context(), coupleID, messageID); err != nil {
		response.RespondError(c, http.StatusBadRequest, "message_reject_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (mh *MessagingHandler) Delete(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	messageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := mh.messagingService.DeleteMessage(c.Request.Context(), coupleID, messageID); err != nil {
		response.RespondError(c, http.StatusBadRequest, "message_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
