package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/evermore-apps/evermore-backend/internal/http/response"
	"github.com/evermore-apps/evermore-backend/internal/services"
)

type ActivityHandler struct {
	activityService services.ActivityService
}

func NewActivityHandler(activityService services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (ah *ActivityHandler) List(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	action := c.Query("action")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	entries, err := ah.activityService.List(c.Request.Context(), coupleID, action, limit, offset)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "activity_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"activity": entries})
}
