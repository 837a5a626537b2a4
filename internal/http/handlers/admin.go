package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/evermore-apps/evermore-backend/internal/http/response"
	"github.com/evermore-apps/evermore-backend/internal/services"
)

type AdminHandler struct {
	adminService services.AdminService
}

func NewAdminHandler(adminService services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (ah *AdminHandler) ListCouples(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	couples, err := ah.adminService.ListCouples(c.Request.Context(), limit, offset)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "couple_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"couples": couples})
}

func (ah *AdminHandler) PlatformStats(c *gin.Context) {
	stats, err := ah.adminService.PlatformStats(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "platform_stats_failed", err)
		return
	}
	response.RespondOK(c, stats)
}

func (ah *AdminHandler) DeleteCouple(c *gin.Context) {
	coupleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ah.adminService.DeleteCouple(c.Request.Context(), coupleID); err != nil {
		response.RespondError(c, http.StatusBadRequest, "couple_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
