package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/evermore-apps/evermore-backend/internal/http/response"
	"github.com/evermore-apps/evermore-backend/internal/services"
)

type StatsHandler struct {
	statsService      services.StatsService
	attendanceService services.AttendanceService
}

func NewStatsHandler(statsService services.StatsService, attendanceService services.AttendanceService) *StatsHandler {
	return &StatsHandler{statsService: statsService, attendanceService: attendanceService}
}

func (sh *StatsHandler) Contributions(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	stats, err := sh.statsService.ContributionStats(c.Request.Context(), coupleID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "stats_failed", err)
		return
	}
	response.RespondOK(c, stats)
}

func (sh *StatsHandler) GiftContributions(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	giftID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	stats, err := sh.statsService.GiftStats(c.Request.Context(), coupleID, giftID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "stats_failed", err)
		return
	}
	response.RespondOK(c, stats)
}

func (sh *StatsHandler) PotContributions(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	potID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	stats, err := sh.statsService.PotStats(c.Request.Context(), coupleID, potID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "stats_failed", err)
		return
	}
	response.RespondOK(c, stats)
}

func (sh *StatsHandler) Leaderboard(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	entries, err := sh.statsService.Leaderboard(c.Request.Context(), coupleID, limit)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "leaderboard_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"leaderboard": entries})
}

func (sh *StatsHandler) RegistryOverview(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	overview, err := sh.statsService.RegistryOverview(c.Request.Context(), coupleID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "overview_failed", err)
		return
	}
	response.RespondOK(c, overview)
}

func (sh *StatsHandler) Attendance(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	var (
		summary *services.AttendanceSummary
		err     error
	)
	if c.Query("cached") == "true" {
		summary, err = sh.attendanceService.CachedSummary(c.Request.Context(), coupleID)
	} else {
		summary, err = sh.attendanceService.Summary(c.Request.Context(), coupleID)
	}
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "attendance_failed", err)
		return
	}
	response.RespondOK(c, summary)
}
