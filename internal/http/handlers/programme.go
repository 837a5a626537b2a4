package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/http/response"
	"github.com/evermore-apps/evermore-backend/internal/services"
)

type ProgrammeHandler struct {
	programmeService services.ProgrammeService
}

func NewProgrammeHandler(programmeService services.ProgrammeService) *ProgrammeHandler {
	return &ProgrammeHandler{programmeService: programmeService}
}

func (ph *ProgrammeHandler) Create(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	var req struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Location    string     `json:"location"`
		StartsAt    *time.Time `json:"starts_at"`
		EndsAt      *time.Time `json:"ends_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	item := types.ProgrammeItem{
		CoupleID:    coupleID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}
	if err := ph.programmeService.CreateItem(c.Request.Context(), &item); err != nil {
		response.RespondError(c, http.StatusBadRequest, "programme_creation_failed", err)
		return
	}
	response.RespondCreated(c, item)
}

func (ph *ProgrammeHandler) List(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	items, err := ph.programmeService.ListItems(c.Request.Context(), coupleID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "programme_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"items": items})
}

func (ph *ProgrammeHandler) Update(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Location    *string    `json:"location"`
		StartsAt    *time.Time `json:"starts_at"`
		EndsAt      *time.Time `json:"ends_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.StartsAt != nil {
		fields["starts_at"] = *req.StartsAt
	}
	if req.EndsAt != nil {
		fields["ends_at"] = *req.EndsAt
	}
	if err := ph.programmeService.UpdateItem(c.Request.Context(), coupleID, itemID, fields); err != nil {
		response.RespondError(c, http.StatusBadRequest, "programme_update_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (ph *ProgrammeHandler) Reorder(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	var req struct {
		OrderedIDs []uuid.UUID `json:"ordered_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ph.programmeService.Reorder(c.Request.Context(), coupleID, req.OrderedIDs); err != nil {
		response.RespondError(c, http.StatusBadRequest, "programme_reorder_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (ph *ProgrammeHandler) Delete(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ph.programmeService.DeleteItem(c.Request.Context(), coupleID, itemID); err != nil {
		response.RespondError(c, http.StatusBadRequest, "programme_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
