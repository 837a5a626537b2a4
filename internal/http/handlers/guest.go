package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/http/response"
	"github.com/evermore-apps/evermore-backend/internal/services"
)

type GuestHandler struct {
	guestService services.GuestService
}

func NewGuestHandler(guestService services.GuestService) *GuestHandler {
	return &GuestHandler{guestService: guestService}
}

func (gh *GuestHandler) Create(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	var req struct {
		Guests []struct {
			Name         string `json:"name"`
			Email        string `json:"email"`
			Phone        string `json:"phone"`
			PlusOnes     int    `json:"plus_ones"`
			DietaryNotes string `json:"dietary_notes"`
		} `json:"guests"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	guests := make([]*types.Guest, 0, len(req.Guests))
	for _, g := range req.Guests {
		guests = append(guests, &types.Guest{
			Name:         g.Name,
			Email:        g.Email,
			Phone:        g.Phone,
			PlusOnes:     g.PlusOnes,
			DietaryNotes: g.DietaryNotes,
		})
	}
	created, err := gh.guestService.CreateGuests(c.Request.Context(), coupleID, guests)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "guest_creation_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"guests": created})
}

func (gh *GuestHandler) List(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	guests, err := gh.guestService.ListGuests(c.Request.Context(), coupleID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "guest_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"guests": guests})
}

func (gh *GuestHandler) Update(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	guestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Name         *string `json:"name"`
		Email        *string `json:"email"`
		Phone        *string `json:"phone"`
		DietaryNotes *string `json:"dietary_notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.DietaryNotes != nil {
		fields["dietary_notes"] = *req.DietaryNotes
	}
	if err := gh.guestService.UpdateGuest(c.Request.Context(), coupleID, guestID, fields); err != nil {
		response.RespondError(c, http.StatusBadRequest, "guest_update_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (gh *GuestHandler) Delete(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	guestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := gh.guestService.DeleteGuest(c.Request.Context(), coupleID, guestID); err != nil {
		response.RespondError(c, http.StatusBadRequest, "guest_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (gh *GuestHandler) RSVP(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	guestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status       string `json:"status"`
		PlusOnes     int    `json:"plus_ones"`
		DietaryNotes string `json:"dietary_notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	err := gh.guestService.RecordRSVP(c.Request.Context(), coupleID, guestID,
		types.RSVPStatus(req.Status), req.PlusOnes, req.DietaryNotes)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "rsvp_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (gh *GuestHandler) AssignTable(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	var req struct {
		GuestIDs []uuid.UUID `json:"guest_ids"`
		Table    string      `json:"table"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := gh.guestService.AssignTable(c.Request.Context(), coupleID, req.GuestIDs, req.Table); err != nil {
		response.RespondError(c, http.StatusBadRequest, "table_assignment_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (gh *GuestHandler) CheckIn(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	var req struct {
		QRToken   string `json:"qr_token"`
		Ceremony  bool   `json:"ceremony"`
		Reception bool   `json:"reception"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	result, err := gh.guestService.CheckInByQRToken(c.Request.Context(), coupleID, req.QRToken, req.Ceremony, req.Reception)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "checkin_failed", err)
		return
	}
	response.RespondOK(c, result)
}

func (gh *GuestHandler) QRCode(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	guestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	png, err := gh.guestService.QRCodePNG(c.Request.Context(), coupleID, guestID, 0)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "qr_render_failed", err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
