package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/http/response"
	"github.com/evermore-apps/evermore-backend/internal/services"
)

type RegistryHandler struct {
	registryService services.RegistryService
}

func NewRegistryHandler(registryService services.RegistryService) *RegistryHandler {
	return &RegistryHandler{registryService: registryService}
}

func (rh *RegistryHandler) CreateGift(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
		Price       string `json:"price"`
		DesiredQty  int    `json:"desired_qty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	gift := types.Gift{
		CoupleID:    coupleID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		DesiredQty:  req.DesiredQty,
	}
	if err := rh.registryService.CreateGift(c.Request.Context(), &gift); err != nil {
		response.RespondError(c, http.StatusBadRequest, "gift_creation_failed", err)
		return
	}
	response.RespondCreated(c, gift)
}

func (rh *RegistryHandler) ListGifts(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	gifts, err := rh.registryService.ListGifts(c.Request.Context(), coupleID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "gift_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"gifts": gifts})
}

func (rh *RegistryHandler) UpdateGift(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	giftID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		ImageURL    *string `json:"image_url"`
		Price       *string `json:"price"`
		DesiredQty  *int    `json:"desired_qty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.DesiredQty != nil {
		fields["desired_qty"] = *req.DesiredQty
	}
	if err := rh.registryService.UpdateGift(c.Request.Context(), coupleID, giftID, fields); err != nil {
		response.RespondError(c, http.StatusBadRequest, "gift_update_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (rh *RegistryHandler) DeleteGift(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	giftID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := rh.registryService.DeleteGift(c.Request.Context(), coupleID, giftID); err != nil {
		response.RespondError(c, http.StatusBadRequest, "gift_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (rh *RegistryHandler) CreatePot(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	var req struct {
		Title        string  `json:"title"`
		Description  string  `json:"description"`
		TargetAmount *string `json:"target_amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	pot := types.Pot{
		CoupleID:     coupleID,
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
	}
	if err := rh.registryService.CreatePot(c.Request.Context(), &pot); err != nil {
		response.RespondError(c, http.StatusBadRequest, "pot_creation_failed", err)
		return
	}
	response.RespondCreated(c, pot)
}

func (rh *RegistryHandler) ListPots(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	pots, err := rh.registryService.ListPots(c.Request.Context(), coupleID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "pot_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"pots": pots})
}

func (rh *RegistryHandler) UpdatePot(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	potID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Title        *string `json:"title"`
		Description  *string `json:"description"`
		TargetAmount *string `json:"target_amount"`
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
	if req.TargetAmount != nil {
		fields["target_amount"] = *req.TargetAmount
	}
	if err := rh.registryService.UpdatePot(c.Request.Context(), coupleID, potID, fields); err != nil {
		response.RespondError(c, http.StatusBadRequest, "pot_update_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (rh *RegistryHandler) DeletePot(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	potID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := rh.registryService.DeletePot(c.Request.Context(), coupleID, potID); err != nil {
		response.RespondError(c, http.StatusBadRequest, "pot_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (rh *RegistryHandler) Contribute(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	var req struct {
		GuestID uuid.UUID  `json:"guest_id"`
		GiftID  *uuid.UUID `json:"gift_id"`
		PotID   *uuid.UUID `json:"pot_id"`
		Amount  *string    `json:"amount"`
		Message string     `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	contribution := types.Contribution{
		CoupleID: coupleID,
		GuestID:  req.GuestID,
		GiftID:   req.GiftID,
		PotID:    req.PotID,
		Amount:   req.Amount,
		Message:  req.Message,
	}
	if err := rh.registryService.Contribute(c.Request.Context(), &contribution); err != nil {
		if vErr, ok := err.(*types.ValidationError); ok {
			response.RespondFieldError(c, http.StatusUnprocessableEntity, "validation_failed", vErr.Field, vErr)
			return
		}
		response.RespondError(c, http.StatusBadRequest, "contribution_failed", err)
		return
	}
	response.RespondCreated(c, contribution)
}

func (rh *RegistryHandler) ListContributions(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	contributions, err := rh.registryService.ListContributions(c.Request.Context(), coupleID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "contribution_list_failed", err)
		return
	}
	counts, err := rh.registryService.ContributionStatusCounts(c.Request.Context(), coupleID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "contribution_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"contributions": contributions, "counts_by_status": counts})
}

func (rh *RegistryHandler) GuestContributions(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	guestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	contributions, err := rh.registryService.ListGuestContributions(c.Request.Context(), coupleID, guestID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "contribution_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"contributions": contributions})
}

func (rh *RegistryHandler) ConfirmContribution(c *gin.Context) {
	rh.transition(c, rh.registryService.ConfirmContribution, "contribution_confirm_failed")
}

func (rh *RegistryHandler) DeliverContribution(c *gin.Context) {
	rh.transition(c, rh.registryService.DeliverContribution, "contribution_deliver_failed")
}

func (rh *RegistryHandler) CancelContribution(c *gin.Context) {
	rh.transition(c, rh.registryService.CancelContribution, "contribution_cancel_failed")
}

func (rh *RegistryHandler) transition(c *gin.Context, apply func(ctx context.Context, coupleID, contributionID uuid.UUID) error, code string) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	contributionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := apply(c.Request.Context(), coupleID, contributionID); err != nil {
		response.RespondError(c, http.StatusBadRequest, code, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
