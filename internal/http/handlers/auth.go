package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/domain/accounts"
	"github.com/evermore-apps/evermore-backend/internal/http/response"
	"github.com/evermore-apps/evermore-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		PartnerOne  string `json:"partner_one"`
		PartnerTwo  string `json:"partner_two"`
		Slug        string `json:"slug"`
		WeddingDate string `json:"wedding_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	couple := types.Couple{
		Email:      req.Email,
		Password:   req.Password,
		PartnerOne: req.PartnerOne,
		PartnerTwo: req.PartnerTwo,
		Slug:       req.Slug,
	}
	if req.WeddingDate != "" {
		d, err := time.Parse("2006-01-02", req.WeddingDate)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_wedding_date", err)
			return
		}
		couple.WeddingDate = &d
	}
	if err := ah.authService.RegisterCouple(c.Request.Context(), &couple); err != nil {
		response.RespondError(c, http.StatusBadRequest, "registration_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"id": couple.ID, "slug": couple.Slug})
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	accessToken, refreshToken, err := ah.authService.LoginCouple(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RespondError(c, http.StatusUnauthorized, "invalid_credentials", err)
		return
	}
	ah.respondTokens(c, accessToken, refreshToken)
}

func (ah *AuthHandler) LoginOrganizer(c *gin.Context) {
	var req struct {
		CoupleSlug string `json:"couple_slug"`
		Email      string `json:"email"`
		Password   string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	accessToken, refreshToken, err := ah.authService.LoginOrganizer(c.Request.Context(), req.CoupleSlug, req.Email, req.Password)
	if err != nil {
		response.RespondError(c, http.StatusUnauthorized, "invalid_credentials", err)
		return
	}
	ah.respondTokens(c, accessToken, refreshToken)
}

func (ah *AuthHandler) LoginSuperAdmin(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	accessToken, refreshToken, err := ah.authService.LoginSuperAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RespondError(c, http.StatusUnauthorized, "invalid_credentials", err)
		return
	}
	ah.respondTokens(c, accessToken, refreshToken)
}

func (ah *AuthHandler) Refresh(c *gin.Context) {
	accessToken, refreshToken, err := ah.authService.Refresh(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusUnauthorized, "refresh_failed", err)
		return
	}
	ah.respondTokens(c, accessToken, refreshToken)
}

func (ah *AuthHandler) Logout(c *gin.Context) {
	if err := ah.authService.Logout(c.Request.Context()); err != nil {
		response.RespondError(c, http.StatusBadRequest, "logout_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (ah *AuthHandler) CreateOrganizer(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	organizer := types.Organizer{
		CoupleID: coupleID,
		Email:    req.Email,
		Name:     req.Name,
		Role:     accounts.OrganizerRole(req.Role),
	}
	if err := ah.authService.CreateOrganizer(c.Request.Context(), &organizer, req.Password); err != nil {
		response.RespondError(c, http.StatusBadRequest, "organizer_creation_failed", err)
		return
	}
	response.RespondCreated(c, organizer)
}

func (ah *AuthHandler) respondTokens(c *gin.Context, accessToken, refreshToken string) {
	expiresIn := int(ah.authService.GetAccessTTL().Seconds())
	response.RespondOK(c, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"expires_in":    expiresIn,
	})
}
