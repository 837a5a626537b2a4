package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/http/response"
	"github.com/evermore-apps/evermore-backend/internal/services"
)

type GalleryHandler struct {
	galleryService services.GalleryService
}

func NewGalleryHandler(galleryService services.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

func (gh *GalleryHandler) Create(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	var req struct {
		Title      string `json:"title"`
		Visibility string `json:"visibility"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	gallery := types.Gallery{
		CoupleID:   coupleID,
		Title:      req.Title,
		Visibility: types.GalleryVisibility(req.Visibility),
	}
	if err := gh.galleryService.CreateGallery(c.Request.Context(), &gallery); err != nil {
		response.RespondError(c, http.StatusBadRequest, "gallery_creation_failed", err)
		return
	}
	response.RespondCreated(c, gallery)
}

func (gh *GalleryHandler) List(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	galleries, err := gh.galleryService.ListGalleries(c.Request.Context(), coupleID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "gallery_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"galleries": galleries})
}

func (gh *GalleryHandler) Update(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	galleryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Title      *string `json:"title"`
		Visibility *string `json:"visibility"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Visibility != nil {
		fields["visibility"] = *req.Visibility
	}
	if err := gh.galleryService.UpdateGallery(c.Request.Context(), coupleID, galleryID, fields); err != nil {
		response.RespondError(c, http.StatusBadRequest, "gallery_update_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (gh *GalleryHandler) Delete(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	galleryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := gh.galleryService.DeleteGallery(c.Request.Context(), coupleID, galleryID); err != nil {
		response.RespondError(c, http.StatusBadRequest, "gallery_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (gh *GalleryHandler) UploadMedia(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	galleryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "missing_file", err)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "unreadable_file", err)
		return
	}
	defer file.Close()
	caption := c.PostForm("caption")
	item, err := gh.galleryService.UploadMedia(c.Request.Context(), coupleID, galleryID, fileHeader.Filename, caption, file)
	if err != nil {
		if errors.Is(err, services.ErrMediaStorageUnavailable) {
			response.RespondError(c, http.StatusServiceUnavailable, "media_storage_unavailable", err)
			return
		}
		response.RespondError(c, http.StatusBadRequest, "media_upload_failed", err)
		return
	}
	response.RespondCreated(c, item)
}

func (gh *GalleryHandler) ListMedia(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	galleryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	items, err := gh.galleryService.ListMedia(c.Request.Context(), coupleID, galleryID)
	if err != nil {
		if errors.Is(err, services.ErrMediaStorageUnavailable) {
			response.RespondError(c, http.StatusServiceUnavailable, "media_storage_unavailable", err)
			return
		}
		response.RespondError(c, http.StatusBadRequest, "media_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"media": items})
}

func (gh *GalleryHandler) DeleteMedia(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	mediaID, ok := parseIDParam(c, "media_id")
	if !ok {
		return
	}
	if err := gh.galleryService.DeleteMedia(c.Request.Context(), coupleID, mediaID); err != nil {
		response.RespondError(c, http.StatusBadRequest, "media_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
