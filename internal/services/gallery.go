package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/evermore-apps/evermore-backend/internal/clients/gcp"
	"github.com/evermore-apps/evermore-backend/internal/data/repos"
	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
	"github.com/evermore-apps/evermore-backend/internal/requestdata"
)

// MediaItem is a media row plus its resolved public URL.
type MediaItem struct {
	Media *types.Media `json:"media"`
	URL   string       `json:"url"`
}

// ErrMediaStorageUnavailable is returned when the bucket client was never
// wired, so media operations have nowhere to read or write objects.
var ErrMediaStorageUnavailable = errors.New("media storage unavailable")

type GalleryService interface {
	CreateGallery(ctx context.Context, gallery *types.Gallery) error
	ListGalleries(ctx context.Context, coupleID uuid.UUID) ([]*types.Gallery, error)
	UpdateGallery(ctx context.Context, coupleID, galleryID uuid.UUID, fields map[string]any) error
	DeleteGallery(ctx context.Context, coupleID, galleryID uuid.UUID) error
	UploadMedia(ctx context.Context, coupleID, galleryID uuid.UUID, filename, caption string, file io.Reader) (*MediaItem, error)
	ListMedia(ctx context.Context, coupleID, galleryID uuid.UUID) ([]MediaItem, error)
	DeleteMedia(ctx context.Context, coupleID, mediaID uuid.UUID) error
}

type galleryService struct {
	db          *gorm.DB
	log         *logger.Logger
	galleryRepo repos.GalleryRepo
	mediaRepo   repos.MediaRepo
	bucket      gcp.BucketService
	activity    ActivityService
}

func NewGalleryService(
	db *gorm.DB,
	log *logger.Logger,
	galleryRepo repos.GalleryRepo,
	mediaRepo repos.MediaRepo,
	bucket gcp.BucketService,
	activity ActivityService,
) GalleryService {
	serviceLog := log.With("service", "GalleryService")
	return &galleryService{
		db:          db,
		log:         serviceLog,
		galleryRepo: galleryRepo,
		mediaRepo:   mediaRepo,
		bucket:      bucket,
		activity:    activity,
	}
}

func (gls *galleryService) CreateGallery(ctx context.Context, gallery *types.Gallery) error {
	if gallery.Title == "" {
		return fmt.Errorf("gallery title is required")
	}
	if gallery.Visibility == "" {
		gallery.Visibility = types.GalleryGuests
	}
	return gls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		gallery.ID = uuid.New()
		if _, err := gls.galleryRepo.Create(ctx, tx, []*types.Gallery{gallery}); err != nil {
			return fmt.Errorf("failed to create gallery: %w", err)
		}
		return nil
	})
}

func (gls *galleryService) ListGalleries(ctx context.Context, coupleID uuid.UUID) ([]*types.Gallery, error) {
	return gls.galleryRepo.GetByCoupleIDs(ctx, nil, []uuid.UUID{coupleID})
}

func (gls *galleryService) UpdateGallery(ctx context.Context, coupleID, galleryID uuid.UUID, fields map[string]any) error {
	if _, err := gls.loadGallery(ctx, coupleID, galleryID); err != nil {
		return err
	}
	return gls.galleryRepo.Update(ctx, nil, galleryID, fields)
}

func (gls *galleryService) DeleteGallery(ctx context.Context, coupleID, galleryID uuid.UUID) error {
	if _, err := gls.loadGallery(ctx, coupleID, galleryID); err != nil {
		return err
	}
	if gls.bucket != nil {
		prefix := fmt.Sprintf("%s/%s/", coupleID, galleryID)
		if err := gls.bucket.DeletePrefix(ctx, gcp.BucketCategoryMedia, prefix); err != nil {
			gls.log.Warn("failed to delete gallery objects", "gallery_id", galleryID, "error", err)
		}
	}
	return gls.galleryRepo.Delete(ctx, nil, galleryID)
}

func mediaKindForFilename(filename string) types.MediaKind {
	switch strings.ToLower(path.Ext(filename)) {
	case ".mp4", ".mov", ".webm":
		return types.MediaVideo
	default:
		return types.MediaImage
	}
}

func (gls *galleryService) UploadMedia(ctx context.Context, coupleID, galleryID uuid.UUID, filename, caption string, file io.Reader) (*MediaItem, error) {
	if gls.bucket == nil {
		return nil, ErrMediaStorageUnavailable
	}
	if _, err := gls.loadGallery(ctx, coupleID, galleryID); err != nil {
		return nil, err
	}
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		return nil, fmt.Errorf("filename needs an extension")
	}

	mediaID := uuid.New()
	objectPath := fmt.Sprintf("%s/%s/%s%s", coupleID, galleryID, mediaID, ext)
	if err := gls.bucket.UploadFile(ctx, gcp.BucketCategoryMedia, objectPath, file); err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}

	item := &types.Media{
		ID:           mediaID,
		GalleryID:    galleryID,
		CoupleID:     coupleID,
		UploaderKind: "couple",
		Kind:         mediaKindForFilename(filename),
		ObjectPath:   objectPath,
		Caption:      caption,
	}
	if rd := requestdata.GetRequestData(ctx); rd != nil {
		item.UploaderKind = string(rd.Kind)
		uploaderID := rd.PrincipalID
		item.UploaderID = &uploaderID
	}

	err := gls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := gls.mediaRepo.Create(ctx, tx, []*types.Media{item}); err != nil {
			return fmt.Errorf("failed to record media: %w", err)
		}
		return nil
	})
	if err != nil {
		_ = gls.bucket.DeleteFile(ctx, gcp.BucketCategoryMedia, objectPath)
		return nil, err
	}

	gls.activity.Record(ctx, coupleID, "media.uploaded", "media", &item.ID, nil)
	return &MediaItem{
		Media: item,
		URL:   gls.bucket.GetPublicURL(gcp.BucketCategoryMedia, objectPath),
	}, nil
}

func (gls *galleryService) ListMedia(ctx context.Context, coupleID, galleryID uuid.UUID) ([]MediaItem, error) {
	if gls.bucket == nil {
		return nil, ErrMediaStorageUnavailable
	}
	if _, err := gls.loadGallery(ctx, coupleID, galleryID); err != nil {
		return nil, err
	}
	rows, err := gls.mediaRepo.GetByGalleryIDs(ctx, nil, []uuid.UUID{galleryID})
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	items := make([]MediaItem, 0, len(rows))
	for _, m := range rows {
		items = append(items, MediaItem{
			Media: m,
			URL:   gls.bucket.GetPublicURL(gcp.BucketCategoryMedia, m.ObjectPath),
		})
	}
	return items, nil
}

func (gls *galleryService) DeleteMedia(ctx context.Context, coupleID, mediaID uuid.UUID) error {
	rows, err := gls.mediaRepo.GetByIDs(ctx, nil, []uuid.UUID{mediaID})
	if err != nil || len(rows) == 0 {
		return fmt.Errorf("media not found")
	}
	item := rows[0]
	if item.CoupleID != coupleID {
		return fmt.Errorf("media not found")
	}
	if gls.bucket != nil {
		if err := gls.bucket.DeleteFile(ctx, gcp.BucketCategoryMedia, item.ObjectPath); err != nil {
			gls.log.Warn("failed to delete media object", "media_id", mediaID, "error", err)
		}
	}
	return gls.mediaRepo.Delete(ctx, nil, mediaID)
}

func (gls *galleryService) loadGallery(ctx context.Context, coupleID, galleryID uuid.UUID) (*types.Gallery, error) {
	galleries, err := gls.galleryRepo.GetByIDs(ctx, nil, []uuid.UUID{galleryID})
	if err != nil || len(galleries) == 0 {
		return nil, fmt.Errorf("gallery not found")
	}
	if galleries[0].CoupleID != coupleID {
		return nil, fmt.Errorf("gallery not found")
	}
	return galleries[0], nil
}
