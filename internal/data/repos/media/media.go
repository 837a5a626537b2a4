package media

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type MediaRepo interface {
	Create(ctx context.Context, tx *gorm.DB, items []*types.Media) ([]*types.Media, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, mediaIDs []uuid.UUID) ([]*types.Media, error)
	GetByGalleryIDs(ctx context.Context, tx *gorm.DB, galleryIDs []uuid.UUID) ([]*types.Media, error)
	CountByGalleryID(ctx context.Context, tx *gorm.DB, galleryID uuid.UUID) (int64, error)
	UpdateCaption(ctx context.Context, tx *gorm.DB, mediaID uuid.UUID, caption string) error
	Delete(ctx context.Context, tx *gorm.DB, mediaID uuid.UUID) error
}

type mediaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMediaRepo(db *gorm.DB, baseLog *logger.Logger) MediaRepo {
	repoLog := baseLog.With("repo", "MediaRepo")
	return &mediaRepo{db: db, log: repoLog}
}

func (mr *mediaRepo) Create(ctx context.Context, tx *gorm.DB, items []*types.Media) ([]*types.Media, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	if len(items) == 0 {
		return []*types.Media{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (mr *mediaRepo) GetByIDs(ctx context.Context, tx *gorm.DB, mediaIDs []uuid.UUID) ([]*types.Media, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var results []*types.Media
	if len(mediaIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", mediaIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *mediaRepo) GetByGalleryIDs(ctx context.Context, tx *gorm.DB, galleryIDs []uuid.UUID) ([]*types.Media, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var results []*types.Media
	if len(galleryIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("gallery_id IN ?", galleryIDs).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *mediaRepo) CountByGalleryID(ctx context.Context, tx *gorm.DB, galleryID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Media{}).
		Where("gallery_id = ?", galleryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (mr *mediaRepo) UpdateCaption(ctx context.Context, tx *gorm.DB, mediaID uuid.UUID, caption string) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Media{}).
		Where("id = ?", mediaID).
		Update("caption", caption).Error
}

func (mr *mediaRepo) Delete(ctx context.Context, tx *gorm.DB, mediaID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", mediaID).
		Delete(&types.Media{}).Error
}
