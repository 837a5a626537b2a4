package media

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type GalleryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, galleries []*types.Gallery) ([]*types.Gallery, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, galleryIDs []uuid.UUID) ([]*types.Gallery, error)
	GetByCoupleIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.Gallery, error)
	Update(ctx context.Context, tx *gorm.DB, galleryID uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, galleryID uuid.UUID) error
}

type galleryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGalleryRepo(db *gorm.DB, baseLog *logger.Logger) GalleryRepo {
	repoLog := baseLog.With("repo", "GalleryRepo")
	return &galleryRepo{db: db, log: repoLog}
}

func (gr *galleryRepo) Create(ctx context.Context, tx *gorm.DB, galleries []*types.Gallery) ([]*types.Gallery, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	if len(galleries) == 0 {
		return []*types.Gallery{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&galleries).Error; err != nil {
		return nil, err
	}
	return galleries, nil
}

func (gr *galleryRepo) GetByIDs(ctx context.Context, tx *gorm.DB, galleryIDs []uuid.UUID) ([]*types.Gallery, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var results []*types.Gallery
	if len(galleryIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", galleryIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (gr *galleryRepo) GetByCoupleIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.Gallery, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var results []*types.Gallery
	if len(coupleIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("couple_id IN ?", coupleIDs).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (gr *galleryRepo) Update(ctx context.Context, tx *gorm.DB, galleryID uuid.UUID, fields map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	if len(fields) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Gallery{}).
		Where("id = ?", galleryID).
		Updates(fields).Error
}

func (gr *galleryRepo) Delete(ctx context.Context, tx *gorm.DB, galleryID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", galleryID).
		Delete(&types.Gallery{}).Error
}
