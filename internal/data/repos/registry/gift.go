package registry

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type GiftRepo interface {
	Create(ctx context.Context, tx *gorm.DB, gifts []*types.Gift) ([]*types.Gift, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, giftIDs []uuid.UUID) ([]*types.Gift, error)
	GetByCoupleIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.Gift, error)
	Update(ctx context.Context, tx *gorm.DB, giftID uuid.UUID, fields map[string]any) error
	IncrementReceived(ctx context.Context, tx *gorm.DB, giftID uuid.UUID, by int) error
	Delete(ctx context.Context, tx *gorm.DB, giftID uuid.UUID) error
}

type giftRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGiftRepo(db *gorm.DB, baseLog *logger.Logger) GiftRepo {
	repoLog := baseLog.With("repo", "GiftRepo")
	return &giftRepo{db: db, log: repoLog}
}

func (gr *giftRepo) Create(ctx context.Context, tx *gorm.DB, gifts []*types.Gift) ([]*types.Gift, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	if len(gifts) == 0 {
		return []*types.Gift{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&gifts).Error; err != nil {
		return nil, err
	}
	return gifts, nil
}

func (gr *giftRepo) GetByIDs(ctx context.Context, tx *gorm.DB, giftIDs []uuid.UUID) ([]*types.Gift, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var results []*types.Gift
	if len(giftIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", giftIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (gr *giftRepo) GetByCoupleIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.Gift, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var results []*types.Gift
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

func (gr *giftRepo) Update(ctx context.Context, tx *gorm.DB, giftID uuid.UUID, fields map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	if len(fields) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Gift{}).
		Where("id = ?", giftID).
		Updates(fields).Error
}

func (gr *giftRepo) IncrementReceived(ctx context.Context, tx *gorm.DB, giftID uuid.UUID, by int) error {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Gift{}).
		Where("id = ?", giftID).
		Update("received_qty", gorm.Expr("received_qty + ?", by)).Error
}

func (gr *giftRepo) Delete(ctx context.Context, tx *gorm.DB, giftID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", giftID).
		Delete(&types.Gift{}).Error
}
