package registry

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type PotRepo interface {
	Create(ctx context.Context, tx *gorm.DB, pots []*types.Pot) ([]*types.Pot, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, potIDs []uuid.UUID) ([]*types.Pot, error)
	GetByCoupleIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.Pot, error)
	Update(ctx context.Context, tx *gorm.DB, potID uuid.UUID, fields map[string]any) error
	UpdateCurrentAmount(ctx context.Context, tx *gorm.DB, potID uuid.UUID, amount string) error
	Delete(ctx context.Context, tx *gorm.DB, potID uuid.UUID) error
}

type potRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPotRepo(db *gorm.DB, baseLog *logger.Logger) PotRepo {
	repoLog := baseLog.With("repo", "PotRepo")
	return &potRepo{db: db, log: repoLog}
}

func (pr *potRepo) Create(ctx context.Context, tx *gorm.DB, pots []*types.Pot) ([]*types.Pot, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(pots) == 0 {
		return []*types.Pot{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&pots).Error; err != nil {
		return nil, err
	}
	return pots, nil
}

func (pr *potRepo) GetByIDs(ctx context.Context, tx *gorm.DB, potIDs []uuid.UUID) ([]*types.Pot, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Pot
	if len(potIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", potIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *potRepo) GetByCoupleIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.Pot, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Pot
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

func (pr *potRepo) Update(ctx context.Context, tx *gorm.DB, potID uuid.UUID, fields map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if len(fields) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Pot{}).
		Where("id = ?", potID).
		Updates(fields).Error
}

func (pr *potRepo) UpdateCurrentAmount(ctx context.Context, tx *gorm.DB, potID uuid.UUID, amount string) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Pot{}).
		Where("id = ?", potID).
		Update("current_amount", amount).Error
}

func (pr *potRepo) Delete(ctx context.Context, tx *gorm.DB, potID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", potID).
		Delete(&types.Pot{}).Error
}
