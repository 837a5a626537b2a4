package events

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type ProgrammeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, items []*types.ProgrammeItem) ([]*types.ProgrammeItem, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, itemIDs []uuid.UUID) ([]*types.ProgrammeItem, error)
	GetByCoupleIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.ProgrammeItem, error)
	Update(ctx context.Context, tx *gorm.DB, itemID uuid.UUID, fields map[string]any) error
	UpdatePositions(ctx context.Context, tx *gorm.DB, positions map[uuid.UUID]int) error
	Delete(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) error
}

type programmeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProgrammeRepo(db *gorm.DB, baseLog *logger.Logger) ProgrammeRepo {
	repoLog := baseLog.With("repo", "ProgrammeRepo")
	return &programmeRepo{db: db, log: repoLog}
}

func (pr *programmeRepo) Create(ctx context.Context, tx *gorm.DB, items []*types.ProgrammeItem) ([]*types.ProgrammeItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(items) == 0 {
		return []*types.ProgrammeItem{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (pr *programmeRepo) GetByIDs(ctx context.Context, tx *gorm.DB, itemIDs []uuid.UUID) ([]*types.ProgrammeItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.ProgrammeItem
	if len(itemIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", itemIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *programmeRepo) GetByCoupleIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.ProgrammeItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.ProgrammeItem
	if len(coupleIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("couple_id IN ?", coupleIDs).
		Order("position ASC, created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *programmeRepo) Update(ctx context.Context, tx *gorm.DB, itemID uuid.UUID, fields map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if len(fields) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.ProgrammeItem{}).
		Where("id = ?", itemID).
		Updates(fields).Error
}

func (pr *programmeRepo) UpdatePositions(ctx context.Context, tx *gorm.DB, positions map[uuid.UUID]int) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	for itemID, position := range positions {
		if err := transaction.WithContext(ctx).
			Model(&types.ProgrammeItem{}).
			Where("id = ?", itemID).
			Update("position", position).Error; err != nil {
			return err
		}
	}
	return nil
}

func (pr *programmeRepo) Delete(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&types.ProgrammeItem{}).Error
}
