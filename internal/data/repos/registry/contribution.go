package registry

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type ContributionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, contributions []*types.Contribution) ([]*types.Contribution, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, contributionIDs []uuid.UUID) ([]*types.Contribution, error)
	GetByCoupleIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.Contribution, error)
	GetByGiftIDs(ctx context.Context, tx *gorm.DB, giftIDs []uuid.UUID) ([]*types.Contribution, error)
	GetByPotIDs(ctx context.Context, tx *gorm.DB, potIDs []uuid.UUID) ([]*types.Contribution, error)
	GetByGuestIDs(ctx context.Context, tx *gorm.DB, guestIDs []uuid.UUID) ([]*types.Contribution, error)
	Save(ctx context.Context, tx *gorm.DB, contribution *types.Contribution) error
	StatusCounts(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID) (map[types.ContributionStatus]int64, error)
}

type contributionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContributionRepo(db *gorm.DB, baseLog *logger.Logger) ContributionRepo {
	repoLog := baseLog.With("repo", "ContributionRepo")
	return &contributionRepo{db: db, log: repoLog}
}

func (cr *contributionRepo) Create(ctx context.Context, tx *gorm.DB, contributions []*types.Contribution) ([]*types.Contribution, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(contributions) == 0 {
		return []*types.Contribution{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&contributions).Error; err != nil {
		return nil, err
	}
	return contributions, nil
}

func (cr *contributionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, contributionIDs []uuid.UUID) ([]*types.Contribution, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Contribution
	if len(contributionIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", contributionIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contributionRepo) GetByCoupleIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.Contribution, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Contribution
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

func (cr *contributionRepo) GetByGiftIDs(ctx context.Context, tx *gorm.DB, giftIDs []uuid.UUID) ([]*types.Contribution, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Contribution
	if len(giftIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("gift_id IN ?", giftIDs).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contributionRepo) GetByPotIDs(ctx context.Context, tx *gorm.DB, potIDs []uuid.UUID) ([]*types.Contribution, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Contribution
	if len(potIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("pot_id IN ?", potIDs).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contributionRepo) GetByGuestIDs(ctx context.Context, tx *gorm.DB, guestIDs []uuid.UUID) ([]*types.Contribution, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Contribution
	if len(guestIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("guest_id IN ?", guestIDs).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contributionRepo) Save(ctx context.Context, tx *gorm.DB, contribution *types.Contribution) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Save(contribution).Error
}

func (cr *contributionRepo) StatusCounts(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID) (map[types.ContributionStatus]int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var rows []struct {
		Status types.ContributionStatus `gorm:"column:status"`
		Count  int64                    `gorm:"column:count"`
	}
	if err := transaction.WithContext(ctx).
		Model(&types.Contribution{}).
		Select("status, COUNT(*) AS count").
		Where("couple_id = ?", coupleID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[types.ContributionStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
