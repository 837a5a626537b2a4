package accounts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type CoupleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, couples []*types.Couple) ([]*types.Couple, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.Couple, error)
	GetByEmails(ctx context.Context, tx *gorm.DB, emails []string) ([]*types.Couple, error)
	GetBySlugs(ctx context.Context, tx *gorm.DB, slugs []string) ([]*types.Couple, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	SlugExists(ctx context.Context, tx *gorm.DB, slug string) (bool, error)
	UpdateProfile(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID, fields map[string]any) error
	List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Couple, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID) error
}

type coupleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCoupleRepo(db *gorm.DB, baseLog *logger.Logger) CoupleRepo {
	repoLog := baseLog.With("repo", "CoupleRepo")
	return &coupleRepo{db: db, log: repoLog}
}

func (cr *coupleRepo) Create(ctx context.Context, tx *gorm.DB, couples []*types.Couple) ([]*types.Couple, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(couples) == 0 {
		return []*types.Couple{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&couples).Error; err != nil {
		return nil, err
	}

	return couples, nil
}

func (cr *coupleRepo) GetByIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.Couple, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Couple

	if len(coupleIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", coupleIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *coupleRepo) GetByEmails(ctx context.Context, tx *gorm.DB, emails []string) ([]*types.Couple, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Couple
	if len(emails) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("email IN ?", emails).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *coupleRepo) GetBySlugs(ctx context.Context, tx *gorm.DB, slugs []string) ([]*types.Couple, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Couple
	if len(slugs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("slug IN ?", slugs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *coupleRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var count int64

	if err := transaction.WithContext(ctx).
		Model(&types.Couple{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (cr *coupleRepo) SlugExists(ctx context.Context, tx *gorm.DB, slug string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var count int64

	if err := transaction.WithContext(ctx).
		Model(&types.Couple{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (cr *coupleRepo) UpdateProfile(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID, fields map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if len(fields) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Couple{}).
		Where("id = ?", coupleID).
		Updates(fields).Error
}

func (cr *coupleRepo) List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Couple, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Couple
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *coupleRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Couple{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (cr *coupleRepo) Delete(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", coupleID).
		Delete(&types.Couple{}).Error
}
