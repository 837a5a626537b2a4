package accounts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type SuperAdminRepo interface {
	Create(ctx context.Context, tx *gorm.DB, admins []*types.SuperAdmin) ([]*types.SuperAdmin, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, adminIDs []uuid.UUID) ([]*types.SuperAdmin, error)
	GetByEmails(ctx context.Context, tx *gorm.DB, emails []string) ([]*types.SuperAdmin, error)
}

type superAdminRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSuperAdminRepo(db *gorm.DB, baseLog *logger.Logger) SuperAdminRepo {
	repoLog := baseLog.With("repo", "SuperAdminRepo")
	return &superAdminRepo{db: db, log: repoLog}
}

func (sr *superAdminRepo) Create(ctx context.Context, tx *gorm.DB, admins []*types.SuperAdmin) ([]*types.SuperAdmin, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if len(admins) == 0 {
		return []*types.SuperAdmin{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (sr *superAdminRepo) GetByIDs(ctx context.Context, tx *gorm.DB, adminIDs []uuid.UUID) ([]*types.SuperAdmin, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.SuperAdmin
	if len(adminIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", adminIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *superAdminRepo) GetByEmails(ctx context.Context, tx *gorm.DB, emails []string) ([]*types.SuperAdmin, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.SuperAdmin
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
