package accounts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type OrganizerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, organizers []*types.Organizer) ([]*types.Organizer, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, organizerIDs []uuid.UUID) ([]*types.Organizer, error)
	GetByCoupleIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.Organizer, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) ([]*types.Organizer, error)
	GetByCoupleAndEmail(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID, email string) (*types.Organizer, error)
	UpdateRole(ctx context.Context, tx *gorm.DB, organizerID uuid.UUID, role types.OrganizerRole) error
	Delete(ctx context.Context, tx *gorm.DB, organizerID uuid.UUID) error
}

type organizerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrganizerRepo(db *gorm.DB, baseLog *logger.Logger) OrganizerRepo {
	repoLog := baseLog.With("repo", "OrganizerRepo")
	return &organizerRepo{db: db, log: repoLog}
}

func (or *organizerRepo) Create(ctx context.Context, tx *gorm.DB, organizers []*types.Organizer) ([]*types.Organizer, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	if len(organizers) == 0 {
		return []*types.Organizer{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&organizers).Error; err != nil {
		return nil, err
	}
	return organizers, nil
}

func (or *organizerRepo) GetByIDs(ctx context.Context, tx *gorm.DB, organizerIDs []uuid.UUID) ([]*types.Organizer, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var results []*types.Organizer
	if len(organizerIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", organizerIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *organizerRepo) GetByCoupleIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.Organizer, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var results []*types.Organizer
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

func (or *organizerRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) ([]*types.Organizer, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var results []*types.Organizer
	if email == "" {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("email = ?", email).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *organizerRepo) GetByCoupleAndEmail(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID, email string) (*types.Organizer, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var result types.Organizer
	err := transaction.WithContext(ctx).
		Where("couple_id = ? AND email = ?", coupleID, email).
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (or *organizerRepo) UpdateRole(ctx context.Context, tx *gorm.DB, organizerID uuid.UUID, role types.OrganizerRole) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Organizer{}).
		Where("id = ?", organizerID).
		Update("role", role).Error
}

func (or *organizerRepo) Delete(ctx context.Context, tx *gorm.DB, organizerID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", organizerID).
		Delete(&types.Organizer{}).Error
}
