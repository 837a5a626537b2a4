package events

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type ActivityLogRepo interface {
	Append(ctx context.Context, tx *gorm.DB, entries []*types.ActivityLog) ([]*types.ActivityLog, error)
	GetByCoupleID(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID, limit, offset int) ([]*types.ActivityLog, error)
	GetByAction(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID, action string, limit, offset int) ([]*types.ActivityLog, error)
}

type activityLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewActivityLogRepo(db *gorm.DB, baseLog *logger.Logger) ActivityLogRepo {
	repoLog := baseLog.With("repo", "ActivityLogRepo")
	return &activityLogRepo{db: db, log: repoLog}
}

func (ar *activityLogRepo) Append(ctx context.Context, tx *gorm.DB, entries []*types.ActivityLog) ([]*types.ActivityLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if len(entries) == 0 {
		return []*types.ActivityLog{}, nil
	}

	if err := transaction.WithContext(ctx).CreateInBatches(&entries, 200).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (ar *activityLogRepo) GetByCoupleID(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID, limit, offset int) ([]*types.ActivityLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.ActivityLog
	if err := transaction.WithContext(ctx).
		Where("couple_id = ?", coupleID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *activityLogRepo) GetByAction(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID, action string, limit, offset int) ([]*types.ActivityLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.ActivityLog
	if action == "" {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("couple_id = ? AND action = ?", coupleID, action).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
