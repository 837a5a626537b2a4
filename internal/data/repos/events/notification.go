package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type NotificationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, notifications []*types.Notification) ([]*types.Notification, error)
	GetByCoupleID(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID, unreadOnly bool, limit, offset int) ([]*types.Notification, error)
	CountUnread(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, tx *gorm.DB, notificationIDs []uuid.UUID, at time.Time) error
	MarkAllRead(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID, at time.Time) error
}

type notificationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNotificationRepo(db *gorm.DB, baseLog *logger.Logger) NotificationRepo {
	repoLog := baseLog.With("repo", "NotificationRepo")
	return &notificationRepo{db: db, log: repoLog}
}

func (nr *notificationRepo) Create(ctx context.Context, tx *gorm.DB, notifications []*types.Notification) ([]*types.Notification, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}

	if len(notifications) == 0 {
		return []*types.Notification{}, nil
	}

	if err := transaction.WithContext(ctx).CreateInBatches(&notifications, 200).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (nr *notificationRepo) GetByCoupleID(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID, unreadOnly bool, limit, offset int) ([]*types.Notification, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}

	query := transaction.WithContext(ctx).
		Where("couple_id = ?", coupleID)
	if unreadOnly {
		query = query.Where("read_at IS NULL")
	}

	var results []*types.Notification
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (nr *notificationRepo) CountUnread(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Notification{}).
		Where("couple_id = ? AND read_at IS NULL", coupleID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (nr *notificationRepo) MarkRead(ctx context.Context, tx *gorm.DB, notificationIDs []uuid.UUID, at time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	if len(notificationIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Notification{}).
		Where("id IN ? AND read_at IS NULL", notificationIDs).
		Update("read_at", at).Error
}

func (nr *notificationRepo) MarkAllRead(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID, at time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Notification{}).
		Where("couple_id = ? AND read_at IS NULL", coupleID).
		Update("read_at", at).Error
}
