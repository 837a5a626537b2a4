package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/evermore-apps/evermore-backend/internal/data/repos"
	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type NotificationService interface {
	// Notify is fire-and-forget: a failed insert is logged, never surfaced,
	// so domain flows do not fail on notification trouble.
	Notify(ctx context.Context, coupleID uuid.UUID, kind types.NotificationKind, title, body string, data datatypes.JSON)
	List(ctx context.Context, coupleID uuid.UUID, unreadOnly bool, limit, offset int) ([]*types.Notification, error)
	UnreadCount(ctx context.Context, coupleID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, coupleID uuid.UUID, notificationIDs []uuid.UUID) error
	MarkAllRead(ctx context.Context, coupleID uuid.UUID) error
}

type notificationService struct {
	db               *gorm.DB
	log              *logger.Logger
	notificationRepo repos.NotificationRepo
}

func NewNotificationService(db *gorm.DB, log *logger.Logger, notificationRepo repos.NotificationRepo) NotificationService {
	serviceLog := log.With("service", "NotificationService")
	return &notificationService{db: db, log: serviceLog, notificationRepo: notificationRepo}
}

func (ns *notificationService) Notify(ctx context.Context, coupleID uuid.UUID, kind types.NotificationKind, title, body string, data datatypes.JSON) {
	notification := &types.Notification{
		ID:       uuid.New(),
		CoupleID: coupleID,
		Kind:     kind,
		Title:    title,
		Body:     body,
		Data:     data,
	}
	if _, err := ns.notificationRepo.Create(ctx, nil, []*types.Notification{notification}); err != nil {
		ns.log.Warn("failed to create notification", "couple_id", coupleID, "kind", kind, "error", err)
	}
}

func (ns *notificationService) List(ctx context.Context, coupleID uuid.UUID, unreadOnly bool, limit, offset int) ([]*types.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return ns.notificationRepo.GetByCoupleID(ctx, nil, coupleID, unreadOnly, limit, offset)
}

func (ns *notificationService) UnreadCount(ctx context.Context, coupleID uuid.UUID) (int64, error) {
	return ns.notificationRepo.CountUnread(ctx, nil, coupleID)
}

func (ns *notificationService) MarkRead(ctx context.Context, coupleID uuid.UUID, notificationIDs []uuid.UUID) error {
	if len(notificationIDs) == 0 {
		return fmt.Errorf("no notification ids given")
	}
	return ns.notificationRepo.MarkRead(ctx, nil, notificationIDs, time.Now())
}

func (ns *notificationService) MarkAllRead(ctx context.Context, coupleID uuid.UUID) error {
	return ns.notificationRepo.MarkAllRead(ctx, nil, coupleID, time.Now())
}
