package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/evermore-apps/evermore-backend/internal/data/repos"
	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type MessagingService interface {
	PostMessage(ctx context.Context, message *types.Message) error
	ListMessages(ctx context.Context, coupleID uuid.UUID, approvedOnly bool, limit, offset int) ([]*types.Message, error)
	Approve(ctx context.Context, coupleID, messageID uuid.UUID) error
	Reject(ctx context.Context, coupleID, messageID uuid.UUID) error
	DeleteMessage(ctx context.Context, coupleID, messageID uuid.UUID) error
}

type messagingService struct {
	db          *gorm.DB
	log         *logger.Logger
	messageRepo repos.MessageRepo
	guestRepo   repos.GuestRepo
	notifier    NotificationService
}

func NewMessagingService(
	db *gorm.DB,
	log *logger.Logger,
	messageRepo repos.MessageRepo,
	guestRepo repos.GuestRepo,
	notifier NotificationService,
) MessagingService {
	serviceLog := log.With("service", "MessagingService")
	return &messagingService{
		db:          db,
		log:         serviceLog,
		messageRepo: messageRepo,
		guestRepo:   guestRepo,
		notifier:    notifier,
	}
}

// PostMessage stores a guestbook entry awaiting moderation.
func (ms *messagingService) PostMessage(ctx context.Context, message *types.Message) error {
	if message.Body == "" {
		return fmt.Errorf("message body is required")
	}
	author := message.Author
	if message.GuestID != nil {
		guests, err := ms.guestRepo.GetByIDs(ctx, nil, []uuid.UUID{*message.GuestID})
		if err != nil || len(guests) == 0 || guests[0].CoupleID != message.CoupleID {
			return fmt.Errorf("guest not found")
		}
		author = guests[0].Name
		message.Author = author
	}
	if author == "" {
		return fmt.Errorf("message author is required")
	}
	message.Approved = false

	err := ms.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		message.ID = uuid.New()
		if _, err := ms.messageRepo.Create(ctx, tx, []*types.Message{message}); err != nil {
			return fmt.Errorf("failed to create message: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	ms.notifier.Notify(ctx, message.CoupleID, types.NotificationMessage,
		"New guestbook message", fmt.Sprintf("%s left a message", author), nil)
	return nil
}

func (ms *messagingService) ListMessages(ctx context.Context, coupleID uuid.UUID, approvedOnly bool, limit, offset int) ([]*types.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return ms.messageRepo.GetByCoupleID(ctx, nil, coupleID, approvedOnly, limit, offset)
}

func (ms *messagingService) Approve(ctx context.Context, coupleID, messageID uuid.UUID) error {
	if err := ms.ensureOwned(ctx, coupleID, messageID); err != nil {
		return err
	}
	return ms.messageRepo.SetApproved(ctx, nil, messageID, true)
}

func (ms *messagingService) Reject(ctx context.Context, coupleID, messageID uuid.UUID) error {
	if err := ms.ensureOwned(ctx, coupleID, messageID); err != nil {
		return err
	}
	return ms.messageRepo.SetApproved(ctx, nil, messageID, false)
}

func (ms *messagingService) DeleteMessage(ctx context.Context, coupleID, messageID uuid.UUID) error {
	if err := ms.ensureOwned(ctx, coupleID, messageID); err != nil {
		return err
	}
	return ms.messageRepo.Delete(ctx, nil, messageID)
}

func (ms *messagingService) ensureOwned(ctx context.Context, coupleID, messageID uuid.UUID) error {
	messages, err := ms.messageRepo.GetByIDs(ctx, nil, []uuid.UUID{messageID})
	if err != nil || len(messages) == 0 {
		return fmt.Errorf("message not found")
	}
	if messages[0].CoupleID != coupleID {
		return fmt.Errorf("message not found")
	}
	return nil
}
