package messaging

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type MessageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, messages []*types.Message) ([]*types.Message, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, messageIDs []uuid.UUID) ([]*types.Message, error)
	GetByCoupleID(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID, approvedOnly bool, limit, offset int) ([]*types.Message, error)
	SetApproved(ctx context.Context, tx *gorm.DB, messageID uuid.UUID, approved bool) error
	Delete(ctx context.Context, tx *gorm.DB, messageID uuid.UUID) error
}

type messageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMessageRepo(db *gorm.DB, baseLog *logger.Logger) MessageRepo {
	repoLog := baseLog.With("repo", "MessageRepo")
	return &messageRepo{db: db, log: repoLog}
}

func (mr *messageRepo) Create(ctx context.Context, tx *gorm.DB, messages []*types.Message) ([]*types.Message, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	if len(messages) == 0 {
		return []*types.Message{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (mr *messageRepo) GetByIDs(ctx context.Context, tx *gorm.DB, messageIDs []uuid.UUID) ([]*types.Message, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var results []*types.Message
	if len(messageIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", messageIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *messageRepo) GetByCoupleID(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID, approvedOnly bool, limit, offset int) ([]*types.Message, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	query := transaction.WithContext(ctx).
		Where("couple_id = ?", coupleID)
	if approvedOnly {
		query = query.Where("approved = true")
	}

	var results []*types.Message
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *messageRepo) SetApproved(ctx context.Context, tx *gorm.DB, messageID uuid.UUID, approved bool) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Message{}).
		Where("id = ?", messageID).
		Update("approved", approved).Error
}

func (mr *messageRepo) Delete(ctx context.Context, tx *gorm.DB, messageID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", messageID).
		Delete(&types.Message{}).Error
}
