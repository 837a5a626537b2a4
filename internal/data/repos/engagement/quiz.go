package engagement

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type QuizRepo interface {
	Create(ctx context.Context, tx *gorm.DB, quizzes []*types.Quiz) ([]*types.Quiz, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, quizIDs []uuid.UUID) ([]*types.Quiz, error)
	GetByCoupleIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.Quiz, error)
	Update(ctx context.Context, tx *gorm.DB, quizID uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, quizID uuid.UUID) error
}

type quizRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizRepo(db *gorm.DB, baseLog *logger.Logger) QuizRepo {
	repoLog := baseLog.With("repo", "QuizRepo")
	return &quizRepo{db: db, log: repoLog}
}

func (qr *quizRepo) Create(ctx context.Context, tx *gorm.DB, quizzes []*types.Quiz) ([]*types.Quiz, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}

	if len(quizzes) == 0 {
		return []*types.Quiz{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (qr *quizRepo) GetByIDs(ctx context.Context, tx *gorm.DB, quizIDs []uuid.UUID) ([]*types.Quiz, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}

	var results []*types.Quiz
	if len(quizIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", quizIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (qr *quizRepo) GetByCoupleIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.Quiz, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}

	var results []*types.Quiz
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

func (qr *quizRepo) Update(ctx context.Context, tx *gorm.DB, quizID uuid.UUID, fields map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	if len(fields) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Quiz{}).
		Where("id = ?", quizID).
		Updates(fields).Error
}

func (qr *quizRepo) Delete(ctx context.Context, tx *gorm.DB, quizID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", quizID).
		Delete(&types.Quiz{}).Error
}
