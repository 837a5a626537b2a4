package engagement

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type QuizResultRepo interface {
	Create(ctx context.Context, tx *gorm.DB, results []*types.QuizResult) ([]*types.QuizResult, error)
	GetByQuizIDs(ctx context.Context, tx *gorm.DB, quizIDs []uuid.UUID) ([]*types.QuizResult, error)
	GetByQuizAndGuest(ctx context.Context, tx *gorm.DB, quizID, guestID uuid.UUID) (*types.QuizResult, error)
}

type quizResultRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizResultRepo(db *gorm.DB, baseLog *logger.Logger) QuizResultRepo {
	repoLog := baseLog.With("repo", "QuizResultRepo")
	return &quizResultRepo{db: db, log: repoLog}
}

func (qr *quizResultRepo) Create(ctx context.Context, tx *gorm.DB, results []*types.QuizResult) ([]*types.QuizResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}

	if len(results) == 0 {
		return []*types.QuizResult{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (qr *quizResultRepo) GetByQuizIDs(ctx context.Context, tx *gorm.DB, quizIDs []uuid.UUID) ([]*types.QuizResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}

	var results []*types.QuizResult
	if len(quizIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("quiz_id IN ?", quizIDs).
		Order("score DESC, finished_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (qr *quizResultRepo) GetByQuizAndGuest(ctx context.Context, tx *gorm.DB, quizID, guestID uuid.UUID) (*types.QuizResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}

	var result types.QuizResult
	err := transaction.WithContext(ctx).
		Where("quiz_id = ? AND guest_id = ?", quizID, guestID).
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}
