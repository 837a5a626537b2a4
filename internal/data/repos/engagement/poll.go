package engagement

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type PollRepo interface {
	Create(ctx context.Context, tx *gorm.DB, polls []*types.Poll) ([]*types.Poll, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, pollIDs []uuid.UUID) ([]*types.Poll, error)
	GetByCoupleIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.Poll, error)
	Update(ctx context.Context, tx *gorm.DB, pollID uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, pollID uuid.UUID) error
}

type pollRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPollRepo(db *gorm.DB, baseLog *logger.Logger) PollRepo {
	repoLog := baseLog.With("repo", "PollRepo")
	return &pollRepo{db: db, log: repoLog}
}

func (pr *pollRepo) Create(ctx context.Context, tx *gorm.DB, polls []*types.Poll) ([]*types.Poll, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(polls) == 0 {
		return []*types.Poll{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&polls).Error; err != nil {
		return nil, err
	}
	return polls, nil
}

func (pr *pollRepo) GetByIDs(ctx context.Context, tx *gorm.DB, pollIDs []uuid.UUID) ([]*types.Poll, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Poll
	if len(pollIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", pollIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *pollRepo) GetByCoupleIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.Poll, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Poll
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

func (pr *pollRepo) Update(ctx context.Context, tx *gorm.DB, pollID uuid.UUID, fields map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if len(fields) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Poll{}).
		Where("id = ?", pollID).
		Updates(fields).Error
}

func (pr *pollRepo) Delete(ctx context.Context, tx *gorm.DB, pollID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", pollID).
		Delete(&types.Poll{}).Error
}

type PollResponseRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, response *types.PollResponse) error
	GetByPollIDs(ctx context.Context, tx *gorm.DB, pollIDs []uuid.UUID) ([]*types.PollResponse, error)
	OptionCounts(ctx context.Context, tx *gorm.DB, pollID uuid.UUID) (map[int]int64, error)
}

type pollResponseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPollResponseRepo(db *gorm.DB, baseLog *logger.Logger) PollResponseRepo {
	repoLog := baseLog.With("repo", "PollResponseRepo")
	return &pollResponseRepo{db: db, log: repoLog}
}

// Upsert records a vote; a second vote from the same guest overwrites the
// first instead of failing the unique index.
func (pr *pollResponseRepo) Upsert(ctx context.Context, tx *gorm.DB, response *types.PollResponse) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "poll_id"}, {Name: "guest_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"option_index", "updated_at"}),
		}).
		Create(response).Error
}

func (pr *pollResponseRepo) GetByPollIDs(ctx context.Context, tx *gorm.DB, pollIDs []uuid.UUID) ([]*types.PollResponse, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.PollResponse
	if len(pollIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("poll_id IN ?", pollIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *pollResponseRepo) OptionCounts(ctx context.Context, tx *gorm.DB, pollID uuid.UUID) (map[int]int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var rows []struct {
		OptionIndex int   `gorm:"column:option_index"`
		Count       int64 `gorm:"column:count"`
	}
	if err := transaction.WithContext(ctx).
		Model(&types.PollResponse{}).
		Select("option_index, COUNT(*) AS count").
		Where("poll_id = ?", pollID).
		Group("option_index").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[int]int64, len(rows))
	for _, row := range rows {
		counts[row.OptionIndex] = row.Count
	}
	return counts, nil
}
