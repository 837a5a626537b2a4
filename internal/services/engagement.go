package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/evermore-apps/evermore-backend/internal/data/repos"
	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

// PollResults pairs a poll with its per-option vote counts, indexed the same
// way as the poll's option list.
type PollResults struct {
	Poll   *types.Poll `json:"poll"`
	Counts []int64     `json:"counts"`
	Total  int64       `json:"total"`
}

type QuizLeaderboardEntry struct {
	GuestID  uuid.UUID `json:"guest_id"`
	Score    int       `json:"score"`
	MaxScore int       `json:"max_score"`
}

type EngagementService interface {
	CreateQuiz(ctx context.Context, quiz *types.Quiz) error
	ListQuizzes(ctx context.Context, coupleID uuid.UUID) ([]*types.Quiz, error)
	UpdateQuiz(ctx context.Context, coupleID, quizID uuid.UUID, fields map[string]any) error
	DeleteQuiz(ctx context.Context, coupleID, quizID uuid.UUID) error
	SubmitQuizResult(ctx context.Context, coupleID uuid.UUID, result *types.QuizResult) error
	QuizLeaderboard(ctx context.Context, coupleID, quizID uuid.UUID) ([]QuizLeaderboardEntry, error)

	CreatePoll(ctx context.Context, poll *types.Poll) error
	ListPolls(ctx context.Context, coupleID uuid.UUID) ([]*types.Poll, error)
	ClosePoll(ctx context.Context, coupleID, pollID uuid.UUID) error
	DeletePoll(ctx context.Context, coupleID, pollID uuid.UUID) error
	Vote(ctx context.Context, coupleID, pollID, guestID uuid.UUID, optionIndex int) error
	PollResults(ctx context.Context, coupleID, pollID uuid.UUID) (*PollResults, error)
}

type engagementService struct {
	db               *gorm.DB
	log              *logger.Logger
	quizRepo         repos.QuizRepo
	quizResultRepo   repos.QuizResultRepo
	pollRepo         repos.PollRepo
	pollResponseRepo repos.PollResponseRepo
	guestRepo        repos.GuestRepo
}

func NewEngagementService(
	db *gorm.DB,
	log *logger.Logger,
	quizRepo repos.QuizRepo,
	quizResultRepo repos.QuizResultRepo,
	pollRepo repos.PollRepo,
	pollResponseRepo repos.PollResponseRepo,
	guestRepo repos.GuestRepo,
) EngagementService {
	serviceLog := log.With("service", "EngagementService")
	return &engagementService{
		db:               db,
		log:              serviceLog,
		quizRepo:         quizRepo,
		quizResultRepo:   quizResultRepo,
		pollRepo:         pollRepo,
		pollResponseRepo: pollResponseRepo,
		guestRepo:        guestRepo,
	}
}

func (es *engagementService) CreateQuiz(ctx context.Context, quiz *types.Quiz) error {
	if quiz.Title == "" {
		return fmt.Errorf("quiz title is required")
	}
	quiz.Active = true
	return es.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quiz.ID = uuid.New()
		if _, err := es.quizRepo.Create(ctx, tx, []*types.Quiz{quiz}); err != nil {
			return fmt.Errorf("failed to create quiz: %w", err)
		}
		return nil
	})
}

func (es *engagementService) ListQuizzes(ctx context.Context, coupleID uuid.UUID) ([]*types.Quiz, error) {
	return es.quizRepo.GetByCoupleIDs(ctx, nil, []uuid.UUID{coupleID})
}

func (es *engagementService) UpdateQuiz(ctx context.Context, coupleID, quizID uuid.UUID, fields map[string]any) error {
	if _, err := es.loadQuiz(ctx, coupleID, quizID); err != nil {
		return err
	}
	return es.quizRepo.Update(ctx, nil, quizID, fields)
}

func (es *engagementService) DeleteQuiz(ctx context.Context, coupleID, quizID uuid.UUID) error {
	if _, err := es.loadQuiz(ctx, coupleID, quizID); err != nil {
		return err
	}
	return es.quizRepo.Delete(ctx, nil, quizID)
}

// SubmitQuizResult stores a guest's single attempt. The unique index on
// (quiz_id, guest_id) rejects a second attempt.
func (es *engagementService) SubmitQuizResult(ctx context.Context, coupleID uuid.UUID, result *types.QuizResult) error {
	quiz, err := es.loadQuiz(ctx, coupleID, result.QuizID)
	if err != nil {
		return err
	}
	if !quiz.Active {
		return fmt.Errorf("quiz is closed")
	}
	if result.Score < 0 || result.MaxScore < 0 || result.Score > result.MaxScore {
		return fmt.Errorf("invalid score")
	}
	guests, err := es.guestRepo.GetByIDs(ctx, nil, []uuid.UUID{result.GuestID})
	if err != nil || len(guests) == 0 || guests[0].CoupleID != coupleID {
		return fmt.Errorf("guest not found")
	}

	return es.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result.ID = uuid.New()
		if _, err := es.quizResultRepo.Create(ctx, tx, []*types.QuizResult{result}); err != nil {
			return fmt.Errorf("quiz already answered by this guest")
		}
		return nil
	})
}

func (es *engagementService) QuizLeaderboard(ctx context.Context, coupleID, quizID uuid.UUID) ([]QuizLeaderboardEntry, error) {
	if _, err := es.loadQuiz(ctx, coupleID, quizID); err != nil {
		return nil, err
	}
	results, err := es.quizResultRepo.GetByQuizIDs(ctx, nil, []uuid.UUID{quizID})
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz results: %w", err)
	}
	entries := make([]QuizLeaderboardEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, QuizLeaderboardEntry{
			GuestID:  r.GuestID,
			Score:    r.Score,
			MaxScore: r.MaxScore,
		})
	}
	return entries, nil
}

func (es *engagementService) CreatePoll(ctx context.Context, poll *types.Poll) error {
	if poll.Question == "" {
		return fmt.Errorf("poll question is required")
	}
	if optionCount(poll) < 2 {
		return fmt.Errorf("a poll needs at least two options")
	}
	poll.Active = true
	return es.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		poll.ID = uuid.New()
		if _, err := es.pollRepo.Create(ctx, tx, []*types.Poll{poll}); err != nil {
			return fmt.Errorf("failed to create poll: %w", err)
		}
		return nil
	})
}

func (es *engagementService) ListPolls(ctx context.Context, coupleID uuid.UUID) ([]*types.Poll, error) {
	return es.pollRepo.GetByCoupleIDs(ctx, nil, []uuid.UUID{coupleID})
}

func (es *engagementService) ClosePoll(ctx context.Context, coupleID, pollID uuid.UUID) error {
	if _, err := es.loadPoll(ctx, coupleID, pollID); err != nil {
		return err
	}
	return es.pollRepo.Update(ctx, nil, pollID, map[string]any{"active": false})
}

func (es *engagementService) DeletePoll(ctx context.Context, coupleID, pollID uuid.UUID) error {
	if _, err := es.loadPoll(ctx, coupleID, pollID); err != nil {
		return err
	}
	return es.pollRepo.Delete(ctx, nil, pollID)
}

// Vote records or replaces a guest's vote while the poll is open.
func (es *engagementService) Vote(ctx context.Context, coupleID, pollID, guestID uuid.UUID, optionIndex int) error {
	poll, err := es.loadPoll(ctx, coupleID, pollID)
	if err != nil {
		return err
	}
	if !poll.Active {
		return fmt.Errorf("poll is closed")
	}
	if optionIndex < 0 || optionIndex >= optionCount(poll) {
		return fmt.Errorf("option index out of range")
	}
	guests, err := es.guestRepo.GetByIDs(ctx, nil, []uuid.UUID{guestID})
	if err != nil || len(guests) == 0 || guests[0].CoupleID != coupleID {
		return fmt.Errorf("guest not found")
	}

	response := &types.PollResponse{
		ID:          uuid.New(),
		PollID:      pollID,
		GuestID:     guestID,
		OptionIndex: optionIndex,
	}
	return es.pollResponseRepo.Upsert(ctx, nil, response)
}

func (es *engagementService) PollResults(ctx context.Context, coupleID, pollID uuid.UUID) (*PollResults, error) {
	poll, err := es.loadPoll(ctx, coupleID, pollID)
	if err != nil {
		return nil, err
	}
	counts, err := es.pollResponseRepo.OptionCounts(ctx, nil, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}

	results := &PollResults{
		Poll:   poll,
		Counts: make([]int64, optionCount(poll)),
	}
	for idx, n := range counts {
		if idx >= 0 && idx < len(results.Counts) {
			results.Counts[idx] = n
			results.Total += n
		}
	}
	return results, nil
}

func optionCount(poll *types.Poll) int {
	var options []json.RawMessage
	if err := json.Unmarshal(poll.Options, &options); err != nil {
		return 0
	}
	return len(options)
}

func (es *engagementService) loadQuiz(ctx context.Context, coupleID, quizID uuid.UUID) (*types.Quiz, error) {
	quizzes, err := es.quizRepo.GetByIDs(ctx, nil, []uuid.UUID{quizID})
	if err != nil || len(quizzes) == 0 {
		return nil, fmt.Errorf("quiz not found")
	}
	if quizzes[0].CoupleID != coupleID {
		return nil, fmt.Errorf("quiz not found")
	}
	return quizzes[0], nil
}

func (es *engagementService) loadPoll(ctx context.Context, coupleID, pollID uuid.UUID) (*types.Poll, error) {
	polls, err := es.pollRepo.GetByIDs(ctx, nil, []uuid.UUID{pollID})
	if err != nil || len(polls) == 0 {
		return nil, fmt.Errorf("poll not found")
	}
	if polls[0].CoupleID != coupleID {
		return nil, fmt.Errorf("poll not found")
	}
	return polls[0], nil
}
