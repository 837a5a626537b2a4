package engagement_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/evermore-apps/evermore-backend/internal/data/repos/engagement"
	"github.com/evermore-apps/evermore-backend/internal/data/repos/testutil"
	types "github.com/evermore-apps/evermore-backend/internal/domain"
)

func TestQuizResultRepo_RejectsSecondAttempt(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := engagement.NewQuizResultRepo(db, testutil.Logger(t))
	ctx := context.Background()

	quizID := uuid.New()
	guestID := uuid.New()
	first := []*types.QuizResult{{
		ID: uuid.New(), QuizID: quizID, GuestID: guestID, Score: 7, MaxScore: 10,
	}}
	if _, err := repo.Create(ctx, tx, first); err != nil {
		t.Fatalf("first attempt: %v", err)
	}

	second := []*types.QuizResult{{
		ID: uuid.New(), QuizID: quizID, GuestID: guestID, Score: 9, MaxScore: 10,
	}}
	if _, err := repo.Create(ctx, tx, second); err == nil {
		t.Fatalf("expected unique violation on second attempt")
	}
}

func TestQuizResultRepo_LeaderboardOrdering(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := engagement.NewQuizResultRepo(db, testutil.Logger(t))
	ctx := context.Background()

	quizID := uuid.New()
	scores := []int{4, 9, 7}
	for _, s := range scores {
		in := []*types.QuizResult{{
			ID: uuid.New(), QuizID: quizID, GuestID: uuid.New(), Score: s, MaxScore: 10,
		}}
		if _, err := repo.Create(ctx, tx, in); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := repo.GetByQuizIDs(ctx, tx, []uuid.UUID{quizID})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 results got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("expected descending score ordering")
		}
	}
}

func TestQuizResultRepo_GetByQuizAndGuest(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := engagement.NewQuizResultRepo(db, testutil.Logger(t))
	ctx := context.Background()

	quizID := uuid.New()
	guestID := uuid.New()
	in := []*types.QuizResult{{ID: uuid.New(), QuizID: quizID, GuestID: guestID, Score: 5, MaxScore: 10}}
	if _, err := repo.Create(ctx, tx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByQuizAndGuest(ctx, tx, quizID, guestID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Score != 5 {
		t.Fatalf("unexpected result: %+v", got)
	}
}
