package events_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/evermore-apps/evermore-backend/internal/data/repos/events"
	"github.com/evermore-apps/evermore-backend/internal/data/repos/testutil"
	types "github.com/evermore-apps/evermore-backend/internal/domain"
)

func TestProgrammeRepo_ListsInPositionOrder(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := events.NewProgrammeRepo(db, testutil.Logger(t))
	ctx := context.Background()

	coupleID := uuid.New()
	var in []*types.ProgrammeItem
	for i := 0; i < 3; i++ {
		in = append(in, &types.ProgrammeItem{
			ID: uuid.New(), CoupleID: coupleID,
			Title: fmt.Sprintf("item-%d", i), Position: i,
		})
	}
	if _, err := repo.Create(ctx, tx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByCoupleIDs(ctx, tx, []uuid.UUID{coupleID})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 items got %d", len(got))
	}
	for i, item := range got {
		if item.Position != i {
			t.Fatalf("expected position %d at index %d, got %d", i, i, item.Position)
		}
	}
}

func TestProgrammeRepo_UpdatePositionsReorders(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := events.NewProgrammeRepo(db, testutil.Logger(t))
	ctx := context.Background()

	coupleID := uuid.New()
	var in []*types.ProgrammeItem
	for i := 0; i < 3; i++ {
		in = append(in, &types.ProgrammeItem{
			ID: uuid.New(), CoupleID: coupleID,
			Title: fmt.Sprintf("item-%d", i), Position: i,
		})
	}
	if _, err := repo.Create(ctx, tx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	// reverse the order
	positions := map[uuid.UUID]int{
		in[0].ID: 2,
		in[1].ID: 1,
		in[2].ID: 0,
	}
	if err := repo.UpdatePositions(ctx, tx, positions); err != nil {
		t.Fatalf("update positions: %v", err)
	}

	got, err := repo.GetByCoupleIDs(ctx, tx, []uuid.UUID{coupleID})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got[0].Title != "item-2" || got[2].Title != "item-0" {
		t.Fatalf("expected reversed order, got %q %q %q", got[0].Title, got[1].Title, got[2].Title)
	}
}
