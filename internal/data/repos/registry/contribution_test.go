package registry_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/evermore-apps/evermore-backend/internal/data/repos/registry"
	"github.com/evermore-apps/evermore-backend/internal/data/repos/testutil"
	types "github.com/evermore-apps/evermore-backend/internal/domain"
)

func amount(s string) *string { return &s }

func TestContributionRepo_StatusCounts(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := registry.NewContributionRepo(db, testutil.Logger(t))
	ctx := context.Background()

	coupleID := uuid.New()
	potID := uuid.New()
	in := []*types.Contribution{
		{ID: uuid.New(), CoupleID: coupleID, GuestID: uuid.New(), PotID: &potID, Amount: amount("10.00"), Status: types.ContributionPending},
		{ID: uuid.New(), CoupleID: coupleID, GuestID: uuid.New(), PotID: &potID, Amount: amount("20.00"), Status: types.ContributionConfirmed},
		{ID: uuid.New(), CoupleID: coupleID, GuestID: uuid.New(), PotID: &potID, Amount: amount("30.00"), Status: types.ContributionConfirmed},
		{ID: uuid.New(), CoupleID: coupleID, GuestID: uuid.New(), PotID: &potID, Amount: amount("40.00"), Status: types.ContributionCancelled},
	}
	if _, err := repo.Create(ctx, tx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	counts, err := repo.StatusCounts(ctx, tx, coupleID)
	if err != nil {
		t.Fatalf("status counts: %v", err)
	}
	if counts[types.ContributionPending] != 1 || counts[types.ContributionConfirmed] != 2 || counts[types.ContributionCancelled] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestContributionRepo_SaveRoundTripsStatus(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := registry.NewContributionRepo(db, testutil.Logger(t))
	ctx := context.Background()

	coupleID := uuid.New()
	giftID := uuid.New()
	in := []*types.Contribution{{
		ID: uuid.New(), CoupleID: coupleID, GuestID: uuid.New(),
		GiftID: &giftID, Amount: amount("55.00"), Status: types.ContributionPending,
	}}
	created, err := repo.Create(ctx, tx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	c := created[0]
	c.Confirm(c.CreatedAt)
	if err := repo.Save(ctx, tx, c); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{c.ID})
	if err != nil || len(got) != 1 {
		t.Fatalf("reload: %v (%d)", err, len(got))
	}
	if got[0].Status != types.ContributionConfirmed {
		t.Fatalf("expected status=confirmed got %q", got[0].Status)
	}
	if got[0].ConfirmedAt == nil {
		t.Fatalf("expected confirmed_at stamped")
	}
}

func TestContributionRepo_GetByPotIDsOrdersByCreation(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := registry.NewContributionRepo(db, testutil.Logger(t))
	ctx := context.Background()

	coupleID := uuid.New()
	potID := uuid.New()
	for i := 0; i < 3; i++ {
		in := []*types.Contribution{{
			ID: uuid.New(), CoupleID: coupleID, GuestID: uuid.New(),
			PotID: &potID, Amount: amount("5.00"), Status: types.ContributionConfirmed,
		}}
		if _, err := repo.Create(ctx, tx, in); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := repo.GetByPotIDs(ctx, tx, []uuid.UUID{potID})
	if err != nil {
		t.Fatalf("get by pot: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 contributions got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.Before(got[i-1].CreatedAt) {
			t.Fatalf("expected ascending created_at ordering")
		}
	}
}
