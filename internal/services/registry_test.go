package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/evermore-apps/evermore-backend/internal/data/repos"
	"github.com/evermore-apps/evermore-backend/internal/data/repos/testutil"
	types "github.com/evermore-apps/evermore-backend/internal/domain"
)

type registryFixture struct {
	svc              RegistryService
	giftRepo         repos.GiftRepo
	potRepo          repos.PotRepo
	contributionRepo repos.ContributionRepo
	guestRepo        repos.GuestRepo
}

func newRegistryFixture(t *testing.T, tx *gorm.DB) *registryFixture {
	t.Helper()
	log := testutil.Logger(t)
	giftRepo := repos.NewGiftRepo(tx, log)
	potRepo := repos.NewPotRepo(tx, log)
	contributionRepo := repos.NewContributionRepo(tx, log)
	guestRepo := repos.NewGuestRepo(tx, log)
	notifier := NewNotificationService(tx, log, repos.NewNotificationRepo(tx, log))
	activity := NewActivityService(tx, log, repos.NewActivityLogRepo(tx, log))
	return &registryFixture{
		svc:              NewRegistryService(tx, log, giftRepo, potRepo, contributionRepo, guestRepo, notifier, activity),
		giftRepo:         giftRepo,
		potRepo:          potRepo,
		contributionRepo: contributionRepo,
		guestRepo:        guestRepo,
	}
}

func (f *registryFixture) seedGuest(t *testing.T, ctx context.Context, coupleID uuid.UUID) *types.Guest {
	t.Helper()
	guest := &types.Guest{ID: uuid.New(), CoupleID: coupleID, Name: "Ana", QRToken: uuid.NewString()}
	if _, err := f.guestRepo.Create(ctx, nil, []*types.Guest{guest}); err != nil {
		t.Fatalf("create guest: %v", err)
	}
	return guest
}

func (f *registryFixture) seedGift(t *testing.T, ctx context.Context, coupleID uuid.UUID, desired int) *types.Gift {
	t.Helper()
	gift := &types.Gift{ID: uuid.New(), CoupleID: coupleID, Name: "Toaster", Price: "25.00", DesiredQty: desired}
	if _, err := f.giftRepo.Create(ctx, nil, []*types.Gift{gift}); err != nil {
		t.Fatalf("create gift: %v", err)
	}
	return gift
}

func (f *registryFixture) receivedQty(t *testing.T, ctx context.Context, giftID uuid.UUID) int {
	t.Helper()
	gifts, err := f.giftRepo.GetByIDs(ctx, nil, []uuid.UUID{giftID})
	if err != nil || len(gifts) == 0 {
		t.Fatalf("reload gift: %v", err)
	}
	return gifts[0].ReceivedQty
}

func TestDeliverContribution_IncrementsReceivedOnce(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	f := newRegistryFixture(t, tx)
	ctx := context.Background()

	coupleID := uuid.New()
	guest := f.seedGuest(t, ctx, coupleID)
	gift := f.seedGift(t, ctx, coupleID, 2)
	c := &types.Contribution{ID: uuid.New(), CoupleID: coupleID, GuestID: guest.ID, GiftID: &gift.ID, Status: types.ContributionConfirmed}
	if _, err := f.contributionRepo.Create(ctx, nil, []*types.Contribution{c}); err != nil {
		t.Fatalf("create contribution: %v", err)
	}

	if err := f.svc.DeliverContribution(ctx, coupleID, c.ID); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if got := f.receivedQty(t, ctx, gift.ID); got != 1 {
		t.Fatalf("expected received qty 1, got %d", got)
	}

	// re-delivery stamps nothing new and must not bump the counter again
	if err := f.svc.DeliverContribution(ctx, coupleID, c.ID); err != nil {
		t.Fatalf("second deliver: %v", err)
	}
	if got := f.receivedQty(t, ctx, gift.ID); got != 1 {
		t.Fatalf("expected received qty to stay 1, got %d", got)
	}
}

func TestDeliverContribution_FailedTransitionLeavesReceivedQty(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	f := newRegistryFixture(t, tx)
	ctx := context.Background()

	coupleID := uuid.New()
	guest := f.seedGuest(t, ctx, coupleID)
	gift := f.seedGift(t, ctx, coupleID, 1)
	c := &types.Contribution{ID: uuid.New(), CoupleID: coupleID, GuestID: guest.ID, GiftID: &gift.ID, Status: types.ContributionCancelled}
	if _, err := f.contributionRepo.Create(ctx, nil, []*types.Contribution{c}); err != nil {
		t.Fatalf("create contribution: %v", err)
	}

	if err := f.svc.DeliverContribution(ctx, coupleID, c.ID); err == nil {
		t.Fatalf("expected delivering a cancelled contribution to fail")
	}
	if got := f.receivedQty(t, ctx, gift.ID); got != 0 {
		t.Fatalf("expected received qty to stay 0, got %d", got)
	}

	if err := f.svc.DeliverContribution(ctx, uuid.New(), c.ID); err == nil {
		t.Fatalf("expected foreign couple to be rejected")
	}
}

func TestListGuestContributions_ScopedToCouple(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	f := newRegistryFixture(t, tx)
	ctx := context.Background()

	coupleID := uuid.New()
	guest := f.seedGuest(t, ctx, coupleID)
	gift := f.seedGift(t, ctx, coupleID, 5)
	in := []*types.Contribution{
		{ID: uuid.New(), CoupleID: coupleID, GuestID: guest.ID, GiftID: &gift.ID, Status: types.ContributionPending},
		{ID: uuid.New(), CoupleID: coupleID, GuestID: guest.ID, GiftID: &gift.ID, Status: types.ContributionConfirmed},
	}
	if _, err := f.contributionRepo.Create(ctx, nil, in); err != nil {
		t.Fatalf("create contributions: %v", err)
	}

	history, err := f.svc.ListGuestContributions(ctx, coupleID, guest.ID)
	if err != nil {
		t.Fatalf("list guest contributions: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 contributions, got %d", len(history))
	}

	if _, err := f.svc.ListGuestContributions(ctx, uuid.New(), guest.ID); err == nil {
		t.Fatalf("expected foreign couple to be rejected")
	}
}

func TestUpdateGift_AppliesFieldsWithinTenant(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	f := newRegistryFixture(t, tx)
	ctx := context.Background()

	coupleID := uuid.New()
	gift := f.seedGift(t, ctx, coupleID, 1)

	fields := map[string]any{"name": "Kettle", "desired_qty": 3}
	if err := f.svc.UpdateGift(ctx, coupleID, gift.ID, fields); err != nil {
		t.Fatalf("update gift: %v", err)
	}
	gifts, err := f.giftRepo.GetByIDs(ctx, nil, []uuid.UUID{gift.ID})
	if err != nil || len(gifts) == 0 {
		t.Fatalf("reload gift: %v", err)
	}
	if gifts[0].Name != "Kettle" || gifts[0].DesiredQty != 3 {
		t.Fatalf("expected updated fields, got %+v", gifts[0])
	}

	if err := f.svc.UpdateGift(ctx, uuid.New(), gift.ID, fields); err == nil {
		t.Fatalf("expected foreign couple to be rejected")
	}
}
