package guests_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/evermore-apps/evermore-backend/internal/data/repos/guests"
	"github.com/evermore-apps/evermore-backend/internal/data/repos/testutil"
	types "github.com/evermore-apps/evermore-backend/internal/domain"
)

func TestGuestRepo_CreateAndGetByCouple(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := guests.NewGuestRepo(db, testutil.Logger(t))
	ctx := context.Background()

	coupleID := uuid.New()
	in := []*types.Guest{
		{ID: uuid.New(), CoupleID: coupleID, Name: "Ada", QRToken: uuid.New().String()},
		{ID: uuid.New(), CoupleID: coupleID, Name: "Ben", QRToken: uuid.New().String()},
	}
	if _, err := repo.Create(ctx, tx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByCoupleIDs(ctx, tx, []uuid.UUID{coupleID})
	if err != nil {
		t.Fatalf("get by couple: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 guests got %d", len(got))
	}
	for _, g := range got {
		if g.RSVPStatus != types.RSVPPending {
			t.Fatalf("expected default rsvp=pending got %q", g.RSVPStatus)
		}
	}
}

func TestGuestRepo_GetByQRToken(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := guests.NewGuestRepo(db, testutil.Logger(t))
	ctx := context.Background()

	token := uuid.New().String()
	in := []*types.Guest{{ID: uuid.New(), CoupleID: uuid.New(), Name: "Cleo", QRToken: token}}
	if _, err := repo.Create(ctx, tx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByQRToken(ctx, tx, token)
	if err != nil {
		t.Fatalf("get by token: %v", err)
	}
	if got == nil || got.Name != "Cleo" {
		t.Fatalf("expected Cleo, got %+v", got)
	}

	if _, err := repo.GetByQRToken(ctx, tx, "no-such-token"); err == nil {
		t.Fatalf("expected error for unknown token")
	}
}

func TestGuestRepo_MarkCheckedIn_IsIdempotentOnTimestamp(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := guests.NewGuestRepo(db, testutil.Logger(t))
	ctx := context.Background()

	guestID := uuid.New()
	in := []*types.Guest{{ID: guestID, CoupleID: uuid.New(), Name: "Dot", QRToken: uuid.New().String()}}
	if _, err := repo.Create(ctx, tx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	first := time.Date(2026, 6, 20, 14, 5, 0, 0, time.UTC)
	if err := repo.MarkCheckedIn(ctx, tx, guestID, true, false, first); err != nil {
		t.Fatalf("first check-in: %v", err)
	}
	if err := repo.MarkCheckedIn(ctx, tx, guestID, false, true, first.Add(2*time.Hour)); err != nil {
		t.Fatalf("second check-in: %v", err)
	}

	got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{guestID})
	if err != nil || len(got) != 1 {
		t.Fatalf("reload: %v (%d)", err, len(got))
	}
	g := got[0]
	if !g.PresentCeremony || !g.PresentReception {
		t.Fatalf("expected both presence flags set, got ceremony=%v reception=%v", g.PresentCeremony, g.PresentReception)
	}
	if g.CheckedInAt == nil || !g.CheckedInAt.Equal(first) {
		t.Fatalf("expected checked_in_at to keep first timestamp, got %v", g.CheckedInAt)
	}
}

func TestGuestRepo_CountByRSVPStatusAndArrivalHours(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := guests.NewGuestRepo(db, testutil.Logger(t))
	ctx := context.Background()

	coupleID := uuid.New()
	var in []*types.Guest
	for i := 0; i < 3; i++ {
		in = append(in, &types.Guest{
			ID: uuid.New(), CoupleID: coupleID,
			Name: fmt.Sprintf("guest-%d", i), QRToken: uuid.New().String(),
			RSVPStatus: types.RSVPConfirmed,
		})
	}
	in = append(in, &types.Guest{
		ID: uuid.New(), CoupleID: coupleID,
		Name: "decliner", QRToken: uuid.New().String(),
		RSVPStatus: types.RSVPDeclined,
	})
	if _, err := repo.Create(ctx, tx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	counts, err := repo.CountByRSVPStatus(ctx, tx, coupleID)
	if err != nil {
		t.Fatalf("count by status: %v", err)
	}
	if counts[types.RSVPConfirmed] != 3 || counts[types.RSVPDeclined] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}

	at14 := time.Date(2026, 6, 20, 14, 10, 0, 0, time.UTC)
	at15 := time.Date(2026, 6, 20, 15, 30, 0, 0, time.UTC)
	if err := repo.MarkCheckedIn(ctx, tx, in[0].ID, true, false, at14); err != nil {
		t.Fatalf("check in: %v", err)
	}
	if err := repo.MarkCheckedIn(ctx, tx, in[1].ID, true, false, at14.Add(20*time.Minute)); err != nil {
		t.Fatalf("check in: %v", err)
	}
	if err := repo.MarkCheckedIn(ctx, tx, in[2].ID, true, false, at15); err != nil {
		t.Fatalf("check in: %v", err)
	}

	checkedIn, err := repo.CountCheckedIn(ctx, tx, coupleID)
	if err != nil {
		t.Fatalf("count checked in: %v", err)
	}
	if checkedIn != 3 {
		t.Fatalf("expected 3 checked in, got %d", checkedIn)
	}

	hours, err := repo.ArrivalHourCounts(ctx, tx, coupleID)
	if err != nil {
		t.Fatalf("arrival hours: %v", err)
	}
	byHour := map[int]int64{}
	for _, hc := range hours {
		byHour[hc.Hour] = hc.Count
	}
	if byHour[14] != 2 || byHour[15] != 1 {
		t.Fatalf("unexpected hour counts: %v", byHour)
	}
}
