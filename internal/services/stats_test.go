package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
)

func strPtr(s string) *string { return &s }

func contribution(guestID uuid.UUID, amount string, status types.ContributionStatus, createdAt time.Time) *types.Contribution {
	potID := uuid.New()
	return &types.Contribution{
		ID:        uuid.New(),
		CoupleID:  uuid.New(),
		GuestID:   guestID,
		PotID:     &potID,
		Amount:    strPtr(amount),
		Status:    status,
		CreatedAt: createdAt,
	}
}

func TestComputeContributionStats_CountsAllButTotalsOnlyConfirmed(t *testing.T) {
	now := time.Now()
	guest := uuid.New()
	contributions := []*types.Contribution{
		contribution(guest, "20.00", types.ContributionConfirmed, now),
		contribution(guest, "30.50", types.ContributionConfirmed, now),
		contribution(guest, "49.50", types.ContributionDelivered, now),
		contribution(guest, "100.00", types.ContributionCancelled, now),
		contribution(guest, "75.00", types.ContributionPending, now),
	}

	stats, err := computeContributionStats(contributions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Count != 5 {
		t.Fatalf("expected count=5 got %d", stats.Count)
	}
	if stats.CountByStatus[types.ContributionCancelled] != 1 {
		t.Fatalf("expected one cancelled, got %d", stats.CountByStatus[types.ContributionCancelled])
	}
	if stats.TotalAmount != "100.00" {
		t.Fatalf("expected total=100.00 got %q", stats.TotalAmount)
	}
	if stats.AverageAmount != "33.33" {
		t.Fatalf("expected average=33.33 got %q", stats.AverageAmount)
	}
	if stats.MinAmount != "20.00" || stats.MaxAmount != "49.50" {
		t.Fatalf("expected min=20.00 max=49.50 got %q / %q", stats.MinAmount, stats.MaxAmount)
	}
	// 3 counted out of 4 non-cancelled
	if stats.ConfirmationRate != "75.00" {
		t.Fatalf("expected confirmation_rate=75.00 got %q", stats.ConfirmationRate)
	}
}

func TestComputeContributionStats_EmptyInput(t *testing.T) {
	stats, err := computeContributionStats(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Count != 0 {
		t.Fatalf("expected count=0 got %d", stats.Count)
	}
	if stats.TotalAmount != "0.00" || stats.AverageAmount != "0.00" {
		t.Fatalf("expected zero money aggregates, got total=%q avg=%q", stats.TotalAmount, stats.AverageAmount)
	}
	if stats.ConfirmationRate != "0.00" {
		t.Fatalf("expected confirmation_rate=0.00 got %q", stats.ConfirmationRate)
	}
	if len(stats.Buckets) != len(bucketBounds) {
		t.Fatalf("expected %d buckets got %d", len(bucketBounds), len(stats.Buckets))
	}
	for _, b := range stats.Buckets {
		if b.Percent != "0.00" {
			t.Fatalf("expected empty bucket percent=0.00 got %q for %s", b.Percent, b.Label)
		}
	}
}

func TestBucketize_PlacesAmountsIntoBands(t *testing.T) {
	amounts := []decimal.Decimal{
		decimal.RequireFromString("10.00"),
		decimal.RequireFromString("24.99"),
		decimal.RequireFromString("25.00"),
		decimal.RequireFromString("99.99"),
		decimal.RequireFromString("100.00"),
		decimal.RequireFromString("200.00"),
		decimal.RequireFromString("5000.00"),
	}
	buckets := bucketize(amounts)
	wantCounts := []int64{2, 1, 1, 1, 2}
	for i, want := range wantCounts {
		if buckets[i].Count != want {
			t.Fatalf("bucket %s: expected count=%d got %d", buckets[i].Label, want, buckets[i].Count)
		}
	}
}

func TestBucketize_PercentagesSumToExactlyOneHundred(t *testing.T) {
	// 7 amounts do not divide evenly into hundredths; the largest remainders
	// absorb the leftover
	amounts := make([]decimal.Decimal, 0, 7)
	for i := 0; i < 3; i++ {
		amounts = append(amounts, decimal.RequireFromString("10.00"))
	}
	for i := 0; i < 2; i++ {
		amounts = append(amounts, decimal.RequireFromString("60.00"))
	}
	amounts = append(amounts,
		decimal.RequireFromString("150.00"),
		decimal.RequireFromString("300.00"),
	)

	buckets := bucketize(amounts)
	sum := decimal.Zero
	for _, b := range buckets {
		sum = sum.Add(decimal.RequireFromString(b.Percent))
	}
	if !sum.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected percents to sum to 100.00, got %s", sum.String())
	}
}

func TestRankContributors_OrdersByTotalThenEarliest(t *testing.T) {
	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	big := uuid.New()
	early := uuid.New()
	late := uuid.New()

	contributions := []*types.Contribution{
		contribution(big, "80.00", types.ContributionConfirmed, base.Add(3*time.Hour)),
		contribution(early, "25.00", types.ContributionConfirmed, base),
		contribution(early, "25.00", types.ContributionDelivered, base.Add(time.Hour)),
		contribution(late, "50.00", types.ContributionConfirmed, base.Add(2*time.Hour)),
		contribution(late, "999.00", types.ContributionCancelled, base),
	}

	entries, err := rankContributors(contributions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries got %d", len(entries))
	}
	if entries[0].GuestID != big || entries[0].Total != "80.00" {
		t.Fatalf("expected big spender first, got %v total=%q", entries[0].GuestID, entries[0].Total)
	}
	// early and late both total 50.00; early's first counted contribution wins
	if entries[1].GuestID != early {
		t.Fatalf("expected earliest contributor to win the tie")
	}
	if entries[1].Contributions != 2 {
		t.Fatalf("expected 2 contributions for tied guest, got %d", entries[1].Contributions)
	}
	if entries[2].GuestID != late || entries[2].Total != "50.00" {
		t.Fatalf("expected late contributor last with total=50.00, got %q", entries[2].Total)
	}
}

func TestRankContributors_SkipsPendingAndCancelled(t *testing.T) {
	guest := uuid.New()
	contributions := []*types.Contribution{
		contribution(guest, "10.00", types.ContributionPending, time.Now()),
		contribution(guest, "10.00", types.ContributionCancelled, time.Now()),
	}
	entries, err := rankContributors(contributions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}
