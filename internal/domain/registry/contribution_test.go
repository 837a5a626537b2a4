package registry

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func amount(s string) *string { return &s }

func validContribution() *Contribution {
	giftID := uuid.New()
	return &Contribution{
		CoupleID: uuid.New(),
		GuestID:  uuid.New(),
		GiftID:   &giftID,
		Amount:   amount("50.00"),
		Status:   ContributionPending,
	}
}

func TestValidate_RequiresExactlyOneTarget(t *testing.T) {
	c := validContribution()
	c.GiftID = nil
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for missing target")
	}

	c = validContribution()
	potID := uuid.New()
	c.PotID = &potID
	err := c.Validate()
	if err == nil {
		t.Fatalf("expected error for dual target")
	}
	vErr, ok := err.(*ValidationError)
	if !ok || vErr.Field != "target" {
		t.Fatalf("expected target validation error, got %v", err)
	}
}

func TestValidate_RequiresGuest(t *testing.T) {
	c := validContribution()
	c.GuestID = uuid.Nil
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for missing guest")
	}
}

func TestValidate_AmountBounds(t *testing.T) {
	c := validContribution()
	c.Amount = amount("not-a-number")
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for malformed amount")
	}

	c.Amount = amount("-5.00")
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for negative amount")
	}

	c.Amount = amount("0.00")
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for zero amount")
	}

	c.Amount = amount("100000.01")
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for amount above the cap")
	}

	c.Amount = amount("100000.00")
	if err := c.Validate(); err != nil {
		t.Fatalf("expected amount at the cap to pass, got %v", err)
	}

	c.Amount = nil
	if err := c.Validate(); err != nil {
		t.Fatalf("expected nil amount to pass, got %v", err)
	}
}

func TestConfirm_StampsDateOnce(t *testing.T) {
	c := validContribution()
	first := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	c.Confirm(first)
	if c.Status != ContributionConfirmed {
		t.Fatalf("expected status=confirmed got %q", c.Status)
	}
	if c.ConfirmedAt == nil || !c.ConfirmedAt.Equal(first) {
		t.Fatalf("expected confirmed_at=%v got %v", first, c.ConfirmedAt)
	}

	c.Confirm(first.Add(time.Hour))
	if !c.ConfirmedAt.Equal(first) {
		t.Fatalf("re-confirm must not overwrite confirmed_at, got %v", c.ConfirmedAt)
	}
}

func TestDeliver_StampsBothDatesOnce(t *testing.T) {
	c := validContribution()
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	c.Deliver(now)
	if c.Status != ContributionDelivered {
		t.Fatalf("expected status=delivered got %q", c.Status)
	}
	if c.ConfirmedAt == nil || c.DeliveredAt == nil {
		t.Fatalf("expected both dates stamped")
	}

	later := now.Add(2 * time.Hour)
	c.Deliver(later)
	if !c.ConfirmedAt.Equal(now) || !c.DeliveredAt.Equal(now) {
		t.Fatalf("re-deliver must not overwrite dates")
	}
}

func TestDeliver_KeepsEarlierConfirmation(t *testing.T) {
	c := validContribution()
	confirmedAt := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	c.Confirm(confirmedAt)
	c.Deliver(confirmedAt.Add(3 * time.Hour))
	if !c.ConfirmedAt.Equal(confirmedAt) {
		t.Fatalf("delivery must keep the original confirmation date")
	}
}

func TestCounted_ExcludesOnlyCancelled(t *testing.T) {
	c := validContribution()
	for _, status := range []ContributionStatus{ContributionPending, ContributionConfirmed, ContributionDelivered} {
		c.Status = status
		if !c.Counted() {
			t.Fatalf("expected %q to count", status)
		}
	}
	c.Cancel()
	if c.Counted() {
		t.Fatalf("expected cancelled contribution not to count")
	}
}

func TestParseAmount_NilIsZero(t *testing.T) {
	c := validContribution()
	c.Amount = nil
	amt, err := c.ParseAmount()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !amt.IsZero() {
		t.Fatalf("expected zero, got %s", amt.String())
	}
}
