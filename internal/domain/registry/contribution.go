package registry

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ContributionStatus string

const (
	ContributionPending   ContributionStatus = "pending"
	ContributionConfirmed ContributionStatus = "confirmed"
	ContributionCancelled ContributionStatus = "cancelled"
	ContributionDelivered ContributionStatus = "delivered"
)

// MaxContributionAmount caps a single contribution.
var MaxContributionAmount = decimal.NewFromInt(100000)

// ValidationError carries a field-level message for cross-field validation
// failures raised before persistence.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Contribution is a pledge from one Guest toward exactly one of Gift or Pot.
// Amount is a decimal-as-string column; parse it with ParseAmount, never with
// float64.
type Contribution struct {
	ID          uuid.UUID          `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CoupleID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"couple_id"`
	GuestID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"guest_id"`
	GiftID      *uuid.UUID         `gorm:"type:uuid;column:gift_id;index" json:"gift_id,omitempty"`
	PotID       *uuid.UUID         `gorm:"type:uuid;column:pot_id;index" json:"pot_id,omitempty"`
	Amount      *string            `gorm:"type:decimal(12,2);column:amount" json:"amount,omitempty"`
	Status      ContributionStatus `gorm:"type:varchar(16);not null;default:'pending';index;column:status" json:"status"`
	Message     string             `gorm:"column:message" json:"message,omitempty"`
	ConfirmedAt *time.Time         `gorm:"column:confirmed_at" json:"confirmed_at,omitempty"`
	DeliveredAt *time.Time         `gorm:"column:delivered_at" json:"delivered_at,omitempty"`
	CreatedAt   time.Time          `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"deleted_at,omitempty"`
}

func (Contribution) TableName() string { return "contribution" }

// Validate enforces the cross-field rules: a contribution targets exactly one
// of gift or pot, and its amount, when present, is positive and capped.
func (c *Contribution) Validate() error {
	if c.GiftID == nil && c.PotID == nil {
		return &ValidationError{Field: "target", Message: "a contribution must target a gift or a pot"}
	}
	if c.GiftID != nil && c.PotID != nil {
		return &ValidationError{Field: "target", Message: "a contribution cannot target both a gift and a pot"}
	}
	if c.GuestID == uuid.Nil {
		return &ValidationError{Field: "guest_id", Message: "a contribution requires a contributing guest"}
	}
	if c.Amount != nil {
		amt, err := decimal.NewFromString(*c.Amount)
		if err != nil {
			return &ValidationError{Field: "amount", Message: "amount is not a valid decimal"}
		}
		if !amt.IsPositive() {
			return &ValidationError{Field: "amount", Message: "amount must be positive"}
		}
		if amt.GreaterThan(MaxContributionAmount) {
			return &ValidationError{Field: "amount", Message: "amount exceeds the maximum allowed"}
		}
	}
	return nil
}

// Confirm moves the contribution to confirmed and stamps ConfirmedAt exactly
// once; re-confirming never overwrites the original timestamp.
func (c *Contribution) Confirm(now time.Time) {
	c.Status = ContributionConfirmed
	if c.ConfirmedAt == nil {
		t := now
		c.ConfirmedAt = &t
	}
}

// Deliver moves the contribution to delivered, stamping both dates once.
func (c *Contribution) Deliver(now time.Time) {
	c.Status = ContributionDelivered
	if c.ConfirmedAt == nil {
		t := now
		c.ConfirmedAt = &t
	}
	if c.DeliveredAt == nil {
		t := now
		c.DeliveredAt = &t
	}
}

func (c *Contribution) Cancel() {
	c.Status = ContributionCancelled
}

// Counted reports whether the contribution counts toward an amount raised.
func (c *Contribution) Counted() bool {
	return c.Status != ContributionCancelled
}

// ParseAmount returns the fixed-point amount, zero when unset.
func (c *Contribution) ParseAmount() (decimal.Decimal, error) {
	if c.Amount == nil {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(*c.Amount)
}
