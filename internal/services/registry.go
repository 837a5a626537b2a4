package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/evermore-apps/evermore-backend/internal/data/repos"
	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type RegistryService interface {
	CreateGift(ctx context.Context, gift *types.Gift) error
	UpdateGift(ctx context.Context, coupleID, giftID uuid.UUID, fields map[string]any) error
	DeleteGift(ctx context.Context, coupleID, giftID uuid.UUID) error
	ListGifts(ctx context.Context, coupleID uuid.UUID) ([]*types.Gift, error)

	CreatePot(ctx context.Context, pot *types.Pot) error
	UpdatePot(ctx context.Context, coupleID, potID uuid.UUID, fields map[string]any) error
	DeletePot(ctx context.Context, coupleID, potID uuid.UUID) error
	ListPots(ctx context.Context, coupleID uuid.UUID) ([]*types.Pot, error)

	Contribute(ctx context.Context, contribution *types.Contribution) error
	ConfirmContribution(ctx context.Context, coupleID, contributionID uuid.UUID) error
	DeliverContribution(ctx context.Context, coupleID, contributionID uuid.UUID) error
	CancelContribution(ctx context.Context, coupleID, contributionID uuid.UUID) error
	ListContributions(ctx context.Context, coupleID uuid.UUID) ([]*types.Contribution, error)
	ListGuestContributions(ctx context.Context, coupleID, guestID uuid.UUID) ([]*types.Contribution, error)
	ContributionStatusCounts(ctx context.Context, coupleID uuid.UUID) (map[types.ContributionStatus]int64, error)
	RecomputePotAmount(ctx context.Context, potID uuid.UUID) (string, error)
}

type registryService struct {
	db               *gorm.DB
	log              *logger.Logger
	giftRepo         repos.GiftRepo
	potRepo          repos.PotRepo
	contributionRepo repos.ContributionRepo
	guestRepo        repos.GuestRepo
	notifier         NotificationService
	activity         ActivityService
}

func NewRegistryService(
	db *gorm.DB,
	log *logger.Logger,
	giftRepo repos.GiftRepo,
	potRepo repos.PotRepo,
	contributionRepo repos.ContributionRepo,
	guestRepo repos.GuestRepo,
	notifier NotificationService,
	activity ActivityService,
) RegistryService {
	serviceLog := log.With("service", "RegistryService")
	return &registryService{
		db:               db,
		log:              serviceLog,
		giftRepo:         giftRepo,
		potRepo:          potRepo,
		contributionRepo: contributionRepo,
		guestRepo:        guestRepo,
		notifier:         notifier,
		activity:         activity,
	}
}

func (rs *registryService) CreateGift(ctx context.Context, gift *types.Gift) error {
	if gift.Name == "" {
		return fmt.Errorf("gift name is required")
	}
	if gift.DesiredQty <= 0 {
		gift.DesiredQty = 1
	}
	return rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		gift.ID = uuid.New()
		if _, err := rs.giftRepo.Create(ctx, tx, []*types.Gift{gift}); err != nil {
			return fmt.Errorf("failed to create gift: %w", err)
		}
		return nil
	})
}

func (rs *registryService) UpdateGift(ctx context.Context, coupleID, giftID uuid.UUID, fields map[string]any) error {
	if _, err := rs.loadGift(ctx, coupleID, giftID); err != nil {
		return err
	}
	return rs.giftRepo.Update(ctx, nil, giftID, fields)
}

func (rs *registryService) DeleteGift(ctx context.Context, coupleID, giftID uuid.UUID) error {
	if _, err := rs.loadGift(ctx, coupleID, giftID); err != nil {
		return err
	}
	return rs.giftRepo.Delete(ctx, nil, giftID)
}

func (rs *registryService) ListGifts(ctx context.Context, coupleID uuid.UUID) ([]*types.Gift, error) {
	return rs.giftRepo.GetByCoupleIDs(ctx, nil, []uuid.UUID{coupleID})
}

func (rs *registryService) CreatePot(ctx context.Context, pot *types.Pot) error {
	if pot.Title == "" {
		return fmt.Errorf("pot title is required")
	}
	if pot.TargetAmount != nil {
		target, err := decimal.NewFromString(*pot.TargetAmount)
		if err != nil || !target.IsPositive() {
			return fmt.Errorf("pot target must be a positive amount")
		}
	}
	pot.CurrentAmount = "0.00"
	return rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pot.ID = uuid.New()
		if _, err := rs.potRepo.Create(ctx, tx, []*types.Pot{pot}); err != nil {
			return fmt.Errorf("failed to create pot: %w", err)
		}
		return nil
	})
}

func (rs *registryService) UpdatePot(ctx context.Context, coupleID, potID uuid.UUID, fields map[string]any) error {
	if _, err := rs.loadPot(ctx, coupleID, potID); err != nil {
		return err
	}
	return rs.potRepo.Update(ctx, nil, potID, fields)
}

func (rs *registryService) DeletePot(ctx context.Context, coupleID, potID uuid.UUID) error {
	if _, err := rs.loadPot(ctx, coupleID, potID); err != nil {
		return err
	}
	return rs.potRepo.Delete(ctx, nil, potID)
}

func (rs *registryService) ListPots(ctx context.Context, coupleID uuid.UUID) ([]*types.Pot, error) {
	return rs.potRepo.GetByCoupleIDs(ctx, nil, []uuid.UUID{coupleID})
}

func (rs *registryService) Contribute(ctx context.Context, contribution *types.Contribution) error {
	if err := contribution.Validate(); err != nil {
		return err
	}

	guests, err := rs.guestRepo.GetByIDs(ctx, nil, []uuid.UUID{contribution.GuestID})
	if err != nil || len(guests) == 0 {
		return fmt.Errorf("contributing guest not found")
	}
	guest := guests[0]
	if guest.CoupleID != contribution.CoupleID {
		return fmt.Errorf("guest does not belong to this wedding")
	}

	if contribution.GiftID != nil {
		gift, err := rs.loadGift(ctx, contribution.CoupleID, *contribution.GiftID)
		if err != nil {
			return err
		}
		if gift.Complete() {
			return fmt.Errorf("gift is already fully funded")
		}
	}
	if contribution.PotID != nil {
		if contribution.Amount == nil {
			return fmt.Errorf("pot contributions require an amount")
		}
		if _, err := rs.loadPot(ctx, contribution.CoupleID, *contribution.PotID); err != nil {
			return err
		}
	}

	err = rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		contribution.ID = uuid.New()
		contribution.Status = types.ContributionPending
		if _, err := rs.contributionRepo.Create(ctx, tx, []*types.Contribution{contribution}); err != nil {
			return fmt.Errorf("failed to create contribution: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	rs.notifier.Notify(ctx, contribution.CoupleID, types.NotificationContribution,
		"New contribution", fmt.Sprintf("%s pledged a contribution", guest.Name), nil)
	rs.activity.Record(ctx, contribution.CoupleID, "contribution.created", "contribution", &contribution.ID, nil)
	return nil
}

func (rs *registryService) ConfirmContribution(ctx context.Context, coupleID, contributionID uuid.UUID) error {
	return rs.transition(ctx, coupleID, contributionID, func(tx *gorm.DB, c *types.Contribution, now time.Time) error {
		if c.Status == types.ContributionCancelled {
			return fmt.Errorf("cancelled contribution cannot be confirmed")
		}
		c.Confirm(now)
		return nil
	}, "contribution.confirmed")
}

func (rs *registryService) DeliverContribution(ctx context.Context, coupleID, contributionID uuid.UUID) error {
	return rs.transition(ctx, coupleID, contributionID, func(tx *gorm.DB, c *types.Contribution, now time.Time) error {
		if c.Status == types.ContributionCancelled {
			return fmt.Errorf("cancelled contribution cannot be delivered")
		}
		wasDelivered := c.Status == types.ContributionDelivered
		c.Deliver(now)
		if !wasDelivered && c.GiftID != nil {
			// inside the open transaction so a failed save rolls the
			// received counter back with the status change
			return rs.giftRepo.IncrementReceived(ctx, tx, *c.GiftID, 1)
		}
		return nil
	}, "contribution.delivered")
}

func (rs *registryService) CancelContribution(ctx context.Context, coupleID, contributionID uuid.UUID) error {
	return rs.transition(ctx, coupleID, contributionID, func(tx *gorm.DB, c *types.Contribution, now time.Time) error {
		if c.Status == types.ContributionDelivered {
			return fmt.Errorf("delivered contribution cannot be cancelled")
		}
		c.Cancel()
		return nil
	}, "contribution.cancelled")
}

func (rs *registryService) transition(ctx context.Context, coupleID, contributionID uuid.UUID, apply func(*gorm.DB, *types.Contribution, time.Time) error, action string) error {
	var potID *uuid.UUID
	err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		contributions, err := rs.contributionRepo.GetByIDs(ctx, tx, []uuid.UUID{contributionID})
		if err != nil || len(contributions) == 0 {
			return fmt.Errorf("contribution not found")
		}
		c := contributions[0]
		if c.CoupleID != coupleID {
			return fmt.Errorf("contribution not found")
		}
		if err := apply(tx, c, time.Now()); err != nil {
			return err
		}
		if err := rs.contributionRepo.Save(ctx, tx, c); err != nil {
			return fmt.Errorf("failed to save contribution: %w", err)
		}
		potID = c.PotID
		return nil
	})
	if err != nil {
		return err
	}

	if potID != nil {
		if _, err := rs.RecomputePotAmount(ctx, *potID); err != nil {
			rs.log.Warn("failed to recompute pot amount", "pot_id", *potID, "error", err)
		}
	}
	rs.activity.Record(ctx, coupleID, action, "contribution", &contributionID, nil)
	return nil
}

func (rs *registryService) ListContributions(ctx context.Context, coupleID uuid.UUID) ([]*types.Contribution, error) {
	return rs.contributionRepo.GetByCoupleIDs(ctx, nil, []uuid.UUID{coupleID})
}

// ListGuestContributions is the per-guest contribution history; the guest must
// belong to the requesting couple.
func (rs *registryService) ListGuestContributions(ctx context.Context, coupleID, guestID uuid.UUID) ([]*types.Contribution, error) {
	guests, err := rs.guestRepo.GetByIDs(ctx, nil, []uuid.UUID{guestID})
	if err != nil || len(guests) == 0 {
		return nil, fmt.Errorf("guest not found")
	}
	if guests[0].CoupleID != coupleID {
		return nil, fmt.Errorf("guest not found")
	}
	return rs.contributionRepo.GetByGuestIDs(ctx, nil, []uuid.UUID{guestID})
}

func (rs *registryService) ContributionStatusCounts(ctx context.Context, coupleID uuid.UUID) (map[types.ContributionStatus]int64, error) {
	return rs.contributionRepo.StatusCounts(ctx, nil, coupleID)
}

// RecomputePotAmount re-derives the pot's stored amount from its non-cancelled
// contributions and writes it back. The returned value is the fresh sum.
func (rs *registryService) RecomputePotAmount(ctx context.Context, potID uuid.UUID) (string, error) {
	contributions, err := rs.contributionRepo.GetByPotIDs(ctx, nil, []uuid.UUID{potID})
	if err != nil {
		return "", fmt.Errorf("failed to load pot contributions: %w", err)
	}

	total := decimal.Zero
	for _, c := range contributions {
		if !c.Counted() {
			continue
		}
		amt, err := c.ParseAmount()
		if err != nil {
			return "", fmt.Errorf("bad amount on contribution %s: %w", c.ID, err)
		}
		total = total.Add(amt)
	}

	fixed := total.StringFixed(2)
	if err := rs.potRepo.UpdateCurrentAmount(ctx, nil, potID, fixed); err != nil {
		return "", fmt.Errorf("failed to update pot amount: %w", err)
	}
	return fixed, nil
}

func (rs *registryService) loadGift(ctx context.Context, coupleID, giftID uuid.UUID) (*types.Gift, error) {
	gifts, err := rs.giftRepo.GetByIDs(ctx, nil, []uuid.UUID{giftID})
	if err != nil || len(gifts) == 0 {
		return nil, fmt.Errorf("gift not found")
	}
	if gifts[0].CoupleID != coupleID {
		return nil, fmt.Errorf("gift not found")
	}
	return gifts[0], nil
}

func (rs *registryService) loadPot(ctx context.Context, coupleID, potID uuid.UUID) (*types.Pot, error) {
	pots, err := rs.potRepo.GetByIDs(ctx, nil, []uuid.UUID{potID})
	if err != nil || len(pots) == 0 {
		return nil, fmt.Errorf("pot not found")
	}
	if pots[0].CoupleID != coupleID {
		return nil, fmt.Errorf("pot not found")
	}
	return pots[0], nil
}
