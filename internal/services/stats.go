package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/evermore-apps/evermore-backend/internal/data/repos"
	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

// ContributionStats summarizes a couple's contributions. Counts span every
// status; the money aggregates (total, average, min, max) cover only
// confirmed and delivered contributions, so pledged-but-unconfirmed amounts
// never inflate the amount raised.
type ContributionStats struct {
	Count            int64                              `json:"count"`
	CountByStatus    map[types.ContributionStatus]int64 `json:"count_by_status"`
	TotalAmount      string                             `json:"total_amount"`
	AverageAmount    string                             `json:"average_amount"`
	MinAmount        string                             `json:"min_amount"`
	MaxAmount        string                             `json:"max_amount"`
	ConfirmationRate string                             `json:"confirmation_rate"`
	Buckets          []AmountBucket                     `json:"buckets"`
}

// AmountBucket is one band of the contribution size histogram. Percent values
// across the bucket list sum to exactly 100.00 whenever any contribution is
// bucketed, and are all 0.00 otherwise.
type AmountBucket struct {
	Label   string `json:"label"`
	Count   int64  `json:"count"`
	Percent string `json:"percent"`
}

type LeaderboardEntry struct {
	GuestID       uuid.UUID `json:"guest_id"`
	GuestName     string    `json:"guest_name"`
	Total         string    `json:"total"`
	Contributions int       `json:"contributions"`
}

type RegistryOverview struct {
	GiftCount     int64             `json:"gift_count"`
	GiftsComplete int64             `json:"gifts_complete"`
	PotCount      int64             `json:"pot_count"`
	TotalRaised   string            `json:"total_raised"`
	Contributions ContributionStats `json:"contributions"`
}

type StatsService interface {
	ContributionStats(ctx context.Context, coupleID uuid.UUID) (*ContributionStats, error)
	GiftStats(ctx context.Context, coupleID, giftID uuid.UUID) (*ContributionStats, error)
	PotStats(ctx context.Context, coupleID, potID uuid.UUID) (*ContributionStats, error)
	Leaderboard(ctx context.Context, coupleID uuid.UUID, limit int) ([]LeaderboardEntry, error)
	RegistryOverview(ctx context.Context, coupleID uuid.UUID) (*RegistryOverview, error)
}

type statsService struct {
	db               *gorm.DB
	log              *logger.Logger
	contributionRepo repos.ContributionRepo
	giftRepo         repos.GiftRepo
	potRepo          repos.PotRepo
	guestRepo        repos.GuestRepo
}

func NewStatsService(
	db *gorm.DB,
	log *logger.Logger,
	contributionRepo repos.ContributionRepo,
	giftRepo repos.GiftRepo,
	potRepo repos.PotRepo,
	guestRepo repos.GuestRepo,
) StatsService {
	serviceLog := log.With("service", "StatsService")
	return &statsService{
		db:               db,
		log:              serviceLog,
		contributionRepo: contributionRepo,
		giftRepo:         giftRepo,
		potRepo:          potRepo,
		guestRepo:        guestRepo,
	}
}

func (ss *statsService) ContributionStats(ctx context.Context, coupleID uuid.UUID) (*ContributionStats, error) {
	contributions, err := ss.contributionRepo.GetByCoupleIDs(ctx, nil, []uuid.UUID{coupleID})
	if err != nil {
		return nil, fmt.Errorf("failed to load contributions: %w", err)
	}
	stats, err := computeContributionStats(contributions)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GiftStats aggregates over one gift's contributions. An unknown gift, or
// one owned by another couple, yields a zeroed record rather than an error.
func (ss *statsService) GiftStats(ctx context.Context, coupleID, giftID uuid.UUID) (*ContributionStats, error) {
	gifts, err := ss.giftRepo.GetByIDs(ctx, nil, []uuid.UUID{giftID})
	if err != nil {
		return nil, fmt.Errorf("failed to load gift: %w", err)
	}
	if len(gifts) == 0 || gifts[0].CoupleID != coupleID {
		return zeroStats()
	}
	contributions, err := ss.contributionRepo.GetByGiftIDs(ctx, nil, []uuid.UUID{giftID})
	if err != nil {
		return nil, fmt.Errorf("failed to load contributions: %w", err)
	}
	stats, err := computeContributionStats(contributions)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// PotStats aggregates over one pot's contributions, with the same missing
// target behavior as GiftStats.
func (ss *statsService) PotStats(ctx context.Context, coupleID, potID uuid.UUID) (*ContributionStats, error) {
	pots, err := ss.potRepo.GetByIDs(ctx, nil, []uuid.UUID{potID})
	if err != nil {
		return nil, fmt.Errorf("failed to load pot: %w", err)
	}
	if len(pots) == 0 || pots[0].CoupleID != coupleID {
		return zeroStats()
	}
	contributions, err := ss.contributionRepo.GetByPotIDs(ctx, nil, []uuid.UUID{potID})
	if err != nil {
		return nil, fmt.Errorf("failed to load contributions: %w", err)
	}
	stats, err := computeContributionStats(contributions)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func zeroStats() (*ContributionStats, error) {
	stats, err := computeContributionStats(nil)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (ss *statsService) Leaderboard(ctx context.Context, coupleID uuid.UUID, limit int) ([]LeaderboardEntry, error) {
	contributions, err := ss.contributionRepo.GetByCoupleIDs(ctx, nil, []uuid.UUID{coupleID})
	if err != nil {
		return nil, fmt.Errorf("failed to load contributions: %w", err)
	}

	entries, err := rankContributors(contributions)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	guestIDs := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		guestIDs = append(guestIDs, e.GuestID)
	}
	guests, err := ss.guestRepo.GetByIDs(ctx, nil, guestIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load guests: %w", err)
	}
	names := make(map[uuid.UUID]string, len(guests))
	for _, g := range guests {
		names[g.ID] = g.Name
	}
	for i := range entries {
		entries[i].GuestName = names[entries[i].GuestID]
	}
	return entries, nil
}

func (ss *statsService) RegistryOverview(ctx context.Context, coupleID uuid.UUID) (*RegistryOverview, error) {
	gifts, err := ss.giftRepo.GetByCoupleIDs(ctx, nil, []uuid.UUID{coupleID})
	if err != nil {
		return nil, fmt.Errorf("failed to load gifts: %w", err)
	}
	pots, err := ss.potRepo.GetByCoupleIDs(ctx, nil, []uuid.UUID{coupleID})
	if err != nil {
		return nil, fmt.Errorf("failed to load pots: %w", err)
	}
	contributions, err := ss.contributionRepo.GetByCoupleIDs(ctx, nil, []uuid.UUID{coupleID})
	if err != nil {
		return nil, fmt.Errorf("failed to load contributions: %w", err)
	}

	stats, err := computeContributionStats(contributions)
	if err != nil {
		return nil, err
	}

	var complete int64
	for _, g := range gifts {
		if g.Complete() {
			complete++
		}
	}

	return &RegistryOverview{
		GiftCount:     int64(len(gifts)),
		GiftsComplete: complete,
		PotCount:      int64(len(pots)),
		TotalRaised:   stats.TotalAmount,
		Contributions: stats,
	}, nil
}

// countedForTotals reports whether a contribution's amount feeds the money
// aggregates.
func countedForTotals(status types.ContributionStatus) bool {
	return status == types.ContributionConfirmed || status == types.ContributionDelivered
}

func computeContributionStats(contributions []*types.Contribution) (ContributionStats, error) {
	stats := ContributionStats{
		Count:            int64(len(contributions)),
		CountByStatus:    map[types.ContributionStatus]int64{},
		TotalAmount:      "0.00",
		AverageAmount:    "0.00",
		MinAmount:        "0.00",
		MaxAmount:        "0.00",
		ConfirmationRate: "0.00",
	}

	total := decimal.Zero
	var countedAmounts []decimal.Decimal
	var minAmt, maxAmt decimal.Decimal
	var counted int64
	var nonCancelled int64

	for _, c := range contributions {
		stats.CountByStatus[c.Status]++
		if c.Status != types.ContributionCancelled {
			nonCancelled++
		}
		if !countedForTotals(c.Status) {
			continue
		}
		amt, err := c.ParseAmount()
		if err != nil {
			return stats, fmt.Errorf("bad amount on contribution %s: %w", c.ID, err)
		}
		total = total.Add(amt)
		countedAmounts = append(countedAmounts, amt)
		if counted == 0 || amt.LessThan(minAmt) {
			minAmt = amt
		}
		if counted == 0 || amt.GreaterThan(maxAmt) {
			maxAmt = amt
		}
		counted++
	}

	stats.TotalAmount = total.StringFixed(2)
	if counted > 0 {
		stats.AverageAmount = total.DivRound(decimal.NewFromInt(counted), 2).StringFixed(2)
		stats.MinAmount = minAmt.StringFixed(2)
		stats.MaxAmount = maxAmt.StringFixed(2)
	}
	if nonCancelled > 0 {
		rate := decimal.NewFromInt(counted).
			Mul(decimal.NewFromInt(100)).
			DivRound(decimal.NewFromInt(nonCancelled), 2)
		stats.ConfirmationRate = rate.StringFixed(2)
	}
	stats.Buckets = bucketize(countedAmounts)
	return stats, nil
}

var bucketBounds = []struct {
	label string
	upper decimal.Decimal
}{
	{"0-24.99", decimal.NewFromInt(25)},
	{"25-49.99", decimal.NewFromInt(50)},
	{"50-99.99", decimal.NewFromInt(100)},
	{"100-199.99", decimal.NewFromInt(200)},
	{"200+", decimal.Decimal{}},
}

// bucketize distributes amounts into fixed size bands. Percentages are
// computed in integer hundredths with largest-remainder rounding, so the
// column always sums to exactly 100.00 when any amount is present.
func bucketize(amounts []decimal.Decimal) []AmountBucket {
	counts := make([]int64, len(bucketBounds))
	for _, amt := range amounts {
		placed := false
		for i, b := range bucketBounds[:len(bucketBounds)-1] {
			if amt.LessThan(b.upper) {
				counts[i]++
				placed = true
				break
			}
		}
		if !placed {
			counts[len(bucketBounds)-1]++
		}
	}

	buckets := make([]AmountBucket, len(bucketBounds))
	for i, b := range bucketBounds {
		buckets[i] = AmountBucket{Label: b.label, Count: counts[i], Percent: "0.00"}
	}

	totalCount := int64(len(amounts))
	if totalCount == 0 {
		return buckets
	}

	// hundredths of a percent per bucket, floored, then the leftover
	// hundredths go to the largest remainders
	hundredths := make([]int64, len(counts))
	remainders := make([]int64, len(counts))
	var assigned int64
	for i, c := range counts {
		scaled := c * 10000
		hundredths[i] = scaled / totalCount
		remainders[i] = scaled % totalCount
		assigned += hundredths[i]
	}
	leftover := int64(10000) - assigned

	order := make([]int, len(counts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})
	for i := int64(0); i < leftover; i++ {
		hundredths[order[i%int64(len(order))]]++
	}

	for i := range buckets {
		buckets[i].Percent = fmt.Sprintf("%d.%02d", hundredths[i]/100, hundredths[i]%100)
	}
	return buckets
}

// rankContributors orders guests by confirmed and delivered total, largest
// first. Ties break toward the guest whose first counted contribution came
// earliest, then by guest id for determinism.
func rankContributors(contributions []*types.Contribution) ([]LeaderboardEntry, error) {
	type acc struct {
		total    decimal.Decimal
		count    int
		earliest time.Time
	}
	byGuest := map[uuid.UUID]*acc{}
	for _, c := range contributions {
		if !countedForTotals(c.Status) {
			continue
		}
		amt, err := c.ParseAmount()
		if err != nil {
			return nil, fmt.Errorf("bad amount on contribution %s: %w", c.ID, err)
		}
		a, ok := byGuest[c.GuestID]
		if !ok {
			a = &acc{total: decimal.Zero, earliest: c.CreatedAt}
			byGuest[c.GuestID] = a
		}
		a.total = a.total.Add(amt)
		a.count++
		if c.CreatedAt.Before(a.earliest) {
			a.earliest = c.CreatedAt
		}
	}

	guestIDs := make([]uuid.UUID, 0, len(byGuest))
	for id := range byGuest {
		guestIDs = append(guestIDs, id)
	}
	sort.Slice(guestIDs, func(i, j int) bool {
		a, b := byGuest[guestIDs[i]], byGuest[guestIDs[j]]
		if !a.total.Equal(b.total) {
			return a.total.GreaterThan(b.total)
		}
		if !a.earliest.Equal(b.earliest) {
			return a.earliest.Before(b.earliest)
		}
		return guestIDs[i].String() < guestIDs[j].String()
	})

	entries := make([]LeaderboardEntry, 0, len(guestIDs))
	for _, id := range guestIDs {
		a := byGuest[id]
		entries = append(entries, LeaderboardEntry{
			GuestID:       id,
			Total:         a.total.StringFixed(2),
			Contributions: a.count,
		})
	}
	return entries, nil
}
