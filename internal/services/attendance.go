package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	goredis "github.com/evermore-apps/evermore-backend/internal/clients/redis"
	"github.com/evermore-apps/evermore-backend/internal/data/repos"
	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

// AttendanceSummary is the wedding-day headcount picture. PeakArrivalHour is
// nil until at least one guest has checked in.
type AttendanceSummary struct {
	TotalGuests       int64                      `json:"total_guests"`
	ByRSVPStatus      map[types.RSVPStatus]int64 `json:"by_rsvp_status"`
	ExpectedHeadcount int64                      `json:"expected_headcount"`
	CheckedIn         int64                      `json:"checked_in"`
	PresentCeremony   int64                      `json:"present_ceremony"`
	PresentReception  int64                      `json:"present_reception"`
	PeakArrivalHour   *int                       `json:"peak_arrival_hour,omitempty"`
	ComputedAt        time.Time                  `json:"computed_at"`
}

type AttendanceService interface {
	// Summary computes live attendance from the database.
	Summary(ctx context.Context, coupleID uuid.UUID) (*AttendanceSummary, error)
	// CachedSummary serves the memoized snapshot when present and falls back
	// to a live compute (which it then caches). The cache is a read
	// optimization only.
	CachedSummary(ctx context.Context, coupleID uuid.UUID) (*AttendanceSummary, error)
	RefreshSnapshot(ctx context.Context, coupleID uuid.UUID) error
}

type attendanceService struct {
	db          *gorm.DB
	log         *logger.Logger
	guestRepo   repos.GuestRepo
	cache       goredis.Cache
	snapshotTTL time.Duration
}

func NewAttendanceService(
	db *gorm.DB,
	log *logger.Logger,
	guestRepo repos.GuestRepo,
	cache goredis.Cache,
	snapshotTTL time.Duration,
) AttendanceService {
	serviceLog := log.With("service", "AttendanceService")
	return &attendanceService{
		db:          db,
		log:         serviceLog,
		guestRepo:   guestRepo,
		cache:       cache,
		snapshotTTL: snapshotTTL,
	}
}

func snapshotKey(coupleID uuid.UUID, day time.Time) string {
	return fmt.Sprintf("attendance:snapshot:%s:%s", coupleID, day.Format("2006-01-02"))
}

func (ats *attendanceService) Summary(ctx context.Context, coupleID uuid.UUID) (*AttendanceSummary, error) {
	byStatus, err := ats.guestRepo.CountByRSVPStatus(ctx, nil, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to count rsvp statuses: %w", err)
	}
	checkedIn, err := ats.guestRepo.CountCheckedIn(ctx, nil, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to count check-ins: %w", err)
	}
	hours, err := ats.guestRepo.ArrivalHourCounts(ctx, nil, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load arrival histogram: %w", err)
	}
	guests, err := ats.guestRepo.GetByCoupleIDs(ctx, nil, []uuid.UUID{coupleID})
	if err != nil {
		return nil, fmt.Errorf("failed to load guests: %w", err)
	}

	summary := &AttendanceSummary{
		TotalGuests:     int64(len(guests)),
		ByRSVPStatus:    byStatus,
		CheckedIn:       checkedIn,
		PeakArrivalHour: peakArrivalHour(hours),
		ComputedAt:      time.Now(),
	}
	for _, g := range guests {
		if g.RSVPStatus == types.RSVPConfirmed {
			summary.ExpectedHeadcount += 1 + int64(g.PlusOnes)
		}
		if g.PresentCeremony {
			summary.PresentCeremony++
		}
		if g.PresentReception {
			summary.PresentReception++
		}
	}
	return summary, nil
}

func (ats *attendanceService) CachedSummary(ctx context.Context, coupleID uuid.UUID) (*AttendanceSummary, error) {
	key := snapshotKey(coupleID, time.Now())
	if ats.cache != nil {
		var cached AttendanceSummary
		hit, err := ats.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			ats.log.Warn("attendance cache read failed", "couple_id", coupleID, "error", err)
		}
		if hit {
			return &cached, nil
		}
	}

	summary, err := ats.Summary(ctx, coupleID)
	if err != nil {
		return nil, err
	}
	ats.store(ctx, key, summary)
	return summary, nil
}

func (ats *attendanceService) RefreshSnapshot(ctx context.Context, coupleID uuid.UUID) error {
	summary, err := ats.Summary(ctx, coupleID)
	if err != nil {
		return err
	}
	ats.store(ctx, snapshotKey(coupleID, time.Now()), summary)
	return nil
}

func (ats *attendanceService) store(ctx context.Context, key string, summary *AttendanceSummary) {
	if ats.cache == nil {
		return
	}
	if err := ats.cache.SetJSON(ctx, key, summary, ats.snapshotTTL); err != nil {
		ats.log.Warn("attendance cache write failed", "key", key, "error", err)
	}
}

// peakArrivalHour picks the busiest check-in hour; on equal counts the
// earlier hour wins. Returns nil when nobody has checked in.
func peakArrivalHour(hours []repos.HourCount) *int {
	var best *int
	var bestCount int64
	for _, hc := range hours {
		if hc.Count <= 0 {
			continue
		}
		if best == nil || hc.Count > bestCount || (hc.Count == bestCount && hc.Hour < *best) {
			h := hc.Hour
			best = &h
			bestCount = hc.Count
		}
	}
	return best
}
