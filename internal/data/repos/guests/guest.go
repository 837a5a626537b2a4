package guests

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

// HourCount is one row of the hourly check-in histogram.
type HourCount struct {
	Hour  int   `gorm:"column:hour"`
	Count int64 `gorm:"column:count"`
}

type GuestRepo interface {
	Create(ctx context.Context, tx *gorm.DB, guests []*types.Guest) ([]*types.Guest, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, guestIDs []uuid.UUID) ([]*types.Guest, error)
	GetByCoupleIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.Guest, error)
	GetByQRToken(ctx context.Context, tx *gorm.DB, qrToken string) (*types.Guest, error)
	UpdateRSVP(ctx context.Context, tx *gorm.DB, guestID uuid.UUID, status types.RSVPStatus, plusOnes int, dietaryNotes string, respondedAt time.Time) error
	UpdateProfile(ctx context.Context, tx *gorm.DB, guestID uuid.UUID, fields map[string]any) error
	AssignTable(ctx context.Context, tx *gorm.DB, guestIDs []uuid.UUID, table string) error
	MarkCheckedIn(ctx context.Context, tx *gorm.DB, guestID uuid.UUID, ceremony, reception bool, at time.Time) error
	CountByRSVPStatus(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID) (map[types.RSVPStatus]int64, error)
	CountCheckedIn(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID) (int64, error)
	ArrivalHourCounts(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID) ([]HourCount, error)
	Delete(ctx context.Context, tx *gorm.DB, guestID uuid.UUID) error
}

type guestRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGuestRepo(db *gorm.DB, baseLog *logger.Logger) GuestRepo {
	repoLog := baseLog.With("repo", "GuestRepo")
	return &guestRepo{db: db, log: repoLog}
}

func (gr *guestRepo) Create(ctx context.Context, tx *gorm.DB, guests []*types.Guest) ([]*types.Guest, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	if len(guests) == 0 {
		return []*types.Guest{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

func (gr *guestRepo) GetByIDs(ctx context.Context, tx *gorm.DB, guestIDs []uuid.UUID) ([]*types.Guest, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var results []*types.Guest
	if len(guestIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", guestIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (gr *guestRepo) GetByCoupleIDs(ctx context.Context, tx *gorm.DB, coupleIDs []uuid.UUID) ([]*types.Guest, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var results []*types.Guest
	if len(coupleIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("couple_id IN ?", coupleIDs).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (gr *guestRepo) GetByQRToken(ctx context.Context, tx *gorm.DB, qrToken string) (*types.Guest, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var result types.Guest
	err := transaction.WithContext(ctx).
		Where("qr_token = ?", qrToken).
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (gr *guestRepo) UpdateRSVP(ctx context.Context, tx *gorm.DB, guestID uuid.UUID, status types.RSVPStatus, plusOnes int, dietaryNotes string, respondedAt time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Guest{}).
		Where("id = ?", guestID).
		Updates(map[string]any{
			"rsvp_status":   status,
			"plus_ones":     plusOnes,
			"dietary_notes": dietaryNotes,
			"responded_at":  respondedAt,
		}).Error
}

func (gr *guestRepo) UpdateProfile(ctx context.Context, tx *gorm.DB, guestID uuid.UUID, fields map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	if len(fields) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Guest{}).
		Where("id = ?", guestID).
		Updates(fields).Error
}

func (gr *guestRepo) AssignTable(ctx context.Context, tx *gorm.DB, guestIDs []uuid.UUID, table string) error {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	if len(guestIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Guest{}).
		Where("id IN ?", guestIDs).
		Update("seating_table", table).Error
}

func (gr *guestRepo) MarkCheckedIn(ctx context.Context, tx *gorm.DB, guestID uuid.UUID, ceremony, reception bool, at time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	fields := map[string]any{}
	if ceremony {
		fields["present_ceremony"] = true
	}
	if reception {
		fields["present_reception"] = true
	}
	if len(fields) == 0 {
		return nil
	}
	if err := transaction.WithContext(ctx).
		Model(&types.Guest{}).
		Where("id = ?", guestID).
		Updates(fields).Error; err != nil {
		return err
	}
	// The first scan sets checked_in_at; later scans keep the original time.
	return transaction.WithContext(ctx).
		Model(&types.Guest{}).
		Where("id = ? AND checked_in_at IS NULL", guestID).
		Update("checked_in_at", at).Error
}

func (gr *guestRepo) CountByRSVPStatus(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID) (map[types.RSVPStatus]int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var rows []struct {
		RSVPStatus types.RSVPStatus `gorm:"column:rsvp_status"`
		Count      int64            `gorm:"column:count"`
	}
	if err := transaction.WithContext(ctx).
		Model(&types.Guest{}).
		Select("rsvp_status, COUNT(*) AS count").
		Where("couple_id = ?", coupleID).
		Group("rsvp_status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[types.RSVPStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.RSVPStatus] = row.Count
	}
	return counts, nil
}

func (gr *guestRepo) CountCheckedIn(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Guest{}).
		Where("couple_id = ? AND checked_in_at IS NOT NULL", coupleID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (gr *guestRepo) ArrivalHourCounts(ctx context.Context, tx *gorm.DB, coupleID uuid.UUID) ([]HourCount, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var rows []HourCount
	if err := transaction.WithContext(ctx).
		Model(&types.Guest{}).
		Select("EXTRACT(HOUR FROM checked_in_at)::int AS hour, COUNT(*) AS count").
		Where("couple_id = ? AND checked_in_at IS NOT NULL", coupleID).
		Group("hour").
		Order("hour ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (gr *guestRepo) Delete(ctx context.Context, tx *gorm.DB, guestID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", guestID).
		Delete(&types.Guest{}).Error
}
