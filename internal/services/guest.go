package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/evermore-apps/evermore-backend/internal/data/repos"
	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type CheckInResult struct {
	Guest       *types.Guest `json:"guest"`
	AlreadyIn   bool         `json:"already_in"`
	CheckedInAt time.Time    `json:"checked_in_at"`
}

type GuestService interface {
	CreateGuests(ctx context.Context, coupleID uuid.UUID, guests []*types.Guest) ([]*types.Guest, error)
	ListGuests(ctx context.Context, coupleID uuid.UUID) ([]*types.Guest, error)
	UpdateGuest(ctx context.Context, coupleID, guestID uuid.UUID, fields map[string]any) error
	DeleteGuest(ctx context.Context, coupleID, guestID uuid.UUID) error
	RecordRSVP(ctx context.Context, coupleID, guestID uuid.UUID, status types.RSVPStatus, plusOnes int, dietaryNotes string) error
	AssignTable(ctx context.Context, coupleID uuid.UUID, guestIDs []uuid.UUID, table string) error
	CheckInByQRToken(ctx context.Context, coupleID uuid.UUID, qrToken string, ceremony, reception bool) (*CheckInResult, error)
	QRCodePNG(ctx context.Context, coupleID, guestID uuid.UUID, size int) ([]byte, error)
}

type guestService struct {
	db        *gorm.DB
	log       *logger.Logger
	guestRepo repos.GuestRepo
	notifier  NotificationService
	activity  ActivityService
	qrBaseURL string
}

func NewGuestService(
	db *gorm.DB,
	log *logger.Logger,
	guestRepo repos.GuestRepo,
	notifier NotificationService,
	activity ActivityService,
	qrBaseURL string,
) GuestService {
	serviceLog := log.With("service", "GuestService")
	return &guestService{
		db:        db,
		log:       serviceLog,
		guestRepo: guestRepo,
		notifier:  notifier,
		activity:  activity,
		qrBaseURL: qrBaseURL,
	}
}

func newQRToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate qr token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (gs *guestService) CreateGuests(ctx context.Context, coupleID uuid.UUID, guests []*types.Guest) ([]*types.Guest, error) {
	if len(guests) == 0 {
		return []*types.Guest{}, nil
	}
	for _, g := range guests {
		if g.Name == "" {
			return nil, fmt.Errorf("every guest needs a name")
		}
		g.ID = uuid.New()
		g.CoupleID = coupleID
		g.RSVPStatus = types.RSVPPending
		token, err := newQRToken()
		if err != nil {
			return nil, err
		}
		g.QRToken = token
	}

	err := gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := gs.guestRepo.Create(ctx, tx, guests); err != nil {
			return fmt.Errorf("failed to create guests: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	gs.activity.Record(ctx, coupleID, "guests.created", "guest", nil, nil)
	return guests, nil
}

func (gs *guestService) ListGuests(ctx context.Context, coupleID uuid.UUID) ([]*types.Guest, error) {
	return gs.guestRepo.GetByCoupleIDs(ctx, nil, []uuid.UUID{coupleID})
}

func (gs *guestService) UpdateGuest(ctx context.Context, coupleID, guestID uuid.UUID, fields map[string]any) error {
	if _, err := gs.loadGuest(ctx, coupleID, guestID); err != nil {
		return err
	}
	return gs.guestRepo.UpdateProfile(ctx, nil, guestID, fields)
}

func (gs *guestService) DeleteGuest(ctx context.Context, coupleID, guestID uuid.UUID) error {
	if _, err := gs.loadGuest(ctx, coupleID, guestID); err != nil {
		return err
	}
	return gs.guestRepo.Delete(ctx, nil, guestID)
}

func (gs *guestService) RecordRSVP(ctx context.Context, coupleID, guestID uuid.UUID, status types.RSVPStatus, plusOnes int, dietaryNotes string) error {
	switch status {
	case types.RSVPConfirmed, types.RSVPDeclined, types.RSVPPending:
	default:
		return fmt.Errorf("unknown rsvp status: %s", status)
	}
	if plusOnes < 0 {
		return fmt.Errorf("plus ones cannot be negative")
	}

	guest, err := gs.loadGuest(ctx, coupleID, guestID)
	if err != nil {
		return err
	}

	if err := gs.guestRepo.UpdateRSVP(ctx, nil, guestID, status, plusOnes, dietaryNotes, time.Now()); err != nil {
		return fmt.Errorf("failed to record rsvp: %w", err)
	}

	gs.notifier.Notify(ctx, coupleID, types.NotificationRSVP,
		"RSVP received", fmt.Sprintf("%s responded: %s", guest.Name, status), nil)
	gs.activity.Record(ctx, coupleID, "guest.rsvp", "guest", &guestID, nil)
	return nil
}

func (gs *guestService) AssignTable(ctx context.Context, coupleID uuid.UUID, guestIDs []uuid.UUID, table string) error {
	guests, err := gs.guestRepo.GetByIDs(ctx, nil, guestIDs)
	if err != nil {
		return fmt.Errorf("failed to load guests: %w", err)
	}
	if len(guests) != len(guestIDs) {
		return fmt.Errorf("one or more guests not found")
	}
	for _, g := range guests {
		if g.CoupleID != coupleID {
			return fmt.Errorf("one or more guests not found")
		}
	}
	if err := gs.guestRepo.AssignTable(ctx, nil, guestIDs, table); err != nil {
		return fmt.Errorf("failed to assign table: %w", err)
	}
	gs.activity.Record(ctx, coupleID, "guests.table_assigned", "guest", nil, nil)
	return nil
}

// CheckInByQRToken marks presence for the scanned event. Re-scanning is
// idempotent: presence flags only ever flip to true and the first check-in
// time is preserved.
func (gs *guestService) CheckInByQRToken(ctx context.Context, coupleID uuid.UUID, qrToken string, ceremony, reception bool) (*CheckInResult, error) {
	if !ceremony && !reception {
		return nil, fmt.Errorf("check-in needs at least one event")
	}

	guest, err := gs.guestRepo.GetByQRToken(ctx, nil, qrToken)
	if err != nil {
		return nil, fmt.Errorf("unknown qr token")
	}
	if guest.CoupleID != coupleID {
		return nil, fmt.Errorf("unknown qr token")
	}

	alreadyIn := guest.CheckedInAt != nil
	now := time.Now()
	if err := gs.guestRepo.MarkCheckedIn(ctx, nil, guest.ID, ceremony, reception, now); err != nil {
		return nil, fmt.Errorf("failed to check in guest: %w", err)
	}

	refreshed, err := gs.guestRepo.GetByIDs(ctx, nil, []uuid.UUID{guest.ID})
	if err != nil || len(refreshed) == 0 {
		return nil, fmt.Errorf("failed to reload guest: %w", err)
	}
	guest = refreshed[0]

	if !alreadyIn {
		gs.notifier.Notify(ctx, coupleID, types.NotificationCheckIn,
			"Guest arrived", fmt.Sprintf("%s checked in", guest.Name), nil)
		gs.activity.Record(ctx, coupleID, "guest.checked_in", "guest", &guest.ID, nil)
	}

	checkedInAt := now
	if guest.CheckedInAt != nil {
		checkedInAt = *guest.CheckedInAt
	}
	return &CheckInResult{
		Guest:       guest,
		AlreadyIn:   alreadyIn,
		CheckedInAt: checkedInAt,
	}, nil
}

// QRCodePNG renders the guest's check-in code as a PNG. The encoded payload
// is the public check-in URL carrying the guest's token.
func (gs *guestService) QRCodePNG(ctx context.Context, coupleID, guestID uuid.UUID, size int) ([]byte, error) {
	guest, err := gs.loadGuest(ctx, coupleID, guestID)
	if err != nil {
		return nil, err
	}
	if size <= 0 || size > 1024 {
		size = 256
	}
	payload := fmt.Sprintf("%s/checkin/%s", gs.qrBaseURL, guest.QRToken)
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to render qr code: %w", err)
	}
	return png, nil
}

func (gs *guestService) loadGuest(ctx context.Context, coupleID, guestID uuid.UUID) (*types.Guest, error) {
	guests, err := gs.guestRepo.GetByIDs(ctx, nil, []uuid.UUID{guestID})
	if err != nil || len(guests) == 0 {
		return nil, fmt.Errorf("guest not found")
	}
	if guests[0].CoupleID != coupleID {
		return nil, fmt.Errorf("guest not found")
	}
	return guests[0], nil
}
