package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/evermore-apps/evermore-backend/internal/data/repos"
	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type ProgrammeService interface {
	CreateItem(ctx context.Context, item *types.ProgrammeItem) error
	ListItems(ctx context.Context, coupleID uuid.UUID) ([]*types.ProgrammeItem, error)
	UpdateItem(ctx context.Context, coupleID, itemID uuid.UUID, fields map[string]any) error
	Reorder(ctx context.Context, coupleID uuid.UUID, orderedIDs []uuid.UUID) error
	DeleteItem(ctx context.Context, coupleID, itemID uuid.UUID) error
}

type programmeService struct {
	db            *gorm.DB
	log           *logger.Logger
	programmeRepo repos.ProgrammeRepo
	activity      ActivityService
}

func NewProgrammeService(db *gorm.DB, log *logger.Logger, programmeRepo repos.ProgrammeRepo, activity ActivityService) ProgrammeService {
	serviceLog := log.With("service", "ProgrammeService")
	return &programmeService{db: db, log: serviceLog, programmeRepo: programmeRepo, activity: activity}
}

func (ps *programmeService) CreateItem(ctx context.Context, item *types.ProgrammeItem) error {
	if item.Title == "" {
		return fmt.Errorf("programme item title is required")
	}
	if item.StartsAt != nil && item.EndsAt != nil && item.EndsAt.Before(*item.StartsAt) {
		return fmt.Errorf("programme item cannot end before it starts")
	}

	existing, err := ps.programmeRepo.GetByCoupleIDs(ctx, nil, []uuid.UUID{item.CoupleID})
	if err != nil {
		return fmt.Errorf("failed to load programme: %w", err)
	}
	item.Position = len(existing)

	return ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item.ID = uuid.New()
		if _, err := ps.programmeRepo.Create(ctx, tx, []*types.ProgrammeItem{item}); err != nil {
			return fmt.Errorf("failed to create programme item: %w", err)
		}
		return nil
	})
}

func (ps *programmeService) ListItems(ctx context.Context, coupleID uuid.UUID) ([]*types.ProgrammeItem, error) {
	return ps.programmeRepo.GetByCoupleIDs(ctx, nil, []uuid.UUID{coupleID})
}

func (ps *programmeService) UpdateItem(ctx context.Context, coupleID, itemID uuid.UUID, fields map[string]any) error {
	if err := ps.ensureOwned(ctx, coupleID, itemID); err != nil {
		return err
	}
	return ps.programmeRepo.Update(ctx, nil, itemID, fields)
}

// Reorder rewrites positions to match the given id order. The list must name
// every item of the couple exactly once.
func (ps *programmeService) Reorder(ctx context.Context, coupleID uuid.UUID, orderedIDs []uuid.UUID) error {
	existing, err := ps.programmeRepo.GetByCoupleIDs(ctx, nil, []uuid.UUID{coupleID})
	if err != nil {
		return fmt.Errorf("failed to load programme: %w", err)
	}
	if len(orderedIDs) != len(existing) {
		return fmt.Errorf("reorder must include every programme item")
	}
	owned := make(map[uuid.UUID]bool, len(existing))
	for _, it := range existing {
		owned[it.ID] = true
	}

	positions := make(map[uuid.UUID]int, len(orderedIDs))
	for pos, id := range orderedIDs {
		if !owned[id] {
			return fmt.Errorf("unknown programme item in reorder")
		}
		if _, dup := positions[id]; dup {
			return fmt.Errorf("duplicate programme item in reorder")
		}
		positions[id] = pos
	}

	err = ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return ps.programmeRepo.UpdatePositions(ctx, tx, positions)
	})
	if err != nil {
		return err
	}
	ps.activity.Record(ctx, coupleID, "programme.reordered", "programme_item", nil, nil)
	return nil
}

func (ps *programmeService) DeleteItem(ctx context.Context, coupleID, itemID uuid.UUID) error {
	if err := ps.ensureOwned(ctx, coupleID, itemID); err != nil {
		return err
	}
	return ps.programmeRepo.Delete(ctx, nil, itemID)
}

func (ps *programmeService) ensureOwned(ctx context.Context, coupleID, itemID uuid.UUID) error {
	items, err := ps.programmeRepo.GetByIDs(ctx, nil, []uuid.UUID{itemID})
	if err != nil || len(items) == 0 {
		return fmt.Errorf("programme item not found")
	}
	if items[0].CoupleID != coupleID {
		return fmt.Errorf("programme item not found")
	}
	return nil
}
