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

type PlatformStats struct {
	CoupleCount int64 `json:"couple_count"`
}

// AdminService backs the super-admin surface: cross-tenant listing and
// account removal.
type AdminService interface {
	ListCouples(ctx context.Context, limit, offset int) ([]*types.Couple, error)
	PlatformStats(ctx context.Context) (*PlatformStats, error)
	DeleteCouple(ctx context.Context, coupleID uuid.UUID) error
}

type adminService struct {
	db         *gorm.DB
	log        *logger.Logger
	coupleRepo repos.CoupleRepo
}

func NewAdminService(db *gorm.DB, log *logger.Logger, coupleRepo repos.CoupleRepo) AdminService {
	serviceLog := log.With("service", "AdminService")
	return &adminService{db: db, log: serviceLog, coupleRepo: coupleRepo}
}

func (ads *adminService) ListCouples(ctx context.Context, limit, offset int) ([]*types.Couple, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return ads.coupleRepo.List(ctx, nil, limit, offset)
}

func (ads *adminService) PlatformStats(ctx context.Context) (*PlatformStats, error) {
	count, err := ads.coupleRepo.Count(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count couples: %w", err)
	}
	return &PlatformStats{CoupleCount: count}, nil
}

func (ads *adminService) DeleteCouple(ctx context.Context, coupleID uuid.UUID) error {
	couples, err := ads.coupleRepo.GetByIDs(ctx, nil, []uuid.UUID{coupleID})
	if err != nil || len(couples) == 0 {
		return fmt.Errorf("couple not found")
	}
	return ads.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return ads.coupleRepo.Delete(ctx, tx, coupleID)
	})
}
