package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/evermore-apps/evermore-backend/internal/data/repos"
	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/domain/accounts"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
	"github.com/evermore-apps/evermore-backend/internal/requestdata"
)

type ActivityService interface {
	// Record appends an audit entry. The acting principal is read from the
	// request context; failures are logged and swallowed so the audit trail
	// never breaks a domain flow.
	Record(ctx context.Context, coupleID uuid.UUID, action, targetType string, targetID *uuid.UUID, detail datatypes.JSON)
	List(ctx context.Context, coupleID uuid.UUID, action string, limit, offset int) ([]*types.ActivityLog, error)
}

type activityService struct {
	db              *gorm.DB
	log             *logger.Logger
	activityLogRepo repos.ActivityLogRepo
}

func NewActivityService(db *gorm.DB, log *logger.Logger, activityLogRepo repos.ActivityLogRepo) ActivityService {
	serviceLog := log.With("service", "ActivityService")
	return &activityService{db: db, log: serviceLog, activityLogRepo: activityLogRepo}
}

func (as *activityService) Record(ctx context.Context, coupleID uuid.UUID, action, targetType string, targetID *uuid.UUID, detail datatypes.JSON) {
	entry := &types.ActivityLog{
		ID:            uuid.New(),
		CoupleID:      coupleID,
		PrincipalKind: "system",
		Action:        action,
		TargetType:    targetType,
		TargetID:      targetID,
		Detail:        detail,
	}
	if rd := requestdata.GetRequestData(ctx); rd != nil {
		if rd.Kind != accounts.PrincipalKind("") {
			entry.PrincipalKind = string(rd.Kind)
			principalID := rd.PrincipalID
			entry.PrincipalID = &principalID
		}
		entry.ClientIP = rd.ClientIP
		entry.UserAgent = rd.UserAgent
	}
	if _, err := as.activityLogRepo.Append(ctx, nil, []*types.ActivityLog{entry}); err != nil {
		as.log.Warn("failed to append activity log", "couple_id", coupleID, "action", action, "error", err)
	}
}

func (as *activityService) List(ctx context.Context, coupleID uuid.UUID, action string, limit, offset int) ([]*types.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if action != "" {
		return as.activityLogRepo.GetByAction(ctx, nil, coupleID, action, limit, offset)
	}
	return as.activityLogRepo.GetByCoupleID(ctx, nil, coupleID, limit, offset)
}
