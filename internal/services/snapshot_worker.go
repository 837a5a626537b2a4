package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/evermore-apps/evermore-backend/internal/data/repos"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

// SnapshotWorker refreshes every couple's attendance snapshot on a schedule,
// so dashboard reads hit warm cache entries instead of recomputing.
type SnapshotWorker struct {
	db         *gorm.DB
	log        *logger.Logger
	coupleRepo repos.CoupleRepo
	attendance AttendanceService
	cron       *cron.Cron
	spec       string
}

func NewSnapshotWorker(
	db *gorm.DB,
	log *logger.Logger,
	coupleRepo repos.CoupleRepo,
	attendance AttendanceService,
	spec string,
) *SnapshotWorker {
	workerLog := log.With("service", "SnapshotWorker")
	if spec == "" {
		spec = "0 3 * * *"
	}
	return &SnapshotWorker{
		db:         db,
		log:        workerLog,
		coupleRepo: coupleRepo,
		attendance: attendance,
		cron:       cron.New(),
		spec:       spec,
	}
}

func (sw *SnapshotWorker) Start() error {
	_, err := sw.cron.AddFunc(sw.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		sw.RunOnce(ctx)
	})
	if err != nil {
		return err
	}
	sw.cron.Start()
	sw.log.Info("snapshot worker started", "spec", sw.spec)
	return nil
}

func (sw *SnapshotWorker) Stop() {
	ctx := sw.cron.Stop()
	<-ctx.Done()
}

// RunOnce refreshes snapshots for every couple. One failing tenant never
// blocks the rest.
func (sw *SnapshotWorker) RunOnce(ctx context.Context) {
	const pageSize = 200
	offset := 0
	for {
		couples, err := sw.coupleRepo.List(ctx, nil, pageSize, offset)
		if err != nil {
			sw.log.Error("failed to page couples for snapshots", "offset", offset, "error", err)
			return
		}
		if len(couples) == 0 {
			return
		}
		for _, c := range couples {
			if err := sw.attendance.RefreshSnapshot(ctx, c.ID); err != nil {
				sw.log.Warn("failed to refresh attendance snapshot", "couple_id", c.ID, "error", err)
			}
		}
		if len(couples) < pageSize {
			return
		}
		offset += pageSize
	}
}
