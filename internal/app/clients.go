package app

import (
	"github.com/evermore-apps/evermore-backend/internal/clients/gcp"
	"github.com/evermore-apps/evermore-backend/internal/clients/redis"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type Clients struct {
	Bucket gcp.BucketService
	Cache  redis.Cache
}

// wireClients tolerates missing infrastructure. A nil bucket disables media
// uploads and a nil cache falls back to live attendance computation.
func wireClients(log *logger.Logger) Clients {
	log.Info("Wiring clients...")

	bucket, err := gcp.NewBucketService(log)
	if err != nil {
		log.Warn("Could not init BucketService", "error", err)
		bucket = nil
	}

	cache, err := redis.NewCache(log)
	if err != nil {
		log.Warn("Could not init redis cache", "error", err)
		cache = nil
	}

	return Clients{Bucket: bucket, Cache: cache}
}
