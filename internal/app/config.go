package app

import (
	"time"

	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
	"github.com/evermore-apps/evermore-backend/internal/utils"
)

type Config struct {
	Port             string
	JWTSecretKey     string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
	QRBaseURL        string
	SnapshotCronSpec string
	SnapshotTTL      time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	qrBaseURL := utils.GetEnv("QR_BASE_URL", "https://app.evermore.example", log)
	snapshotCronSpec := utils.GetEnv("ATTENDANCE_SNAPSHOT_CRON", "0 3 * * *", log)
	snapshotTTLSeconds := utils.GetEnvAsInt("ATTENDANCE_SNAPSHOT_TTL", 900, log)
	return Config{
		Port:             port,
		JWTSecretKey:     jwtSecretKey,
		AccessTokenTTL:   time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL:  time.Duration(refreshTokenTTLSeconds) * time.Second,
		QRBaseURL:        qrBaseURL,
		SnapshotCronSpec: snapshotCronSpec,
		SnapshotTTL:      time.Duration(snapshotTTLSeconds) * time.Second,
	}
}
