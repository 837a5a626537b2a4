package accounts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
)

type AuthTokenRepo interface {
	Create(ctx context.Context, tx *gorm.DB, tokens []*types.AuthToken) ([]*types.AuthToken, error)
	GetByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*types.AuthToken, error)
	DeleteByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) error
	DeleteByPrincipal(ctx context.Context, tx *gorm.DB, kind types.PrincipalKind, principalID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx *gorm.DB, before time.Time) (int64, error)
}

type authTokenRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAuthTokenRepo(db *gorm.DB, baseLog *logger.Logger) AuthTokenRepo {
	repoLog := baseLog.With("repo", "AuthTokenRepo")
	return &authTokenRepo{db: db, log: repoLog}
}

func (ar *authTokenRepo) Create(ctx context.Context, tx *gorm.DB, tokens []*types.AuthToken) ([]*types.AuthToken, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if len(tokens) == 0 {
		return []*types.AuthToken{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

func (ar *authTokenRepo) GetByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*types.AuthToken, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var result types.AuthToken
	err := transaction.WithContext(ctx).
		Where("refresh_token = ?", refreshToken).
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (ar *authTokenRepo) DeleteByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).
		Where("refresh_token = ?", refreshToken).
		Delete(&types.AuthToken{}).Error
}

func (ar *authTokenRepo) DeleteByPrincipal(ctx context.Context, tx *gorm.DB, kind types.PrincipalKind, principalID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).
		Where("principal_kind = ? AND principal_id = ?", kind, principalID).
		Delete(&types.AuthToken{}).Error
}

func (ar *authTokenRepo) DeleteExpired(ctx context.Context, tx *gorm.DB, before time.Time) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	res := transaction.WithContext(ctx).
		Where("expires_at < ?", before).
		Delete(&types.AuthToken{})
	return res.RowsAffected, res.Error
}
