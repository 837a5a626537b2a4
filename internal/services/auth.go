package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/evermore-apps/evermore-backend/internal/data/repos"
	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/domain/accounts"
	"github.com/evermore-apps/evermore-backend/internal/pkg/logger"
	"github.com/evermore-apps/evermore-backend/internal/requestdata"
)

// AccessClaims is the JWT payload for all three principal kinds. CoupleID is
// the tenant scope and is empty for super admins.
type AccessClaims struct {
	Kind        accounts.PrincipalKind `json:"kind"`
	CoupleID    string                 `json:"couple_id,omitempty"`
	Permissions []string               `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

type AuthService interface {
	RegisterCouple(ctx context.Context, couple *types.Couple) error
	LoginCouple(ctx context.Context, email, password string) (string, string, error)
	LoginOrganizer(ctx context.Context, coupleSlug, email, password string) (string, string, error)
	LoginSuperAdmin(ctx context.Context, email, password string) (string, string, error)
	Refresh(ctx context.Context) (string, string, error)
	Logout(ctx context.Context) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	CreateOrganizer(ctx context.Context, organizer *types.Organizer, password string) error
	GetAccessTTL() time.Duration
}

type authService struct {
	db             *gorm.DB
	log            *logger.Logger
	coupleRepo     repos.CoupleRepo
	organizerRepo  repos.OrganizerRepo
	superAdminRepo repos.SuperAdminRepo
	authTokenRepo  repos.AuthTokenRepo
	jwtSecretKey   string
	accessTTL      time.Duration
	refreshTTL     time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	coupleRepo repos.CoupleRepo,
	organizerRepo repos.OrganizerRepo,
	superAdminRepo repos.SuperAdminRepo,
	authTokenRepo repos.AuthTokenRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:             db,
		log:            serviceLog,
		coupleRepo:     coupleRepo,
		organizerRepo:  organizerRepo,
		superAdminRepo: superAdminRepo,
		authTokenRepo:  authTokenRepo,
		jwtSecretKey:   jwtSecretKey,
		accessTTL:      accessTTL,
		refreshTTL:     refreshTTL,
	}
}

func (as *authService) GetAccessTTL() time.Duration { return as.accessTTL }

func (as *authService) RegisterCouple(ctx context.Context, couple *types.Couple) error {
	couple.Email = strings.ToLower(strings.TrimSpace(couple.Email))
	couple.Slug = strings.ToLower(strings.TrimSpace(couple.Slug))
	if couple.Email == "" || couple.Password == "" {
		return fmt.Errorf("email and password are required")
	}
	if couple.Slug == "" {
		return fmt.Errorf("slug is required")
	}
	if couple.PartnerOne == "" || couple.PartnerTwo == "" {
		return fmt.Errorf("both partner names are required")
	}

	emailTaken, err := as.coupleRepo.EmailExists(ctx, nil, couple.Email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if emailTaken {
		return fmt.Errorf("email already registered")
	}
	slugTaken, err := as.coupleRepo.SlugExists(ctx, nil, couple.Slug)
	if err != nil {
		return fmt.Errorf("failed to check slug: %w", err)
	}
	if slugTaken {
		return fmt.Errorf("slug already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(couple.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	couple.Password = string(hashed)

	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		couple.ID = uuid.New()
		if _, err := as.coupleRepo.Create(ctx, tx, []*types.Couple{couple}); err != nil {
			return fmt.Errorf("failed to create couple: %w", err)
		}
		return nil
	})
}

func (as *authService) LoginCouple(ctx context.Context, email, password string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	couples, err := as.coupleRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return "", "", fmt.Errorf("failed to load couple: %w", err)
	}
	if len(couples) == 0 {
		return "", "", fmt.Errorf("invalid credentials")
	}
	couple := couples[0]
	if err := bcrypt.CompareHashAndPassword([]byte(couple.Password), []byte(password)); err != nil {
		return "", "", fmt.Errorf("invalid credentials")
	}

	return as.issueTokens(ctx, accounts.PrincipalCouple, couple.ID, couple.ID, couple.Permissions())
}

func (as *authService) LoginOrganizer(ctx context.Context, coupleSlug, email, password string) (string, string, error) {
	coupleSlug = strings.ToLower(strings.TrimSpace(coupleSlug))
	email = strings.ToLower(strings.TrimSpace(email))

	couples, err := as.coupleRepo.GetBySlugs(ctx, nil, []string{coupleSlug})
	if err != nil {
		return "", "", fmt.Errorf("failed to load couple: %w", err)
	}
	if len(couples) == 0 {
		return "", "", fmt.Errorf("invalid credentials")
	}
	couple := couples[0]

	organizer, err := as.organizerRepo.GetByCoupleAndEmail(ctx, nil, couple.ID, email)
	if err != nil {
		return "", "", fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(organizer.Password), []byte(password)); err != nil {
		return "", "", fmt.Errorf("invalid credentials")
	}

	return as.issueTokens(ctx, accounts.PrincipalOrganizer, organizer.ID, couple.ID, organizer.Permissions())
}

func (as *authService) LoginSuperAdmin(ctx context.Context, email, password string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admins, err := as.superAdminRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return "", "", fmt.Errorf("failed to load admin: %w", err)
	}
	if len(admins) == 0 {
		return "", "", fmt.Errorf("invalid credentials")
	}
	admin := admins[0]
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", "", fmt.Errorf("invalid credentials")
	}

	return as.issueTokens(ctx, accounts.PrincipalSuperAdmin, admin.ID, uuid.Nil, nil)
}

func (as *authService) issueTokens(ctx context.Context, kind accounts.PrincipalKind, principalID, coupleID uuid.UUID, perms []accounts.Permission) (string, string, error) {
	var accessToken string
	var refreshToken string

	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tok, err := as.generateAccessToken(kind, principalID, coupleID, perms)
		if err != nil {
			return fmt.Errorf("failed to generate access token: %w", err)
		}
		accessToken = tok
		refreshToken = uuid.New().String()

		authToken := types.AuthToken{
			ID:            uuid.New(),
			PrincipalKind: kind,
			PrincipalID:   principalID,
			AccessToken:   accessToken,
			RefreshToken:  refreshToken,
			ExpiresAt:     time.Now().Add(as.refreshTTL),
		}
		if _, err := as.authTokenRepo.Create(ctx, tx, []*types.AuthToken{&authToken}); err != nil {
			return fmt.Errorf("failed to persist auth token: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (as *authService) generateAccessToken(kind accounts.PrincipalKind, principalID, coupleID uuid.UUID, perms []accounts.Permission) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Kind:        kind,
		Permissions: accounts.PermissionStrings(perms),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
		},
	}
	if coupleID != uuid.Nil {
		claims.CoupleID = coupleID.String()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) Refresh(ctx context.Context) (string, string, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.RefreshToken == "" {
		return "", "", fmt.Errorf("missing refresh token")
	}

	var accessToken string
	var newRefreshToken string

	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := as.authTokenRepo.GetByRefreshToken(ctx, tx, rd.RefreshToken)
		if err != nil {
			return fmt.Errorf("unknown refresh token")
		}
		if existing.ExpiresAt.Before(time.Now()) {
			_ = as.authTokenRepo.DeleteByRefreshToken(ctx, tx, rd.RefreshToken)
			return fmt.Errorf("refresh token expired")
		}

		kind, principalID := existing.PrincipalKind, existing.PrincipalID
		coupleID, perms, err := as.resolvePrincipal(ctx, tx, kind, principalID)
		if err != nil {
			return err
		}

		tok, err := as.generateAccessToken(kind, principalID, coupleID, perms)
		if err != nil {
			return fmt.Errorf("failed to generate access token: %w", err)
		}
		accessToken = tok
		newRefreshToken = uuid.New().String()

		if err := as.authTokenRepo.DeleteByRefreshToken(ctx, tx, rd.RefreshToken); err != nil {
			return fmt.Errorf("failed to rotate refresh token: %w", err)
		}
		authToken := types.AuthToken{
			ID:            uuid.New(),
			PrincipalKind: kind,
			PrincipalID:   principalID,
			AccessToken:   accessToken,
			RefreshToken:  newRefreshToken,
			ExpiresAt:     time.Now().Add(as.refreshTTL),
		}
		if _, err := as.authTokenRepo.Create(ctx, tx, []*types.AuthToken{&authToken}); err != nil {
			return fmt.Errorf("failed to persist auth token: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}
	return accessToken, newRefreshToken, nil
}

func (as *authService) resolvePrincipal(ctx context.Context, tx *gorm.DB, kind accounts.PrincipalKind, principalID uuid.UUID) (uuid.UUID, []accounts.Permission, error) {
	switch kind {
	case accounts.PrincipalCouple:
		couples, err := as.coupleRepo.GetByIDs(ctx, tx, []uuid.UUID{principalID})
		if err != nil || len(couples) == 0 {
			return uuid.Nil, nil, fmt.Errorf("couple not found")
		}
		return couples[0].ID, couples[0].Permissions(), nil
	case accounts.PrincipalOrganizer:
		organizers, err := as.organizerRepo.GetByIDs(ctx, tx, []uuid.UUID{principalID})
		if err != nil || len(organizers) == 0 {
			return uuid.Nil, nil, fmt.Errorf("organizer not found")
		}
		return organizers[0].CoupleID, organizers[0].Permissions(), nil
	case accounts.PrincipalSuperAdmin:
		admins, err := as.superAdminRepo.GetByIDs(ctx, tx, []uuid.UUID{principalID})
		if err != nil || len(admins) == 0 {
			return uuid.Nil, nil, fmt.Errorf("admin not found")
		}
		return uuid.Nil, nil, nil
	default:
		return uuid.Nil, nil, fmt.Errorf("unknown principal kind: %s", kind)
	}
}

func (as *authService) Logout(ctx context.Context) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return fmt.Errorf("no request data in context")
	}
	if rd.RefreshToken != "" {
		return as.authTokenRepo.DeleteByRefreshToken(ctx, nil, rd.RefreshToken)
	}
	if rd.PrincipalID != uuid.Nil {
		return as.authTokenRepo.DeleteByPrincipal(ctx, nil, rd.Kind, rd.PrincipalID)
	}
	return fmt.Errorf("nothing to log out")
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return ctx, fmt.Errorf("invalid token")
	}

	principalID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, fmt.Errorf("invalid token subject")
	}
	coupleID := uuid.Nil
	if claims.CoupleID != "" {
		coupleID, err = uuid.Parse(claims.CoupleID)
		if err != nil {
			return ctx, fmt.Errorf("invalid token tenant")
		}
	}

	perms := make([]accounts.Permission, 0, len(claims.Permissions))
	for _, p := range claims.Permissions {
		perms = append(perms, accounts.Permission(p))
	}

	rd := &requestdata.RequestData{
		TokenString: tokenString,
		Kind:        claims.Kind,
		PrincipalID: principalID,
		CoupleID:    coupleID,
		Permissions: perms,
	}
	return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) CreateOrganizer(ctx context.Context, organizer *types.Organizer, password string) error {
	organizer.Email = strings.ToLower(strings.TrimSpace(organizer.Email))
	if organizer.Email == "" || password == "" {
		return fmt.Errorf("email and password are required")
	}
	if organizer.CoupleID == uuid.Nil {
		return fmt.Errorf("organizer requires a couple")
	}
	switch organizer.Role {
	case accounts.RoleScanner, accounts.RolePhotographer, accounts.RoleOrganizer:
	default:
		return fmt.Errorf("unknown organizer role: %s", organizer.Role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	organizer.Password = string(hashed)

	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		organizer.ID = uuid.New()
		if _, err := as.organizerRepo.Create(ctx, tx, []*types.Organizer{organizer}); err != nil {
			return fmt.Errorf("failed to create organizer: %w", err)
		}
		return nil
	})
}
