package requestdata

import (
	"context"

	"github.com/google/uuid"

	"github.com/evermore-apps/evermore-backend/internal/domain/accounts"
)

var requestDataKey = struct{}{}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	val := ctx.Value(requestDataKey)
	if rd, ok := val.(*RequestData); ok {
		return rd
	}
	return nil
}

// RequestData is the authenticated principal attached to a request context.
// CoupleID is the tenant scope; for a couple principal it equals PrincipalID,
// for an organizer it is the employing couple, and for a super admin it is
// nil until an admin endpoint picks a tenant explicitly.
type RequestData struct {
	TokenString  string
	RefreshToken string
	Kind         accounts.PrincipalKind
	PrincipalID  uuid.UUID
	CoupleID     uuid.UUID
	Permissions  []accounts.Permission
	ClientIP     string
	UserAgent    string
}

func (rd *RequestData) Can(p accounts.Permission) bool {
	if rd == nil {
		return false
	}
	if rd.Kind == accounts.PrincipalSuperAdmin {
		return true
	}
	for _, have := range rd.Permissions {
		if have == p {
			return true
		}
	}
	return false
}
