package requestdata

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/evermore-apps/evermore-backend/internal/domain/accounts"
)

func TestWithRequestData_RoundTrip(t *testing.T) {
	id := uuid.New()
	rd := &RequestData{Kind: accounts.PrincipalCouple, PrincipalID: id, CoupleID: id}
	ctx := WithRequestData(context.Background(), rd)

	got := GetRequestData(ctx)
	if got == nil || got.PrincipalID != id {
		t.Fatalf("expected round-tripped request data, got %+v", got)
	}
	if GetRequestData(context.Background()) != nil {
		t.Fatalf("expected nil on bare context")
	}
}

func TestCan_SuperAdminBypassesPermissionList(t *testing.T) {
	rd := &RequestData{Kind: accounts.PrincipalSuperAdmin}
	if !rd.Can(accounts.PermRegistryManage) {
		t.Fatalf("expected super admin to pass any check")
	}
}

func TestCan_ScansPermissions(t *testing.T) {
	rd := &RequestData{
		Kind:        accounts.PrincipalOrganizer,
		Permissions: []accounts.Permission{accounts.PermGuestCheckIn, accounts.PermStatsRead},
	}
	if !rd.Can(accounts.PermGuestCheckIn) {
		t.Fatalf("expected held permission to pass")
	}
	if rd.Can(accounts.PermMediaUpload) {
		t.Fatalf("expected missing permission to fail")
	}
}
