package accounts

import "testing"

func TestOrganizerPermissions_ByRole(t *testing.T) {
	cases := []struct {
		role OrganizerRole
		want []Permission
	}{
		{RoleScanner, []Permission{PermGuestCheckIn, PermStatsRead}},
		{RolePhotographer, []Permission{PermMediaUpload}},
		{RoleOrganizer, []Permission{PermGuestManage, PermGuestCheckIn, PermMediaUpload, PermProgrammeManage, PermStatsRead}},
		{OrganizerRole("unknown"), nil},
	}
	for _, tc := range cases {
		o := &Organizer{Role: tc.role}
		got := o.Permissions()
		if len(got) != len(tc.want) {
			t.Fatalf("role %q: expected %d permissions got %d", tc.role, len(tc.want), len(got))
		}
		for i, p := range tc.want {
			if got[i] != p {
				t.Fatalf("role %q: expected %q at %d got %q", tc.role, p, i, got[i])
			}
		}
	}
}

func TestCouplePermissions_CoverEverything(t *testing.T) {
	perms := CouplePermissions()
	all := []Permission{
		PermGuestManage, PermGuestCheckIn, PermMediaUpload,
		PermRegistryManage, PermProgrammeManage, PermEngageManage, PermStatsRead,
	}
	for _, p := range all {
		if !HasPermission(perms, p) {
			t.Fatalf("expected couple to hold %q", p)
		}
	}
}

func TestHasPermission(t *testing.T) {
	perms := []Permission{PermGuestCheckIn}
	if !HasPermission(perms, PermGuestCheckIn) {
		t.Fatalf("expected match")
	}
	if HasPermission(perms, PermRegistryManage) {
		t.Fatalf("expected no match")
	}
	if HasPermission(nil, PermStatsRead) {
		t.Fatalf("expected no match on empty set")
	}
}
