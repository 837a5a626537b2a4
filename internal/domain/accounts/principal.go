package accounts

// PrincipalKind discriminates the three account types that can authenticate.
type PrincipalKind string

const (
	PrincipalCouple     PrincipalKind = "couple"
	PrincipalOrganizer  PrincipalKind = "organizer"
	PrincipalSuperAdmin PrincipalKind = "superadmin"
)

type Permission string

const (
	PermGuestManage     Permission = "guests.manage"
	PermGuestCheckIn    Permission = "guests.checkin"
	PermMediaUpload     Permission = "media.upload"
	PermRegistryManage  Permission = "registry.manage"
	PermProgrammeManage Permission = "programme.manage"
	PermEngageManage    Permission = "engagement.manage"
	PermStatsRead       Permission = "stats.read"
)

// CouplePermissions is the full tenant-scoped permission set; the couple
// owning a wedding can do anything an organizer can.
func CouplePermissions() []Permission {
	return []Permission{
		PermGuestManage,
		PermGuestCheckIn,
		PermMediaUpload,
		PermRegistryManage,
		PermProgrammeManage,
		PermEngageManage,
		PermStatsRead,
	}
}

func HasPermission(perms []Permission, want Permission) bool {
	for _, p := range perms {
		if p == want {
			return true
		}
	}
	return false
}

func PermissionStrings(perms []Permission) []string {
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		out = append(out, string(p))
	}
	return out
}
