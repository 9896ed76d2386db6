package constants

import "fmt"

// Role operator aplikasi (klaim "role" di JWT)
const (
	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
	RoleTeacher    = "teacher"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyStaffCanAccess  = "❌ Hanya admin atau accountant yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleAccountant,
		RoleTeacher,
	}

	// boleh pegang uang (billing, kwitansi)
	FinanceRoles = []string{
		RoleAdmin,
		RoleAccountant,
	}

	// boleh ubah master data (fee plan, fee master, config sekolah)
	AdminOnly = []string{
		RoleAdmin,
	}
)
