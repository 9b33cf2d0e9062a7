package constants

import "fmt"

const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
	RoleAdmin   = "admin"
)

// Role error message template
const ErrOnlyTutorsCanAccess = "Only tutors may access %s."

func RoleErrorTutor(feature string) string {
	return fmt.Sprintf(ErrOnlyTutorsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	// Roles assignable through the generic role-update path.
	// Admin is deliberately absent: the update path can never grant
	// or touch admin.
	AssignableRoles = []string{
		RoleStudent,
		RoleTutor,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsAssignableRole(role string) bool {
	for _, r := range AssignableRoles {
		if r == role {
			return true
		}
	}
	return false
}
