package auth

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhub_backend/internals/constants"
	userModel "studyhub_backend/internals/features/users/user/model"
)

// RoleLookup resolves the current role for a verified email.
type RoleLookup func(ctx context.Context, email string) (string, error)

func dbRoleLookup(db *gorm.DB) RoleLookup {
	return func(ctx context.Context, email string) (string, error) {
		var user userModel.User
		err := db.WithContext(ctx).
			Where("user_email = ?", email).
			First(&user).Error
		if err != nil {
			return "", err
		}
		return user.UserRole, nil
	}
}

// RequireRoles admits only the listed roles, resolving the caller's role
// on every request. The role is never trusted from the credential: a
// demoted caller loses access on the next request.
func RequireRoles(lookup RoleLookup, forbiddenMessage string, allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals(LocUserEmail).(string)
		if !ok || email == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized access")
		}

		role, err := lookup(c.UserContext(), email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusForbidden, forbiddenMessage)
			}
			log.Println("[ERROR] role check failed:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		for _, a := range allowed {
			if role == a {
				c.Locals(LocUserRole, role)
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, forbiddenMessage)
	}
}

// IsAdmin guards the admin route group.
func IsAdmin(db *gorm.DB) fiber.Handler {
	return RequireRoles(dbRoleLookup(db), "Forbidden: admin only", constants.AdminOnly...)
}

// IsTutor guards tutor-only submission endpoints; feature names the
// guarded surface in the rejection message.
func IsTutor(db *gorm.DB, feature string) fiber.Handler {
	return RequireRoles(dbRoleLookup(db), constants.RoleErrorTutor(feature), constants.RoleTutor)
}

// CallerRole returns the role stored by a passing role guard, if any.
func CallerRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocUserRole).(string)
	return role
}
