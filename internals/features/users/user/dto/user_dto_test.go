package dto_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub_backend/internals/constants"
	"studyhub_backend/internals/features/users/user/dto"
)

var validate = validator.New()

func TestRegisterUserRequest(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		req := dto.RegisterUserRequest{
			UserName:  "Siti Rahma",
			UserEmail: "siti@studyhub.io",
		}
		require.NoError(t, validate.Struct(req))

		m := req.ToModel()
		assert.Equal(t, "Siti Rahma", m.UserName)
		assert.Equal(t, "siti@studyhub.io", m.UserEmail)
		assert.Nil(t, m.UserPhotoURL)
	})

	t.Run("EmailNormalized", func(t *testing.T) {
		req := dto.RegisterUserRequest{
			UserName:  "  Siti  ",
			UserEmail: "  SITI@StudyHub.IO ",
		}
		m := req.ToModel()
		assert.Equal(t, "Siti", m.UserName)
		assert.Equal(t, "siti@studyhub.io", m.UserEmail)
	})

	t.Run("MissingEmail_Fails", func(t *testing.T) {
		req := dto.RegisterUserRequest{UserName: "Siti"}
		assert.Error(t, validate.Struct(req))
	})

	t.Run("MalformedEmail_Fails", func(t *testing.T) {
		req := dto.RegisterUserRequest{UserName: "Siti", UserEmail: "not-an-email"}
		assert.Error(t, validate.Struct(req))
	})

	t.Run("BlankPhotoURL_DroppedByToModel", func(t *testing.T) {
		blank := "   "
		req := dto.RegisterUserRequest{
			UserName:     "Siti",
			UserEmail:    "siti@studyhub.io",
			UserPhotoURL: &blank,
		}
		assert.Nil(t, req.ToModel().UserPhotoURL)
	})
}

// The role-update DTO and the constants helper are the two layers that
// keep "admin" out of the generic role path; both are pinned here.
func TestUpdateUserRoleRequest(t *testing.T) {
	for _, role := range constants.AssignableRoles {
		req := dto.UpdateUserRoleRequest{UserRole: role}
		assert.NoError(t, validate.Struct(req), "role %q should validate", role)
	}

	for _, role := range []string{constants.RoleAdmin, "superuser", "", "Student"} {
		req := dto.UpdateUserRoleRequest{UserRole: role}
		assert.Error(t, validate.Struct(req), "role %q should be rejected", role)
	}
}

func TestIsAssignableRole(t *testing.T) {
	assert.True(t, constants.IsAssignableRole(constants.RoleStudent))
	assert.True(t, constants.IsAssignableRole(constants.RoleTutor))
	assert.False(t, constants.IsAssignableRole(constants.RoleAdmin))
	assert.False(t, constants.IsAssignableRole("moderator"))
	assert.False(t, constants.IsAssignableRole(""))
}
