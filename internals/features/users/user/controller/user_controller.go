// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "studyhub_backend/internals/features/users/user/dto"
	repo "studyhub_backend/internals/features/users/user/repository"
	helper "studyhub_backend/internals/helpers"
	"studyhub_backend/internals/helpers/apperr"
	authmw "studyhub_backend/internals/middlewares/auth"
)

type UserController struct {
	Repo      *repo.UserRepository
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		Repo:      repo.NewUserRepository(db),
		Validator: validator.New(),
	}
}

// Register creates a user with the default student role. Registering an
// existing email answers 200 with the existing-user message, matching
// the long-standing client contract.
func (ctl *UserController) Register(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	u := req.ToModel()
	if err := ctl.Repo.Create(c.UserContext(), u); err != nil {
		if apperr.Is(err, apperr.Conflict) {
			return helper.Success(c, "User already exists", nil)
		}
		return helper.Fail(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User registered", u)
}

// Me returns the verified caller's own row.
func (ctl *UserController) Me(c *fiber.Ctx) error {
	u, err := ctl.Repo.ByEmail(c.UserContext(), authmw.CallerEmail(c))
	if err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "User fetched", u)
}

// ByEmail is the public role lookup used by the client shell.
func (ctl *UserController) ByEmail(c *fiber.Ctx) error {
	email := helper.NormalizeEmail(c.Params("email"))
	u, err := ctl.Repo.ByEmail(c.UserContext(), email)
	if err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "User fetched", u)
}

// List is the admin user-management view with ?search= over name/email.
func (ctl *UserController) List(c *fiber.Ctx) error {
	limit, offset := helper.ParseLimitOffset(c)
	users, err := ctl.Repo.Search(c.UserContext(), c.Query("search"), limit, offset)
	if err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Users fetched", users)
}

// UpdateRole assigns student or tutor. Admin can neither be granted nor
// targeted through this path.
func (ctl *UserController) UpdateRole(c *fiber.Ctx) error {
	id, err := helper.ParseUUID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, err)
	}

	var req dto.UpdateUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.Repo.UpdateRole(c.UserContext(), id, req.UserRole); err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Role updated", fiber.Map{"user_id": id, "user_role": req.UserRole})
}

func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, err)
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "User deleted", fiber.Map{"user_id": id})
}
