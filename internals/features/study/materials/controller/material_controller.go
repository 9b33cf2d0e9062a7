// file: internals/features/study/materials/controller/material_controller.go
package controller

import (
	"github.com/google/uuid"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhub_backend/internals/constants"
	"studyhub_backend/internals/features/study/approval"
	dto "studyhub_backend/internals/features/study/materials/dto"
	repo "studyhub_backend/internals/features/study/materials/repository"
	helper "studyhub_backend/internals/helpers"
	authmw "studyhub_backend/internals/middlewares/auth"
)

type MaterialController struct {
	Repo      *repo.MaterialRepository
	Engine    *approval.Engine
	Validator *validator.Validate
}

func NewMaterialController(db *gorm.DB, engine *approval.Engine) *MaterialController {
	return &MaterialController{
		Repo:      repo.NewMaterialRepository(db),
		Engine:    engine,
		Validator: validator.New(),
	}
}

func actorFrom(c *fiber.Ctx) approval.Actor {
	return approval.Actor{
		Email: authmw.CallerEmail(c),
		Role:  authmw.CallerRole(c),
	}
}

// Create registers a material; the blob itself lives in external file
// storage, only its URL is persisted here.
func (ctl *MaterialController) Create(c *fiber.Ctx) error {
	var req dto.CreateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	sessionID, err := helper.ParseUUID(req.MaterialSessionID)
	if err != nil {
		return helper.Fail(c, err)
	}

	m := req.ToModel(sessionID, authmw.CallerEmail(c))
	if err := ctl.Repo.Create(c.UserContext(), m); err != nil {
		return helper.Fail(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Material created successfully (pending approval)", m)
}

// List filters by ?session_id= and ?status= (approved when omitted).
func (ctl *MaterialController) List(c *fiber.Ctx) error {
	status := c.Query("status", constants.StatusApproved)
	if !constants.IsApprovalStatus(status) {
		return helper.Error(c, fiber.StatusBadRequest, "Unknown status filter")
	}

	sessionID := uuid.Nil
	if raw := c.Query("session_id"); raw != "" {
		id, err := helper.ParseUUID(raw)
		if err != nil {
			return helper.Fail(c, err)
		}
		sessionID = id
	}

	limit, offset := helper.ParseLimitOffset(c)
	materials, err := ctl.Repo.List(c.UserContext(), sessionID, status, limit, offset)
	if err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Materials fetched", materials)
}

func (ctl *MaterialController) ByTutor(c *fiber.Ctx) error {
	email := helper.NormalizeEmail(c.Params("email"))
	materials, err := ctl.Repo.ByTutor(c.UserContext(), email)
	if err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Tutor materials fetched", materials)
}

func (ctl *MaterialController) Approve(c *fiber.Ctx) error {
	id, err := helper.ParseUUID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, err)
	}
	if err := ctl.Engine.ApproveMaterial(c.UserContext(), actorFrom(c), id); err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Material approved", fiber.Map{"material_id": id})
}

func (ctl *MaterialController) Reject(c *fiber.Ctx) error {
	id, err := helper.ParseUUID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, err)
	}
	if err := ctl.Engine.RejectMaterial(c.UserContext(), actorFrom(c), id); err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Material rejected", fiber.Map{"material_id": id})
}

func (ctl *MaterialController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, err)
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Material deleted", fiber.Map{"material_id": id})
}
