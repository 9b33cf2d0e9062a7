// file: internals/features/study/sessions/controller/session_controller.go
package controller

import (
	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhub_backend/internals/constants"
	"studyhub_backend/internals/features/study/approval"
	dto "studyhub_backend/internals/features/study/sessions/dto"
	repo "studyhub_backend/internals/features/study/sessions/repository"
	helper "studyhub_backend/internals/helpers"
	authmw "studyhub_backend/internals/middlewares/auth"
)

type SessionController struct {
	Repo      *repo.SessionRepository
	Engine    *approval.Engine
	Validator *validator.Validate
}

func NewSessionController(db *gorm.DB, engine *approval.Engine) *SessionController {
	return &SessionController{
		Repo:      repo.NewSessionRepository(db),
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

/* ==============================
   Tutor-facing
============================== */

// Create registers a new session; it always starts pending.
func (ctl *SessionController) Create(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	s := req.ToModel(authmw.CallerEmail(c))
	if err := ctl.Repo.Create(c.UserContext(), s); err != nil {
		return helper.Fail(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Session created successfully (pending approval)", s)
}

// Resubmit moves the caller's rejected session back to pending.
func (ctl *SessionController) Resubmit(c *fiber.Ctx) error {
	id, err := helper.ParseUUID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, err)
	}
	if err := ctl.Engine.ResubmitSession(c.UserContext(), actorFrom(c), id); err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Session resubmitted for approval", fiber.Map{"session_id": id})
}

/* ==============================
   Public reads
============================== */

// List returns sessions filtered by ?status= (approved when omitted, the
// student-facing default).
func (ctl *SessionController) List(c *fiber.Ctx) error {
	status := c.Query("status", constants.StatusApproved)
	if !constants.IsApprovalStatus(status) {
		return helper.Error(c, fiber.StatusBadRequest, "Unknown status filter")
	}
	limit, offset := helper.ParseLimitOffset(c)

	sessions, err := ctl.Repo.List(c.UserContext(), status, limit, offset)
	if err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Sessions fetched", sessions)
}

func (ctl *SessionController) ByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, err)
	}
	s, err := ctl.Repo.ByID(c.UserContext(), id)
	if err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Session fetched", s)
}

func (ctl *SessionController) ByTutor(c *fiber.Ctx) error {
	email := helper.NormalizeEmail(c.Params("email"))
	sessions, err := ctl.Repo.ByTutor(c.UserContext(), email)
	if err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Tutor sessions fetched", sessions)
}

/* ==============================
   Admin decisions
============================== */

// Approve sets status approved and the registration fee (default 0).
func (ctl *SessionController) Approve(c *fiber.Ctx) error {
	id, err := helper.ParseUUID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, err)
	}

	var req dto.ApproveSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := ctl.Validator.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	if err := ctl.Engine.ApproveSession(c.UserContext(), actorFrom(c), id, req.SessionRegistrationFee); err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Session approved", fiber.Map{
		"session_id":       id,
		"registration_fee": req.SessionRegistrationFee,
	})
}

func (ctl *SessionController) Reject(c *fiber.Ctx) error {
	id, err := helper.ParseUUID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, err)
	}
	if err := ctl.Engine.RejectSession(c.UserContext(), actorFrom(c), id); err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Session rejected", fiber.Map{"session_id": id})
}

// Delete removes the session. Dependent materials, bookings and reviews
// are left orphaned; there is no cascade (see DESIGN.md).
func (ctl *SessionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, err)
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Session deleted", fiber.Map{"session_id": id})
}
