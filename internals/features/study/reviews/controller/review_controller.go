// file: internals/features/study/reviews/controller/review_controller.go
package controller

import (
	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "studyhub_backend/internals/features/study/reviews/dto"
	repo "studyhub_backend/internals/features/study/reviews/repository"
	helper "studyhub_backend/internals/helpers"
	authmw "studyhub_backend/internals/middlewares/auth"
)

type ReviewController struct {
	Repo      *repo.ReviewRepository
	Validator *validator.Validate
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{
		Repo:      repo.NewReviewRepository(db),
		Validator: validator.New(),
	}
}

// Create stores a review. No uniqueness per (session, student): repeat
// reviews are allowed in this design.
func (ctl *ReviewController) Create(c *fiber.Ctx) error {
	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	sessionID, err := helper.ParseUUID(req.ReviewSessionID)
	if err != nil {
		return helper.Fail(c, err)
	}

	rv := req.ToModel(sessionID, authmw.CallerEmail(c))
	if err := ctl.Repo.Create(c.UserContext(), rv); err != nil {
		return helper.Fail(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Review created", rv)
}

func (ctl *ReviewController) BySession(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, err)
	}
	limit, offset := helper.ParseLimitOffset(c)
	reviews, err := ctl.Repo.BySession(c.UserContext(), sessionID, limit, offset)
	if err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Reviews fetched", reviews)
}

func (ctl *ReviewController) Summary(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, err)
	}
	count, avg, err := ctl.Repo.Summary(c.UserContext(), sessionID)
	if err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Review summary fetched", dto.ReviewSummaryResponse{
		ReviewCount:   count,
		AverageRating: avg,
	})
}

func (ctl *ReviewController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, err)
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Review deleted", fiber.Map{"review_id": id})
}
