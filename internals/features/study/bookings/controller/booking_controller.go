// file: internals/features/study/bookings/controller/booking_controller.go
package controller

import (
	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "studyhub_backend/internals/features/study/bookings/dto"
	repo "studyhub_backend/internals/features/study/bookings/repository"
	"studyhub_backend/internals/features/study/bookings/service"
	sessionRepo "studyhub_backend/internals/features/study/sessions/repository"
	helper "studyhub_backend/internals/helpers"
	authmw "studyhub_backend/internals/middlewares/auth"
)

type BookingController struct {
	Repo      *repo.BookingRepository
	Service   *service.BookingService
	Validator *validator.Validate
}

func NewBookingController(db *gorm.DB) *BookingController {
	bookings := repo.NewBookingRepository(db)
	return &BookingController{
		Repo:      bookings,
		Service:   service.NewBookingService(sessionRepo.NewSessionRepository(db), bookings),
		Validator: validator.New(),
	}
}

// Create books the caller onto an approved session.
func (ctl *BookingController) Create(c *fiber.Ctx) error {
	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	sessionID, err := helper.ParseUUID(req.BookingSessionID)
	if err != nil {
		return helper.Fail(c, err)
	}

	b, err := ctl.Service.Book(c.UserContext(), authmw.CallerEmail(c), sessionID)
	if err != nil {
		return helper.Fail(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Session booked", b)
}

// ByStudent lists the caller's own bookings; the path email must match
// the verified identity.
func (ctl *BookingController) ByStudent(c *fiber.Ctx) error {
	email := helper.NormalizeEmail(c.Params("email"))
	if email != authmw.CallerEmail(c) {
		return helper.Error(c, fiber.StatusForbidden, "Forbidden: not your bookings")
	}
	bookings, err := ctl.Repo.ByStudent(c.UserContext(), email)
	if err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Bookings fetched", bookings)
}

func (ctl *BookingController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, err)
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.Fail(c, err)
	}
	return helper.Success(c, "Booking deleted", fiber.Map{"booking_id": id})
}
