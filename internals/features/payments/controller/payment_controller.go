// file: internals/features/payments/controller/payment_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhub_backend/internals/features/payments/service"
	bookingRepo "studyhub_backend/internals/features/study/bookings/repository"
	sessionRepo "studyhub_backend/internals/features/study/sessions/repository"
	userRepo "studyhub_backend/internals/features/users/user/repository"
	helper "studyhub_backend/internals/helpers"
	authmw "studyhub_backend/internals/middlewares/auth"
)

type PaymentController struct {
	Bookings *bookingRepo.BookingRepository
	Sessions *sessionRepo.SessionRepository
	Users    *userRepo.UserRepository
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		Bookings: bookingRepo.NewBookingRepository(db),
		Sessions: sessionRepo.NewSessionRepository(db),
		Users:    userRepo.NewUserRepository(db),
	}
}

// CreateBookingPayment issues a Midtrans Snap token for the caller's own
// booking, charging the session's registration fee.
func (ctl *PaymentController) CreateBookingPayment(c *fiber.Ctx) error {
	bookingID, err := helper.ParseUUID(c.Params("id"))
	if err != nil {
		return helper.Fail(c, err)
	}

	booking, err := ctl.Bookings.ByID(c.UserContext(), bookingID)
	if err != nil {
		return helper.Fail(c, err)
	}
	if booking.BookingStudentEmail != authmw.CallerEmail(c) {
		return helper.Error(c, fiber.StatusForbidden, "Forbidden: not your booking")
	}

	session, err := ctl.Sessions.ByID(c.UserContext(), booking.BookingSessionID)
	if err != nil {
		return helper.Fail(c, err)
	}
	if session.SessionRegistrationFee <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Session has no registration fee")
	}

	name := booking.BookingStudentEmail
	if u, err := ctl.Users.ByEmail(c.UserContext(), booking.BookingStudentEmail); err == nil {
		name = u.UserName
	}

	token, err := service.GenerateSnapToken(booking.BookingID, int64(session.SessionRegistrationFee), name, booking.BookingStudentEmail)
	if err != nil {
		log.Println("[ERROR] snap token failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create payment")
	}

	return helper.Success(c, "Payment token created", fiber.Map{
		"booking_id": booking.BookingID,
		"amount":     session.SessionRegistrationFee,
		"snap_token": token,
	})
}
