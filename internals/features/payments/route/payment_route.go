// file: internals/features/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "studyhub_backend/internals/features/payments/controller"
)

func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db)

	payments := r.Group("/payments")
	payments.Post("/bookings/:id", ctl.CreateBookingPayment)
}
