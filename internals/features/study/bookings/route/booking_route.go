// file: internals/features/study/bookings/route/booking_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingController "studyhub_backend/internals/features/study/bookings/controller"
)

func BookingUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := bookingController.NewBookingController(db)

	bookings := r.Group("/bookings")
	bookings.Post("/", ctl.Create)
	bookings.Get("/student/:email", ctl.ByStudent)
}

func BookingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := bookingController.NewBookingController(db)

	bookings := r.Group("/bookings")
	bookings.Delete("/:id", ctl.Delete)
}
