package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentRoute "studyhub_backend/internals/features/payments/route"
	"studyhub_backend/internals/features/study/approval"
	bookingRoute "studyhub_backend/internals/features/study/bookings/route"
	materialRoute "studyhub_backend/internals/features/study/materials/route"
	notificationRoute "studyhub_backend/internals/features/study/notifications/route"
	reviewRoute "studyhub_backend/internals/features/study/reviews/route"
	sessionRoute "studyhub_backend/internals/features/study/sessions/route"
	userRoute "studyhub_backend/internals/features/users/user/route"
)

// UserRoutes: authenticated callers (students and tutors).
func UserRoutes(r fiber.Router, db *gorm.DB, engine *approval.Engine) {
	userRoute.UserUserRoutes(r, db)
	sessionRoute.SessionUserRoutes(r, db, engine)
	materialRoute.MaterialUserRoutes(r, db, engine)
	bookingRoute.BookingUserRoutes(r, db)
	reviewRoute.ReviewUserRoutes(r, db)
	notificationRoute.NotificationUserRoutes(r, db)
	paymentRoute.PaymentUserRoutes(r, db)
}
