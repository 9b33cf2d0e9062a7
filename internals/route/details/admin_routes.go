package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "studyhub_backend/internals/features/admin/route"
	"studyhub_backend/internals/features/study/approval"
	bookingRoute "studyhub_backend/internals/features/study/bookings/route"
	materialRoute "studyhub_backend/internals/features/study/materials/route"
	reviewRoute "studyhub_backend/internals/features/study/reviews/route"
	sessionRoute "studyhub_backend/internals/features/study/sessions/route"
	userRoute "studyhub_backend/internals/features/users/user/route"
)

// AdminRoutes: every handler behind AuthMiddleware + IsAdmin (role
// re-read fresh from the store on each request).
func AdminRoutes(r fiber.Router, db *gorm.DB, engine *approval.Engine) {
	userRoute.UserAdminRoutes(r, db)
	sessionRoute.SessionAdminRoutes(r, db, engine)
	materialRoute.MaterialAdminRoutes(r, db, engine)
	bookingRoute.BookingAdminRoutes(r, db)
	reviewRoute.ReviewAdminRoutes(r, db)
	adminRoute.StatsAdminRoutes(r, db)
}
