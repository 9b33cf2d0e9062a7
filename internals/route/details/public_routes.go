package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "studyhub_backend/internals/features/admin/route"
	"studyhub_backend/internals/features/study/approval"
	materialRoute "studyhub_backend/internals/features/study/materials/route"
	reviewRoute "studyhub_backend/internals/features/study/reviews/route"
	sessionRoute "studyhub_backend/internals/features/study/sessions/route"
	userRoute "studyhub_backend/internals/features/users/user/route"
)

// PublicRoutes: unauthenticated reads plus registration.
func PublicRoutes(r fiber.Router, db *gorm.DB, engine *approval.Engine) {
	userRoute.UserPublicRoutes(r, db)
	sessionRoute.SessionPublicRoutes(r, db, engine)
	materialRoute.MaterialPublicRoutes(r, db, engine)
	reviewRoute.ReviewPublicRoutes(r, db)
	adminRoute.StatsPublicRoutes(r, db)
}
