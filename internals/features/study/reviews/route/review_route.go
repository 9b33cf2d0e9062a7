// file: internals/features/study/reviews/route/review_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reviewController "studyhub_backend/internals/features/study/reviews/controller"
)

func ReviewPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reviewController.NewReviewController(db)

	reviews := r.Group("/reviews")
	reviews.Get("/session/:id", ctl.BySession)
	reviews.Get("/session/:id/summary", ctl.Summary)
}

func ReviewUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reviewController.NewReviewController(db)

	reviews := r.Group("/reviews")
	reviews.Post("/", ctl.Create)
}

func ReviewAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reviewController.NewReviewController(db)

	reviews := r.Group("/reviews")
	reviews.Delete("/:id", ctl.Delete)
}
