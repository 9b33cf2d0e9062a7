// file: internals/features/admin/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statsController "studyhub_backend/internals/features/admin/controller"
)

func StatsAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := statsController.NewStatsController(db)

	r.Get("/admin/stats", ctl.AdminStats)
}

func StatsPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := statsController.NewStatsController(db)

	r.Get("/tutors/:email/stats", ctl.TutorStats)
}
