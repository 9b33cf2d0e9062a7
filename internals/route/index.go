// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhub_backend/internals/features/study/approval"
	materialRepo "studyhub_backend/internals/features/study/materials/repository"
	notificationRepo "studyhub_backend/internals/features/study/notifications/repository"
	sessionRepo "studyhub_backend/internals/features/study/sessions/repository"
	authmw "studyhub_backend/internals/middlewares/auth"
	routeDetails "studyhub_backend/internals/route/details"

	rateLimiter "studyhub_backend/internals/middlewares"
)

// SetupRoutes wires every route group. One canonical handler per
// (method, path); the approval engine is shared so all decisions flow
// through the same conditional-update path.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	engine := approval.NewEngine(
		sessionRepo.NewSessionRepository(db),
		materialRepo.NewMaterialRepository(db),
		notificationRepo.NewNotificationRepository(db),
	)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app)

	api := app.Group("/api", rateLimiter.GlobalRateLimiter())

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	routeDetails.PublicRoutes(api, db, engine)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up USER group (Auth)...")
	userGroup := api.Group("/u", authmw.AuthMiddleware())
	routeDetails.UserRoutes(userGroup, db, engine)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + fresh role check)...")
	adminGroup := api.Group("/a", authmw.AuthMiddleware(), authmw.IsAdmin(db))
	routeDetails.AdminRoutes(adminGroup, db, engine)
}
