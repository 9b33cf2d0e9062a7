// file: internals/features/study/sessions/route/session_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyhub_backend/internals/features/study/approval"
	sessionController "studyhub_backend/internals/features/study/sessions/controller"
	authmw "studyhub_backend/internals/middlewares/auth"
)

// Public reads: /api/sessions...
func SessionPublicRoutes(r fiber.Router, db *gorm.DB, engine *approval.Engine) {
	ctl := sessionController.NewSessionController(db, engine)

	sessions := r.Group("/sessions")
	sessions.Get("/", ctl.List)
	sessions.Get("/tutor/:email", ctl.ByTutor)
	sessions.Get("/:id", ctl.ByID)
}

// Authenticated tutor actions: /api/u/sessions...
func SessionUserRoutes(r fiber.Router, db *gorm.DB, engine *approval.Engine) {
	ctl := sessionController.NewSessionController(db, engine)

	sessions := r.Group("/sessions")
	sessions.Post("/", authmw.IsTutor(db, "session creation"), ctl.Create)
	// resubmit is guarded by the ownership check in the engine
	sessions.Patch("/:id/resubmit", ctl.Resubmit)
}

// Admin decisions: /api/a/sessions...
func SessionAdminRoutes(r fiber.Router, db *gorm.DB, engine *approval.Engine) {
	ctl := sessionController.NewSessionController(db, engine)

	sessions := r.Group("/sessions")
	sessions.Get("/", ctl.List) // same handler, admins pass ?status=pending
	sessions.Patch("/:id/approve", ctl.Approve)
	sessions.Patch("/:id/reject", ctl.Reject)
	sessions.Delete("/:id", ctl.Delete)
}
