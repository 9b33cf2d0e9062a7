// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "studyhub_backend/internals/features/users/user/controller"
	rateLimiter "studyhub_backend/internals/middlewares"
)

func UserPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	users := r.Group("/users")
	users.Post("/", rateLimiter.RegisterRateLimiter(), ctl.Register)
	users.Get("/by-email/:email", ctl.ByEmail)
}

func UserUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	users := r.Group("/users")
	users.Get("/me", ctl.Me)
}

func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	users := r.Group("/users")
	users.Get("/", ctl.List)
	users.Patch("/:id/role", ctl.UpdateRole)
	users.Delete("/:id", ctl.Delete)
}
