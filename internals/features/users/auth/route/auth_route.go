// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	authController "studyhub_backend/internals/features/users/auth/controller"
	rateLimiter "studyhub_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App) {
	ctl := authController.NewAuthController()

	// Kept at the root for compatibility with the original client.
	app.Post("/jwt", rateLimiter.TokenRateLimiter(), ctl.IssueToken)
}
