package details

import (
	"github.com/gofiber/fiber/v2"

	authRoute "studyhub_backend/internals/features/users/auth/route"
)

func AuthRoutes(app *fiber.App) {
	authRoute.AuthRoutes(app)
}
