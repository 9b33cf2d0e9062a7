// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"log"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"studyhub_backend/internals/configs"
	helper "studyhub_backend/internals/helpers"
)

const tokenTTL = time.Hour

type AuthController struct {
	Validator *validator.Validate
}

func NewAuthController() *AuthController {
	return &AuthController{Validator: validator.New()}
}

type tokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// IssueToken signs a short-lived bearer token carrying the email claim.
// Identity itself is established upstream (the client authenticates
// against its identity provider before calling this).
func (ctl *AuthController) IssueToken(c *fiber.Ctx) error {
	var req tokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if configs.JWTSecret == "" {
		log.Println("[ERROR] JWT_SECRET is empty")
		return helper.Error(c, fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"email": helper.NormalizeEmail(req.Email),
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Println("[ERROR] token sign failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.Success(c, "Token issued", fiber.Map{"token": signed})
}
