// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"studyhub_backend/internals/configs"
)

const (
	LocUserEmail = "user_email"
	LocUserRole  = "user_role"
)

// AuthMiddleware verifies the bearer token and stores the caller's email
// in Locals. Two distinct failures by contract: a missing token is
// unauthenticated (401), a present-but-invalid token is forbidden (403).
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized access")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[WARN] token parse failed:", err)
			return fiber.NewError(fiber.StatusForbidden, "Forbidden access")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden access")
		}

		email, _ := claims["email"].(string)
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden access")
		}
		c.Locals(LocUserEmail, email)

		return c.Next()
	}
}

// extractBearerToken reads the token from the Authorization header or
// falls back to the access_token cookie.
func extractBearerToken(c *fiber.Ctx) string {
	const prefix = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(prefix) && strings.HasPrefix(auth, prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return jwt.ErrTokenInvalidClaims
	}
	if time.Now().Add(-leeway).Unix() > int64(exp) {
		return jwt.ErrTokenExpired
	}
	return nil
}

// CallerEmail returns the verified email stored by AuthMiddleware.
func CallerEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(LocUserEmail).(string)
	return email
}
