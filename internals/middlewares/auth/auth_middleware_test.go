package auth_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub_backend/internals/configs"
	helper "studyhub_backend/internals/helpers"
	"studyhub_backend/internals/middlewares/auth"
)

const testSecret = "test-secret"

func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()
	configs.JWTSecret = testSecret

	app := fiber.New()
	app.Use(auth.AuthMiddleware())
	app.Get("/me", func(c *fiber.Ctx) error {
		return c.SendString(auth.CallerEmail(c))
	})
	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func doRequest(t *testing.T, app *fiber.App, decorate func(*http.Request)) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if decorate != nil {
		decorate(req)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

// Missing token is 401, a present-but-bad token is 403. The split
// matters to clients: 401 means "log in", 403 means "token rejected".
func TestAuthMiddleware(t *testing.T) {
	app := newProtectedApp(t)

	t.Run("MissingToken_401", func(t *testing.T) {
		resp := doRequest(t, app, nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("MalformedToken_403", func(t *testing.T) {
		resp := doRequest(t, app, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer not.a.jwt")
		})
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("WrongSignature_403", func(t *testing.T) {
		token := signToken(t, "some-other-secret", jwt.MapClaims{
			"email": "siti@studyhub.io",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		resp := doRequest(t, app, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
		})
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("ExpiredToken_403", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"email": "siti@studyhub.io",
			"exp":   time.Now().Add(-time.Hour).Unix(),
		})
		resp := doRequest(t, app, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
		})
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("NoEmailClaim_403", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		resp := doRequest(t, app, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
		})
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("ValidToken_EmailInLocals", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"email": "SITI@StudyHub.IO",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		resp := doRequest(t, app, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "siti@studyhub.io", string(body))
	})

	// With the app-level error handler installed, middleware rejections
	// carry the same {code, status, message} envelope as controller
	// failures instead of Fiber's plain-text default.
	t.Run("RejectionUsesEnvelope", func(t *testing.T) {
		configs.JWTSecret = testSecret
		app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
		app.Use(auth.AuthMiddleware())
		app.Get("/me", func(c *fiber.Ctx) error {
			return c.SendString(auth.CallerEmail(c))
		})

		resp := doRequest(t, app, nil)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		var body struct {
			Code    int    `json:"code"`
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, fiber.StatusUnauthorized, body.Code)
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, "Unauthorized access", body.Message)
	})

	t.Run("CookieFallback", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"email": "siti@studyhub.io",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		resp := doRequest(t, app, func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
