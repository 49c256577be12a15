package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

func newProtectedApp(t *testing.T, roles ...string) *fiber.App {
	t.Helper()
	app := fiber.New()
	handlers := []fiber.Handler{AuthMiddleware(testSecret)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		id, _ := GetUserID(c)
		role, _ := GetRole(c)
		return c.JSON(fiber.Map{"user_id": id, "role": role})
	})
	app.Get("/protegido", handlers...)
	return app
}

func errorCode(t *testing.T, body io.Reader) string {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp.Code
}

func TestAuthMiddlewareSinToken(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/protegido", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, resp.Body))
}

func TestAuthMiddlewareTokenInvalido(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/protegido", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer no-es-un-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp.Body))
}

func TestAuthMiddlewareFirmaIncorrecta(t *testing.T) {
	app := newProtectedApp(t)

	token, err := jwt.Generate("otro-secreto", 1, entity.RolAdmin, "test", 5)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/protegido", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp.Body))
}

func TestAuthMiddlewareTokenValido(t *testing.T) {
	app := newProtectedApp(t)

	token, err := jwt.Generate(testSecret, 42, entity.RolBodeguero, "test", 5)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/protegido", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		UserID int64  `json:"user_id"`
		Role   string `json:"role"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, 42, body.UserID)
	assert.Equal(t, entity.RolBodeguero, body.Role)
}

func TestRequireRole(t *testing.T) {
	app := newProtectedApp(t, entity.RolAdmin, entity.RolBodeguero)

	// rol permitido
	token, err := jwt.Generate(testSecret, 1, entity.RolBodeguero, "test", 5)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodGet, "/protegido", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// rol sin permiso
	token, err = jwt.Generate(testSecret, 2, entity.RolVendedor, "test", 5)
	require.NoError(t, err)
	req = httptest.NewRequest(fiber.MethodGet, "/protegido", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, resp.Body))
}

func TestRequireRoleSinRol(t *testing.T) {
	app := newProtectedApp(t, entity.RolAdmin)

	token, err := jwt.Generate(testSecret, 3, "", "test", 5)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/protegido", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "MISSING_ROLE", errorCode(t, resp.Body))
}
