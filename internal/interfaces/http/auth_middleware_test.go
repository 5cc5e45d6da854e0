package http_test

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "github.com/wattwerk/wattwerk-api/internal/interfaces/http"
	"github.com/wattwerk/wattwerk-api/pkg/jwt"
)

const testSecret = "test-secret-not-for-production"

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func buildTestApp(secret string, roles ...string) *fiber.App {
	app := fiber.New()
	group := app.Group("/api", apihttp.AuthMiddleware(secret))
	if len(roles) > 0 {
		group.Use(apihttp.RequireRole(roles...))
	}
	group.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    apihttp.GetUserID(c),
			"company_id": apihttp.GetCompanyID(c),
			"role":       apihttp.GetRole(c),
		})
	})
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "user-1", "company-1", role, "wattwerk-api", 15)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, token string) *nethttp.Response {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/whoami", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func errorCode(t *testing.T, resp *nethttp.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(body, &parsed))
	return parsed.Code
}

// ─────────────────────────────────────────────
// AuthMiddleware
// ─────────────────────────────────────────────

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := buildTestApp(testSecret)
	resp := doRequest(t, app, "")
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, resp))
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app := buildTestApp(testSecret)
	req := httptest.NewRequest(nethttp.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Token abc123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	app := buildTestApp(testSecret)
	resp := doRequest(t, app, "not.a.jwt")
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	app := buildTestApp("a-different-secret")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "company-1", "admin", "wattwerk-api", -5)
	require.NoError(t, err)

	app := buildTestApp(testSecret)
	resp := doRequest(t, app, token)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

func TestAuthMiddleware_ValidTokenSetsLocals(t *testing.T) {
	app := buildTestApp(testSecret)
	resp := doRequest(t, app, tokenForRole(t, "office"))
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]string
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Equal(t, "user-1", parsed["user_id"])
	assert.Equal(t, "company-1", parsed["company_id"])
	assert.Equal(t, "office", parsed["role"])
}

// ─────────────────────────────────────────────
// RequireRole
// ─────────────────────────────────────────────

func TestRequireRole_AllowsListedRoles(t *testing.T) {
	app := buildTestApp(testSecret, "admin", "office")
	for _, role := range []string{"admin", "office"} {
		resp := doRequest(t, app, tokenForRole(t, role))
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode, "role %s", role)
	}
}

func TestRequireRole_RejectsOtherRoles(t *testing.T) {
	app := buildTestApp(testSecret, "admin", "office")
	resp := doRequest(t, app, tokenForRole(t, "worker"))
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, resp))
}

func TestRequireRole_RejectsEmptyRole(t *testing.T) {
	app := buildTestApp(testSecret, "admin")
	resp := doRequest(t, app, tokenForRole(t, ""))
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)
}

// ─────────────────────────────────────────────
// Token round trip
// ─────────────────────────────────────────────

func TestJWT_GenerateParseRoundTrip(t *testing.T) {
	token, err := jwt.Generate(testSecret, "u1", "c1", "worker", "wattwerk-api", 60)
	require.NoError(t, err)

	userID, companyID, role, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "c1", companyID)
	assert.Equal(t, "worker", role)
}

func TestJWT_ExpiryHonored(t *testing.T) {
	token, err := jwt.Generate(testSecret, "u1", "c1", "worker", "wattwerk-api", 1)
	require.NoError(t, err)

	// still valid well inside the window
	_, _, _, err = jwt.Parse(testSecret, token)
	require.NoError(t, err)

	expired, err := jwt.Generate(testSecret, "u1", "c1", "worker", "wattwerk-api", -1)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, _, _, err = jwt.Parse(testSecret, expired)
	assert.Error(t, err)
}
