package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"pv-leads-backend/config"
	authutils "pv-leads-backend/lib/utils/auth-utils"
	"pv-leads-backend/models"
)

const jwtSecret = "middleware-secret"

func initConf() {
	config.Conf = &config.Configuration{}
	config.Conf.AdminPanelAuth.JWTSecret = jwtSecret
}

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Post("/leads", WithBodyLimit(16), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })

	t.Run(`small body`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/leads", strings.NewReader(`{"name":"a"}`)))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})
	t.Run(`body too large`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/leads", strings.NewReader(strings.Repeat("x", 17))))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
	})
}

func TestErrNotify(t *testing.T) {
	received := make(chan errNotifyPayload, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload errNotifyPayload
		_ = json.NewDecoder(r.Body).Decode(&payload)
		received <- payload
	}))
	defer server.Close()

	app := fiber.New()
	app.Use(ErrNotify(server.URL))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/cities/:slug/page", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "base indisponible"})
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ok", nil))
	require.Nil(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/cities/lyon/page", nil))
	require.Nil(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	select {
	case payload := <-received:
		require.Equal(t, fiber.StatusInternalServerError, payload.Code)
		require.Equal(t, "/cities/:slug/page", payload.Path)
		require.Equal(t, "base indisponible", payload.Error)
	case <-time.After(2 * time.Second):
		t.Fatal("notification d'erreur non reçue")
	}
}

func TestAdminPanelAuthorization(t *testing.T) {
	initConf()
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app := fiber.New()
	app.Get("/leads", AdminPanelAuthorizationRequired(), ok)
	app.Get("/users", AdminPanelAuthorizationRequired(), SuperAdminRole(), ok)
	app.Get("/ws", AdminPanelWsAuthorizationRequired(), ok)

	admin, err := authutils.GetToken("u1", "Jeanne Martin", models.UserRoleAdmin, jwtSecret, 3600)
	require.Nil(t, err)
	superAdmin, err := authutils.GetToken("u2", "Paul Durand", models.UserRoleSuperAdmin, jwtSecret, 3600)
	require.Nil(t, err)

	call := func(path, token string) int {
		req := httptest.NewRequest(fiber.MethodGet, path, nil)
		if token != "" {
			req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		}
		resp, err := app.Test(req)
		require.Nil(t, err)
		return resp.StatusCode
	}

	t.Run(`header token`, func(t *testing.T) {
		require.Equal(t, fiber.StatusUnauthorized, call("/leads", ""))
		require.Equal(t, fiber.StatusOK, call("/leads", admin))
	})
	t.Run(`query token only for websocket`, func(t *testing.T) {
		require.Equal(t, fiber.StatusUnauthorized, call("/leads?token="+admin, ""))
		require.Equal(t, fiber.StatusOK, call("/ws?token="+admin, ""))
	})
	t.Run(`super admin role`, func(t *testing.T) {
		require.Equal(t, fiber.StatusForbidden, call("/users", admin))
		require.Equal(t, fiber.StatusOK, call("/users", superAdmin))
	})
}
