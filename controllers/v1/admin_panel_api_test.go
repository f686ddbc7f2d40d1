package apiv1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"pv-leads-backend/config"
	handler "pv-leads-backend/lib/admin-panel"
	adminpanelauthhandler "pv-leads-backend/lib/admin-panel/auth"
	dashboardhandler "pv-leads-backend/lib/admin-panel/dashboard"
	businesshandler "pv-leads-backend/lib/business"
	leadhandler "pv-leads-backend/lib/lead"
	staticpage "pv-leads-backend/lib/static-page"
	authutils "pv-leads-backend/lib/utils/auth-utils"
	"pv-leads-backend/models"
	adminpanelapimodels "pv-leads-backend/models/api/admin-panel"
	authapimodels "pv-leads-backend/models/api/auth"
	leadapimodels "pv-leads-backend/models/api/lead"
	pageapimodels "pv-leads-backend/models/api/page"
)

const (
	jwtSecret = "test-secret"
	leadID    = "5a4d3c2b-1a2b-4c3d-8e9f-0a1b2c3d4e5f"
	userID    = "9f8e7d6c-5b4a-4392-8172-6a5b4c3d2e1f"
)

type fakeAuth struct{}

func (fakeAuth) Login(email, password string) (authapimodels.JWTResponse, error) {
	if email == "admin@example.fr" && password == "motdepasse" {
		return authapimodels.JWTResponse{Token: "token", ExpiresIn: 3600}, nil
	}
	return authapimodels.JWTResponse{}, adminpanelauthhandler.ErrInvalidCredentials
}

type fakeUsers struct {
	handler.Provider
}

func (fakeUsers) List() ([]adminpanelapimodels.UserView, error) {
	return []adminpanelapimodels.UserView{}, nil
}

func (fakeUsers) GetUser(id string) (adminpanelapimodels.UserView, error) {
	return adminpanelapimodels.UserView{}, handler.ErrUserNotFound
}

type fakeDashboard struct{}

func (fakeDashboard) Stats() (adminpanelapimodels.DashboardView, error) {
	return adminpanelapimodels.DashboardView{TotalLeads: 3}, nil
}

type fakeLeads struct {
	leadhandler.Provider
	status models.LeadStatus
}

func (f *fakeLeads) Get(id string) (leadapimodels.LeadView, error) {
	return leadapimodels.LeadView{}, leadhandler.ErrLeadNotFound
}

func (f *fakeLeads) UpdateStatus(id string, status models.LeadStatus) error {
	f.status = status
	return nil
}

func (f *fakeLeads) ExportXlsx(filter leadapimodels.LeadFilter) (*bytes.Buffer, error) {
	return bytes.NewBufferString("xlsx"), nil
}

type fakeBusinesses struct {
	businesshandler.Provider
}

func (fakeBusinesses) Delete(ids []string) (int64, error) {
	return 0, nil
}

type fakePages struct {
	staticpage.Provider
}

func (fakePages) Generate(ctx context.Context, request pageapimodels.GenerateRequest) (pageapimodels.GenerateResponse, error) {
	return pageapimodels.GenerateResponse{}, staticpage.ErrGenerationDisabled
}

func newAdminApp(t *testing.T) (*fiber.App, *fakeLeads) {
	config.Conf = &config.Configuration{}
	config.Conf.AdminPanelAuth.JWTSecret = jwtSecret
	leads := &fakeLeads{}
	adminpanelauthhandler.Instance = fakeAuth{}
	handler.Instance = fakeUsers{}
	dashboardhandler.Instance = fakeDashboard{}
	leadhandler.Instance = leads
	businesshandler.Instance = fakeBusinesses{}
	staticpage.Instance = fakePages{}

	app := fiber.New()
	InitAdminApiRouters(app)
	InitBusinessApiRouters(app)
	InitLeadApiRouters(app)
	InitPageApiRouters(app)
	return app, leads
}

func token(t *testing.T, role models.UserRole) string {
	value, err := authutils.GetToken(userID, "Admin", role, jwtSecret, 3600)
	require.Nil(t, err)
	return "Bearer " + value
}

func call(t *testing.T, app *fiber.App, method, path, auth, body string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if auth != "" {
		req.Header.Set(fiber.HeaderAuthorization, auth)
	}
	resp, err := app.Test(req, -1)
	require.Nil(t, err)
	return resp
}

func TestAdminApi(t *testing.T) {
	app, leads := newAdminApp(t)
	admin := token(t, models.UserRoleAdmin)
	superAdmin := token(t, models.UserRoleSuperAdmin)

	t.Run(`login`, func(t *testing.T) {
		resp := call(t, app, http.MethodPost, "/login", "", `{"email":"admin@example.fr","password":"motdepasse"}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp = call(t, app, http.MethodPost, "/login", "", `{"email":"admin@example.fr","password":"mauvais"}`)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		resp = call(t, app, http.MethodPost, "/login", "", `{"email":"","password":""}`)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`token required`, func(t *testing.T) {
		resp := call(t, app, http.MethodGet, "/dashboard", "", "")
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		resp = call(t, app, http.MethodGet, "/dashboard", "Bearer invalid", "")
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		resp = call(t, app, http.MethodGet, "/dashboard", admin, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var body struct {
			Data adminpanelapimodels.DashboardView `json:"data"`
		}
		require.Nil(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, int64(3), body.Data.TotalLeads)
	})

	t.Run(`users are reserved to super admins`, func(t *testing.T) {
		resp := call(t, app, http.MethodPost, "/user/list", admin, "")
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

		resp = call(t, app, http.MethodPost, "/user/list", superAdmin, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp = call(t, app, http.MethodGet, "/user/get/"+userID, superAdmin, "")
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run(`leads`, func(t *testing.T) {
		resp := call(t, app, http.MethodGet, "/lead/"+leadID, admin, "")
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		resp = call(t, app, http.MethodPut, "/lead/"+leadID+"/status", admin, `{"status":"inconnu"}`)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		resp = call(t, app, http.MethodPut, "/lead/"+leadID+"/status", admin, `{"status":"contacté"}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, models.LeadStatusContacted, leads.status)

		resp = call(t, app, http.MethodPost, "/lead/export", admin, `{}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")
		body, _ := io.ReadAll(resp.Body)
		require.Equal(t, "xlsx", string(body))
	})

	t.Run(`unknown business`, func(t *testing.T) {
		resp := call(t, app, http.MethodDelete, "/business/"+leadID, admin, "")
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run(`generation disabled`, func(t *testing.T) {
		resp := call(t, app, http.MethodPost, "/page/generate", admin, `{"topic":"Aides à l'installation"}`)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		resp = call(t, app, http.MethodPost, "/page/generate", admin, `{"topic":"a"}`)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`unexpected failure`, func(t *testing.T) {
		dashboardhandler.Instance = failingDashboard{}
		defer func() { dashboardhandler.Instance = fakeDashboard{} }()
		resp := call(t, app, http.MethodGet, "/dashboard", admin, "")
		require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

type failingDashboard struct{}

func (failingDashboard) Stats() (adminpanelapimodels.DashboardView, error) {
	return adminpanelapimodels.DashboardView{}, errors.New("db down")
}
