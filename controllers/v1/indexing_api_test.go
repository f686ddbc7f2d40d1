package apiv1

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"pv-leads-backend/config"
	"pv-leads-backend/lib/indexing"
	"pv-leads-backend/lib/sitemap"
	"pv-leads-backend/models"
	indexingapimodels "pv-leads-backend/models/api/indexing"
)

type fakeIndexing struct {
	enabled bool
	request indexingapimodels.SubmitRequest
}

func (f *fakeIndexing) URLs(kind string) (indexingapimodels.URLList, error) {
	if kind != sitemap.KindCities {
		return indexingapimodels.URLList{}, sitemap.ErrUnknownKind
	}
	return indexingapimodels.URLList{Kind: kind, Count: 1, URLs: []string{"https://solaire.fr/photovoltaique/lyon-69001"}}, nil
}

func (f *fakeIndexing) Status(ctx context.Context) (indexingapimodels.StatusView, error) {
	return indexingapimodels.StatusView{Status: indexingapimodels.StatusDisabled}, nil
}

func (f *fakeIndexing) Submit(ctx context.Context, request indexingapimodels.SubmitRequest) (indexingapimodels.SubmitResponse, error) {
	if !f.enabled {
		return indexingapimodels.SubmitResponse{}, indexing.ErrIndexingDisabled
	}
	f.request = request
	return indexingapimodels.SubmitResponse{ProjectName: "Indexation_2024-05-02", Submitted: len(request.URLs)}, nil
}

func TestIndexingApi(t *testing.T) {
	config.Conf = &config.Configuration{}
	config.Conf.AdminPanelAuth.JWTSecret = jwtSecret
	fake := &fakeIndexing{}
	indexing.Instance = fake
	app := fiber.New()
	InitIndexingApiRouters(app)
	admin := token(t, models.UserRoleAdmin)

	t.Run(`token required`, func(t *testing.T) {
		resp := call(t, app, http.MethodGet, "/indexing/status", "", "")
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run(`urls by kind`, func(t *testing.T) {
		resp := call(t, app, http.MethodGet, "/indexing/urls?kind=cities", admin, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var body struct {
			Data indexingapimodels.URLList `json:"data"`
		}
		require.Nil(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, 1, body.Data.Count)

		resp = call(t, app, http.MethodGet, "/indexing/urls?kind=blog", admin, "")
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`status`, func(t *testing.T) {
		resp := call(t, app, http.MethodGet, "/indexing/status", admin, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var body struct {
			Data indexingapimodels.StatusView `json:"data"`
		}
		require.Nil(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, indexingapimodels.StatusDisabled, body.Data.Status)
	})

	t.Run(`submit`, func(t *testing.T) {
		payload := `{"urls":["https://solaire.fr/photovoltaique/lyon-69001"]}`
		resp := call(t, app, http.MethodPost, "/indexing/submit", admin, payload)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		fake.enabled = true
		resp = call(t, app, http.MethodPost, "/indexing/submit", admin, payload)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Len(t, fake.request.URLs, 1)

		resp = call(t, app, http.MethodPost, "/indexing/submit", admin, `{"urls":["/photovoltaique/lyon-69001"]}`)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
