package public

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	citypage "pv-leads-backend/lib/city-page"
	cityprovider "pv-leads-backend/lib/dicts/city"
	internallinking "pv-leads-backend/lib/internal-linking"
	leadhandler "pv-leads-backend/lib/lead"
	"pv-leads-backend/lib/sitemap"
	staticpage "pv-leads-backend/lib/static-page"
	citypageapimodels "pv-leads-backend/models/api/citypage"
	dictapimodels "pv-leads-backend/models/api/dict"
	leadapimodels "pv-leads-backend/models/api/lead"
	pageapimodels "pv-leads-backend/models/api/page"
	dbmodels "pv-leads-backend/models/db"
)

const cityID = "0b0f3b8e-57c3-4c1f-8d7c-2f5f2f1e9a10"

type response struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, response) {
	resp, err := app.Test(req, -1)
	require.Nil(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	var result response
	if strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.Nil(t, json.Unmarshal(body, &result))
	}
	return resp.StatusCode, result
}

type fakeCities struct {
	cityprovider.Provider
}

func (f fakeCities) List() ([]dictapimodels.CityShortView, error) {
	return []dictapimodels.CityShortView{{ID: cityID, Name: "Lyon", Slug: "lyon-69001"}}, nil
}

func (f fakeCities) Search(query string) []dictapimodels.CitySearchView {
	return []dictapimodels.CitySearchView{}
}

type fakePages struct {
	citypage.Provider
}

func (f fakePages) CityPage(slug string) (citypageapimodels.CityPageView, error) {
	switch slug {
	case "lyon-69001":
		return citypageapimodels.CityPageView{H1: "Installateur Panneaux Solaires à Lyon (69001)"}, nil
	case "broken":
		return citypageapimodels.CityPageView{}, errors.New("db down")
	}
	return citypageapimodels.CityPageView{}, cityprovider.ErrCityNotFound
}

type fakeLinker struct {
	limit int
}

func (f *fakeLinker) RelatedCities(id string, limit int) ([]internallinking.RelatedCity, error) {
	f.limit = limit
	if id != cityID {
		return nil, internallinking.ErrCityNotFound
	}
	city := dbmodels.City{Name: "Villeurbanne", Slug: "villeurbanne-69100"}
	return []internallinking.RelatedCity{{City: city, Reason: internallinking.Nearby{DistanceKm: 4}}}, nil
}

func (f *fakeLinker) RelatedTo(target dbmodels.City, limit int) ([]internallinking.RelatedCity, error) {
	return nil, nil
}

type fakeStaticPages struct {
	staticpage.Provider
}

func (f fakeStaticPages) GetPublished(slug string) (pageapimodels.PageView, error) {
	if slug == "mentions-legales" {
		return pageapimodels.PageView{Slug: slug, Title: "Mentions légales"}, nil
	}
	return pageapimodels.PageView{}, staticpage.ErrPageNotFound
}

func newCatalogApp() (*fiber.App, *fakeLinker) {
	linker := &fakeLinker{}
	cityprovider.Instance = fakeCities{}
	citypage.Instance = fakePages{}
	internallinking.Instance = linker
	staticpage.Instance = fakeStaticPages{}
	app := fiber.New()
	InitCatalogApiRouters(app)
	return app, linker
}

func TestCatalogApi(t *testing.T) {
	app, linker := newCatalogApp()

	t.Run(`city list`, func(t *testing.T) {
		code, resp := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/cities", nil))
		require.Equal(t, fiber.StatusOK, code)
		var list []dictapimodels.CityShortView
		require.Nil(t, json.Unmarshal(resp.Data, &list))
		require.Len(t, list, 1)
		require.Equal(t, "Lyon", list[0].Name)
	})

	t.Run(`search always answers with a list`, func(t *testing.T) {
		code, resp := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/cities/search?q=l", nil))
		require.Equal(t, fiber.StatusOK, code)
		require.Equal(t, "success", resp.Status)
	})

	t.Run(`city page`, func(t *testing.T) {
		code, resp := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/cities/lyon-69001/page", nil))
		require.Equal(t, fiber.StatusOK, code)
		var page citypageapimodels.CityPageView
		require.Nil(t, json.Unmarshal(resp.Data, &page))
		require.Equal(t, "Installateur Panneaux Solaires à Lyon (69001)", page.H1)

		code, _ = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/cities/atlantide/page", nil))
		require.Equal(t, fiber.StatusNotFound, code)

		code, resp = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/cities/broken/page", nil))
		require.Equal(t, fiber.StatusInternalServerError, code)
		require.Equal(t, "fail", resp.Status)
	})

	t.Run(`related cities`, func(t *testing.T) {
		code, resp := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/cities/"+cityID+"/related?limit=3", nil))
		require.Equal(t, fiber.StatusOK, code)
		require.Equal(t, 3, linker.limit)
		var list []citypageapimodels.RelatedCityView
		require.Nil(t, json.Unmarshal(resp.Data, &list))
		require.Len(t, list, 1)
		require.Equal(t, "nearby", list[0].Reason)

		code, _ = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/cities/"+cityID+"/related", nil))
		require.Equal(t, fiber.StatusOK, code)
		require.Equal(t, internallinking.DefaultLimit, linker.limit)

		code, _ = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/cities/"+cityID+"/related?limit=abc", nil))
		require.Equal(t, fiber.StatusBadRequest, code)

		code, _ = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/cities/not-a-uuid/related", nil))
		require.Equal(t, fiber.StatusBadRequest, code)

		code, _ = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/cities/7e1d0c55-1111-4d4e-9a3b-000000000000/related", nil))
		require.Equal(t, fiber.StatusNotFound, code)
	})

	t.Run(`static page`, func(t *testing.T) {
		code, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/pages/mentions-legales", nil))
		require.Equal(t, fiber.StatusOK, code)

		code, _ = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/pages/brouillon", nil))
		require.Equal(t, fiber.StatusNotFound, code)
	})
}

type fakeLeads struct {
	leadhandler.Provider
	tracking leadapimodels.Tracking
	err      error
}

func (f *fakeLeads) Create(request leadapimodels.LeadRequest, tracking leadapimodels.Tracking) (leadapimodels.CreateResponse, error) {
	f.tracking = tracking
	if f.err != nil {
		return leadapimodels.CreateResponse{}, f.err
	}
	return leadapimodels.CreateResponse{ID: cityID, Message: "ok"}, nil
}

func leadRequest() *http.Request {
	body := `{"name":"Jean Dupont","email":"jean@example.fr","phone":"06 12 34 56 78","city_id":"` + cityID + `","postal_code":"69001","project_type":"installation"}`
	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestLeadApi(t *testing.T) {
	limits := LeadLimits{MaxPerWindow: 100, Window: time.Minute, BodyLimit: 4096}

	t.Run(`created with tracking`, func(t *testing.T) {
		leads := &fakeLeads{}
		leadhandler.Instance = leads
		app := fiber.New()
		InitLeadApiRouters(app, limits)

		req := leadRequest()
		req.Header.Set(fiber.HeaderXForwardedFor, "203.0.113.7, 10.0.0.1")
		req.Header.Set(fiber.HeaderUserAgent, "Mozilla/5.0")
		req.Header.Set(fiber.HeaderReferer, "https://www.google.fr/")
		code, resp := doRequest(t, app, req)
		require.Equal(t, fiber.StatusCreated, code)
		var created leadapimodels.CreateResponse
		require.Nil(t, json.Unmarshal(resp.Data, &created))
		require.Equal(t, cityID, created.ID)
		require.Equal(t, "203.0.113.7", leads.tracking.IpAddress)
		require.Equal(t, "Mozilla/5.0", leads.tracking.UserAgent)
		require.Equal(t, "https://www.google.fr/", leads.tracking.Source)

		req = leadRequest()
		req.Header.Set("X-Real-IP", "198.51.100.2")
		code, _ = doRequest(t, app, req)
		require.Equal(t, fiber.StatusCreated, code)
		require.Equal(t, "198.51.100.2", leads.tracking.IpAddress)
	})

	t.Run(`validation details`, func(t *testing.T) {
		leadhandler.Instance = &fakeLeads{err: leadapimodels.ValidationError{
			Details: []leadapimodels.FieldError{{Field: "phone", Message: "Numéro de téléphone invalide"}},
		}}
		app := fiber.New()
		InitLeadApiRouters(app, limits)

		code, resp := doRequest(t, app, leadRequest())
		require.Equal(t, fiber.StatusBadRequest, code)
		var details []leadapimodels.FieldError
		require.Nil(t, json.Unmarshal(resp.Data, &details))
		require.Equal(t, "phone", details[0].Field)
	})

	t.Run(`store failure`, func(t *testing.T) {
		leadhandler.Instance = &fakeLeads{err: errors.New("db down")}
		app := fiber.New()
		InitLeadApiRouters(app, limits)

		code, _ := doRequest(t, app, leadRequest())
		require.Equal(t, fiber.StatusInternalServerError, code)
	})

	t.Run(`rate limited per ip`, func(t *testing.T) {
		leadhandler.Instance = &fakeLeads{}
		app := fiber.New()
		InitLeadApiRouters(app, LeadLimits{MaxPerWindow: 2, Window: time.Minute, BodyLimit: 4096})

		for k := 0; k < 2; k++ {
			req := leadRequest()
			req.Header.Set(fiber.HeaderXForwardedFor, "203.0.113.9")
			code, _ := doRequest(t, app, req)
			require.Equal(t, fiber.StatusCreated, code)
		}
		req := leadRequest()
		req.Header.Set(fiber.HeaderXForwardedFor, "203.0.113.9")
		code, _ := doRequest(t, app, req)
		require.Equal(t, fiber.StatusTooManyRequests, code)

		req = leadRequest()
		req.Header.Set(fiber.HeaderXForwardedFor, "203.0.113.10")
		code, _ = doRequest(t, app, req)
		require.Equal(t, fiber.StatusCreated, code)
	})

	t.Run(`body too large`, func(t *testing.T) {
		leadhandler.Instance = &fakeLeads{}
		app := fiber.New()
		InitLeadApiRouters(app, LeadLimits{MaxPerWindow: 10, Window: time.Minute, BodyLimit: 16})

		code, _ := doRequest(t, app, leadRequest())
		require.Equal(t, fiber.StatusRequestEntityTooLarge, code)
	})
}

type fakeSitemap struct{}

func (fakeSitemap) URLs() []sitemap.URL { return nil }

func (fakeSitemap) KindURLs(kind string) ([]string, error) { return nil, nil }

func (fakeSitemap) Sitemap() ([]byte, error) {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?><urlset></urlset>`), nil
}

func (fakeSitemap) Robots() string { return "User-agent: *\n" }

func TestSitemapRouters(t *testing.T) {
	sitemap.Instance = fakeSitemap{}
	app := fiber.New()
	InitSitemapRouters(app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	require.Nil(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get(fiber.HeaderContentType), "application/xml")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	require.Nil(t, err)
	body, _ := io.ReadAll(resp.Body)
	require.Equal(t, "User-agent: *\n", string(body))
}
