package public

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"pv-leads-backend/controllers"
	citypage "pv-leads-backend/lib/city-page"
	cityprovider "pv-leads-backend/lib/dicts/city"
	departmentprovider "pv-leads-backend/lib/dicts/department"
	regionprovider "pv-leads-backend/lib/dicts/region"
	internallinking "pv-leads-backend/lib/internal-linking"
	staticpage "pv-leads-backend/lib/static-page"
	apimodels "pv-leads-backend/models/api"
	citypageapimodels "pv-leads-backend/models/api/citypage"
)

type catalogApiController struct {
	controllers.BaseAPIController
}

func InitCatalogApiRouters(app *fiber.App) {
	controller := catalogApiController{}
	app.Route("cities", func(router fiber.Router) {
		router.Get("", controller.cityList)
		router.Get("search", controller.citySearch)
		router.Get(":slug/page", controller.cityPage)
		router.Get(":id/related", controller.cityRelated)
	})
	app.Route("departments", func(router fiber.Router) {
		router.Get("", controller.departmentList)
		router.Get(":slug/page", controller.departmentPage)
	})
	app.Route("regions", func(router fiber.Router) {
		router.Get("", controller.regionList)
		router.Get(":slug/page", controller.regionPage)
	})
	app.Get("pages/:slug", controller.staticPage)
}

// @Summary Liste des villes
// @Tags Catalogue
// @Description Liste des villes triée par nom
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.CityShortView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cities [get]
func (c *catalogApiController) cityList(ctx *fiber.Ctx) error {
	list, err := cityprovider.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération des villes")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Recherche de villes
// @Tags Catalogue
// @Description Recherche par nom, 10 villes au plus triées par population
// @Param	q	query	string	true	"texte recherché (2 caractères minimum)"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.CitySearchView}
// @router /api/v1/cities/search [get]
func (c *catalogApiController) citySearch(ctx *fiber.Ctx) error {
	list := cityprovider.Instance.Search(ctx.Query("q"))
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Page d'une ville
// @Tags Catalogue
// @Description Page SEO d'une ville : installateurs, contenu, villes associées
// @Param   slug          		path    string  				    	true         "slug de la ville"
// @Success 200 {object} apimodels.Response{data=citypageapimodels.CityPageView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cities/{slug}/page [get]
func (c *catalogApiController) cityPage(ctx *fiber.Ctx) error {
	page, err := citypage.Instance.CityPage(ctx.Params("slug"))
	if err != nil {
		if errors.Is(err, cityprovider.ErrCityNotFound) {
			return c.SendNotFound(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de composition de la page ville")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(page))
}

// @Summary Villes associées
// @Tags Catalogue
// @Description Villes proches, du même département ou de population similaire
// @Param   id          		path    string  				    	true         "ID de la ville"
// @Param	limit	query	int	false	"nombre maximum (10 par défaut)"
// @Success 200 {object} apimodels.Response{data=[]citypageapimodels.RelatedCityView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cities/{id}/related [get]
func (c *catalogApiController) cityRelated(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	limit := internallinking.DefaultLimit
	if value := ctx.Query("limit"); value != "" {
		limit, err = strconv.Atoi(value)
		if err != nil {
			return c.SendBadRequest(ctx, errors.New("paramètre limit invalide"))
		}
	}
	related, err := internallinking.Instance.RelatedCities(id, limit)
	if err != nil {
		if errors.Is(err, internallinking.ErrCityNotFound) {
			return c.SendNotFound(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération des villes associées")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(citypageapimodels.RelatedCityListConvert(related)))
}

// @Summary Liste des départements
// @Tags Catalogue
// @Description Départements actifs triés par nom
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.DepartmentView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/departments [get]
func (c *catalogApiController) departmentList(ctx *fiber.Ctx) error {
	list, err := departmentprovider.Instance.List(true)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération des départements")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Page d'un département
// @Tags Catalogue
// @Description Département et ses villes
// @Param   slug          		path    string  				    	true         "slug du département"
// @Success 200 {object} apimodels.Response{data=citypageapimodels.DepartmentPageView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/departments/{slug}/page [get]
func (c *catalogApiController) departmentPage(ctx *fiber.Ctx) error {
	page, err := citypage.Instance.DepartmentPage(ctx.Params("slug"))
	if err != nil {
		if errors.Is(err, departmentprovider.ErrDepartmentNotFound) {
			return c.SendNotFound(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de composition de la page département")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(page))
}

// @Summary Liste des régions
// @Tags Catalogue
// @Description Régions actives triées par nom
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.RegionView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/regions [get]
func (c *catalogApiController) regionList(ctx *fiber.Ctx) error {
	list, err := regionprovider.Instance.List(true)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération des régions")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Page d'une région
// @Tags Catalogue
// @Description Région et ses départements
// @Param   slug          		path    string  				    	true         "slug de la région"
// @Success 200 {object} apimodels.Response{data=citypageapimodels.RegionPageView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/regions/{slug}/page [get]
func (c *catalogApiController) regionPage(ctx *fiber.Ctx) error {
	page, err := citypage.Instance.RegionPage(ctx.Params("slug"))
	if err != nil {
		if errors.Is(err, regionprovider.ErrRegionNotFound) {
			return c.SendNotFound(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de composition de la page région")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(page))
}

// @Summary Page statique
// @Tags Catalogue
// @Description Page publiée (mentions légales, guides)
// @Param   slug          		path    string  				    	true         "slug de la page"
// @Success 200 {object} apimodels.Response{data=pageapimodels.PageView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pages/{slug} [get]
func (c *catalogApiController) staticPage(ctx *fiber.Ctx) error {
	page, err := staticpage.Instance.GetPublished(ctx.Params("slug"))
	if err != nil {
		if errors.Is(err, staticpage.ErrPageNotFound) {
			return c.SendNotFound(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération de la page")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(page))
}
