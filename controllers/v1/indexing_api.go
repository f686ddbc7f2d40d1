package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"pv-leads-backend/controllers"
	"pv-leads-backend/lib/indexing"
	"pv-leads-backend/lib/sitemap"
	"pv-leads-backend/middleware"
	apimodels "pv-leads-backend/models/api"
	indexingapimodels "pv-leads-backend/models/api/indexing"
)

type indexingApiController struct {
	controllers.BaseAPIController
}

func InitIndexingApiRouters(app *fiber.App) {
	controller := indexingApiController{}
	index := fiber.New()
	app.Mount("/indexing", index)
	index.Use(middleware.AdminPanelAuthorizationRequired())
	index.Get("urls", controller.urls)
	index.Get("status", controller.status)
	index.Post("submit", controller.submit)
}

// @Summary URL à indexer
// @Tags Admin. Indexation
// @Description URL publiques d'un type de pages: cities, departments, regions ou pages
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   kind          		query    string  				    	true         "type de pages"
// @Success 200 {object} apimodels.Response{data=indexingapimodels.URLList}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/indexing/urls [get]
func (c *indexingApiController) urls(ctx *fiber.Ctx) error {
	resp, err := indexing.Instance.URLs(ctx.Query("kind"))
	if err != nil {
		if errors.Is(err, sitemap.ErrUnknownKind) {
			return c.SendBadRequest(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération des URL")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Statut de l'indexation
// @Tags Admin. Indexation
// @Description Statut et solde du service d'indexation
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=indexingapimodels.StatusView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/indexing/status [get]
func (c *indexingApiController) status(ctx *fiber.Ctx) error {
	resp, err := indexing.Instance.Status(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de lecture du statut d'indexation")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Envoi à l'indexation
// @Tags Admin. Indexation
// @Description Crée un projet d'indexation avec les URL fournies
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 indexingapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=indexingapimodels.SubmitResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/indexing/submit [post]
func (c *indexingApiController) submit(ctx *fiber.Ctx) error {
	var payload indexingapimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}

	resp, err := indexing.Instance.Submit(ctx.UserContext(), payload)
	if err != nil {
		if errors.Is(err, indexing.ErrIndexingDisabled) {
			return c.SendBadRequest(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur d'envoi à l'indexation")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
