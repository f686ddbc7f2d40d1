package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"pv-leads-backend/controllers"
	staticpage "pv-leads-backend/lib/static-page"
	"pv-leads-backend/middleware"
	apimodels "pv-leads-backend/models/api"
	pageapimodels "pv-leads-backend/models/api/page"
)

type pageApiController struct {
	controllers.BaseAPIController
}

func InitPageApiRouters(app *fiber.App) {
	controller := pageApiController{}
	page := fiber.New()
	app.Mount("/page", page)
	page.Use(middleware.AdminPanelAuthorizationRequired())
	page.Post("list", controller.list)
	page.Post("generate", controller.generate)
	page.Post("", controller.create)
	page.Get(":id", controller.get)
	page.Put(":id", controller.update)
	page.Delete(":id", controller.delete)
}

// @Summary Liste des pages
// @Tags Admin. Pages
// @Description Liste paginée, filtres par catégorie et publication
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 pageapimodels.PageFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]pageapimodels.PageView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/page/list [post]
func (c *pageApiController) list(ctx *fiber.Ctx) error {
	var payload pageapimodels.PageFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}

	list, rowCount, err := staticpage.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération des pages")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Détail d'une page
// @Tags Admin. Pages
// @Description Détail d'une page, publiée ou non
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de la page"
// @Success 200 {object} apimodels.Response{data=pageapimodels.PageView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/page/{id} [get]
func (c *pageApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}

	resp, err := staticpage.Instance.Get(id)
	if err != nil {
		return c.sendPageError(ctx, err, "Erreur de récupération de la page")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Création d'une page
// @Tags Admin. Pages
// @Description Le slug est calculé depuis le titre s'il est vide
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 pageapimodels.PageData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/page [post]
func (c *pageApiController) create(ctx *fiber.Ctx) error {
	var payload pageapimodels.PageData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}

	id, err := staticpage.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Modification d'une page
// @Tags Admin. Pages
// @Description Modification d'une page
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de la page"
// @Param	body body	 pageapimodels.PageData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/page/{id} [put]
func (c *pageApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload pageapimodels.PageData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}

	if err = staticpage.Instance.Update(id, payload); err != nil {
		return c.sendPageError(ctx, err, "Erreur de modification de la page")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Suppression d'une page
// @Tags Admin. Pages
// @Description Suppression d'une page
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de la page"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/page/{id} [delete]
func (c *pageApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}

	if err = staticpage.Instance.Delete(id); err != nil {
		return c.sendPageError(ctx, err, "Erreur de suppression de la page")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Génération de contenu
// @Tags Admin. Pages
// @Description Brouillon de contenu généré par YandexGPT, à relire avant publication
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 pageapimodels.GenerateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=pageapimodels.GenerateResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/page/generate [post]
func (c *pageApiController) generate(ctx *fiber.Ctx) error {
	var payload pageapimodels.GenerateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}

	resp, err := staticpage.Instance.Generate(ctx.UserContext(), payload)
	if err != nil {
		if errors.Is(err, staticpage.ErrGenerationDisabled) {
			return c.SendBadRequest(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de génération du contenu")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

func (c *pageApiController) sendPageError(ctx *fiber.Ctx, err error, msg string) error {
	if errors.Is(err, staticpage.ErrPageNotFound) {
		return c.SendNotFound(ctx, err)
	}
	return c.SendError(ctx, c.GetLogger(ctx), err, msg)
}
