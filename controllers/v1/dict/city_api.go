package dict

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"pv-leads-backend/controllers"
	cityprovider "pv-leads-backend/lib/dicts/city"
	apimodels "pv-leads-backend/models/api"
	dictapimodels "pv-leads-backend/models/api/dict"
)

type cityDictApiController struct {
	controllers.BaseAPIController
}

func InitCityDictApiRouters(app *fiber.App) {
	controller := cityDictApiController{}
	app.Route("city", func(router fiber.Router) {
		router.Post("find", controller.cityFind)
		router.Post("", controller.cityCreate)
		router.Post("bulk", controller.cityBulkCreate)
		router.Get(":id", controller.cityGet)
		router.Put(":id", controller.cityUpdate)
		router.Delete(":id", controller.cityDelete)
	})
}

// @Summary Récupération par ID
// @Tags Référentiel. Villes
// @Description Récupération par ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.CityView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dict/city/{id} [get]
func (c *cityDictApiController) cityGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := cityprovider.Instance.Get(id)
	if err != nil {
		return c.sendCityError(ctx, err, "Erreur de récupération de la ville")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Recherche par nom
// @Tags Référentiel. Villes
// @Description Liste paginée, filtrée par nom
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.CityFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]dictapimodels.CityView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dict/city/find [post]
func (c *cityDictApiController) cityFind(ctx *fiber.Ctx) error {
	var payload dictapimodels.CityFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, rowCount, err := cityprovider.Instance.Find(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération de la liste des villes")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Création
// @Tags Référentiel. Villes
// @Description Création d'une ville, le slug est calculé s'il est vide
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.CityData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dict/city [post]
func (c *cityDictApiController) cityCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.CityData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, err := cityprovider.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	c.FlushPageCache()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Import en masse
// @Tags Référentiel. Villes
// @Description Les villes déjà présentes sont ignorées, les erreurs sont listées par ligne
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.CityBulkRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=dictapimodels.BulkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @router /api/v1/admin_panel/dict/city/bulk [post]
func (c *cityDictApiController) cityBulkCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.CityBulkRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp := cityprovider.Instance.BulkCreate(payload)
	if resp.Created > 0 {
		c.FlushPageCache()
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Modification
// @Tags Référentiel. Villes
// @Description Modification d'une ville
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 dictapimodels.CityData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dict/city/{id} [put]
func (c *cityDictApiController) cityUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.CityData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = cityprovider.Instance.Update(id, payload); err != nil {
		return c.sendCityError(ctx, err, "Erreur de modification de la ville")
	}
	c.FlushPageCache()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Suppression
// @Tags Référentiel. Villes
// @Description Suppression d'une ville
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dict/city/{id} [delete]
func (c *cityDictApiController) cityDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = cityprovider.Instance.Delete(id); err != nil {
		return c.sendCityError(ctx, err, "Erreur de suppression de la ville")
	}
	c.FlushPageCache()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *cityDictApiController) sendCityError(ctx *fiber.Ctx, err error, msg string) error {
	if errors.Is(err, cityprovider.ErrCityNotFound) {
		return c.SendNotFound(ctx, err)
	}
	return c.SendError(ctx, c.GetLogger(ctx), err, msg)
}
