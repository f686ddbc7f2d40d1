package dict

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"pv-leads-backend/controllers"
	regionprovider "pv-leads-backend/lib/dicts/region"
	apimodels "pv-leads-backend/models/api"
	dictapimodels "pv-leads-backend/models/api/dict"
)

type regionDictApiController struct {
	controllers.BaseAPIController
}

func InitRegionDictApiRouters(app *fiber.App) {
	controller := regionDictApiController{}
	app.Route("region", func(router fiber.Router) {
		router.Get("", controller.regionList)
		router.Post("", controller.regionCreate)
		router.Put(":id", controller.regionUpdate)
		router.Delete(":id", controller.regionDelete)
	})
}

// @Summary Liste
// @Tags Référentiel. Régions
// @Description Toutes les régions, actives ou non
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.RegionView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dict/region [get]
func (c *regionDictApiController) regionList(ctx *fiber.Ctx) error {
	list, err := regionprovider.Instance.List(false)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération des régions")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Création
// @Tags Référentiel. Régions
// @Description Création
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.RegionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dict/region [post]
func (c *regionDictApiController) regionCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.RegionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, err := regionprovider.Instance.Create(payload)
	if err != nil {
		return c.sendRegionError(ctx, err, "Erreur de création de la région")
	}
	c.FlushPageCache()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Modification
// @Tags Référentiel. Régions
// @Description Modification
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 dictapimodels.RegionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dict/region/{id} [put]
func (c *regionDictApiController) regionUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.RegionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = regionprovider.Instance.Update(id, payload); err != nil {
		return c.sendRegionError(ctx, err, "Erreur de modification de la région")
	}
	c.FlushPageCache()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Suppression
// @Tags Référentiel. Régions
// @Description Suppression
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dict/region/{id} [delete]
func (c *regionDictApiController) regionDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = regionprovider.Instance.Delete(id); err != nil {
		return c.sendRegionError(ctx, err, "Erreur de suppression de la région")
	}
	c.FlushPageCache()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *regionDictApiController) sendRegionError(ctx *fiber.Ctx, err error, msg string) error {
	if errors.Is(err, regionprovider.ErrRegionNotFound) {
		return c.SendNotFound(ctx, err)
	}
	return c.SendError(ctx, c.GetLogger(ctx), err, msg)
}
