package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"pv-leads-backend/controllers"
	businesshandler "pv-leads-backend/lib/business"
	"pv-leads-backend/middleware"
	apimodels "pv-leads-backend/models/api"
	businessapimodels "pv-leads-backend/models/api/business"
)

type businessApiController struct {
	controllers.BaseAPIController
}

func InitBusinessApiRouters(app *fiber.App) {
	controller := businessApiController{}
	business := fiber.New()
	app.Mount("/business", business)
	business.Use(middleware.AdminPanelAuthorizationRequired())
	business.Post("list", controller.list)
	business.Post("import", controller.importList)
	business.Put(":id/verify", controller.verify)
	business.Delete(":id", controller.delete)
	business.Post("delete", controller.bulkDelete)
}

// @Summary Liste des installateurs
// @Tags Admin. Installateurs
// @Description Liste paginée, filtres par texte, ville, import et vérification
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 businessapimodels.BusinessFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]businessapimodels.BusinessView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/business/list [post]
func (c *businessApiController) list(ctx *fiber.Ctx) error {
	var payload businessapimodels.BusinessFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}

	list, rowCount, err := businesshandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération des installateurs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Import des installateurs
// @Tags Admin. Installateurs
// @Description Import de fiches collectées, mise à jour si la fiche existe déjà
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 businessapimodels.BusinessImportRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=dictapimodels.BulkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @router /api/v1/admin_panel/business/import [post]
func (c *businessApiController) importList(ctx *fiber.Ctx) error {
	var payload businessapimodels.BusinessImportRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}

	resp := businesshandler.Instance.Import(payload)
	c.FlushPageCache()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Vérification d'un installateur
// @Tags Admin. Installateurs
// @Description Marque la fiche comme vérifiée ou non, le score qualité est recalculé
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de l'installateur"
// @Param	body body	 businessapimodels.VerifyRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/business/{id}/verify [put]
func (c *businessApiController) verify(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload businessapimodels.VerifyRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}

	if err = businesshandler.Instance.SetVerified(id, payload.Verified); err != nil {
		if errors.Is(err, businesshandler.ErrBusinessNotFound) {
			return c.SendNotFound(ctx, err)
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de vérification de l'installateur")
	}
	c.FlushPageCache()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Suppression d'un installateur
// @Tags Admin. Installateurs
// @Description Suppression d'un installateur
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de l'installateur"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/business/{id} [delete]
func (c *businessApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}

	count, err := businesshandler.Instance.Delete([]string{id})
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de suppression de l'installateur")
	}
	if count == 0 {
		return c.SendNotFound(ctx, businesshandler.ErrBusinessNotFound)
	}
	c.FlushPageCache()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Suppression en masse
// @Tags Admin. Installateurs
// @Description Supprime les installateurs sélectionnés, renvoie le nombre supprimé
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 businessapimodels.BusinessIDs	true	"request body"
// @Success 200 {object} apimodels.Response{data=int64}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/business/delete [post]
func (c *businessApiController) bulkDelete(ctx *fiber.Ctx) error {
	var payload businessapimodels.BusinessIDs
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}

	count, err := businesshandler.Instance.Delete(payload.IDs)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de suppression des installateurs")
	}
	c.FlushPageCache()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(count))
}
