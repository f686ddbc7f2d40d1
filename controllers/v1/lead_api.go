package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"pv-leads-backend/controllers"
	leadhandler "pv-leads-backend/lib/lead"
	"pv-leads-backend/middleware"
	apimodels "pv-leads-backend/models/api"
	leadapimodels "pv-leads-backend/models/api/lead"
)

type leadApiController struct {
	controllers.BaseAPIController
}

func InitLeadApiRouters(app *fiber.App) {
	controller := leadApiController{}
	lead := fiber.New()
	app.Mount("/lead", lead)
	lead.Use(middleware.AdminPanelAuthorizationRequired())
	lead.Post("list", controller.list)
	lead.Post("export", controller.exportXlsx)
	lead.Get(":id", controller.get)
	lead.Get(":id/pdf", controller.exportPdf)
	lead.Put(":id/status", controller.updateStatus)
	lead.Delete(":id", controller.delete)
}

// @Summary Liste des demandes
// @Tags Admin. Demandes
// @Description Liste paginée, les plus récentes d'abord
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 leadapimodels.LeadFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]leadapimodels.LeadView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/lead/list [post]
func (c *leadApiController) list(ctx *fiber.Ctx) error {
	var payload leadapimodels.LeadFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}

	list, rowCount, err := leadhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur de récupération des demandes")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Détail d'une demande
// @Tags Admin. Demandes
// @Description Détail d'une demande
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de la demande"
// @Success 200 {object} apimodels.Response{data=leadapimodels.LeadView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/lead/{id} [get]
func (c *leadApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}

	resp, err := leadhandler.Instance.Get(id)
	if err != nil {
		return c.sendLeadError(ctx, err, "Erreur de récupération de la demande")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Changement de statut
// @Tags Admin. Demandes
// @Description nouveau, contacté, qualifié, converti ou perdu
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de la demande"
// @Param	body body	 leadapimodels.StatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/lead/{id}/status [put]
func (c *leadApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload leadapimodels.StatusRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}

	if err = leadhandler.Instance.UpdateStatus(id, payload.Status); err != nil {
		return c.sendLeadError(ctx, err, "Erreur de changement de statut de la demande")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Suppression d'une demande
// @Tags Admin. Demandes
// @Description Suppression d'une demande
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de la demande"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/lead/{id} [delete]
func (c *leadApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}

	if err = leadhandler.Instance.Delete(id); err != nil {
		return c.sendLeadError(ctx, err, "Erreur de suppression de la demande")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Export Excel
// @Tags Admin. Demandes
// @Description Export des demandes filtrées au format xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 leadapimodels.LeadFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/lead/export [post]
func (c *leadApiController) exportXlsx(ctx *fiber.Ctx) error {
	var payload leadapimodels.LeadFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}

	data, err := leadhandler.Instance.ExportXlsx(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur d'export des demandes")
	}
	fileName := fmt.Sprintf("demandes-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Fiche PDF
// @Tags Admin. Demandes
// @Description Fiche de la demande au format pdf
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID de la demande"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/lead/{id}/pdf [get]
func (c *leadApiController) exportPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}

	body, err := leadhandler.Instance.ExportPdf(id)
	if err != nil {
		return c.sendLeadError(ctx, err, "Erreur de génération de la fiche pdf")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `inline; filename="demande-`+id+`.pdf"`)
	return ctx.Send(body)
}

func (c *leadApiController) sendLeadError(ctx *fiber.Ctx, err error, msg string) error {
	if errors.Is(err, leadhandler.ErrLeadNotFound) {
		return c.SendNotFound(ctx, err)
	}
	return c.SendError(ctx, c.GetLogger(ctx), err, msg)
}
