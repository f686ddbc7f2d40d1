package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"pv-leads-backend/controllers"
	handler "pv-leads-backend/lib/admin-panel"
	adminpanelauthhandler "pv-leads-backend/lib/admin-panel/auth"
	dashboardhandler "pv-leads-backend/lib/admin-panel/dashboard"
	"pv-leads-backend/middleware"
	apimodels "pv-leads-backend/models/api"
	adminpanelapimodels "pv-leads-backend/models/api/admin-panel"
	authapimodels "pv-leads-backend/models/api/auth"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App) {
	controller := adminApiController{}
	app.Post("login", controller.login)

	// accessible à tout utilisateur connecté
	dashboard := fiber.New()
	app.Mount("/dashboard", dashboard)
	dashboard.Use(middleware.AdminPanelAuthorizationRequired())
	dashboard.Get("", controller.dashboard)

	// réservé aux super administrateurs
	user := fiber.New()
	app.Mount("/user", user)
	user.Use(middleware.AdminPanelAuthorizationRequired())
	user.Use(middleware.SuperAdminRole())
	user.Get("get/:userID", controller.userGet)
	user.Post("create", controller.userCreate)
	user.Put("update/:userID", controller.userUpdate)
	user.Delete("delete/:userID", controller.userDelete)
	user.Post("list", controller.userList)
}

// @Summary Authentification
// @Tags Admin
// @Description Authentification d'un utilisateur de l'admin
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @router /api/v1/admin_panel/login [post]
func (a *adminApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := a.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := adminpanelauthhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Tableau de bord
// @Tags Admin
// @Description Compteurs des demandes, villes et installateurs
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=adminpanelapimodels.DashboardView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/dashboard [get]
func (a *adminApiController) dashboard(ctx *fiber.Ctx) error {
	resp, err := dashboardhandler.Instance.Stats()
	if err != nil {
		return a.SendError(ctx, a.GetLogger(ctx), err, "Erreur de calcul du tableau de bord")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Création d'un utilisateur
// @Tags Admin. Utilisateurs
// @Description Création d'un utilisateur
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 adminpanelapimodels.User	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/user/create [post]
func (a *adminApiController) userCreate(ctx *fiber.Ctx) error {
	var payload adminpanelapimodels.User
	if err := a.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID, err := handler.Instance.CreateUser(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(userID))
}

// @Summary Modification d'un utilisateur
// @Tags Admin. Utilisateurs
// @Description Modification d'un utilisateur
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   userID          		path    string  				    	true         "user ID"
// @Param	body body	 adminpanelapimodels.UserUpdate	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/user/update/{userID} [put]
func (a *adminApiController) userUpdate(ctx *fiber.Ctx) error {
	userID, err := a.GetUUIDParam(ctx, "userID")
	if err != nil {
		return a.SendBadRequest(ctx, err)
	}
	var payload adminpanelapimodels.UserUpdate
	if err = a.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = handler.Instance.UpdateUser(userID, payload)
	if err != nil {
		return a.sendUserError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Suppression d'un utilisateur
// @Tags Admin. Utilisateurs
// @Description Suppression d'un utilisateur
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   userID          		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/user/delete/{userID} [delete]
func (a *adminApiController) userDelete(ctx *fiber.Ctx) error {
	userID, err := a.GetUUIDParam(ctx, "userID")
	if err != nil {
		return a.SendBadRequest(ctx, err)
	}
	err = handler.Instance.DeleteUser(userID)
	if err != nil {
		return a.sendUserError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Récupération d'un utilisateur
// @Tags Admin. Utilisateurs
// @Description Récupération d'un utilisateur
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   userID          		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.Response{data=adminpanelapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/user/get/{userID} [get]
func (a *adminApiController) userGet(ctx *fiber.Ctx) error {
	userID, err := a.GetUUIDParam(ctx, "userID")
	if err != nil {
		return a.SendBadRequest(ctx, err)
	}

	user, err := handler.Instance.GetUser(userID)
	if err != nil {
		return a.sendUserError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(user))
}

// @Summary Liste des utilisateurs
// @Tags Admin. Utilisateurs
// @Description Liste des utilisateurs
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]adminpanelapimodels.UserView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/user/list [post]
func (a *adminApiController) userList(ctx *fiber.Ctx) error {
	users, err := handler.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(users))
}

func (a *adminApiController) sendUserError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, handler.ErrUserNotFound) {
		return a.SendNotFound(ctx, err)
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
}
