package ws

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	wsclient "pv-leads-backend/lib/ws/client"
	connectionhub "pv-leads-backend/lib/ws/hub/connection-hub"
	authutils "pv-leads-backend/lib/utils/auth-utils"
	"pv-leads-backend/middleware"
)

// InitWs expects the admin token in the Authorization header or the "token" query param.
func InitWs(app *fiber.App) {
	app.Use(middleware.AdminPanelWsAuthorizationRequired())
	app.Use("", func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		ctx.Locals("userID", authutils.GetUserID(ctx))
		return ctx.Next()
	})
	app.Get("/", websocket.New(leadFeedHandler))
}

// @Summary Flux des nouvelles demandes
// @Tags Admin. Websocket
// @Description Un message lead_created est poussé à chaque nouvelle demande
// @Param	token	query	string	true	"Authorization token"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 401
// @Failure 426
// @router /api/v1/admin_panel/ws [get]
func leadFeedHandler(c *websocket.Conn) {
	userID, _ := c.Locals("userID").(string)
	client := wsclient.NewClient(userID, c)
	connectionhub.Instance.AddClient(userID, c)
	defer connectionhub.Instance.DeleteClient(userID, c)
	client.Dispatch()
}
