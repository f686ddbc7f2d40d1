package public

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/pkg/errors"
	"pv-leads-backend/controllers"
	leadhandler "pv-leads-backend/lib/lead"
	"pv-leads-backend/middleware"
	apimodels "pv-leads-backend/models/api"
	leadapimodels "pv-leads-backend/models/api/lead"
)

const headerRealIP = "X-Real-IP"

type LeadLimits struct {
	MaxPerWindow int
	Window       time.Duration
	BodyLimit    int64
}

type leadApiController struct {
	controllers.BaseAPIController
}

func InitLeadApiRouters(app *fiber.App, limits LeadLimits) {
	controller := leadApiController{}
	app.Post("leads",
		limiter.New(limiter.Config{
			Max:          limits.MaxPerWindow,
			Expiration:   limits.Window,
			KeyGenerator: ClientIP,
			LimitReached: func(ctx *fiber.Ctx) error {
				return ctx.Status(fiber.StatusTooManyRequests).JSON(apimodels.NewError("Trop de demandes, réessayez plus tard"))
			},
		}),
		middleware.WithBodyLimit(limits.BodyLimit),
		controller.create,
	)
}

// @Summary Demande de devis
// @Tags Demandes
// @Description Enregistre une demande de devis et notifie l'équipe et le client
// @Param	body				body		leadapimodels.LeadRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=leadapimodels.CreateResponse}
// @Failure 400 {object} apimodels.Response{data=[]leadapimodels.FieldError}
// @Failure 429 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leads [post]
func (c *leadApiController) create(ctx *fiber.Ctx) error {
	var payload leadapimodels.LeadRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	tracking := leadapimodels.Tracking{
		IpAddress: ClientIP(ctx),
		UserAgent: ctx.Get(fiber.HeaderUserAgent),
		Source:    ctx.Get(fiber.HeaderReferer),
	}
	resp, err := leadhandler.Instance.Create(payload, tracking)
	if err != nil {
		var validationErr leadapimodels.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.Response{
				Status:  "fail",
				Message: "Données invalides",
				Data:    validationErr.Details,
			})
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erreur d'enregistrement de la demande")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// ClientIP takes the first X-Forwarded-For entry, then X-Real-IP, then the remote address.
func ClientIP(ctx *fiber.Ctx) string {
	if forwarded := ctx.Get(fiber.HeaderXForwardedFor); forwarded != "" {
		if ip := strings.TrimSpace(strings.Split(forwarded, ",")[0]); ip != "" {
			return ip
		}
	}
	if realIP := strings.TrimSpace(ctx.Get(headerRealIP)); realIP != "" {
		return realIP
	}
	return ctx.IP()
}
