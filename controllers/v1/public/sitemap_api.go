package public

import (
	"github.com/gofiber/fiber/v2"
	"pv-leads-backend/controllers"
	"pv-leads-backend/lib/sitemap"
)

type sitemapController struct {
	controllers.BaseAPIController
}

// InitSitemapRouters is mounted at the site root, outside /api/v1.
func InitSitemapRouters(app *fiber.App) {
	controller := sitemapController{}
	app.Get("sitemap.xml", controller.sitemapXml)
	app.Get("robots.txt", controller.robotsTxt)
}

// @Summary Sitemap
// @Tags SEO
// @Description Plan du site au format XML
// @Success 200
// @Failure 500
// @router /sitemap.xml [get]
func (c *sitemapController) sitemapXml(ctx *fiber.Ctx) error {
	body, err := sitemap.Instance.Sitemap()
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error("erreur de génération du sitemap")
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	ctx.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Robots
// @Tags SEO
// @Description Fichier robots.txt
// @Success 200
// @router /robots.txt [get]
func (c *sitemapController) robotsTxt(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return ctx.Status(fiber.StatusOK).SendString(sitemap.Instance.Robots())
}
