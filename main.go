package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
	"pv-leads-backend/config"
	apiv1 "pv-leads-backend/controllers/v1"
	"pv-leads-backend/controllers/v1/dict"
	"pv-leads-backend/controllers/v1/public"
	"pv-leads-backend/fiberlog"
	"pv-leads-backend/initializers"
	"pv-leads-backend/lib/ws"
	"pv-leads-backend/middleware"
)

const (
	swaggerFile   = "./docs/swagger.json"
	leadBodyLimit = 64 * 1024
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: config.Conf.Limits.BodyLimitBytes,
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())
	if config.Conf.Site.ErrorNotifyURL != "" {
		app.Use(middleware.ErrNotify(config.Conf.Site.ErrorNotifyURL))
	}

	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			Path:     "/swagger",
			FilePath: swaggerFile,
		}))
	}

	// sitemap.xml, robots.txt
	public.InitSitemapRouters(app)

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	public.InitCatalogApiRouters(apiV1)
	public.InitLeadApiRouters(apiV1, public.LeadLimits{
		MaxPerWindow: config.Conf.Limits.LeadMaxPerWindow,
		Window:       time.Duration(config.Conf.Limits.LeadWindowInSec) * time.Second,
		BodyLimit:    leadBodyLimit,
	})

	// admin
	adminPanel := fiber.New()
	apiV1.Mount("/admin_panel", adminPanel)
	apiv1.InitAdminApiRouters(adminPanel)
	apiv1.InitBusinessApiRouters(adminPanel)
	apiv1.InitLeadApiRouters(adminPanel)
	apiv1.InitPageApiRouters(adminPanel)
	apiv1.InitIndexingApiRouters(adminPanel)

	wsApp := fiber.New()
	adminPanel.Mount("/ws", wsApp)
	ws.InitWs(wsApp)

	dicts := fiber.New()
	adminPanel.Mount("/dict", dicts)
	dicts.Use(middleware.AdminPanelAuthorizationRequired())
	dict.InitCityDictApiRouters(dicts)
	dict.InitRegionDictApiRouters(dicts)
	dict.InitDepartmentDictApiRouters(dicts)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("arrêt du serveur en cours...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("erreur lors de l'arrêt du serveur")
		}
		time.Sleep(time.Second)
		log.Info("arrêt du serveur terminé")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("serveur HTTP arrêté")
}
