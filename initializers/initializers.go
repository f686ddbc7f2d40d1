package initializers

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"pv-leads-backend/config"
	"pv-leads-backend/fiberlog"
	adminpanelhandler "pv-leads-backend/lib/admin-panel"
	adminpanelauthhandler "pv-leads-backend/lib/admin-panel/auth"
	dashboardhandler "pv-leads-backend/lib/admin-panel/dashboard"
	businesshandler "pv-leads-backend/lib/business"
	citypage "pv-leads-backend/lib/city-page"
	contentgenerator "pv-leads-backend/lib/content-generator"
	cityprovider "pv-leads-backend/lib/dicts/city"
	departmentprovider "pv-leads-backend/lib/dicts/department"
	regionprovider "pv-leads-backend/lib/dicts/region"
	xlsexport "pv-leads-backend/lib/export/xls"
	yagptclient "pv-leads-backend/lib/gpt/yagpt-client"
	"pv-leads-backend/lib/indexing"
	indexingclient "pv-leads-backend/lib/indexing/indexing-client"
	internallinking "pv-leads-backend/lib/internal-linking"
	leadhandler "pv-leads-backend/lib/lead"
	leadworker "pv-leads-backend/lib/lead/worker"
	"pv-leads-backend/lib/sitemap"
	sitemapworker "pv-leads-backend/lib/sitemap/worker"
	staticpage "pv-leads-backend/lib/static-page"
	connectionhub "pv-leads-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger(config.Conf.App.LogLevel, isEnabled(config.Conf.App.AccessLog))
	InitDBConnection()
	InitS3()
	InitSmtp()

	sunHours, err := contentgenerator.LoadSunHoursTable(config.Conf.Site.SunHoursFile)
	if err != nil {
		panic(err.Error())
	}

	cityprovider.NewHandler()
	regionprovider.NewHandler()
	departmentprovider.NewHandler()
	businesshandler.NewHandler()
	internallinking.NewHandler()
	citypage.NewHandler(sunHours, time.Duration(config.Conf.Cache.PageTTLInSec)*time.Second)
	xlsexport.NewHandler()
	connectionhub.Init()
	leadhandler.NewHandler()
	staticpage.NewHandler(newGptClient())
	sitemap.NewHandler()
	indexing.NewHandler(newIndexingClient())
	adminpanelauthhandler.NewHandler()
	adminpanelhandler.NewHandler()
	dashboardhandler.NewHandler()
	go initWorkers(ctx)
}

func newGptClient() yagptclient.Provider {
	if config.Conf.YandexGPT.IAMToken == "" || config.Conf.YandexGPT.CatalogID == "" {
		log.Info("YandexGPT non configuré, génération de contenu désactivée")
		return nil
	}
	return yagptclient.NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID)
}

func newIndexingClient() indexingclient.Provider {
	if config.Conf.Indexing.APIURL == "" || config.Conf.Indexing.APIKey == "" {
		log.Info("service d'indexation non configuré")
		return nil
	}
	return indexingclient.NewClient(config.Conf.Indexing.APIURL, config.Conf.Indexing.APIKey)
}

// les tâches démarrent à 10 sec d'intervalle pour étaler la charge
func initWorkers(ctx context.Context) {
	leadworker.StartWorker(ctx, time.Duration(config.Conf.Workers.LeadNotifyIntervalInSec)*time.Second)
	if makeTimeGap(ctx) {
		sitemapworker.StartWorker(ctx, time.Duration(config.Conf.Workers.SitemapPublishIntervalInSec)*time.Second)
	}
}

func makeTimeGap(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(time.Second * 10):
		return true
	}
}
