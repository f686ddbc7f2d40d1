package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		LogLevel   string `default:"info" env:"LOG_LEVEL"`
		AccessLog  *bool  `default:"true" env:"ACCESS_LOG_ENABLED"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"pv-leads" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
		PreloadDir     string `default:"./static_preload" env:"DB_PRELOAD_DIR"`
		MaxOpenConns   int    `default:"20" env:"DB_MAX_OPEN_CONNS"`
		MaxIdleConns   int    `default:"5" env:"DB_MAX_IDLE_CONNS"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		From       string `default:"" env:"SMTP_FROM"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	Site struct {
		Name           string `default:"Solaire France" env:"SITE_NAME"`
		BaseURL        string `default:"http://localhost:3000" env:"SITE_BASE_URL"`
		AdminEmail     string `default:"" env:"ADMIN_NOTIFY_EMAIL"`
		LeadWebhookURL string `default:"" env:"LEAD_WEBHOOK_URL"`
		SunHoursFile   string `default:"" env:"SUN_HOURS_FILE"`
		ErrorNotifyURL string `default:"" env:"ERROR_NOTIFY_URL"`
	}
	Admin struct {
		Email       string `default:"" env:"ADMIN_EMAIL"`
		Password    string `default:"" env:"ADMIN_PASSWORD"`
		FirstName   string `default:"Super" env:"ADMIN_FIRST_NAME"`
		LastName    string `default:"Admin" env:"ADMIN_LAST_NAME"`
		PhoneNumber string `default:"" env:"ADMIN_PHONE_NUMBER"`
	}
	AdminPanelAuth struct {
		JWTSecret      string `default:"" env:"ADMIN_PANEL_JWT_SECRET"`
		JWTExpireInSec int64  `default:"86400" env:"ADMIN_PANEL_JWT_EXPIRE_IN_SEC"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"true" env:"S3_USE_SSL"`
		BucketName      string `default:"pv-leads" env:"S3_BUCKET_NAME"`
	}
	YandexGPT struct {
		IAMToken  string `default:"" env:"YANDEX_GPT_IAM_TOKEN"`
		CatalogID string `default:"" env:"YANDEX_GPT_CATALOG_ID"`
	}
	Indexing struct {
		APIURL string `default:"" env:"INDEXING_API_URL"`
		APIKey string `default:"" env:"INDEXING_API_KEY"`
	}
	Limits struct {
		LeadMaxPerWindow int `default:"5" env:"LEAD_RATE_LIMIT_MAX"`
		LeadWindowInSec  int `default:"60" env:"LEAD_RATE_LIMIT_WINDOW_IN_SEC"`
		BodyLimitBytes   int `default:"4194304" env:"BODY_LIMIT_BYTES"`
	}
	Cache struct {
		PageTTLInSec int `default:"3600" env:"PAGE_CACHE_TTL_IN_SEC"`
	}
	Workers struct {
		LeadNotifyIntervalInSec     int `default:"300" env:"LEAD_NOTIFY_INTERVAL_IN_SEC"`
		SitemapPublishIntervalInSec int `default:"86400" env:"SITEMAP_PUBLISH_INTERVAL_IN_SEC"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
