package initializers

import (
	log "github.com/sirupsen/logrus"
	"pv-leads-backend/fiberlog"
)

const wsPath = "/api/v1/admin_panel/ws"

func newJSONFormatter() *log.JSONFormatter {
	return &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
}

// InitLogger sets up the global logger and returns the access log config.
// An unknown level falls back to info.
func InitLogger(level string, accessLog bool) *fiberlog.Config {
	log.SetFormatter(newJSONFormatter())
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("niveau de log inconnu, niveau info utilisé")
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)

	logger := log.New()
	logger.SetFormatter(newJSONFormatter())
	logger.SetLevel(log.InfoLevel)
	if !accessLog {
		logger.SetLevel(log.ErrorLevel)
	}
	return &fiberlog.Config{
		Logger:    logger,
		SkipPaths: []string{wsPath},
		Tags: []string{
			fiberlog.TagIP,
			fiberlog.TagLatency,
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagUserAgent,
			fiberlog.TagRequestID,
		},
	}
}
