package sitemapworker

import (
	"context"
	"time"

	"pv-leads-backend/lib/sitemap"
	baseworker "pv-leads-backend/lib/utils/base-worker"
	s3client "pv-leads-backend/s3"
)

const (
	sitemapObject = "sitemap.xml"
	robotsObject  = "robots.txt"
)

// StartWorker does nothing when S3 is not configured.
func StartWorker(ctx context.Context, interval time.Duration) {
	if s3client.Instance == nil {
		return
	}
	i := &impl{
		BaseImpl: *baseworker.NewInstance("SitemapPublishWorker", time.Minute, interval),
		sitemap:  sitemap.Instance,
		storage:  s3client.Instance,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	sitemap sitemap.Provider
	storage s3client.Provider
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	body, err := i.sitemap.Sitemap()
	if err != nil {
		logger.WithError(err).Error("erreur de génération du sitemap")
		return
	}
	if err = i.storage.PutObject(ctx, sitemapObject, "application/xml", body); err != nil {
		logger.WithError(err).Error("erreur de publication du sitemap")
		return
	}
	if err = i.storage.PutObject(ctx, robotsObject, "text/plain", []byte(i.sitemap.Robots())); err != nil {
		logger.WithError(err).Error("erreur de publication du robots.txt")
		return
	}
	logger.WithField("size", len(body)).Info("sitemap publié")
}
