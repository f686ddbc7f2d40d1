package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"pv-leads-backend/config"
	s3client "pv-leads-backend/s3"
)

// InitS3 leaves s3client.Instance nil when no endpoint is configured.
func InitS3() {
	if config.Conf.S3.Endpoint == "" {
		log.Info("S3 non configuré, publication du sitemap désactivée")
		return
	}
	useSSL := isEnabled(config.Conf.S3.UseSSL)
	client, err := s3client.NewClient(
		config.Conf.S3.Endpoint,
		config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey,
		useSSL,
		config.Conf.S3.BucketName,
	)
	if err != nil {
		log.WithError(err).Error("erreur d'initialisation du client S3")
		return
	}
	if err = client.MakeBucket(context.Background()); err != nil {
		log.WithError(err).Error("connexion S3 impossible, vérification du bucket échouée")
		return
	}
	s3client.Instance = client
	log.Info("client S3 initialisé")
}
