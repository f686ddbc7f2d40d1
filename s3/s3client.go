package s3client

import (
	"bytes"
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

var Instance Provider

type Provider interface {
	MakeBucket(ctx context.Context) error
	PutObject(ctx context.Context, objectName, contentType string, body []byte) error
}

type s3client struct {
	minioClient *minio.Client
	bucketName  string
}

func NewClient(endpoint, accessKeyID, secretAccessKey string, useSSL bool, bucketName string) (Provider, error) {
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &s3client{minioClient: minioClient, bucketName: bucketName}, nil
}

func (s s3client) MakeBucket(ctx context.Context) error {
	location := "us-east-1"
	exists, err := s.minioClient.BucketExists(ctx, s.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.minioClient.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{Region: location})
}

func (s s3client) PutObject(ctx context.Context, objectName, contentType string, body []byte) error {
	_, err := s.minioClient.PutObject(ctx, s.bucketName, objectName, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrapf(err, "erreur d'envoi de %v vers S3", objectName)
	}
	return nil
}
