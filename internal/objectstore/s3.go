// Package objectstore stores uploaded photo bytes in an S3-compatible bucket.
//
// The hosting platform exposes a plain S3 API at a custom endpoint, so the
// client is the regular AWS SDK pointed somewhere else. Path-style addressing
// is forced because the endpoint does not serve virtual-hosted bucket names.
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/sakif/plant-care/internal/config"
)

// putObjectAPI is the one S3 call we make. *s3.Client satisfies it; tests
// pass a fake.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 writes objects into a single bucket.
type S3 struct {
	client putObjectAPI
	bucket string
	logger *slog.Logger
}

// New builds an S3 client from static credentials in cfg.
func New(ctx context.Context, cfg config.ObjectStoreConfig, logger *slog.Logger) (*S3, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("objectstore: loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	logger.Info("object store configured",
		slog.String("endpoint", cfg.Endpoint),
		slog.String("bucket", cfg.Bucket),
	)
	return newWithClient(client, cfg.Bucket, logger), nil
}

func newWithClient(client putObjectAPI, bucket string, logger *slog.Logger) *S3 {
	return &S3{client: client, bucket: bucket, logger: logger}
}

// Put uploads body under key. There is no retry; a failure is returned as is.
func (s *S3) Put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return fmt.Errorf("objectstore: putting %s/%s: %w", s.bucket, key, err)
	}

	s.logger.Debug("object stored",
		slog.String("bucket", s.bucket),
		slog.String("key", key),
		slog.Int("bytes", len(body)),
	)
	return nil
}
