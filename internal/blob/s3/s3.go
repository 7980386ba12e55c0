// Package s3 implements blob.ObjectStore on S3-compatible object storage.
//
// "S3-compatible" matters: with a custom endpoint and path-style addressing
// this works against MinIO or any other S3 clone in development, and against
// AWS proper in production.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/sakif/account-service/internal/blob"
)

// Config holds the connection settings for the object store.
type Config struct {
	Endpoint  string // custom endpoint for S3-compatible stores; empty for AWS
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	BaseURL   string // public URL prefix objects are served under
}

// Store implements blob.ObjectStore using the AWS SDK.
type Store struct {
	client   *s3.S3
	uploader *s3manager.Uploader
	bucket   string
	baseURL  string
}

var _ blob.ObjectStore = (*Store)(nil)

// New creates a Store from the given config.
func New(cfg Config) (*Store, error) {
	awsCfg := &aws.Config{
		Region:           aws.String(cfg.Region),
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("s3: creating session: %w", err)
	}

	return &Store{
		client:   s3.New(sess),
		uploader: s3manager.NewUploader(sess),
		bucket:   cfg.Bucket,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// Upload stores data under key and returns its public URL.
func (s *Store) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3: uploading %s: %w", key, err)
	}

	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}

// Delete removes the object stored under key. S3 DeleteObject succeeds on
// missing keys, which matches the ObjectStore contract.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3: deleting %s: %w", key, err)
	}
	return nil
}
