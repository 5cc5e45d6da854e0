package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	appconfig "github.com/wattwerk/wattwerk-api/pkg/config"
)

// S3Storage saves uploads to an object-storage bucket. Returned URLs are
// absolute, so PDF rendering needs no base URI in this deployment.
type S3Storage struct {
	client *s3.Client
	bucket string
	region string
	prefix string
}

// NewS3Storage loads the default AWS credential chain.
func NewS3Storage(ctx context.Context, cfg appconfig.StorageConfig) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.S3Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &S3Storage{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.S3Bucket,
		region: cfg.S3Region,
		prefix: strings.Trim(cfg.S3Prefix, "/"),
	}, nil
}

// Save uploads the stream and returns the object's public URL.
func (s *S3Storage) Save(r io.Reader, filename string) (string, error) {
	key := path.Join(s.prefix, uuid.New().String()+"_"+sanitizeFilename(filename))
	_, err := s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

// Delete removes the object referenced by a previously returned URL.
func (s *S3Storage) Delete(url string) error {
	idx := strings.Index(url, ".amazonaws.com/")
	if idx < 0 {
		return fmt.Errorf("not an s3 url: %s", url)
	}
	key := url[idx+len(".amazonaws.com/"):]
	_, err := s.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

// BaseURI is empty: object URLs are absolute already.
func (s *S3Storage) BaseURI() string {
	return ""
}
