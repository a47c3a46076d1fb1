package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectStore accepts a byte stream and returns the public URL it will be
// served from.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// S3Store stores objects in an S3 bucket fronted by a public base URL
// (typically a CDN distribution).
type S3Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Store creates an S3-backed ObjectStore using the default AWS
// credential chain.
func NewS3Store(ctx context.Context, region, bucket, publicBaseURL string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Store{
		client:        s3.NewFromConfig(cfg),
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// Put uploads the object and returns its public URL
func (s *S3Store) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        body,
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
}
