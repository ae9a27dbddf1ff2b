// Package s3 loads the CSV dataset from an S3 or MinIO bucket.
package s3

import (
	"context"
	"fmt"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ewilliams-labs/artistscope/internal/adapters/csvfile"
	"github.com/ewilliams-labs/artistscope/internal/core/domain"
	"github.com/ewilliams-labs/artistscope/internal/core/ports"
)

const defaultRegion = "us-east-1"

// Config holds the object location and optional endpoint overrides.
type Config struct {
	Bucket          string
	Key             string
	Region          string
	Endpoint        string // optional; set for MinIO or other S3-compatible stores
	AccessKeyID     string // optional (falls back to default credentials chain)
	SecretAccessKey string // optional
	PathStyle       bool
}

// objectGetter is the slice of the S3 client the source needs.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Source implements ports.DatasetSource over a single S3 object.
type Source struct {
	client objectGetter
	bucket string
	key    string
}

// compile-time interface assertion
var _ ports.DatasetSource = (*Source)(nil)

// NewSource builds an S3 client from cfg and the default AWS credential chain.
func NewSource(ctx context.Context, cfg Config) (*Source, error) {
	if cfg.Bucket == "" || cfg.Key == "" {
		return nil, fmt.Errorf("s3: bucket and key required")
	}
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return newSource(client, cfg.Bucket, cfg.Key), nil
}

func newSource(client objectGetter, bucket, key string) *Source {
	return &Source{client: client, bucket: bucket, key: key}
}

// Name identifies the source in logs.
func (s *Source) Name() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}

// Load downloads the object and parses it as CSV.
func (s *Source) Load(ctx context.Context) ([]domain.TrackRow, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, domain.NewLoadError(s.Name(), fmt.Errorf("s3: get object: %w", err))
	}
	defer out.Body.Close()

	rows, err := csvfile.Parse(out.Body)
	if err != nil {
		return nil, domain.NewLoadError(s.Name(), err)
	}
	return rows, nil
}
