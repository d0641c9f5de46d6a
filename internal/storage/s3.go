package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"ADVENTURA_BACK-END/internal/config"
)

// S3 signs upload and download URLs against an S3-compatible bucket using
// SigV4 presigning. Custom endpoints (MinIO and friends) switch the client
// to path-style addressing.
type S3 struct {
	presign *s3.PresignClient
	bucket  string
	baseURL string
	ttl     time.Duration
}

// NewS3 builds a signer from storage configuration. The bucket must be set;
// callers use the Local fallback otherwise.
func NewS3(cfg config.StorageConfig) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: S3_BUCKET is required")
	}

	awsCfg := aws.Config{Region: cfg.Region}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	ttl := cfg.SignTTL
	if ttl <= 0 {
		ttl = DefaultSignTTL
	}

	return &S3{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		baseURL: publicBaseURL(cfg),
		ttl:     ttl,
	}, nil
}

func publicBaseURL(cfg config.StorageConfig) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

func (s *S3) BaseURL() string { return s.baseURL }

// SignPutURL issues a presigned PUT for the object key
func (s *S3) SignPutURL(ctx context.Context, key, contentType string) (*SignedPut, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	req, err := s.presign.PresignPutObject(ctx, input, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return nil, fmt.Errorf("presign put %s: %w", key, err)
	}

	return &SignedPut{
		UploadURL: req.URL,
		PhotoURL:  s.baseURL + "/" + key,
		ExpiresIn: int(s.ttl.Seconds()),
		Key:       key,
	}, nil
}

// SignGetURL issues a presigned GET for the object key
func (s *S3) SignGetURL(ctx context.Context, key string) (*SignedGet, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return nil, fmt.Errorf("presign get %s: %w", key, err)
	}

	return &SignedGet{
		URL:       req.URL,
		ExpiresIn: int(s.ttl.Seconds()),
		Key:       key,
	}, nil
}
