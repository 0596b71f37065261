package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"webeye/internal/config"
	"webeye/internal/utils/logger"
)

type S3Service struct {
	client     *s3.Client
	presign    *s3.PresignClient
	bucketName string
	endpoint   string
	region     string
	publicRead bool
	logger     *logger.Logger
}

// NewS3Service builds a client for AWS S3 or an S3-compatible store and
// verifies the credentials against the bucket.
func NewS3Service(ctx context.Context, storage config.StorageConfig) (*S3Service, error) {
	log := logger.New("s3_service")
	cfg := storage.S3

	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, log.Error("S3 credentials are empty ❌", fmt.Errorf("accessKey or secretKey is empty"))
	}

	region := cfg.Region
	if region == "" {
		region = "auto"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"", // Session token (not needed for basic auth)
		)),
		awsconfig.WithRetryMode(aws.RetryModeStandard),
		awsconfig.WithRetryMaxAttempts(3),
	)
	if err != nil {
		return nil, log.Error("Unable to load SDK config ❌", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint := baseEndpoint(cfg); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	// Verify credentials by making a test API call
	_, err = client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(cfg.BucketName),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return nil, log.Error("Failed to verify S3 credentials ❌", err)
	}

	log.Success("S3 service initialized successfully ✅")

	return &S3Service{
		client:     client,
		presign:    s3.NewPresignClient(client),
		bucketName: cfg.BucketName,
		endpoint:   cfg.Endpoint,
		region:     region,
		publicRead: storage.Provider == "r2",
		logger:     log,
	}, nil
}

// baseEndpoint returns "" for plain AWS S3.
func baseEndpoint(cfg config.S3Config) string {
	switch {
	case cfg.Endpoint == "":
		return ""
	case strings.Contains(cfg.Endpoint, "://"):
		return cfg.Endpoint
	case cfg.Region != "":
		return fmt.Sprintf("https://%s.%s", cfg.Region, cfg.Endpoint)
	default:
		return "https://" + cfg.Endpoint
	}
}

// UploadFile stores data under key and returns the object URL.
func (s *S3Service) UploadFile(ctx context.Context, data []byte, key, contentType string) (string, error) {
	s.logger.Info("📤 Starting file upload: %s", key)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}
	if s.publicRead {
		input.ACL = types.ObjectCannedACLPublicRead
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", s.logger.Error("Failed to upload file to storage ❌", err)
	}

	var url string
	if s.endpoint != "" {
		url = fmt.Sprintf("%s/%s/%s", baseEndpoint(config.S3Config{Endpoint: s.endpoint, Region: s.region}), s.bucketName, key)
	} else {
		url = fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, key)
	}

	s.logger.Success("✅ File uploaded successfully: %s", url)
	return url, nil
}

// GetSignedURL returns a presigned GET url for key valid for duration.
func (s *S3Service) GetSignedURL(ctx context.Context, key string, duration time.Duration) (string, error) {
	s.logger.Debug("🔄 Generating pre-signed URL for path: %s", key)

	presigned, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(duration))
	if err != nil {
		return "", s.logger.Error("Failed to generate pre-signed URL ❌", err)
	}

	return presigned.URL, nil
}
