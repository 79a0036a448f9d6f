package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"youtube_etl/internal/core/domain"
	"youtube_etl/internal/core/ports"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/dustin/go-humanize"
)

const DefaultRegion = "us-east-1"

type S3Config struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	// Endpoint targets an S3-compatible store; it switches to path-style addressing.
	Endpoint string
}

type s3Storage struct {
	uploader *s3manager.Uploader
	bucket   string
	log      ports.LoggerPort
}

func NewS3Storage(cfg S3Config, logger ports.LoggerPort) (ports.StoragePort, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket name is required")
	}

	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}

	awsCfg := aws.NewConfig().
		WithRegion(region).
		WithCredentials(credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""))
	if cfg.Endpoint != "" {
		awsCfg = awsCfg.WithEndpoint(cfg.Endpoint).WithS3ForcePathStyle(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		logger.Error("Failed to initialize S3 client", err)
		return nil, fmt.Errorf("failed to initialize s3 client: %w", err)
	}

	logger.Info("S3 client initialized successfully.")

	return &s3Storage{
		uploader: s3manager.NewUploader(sess),
		bucket:   cfg.Bucket,
		log:      logger,
	}, nil
}

// Upload stores the local file under its base name. SDK failures are
// reported as domain.ErrUploadFailed; local I/O errors are not.
func (s *s3Storage) Upload(ctx context.Context, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open %s for upload: %w", filename, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", filename, err)
	}

	key := filepath.Base(filename)

	_, err = s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		var awsErr awserr.Error
		if errors.As(err, &awsErr) {
			return fmt.Errorf("%w: s3://%s/%s: %w", domain.ErrUploadFailed, s.bucket, key, err)
		}
		return fmt.Errorf("failed to upload %s: %w", filename, err)
	}

	s.log.Info(fmt.Sprintf("File uploaded to S3: %s (%s)", key, humanize.Bytes(uint64(stat.Size()))))

	return nil
}
