package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"venue-booking/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MinIOService issues presigned uploads for venue and artist images and
// removes images that are no longer referenced.
type MinIOService struct {
	client     *minio.Client
	bucket     string
	publicBase string
	expiry     time.Duration
	logger     *logrus.Logger
}

// PresignedUpload is what a client needs to PUT an image and later store
// its public URL as an image_link.
type PresignedUpload struct {
	UploadURL string        `json:"upload_url"`
	PublicURL string        `json:"public_url"`
	ExpiresIn time.Duration `json:"expires_in" swaggertype:"integer"`
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MinIOService{
		client:     minioClient,
		bucket:     cfg.BucketName,
		publicBase: publicBaseURL(cfg.PublicURL),
		expiry:     cfg.PresignExpiry,
		logger:     logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := service.ensureBucket(ctx, cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read")
	return nil
}

// GeneratePresignedURL reserves a unique object name derived from filename.
func (s *MinIOService) GeneratePresignedURL(ctx context.Context, filename string) (*PresignedUpload, error) {
	objectPath := uniqueObjectName(filename)

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectPath, s.expiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectPath": objectPath,
		"expiry":     s.expiry,
	}).Info("Generated presigned URL")

	return &PresignedUpload{
		UploadURL: presignedURL.String(),
		PublicURL: fmt.Sprintf("%s/%s/%s", s.publicBase, s.bucket, objectPath),
		ExpiresIn: s.expiry,
	}, nil
}

func (s *MinIOService) IsManaged(link string) bool {
	return isManagedLink(s.publicBase, s.bucket, link)
}

func (s *MinIOService) DeleteFile(ctx context.Context, link string) error {
	objectPath := objectKey(s.bucket, link)

	err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.WithField("objectPath", objectPath).Info("File deleted successfully from MinIO")
	return nil
}

// publicBaseURL keeps only scheme and host of the configured public URL.
func publicBaseURL(raw string) string {
	protocol := "http://"
	if strings.HasPrefix(raw, "https://") {
		protocol = "https://"
	}

	host := strings.TrimPrefix(raw, "https://")
	host = strings.TrimPrefix(host, "http://")
	if idx := strings.Index(host, "/"); idx != -1 {
		host = host[:idx]
	}
	return protocol + host
}

func uniqueObjectName(filename string) string {
	filename = filepath.Base(filename)
	ext := filepath.Ext(filename)
	nameWithoutExt := strings.TrimSuffix(filename, ext)
	return fmt.Sprintf("%s_%s%s", nameWithoutExt, uuid.New().String()[:8], ext)
}

func isManagedLink(publicBase, bucket, link string) bool {
	prefix := publicBase + "/" + bucket + "/"
	return strings.HasPrefix(link, prefix) && len(link) > len(prefix)
}

// objectKey turns a stored public link (or a bare key) into the object key,
// dropping any query string left over from a presigned URL.
func objectKey(bucket, link string) string {
	if idx := strings.Index(link, "?"); idx != -1 {
		link = link[:idx]
	}
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		parts := strings.Split(link, "/")
		return parts[len(parts)-1]
	}
	return strings.TrimPrefix(link, bucket+"/")
}
