package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"movies-admin/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MediaStore keeps the media files attached to film works.
type MediaStore interface {
	GeneratePresignedURL(ctx context.Context, filename, contentType string) (*PresignedUpload, error)
	DeleteFile(ctx context.Context, objectPath string) error
}

// PresignedUpload is what a client needs to upload a file and then attach it to a film work.
type PresignedUpload struct {
	PresignedURL string `json:"presigned_url"`
	PublicURL    string `json:"public_url"`
	ObjectPath   string `json:"object_path" example:"media/the-shining_1a2b3c4d.mp4"`
}

type MediaService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	cfg       *config.MinIOConfig
	logger    *logrus.Logger
}

func NewMediaService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MediaService, error) {
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
	}).Info("Media storage client initialized")

	service := &MediaService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: cfg.PublicURL,
		cfg:       cfg,
		logger:    logger,
	}

	if err := service.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Failed to ensure media bucket, continuing without it")
	}

	return service, nil
}

func (s *MediaService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.cfg.Region}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	s.logger.WithField("bucket", s.bucket).Info("Media bucket created")
	return nil
}

// ObjectName derives a collision free object name from an uploaded file name.
func ObjectName(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	stem := strings.ToLower(strings.TrimSuffix(base, ext))
	stem = strings.Join(strings.Fields(stem), "-")
	if stem == "" || stem == "." {
		stem = "file"
	}
	return fmt.Sprintf("media/%s_%s%s", stem, uuid.New().String()[:8], ext)
}

func (s *MediaService) GeneratePresignedURL(ctx context.Context, filename, contentType string) (*PresignedUpload, error) {
	objectPath := ObjectName(filename)

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectPath, s.cfg.PresignExpiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"filename":    filename,
		"contentType": contentType,
		"objectPath":  objectPath,
		"expiry":      s.cfg.PresignExpiry,
	}).Info("Generated presigned URL")

	return &PresignedUpload{
		PresignedURL: presignedURL.String(),
		PublicURL:    s.objectURL(objectPath),
		ObjectPath:   objectPath,
	}, nil
}

func (s *MediaService) objectURL(objectPath string) string {
	base := strings.TrimSuffix(s.publicURL, "/")
	if base == "" {
		return objectPath
	}
	return fmt.Sprintf("%s/%s/%s", base, s.bucket, objectPath)
}

// DeleteFile removes an object. Full public URLs are accepted as well as bare object paths.
func (s *MediaService) DeleteFile(ctx context.Context, objectPath string) error {
	objectPath = s.objectPath(objectPath)

	err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.WithField("objectPath", objectPath).Info("File deleted from media storage")
	return nil
}

func (s *MediaService) objectPath(path string) string {
	if idx := strings.Index(path, "?"); idx != -1 {
		path = path[:idx]
	}
	if !strings.Contains(path, "://") {
		return path
	}
	if idx := strings.Index(path, "/"+s.bucket+"/"); idx != -1 {
		path = path[idx+len(s.bucket)+2:]
	}
	return path
}
