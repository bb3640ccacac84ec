package storage

import (
	"context"
	"fmt"
	"mentor-service/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// NewMinio builds the client and creates bucketName when it does not exist.
func NewMinio(ctx context.Context, driverConfig *config.DriverConfig, bucketName string, logger *zap.Logger) (*minio.Client, error) {
	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}

	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check minio bucket %s: %w", bucketName, err)
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio bucket %s: %w", bucketName, err)
		}
		logger.Info("Created minio bucket", zap.String("bucket", bucketName))
	}

	logger.Info("Successfully connected to minio", zap.String("endpoint", endPoint))
	return minioClient, nil
}
