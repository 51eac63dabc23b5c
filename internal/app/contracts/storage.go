package contracts

import (
	"context"
	"io"
	"time"
)

type Storage interface {
	PutObject(ctx context.Context, bucketName, objectName string, data []byte, contentType string) error
	GetObject(ctx context.Context, bucketName, objectName string) ([]byte, error)
	StreamObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, int64, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}
