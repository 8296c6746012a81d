package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ImportArchive keeps a copy of every raw import payload.
type ImportArchive interface {
	Store(ctx context.Context, kind string, payload []byte) (string, error)
	EnsureBucketExists(ctx context.Context) error
}

type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
}

type minioArchive struct {
	client objectPutter
	bucket string
	now    func() time.Time
}

func NewMinioImportArchive(endpoint, accessKey, secretKey, bucket string, useSSL bool) (ImportArchive, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &minioArchive{client: client, bucket: bucket, now: time.Now}, nil
}

// Store writes the payload under imports/<kind>/<date>/<uuid>.csv and returns the object name.
func (m *minioArchive) Store(ctx context.Context, kind string, payload []byte) (string, error) {
	objectName := fmt.Sprintf("imports/%s/%s/%s.csv", kind, m.now().UTC().Format("2006-01-02"), uuid.New())
	_, err := m.client.PutObject(ctx, m.bucket, objectName, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return "", fmt.Errorf("archive %s import: %w", kind, err)
	}
	return objectName, nil
}

func (m *minioArchive) EnsureBucketExists(ctx context.Context) error {
	found, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if !found {
		return m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
	}
	return nil
}
