// Package storage archiva reportes generados en almacenamiento compatible con S3 (MinIO).
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/ports"
)

// MinioArchive implementa ports.ReportArchive.
type MinioArchive struct {
	client *minio.Client
	bucket string
}

var _ ports.ReportArchive = (*MinioArchive)(nil)

// NewMinioArchive crea el cliente; no toca la red hasta EnsureBucket o Put.
func NewMinioArchive(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioArchive, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cliente minio: %w", err)
	}
	return &MinioArchive{client: client, bucket: bucket}, nil
}

// EnsureBucket crea el bucket si no existe.
func (a *MinioArchive) EnsureBucket(ctx context.Context) error {
	found, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("storage: bucket %s: %w", a.bucket, err)
	}
	if !found {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("storage: crear bucket %s: %w", a.bucket, err)
		}
	}
	return nil
}

// Put sube el objeto y devuelve su ubicación bucket/key.
func (a *MinioArchive) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	info, err := a.client.PutObject(ctx, a.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("storage.Put %s: %w", key, err)
	}
	return a.bucket + "/" + info.Key, nil
}

// PresignedURL URL temporal de descarga.
func (a *MinioArchive) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := a.client.PresignedGetObject(ctx, a.bucket, key, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("storage.PresignedURL %s: %w", key, err)
	}
	return u.String(), nil
}

// ExpiryReportKey clave del reporte diario: reports/<org>/vencimientos-YYYY-MM-DD.pdf
func ExpiryReportKey(organizationID string, day time.Time) string {
	org := strings.ReplaceAll(organizationID, "/", "_")
	return path.Join("reports", org, "vencimientos-"+day.Format("2006-01-02")+".pdf")
}
