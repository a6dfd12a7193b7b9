package minio

import (
	"bytes"
	"context"

	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
	"github.com/schnuffelll/shop-backend/internal/cfg"
	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/pkg/e"
)

// FileRepo реализует репозиторий файлов поверх MinIO.
type FileRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewFileRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *FileRepo {
	return &FileRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Upload загружает файл в MinIO и возвращает ключ объекта.
func (f *FileRepo) Upload(ctx context.Context, file *domain.File) (string, error) {
	reader := bytes.NewReader(file.Bytes)

	info, err := f.mc.PutObject(ctx, f.cfg.BucketName, file.ObjectKey, reader, file.Size, minio.PutObjectOptions{
		ContentType: file.MimeType,
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}

// Delete удаляет объект из MinIO по указанному ключу.
func (f *FileRepo) Delete(ctx context.Context, key string) error {
	if err := f.mc.RemoveObject(ctx, f.cfg.BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
