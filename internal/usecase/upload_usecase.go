package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/schnuffelll/shop-backend/internal/cfg"
	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/pkg/e"
	"github.com/schnuffelll/shop-backend/pkg/logger"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// UploadUseCase принимает изображения и кладёт их в объектное хранилище.
type UploadUseCase struct {
	uploadRepo UploadRepository
	filesInfra FilesInfra
	minioCfg   *cfg.MinIOCfg
	uploadCfg  *cfg.UploadCfg
	logger     logger.Logger
}

func NewUploadUC(
	uploadRepo UploadRepository,
	filesInfra FilesInfra,
	minioCfg *cfg.MinIOCfg,
	uploadCfg *cfg.UploadCfg,
	logger logger.Logger,
) *UploadUseCase {
	return &UploadUseCase{
		uploadRepo: uploadRepo,
		filesInfra: filesInfra,
		minioCfg:   minioCfg,
		uploadCfg:  uploadCfg,
		logger:     logger,
	}
}

// UploadFiles проверяет и загружает пачку изображений. Загрузка в
// хранилище идёт параллельно, записи об успешных файлах сохраняются
// после неё.
func (u *UploadUseCase) UploadFiles(ctx context.Context, files []UploadFile) ([]domain.Upload, error) {
	const op = "UploadUseCase.UploadFiles"

	if len(files) == 0 {
		return nil, e.Wrap(op, e.ErrNoFile)
	}
	if len(files) > u.uploadCfg.MaxFiles {
		return nil, e.Wrap(op, e.ErrTooManyFiles)
	}

	for i, f := range files {
		if _, ok := allowedImageTypes[strings.ToLower(f.MimeType)]; !ok {
			return nil, e.Wrap(op, e.ErrUnsupportedMedia)
		}
		if f.Size > u.uploadCfg.MaxFileSize {
			return nil, e.Wrap(op, e.ErrFileTooLarge)
		}
		if f.Size == 0 {
			return nil, e.Wrap(op, e.Validation(fmt.Sprintf("images[%d]", i), "File kosong"))
		}
	}

	res, err := u.filesInfra.UploadFiles(ctx, NewUploadFilesReq("products", files))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	uploads := make([]domain.Upload, 0, len(files))
	for i, key := range res.Keys {
		upload, err := u.uploadRepo.Create(ctx, &domain.Upload{
			ID:        uuid.NewString(),
			Filename:  files[i].Name,
			ObjectKey: key,
			URL:       u.publicURL(key),
			MimeType:  files[i].MimeType,
			Size:      files[i].Size,
		})
		if err != nil {
			// Файлы уже в хранилище, откатываем загрузку целиком
			u.filesInfra.CleanupFiles(res.Keys)
			return nil, e.Wrap(op, err)
		}

		uploads = append(uploads, *upload)
	}

	return uploads, nil
}

func (u *UploadUseCase) publicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(u.minioCfg.PublicBaseURL, "/"), u.minioCfg.BucketName, key)
}
