package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/internal/repository/pgdb/converter"
	"github.com/schnuffelll/shop-backend/pkg/e"
)

// UploadRepo хранит записи о загруженных в объектное хранилище файлах.
type UploadRepo struct {
	pool *pgxpool.Pool
	conv converter.UploadConverter
}

func NewUploadRepo(pool *pgxpool.Pool, conv converter.UploadConverter) *UploadRepo {
	return &UploadRepo{pool: pool, conv: conv}
}

func (u *UploadRepo) Create(ctx context.Context, upload *domain.Upload) (*domain.Upload, error) {
	model := u.conv.ToModel(upload)

	query := `
		INSERT INTO uploads (id, filename, object_key, url, mime_type, size)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, filename, object_key, url, mime_type, size, created_at;
	`

	err := q(ctx, u.pool).QueryRow(ctx, query,
		model.ID, model.Filename, model.ObjectKey, model.URL, model.MimeType, model.Size,
	).Scan(
		&model.ID, &model.Filename, &model.ObjectKey, &model.URL,
		&model.MimeType, &model.Size, &model.CreatedAt,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(model), nil
}
