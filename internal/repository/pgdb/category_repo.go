package pgdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/internal/repository/pgdb/converter"
	"github.com/schnuffelll/shop-backend/pkg/e"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

const categoryColumns = `id, name, slug, description, image, sort_order, is_active, created_at, updated_at`

// List возвращает категории с количеством активных товаров в каждой.
func (c *CategoryRepo) List(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	query := `
		SELECT
			cat.id, cat.name, cat.slug, cat.description, cat.image,
			cat.sort_order, cat.is_active, cat.created_at, cat.updated_at,
			COUNT(pr.id) FILTER (WHERE pr.is_active) AS product_count
		FROM categories cat
		LEFT JOIN products pr ON pr.category_id = cat.id
		WHERE ($1 = false OR cat.is_active)
		GROUP BY cat.id
		ORDER BY cat.sort_order, cat.name;
	`

	rows, err := q(ctx, c.pool).Query(ctx, query, activeOnly)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var model converter.CategoryModel
		var productCount int64

		if err := rows.Scan(
			&model.ID, &model.Name, &model.Slug, &model.Description, &model.Image,
			&model.SortOrder, &model.IsActive, &model.CreatedAt, &model.UpdatedAt,
			&productCount,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		category := c.conv.ToEntity(&model)
		category.ProductCount = productCount
		categories = append(categories, *category)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return categories, nil
}

func (c *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1;`
	return c.get(ctx, query, slug)
}

func (c *CategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1;`
	return c.get(ctx, query, id)
}

func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	model := c.conv.ToModel(category)
	model.ID = uuid.NewString()

	query := `
		INSERT INTO categories (id, name, slug, description, image, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + categoryColumns + `;
	`

	err := q(ctx, c.pool).QueryRow(ctx, query,
		model.ID, model.Name, model.Slug, model.Description,
		model.Image, model.SortOrder, model.IsActive,
	).Scan(
		&model.ID, &model.Name, &model.Slug, &model.Description, &model.Image,
		&model.SortOrder, &model.IsActive, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSlugTaken)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

func (c *CategoryRepo) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	model := c.conv.ToModel(category)

	query := `
		UPDATE categories
		SET name = $2, slug = $3, description = $4, image = $5,
			sort_order = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + categoryColumns + `;
	`

	err := q(ctx, c.pool).QueryRow(ctx, query,
		model.ID, model.Name, model.Slug, model.Description,
		model.Image, model.SortOrder, model.IsActive,
	).Scan(
		&model.ID, &model.Name, &model.Slug, &model.Description, &model.Image,
		&model.SortOrder, &model.IsActive, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSlugTaken)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

func (c *CategoryRepo) Delete(ctx context.Context, id string) error {
	result, err := q(ctx, c.pool).Exec(ctx, `DELETE FROM categories WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
	}

	return nil
}

func (c *CategoryRepo) get(ctx context.Context, query string, arg any) (*domain.Category, error) {
	var model converter.CategoryModel
	err := q(ctx, c.pool).QueryRow(ctx, query, arg).Scan(
		&model.ID, &model.Name, &model.Slug, &model.Description, &model.Image,
		&model.SortOrder, &model.IsActive, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}
