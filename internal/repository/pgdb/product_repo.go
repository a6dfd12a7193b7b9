package pgdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/internal/repository/pgdb/converter"
	"github.com/schnuffelll/shop-backend/internal/usecase"
	"github.com/schnuffelll/shop-backend/pkg/e"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool    *pgxpool.Pool
	conv    converter.ProductConverter
	varConv converter.VariantConverter
	catConv converter.CategoryConverter
}

func NewProductRepo(
	pool *pgxpool.Pool,
	conv converter.ProductConverter,
	varConv converter.VariantConverter,
	catConv converter.CategoryConverter,
) *ProductRepo {
	return &ProductRepo{
		pool:    pool,
		conv:    conv,
		varConv: varConv,
		catConv: catConv,
	}
}

const productColumns = `pr.id, pr.category_id, pr.name, pr.slug, pr.description, pr.short_desc,
	pr.thumbnail, pr.type, pr.is_active, pr.is_featured, pr.created_at, pr.updated_at`

const variantColumns = `id, product_id, name, price, compare_price, stock, sku, sort_order,
	is_active, created_at, updated_at`

// List возвращает страницу активных товаров каталога с вариантами и
// изображениями. Сортировка по умолчанию — сначала новые.
func (p *ProductRepo) List(ctx context.Context, req *usecase.ListProductsReq) ([]domain.Product, int64, error) {
	where := `pr.is_active`
	args := []any{}

	if req.CategorySlug != "" {
		args = append(args, req.CategorySlug)
		where += fmt.Sprintf(` AND cat.slug = $%d`, len(args))
	}
	if req.FeaturedOnly {
		where += ` AND pr.is_featured`
	}
	if req.Search != "" {
		args = append(args, "%"+req.Search+"%")
		where += fmt.Sprintf(` AND (pr.name ILIKE $%d OR pr.description ILIKE $%d)`, len(args), len(args))
	}

	orderBy := `pr.created_at DESC`
	switch req.Sort {
	case "oldest":
		orderBy = `pr.created_at ASC`
	case "name-asc":
		orderBy = `pr.name ASC`
	case "name-desc":
		orderBy = `pr.name DESC`
	}

	countQuery := `
		SELECT COUNT(*)
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE ` + where + `;`

	var total int64
	if err := q(ctx, p.pool).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	args = append(args, req.Limit, (req.Page-1)*req.Limit)
	query := `
		SELECT ` + productColumns + `
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE ` + where + `
		ORDER BY ` + orderBy + fmt.Sprintf(`
		LIMIT $%d OFFSET $%d;`, len(args)-1, len(args))

	products, err := p.queryProducts(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	if err := p.attachRelations(ctx, products); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// AdminList возвращает страницу товаров без фильтра по активности.
func (p *ProductRepo) AdminList(ctx context.Context, req *usecase.AdminListProductsReq) ([]domain.Product, int64, error) {
	where := `TRUE`
	args := []any{}

	if req.Search != "" {
		args = append(args, "%"+req.Search+"%")
		where += fmt.Sprintf(` AND pr.name ILIKE $%d`, len(args))
	}
	if req.CategoryID != "" {
		args = append(args, req.CategoryID)
		where += fmt.Sprintf(` AND pr.category_id = $%d`, len(args))
	}
	switch req.Status {
	case "active":
		where += ` AND pr.is_active`
	case "inactive":
		where += ` AND NOT pr.is_active`
	}

	countQuery := `SELECT COUNT(*) FROM products pr WHERE ` + where + `;`

	var total int64
	if err := q(ctx, p.pool).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	args = append(args, req.Limit, (req.Page-1)*req.Limit)
	query := `
		SELECT ` + productColumns + `
		FROM products pr
		WHERE ` + where + `
		ORDER BY pr.created_at DESC` + fmt.Sprintf(`
		LIMIT $%d OFFSET $%d;`, len(args)-1, len(args))

	products, err := p.queryProducts(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	if err := p.attachRelations(ctx, products); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (p *ProductRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products pr WHERE pr.slug = $1;`
	return p.getOne(ctx, query, slug)
}

func (p *ProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products pr WHERE pr.id = $1;`
	return p.getOne(ctx, query, id)
}

// GetActiveByIDs загружает активные товары с вариантами одной выборкой.
// Вызывается внутри транзакции оформления заказа.
func (p *ProductRepo) GetActiveByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products pr
		WHERE pr.id = ANY($1) AND pr.is_active;
	`

	products, err := p.queryProducts(ctx, query, ids)
	if err != nil {
		return nil, err
	}

	if err := p.attachRelations(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

// GetRelated возвращает другие активные товары той же категории.
func (p *ProductRepo) GetRelated(ctx context.Context, categoryID, excludeID string, limit int) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products pr
		WHERE pr.category_id = $1 AND pr.id <> $2 AND pr.is_active
		ORDER BY pr.created_at DESC
		LIMIT $3;
	`

	products, err := p.queryProducts(ctx, query, categoryID, excludeID, limit)
	if err != nil {
		return nil, err
	}

	if err := p.attachRelations(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

func (p *ProductRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM products WHERE slug = $1 AND id <> $2);`

	var exists bool
	if err := q(ctx, p.pool).QueryRow(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

// Create вставляет товар вместе с вариантами и изображениями.
// Вызывается внутри транзакции сценария.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model := p.conv.ToModel(product)
	model.ID = uuid.NewString()

	query := `
		INSERT INTO products (id, category_id, name, slug, description, short_desc,
			thumbnail, type, is_active, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, category_id, name, slug, description, short_desc,
			thumbnail, type, is_active, is_featured, created_at, updated_at;
	`

	err := q(ctx, p.pool).QueryRow(ctx, query,
		model.ID, model.CategoryID, model.Name, model.Slug, model.Description,
		model.ShortDesc, model.Thumbnail, model.Type, model.IsActive, model.IsFeatured,
	).Scan(
		&model.ID, &model.CategoryID, &model.Name, &model.Slug, &model.Description,
		&model.ShortDesc, &model.Thumbnail, &model.Type, &model.IsActive, &model.IsFeatured,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSlugTaken)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := p.insertVariants(ctx, model.ID, product.Variants); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(product.Images))
	for _, img := range product.Images {
		urls = append(urls, img.URL)
	}
	if err := p.insertImages(ctx, model.ID, urls); err != nil {
		return nil, err
	}

	created := p.conv.ToEntity(model)
	if err := p.attachOne(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}

func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) error {
	model := p.conv.ToModel(product)

	query := `
		UPDATE products
		SET category_id = $2, name = $3, slug = $4, description = $5, short_desc = $6,
			thumbnail = $7, type = $8, is_active = $9, is_featured = $10, updated_at = NOW()
		WHERE id = $1;
	`

	result, err := q(ctx, p.pool).Exec(ctx, query,
		model.ID, model.CategoryID, model.Name, model.Slug, model.Description,
		model.ShortDesc, model.Thumbnail, model.Type, model.IsActive, model.IsFeatured,
	)
	if err != nil {
		if postgresDuplicate(err) {
			return e.Wrap(whereami.WhereAmI(), e.ErrSlugTaken)
		}

		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// ReplaceVariants полностью заменяет варианты товара.
func (p *ProductRepo) ReplaceVariants(ctx context.Context, productID string, variants []domain.Variant) error {
	if _, err := q(ctx, p.pool).Exec(ctx, `DELETE FROM product_variants WHERE product_id = $1;`, productID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.insertVariants(ctx, productID, variants)
}

// ReplaceImages полностью заменяет изображения товара.
func (p *ProductRepo) ReplaceImages(ctx context.Context, productID string, urls []string) error {
	if _, err := q(ctx, p.pool).Exec(ctx, `DELETE FROM product_images WHERE product_id = $1;`, productID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.insertImages(ctx, productID, urls)
}

func (p *ProductRepo) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE products SET is_active = $2, updated_at = NOW() WHERE id = $1;`

	result, err := q(ctx, p.pool).Exec(ctx, query, id, active)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

func (p *ProductRepo) Delete(ctx context.Context, id string) error {
	result, err := q(ctx, p.pool).Exec(ctx, `DELETE FROM products WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

func (p *ProductRepo) CountOrderItems(ctx context.Context, productID string) (int64, error) {
	var count int64
	err := q(ctx, p.pool).QueryRow(ctx, `SELECT COUNT(*) FROM order_items WHERE product_id = $1;`, productID).Scan(&count)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}

// UpdateVariantStock выставляет остаток варианта напрямую.
func (p *ProductRepo) UpdateVariantStock(ctx context.Context, variantID string, stock int) (*domain.Variant, error) {
	query := `
		UPDATE product_variants
		SET stock = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + variantColumns + `;
	`

	var model converter.VariantModel
	err := q(ctx, p.pool).QueryRow(ctx, query, variantID, stock).Scan(
		&model.ID, &model.ProductID, &model.Name, &model.Price, &model.ComparePrice,
		&model.Stock, &model.SKU, &model.SortOrder, &model.IsActive,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrVariantNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.varConv.ToEntity(&model), nil
}

// DecrementStock атомарно списывает остаток. Условие stock >= qty
// переносит проверку остатка в саму команду UPDATE, параллельные заказы
// не могут увести остаток в минус.
func (p *ProductRepo) DecrementStock(ctx context.Context, variantID string, qty int) error {
	query := `
		UPDATE product_variants
		SET stock = stock - $2, updated_at = NOW()
		WHERE id = $1 AND stock >= $2;
	`

	result, err := q(ctx, p.pool).Exec(ctx, query, variantID, qty)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrStockConflict)
	}

	return nil
}

func (p *ProductRepo) insertVariants(ctx context.Context, productID string, variants []domain.Variant) error {
	query := `
		INSERT INTO product_variants (id, product_id, name, price, compare_price, stock, sku, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	for _, v := range variants {
		model := p.varConv.ToModel(&v)
		if model.ID == "" {
			model.ID = uuid.NewString()
		}

		_, err := q(ctx, p.pool).Exec(ctx, query,
			model.ID, productID, model.Name, model.Price, model.ComparePrice,
			model.Stock, model.SKU, model.SortOrder, model.IsActive,
		)
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}

func (p *ProductRepo) insertImages(ctx context.Context, productID string, urls []string) error {
	query := `INSERT INTO product_images (id, product_id, url) VALUES ($1, $2, $3);`

	for _, url := range urls {
		if _, err := q(ctx, p.pool).Exec(ctx, query, uuid.NewString(), productID, url); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}

func (p *ProductRepo) getOne(ctx context.Context, query string, arg any) (*domain.Product, error) {
	var model converter.ProductModel
	err := q(ctx, p.pool).QueryRow(ctx, query, arg).Scan(
		&model.ID, &model.CategoryID, &model.Name, &model.Slug, &model.Description,
		&model.ShortDesc, &model.Thumbnail, &model.Type, &model.IsActive, &model.IsFeatured,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	product := p.conv.ToEntity(&model)
	if err := p.attachOne(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (p *ProductRepo) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := q(ctx, p.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.CategoryID, &model.Name, &model.Slug, &model.Description,
			&model.ShortDesc, &model.Thumbnail, &model.Type, &model.IsActive, &model.IsFeatured,
			&model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		products = append(products, *p.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return products, nil
}

func (p *ProductRepo) attachOne(ctx context.Context, product *domain.Product) error {
	products := []domain.Product{*product}
	if err := p.attachRelations(ctx, products); err != nil {
		return err
	}

	*product = products[0]
	return nil
}

// attachRelations догружает категории, варианты и изображения для пачки
// товаров тремя запросами вместо N+1.
func (p *ProductRepo) attachRelations(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	index := make(map[string]*domain.Product, len(products))
	ids := make([]string, 0, len(products))
	categoryIDs := make([]string, 0, len(products))
	for i := range products {
		index[products[i].ID] = &products[i]
		ids = append(ids, products[i].ID)
		categoryIDs = append(categoryIDs, products[i].CategoryID)
	}

	variantQuery := `
		SELECT ` + variantColumns + `
		FROM product_variants
		WHERE product_id = ANY($1)
		ORDER BY sort_order, created_at;
	`

	rows, err := q(ctx, p.pool).Query(ctx, variantQuery, ids)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var model converter.VariantModel
		if err := rows.Scan(
			&model.ID, &model.ProductID, &model.Name, &model.Price, &model.ComparePrice,
			&model.Stock, &model.SKU, &model.SortOrder, &model.IsActive,
			&model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		if pr, ok := index[model.ProductID]; ok {
			pr.Variants = append(pr.Variants, *p.varConv.ToEntity(&model))
		}
	}
	if err := rows.Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	imageQuery := `
		SELECT id, product_id, url
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY id;
	`

	imgRows, err := q(ctx, p.pool).Query(ctx, imageQuery, ids)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer imgRows.Close()

	for imgRows.Next() {
		var img domain.ProductImage
		if err := imgRows.Scan(&img.ID, &img.ProductID, &img.URL); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		if pr, ok := index[img.ProductID]; ok {
			pr.Images = append(pr.Images, img)
		}
	}
	if err := imgRows.Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	categoryQuery := `SELECT ` + categoryColumns + ` FROM categories WHERE id = ANY($1);`

	catRows, err := q(ctx, p.pool).Query(ctx, categoryQuery, categoryIDs)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer catRows.Close()

	categories := make(map[string]*domain.Category)
	for catRows.Next() {
		var model converter.CategoryModel
		if err := catRows.Scan(
			&model.ID, &model.Name, &model.Slug, &model.Description, &model.Image,
			&model.SortOrder, &model.IsActive, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		categories[model.ID] = p.catConv.ToEntity(&model)
	}
	if err := catRows.Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	for i := range products {
		products[i].Category = categories[products[i].CategoryID]
	}

	return nil
}
