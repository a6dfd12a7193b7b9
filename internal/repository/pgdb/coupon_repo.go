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

// CouponRepo реализует репозиторий купонов поверх PostgreSQL.
type CouponRepo struct {
	pool *pgxpool.Pool
	conv converter.CouponConverter
}

func NewCouponRepo(pool *pgxpool.Pool, conv converter.CouponConverter) *CouponRepo {
	return &CouponRepo{pool: pool, conv: conv}
}

const couponColumns = `id, code, type, value, min_purchase, max_discount, usage_limit,
	usage_count, valid_from, valid_until, is_active, created_at`

func (c *CouponRepo) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1;`
	return c.get(ctx, query, code)
}

func (c *CouponRepo) GetByID(ctx context.Context, id string) (*domain.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE id = $1;`
	return c.get(ctx, query, id)
}

func (c *CouponRepo) List(ctx context.Context, page, limit int) ([]domain.Coupon, int64, error) {
	var total int64
	if err := q(ctx, c.pool).QueryRow(ctx, `SELECT COUNT(*) FROM coupons;`).Scan(&total); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT ` + couponColumns + `
		FROM coupons
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`

	rows, err := q(ctx, c.pool).Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	coupons := make([]domain.Coupon, 0)
	for rows.Next() {
		var model converter.CouponModel
		if err := rows.Scan(
			&model.ID, &model.Code, &model.Type, &model.Value, &model.MinPurchase,
			&model.MaxDiscount, &model.UsageLimit, &model.UsageCount,
			&model.ValidFrom, &model.ValidUntil, &model.IsActive, &model.CreatedAt,
		); err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}

		coupons = append(coupons, *c.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return coupons, total, nil
}

func (c *CouponRepo) Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	model := c.conv.ToModel(coupon)
	model.ID = uuid.NewString()

	query := `
		INSERT INTO coupons (id, code, type, value, min_purchase, max_discount,
			usage_limit, valid_from, valid_until, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + couponColumns + `;
	`

	err := q(ctx, c.pool).QueryRow(ctx, query,
		model.ID, model.Code, model.Type, model.Value, model.MinPurchase,
		model.MaxDiscount, model.UsageLimit, model.ValidFrom, model.ValidUntil, model.IsActive,
	).Scan(
		&model.ID, &model.Code, &model.Type, &model.Value, &model.MinPurchase,
		&model.MaxDiscount, &model.UsageLimit, &model.UsageCount,
		&model.ValidFrom, &model.ValidUntil, &model.IsActive, &model.CreatedAt,
	)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCouponCodeTaken)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

func (c *CouponRepo) Update(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	model := c.conv.ToModel(coupon)

	query := `
		UPDATE coupons
		SET value = $2, min_purchase = $3, max_discount = $4, usage_limit = $5,
			valid_from = $6, valid_until = $7, is_active = $8
		WHERE id = $1
		RETURNING ` + couponColumns + `;
	`

	err := q(ctx, c.pool).QueryRow(ctx, query,
		model.ID, model.Value, model.MinPurchase, model.MaxDiscount,
		model.UsageLimit, model.ValidFrom, model.ValidUntil, model.IsActive,
	).Scan(
		&model.ID, &model.Code, &model.Type, &model.Value, &model.MinPurchase,
		&model.MaxDiscount, &model.UsageLimit, &model.UsageCount,
		&model.ValidFrom, &model.ValidUntil, &model.IsActive, &model.CreatedAt,
	)
	if err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCouponNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

func (c *CouponRepo) Delete(ctx context.Context, id string) error {
	result, err := q(ctx, c.pool).Exec(ctx, `DELETE FROM coupons WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCouponNotFound)
	}

	return nil
}

// IncrementUsage увеличивает счётчик применений купона. Вызывается в
// транзакции оформления заказа.
func (c *CouponRepo) IncrementUsage(ctx context.Context, id string) error {
	query := `UPDATE coupons SET usage_count = usage_count + 1 WHERE id = $1;`

	result, err := q(ctx, c.pool).Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCouponNotFound)
	}

	return nil
}

func (c *CouponRepo) get(ctx context.Context, query string, arg any) (*domain.Coupon, error) {
	var model converter.CouponModel
	err := q(ctx, c.pool).QueryRow(ctx, query, arg).Scan(
		&model.ID, &model.Code, &model.Type, &model.Value, &model.MinPurchase,
		&model.MaxDiscount, &model.UsageLimit, &model.UsageCount,
		&model.ValidFrom, &model.ValidUntil, &model.IsActive, &model.CreatedAt,
	)
	if err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCouponNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}
