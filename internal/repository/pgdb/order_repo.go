package pgdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/internal/repository/pgdb/converter"
	"github.com/schnuffelll/shop-backend/pkg/e"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool     *pgxpool.Pool
	conv     converter.OrderConverter
	itemConv converter.OrderItemConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter, itemConv converter.OrderItemConverter) *OrderRepo {
	return &OrderRepo{
		pool:     pool,
		conv:     conv,
		itemConv: itemConv,
	}
}

const orderColumns = `id, order_number, user_id, customer_name, customer_email,
	subtotal, discount, total_amount, coupon_id, status,
	paid_at, processed_at, completed_at, created_at, updated_at`

// Create вставляет заказ вместе с позициями. Вызывается внутри
// транзакции оформления заказа.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	model := o.conv.ToModel(order)
	model.ID = uuid.NewString()

	query := `
		INSERT INTO orders (id, order_number, user_id, customer_name, customer_email,
			subtotal, discount, total_amount, coupon_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + orderColumns + `;
	`

	err := q(ctx, o.pool).QueryRow(ctx, query,
		model.ID, model.OrderNumber, model.UserID, model.CustomerName, model.CustomerEmail,
		model.Subtotal, model.Discount, model.TotalAmount, model.CouponID, model.Status,
	).Scan(
		&model.ID, &model.OrderNumber, &model.UserID, &model.CustomerName, &model.CustomerEmail,
		&model.Subtotal, &model.Discount, &model.TotalAmount, &model.CouponID, &model.Status,
		&model.PaidAt, &model.ProcessedAt, &model.CompletedAt, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: order number %s already exists: %w", whereami.WhereAmI(), order.OrderNumber, err)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, product_name, variant_id,
			variant_name, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	created := o.conv.ToEntity(model)
	for _, item := range order.Items {
		itemModel := o.itemConv.ToModel(&item)
		itemModel.ID = uuid.NewString()
		itemModel.OrderID = model.ID

		_, err := q(ctx, o.pool).Exec(ctx, itemQuery,
			itemModel.ID, itemModel.OrderID, itemModel.ProductID, itemModel.ProductName,
			itemModel.VariantID, itemModel.VariantName, itemModel.Quantity,
			itemModel.UnitPrice, itemModel.TotalPrice,
		)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		created.Items = append(created.Items, *o.itemConv.ToEntity(itemModel))
	}

	return created, nil
}

func (o *OrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1;`

	var model converter.OrderModel
	err := q(ctx, o.pool).QueryRow(ctx, query, id).Scan(
		&model.ID, &model.OrderNumber, &model.UserID, &model.CustomerName, &model.CustomerEmail,
		&model.Subtotal, &model.Discount, &model.TotalAmount, &model.CouponID, &model.Status,
		&model.PaidAt, &model.ProcessedAt, &model.CompletedAt, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	order := o.conv.ToEntity(&model)
	orders := []domain.Order{*order}
	if err := o.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	return &orders[0], nil
}

func (o *OrderRepo) ListByUser(ctx context.Context, userID string, page, limit int) ([]domain.Order, int64, error) {
	var total int64
	if err := q(ctx, o.pool).QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1;`, userID).Scan(&total); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`

	orders, err := o.queryOrders(ctx, query, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	if err := o.attachItems(ctx, orders); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (o *OrderRepo) ListAll(ctx context.Context, status string, page, limit int) ([]domain.Order, int64, error) {
	var total int64
	if err := q(ctx, o.pool).QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE ($1 = '' OR status = $1);`, status,
	).Scan(&total); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`

	orders, err := o.queryOrders(ctx, query, status, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	if err := o.attachItems(ctx, orders); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// UpdateStatus сохраняет статус и отметки времени переходов заказа.
func (o *OrderRepo) UpdateStatus(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	model := o.conv.ToModel(order)

	query := `
		UPDATE orders
		SET status = $2, paid_at = $3, processed_at = $4, completed_at = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + orderColumns + `;
	`

	err := q(ctx, o.pool).QueryRow(ctx, query,
		model.ID, model.Status, model.PaidAt, model.ProcessedAt, model.CompletedAt,
	).Scan(
		&model.ID, &model.OrderNumber, &model.UserID, &model.CustomerName, &model.CustomerEmail,
		&model.Subtotal, &model.Discount, &model.TotalAmount, &model.CouponID, &model.Status,
		&model.PaidAt, &model.ProcessedAt, &model.CompletedAt, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	updated := o.conv.ToEntity(model)
	updated.Items = order.Items

	return updated, nil
}

func (o *OrderRepo) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := q(ctx, o.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var model converter.OrderModel
		if err := rows.Scan(
			&model.ID, &model.OrderNumber, &model.UserID, &model.CustomerName, &model.CustomerEmail,
			&model.Subtotal, &model.Discount, &model.TotalAmount, &model.CouponID, &model.Status,
			&model.PaidAt, &model.ProcessedAt, &model.CompletedAt, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		orders = append(orders, *o.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return orders, nil
}

// attachItems догружает позиции для пачки заказов одним запросом.
func (o *OrderRepo) attachItems(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[string]*domain.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for i := range orders {
		index[orders[i].ID] = &orders[i]
		ids = append(ids, orders[i].ID)
	}

	query := `
		SELECT id, order_id, product_id, product_name, variant_id, variant_name,
			quantity, unit_price, total_price
		FROM order_items
		WHERE order_id = ANY($1);
	`

	rows, err := q(ctx, o.pool).Query(ctx, query, ids)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var model converter.OrderItemModel
		if err := rows.Scan(
			&model.ID, &model.OrderID, &model.ProductID, &model.ProductName,
			&model.VariantID, &model.VariantName, &model.Quantity,
			&model.UnitPrice, &model.TotalPrice,
		); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		if order, ok := index[model.OrderID]; ok {
			order.Items = append(order.Items, *o.itemConv.ToEntity(&model))
		}
	}
	if err := rows.Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
