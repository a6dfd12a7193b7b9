package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/pkg/e"
	"github.com/schnuffelll/shop-backend/pkg/logger"
)

// fakeTx реализует pgx.Tx без базы и считает коммиты и откаты.
type fakeTx struct {
	commits   int
	rollbacks int
}

func (f *fakeTx) Begin(_ context.Context) (pgx.Tx, error) { return f, nil }

func (f *fakeTx) Commit(_ context.Context) error {
	f.commits++
	return nil
}

func (f *fakeTx) Rollback(_ context.Context) error {
	f.rollbacks++
	return nil
}

func (f *fakeTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (f *fakeTx) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults { return nil }
func (f *fakeTx) LargeObjects() pgx.LargeObjects                            { return pgx.LargeObjects{} }

func (f *fakeTx) Prepare(_ context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (f *fakeTx) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f *fakeTx) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) { return nil, nil }
func (f *fakeTx) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row       { return nil }
func (f *fakeTx) Conn() *pgx.Conn                                              { return nil }

// fakeDB реализует transaction.Transactional поверх fakeTx.
type fakeDB struct {
	tx *fakeTx
}

func (f *fakeDB) BeginTx(_ context.Context, _ pgx.TxOptions) (pgx.Tx, error) {
	return f.tx, nil
}

// mockOrderRepo реализует OrderRepository для тестов.
type mockOrderRepo struct {
	created []*domain.Order
}

func (m *mockOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	saved := *order
	saved.ID = "order-1"
	m.created = append(m.created, &saved)
	return &saved, nil
}

func (m *mockOrderRepo) GetByID(_ context.Context, _ string) (*domain.Order, error) {
	return nil, e.ErrOrderNotFound
}

func (m *mockOrderRepo) ListByUser(_ context.Context, _ string, _, _ int) ([]domain.Order, int64, error) {
	return nil, 0, nil
}

func (m *mockOrderRepo) ListAll(_ context.Context, _ string, _, _ int) ([]domain.Order, int64, error) {
	return nil, 0, nil
}

func (m *mockOrderRepo) UpdateStatus(_ context.Context, order *domain.Order) (*domain.Order, error) {
	return order, nil
}

// mockProductRepo реализует ProductRepository. Остаток в dbStock ведётся
// отдельно от загруженных товаров, чтобы воспроизводить гонку двух заказов:
// расчёт видит старый остаток, а условное списание упирается в новый.
type mockProductRepo struct {
	products []domain.Product
	dbStock  map[string]int
}

func (m *mockProductRepo) GetActiveByIDs(_ context.Context, ids []string) ([]domain.Product, error) {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	var found []domain.Product
	for _, p := range m.products {
		if _, ok := want[p.ID]; ok && p.IsActive {
			found = append(found, p)
		}
	}
	return found, nil
}

func (m *mockProductRepo) DecrementStock(_ context.Context, variantID string, qty int) error {
	stock, ok := m.dbStock[variantID]
	if !ok || stock < qty {
		return e.ErrStockConflict
	}
	m.dbStock[variantID] = stock - qty
	return nil
}

func (m *mockProductRepo) List(_ context.Context, _ *ListProductsReq) ([]domain.Product, int64, error) {
	return nil, 0, nil
}

func (m *mockProductRepo) AdminList(_ context.Context, _ *AdminListProductsReq) ([]domain.Product, int64, error) {
	return nil, 0, nil
}

func (m *mockProductRepo) GetBySlug(_ context.Context, _ string) (*domain.Product, error) {
	return nil, e.ErrProductNotFound
}

func (m *mockProductRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return nil, e.ErrProductNotFound
}

func (m *mockProductRepo) GetRelated(_ context.Context, _, _ string, _ int) ([]domain.Product, error) {
	return nil, nil
}

func (m *mockProductRepo) SlugExists(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}

func (m *mockProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	return product, nil
}

func (m *mockProductRepo) Update(_ context.Context, _ *domain.Product) error { return nil }

func (m *mockProductRepo) ReplaceVariants(_ context.Context, _ string, _ []domain.Variant) error {
	return nil
}

func (m *mockProductRepo) ReplaceImages(_ context.Context, _ string, _ []string) error { return nil }
func (m *mockProductRepo) SetActive(_ context.Context, _ string, _ bool) error         { return nil }
func (m *mockProductRepo) Delete(_ context.Context, _ string) error                    { return nil }

func (m *mockProductRepo) CountOrderItems(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func (m *mockProductRepo) UpdateVariantStock(_ context.Context, _ string, _ int) (*domain.Variant, error) {
	return nil, e.ErrVariantNotFound
}

// mockOutboxRepo реализует OutboxRepository для тестов.
type mockOutboxRepo struct {
	events []*OutboxEvent
}

func (m *mockOutboxRepo) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	m.events = append(m.events, event)
	return event, nil
}

func (m *mockOutboxRepo) GetAndMarkAsProcessing(_ context.Context, _ int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (m *mockOutboxRepo) MarkAsProcessed(_ context.Context, _ int64) error { return nil }

// mockCacheRepo реализует CacheRepository для тестов.
type mockCacheRepo struct {
	invalidated []string
}

func (m *mockCacheRepo) GetProduct(_ context.Context, _ string) (*domain.Product, error) {
	return nil, nil
}

func (m *mockCacheRepo) SetProduct(_ context.Context, _ *domain.Product) error { return nil }

func (m *mockCacheRepo) DeleteProducts(_ context.Context, slugs []string) error {
	m.invalidated = append(m.invalidated, slugs...)
	return nil
}

type orderFixture struct {
	uc       *OrderUseCase
	tx       *fakeTx
	orders   *mockOrderRepo
	products *mockProductRepo
	coupons  *mockCouponRepo
	outbox   *mockOutboxRepo
	cache    *mockCacheRepo
}

func newOrderFixture() *orderFixture {
	users := newMockUserRepo()
	users.users["budi@example.com"] = &domain.User{
		ID:       "user-1",
		Name:     "Budi",
		Email:    "budi@example.com",
		Role:     domain.RoleUser,
		IsActive: true,
	}

	coupons := newMockCouponRepo()
	coupons.byCode["DISKON10"] = percentageCoupon()

	products := &mockProductRepo{
		products: catalogProducts(),
		dbStock:  map[string]int{"v-1": 10, "v-2": 3, "v-3": 5},
	}

	f := &orderFixture{
		tx:       &fakeTx{},
		orders:   &mockOrderRepo{},
		products: products,
		coupons:  coupons,
		outbox:   &mockOutboxRepo{},
		cache:    &mockCacheRepo{},
	}
	f.uc = NewOrderUC(f.orders, f.products, f.coupons, users, f.outbox, f.cache,
		&fakeDB{tx: f.tx}, logger.NewSlogLogger())

	return f
}

func TestCreateOrder_CommitsAndDecrementsStock(t *testing.T) {
	f := newOrderFixture()

	order, err := f.uc.CreateOrder(context.Background(), &CreateOrderReq{
		UserID:     "user-1",
		Items:      []CartItem{{ProductID: "p-1", VariantID: "v-1", Quantity: 2}},
		CouponCode: "DISKON10",
	})

	require.NoError(t, err)
	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(100000)), "subtotal %s", order.Subtotal)
	assert.True(t, order.Discount.Equal(decimal.NewFromInt(10000)))
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(90000)))
	assert.Equal(t, domain.OrderPending, order.Status)

	assert.Equal(t, 8, f.products.dbStock["v-1"])
	assert.Equal(t, 1, f.coupons.byCode["DISKON10"].UsageCount)
	require.Len(t, f.outbox.events, 1)
	assert.Equal(t, OrderCreated, f.outbox.events[0].EventType)
	assert.Equal(t, order.OrderNumber, f.outbox.events[0].OrderNumber)
	assert.Equal(t, 1, f.tx.commits)
	assert.Zero(t, f.tx.rollbacks)
	assert.Contains(t, f.cache.invalidated, "netflix-premium")
}

func TestCreateOrder_LowercaseCouponCode(t *testing.T) {
	f := newOrderFixture()

	order, err := f.uc.CreateOrder(context.Background(), &CreateOrderReq{
		UserID:     "user-1",
		Items:      []CartItem{{ProductID: "p-1", VariantID: "v-1", Quantity: 2}},
		CouponCode: "diskon10",
	})

	require.NoError(t, err)
	assert.True(t, order.Discount.Equal(decimal.NewFromInt(10000)), "discount %s", order.Discount)
	require.NotNil(t, order.CouponID)
	assert.Equal(t, 1, f.coupons.byCode["DISKON10"].UsageCount)
}

func TestCreateOrder_StockConflictRollsBack(t *testing.T) {
	f := newOrderFixture()
	// Параллельный заказ уже выкупил почти весь остаток: расчёт по каталогу
	// проходит, условное списание в базе должно отказать.
	f.products.dbStock["v-1"] = 1

	_, err := f.uc.CreateOrder(context.Background(), &CreateOrderReq{
		UserID: "user-1",
		Items:  []CartItem{{ProductID: "p-1", VariantID: "v-1", Quantity: 2}},
	})

	require.Error(t, err)
	var stockErr *e.StockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "Netflix Premium", stockErr.ProductName)

	assert.Equal(t, 1, f.products.dbStock["v-1"])
	assert.Empty(t, f.outbox.events)
	assert.Zero(t, f.tx.commits)
	assert.Equal(t, 1, f.tx.rollbacks)
	assert.Empty(t, f.cache.invalidated)
}

func TestCreateOrder_InapplicableCouponNotCounted(t *testing.T) {
	f := newOrderFixture()
	limit := 1
	f.coupons.byCode["DISKON10"].UsageLimit = &limit
	f.coupons.byCode["DISKON10"].UsageCount = 1

	order, err := f.uc.CreateOrder(context.Background(), &CreateOrderReq{
		UserID:     "user-1",
		Items:      []CartItem{{ProductID: "p-1", VariantID: "v-1", Quantity: 1}},
		CouponCode: "DISKON10",
	})

	require.NoError(t, err)
	assert.True(t, order.Discount.IsZero())
	assert.Nil(t, order.CouponID)
	assert.Equal(t, 1, f.coupons.byCode["DISKON10"].UsageCount)
	assert.Equal(t, 1, f.tx.commits)
}

func TestCreateOrder_UnknownCouponIgnored(t *testing.T) {
	f := newOrderFixture()

	order, err := f.uc.CreateOrder(context.Background(), &CreateOrderReq{
		UserID:     "user-1",
		Items:      []CartItem{{ProductID: "p-1", VariantID: "v-1", Quantity: 1}},
		CouponCode: "TIDAKADA",
	})

	require.NoError(t, err)
	assert.True(t, order.Discount.IsZero())
	assert.Nil(t, order.CouponID)
	assert.Equal(t, 1, f.tx.commits)
}
