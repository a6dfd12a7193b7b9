package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/pkg/e"
	"github.com/schnuffelll/shop-backend/pkg/logger"
)

// OrderUseCase реализует оформление заказа и работу с историей заказов.
type OrderUseCase struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	couponRepo  CouponRepository
	userRepo    UserRepository
	outboxRepo  OutboxRepository
	cacheRepo   CacheRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	productRepo ProductRepository,
	couponRepo CouponRepository,
	userRepo UserRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		couponRepo:  couponRepo,
		userRepo:    userRepo,
		outboxRepo:  outboxRepo,
		cacheRepo:   cacheRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// CreateOrder оформляет заказ по корзине: загружает товары, рассчитывает
// суммы, применяет купон и в одной транзакции создаёт заказ, инкрементирует
// счётчик купона и списывает остатки. Откат транзакции не оставляет
// частичного заказа.
func (o *OrderUseCase) CreateOrder(ctx context.Context, req *CreateOrderReq) (*domain.Order, error) {
	const op = "OrderUseCase.CreateOrder"

	if err := validateCart(req.Items); err != nil {
		return nil, e.Wrap(op, err)
	}

	user, err := o.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	productIDs := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := o.productRepo.GetActiveByIDs(ctx, productIDs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Купон ищется заранее; все причины неприменимости, включая
	// несуществующий код, приводят к заказу без скидки, а не к ошибке.
	// Коды хранятся в верхнем регистре.
	var coupon *domain.Coupon
	if req.CouponCode != "" {
		coupon, err = o.couponRepo.GetByCode(ctx, strings.ToUpper(req.CouponCode))
		if err != nil {
			if !errors.Is(err, e.ErrCouponNotFound) {
				return nil, e.Wrap(op, err)
			}
			err = nil
		}
	}

	draft, err := buildOrderDraft(products, req.Items, coupon, time.Now())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	orderNumber, err := generateOrderNumber(time.Now())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	order := &domain.Order{
		OrderNumber:   orderNumber,
		UserID:        user.ID,
		CustomerName:  user.Name,
		CustomerEmail: user.Email,
		Subtotal:      draft.Subtotal,
		Discount:      draft.Discount,
		TotalAmount:   draft.TotalAmount,
		CouponID:      draft.CouponID,
		Status:        domain.OrderPending,
		Items:         draft.Items,
	}

	created, err := o.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if draft.CouponID != nil {
		if err = o.couponRepo.IncrementUsage(ctx, *draft.CouponID); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	// Условное списание: UPDATE ... WHERE stock >= qty. Повторная проверка
	// закрывает гонку двух одновременных заказов на один вариант — проверка
	// остатка при расчёте сама по себе от неё не защищает.
	for _, item := range draft.Items {
		if err = o.productRepo.DecrementStock(ctx, item.VariantID, item.Quantity); err != nil {
			if errors.Is(err, e.ErrStockConflict) {
				err = e.InsufficientStock(item.ProductName, item.VariantName)
			}
			return nil, e.Wrap(op, err)
		}
	}

	event, err := NewOrderEvent(OrderCreated, created)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if _, err = o.outboxRepo.Create(ctx, event); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Остатки изменились — кэшированные карточки товаров устарели
	if cacheErr := o.cacheRepo.DeleteProducts(ctx, draft.ProductSlugs); cacheErr != nil {
		o.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, cacheErr))
	}

	return created, nil
}

// GetOrder возвращает заказ владельцу либо администратору.
func (o *OrderUseCase) GetOrder(ctx context.Context, req *GetOrderReq) (*domain.Order, error) {
	const op = "OrderUseCase.GetOrder"

	order, err := o.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !req.IsAdmin && order.UserID != req.UserID {
		return nil, e.Wrap(op, e.ErrOrderNotFound)
	}

	return order, nil
}

// ListUserOrders возвращает страницу заказов пользователя, новые первыми.
func (o *OrderUseCase) ListUserOrders(ctx context.Context, req *ListOrdersReq) (*OrdersRes, error) {
	const op = "OrderUseCase.ListUserOrders"

	orders, total, err := o.orderRepo.ListByUser(ctx, req.UserID, req.Page, req.Limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &OrdersRes{
		Orders:     orders,
		Pagination: NewPagination(req.Page, req.Limit, total),
	}, nil
}

// ListAllOrders возвращает страницу всех заказов с фильтром по статусу.
func (o *OrderUseCase) ListAllOrders(ctx context.Context, req *AdminListOrdersReq) (*OrdersRes, error) {
	const op = "OrderUseCase.ListAllOrders"

	if req.Status != "" {
		if _, ok := domain.ParseOrderStatus(req.Status); !ok {
			return nil, e.Wrap(op, e.ErrInvalidStatus)
		}
	}

	orders, total, err := o.orderRepo.ListAll(ctx, req.Status, req.Page, req.Limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &OrdersRes{
		Orders:     orders,
		Pagination: NewPagination(req.Page, req.Limit, total),
	}, nil
}

// UpdateOrderStatus переводит заказ в новый статус, проставляя отметку
// времени перехода, и публикует событие смены статуса через outbox.
func (o *OrderUseCase) UpdateOrderStatus(ctx context.Context, req *UpdateOrderStatusReq) (*domain.Order, error) {
	const op = "OrderUseCase.UpdateOrderStatus"

	status, ok := domain.ParseOrderStatus(req.Status)
	if !ok {
		return nil, e.Wrap(op, e.ErrInvalidStatus)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	order, err := o.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	order.SetStatus(status, time.Now())

	updated, err := o.orderRepo.UpdateStatus(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	event, err := NewOrderEvent(OrderStatusChanged, updated)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if _, err = o.outboxRepo.Create(ctx, event); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// validateCart проверяет корзину до каких-либо запросов в базу.
func validateCart(items []CartItem) error {
	if len(items) == 0 {
		return e.ErrEmptyCart
	}

	for i, item := range items {
		if item.ProductID == "" {
			return e.Validation(fmt.Sprintf("items[%d].productId", i), "Produk wajib diisi")
		}
		if item.Quantity <= 0 {
			return e.Validation(fmt.Sprintf("items[%d].quantity", i), "Jumlah harus lebih dari 0")
		}
	}

	return nil
}
