package usecase

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/jimlawless/whereami"
	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// orderDraft — результат расчёта заказа до записи в базу.
type orderDraft struct {
	Items        []domain.OrderItem
	Subtotal     decimal.Decimal
	Discount     decimal.Decimal
	TotalAmount  decimal.Decimal
	CouponID     *string
	ProductSlugs []string
}

// buildOrderDraft рассчитывает заказ по загруженным товарам: подбирает
// вариант для каждой строки, проверяет остатки, накапливает сумму в
// точной десятичной арифметике и применяет купон.
//
// Неприменимый купон молча игнорируется — заказ оформляется без скидки,
// ошибки наружу нет. Частичных заказов не бывает: любая непройденная
// проверка отклоняет заказ целиком.
func buildOrderDraft(products []domain.Product, items []CartItem, coupon *domain.Coupon, now time.Time) (*orderDraft, error) {
	byID := make(map[string]*domain.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	draft := &orderDraft{
		Items:    make([]domain.OrderItem, 0, len(items)),
		Subtotal: decimal.Zero,
		Discount: decimal.Zero,
	}

	slugs := make(map[string]struct{}, len(items))
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, e.ErrProductUnavailable
		}

		variant := product.ResolveVariant(item.VariantID)
		if variant == nil {
			return nil, e.NoVariant(product.Name)
		}

		if variant.Stock < item.Quantity {
			return nil, e.InsufficientStock(product.Name, variant.Name)
		}

		itemTotal := variant.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		draft.Subtotal = draft.Subtotal.Add(itemTotal)

		draft.Items = append(draft.Items, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			VariantID:   variant.ID,
			VariantName: variant.Name,
			Quantity:    item.Quantity,
			UnitPrice:   variant.Price,
			TotalPrice:  itemTotal,
		})

		slugs[product.Slug] = struct{}{}
	}

	if coupon != nil {
		if discount, ok := coupon.Discount(draft.Subtotal, now); ok {
			draft.Discount = discount
			draft.CouponID = &coupon.ID
		}
	}

	draft.TotalAmount = draft.Subtotal.Sub(draft.Discount)

	for slug := range slugs {
		draft.ProductSlugs = append(draft.ProductSlugs, slug)
	}

	return draft, nil
}

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateOrderNumber формирует номер заказа вида ORD-YYYYMMDD-XXXX.
// Суффикс берётся из crypto/rand: повторная генерация при коллизии не
// предусмотрена, поэтому вероятность совпадения должна быть ничтожной.
func generateOrderNumber(now time.Time) (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	suffix := make([]byte, len(buf))
	for i, b := range buf {
		suffix[i] = orderNumberAlphabet[int(b)%len(orderNumberAlphabet)]
	}

	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix), nil
}
