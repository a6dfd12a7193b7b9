package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CouponType — тип скидки купона
type CouponType string

const (
	CouponPercentage CouponType = "PERCENTAGE"
	CouponFixed      CouponType = "FIXED"
)

var hundred = decimal.NewFromInt(100)

// Coupon описывает промокод со скидкой
type Coupon struct {
	ID          string
	Code        string
	Type        CouponType
	Value       decimal.Decimal
	MinPurchase *decimal.Decimal
	MaxDiscount *decimal.Decimal
	UsageLimit  *int
	UsageCount  int
	ValidFrom   time.Time
	ValidUntil  *time.Time
	IsActive    bool
	CreatedAt   time.Time
}

// Applicable проверяет, применим ли купон к заказу с указанной суммой.
// Чистая функция без побочных эффектов: инкремент usage_count делает
// сценарий оформления заказа, а не валидатор.
func (c *Coupon) Applicable(subtotal decimal.Decimal, now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.ValidFrom.After(now) {
		return false
	}
	if c.ValidUntil != nil && c.ValidUntil.Before(now) {
		return false
	}
	if c.UsageLimit != nil && c.UsageCount >= *c.UsageLimit {
		return false
	}
	if c.MinPurchase != nil && subtotal.LessThan(*c.MinPurchase) {
		return false
	}

	return true
}

// Discount вычисляет скидку купона для указанной суммы заказа.
// Возвращает нулевую скидку и false, если купон неприменим.
//
// Для FIXED-купона скидка равна Value и сознательно не ограничивается
// суммой заказа: так ведёт себя действующий магазин, и это поведение
// закреплено тестами до отдельного решения.
func (c *Coupon) Discount(subtotal decimal.Decimal, now time.Time) (decimal.Decimal, bool) {
	if !c.Applicable(subtotal, now) {
		return decimal.Zero, false
	}

	if c.Type == CouponPercentage {
		discount := subtotal.Mul(c.Value).Div(hundred)
		if c.MaxDiscount != nil && discount.GreaterThan(*c.MaxDiscount) {
			discount = *c.MaxDiscount
		}
		return discount, true
	}

	return c.Value, true
}
