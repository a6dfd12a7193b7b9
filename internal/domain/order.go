package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus — статус жизненного цикла заказа
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderPaid       OrderStatus = "PAID"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// ParseOrderStatus проверяет строковое значение статуса.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderPending, OrderPaid, OrderProcessing, OrderCompleted, OrderCancelled:
		return OrderStatus(s), true
	}

	return "", false
}

// Order описывает оформленный заказ
type Order struct {
	ID            string
	OrderNumber   string
	UserID        string
	CustomerName  string
	CustomerEmail string
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	TotalAmount   decimal.Decimal
	CouponID      *string
	Status        OrderStatus
	PaidAt        *time.Time
	ProcessedAt   *time.Time
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time

	Items []OrderItem
}

// OrderItem — строка заказа. Название товара, название варианта и цены
// копируются в момент оформления и далее не пересчитываются из каталога.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	VariantID   string
	VariantName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// SetStatus переводит заказ в новый статус и проставляет отметку времени
// перехода для PAID/PROCESSING/COMPLETED.
func (o *Order) SetStatus(status OrderStatus, now time.Time) {
	o.Status = status

	switch status {
	case OrderPaid:
		o.PaidAt = &now
	case OrderProcessing:
		o.ProcessedAt = &now
	case OrderCompleted:
		o.CompletedAt = &now
	}
}
