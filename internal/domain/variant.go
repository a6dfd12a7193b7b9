package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variant описывает покупаемый вариант товара (отдельная цена и остаток)
type Variant struct {
	ID           string
	ProductID    string
	Name         string
	Price        decimal.Decimal
	ComparePrice *decimal.Decimal
	Stock        int
	SKU          string
	SortOrder    int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
