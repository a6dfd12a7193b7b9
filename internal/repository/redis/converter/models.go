package converter

import (
	"time"

	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// ProductRedisModel — JSON-представление карточки товара в кэше.
type ProductRedisModel struct {
	ID          string              `json:"id"`
	CategoryID  string              `json:"category_id"`
	Name        string              `json:"name"`
	Slug        string              `json:"slug"`
	Description string              `json:"description"`
	ShortDesc   string              `json:"short_desc"`
	Thumbnail   string              `json:"thumbnail"`
	Type        domain.ProductType  `json:"type"`
	IsActive    bool                `json:"is_active"`
	IsFeatured  bool                `json:"is_featured"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   *time.Time          `json:"updated_at"`
	Category    *CategoryRedisModel `json:"category"`
	Variants    []VariantRedisModel `json:"variants"`
	Images      []ImageRedisModel   `json:"images"`
}

type CategoryRedisModel struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Description  string     `json:"description"`
	Image        string     `json:"image"`
	SortOrder    int        `json:"sort_order"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
	ProductCount int64      `json:"product_count"`
}

type VariantRedisModel struct {
	ID           string           `json:"id"`
	ProductID    string           `json:"product_id"`
	Name         string           `json:"name"`
	Price        decimal.Decimal  `json:"price"`
	ComparePrice *decimal.Decimal `json:"compare_price"`
	Stock        int              `json:"stock"`
	SKU          string           `json:"sku"`
	SortOrder    int              `json:"sort_order"`
	IsActive     bool             `json:"is_active"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    *time.Time       `json:"updated_at"`
}

type ImageRedisModel struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	URL       string `json:"url"`
}
