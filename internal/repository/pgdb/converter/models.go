package converter

import (
	"time"

	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID          string     `db:"id"`
	Name        string     `db:"name"`
	Slug        string     `db:"slug"`
	Description string     `db:"description"`
	Image       string     `db:"image"`
	SortOrder   int        `db:"sort_order"`
	IsActive    bool       `db:"is_active"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          string             `db:"id"`
	CategoryID  string             `db:"category_id"`
	Name        string             `db:"name"`
	Slug        string             `db:"slug"`
	Description string             `db:"description"`
	ShortDesc   string             `db:"short_desc"`
	Thumbnail   string             `db:"thumbnail"`
	Type        domain.ProductType `db:"type"`
	IsActive    bool               `db:"is_active"`
	IsFeatured  bool               `db:"is_featured"`
	CreatedAt   time.Time          `db:"created_at"`
	UpdatedAt   *time.Time         `db:"updated_at"`
}

// VariantModel представляет запись таблицы product_variants в PostgreSQL.
type VariantModel struct {
	ID           string           `db:"id"`
	ProductID    string           `db:"product_id"`
	Name         string           `db:"name"`
	Price        decimal.Decimal  `db:"price"`
	ComparePrice *decimal.Decimal `db:"compare_price"`
	Stock        int              `db:"stock"`
	SKU          string           `db:"sku"`
	SortOrder    int              `db:"sort_order"`
	IsActive     bool             `db:"is_active"`
	CreatedAt    time.Time        `db:"created_at"`
	UpdatedAt    *time.Time       `db:"updated_at"`
}

// CouponModel представляет запись таблицы coupons в PostgreSQL.
type CouponModel struct {
	ID          string            `db:"id"`
	Code        string            `db:"code"`
	Type        domain.CouponType `db:"type"`
	Value       decimal.Decimal   `db:"value"`
	MinPurchase *decimal.Decimal  `db:"min_purchase"`
	MaxDiscount *decimal.Decimal  `db:"max_discount"`
	UsageLimit  *int              `db:"usage_limit"`
	UsageCount  int               `db:"usage_count"`
	ValidFrom   time.Time         `db:"valid_from"`
	ValidUntil  *time.Time        `db:"valid_until"`
	IsActive    bool              `db:"is_active"`
	CreatedAt   time.Time         `db:"created_at"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID            string             `db:"id"`
	OrderNumber   string             `db:"order_number"`
	UserID        string             `db:"user_id"`
	CustomerName  string             `db:"customer_name"`
	CustomerEmail string             `db:"customer_email"`
	Subtotal      decimal.Decimal    `db:"subtotal"`
	Discount      decimal.Decimal    `db:"discount"`
	TotalAmount   decimal.Decimal    `db:"total_amount"`
	CouponID      *string            `db:"coupon_id"`
	Status        domain.OrderStatus `db:"status"`
	PaidAt        *time.Time         `db:"paid_at"`
	ProcessedAt   *time.Time         `db:"processed_at"`
	CompletedAt   *time.Time         `db:"completed_at"`
	CreatedAt     time.Time          `db:"created_at"`
	UpdatedAt     *time.Time         `db:"updated_at"`
}

// OrderItemModel представляет запись таблицы order_items в PostgreSQL.
type OrderItemModel struct {
	ID          string          `db:"id"`
	OrderID     string          `db:"order_id"`
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name"`
	VariantID   string          `db:"variant_id"`
	VariantName string          `db:"variant_name"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	TotalPrice  decimal.Decimal `db:"total_price"`
}

// UserModel представляет запись таблицы users в PostgreSQL.
type UserModel struct {
	ID           string          `db:"id"`
	Name         string          `db:"name"`
	Email        string          `db:"email"`
	PasswordHash string          `db:"password_hash"`
	Role         domain.Role     `db:"role"`
	Balance      decimal.Decimal `db:"balance"`
	Avatar       string          `db:"avatar"`
	IsActive     bool            `db:"is_active"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    *time.Time      `db:"updated_at"`
}

// UploadModel представляет запись таблицы uploads в PostgreSQL.
type UploadModel struct {
	ID        string    `db:"id"`
	Filename  string    `db:"filename"`
	ObjectKey string    `db:"object_key"`
	URL       string    `db:"url"`
	MimeType  string    `db:"mime_type"`
	Size      int64     `db:"size"`
	CreatedAt time.Time `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64                   `db:"id"`
	EventID     string                  `db:"event_id"`
	EventType   usecase.OutboxEventType `db:"event_type"`
	OrderNumber string                  `db:"order_number"`
	Payload     []byte                  `db:"payload"`
	Status      usecase.OutboxStatus    `db:"status"`
	CreatedAt   time.Time               `db:"created_at"`
	ProcessedAt *time.Time              `db:"processed_at"`
}
