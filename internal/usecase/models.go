package usecase

import (
	"time"

	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// ORDER USECASE

// CartItem — строка корзины в запросе на оформление заказа.
type CartItem struct {
	ProductID string
	VariantID string
	Quantity  int
}

// CreateOrderReq — запрос на оформление заказа.
type CreateOrderReq struct {
	UserID     string
	Items      []CartItem
	CouponCode string
}

// GetOrderReq — запрос одного заказа с учётом владельца.
type GetOrderReq struct {
	OrderID string
	UserID  string
	IsAdmin bool
}

// ListOrdersReq — запрос заказов пользователя.
type ListOrdersReq struct {
	UserID string
	Page   int
	Limit  int
}

// AdminListOrdersReq — запрос всех заказов (админ-панель).
type AdminListOrdersReq struct {
	Status string
	Page   int
	Limit  int
}

// UpdateOrderStatusReq — запрос смены статуса заказа.
type UpdateOrderStatusReq struct {
	OrderID string
	Status  string
}

// Pagination — параметры и результат постраничной выборки.
type Pagination struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// OrdersRes — страница заказов.
type OrdersRes struct {
	Orders     []domain.Order
	Pagination Pagination
}

// PRODUCT USECASE

// ListProductsReq — публичный запрос каталога.
type ListProductsReq struct {
	CategorySlug string
	FeaturedOnly bool
	Search       string
	Sort         string // newest | oldest | name-asc | name-desc
	Page         int
	Limit        int
}

// AdminListProductsReq — админский запрос каталога (включая неактивные товары).
type AdminListProductsReq struct {
	Search     string
	CategoryID string
	Status     string // active | inactive | ""
	Page       int
	Limit      int
}

// ProductsRes — страница товаров.
type ProductsRes struct {
	Products   []domain.Product
	Pagination Pagination
}

// ProductDetailRes — товар со связанными товарами той же категории.
type ProductDetailRes struct {
	Product *domain.Product
	Related []domain.Product
}

// VariantInput — вариант товара при создании/обновлении.
type VariantInput struct {
	Name         string
	Price        decimal.Decimal
	ComparePrice *decimal.Decimal
	Stock        int
	SKU          string
	SortOrder    int
	IsActive     bool
}

// CreateProductReq — запрос на создание товара с вариантами.
type CreateProductReq struct {
	Name        string
	Slug        string
	Description string
	ShortDesc   string
	Thumbnail   string
	CategoryID  string
	Type        string
	IsActive    bool
	IsFeatured  bool
	Images      []string
	Variants    []VariantInput
}

// UpdateProductReq — частичное обновление товара. Nil-поля не трогаются;
// непустые Variants/Images полностью заменяют существующие.
type UpdateProductReq struct {
	ID          string
	Name        *string
	Slug        *string
	Description *string
	ShortDesc   *string
	Thumbnail   *string
	CategoryID  *string
	Type        *string
	IsActive    *bool
	IsFeatured  *bool
	Images      []string
	Variants    []VariantInput
}

// UpdateVariantStockReq — прямое выставление остатка варианта (админ).
type UpdateVariantStockReq struct {
	VariantID string
	Stock     int
}

// CATEGORY USECASE

// CreateCategoryReq — запрос на создание категории.
type CreateCategoryReq struct {
	Name        string
	Slug        string
	Description string
	Image       string
	SortOrder   int
}

// UpdateCategoryReq — частичное обновление категории.
type UpdateCategoryReq struct {
	ID          string
	Name        *string
	Slug        *string
	Description *string
	Image       *string
	SortOrder   *int
	IsActive    *bool
}

// CategoryDetailRes — категория вместе с её активными товарами.
type CategoryDetailRes struct {
	Category *domain.Category
	Products []domain.Product
}

// COUPON USECASE

// CreateCouponReq — запрос на создание купона.
type CreateCouponReq struct {
	Code        string
	Type        string
	Value       decimal.Decimal
	MinPurchase *decimal.Decimal
	MaxDiscount *decimal.Decimal
	UsageLimit  *int
	ValidFrom   time.Time
	ValidUntil  *time.Time
	IsActive    bool
}

// UpdateCouponReq — частичное обновление купона.
type UpdateCouponReq struct {
	ID          string
	Value       *decimal.Decimal
	MinPurchase *decimal.Decimal
	MaxDiscount *decimal.Decimal
	UsageLimit  *int
	ValidFrom   *time.Time
	ValidUntil  *time.Time
	IsActive    *bool
}

// ListCouponsReq — страница купонов (админ).
type ListCouponsReq struct {
	Page  int
	Limit int
}

// CouponsRes — страница купонов.
type CouponsRes struct {
	Coupons    []domain.Coupon
	Pagination Pagination
}

// CheckCouponReq — проверка применимости купона без побочных эффектов.
type CheckCouponReq struct {
	Code     string
	Subtotal decimal.Decimal
}

// CheckCouponRes — результат проверки купона.
type CheckCouponRes struct {
	Applicable bool
	Discount   decimal.Decimal
}

// AUTH USECASE

// RegisterReq — запрос регистрации.
type RegisterReq struct {
	Name     string
	Email    string
	Password string
}

// LoginReq — запрос входа.
type LoginReq struct {
	Email    string
	Password string
}

// AuthRes — пользователь вместе с подписанным JWT.
type AuthRes struct {
	User  *domain.User
	Token string
}

// UPLOAD USECASE

// UploadFile представляет файл, полученный через multipart/form-data.
type UploadFile struct {
	Data     []byte // байты файла
	MimeType string // Content-Type из multipart
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла
}

// UploadFilesReq — запрос на загрузку файлов в объектное хранилище.
type UploadFilesReq struct {
	Prefix string
	Files  []UploadFile
}

// UploadFilesRes — результат загрузки (ключи объектов в хранилище).
type UploadFilesRes struct {
	Keys []string
}

// INFRASTRUCTURE

// WriteRawMessageReq — готовое сообщение для брокера.
type WriteRawMessageReq struct {
	OrderNumber string
	Payload     []byte
}

// MAPPERS

func NewWriteRawMessageReq(orderNumber string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderNumber: orderNumber,
		Payload:     payload,
	}
}

func NewUploadFilesReq(prefix string, files []UploadFile) *UploadFilesReq {
	return &UploadFilesReq{
		Prefix: prefix,
		Files:  files,
	}
}

func NewUploadFilesRes(keys []string) *UploadFilesRes {
	return &UploadFilesRes{
		Keys: keys,
	}
}

// NewPagination считает итоговые параметры страницы.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
