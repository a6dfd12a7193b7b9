package http

import (
	"time"

	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

// JSON-модели ответов API. Поля в camelCase, как их ожидает витрина.

type CategoryResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Description  string     `json:"description,omitempty"`
	Image        string     `json:"image,omitempty"`
	SortOrder    int        `json:"sortOrder"`
	IsActive     bool       `json:"isActive"`
	ProductCount int64      `json:"productCount"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

type VariantResponse struct {
	ID           string           `json:"id"`
	ProductID    string           `json:"productId"`
	Name         string           `json:"name"`
	Price        decimal.Decimal  `json:"price"`
	ComparePrice *decimal.Decimal `json:"comparePrice,omitempty"`
	Stock        int              `json:"stock"`
	SKU          string           `json:"sku,omitempty"`
	SortOrder    int              `json:"sortOrder"`
	IsActive     bool             `json:"isActive"`
}

type ImageResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type PriceRangeResponse struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

type ProductResponse struct {
	ID          string             `json:"id"`
	CategoryID  string             `json:"categoryId"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Description string             `json:"description,omitempty"`
	ShortDesc   string             `json:"shortDesc,omitempty"`
	Thumbnail   string             `json:"thumbnail,omitempty"`
	Type        string             `json:"type"`
	IsActive    bool               `json:"isActive"`
	IsFeatured  bool               `json:"isFeatured"`
	PriceRange  PriceRangeResponse `json:"priceRange"`
	InStock     bool               `json:"inStock"`
	Category    *CategoryResponse  `json:"category,omitempty"`
	Variants    []VariantResponse  `json:"variants"`
	Images      []ImageResponse    `json:"images"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   *time.Time         `json:"updatedAt,omitempty"`
}

type CouponResponse struct {
	ID          string           `json:"id"`
	Code        string           `json:"code"`
	Type        string           `json:"type"`
	Value       decimal.Decimal  `json:"value"`
	MinPurchase *decimal.Decimal `json:"minPurchase,omitempty"`
	MaxDiscount *decimal.Decimal `json:"maxDiscount,omitempty"`
	UsageLimit  *int             `json:"usageLimit,omitempty"`
	UsageCount  int              `json:"usageCount"`
	ValidFrom   time.Time        `json:"validFrom"`
	ValidUntil  *time.Time       `json:"validUntil,omitempty"`
	IsActive    bool             `json:"isActive"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	VariantID   string          `json:"variantId"`
	VariantName string          `json:"variantName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	OrderNumber   string              `json:"orderNumber"`
	UserID        string              `json:"userId"`
	CustomerName  string              `json:"customerName"`
	CustomerEmail string              `json:"customerEmail"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Discount      decimal.Decimal     `json:"discount"`
	TotalAmount   decimal.Decimal     `json:"totalAmount"`
	CouponID      *string             `json:"couponId,omitempty"`
	Status        string              `json:"status"`
	Items         []OrderItemResponse `json:"items"`
	PaidAt        *time.Time          `json:"paidAt,omitempty"`
	ProcessedAt   *time.Time          `json:"processedAt,omitempty"`
	CompletedAt   *time.Time          `json:"completedAt,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     *time.Time          `json:"updatedAt,omitempty"`
}

type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      string          `json:"role"`
	Balance   decimal.Decimal `json:"balance"`
	Avatar    string          `json:"avatar,omitempty"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type UploadResponse struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type CheckCouponResponse struct {
	Applicable bool            `json:"applicable"`
	Discount   decimal.Decimal `json:"discount"`
}

func newCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		Image:        c.Image,
		SortOrder:    c.SortOrder,
		IsActive:     c.IsActive,
		ProductCount: c.ProductCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func newCategoryResponses(categories []domain.Category) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, newCategoryResponse(&categories[i]))
	}

	return result
}

func newVariantResponse(v *domain.Variant) VariantResponse {
	return VariantResponse{
		ID:           v.ID,
		ProductID:    v.ProductID,
		Name:         v.Name,
		Price:        v.Price,
		ComparePrice: v.ComparePrice,
		Stock:        v.Stock,
		SKU:          v.SKU,
		SortOrder:    v.SortOrder,
		IsActive:     v.IsActive,
	}
}

func newProductResponse(p *domain.Product) ProductResponse {
	min, max := p.PriceRange()

	resp := ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		ShortDesc:   p.ShortDesc,
		Thumbnail:   p.Thumbnail,
		Type:        string(p.Type),
		IsActive:    p.IsActive,
		IsFeatured:  p.IsFeatured,
		PriceRange:  PriceRangeResponse{Min: min, Max: max},
		InStock:     p.InStock(),
		Variants:    make([]VariantResponse, 0, len(p.Variants)),
		Images:      make([]ImageResponse, 0, len(p.Images)),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	if p.Category != nil {
		category := newCategoryResponse(p.Category)
		resp.Category = &category
	}
	for i := range p.Variants {
		resp.Variants = append(resp.Variants, newVariantResponse(&p.Variants[i]))
	}
	for _, img := range p.Images {
		resp.Images = append(resp.Images, ImageResponse{ID: img.ID, URL: img.URL})
	}

	return resp
}

func newProductResponses(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, newProductResponse(&products[i]))
	}

	return result
}

func newCouponResponse(c *domain.Coupon) CouponResponse {
	return CouponResponse{
		ID:          c.ID,
		Code:        c.Code,
		Type:        string(c.Type),
		Value:       c.Value,
		MinPurchase: c.MinPurchase,
		MaxDiscount: c.MaxDiscount,
		UsageLimit:  c.UsageLimit,
		UsageCount:  c.UsageCount,
		ValidFrom:   c.ValidFrom,
		ValidUntil:  c.ValidUntil,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

func newOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			VariantID:   item.VariantID,
			VariantName: item.VariantName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		UserID:        o.UserID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Subtotal:      o.Subtotal,
		Discount:      o.Discount,
		TotalAmount:   o.TotalAmount,
		CouponID:      o.CouponID,
		Status:        string(o.Status),
		Items:         items,
		PaidAt:        o.PaidAt,
		ProcessedAt:   o.ProcessedAt,
		CompletedAt:   o.CompletedAt,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func newOrderResponses(orders []domain.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, newOrderResponse(&orders[i]))
	}

	return result
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Balance:   u.Balance,
		Avatar:    u.Avatar,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func newUploadResponse(u *domain.Upload) UploadResponse {
	return UploadResponse{
		ID:       u.ID,
		Filename: u.Filename,
		URL:      u.URL,
		MimeType: u.MimeType,
		Size:     u.Size,
	}
}

func newPaginationResponse(p usecase.Pagination) PaginationResponse {
	return PaginationResponse{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}
