package usecase

import (
	"context"

	"github.com/schnuffelll/shop-backend/internal/domain"
)

type AuthUC interface {
	Register(ctx context.Context, req *RegisterReq) (*AuthRes, error)
	Login(ctx context.Context, req *LoginReq) (*AuthRes, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	ParseToken(tokenString string) (*Claims, error)
}

type CategoryUC interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, slug string) (*CategoryDetailRes, error)
	CreateCategory(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error)
	UpdateCategory(ctx context.Context, req *UpdateCategoryReq) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type ProductUC interface {
	ListProducts(ctx context.Context, req *ListProductsReq) (*ProductsRes, error)
	GetProduct(ctx context.Context, slug string) (*ProductDetailRes, error)
	AdminListProducts(ctx context.Context, req *AdminListProductsReq) (*ProductsRes, error)
	AdminGetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error)
	UpdateVariantStock(ctx context.Context, req *UpdateVariantStockReq) (*domain.Variant, error)
	ToggleProduct(ctx context.Context, id string) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) (deactivated bool, err error)
}

type CouponUC interface {
	CreateCoupon(ctx context.Context, req *CreateCouponReq) (*domain.Coupon, error)
	ListCoupons(ctx context.Context, req *ListCouponsReq) (*CouponsRes, error)
	UpdateCoupon(ctx context.Context, req *UpdateCouponReq) (*domain.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error
	CheckCoupon(ctx context.Context, req *CheckCouponReq) (*CheckCouponRes, error)
}

type OrderUC interface {
	CreateOrder(ctx context.Context, req *CreateOrderReq) (*domain.Order, error)
	GetOrder(ctx context.Context, req *GetOrderReq) (*domain.Order, error)
	ListUserOrders(ctx context.Context, req *ListOrdersReq) (*OrdersRes, error)
	ListAllOrders(ctx context.Context, req *AdminListOrdersReq) (*OrdersRes, error)
	UpdateOrderStatus(ctx context.Context, req *UpdateOrderStatusReq) (*domain.Order, error)
}

type UploadUC interface {
	UploadFiles(ctx context.Context, files []UploadFile) ([]domain.Upload, error)
}
