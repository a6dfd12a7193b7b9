package usecase

import (
	"context"

	"github.com/schnuffelll/shop-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type CategoryRepository interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type ProductRepository interface {
	List(ctx context.Context, req *ListProductsReq) ([]domain.Product, int64, error)
	AdminList(ctx context.Context, req *AdminListProductsReq) ([]domain.Product, int64, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	// GetActiveByIDs загружает активные товары вместе со всеми вариантами
	// одной выборкой. Выполняется внутри транзакции оформления заказа.
	GetActiveByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	GetRelated(ctx context.Context, categoryID, excludeID string, limit int) ([]domain.Product, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	ReplaceVariants(ctx context.Context, productID string, variants []domain.Variant) error
	ReplaceImages(ctx context.Context, productID string, urls []string) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
	CountOrderItems(ctx context.Context, productID string) (int64, error)
	UpdateVariantStock(ctx context.Context, variantID string, stock int) (*domain.Variant, error)
	// DecrementStock атомарно списывает остаток варианта при оформлении
	// заказа. Возвращает e.ErrStockConflict, если остатка не хватает.
	DecrementStock(ctx context.Context, variantID string, qty int) error
}

type CouponRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
	GetByID(ctx context.Context, id string) (*domain.Coupon, error)
	List(ctx context.Context, page, limit int) ([]domain.Coupon, int64, error)
	Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error)
	Update(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error)
	Delete(ctx context.Context, id string) error
	IncrementUsage(ctx context.Context, id string) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string, page, limit int) ([]domain.Order, int64, error)
	ListAll(ctx context.Context, status string, page, limit int) ([]domain.Order, int64, error)
	UpdateStatus(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

type UploadRepository interface {
	Create(ctx context.Context, upload *domain.Upload) (*domain.Upload, error)
}

type FileRepository interface {
	Upload(ctx context.Context, file *domain.File) (string, error)
	Delete(ctx context.Context, key string) error
}

type CacheRepository interface {
	GetProduct(ctx context.Context, slug string) (*domain.Product, error)
	SetProduct(ctx context.Context, product *domain.Product) error
	DeleteProducts(ctx context.Context, slugs []string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}
