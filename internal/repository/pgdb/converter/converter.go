//go:generate goverter gen github.com/schnuffelll/shop-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	// goverter:ignore ProductCount
	ToEntity(model *CategoryModel) *domain.Category
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// Связанные категория, варианты и изображения собираются репозиторием отдельно.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertProductType
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	// goverter:ignore Category Variants Images
	ToEntity(model *ProductModel) *domain.Product
}

// VariantConverter преобразует сущности Variant между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertDecimal
// goverter:extend ConvertPointerDecimal
type VariantConverter interface {
	ToModel(entity *domain.Variant) *VariantModel
	ToEntity(model *VariantModel) *domain.Variant
}

// CouponConverter преобразует сущности Coupon между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertDecimal
// goverter:extend ConvertPointerDecimal
// goverter:extend ConvertPointerInt
// goverter:extend ConvertCouponType
type CouponConverter interface {
	ToModel(entity *domain.Coupon) *CouponModel
	ToEntity(model *CouponModel) *domain.Coupon
}

// OrderConverter преобразует сущности Order между domain и моделью PostgreSQL.
// Позиции заказа собираются репозиторием отдельно.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertDecimal
// goverter:extend ConvertPointerString
// goverter:extend ConvertOrderStatus
type OrderConverter interface {
	ToModel(entity *domain.Order) *OrderModel
	// goverter:ignore Items
	ToEntity(model *OrderModel) *domain.Order
}

// OrderItemConverter преобразует позиции заказа между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertDecimal
type OrderItemConverter interface {
	ToModel(entity *domain.OrderItem) *OrderItemModel
	ToEntity(model *OrderItemModel) *domain.OrderItem
}

// UserConverter преобразует сущности User между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertDecimal
// goverter:extend ConvertRole
type UserConverter interface {
	ToModel(entity *domain.User) *UserModel
	ToEntity(model *UserModel) *domain.User
}

// UploadConverter преобразует сущности Upload между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
type UploadConverter interface {
	ToModel(entity *domain.Upload) *UploadModel
	ToEntity(model *UploadModel) *domain.Upload
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutBoxStatus
// goverter:extend ConvertOutboxEventType
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertDecimal(d decimal.Decimal) decimal.Decimal {
	return d
}

func ConvertPointerDecimal(d *decimal.Decimal) *decimal.Decimal {
	return d
}

func ConvertPointerInt(i *int) *int {
	return i
}

func ConvertPointerString(s *string) *string {
	return s
}

func ConvertProductType(t domain.ProductType) domain.ProductType {
	return t
}

func ConvertCouponType(t domain.CouponType) domain.CouponType {
	return t
}

func ConvertOrderStatus(s domain.OrderStatus) domain.OrderStatus {
	return s
}

func ConvertRole(r domain.Role) domain.Role {
	return r
}

func ConvertOutBoxStatus(s usecase.OutboxStatus) usecase.OutboxStatus {
	return s
}

func ConvertOutboxEventType(t usecase.OutboxEventType) usecase.OutboxEventType {
	return t
}
