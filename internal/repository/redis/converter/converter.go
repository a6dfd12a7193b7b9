//go:generate goverter gen github.com/schnuffelll/shop-backend/internal/repository/redis/converter

package converter

import (
	"time"

	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// ProductConverter преобразует карточку товара между domain и
// JSON-моделью для Redis.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertDecimal
// goverter:extend ConvertPointerDecimal
// goverter:extend ConvertProductType
type ProductConverter interface {
	ToRedisModel(entity *domain.Product) *ProductRedisModel
	ToEntity(model *ProductRedisModel) *domain.Product
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

func ConvertProductType(t domain.ProductType) domain.ProductType {
	return t
}
