package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductType описывает способ выдачи цифрового товара
type ProductType string

const (
	ProductAutomated ProductType = "AUTOMATED"
	ProductManual    ProductType = "MANUAL"
)

// Product описывает товар каталога вместе с вариантами и изображениями
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	Slug        string
	Description string
	ShortDesc   string
	Thumbnail   string
	Type        ProductType
	IsActive    bool
	IsFeatured  bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time

	Category *Category
	Variants []Variant
	Images   []ProductImage
}

// ProductImage — ссылка на изображение товара
type ProductImage struct {
	ID        string
	ProductID string
	URL       string
}

// ResolveVariant подбирает вариант для строки корзины.
// Порядок подбора фиксирован: точное совпадение по id, затем первый
// активный вариант, затем просто первый вариант товара. Несуществующий
// id не считается ошибкой, подбор продолжается по цепочке.
func (p *Product) ResolveVariant(variantID string) *Variant {
	if variantID != "" {
		for i := range p.Variants {
			if p.Variants[i].ID == variantID {
				return &p.Variants[i]
			}
		}
	}

	for i := range p.Variants {
		if p.Variants[i].IsActive {
			return &p.Variants[i]
		}
	}

	if len(p.Variants) > 0 {
		return &p.Variants[0]
	}

	return nil
}

// PriceRange возвращает минимальную и максимальную цену по вариантам.
func (p *Product) PriceRange() (min, max decimal.Decimal) {
	if len(p.Variants) == 0 {
		return decimal.Zero, decimal.Zero
	}

	min, max = p.Variants[0].Price, p.Variants[0].Price
	for _, v := range p.Variants[1:] {
		if v.Price.LessThan(min) {
			min = v.Price
		}
		if v.Price.GreaterThan(max) {
			max = v.Price
		}
	}

	return min, max
}

// InStock сообщает, есть ли остаток хотя бы у одного варианта.
func (p *Product) InStock() bool {
	for _, v := range p.Variants {
		if v.Stock > 0 {
			return true
		}
	}

	return false
}
